package entity

import "time"

// Sector agrupación nominal de empleados. El nombre no tiene restricción de
// unicidad en el almacén; el seeder asume nombres por defecto distintos.
type Sector struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
