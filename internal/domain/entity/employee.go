package entity

import "time"

// Employee registro de un empleado. Todos los campos de negocio son texto
// libre; Photo es una imagen codificada en base64 (opcional).
type Employee struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Rank         string    `bson:"rank" json:"rank"`
	Seniority    string    `bson:"seniority" json:"seniority"`
	Phone        string    `bson:"phone" json:"phone"`
	AssignedWork string    `bson:"assigned_work" json:"assigned_work"`
	Sector       string    `bson:"sector" json:"sector"` // etiqueta libre, no es FK a Sector
	Photo        string    `bson:"photo,omitempty" json:"photo,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// EmployeePatch actualización parcial: nil deja el campo intacto, un puntero
// presente (incluida la cadena vacía) sobrescribe el valor almacenado.
type EmployeePatch struct {
	Name         *string
	Rank         *string
	Seniority    *string
	Phone        *string
	AssignedWork *string
	Sector       *string
	Photo        *string
}
