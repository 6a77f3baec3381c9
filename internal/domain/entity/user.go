package entity

import "time"

// Roles conocidos para User. El conjunto es abierto: el rol se almacena como
// texto libre y ningún endpoint lo valida contra esta lista.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User cuenta del sistema. Password guarda el digest SHA-256 en hex,
// nunca en texto plano y nunca serializado en respuestas JSON.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
