package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUsernameTaken   = errors.New("el nombre de usuario ya existe")
	ErrUnknownUsername = errors.New("nombre de usuario desconocido")
	ErrWrongPassword   = errors.New("contraseña incorrecta")
	ErrInvalidInput    = errors.New("entrada inválida")
)
