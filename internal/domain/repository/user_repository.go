package repository

import "github.com/rzahabc/employee-management-app/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay documento; las mutaciones
// por id devuelven domain.ErrNotFound si ningún documento coincidió.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername busca por coincidencia exacta (sensible a mayúsculas).
	GetByUsername(username string) (*entity.User, error)
	List(limit int) ([]*entity.User, error)
	UpdateRole(id, role string) error
	Delete(id string) error
}
