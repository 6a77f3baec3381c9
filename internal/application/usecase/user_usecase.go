package usecase

import (
	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

// maxUsers tope de usuarios devueltos por listado.
const maxUsers = 1000

// UserUseCase administración de cuentas: listado, borrado y cambio de rol.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve las vistas públicas de todos los usuarios (hasta maxUsers).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List(maxUsers)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *entityToUserResponse(u))
	}
	return items, nil
}

// Delete elimina un usuario por id. Propaga domain.ErrNotFound si no existe.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// UpdateRole asigna un rol arbitrario al usuario. No hay validación de enum:
// el conjunto de roles es abierto. Propaga domain.ErrNotFound si no existe.
func (uc *UserUseCase) UpdateRole(id, role string) error {
	return uc.repo.UpdateRole(id, role)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
