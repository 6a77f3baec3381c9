package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
	"github.com/rzahabc/employee-management-app/pkg/hash"
)

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// Login verifica username/password contra el digest almacenado y devuelve la
// identidad pública. Los dos fallos se distinguen a nivel de dominio:
// ErrUnknownUsername cuando el usuario no existe, ErrWrongPassword cuando el
// digest no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnknownUsername
	}
	if user.Password != hash.SHA256Hex(in.Password) {
		return nil, domain.ErrWrongPassword
	}
	return &dto.LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// Register crea un usuario con la password hasheada. Devuelve ErrUsernameTaken
// si el username ya existe (coincidencia exacta, sensible a mayúsculas).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Password:  hash.SHA256Hex(in.Password),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
