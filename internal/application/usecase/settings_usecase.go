package usecase

import (
	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

// SettingsUseCase lectura y actualización del singleton de configuración.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso con el puerto de persistencia.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve el singleton; si no existe lo crea con los valores por defecto
// antes de devolverlo (auto-reparación, mismo comportamiento que el seeder).
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = entity.DefaultSettings()
		if err := uc.repo.Insert(s); err != nil {
			return nil, err
		}
	}
	return entityToSettingsResponse(s), nil
}

// Update aplica los campos presentes como upsert sobre el id fijo y devuelve
// el documento resultante. Nunca responde not-found: si el singleton faltaba,
// el upsert lo crea.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	patch := entity.SettingsPatch{
		HeaderText: in.HeaderText,
		FooterText: in.FooterText,
		Logo:       in.Logo,
	}
	if err := uc.repo.Upsert(patch); err != nil {
		return nil, err
	}
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound // no debería ocurrir tras el upsert
	}
	return entityToSettingsResponse(s), nil
}

func entityToSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingsResponse{
		ID:         s.ID,
		HeaderText: s.HeaderText,
		FooterText: s.FooterText,
		Logo:       s.Logo,
	}
}
