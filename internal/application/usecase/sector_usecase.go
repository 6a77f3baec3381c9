package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

// maxSectors tope de sectores devueltos por listado.
const maxSectors = 100

// SectorUseCase aplica reglas de negocio para sectores.
type SectorUseCase struct {
	repo repository.SectorRepository
}

// NewSectorUseCase construye el caso de uso con el puerto de persistencia.
func NewSectorUseCase(repo repository.SectorRepository) *SectorUseCase {
	return &SectorUseCase{repo: repo}
}

// Create crea un sector con id generado y created_at actual.
func (uc *SectorUseCase) Create(in dto.CreateSectorRequest) (*dto.SectorResponse, error) {
	s := &entity.Sector{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return entityToSectorResponse(s), nil
}

// List lista sectores en orden de inserción (hasta maxSectors).
func (uc *SectorUseCase) List() ([]dto.SectorResponse, error) {
	list, err := uc.repo.List(maxSectors)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectorResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToSectorResponse(s))
	}
	return items, nil
}

// Rename cambia el nombre del sector. Propaga domain.ErrNotFound si no existe.
func (uc *SectorUseCase) Rename(id, name string) error {
	return uc.repo.Rename(id, name)
}

// Delete elimina un sector por id. No toca a los empleados que referencian su
// nombre: sector es una etiqueta libre, sin integridad referencial.
func (uc *SectorUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func entityToSectorResponse(s *entity.Sector) *dto.SectorResponse {
	if s == nil {
		return nil
	}
	return &dto.SectorResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}
