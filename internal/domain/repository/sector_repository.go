package repository

import "github.com/rzahabc/employee-management-app/internal/domain/entity"

// SectorRepository define el puerto de persistencia para Sector.
// Rename y Delete devuelven domain.ErrNotFound si el id no coincidió.
type SectorRepository interface {
	Create(s *entity.Sector) error
	List(limit int) ([]*entity.Sector, error)
	Rename(id, name string) error
	Delete(id string) error
	// Count devuelve el total de sectores; el seeder lo usa para decidir
	// si insertar la lista por defecto.
	Count() (int64, error)
}
