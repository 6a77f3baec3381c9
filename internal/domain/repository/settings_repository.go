package repository

import "github.com/rzahabc/employee-management-app/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para el singleton de
// configuración, siempre identificado por entity.SettingsID.
type SettingsRepository interface {
	// Get devuelve (nil, nil) si el singleton todavía no existe.
	Get() (*entity.Settings, error)
	Insert(s *entity.Settings) error
	// Upsert aplica los campos presentes del patch sobre el singleton,
	// creándolo si no existe (la atomicidad la garantiza el almacén).
	Upsert(patch entity.SettingsPatch) error
}
