package dto

import "time"

// CreateSectorRequest entrada para crear o renombrar un sector.
type CreateSectorRequest struct {
	Name string `json:"name" validate:"required"`
}

// SectorResponse registro de un sector.
type SectorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
