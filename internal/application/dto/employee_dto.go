package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado. Los seis campos de
// texto son obligatorios; photo es opcional (base64).
type CreateEmployeeRequest struct {
	Name         string `json:"name" validate:"required"`
	Rank         string `json:"rank" validate:"required"`
	Seniority    string `json:"seniority" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	AssignedWork string `json:"assigned_work" validate:"required"`
	Sector       string `json:"sector" validate:"required"`
	Photo        string `json:"photo"`
}

// UpdateEmployeeRequest actualización parcial. Los punteros distinguen
// "campo ausente" (nil, no se toca) de "presente vacío" (sobrescribe).
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Rank         *string `json:"rank"`
	Seniority    *string `json:"seniority"`
	Phone        *string `json:"phone"`
	AssignedWork *string `json:"assigned_work"`
	Sector       *string `json:"sector"`
	Photo        *string `json:"photo"`
}

// EmployeeResponse registro completo de un empleado.
type EmployeeResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Rank         string    `json:"rank"`
	Seniority    string    `json:"seniority"`
	Phone        string    `json:"phone"`
	AssignedWork string    `json:"assigned_work"`
	Sector       string    `json:"sector"`
	Photo        string    `json:"photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
