package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

// maxEmployees tope de empleados devueltos por listado.
const maxEmployees = 1000

// EmployeeUseCase aplica reglas de negocio para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado: genera id y sella created_at == updated_at.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now().UTC()
	e := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Rank:         in.Rank,
		Seniority:    in.Seniority,
		Phone:        in.Phone,
		AssignedWork: in.AssignedWork,
		Sector:       in.Sector,
		Photo:        in.Photo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(e), nil
}

// GetByID obtiene un empleado por id; (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return entityToEmployeeResponse(e), nil
}

// List lista empleados aplicando los predicados activos del filtro.
func (uc *EmployeeUseCase) List(f repository.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(f, maxEmployees)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmployeeResponse(e))
	}
	return items, nil
}

// Update fusiona solo los campos presentes de la petición (semántica merge,
// nunca replace) y devuelve el registro resultante. updated_at se refresca
// siempre, incluso con un patch vacío.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	patch := entity.EmployeePatch{
		Name:         in.Name,
		Rank:         in.Rank,
		Seniority:    in.Seniority,
		Phone:        in.Phone,
		AssignedWork: in.AssignedWork,
		Sector:       in.Sector,
		Photo:        in.Photo,
	}
	if err := uc.repo.Update(id, patch); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		// Borrado concurrente entre el $set y la relectura.
		return nil, domain.ErrNotFound
	}
	return entityToEmployeeResponse(e), nil
}

// Delete elimina un empleado por id. Propaga domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func entityToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Rank:         e.Rank,
		Seniority:    e.Seniority,
		Phone:        e.Phone,
		AssignedWork: e.AssignedWork,
		Sector:       e.Sector,
		Photo:        e.Photo,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
