package repository

import "github.com/rzahabc/employee-management-app/internal/domain/entity"

// EmployeeFilter predicados opcionales e independientes para listar empleados;
// los activos se combinan con AND implícito. Un campo vacío no restringe.
// Search y AssignedWork son subcadena sin distinguir mayúsculas;
// Sector y Seniority son igualdad exacta.
type EmployeeFilter struct {
	Search       string // subcadena sobre name
	Sector       string
	Seniority    string
	AssignedWork string // subcadena sobre assigned_work
}

// EmployeeRepository define el puerto de persistencia para Employee.
// Update aplica solo los campos presentes del patch en una única operación
// atómica y refresca siempre updated_at; devuelve domain.ErrNotFound si el id
// no coincidió con ningún documento.
type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	List(f EmployeeFilter, limit int) ([]*entity.Employee, error)
	Update(id string, patch entity.EmployeePatch) error
	Delete(id string) error
}
