// Package memstore implementa los puertos de persistencia sobre memoria,
// preservando el orden de inserción de cada colección. Es el doble de pruebas
// de los adaptadores MongoDB: los tests de casos de uso, seeder y handlers
// corren contra él sin necesitar una base real.
package memstore

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

// Store estado compartido de las cuatro colecciones. Un único mutex protege
// todo: el volumen de datos en tests no justifica granularidad mayor.
type Store struct {
	mu        sync.Mutex
	users     []*entity.User
	employees []*entity.Employee
	sectors   []*entity.Sector
	settings  *entity.Settings
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{}
}

// Users vista del almacén como puerto de usuarios.
func (s *Store) Users() repository.UserRepository { return &userRepo{s} }

// Employees vista del almacén como puerto de empleados.
func (s *Store) Employees() repository.EmployeeRepository { return &employeeRepo{s} }

// Sectors vista del almacén como puerto de sectores.
func (s *Store) Sectors() repository.SectorRepository { return &sectorRepo{s} }

// Settings vista del almacén como puerto del singleton de configuración.
func (s *Store) Settings() repository.SettingsRepository { return &settingsRepo{s} }

var foldCaser = cases.Fold()

// containsFold subcadena sin distinguir mayúsculas (case folding Unicode,
// mismo efecto que la opción "i" de $regex en MongoDB).
func containsFold(s, substr string) bool {
	return strings.Contains(foldCaser.String(s), foldCaser.String(substr))
}

// ── users ────────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

var _ repository.UserRepository = (*userRepo)(nil)

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *userRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(limit int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.User
	for _, u := range r.s.users {
		if len(list) >= limit {
			break
		}
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *userRepo) UpdateRole(id, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *userRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, u := range r.s.users {
		if u.ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── employees ────────────────────────────────────────────────────────────────

type employeeRepo struct{ s *Store }

var _ repository.EmployeeRepository = (*employeeRepo)(nil)

func (r *employeeRepo) Create(e *entity.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.employees = append(r.s.employees, &cp)
	return nil
}

func (r *employeeRepo) GetByID(id string) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.employees {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *employeeRepo) List(f repository.EmployeeFilter, limit int) ([]*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Employee
	for _, e := range r.s.employees {
		if len(list) >= limit {
			break
		}
		if !matches(e, f) {
			continue
		}
		cp := *e
		list = append(list, &cp)
	}
	return list, nil
}

// matches evalúa los predicados activos del filtro con AND implícito.
func matches(e *entity.Employee, f repository.EmployeeFilter) bool {
	if f.Search != "" && !containsFold(e.Name, f.Search) {
		return false
	}
	if f.Sector != "" && e.Sector != f.Sector {
		return false
	}
	if f.Seniority != "" && e.Seniority != f.Seniority {
		return false
	}
	if f.AssignedWork != "" && !containsFold(e.AssignedWork, f.AssignedWork) {
		return false
	}
	return true
}

func (r *employeeRepo) Update(id string, patch entity.EmployeePatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.employees {
		if e.ID != id {
			continue
		}
		applyString(&e.Name, patch.Name)
		applyString(&e.Rank, patch.Rank)
		applyString(&e.Seniority, patch.Seniority)
		applyString(&e.Phone, patch.Phone)
		applyString(&e.AssignedWork, patch.AssignedWork)
		applyString(&e.Sector, patch.Sector)
		applyString(&e.Photo, patch.Photo)
		e.UpdatedAt = time.Now().UTC()
		return nil
	}
	return domain.ErrNotFound
}

func (r *employeeRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, e := range r.s.employees {
		if e.ID == id {
			r.s.employees = append(r.s.employees[:i], r.s.employees[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── sectors ──────────────────────────────────────────────────────────────────

type sectorRepo struct{ s *Store }

var _ repository.SectorRepository = (*sectorRepo)(nil)

func (r *sectorRepo) Create(sec *entity.Sector) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sec
	r.s.sectors = append(r.s.sectors, &cp)
	return nil
}

func (r *sectorRepo) List(limit int) ([]*entity.Sector, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Sector
	for _, sec := range r.s.sectors {
		if len(list) >= limit {
			break
		}
		cp := *sec
		list = append(list, &cp)
	}
	return list, nil
}

func (r *sectorRepo) Rename(id, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sec := range r.s.sectors {
		if sec.ID == id {
			sec.Name = name
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *sectorRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, sec := range r.s.sectors {
		if sec.ID == id {
			r.s.sectors = append(r.s.sectors[:i], r.s.sectors[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *sectorRepo) Count() (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.sectors)), nil
}

// ── settings ─────────────────────────────────────────────────────────────────

type settingsRepo struct{ s *Store }

var _ repository.SettingsRepository = (*settingsRepo)(nil)

func (r *settingsRepo) Get() (*entity.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings == nil {
		return nil, nil
	}
	cp := *r.s.settings
	return &cp, nil
}

func (r *settingsRepo) Insert(set *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *set
	r.s.settings = &cp
	return nil
}

func (r *settingsRepo) Upsert(patch entity.SettingsPatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings == nil {
		// Misma rama de inserción que el upsert de Mongo: el documento nace
		// solo con el id fijo y los campos presentes del patch.
		r.s.settings = &entity.Settings{ID: entity.SettingsID}
	}
	applyString(&r.s.settings.HeaderText, patch.HeaderText)
	applyString(&r.s.settings.FooterText, patch.FooterText)
	applyString(&r.s.settings.Logo, patch.Logo)
	return nil
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
