package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/application/usecase"
	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
	"github.com/rzahabc/employee-management-app/internal/infrastructure/memstore"
)

func newEmployeeUC() *usecase.EmployeeUseCase {
	return usecase.NewEmployeeUseCase(memstore.New().Employees())
}

func ptr(s string) *string { return &s }

func sampleEmployee(name, sector string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:         name,
		Rank:         "نقيب",
		Seniority:    "2015",
		Phone:        "0100000000",
		AssignedWork: "الإدارة",
		Sector:       sector,
	}
}

func TestEmployeeCreate_SellaTimestampsEIDs(t *testing.T) {
	uc := newEmployeeUC()

	a, err := uc.Create(sampleEmployee("أحمد علي", "القطاع الأول"))
	require.NoError(t, err)
	b, err := uc.Create(sampleEmployee("محمد حسن", "القطاع الأول"))
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "cada creación genera un id distinto")
	assert.Equal(t, a.CreatedAt, a.UpdatedAt, "al crear, created_at == updated_at")
}

func TestEmployeeUpdate_MergeParcial(t *testing.T) {
	uc := newEmployeeUC()

	created, err := uc.Create(sampleEmployee("أحمد علي", "القطاع الأول"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := uc.Update(created.ID, dto.UpdateEmployeeRequest{Rank: ptr("رائد")})
	require.NoError(t, err)

	// Solo cambia el campo presente; el resto queda intacto.
	assert.Equal(t, "رائد", updated.Rank)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.Sector, updated.Sector)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at avanza en cada actualización")
}

func TestEmployeeUpdate_VacioPresenteSobrescribe(t *testing.T) {
	uc := newEmployeeUC()

	req := sampleEmployee("أحمد علي", "القطاع الأول")
	req.Photo = "base64data"
	created, err := uc.Create(req)
	require.NoError(t, err)

	// nil no toca; puntero a cadena vacía borra el valor.
	updated, err := uc.Update(created.ID, dto.UpdateEmployeeRequest{Photo: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Photo)
	assert.Equal(t, created.Name, updated.Name)
}

func TestEmployeeUpdate_NoExiste(t *testing.T) {
	uc := newEmployeeUC()

	_, err := uc.Update("no-such-id", dto.UpdateEmployeeRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeDelete_NoExiste(t *testing.T) {
	uc := newEmployeeUC()

	err := uc.Delete("no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeList_FiltroBusquedaPorNombre(t *testing.T) {
	uc := newEmployeeUC()

	_, err := uc.Create(sampleEmployee("أحمد علي", "القطاع الأول"))
	require.NoError(t, err)
	_, err = uc.Create(sampleEmployee("محمد حسن", "القطاع الثاني"))
	require.NoError(t, err)

	list, err := uc.List(repository.EmployeeFilter{Search: "أحمد"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "أحمد علي", list[0].Name)
}

func TestEmployeeList_BusquedaInsensibleAMayusculas(t *testing.T) {
	uc := newEmployeeUC()

	_, err := uc.Create(sampleEmployee("Ahmed Ali", "القطاع الأول"))
	require.NoError(t, err)

	list, err := uc.List(repository.EmployeeFilter{Search: "AHMED"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEmployeeList_FiltrosCombinadosConAND(t *testing.T) {
	uc := newEmployeeUC()

	_, err := uc.Create(sampleEmployee("أحمد علي", "القطاع الأول"))
	require.NoError(t, err)
	_, err = uc.Create(sampleEmployee("أحمد حسن", "القطاع الثاني"))
	require.NoError(t, err)

	list, err := uc.List(repository.EmployeeFilter{
		Search: "أحمد",
		Sector: "القطاع الثاني",
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "أحمد حسن", list[0].Name)

	// Un predicado que no coincide anula la coincidencia del otro.
	list, err = uc.List(repository.EmployeeFilter{
		Search: "أحمد",
		Sector: "قطاع غير موجود",
	})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeList_OrdenDeInsercion(t *testing.T) {
	uc := newEmployeeUC()

	names := []string{"أول", "ثاني", "ثالث"}
	for _, n := range names {
		_, err := uc.Create(sampleEmployee(n, "القطاع الأول"))
		require.NoError(t, err)
	}

	list, err := uc.List(repository.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, list, len(names))
	for i, n := range names {
		assert.Equal(t, n, list[i].Name)
	}
}

func TestEmployeeGetByID_NoExiste(t *testing.T) {
	uc := newEmployeeUC()

	got, err := uc.GetByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}
