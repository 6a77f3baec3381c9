package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzahabc/employee-management-app/internal/application/auth"
	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/application/usecase"
	"github.com/rzahabc/employee-management-app/internal/infrastructure/memstore"
	apihttp "github.com/rzahabc/employee-management-app/internal/interfaces/http"
)

// newTestApp monta la API completa sobre el almacén en memoria.
func newTestApp() *fiber.App {
	store := memstore.New()
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(store.Users()),
		UserUC:     usecase.NewUserUseCase(store.Users()),
		EmployeeUC: usecase.NewEmployeeUseCase(store.Employees()),
		SectorUC:   usecase.NewSectorUseCase(store.Sectors()),
		SettingsUC: usecase.NewSettingsUseCase(store.Settings()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func ptr(s string) *string { return &s }

func urlEncode(s string) string { return url.QueryEscape(s) }

func employeeBody(name, sector string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:         name,
		Rank:         "نقيب",
		Seniority:    "2015",
		Phone:        "0100000000",
		AssignedWork: "الإدارة",
		Sector:       sector,
	}
}

func TestRootYHealth(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	root := decode[map[string]string](t, resp)
	assert.Equal(t, "running", root["status"])

	resp = doJSON(t, app, fiber.MethodGet, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	health := decode[map[string]string](t, resp)
	assert.Equal(t, "healthy", health["status"])
}

func TestAuth_RegistroYLogin(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: "karim", Password: "secreta"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotContains(t, string(raw), "password", "la respuesta nunca expone la password")

	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(raw, &user))
	assert.Equal(t, "user", user.Role)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "karim", Password: "secreta"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	assert.Equal(t, user.ID, login.ID)
}

func TestAuth_UsernameDuplicadoDevuelve400(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: "karim", Password: "a"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: "karim", Password: "b"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errResp := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "USERNAME_EXISTS", errResp.Code)
	assert.Equal(t, "اسم المستخدم موجود بالفعل", errResp.Message)
}

func TestAuth_CredencialesInvalidas(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: "mona", Password: "clave"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Usuario desconocido y password incorrecta responden 401 con mensajes distintos.
	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "nadie", Password: "x"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "اسم المستخدم غير صحيح", decode[dto.ErrorResponse](t, resp).Message)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "mona", Password: "otra"})
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "كلمة المرور غير صحيحة", decode[dto.ErrorResponse](t, resp).Message)
}

func TestAuth_CamposObligatorios(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "solo-usuario"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestEmployee_CicloCompleto(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/employees/", employeeBody("أحمد علي", "القطاع الأول"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.EmployeeResponse](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	resp = doJSON(t, app, fiber.MethodGet, "/api/employees/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "أحمد علي", got.Name)

	time.Sleep(5 * time.Millisecond)

	// Merge parcial: solo rank viaja en el cuerpo.
	resp = doJSON(t, app, fiber.MethodPut, "/api/employees/"+created.ID,
		dto.UpdateEmployeeRequest{Rank: ptr("رائد")})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.EmployeeResponse](t, resp)
	assert.Equal(t, "رائد", updated.Rank)
	assert.Equal(t, created.Name, updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	resp = doJSON(t, app, fiber.MethodDelete, "/api/employees/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "تم حذف الموظف بنجاح", decode[dto.MessageResponse](t, resp).Message)

	resp = doJSON(t, app, fiber.MethodGet, "/api/employees/"+created.ID, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "الموظف غير موجود", decode[dto.ErrorResponse](t, resp).Message)
}

func TestEmployee_ValidacionDeCamposObligatorios(t *testing.T) {
	app := newTestApp()

	body := employeeBody("أحمد علي", "القطاع الأول")
	body.Phone = ""
	resp := doJSON(t, app, fiber.MethodPost, "/api/employees/", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "جميع الحقول الأساسية للموظف مطلوبة", decode[dto.ErrorResponse](t, resp).Message)
}

func TestEmployee_FiltrosDeListado(t *testing.T) {
	app := newTestApp()

	for _, e := range []dto.CreateEmployeeRequest{
		employeeBody("أحمد علي", "القطاع الأول"),
		employeeBody("أحمد حسن", "القطاع الثاني"),
		employeeBody("محمد سعيد", "القطاع الثاني"),
	} {
		resp := doJSON(t, app, fiber.MethodPost, "/api/employees/", e)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Sin filtros: todos, en orden de inserción.
	resp := doJSON(t, app, fiber.MethodGet, "/api/employees/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	all := decode[[]dto.EmployeeResponse](t, resp)
	require.Len(t, all, 3)
	assert.Equal(t, "أحمد علي", all[0].Name)

	// search + sector combinados con AND.
	resp = doJSON(t, app, fiber.MethodGet,
		"/api/employees/?search="+urlEncode("أحمد")+"&sector="+urlEncode("القطاع الثاني"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	filtered := decode[[]dto.EmployeeResponse](t, resp)
	require.Len(t, filtered, 1)
	assert.Equal(t, "أحمد حسن", filtered[0].Name)
}

func TestUsers_AdministracionDeCuentas(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register",
		dto.RegisterRequest{Username: "karim", Password: "a"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	user := decode[dto.UserResponse](t, resp)

	resp = doJSON(t, app, fiber.MethodGet, "/api/users/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	users := decode[[]dto.UserResponse](t, resp)
	require.Len(t, users, 1)

	// El rol viaja como query param, sin cuerpo.
	resp = doJSON(t, app, fiber.MethodPut, "/api/users/"+user.ID+"/role?role=manager", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "تم تحديث الصلاحية بنجاح", decode[dto.MessageResponse](t, resp).Message)

	resp = doJSON(t, app, fiber.MethodPut, "/api/users/"+user.ID+"/role", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "الصلاحية مطلوبة", decode[dto.ErrorResponse](t, resp).Message)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/users/"+user.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodDelete, "/api/users/"+user.ID, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "المستخدم غير موجود", decode[dto.ErrorResponse](t, resp).Message)
}

func TestSectors_CicloCompleto(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, fiber.MethodPost, "/api/sectors/", dto.CreateSectorRequest{})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "اسم القطاع مطلوب", decode[dto.ErrorResponse](t, resp).Message)

	resp = doJSON(t, app, fiber.MethodPost, "/api/sectors/", dto.CreateSectorRequest{Name: "قطاع مؤقت"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.SectorResponse](t, resp)

	resp = doJSON(t, app, fiber.MethodPut, "/api/sectors/"+created.ID, dto.CreateSectorRequest{Name: "قطاع نهائي"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/sectors/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[[]dto.SectorResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "قطاع نهائي", list[0].Name)

	resp = doJSON(t, app, fiber.MethodPut, "/api/sectors/no-such-id", dto.CreateSectorRequest{Name: "x"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "القطاع غير موجود", decode[dto.ErrorResponse](t, resp).Message)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/sectors/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "تم حذف القطاع بنجاح", decode[dto.MessageResponse](t, resp).Message)
}

func TestSettings_LecturaYMergeParcial(t *testing.T) {
	app := newTestApp()

	// Primera lectura: el singleton se crea con los defaults.
	resp := doJSON(t, app, fiber.MethodGet, "/api/settings", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defaults := decode[dto.SettingsResponse](t, resp)
	assert.Equal(t, "app_settings", defaults.ID)
	assert.NotEmpty(t, defaults.HeaderText)

	resp = doJSON(t, app, fiber.MethodPut, "/api/settings",
		dto.UpdateSettingsRequest{HeaderText: ptr("عنوان جديد")})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.SettingsResponse](t, resp)
	assert.Equal(t, "عنوان جديد", updated.HeaderText)
	assert.Equal(t, defaults.FooterText, updated.FooterText, "el campo ausente no se toca")
}
