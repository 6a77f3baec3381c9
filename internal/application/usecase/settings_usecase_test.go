package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rzahabc/employee-management-app/internal/application/dto"
	"github.com/rzahabc/employee-management-app/internal/application/usecase"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/infrastructure/memstore"
)

func newSettingsUC() *usecase.SettingsUseCase {
	return usecase.NewSettingsUseCase(memstore.New().Settings())
}

func TestSettingsGet_AutoReparaConDefaults(t *testing.T) {
	uc := newSettingsUC()

	got, err := uc.Get()
	require.NoError(t, err)
	require.NotNil(t, got)

	defaults := entity.DefaultSettings()
	assert.Equal(t, entity.SettingsID, got.ID)
	assert.Equal(t, defaults.HeaderText, got.HeaderText)
	assert.Equal(t, defaults.FooterText, got.FooterText)
	assert.Empty(t, got.Logo)

	// La segunda lectura devuelve el mismo documento, no vuelve a crearlo.
	again, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestSettingsUpdate_MergeParcial(t *testing.T) {
	uc := newSettingsUC()

	_, err := uc.Get() // siembra los defaults
	require.NoError(t, err)

	updated, err := uc.Update(dto.UpdateSettingsRequest{HeaderText: ptr("عنوان جديد")})
	require.NoError(t, err)

	assert.Equal(t, "عنوان جديد", updated.HeaderText)
	assert.Equal(t, entity.DefaultSettings().FooterText, updated.FooterText, "el campo ausente no se toca")
}

func TestSettingsUpdate_UpsertSinDocumentoPrevio(t *testing.T) {
	uc := newSettingsUC()

	// Sin Get previo: el upsert crea el documento con el id fijo.
	updated, err := uc.Update(dto.UpdateSettingsRequest{FooterText: ptr("تذييل")})
	require.NoError(t, err)

	assert.Equal(t, entity.SettingsID, updated.ID)
	assert.Equal(t, "تذييل", updated.FooterText)
	assert.Empty(t, updated.HeaderText, "el documento nace solo con los campos presentes")
}

func TestSettingsUpdate_VacioPresenteBorraLogo(t *testing.T) {
	uc := newSettingsUC()

	_, err := uc.Update(dto.UpdateSettingsRequest{Logo: ptr("base64logo")})
	require.NoError(t, err)

	updated, err := uc.Update(dto.UpdateSettingsRequest{Logo: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.Logo)
}
