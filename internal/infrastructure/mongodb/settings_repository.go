package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre MongoDB.
// Toda operación va dirigida al documento con id fijo entity.SettingsID.
type SettingsRepo struct {
	col *mongo.Collection
}

// NewSettingsRepository construye el adaptador de persistencia para la configuración.
func NewSettingsRepository(db *mongo.Database) *SettingsRepo {
	return &SettingsRepo{col: db.Collection("settings")}
}

// Get obtiene el singleton; (nil, nil) si todavía no existe.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	var s entity.Settings
	err := r.col.FindOne(context.Background(), bson.M{"id": entity.SettingsID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Insert persiste el singleton (solo lo usan el seeder y la auto-reparación de Get).
func (r *SettingsRepo) Insert(s *entity.Settings) error {
	if _, err := r.col.InsertOne(context.Background(), s); err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Upsert aplica los campos presentes del patch con un $set sobre el id fijo,
// creando el documento si no existe. El id entra siempre al $set: fija el
// campo en la rama de inserción y evita un $set vacío.
func (r *SettingsRepo) Upsert(patch entity.SettingsPatch) error {
	set := bson.M{"id": entity.SettingsID}
	setIfPresent(set, "header_text", patch.HeaderText)
	setIfPresent(set, "footer_text", patch.FooterText)
	setIfPresent(set, "logo", patch.Logo)

	_, err := r.col.UpdateOne(context.Background(),
		bson.M{"id": entity.SettingsID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
