package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

var _ repository.SectorRepository = (*SectorRepo)(nil)

// SectorRepo implementación del puerto SectorRepository sobre MongoDB.
type SectorRepo struct {
	col *mongo.Collection
}

// NewSectorRepository construye el adaptador de persistencia para sectores.
func NewSectorRepository(db *mongo.Database) *SectorRepo {
	return &SectorRepo{col: db.Collection("sectors")}
}

// Create persiste un nuevo sector.
func (r *SectorRepo) Create(s *entity.Sector) error {
	if _, err := r.col.InsertOne(context.Background(), s); err != nil {
		return fmt.Errorf("insert sector: %w", err)
	}
	return nil
}

// List devuelve sectores en orden nativo del almacén, hasta limit.
func (r *SectorRepo) List(limit int) ([]*entity.Sector, error) {
	ctx := context.Background()
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Sector
	for cur.Next(ctx) {
		var s entity.Sector
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode sector: %w", err)
		}
		list = append(list, &s)
	}
	return list, cur.Err()
}

// Rename cambia el nombre en un único $set atómico.
func (r *SectorRepo) Rename(id, name string) error {
	res, err := r.col.UpdateOne(context.Background(),
		bson.M{"id": id}, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return fmt.Errorf("rename sector: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un sector por id.
func (r *SectorRepo) Delete(id string) error {
	res, err := r.col.DeleteOne(context.Background(), bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete sector: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count total de sectores en la colección.
func (r *SectorRepo) Count() (int64, error) {
	n, err := r.col.CountDocuments(context.Background(), bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count sectors: %w", err)
	}
	return n, nil
}
