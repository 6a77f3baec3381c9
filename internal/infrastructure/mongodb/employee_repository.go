package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rzahabc/employee-management-app/internal/domain"
	"github.com/rzahabc/employee-management-app/internal/domain/entity"
	"github.com/rzahabc/employee-management-app/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre MongoDB.
type EmployeeRepo struct {
	col *mongo.Collection
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{col: db.Collection("employees")}
}

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	if _, err := r.col.InsertOne(context.Background(), e); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por id; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.col.FindOne(context.Background(), bson.M{"id": id}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return &e, nil
}

// List lista empleados aplicando los predicados activos del filtro (AND
// implícito), en orden nativo del almacén y hasta limit.
func (r *EmployeeRepo) List(f repository.EmployeeFilter, limit int) ([]*entity.Employee, error) {
	query := bson.M{}
	if f.Search != "" {
		query["name"] = substringFold(f.Search)
	}
	if f.Sector != "" {
		query["sector"] = f.Sector
	}
	if f.Seniority != "" {
		query["seniority"] = f.Seniority
	}
	if f.AssignedWork != "" {
		query["assigned_work"] = substringFold(f.AssignedWork)
	}

	ctx := context.Background()
	cur, err := r.col.Find(ctx, query, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)
	var list []*entity.Employee
	for cur.Next(ctx) {
		var e entity.Employee
		if err := cur.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, cur.Err()
}

// Update aplica los campos presentes del patch en un único $set atómico.
// updated_at se refresca siempre, aunque el patch venga vacío.
func (r *EmployeeRepo) Update(id string, patch entity.EmployeePatch) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	setIfPresent(set, "name", patch.Name)
	setIfPresent(set, "rank", patch.Rank)
	setIfPresent(set, "seniority", patch.Seniority)
	setIfPresent(set, "phone", patch.Phone)
	setIfPresent(set, "assigned_work", patch.AssignedWork)
	setIfPresent(set, "sector", patch.Sector)
	setIfPresent(set, "photo", patch.Photo)

	res, err := r.col.UpdateOne(context.Background(),
		bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleado por id.
func (r *EmployeeRepo) Delete(id string) error {
	res, err := r.col.DeleteOne(context.Background(), bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
