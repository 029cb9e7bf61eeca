package easyrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/raywall/fast-service-employees/dyndb"
	"github.com/raywall/fast-service-employees/models"
)

var (
	ErrNotFound      = errors.New("employee not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("employee already exists")
)

// Store é o subconjunto de dyndb.Table usado pelo repositório
type Store interface {
	Exists(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (dyndb.Item, error)
	Put(ctx context.Context, id string, item dyndb.Item) error
	Update(ctx context.Context, id string, item dyndb.Item) error
	Delete(ctx context.Context, id string) error
	ScanAll(ctx context.Context) ([]dyndb.Item, error)
}

// EmployeeRepository manages direct communication with the DynamoDB gateway (dyndb)
// Its methods are internal to the package, encouraging use through EmployeeService
type EmployeeRepository struct {
	Store Store
}

// NewRepository initializes storage for employees
func NewRepository(store Store) *EmployeeRepository {
	return &EmployeeRepository{Store: store}
}

func (r *EmployeeRepository) exists(ctx context.Context, id string) (bool, error) {
	return r.Store.Exists(ctx, id)
}

// list performs a Scan on the table and decodes every item
func (r *EmployeeRepository) list(ctx context.Context) ([]models.Employee, error) {
	items, err := r.Store.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.DecodeEmployees(items)
}

// create uses the PutItem operation to persist the employee
func (r *EmployeeRepository) create(ctx context.Context, e *models.Employee) error {
	return r.Store.Put(ctx, e.ID, models.EncodeEmployee(*e))
}

// get searches for a specific employee by id
func (r *EmployeeRepository) get(ctx context.Context, id string) (*models.Employee, error) {
	item, err := r.Store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, dyndb.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	e, err := models.DecodeEmployee(item)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// update overwrites every mutable attribute of the employee
func (r *EmployeeRepository) update(ctx context.Context, e *models.Employee) error {
	return r.Store.Update(ctx, e.ID, models.EncodeEmployee(*e))
}

// delete removes the employee
func (r *EmployeeRepository) delete(ctx context.Context, id string) error {
	return r.Store.Delete(ctx, id)
}
