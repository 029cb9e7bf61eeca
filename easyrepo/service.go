package easyrepo

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/fast-service-employees/models"
)

// HookType identifies when a registered hook runs
type HookType int

const (
	BeforeCreate HookType = iota
	BeforeUpdate
)

// EmployeeService centralizes business logic and data validation
// It encapsulates the repository, uses the validator to ensure data integrity
// and enforces the existence rules before any mutation
type EmployeeService struct {
	valid    *validator.Validate
	repo     *EmployeeRepository
	hooks    *Hooks
	sortByID bool
}

// Hooks stores the data validations and business logic registered for
// execution before creates and updates
type Hooks struct {
	BeforeCreate []BeforeSaveHook
	BeforeUpdate []BeforeSaveHook
}

// BeforeSaveHook allows you to create custom validation and/or transformation functions
// which are applied before performing the update or create.
// existing is nil on creates.
type BeforeSaveHook func(ctx context.Context, item *models.Employee, existing *models.Employee) error

// Option configures an EmployeeService
type Option func(*EmployeeService)

// WithSortByID makes List return employees ordered by id instead of store order
func WithSortByID(enabled bool) Option {
	return func(s *EmployeeService) {
		s.sortByID = enabled
	}
}

// NewService creates a new EmployeeService with a default validator over the given store
func NewService(store Store, opts ...Option) *EmployeeService {
	s := &EmployeeService{
		valid: validator.New(),
		repo:  NewRepository(store),
		hooks: &Hooks{
			BeforeCreate: make([]BeforeSaveHook, 0),
			BeforeUpdate: make([]BeforeSaveHook, 0),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterHook allows the injection of custom logic for validating and handling the request
func (s *EmployeeService) RegisterHook(hookType HookType, fn BeforeSaveHook) {
	switch hookType {
	case BeforeCreate:
		s.hooks.BeforeCreate = append(s.hooks.BeforeCreate, fn)
	case BeforeUpdate:
		s.hooks.BeforeUpdate = append(s.hooks.BeforeUpdate, fn)
	default:
		return
	}
}

// RegisterValidation allows adding custom validation rules to validator
func (s *EmployeeService) RegisterValidation(name string, fn validator.Func) error {
	if s.valid == nil {
		s.valid = validator.New()
	}
	return s.valid.RegisterValidation(name, fn)
}

func (s *EmployeeService) validate(ctx context.Context, e *models.Employee) error {
	if e == nil {
		return ErrInvalidInput
	}
	if err := s.valid.StructCtx(ctx, *e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// Create validates the employee, rejects an id already in use and persists it.
// Returns ErrInvalidInput or ErrAlreadyExists.
func (s *EmployeeService) Create(ctx context.Context, e *models.Employee) error {
	if err := s.validate(ctx, e); err != nil {
		return err
	}

	exists, err := s.repo.exists(ctx, e.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, e.ID)
	}

	for _, hook := range s.hooks.BeforeCreate {
		if err := hook(ctx, e, nil); err != nil {
			return err
		}
	}
	return s.repo.create(ctx, e)
}

// Get retrieves an employee by id
// Returns ErrInvalidInput for an empty id and ErrNotFound when absent
func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}

	exists, err := s.repo.exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.repo.get(ctx, id)
}

// Update validates the employee and overwrites all of its mutable fields.
// The employee must already exist.
func (s *EmployeeService) Update(ctx context.Context, e *models.Employee) error {
	if err := s.validate(ctx, e); err != nil {
		return err
	}

	// Hooks de update recebem o registro atual, então só lemos o item quando há hooks
	if len(s.hooks.BeforeUpdate) > 0 {
		existing, err := s.repo.get(ctx, e.ID)
		if err != nil {
			return err
		}
		for _, hook := range s.hooks.BeforeUpdate {
			if err := hook(ctx, e, existing); err != nil {
				return err
			}
		}
	} else {
		exists, err := s.repo.exists(ctx, e.ID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrNotFound, e.ID)
		}
	}

	return s.repo.update(ctx, e)
}

// Delete removes an existing employee
// Returns ErrInvalidInput for an empty id and ErrNotFound when absent
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}

	exists, err := s.repo.exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.repo.delete(ctx, id)
}

// List returns every stored employee (Scan operation, no pagination).
// An empty table yields an empty, non-nil slice.
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.list(ctx)
	if err != nil {
		return nil, err
	}
	if s.sortByID {
		sort.Slice(employees, func(i, j int) bool {
			return employees[i].ID < employees[j].ID
		})
	}
	return employees, nil
}
