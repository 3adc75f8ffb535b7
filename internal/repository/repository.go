package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/employee-playground/internal/database"
	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/validation"
)

var (
	// ErrNotFound is returned when a record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrInvalidEmployee is returned when a record fails validation on load
	ErrInvalidEmployee = errors.New("invalid employee")
)

// EmployeeRepository defines read access to the employee list.
// Records come back in list order and are copies; callers may not
// change stored data through them.
type EmployeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	GetByID(ctx context.Context, id int) (*models.Employee, error)
	StreamAll(ctx context.Context, callback func(*models.Employee) error) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Employee EmployeeRepository
}

// New creates repositories backed by the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Employee: NewEmployeeRepo(db),
	}
}

// NewInMemory validates employees and creates repositories holding them
// in memory. The first invalid record aborts construction.
func NewInMemory(employees []models.Employee) (*Repositories, error) {
	validator := validation.NewValidator()
	for i := range employees {
		if errs := validator.ValidateEmployee(&employees[i]); len(errs) > 0 {
			return nil, fmt.Errorf("%w at index %d (id %d): %s: %s",
				ErrInvalidEmployee, i, employees[i].ID, errs[0].Field, errs[0].Message)
		}
	}

	return &Repositories{
		Employee: NewMemoryEmployeeRepo(employees),
	}, nil
}

// SeedEmployees returns the fixed three-record employee list
func SeedEmployees() []models.Employee {
	return []models.Employee{
		{ID: 101, Name: "yogesh", Skills: []string{"C#", "React"}, Department: models.DepartmentIT},
		{ID: 2, Name: "Frank", Skills: []string{"Angular", "Node"}, Department: models.DepartmentIT},
		{ID: 3, Name: "Alex", Skills: []string{"Salesforce"}, Department: models.DepartmentSales},
	}
}
