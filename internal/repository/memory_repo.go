package repository

import (
	"context"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/pkg/query"
)

// memoryEmployeeRepo serves a fixed list constructed once. It is never
// written after construction, so reads need no locking.
type memoryEmployeeRepo struct {
	employees []models.Employee
}

// NewMemoryEmployeeRepo creates a repository over a copy of employees
func NewMemoryEmployeeRepo(employees []models.Employee) EmployeeRepository {
	return &memoryEmployeeRepo{
		employees: query.Map(employees, models.Employee.Clone),
	}
}

// List returns copies of all employees in list order
func (r *memoryEmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return query.Map(r.employees, models.Employee.Clone), nil
}

// GetByID returns the first employee with the given id
func (r *memoryEmployeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	emp, ok := query.Find(r.employees, func(e models.Employee) bool { return e.ID == id })
	if !ok {
		return nil, ErrNotFound
	}
	out := emp.Clone()
	return &out, nil
}

// StreamAll calls callback for each employee in order, stopping at the
// first error
func (r *memoryEmployeeRepo) StreamAll(ctx context.Context, callback func(*models.Employee) error) error {
	for _, e := range r.employees {
		if err := ctx.Err(); err != nil {
			return err
		}
		emp := e.Clone()
		if err := callback(&emp); err != nil {
			return err
		}
	}
	return nil
}
