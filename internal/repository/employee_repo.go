package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/employee-playground/internal/database"
	"github.com/employee-playground/internal/models"
	"github.com/lib/pq"
)

const employeeColumns = `id, name, email, skills, department`

// employeeRepo is the PostgreSQL implementation of EmployeeRepository
type employeeRepo struct {
	db *database.DB
}

// NewEmployeeRepo creates a new employee repository
func NewEmployeeRepo(db *database.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var (
		emp   models.Employee
		email sql.NullString
		dept  string
	)
	if err := row.Scan(&emp.ID, &emp.Name, &email, pq.Array(&emp.Skills), &dept); err != nil {
		return nil, err
	}
	if email.Valid {
		emp.Email = &email.String
	}
	if emp.Skills == nil {
		emp.Skills = []string{}
	}
	emp.Department = models.Department(dept)
	return &emp, nil
}

// List returns all employees in insertion order
func (r *employeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := r.StreamAll(ctx, func(e *models.Employee) error {
		employees = append(employees, *e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// GetByID retrieves an employee by ID
func (r *employeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 ORDER BY position LIMIT 1`

	emp, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return emp, nil
}

// StreamAll streams all employees in insertion order
func (r *employeeRepo) StreamAll(ctx context.Context, callback func(*models.Employee) error) error {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return err
		}
		if err := callback(emp); err != nil {
			return err
		}
	}

	return rows.Err()
}
