package mocks

import (
	"context"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
// Set Err to make every call fail. Calls counts every method invocation.
type MockEmployeeRepository struct {
	Employees []models.Employee
	Err       error
	Calls     int
}

// Verify interface compliance
var _ repository.EmployeeRepository = (*MockEmployeeRepository)(nil)

func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		Employees: make([]models.Employee, 0),
	}
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Employee, 0, len(m.Employees))
	for _, e := range m.Employees {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Employees {
		if e.ID == id {
			c := e.Clone()
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockEmployeeRepository) StreamAll(ctx context.Context, callback func(*models.Employee) error) error {
	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	for _, e := range m.Employees {
		c := e.Clone()
		if err := callback(&c); err != nil {
			return err
		}
	}
	return nil
}
