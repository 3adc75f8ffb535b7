package mocks

import (
	"context"
	"fmt"
	"io"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
	"github.com/employee-playground/internal/service"
	"github.com/employee-playground/internal/validation"
)

// MockEmployeeService is a mock implementation of EmployeeService that
// answers from an in-memory list and returns Fetched without waiting
type MockEmployeeService struct {
	Employees  []models.Employee
	Fetched    *models.Employee
	FetchErr   error
	Err        error
	Violations []validation.ValidationError
}

// Verify interface compliance
var _ service.EmployeeService = (*MockEmployeeService)(nil)

func NewMockEmployeeService() *MockEmployeeService {
	return &MockEmployeeService{
		Employees: repository.SeedEmployees(),
	}
}

func (m *MockEmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Employees, nil
}

func (m *MockEmployeeService) Names(ctx context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.Employees))
	for _, e := range m.Employees {
		names = append(names, e.Name)
	}
	return names, nil
}

func (m *MockEmployeeService) ByDepartment(ctx context.Context, dept models.Department) ([]models.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Employee, 0)
	for _, e := range m.Employees {
		if e.Department == dept {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockEmployeeService) FindByName(ctx context.Context, name string) (*models.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Employees {
		if e.Name == name {
			found := e
			return &found, nil
		}
	}
	return nil, fmt.Errorf("employee %q: %w", name, repository.ErrNotFound)
}

func (m *MockEmployeeService) Total(ctx context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Employees), nil
}

func (m *MockEmployeeService) Preview(ctx context.Context, id int) (*models.EmployeePreview, error) {
	emp, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	p := emp.Preview()
	return &p, nil
}

func (m *MockEmployeeService) WithoutSkills(ctx context.Context, id int) (*models.EmployeeWithoutSkills, error) {
	emp, err := m.byID(id)
	if err != nil {
		return nil, err
	}
	w := emp.WithoutSkills()
	return &w, nil
}

func (m *MockEmployeeService) ValidateUpdate(ctx context.Context, update *models.EmployeeUpdate) ([]validation.ValidationError, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Violations, nil
}

func (m *MockEmployeeService) FetchEmployee(ctx context.Context) (*models.Employee, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	if m.Fetched != nil {
		return m.Fetched, nil
	}
	emp := m.Employees[0]
	return &emp, nil
}

func (m *MockEmployeeService) byID(id int) (*models.Employee, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, e := range m.Employees {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, fmt.Errorf("employee %d: %w", id, repository.ErrNotFound)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	StreamFunc func(ctx context.Context, w io.Writer, format string) (int, error)
	Formats    []string
}

// Verify interface compliance
var _ service.ExportService = (*MockExportService)(nil)

func NewMockExportService() *MockExportService {
	return &MockExportService{}
}

func (m *MockExportService) StreamEmployees(ctx context.Context, w io.Writer, format string) (int, error) {
	m.Formats = append(m.Formats, format)
	if m.StreamFunc != nil {
		return m.StreamFunc(ctx, w, format)
	}
	return 0, nil
}
