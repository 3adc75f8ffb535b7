package service

import (
	"context"
	"io"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
	"github.com/employee-playground/internal/validation"
	"github.com/rs/zerolog"
)

// EmployeeService defines the queries over the employee list
type EmployeeService interface {
	List(ctx context.Context) ([]models.Employee, error)
	Names(ctx context.Context) ([]string, error)
	ByDepartment(ctx context.Context, dept models.Department) ([]models.Employee, error)
	FindByName(ctx context.Context, name string) (*models.Employee, error)
	Total(ctx context.Context) (int, error)
	Preview(ctx context.Context, id int) (*models.EmployeePreview, error)
	WithoutSkills(ctx context.Context, id int) (*models.EmployeeWithoutSkills, error)
	ValidateUpdate(ctx context.Context, update *models.EmployeeUpdate) ([]validation.ValidationError, error)
	FetchEmployee(ctx context.Context) (*models.Employee, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	StreamEmployees(ctx context.Context, w io.Writer, format string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Employee EmployeeService
	Export   ExportService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Employee: newEmployeeService(repos.Employee, log),
		Export:   newExportService(repos, log),
	}
}
