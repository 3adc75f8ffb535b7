package service

import (
	"context"
	"fmt"
	"time"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
	"github.com/employee-playground/internal/validation"
	"github.com/employee-playground/pkg/query"
	"github.com/rs/zerolog"
)

// FetchDelay is how long FetchEmployee takes to resolve
const FetchDelay = time.Second

// employeeService is the concrete implementation of EmployeeService
type employeeService struct {
	repo repository.EmployeeRepository
	log  zerolog.Logger
}

func newEmployeeService(repo repository.EmployeeRepository, log zerolog.Logger) *employeeService {
	return &employeeService{
		repo: repo,
		log:  log.With().Str("service", "employee").Logger(),
	}
}

// NewEmployeeService creates an EmployeeService over repo
func NewEmployeeService(repo repository.EmployeeRepository, log zerolog.Logger) EmployeeService {
	return newEmployeeService(repo, log)
}

// List returns every employee in list order
func (s *employeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.repo.List(ctx)
}

// Names returns each employee's name in list order
func (s *employeeService) Names(ctx context.Context) ([]string, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Map(employees, func(e models.Employee) string { return e.Name }), nil
}

// ByDepartment returns the employees in dept, keeping list order
func (s *employeeService) ByDepartment(ctx context.Context, dept models.Department) ([]models.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(employees, func(e models.Employee) bool { return e.Department == dept }), nil
}

// FindByName returns the first employee named name, or
// repository.ErrNotFound
func (s *employeeService) FindByName(ctx context.Context, name string) (*models.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	emp, ok := query.Find(employees, func(e models.Employee) bool { return e.Name == name })
	if !ok {
		return nil, fmt.Errorf("employee %q: %w", name, repository.ErrNotFound)
	}
	return &emp, nil
}

// Total counts the employees by folding over the list
func (s *employeeService) Total(ctx context.Context) (int, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return query.Count(employees), nil
}

// Preview returns the id/name projection of one employee
func (s *employeeService) Preview(ctx context.Context, id int) (*models.EmployeePreview, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("employee %d: %w", id, err)
	}
	p := emp.Preview()
	return &p, nil
}

// WithoutSkills returns one employee without its skills
func (s *employeeService) WithoutSkills(ctx context.Context, id int) (*models.EmployeeWithoutSkills, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("employee %d: %w", id, err)
	}
	w := emp.WithoutSkills()
	return &w, nil
}

// ValidateUpdate checks a patch against the current employee ids.
// The patch is not applied.
func (s *employeeService) ValidateUpdate(ctx context.Context, update *models.EmployeeUpdate) ([]validation.ValidationError, error) {
	ids := []int{}
	err := s.repo.StreamAll(ctx, func(e *models.Employee) error {
		ids = append(ids, e.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	v := validation.NewValidator()
	v.SetKnownIDs(ids)
	return v.ValidateUpdate(update), nil
}

// FetchEmployee resolves after FetchDelay with the fixed employee record.
// It only fails when ctx ends first.
func (s *employeeService) FetchEmployee(ctx context.Context) (*models.Employee, error) {
	start := time.Now()
	timer := time.NewTimer(FetchDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("Employee fetch cancelled")
		return nil, ctx.Err()
	case <-timer.C:
	}

	emp := fetchedEmployee()
	s.log.Debug().
		Int("employee_id", emp.ID).
		Dur("duration", time.Since(start)).
		Msg("Employee fetched")
	return &emp, nil
}

func fetchedEmployee() models.Employee {
	return models.Employee{
		ID:         101,
		Name:       "yogesh",
		Skills:     []string{"C#", "React"},
		Department: models.DepartmentIT,
	}
}
