package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/employee-playground/internal/mocks"
	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
	"github.com/employee-playground/internal/service"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServices() *service.Services {
	repos, err := repository.NewInMemory(repository.SeedEmployees())
	if err != nil {
		panic(err)
	}
	return service.NewServices(repos, zerolog.Nop())
}

func TestEmployeeService_Names(t *testing.T) {
	svc := newTestServices().Employee

	names, err := svc.Names(context.Background())
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if diff := cmp.Diff([]string{"yogesh", "Frank", "Alex"}, names); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestEmployeeService_ByDepartment(t *testing.T) {
	svc := newTestServices().Employee
	ctx := context.Background()

	tests := []struct {
		dept      models.Department
		wantNames []string
	}{
		{dept: models.DepartmentIT, wantNames: []string{"yogesh", "Frank"}},
		{dept: models.DepartmentSales, wantNames: []string{"Alex"}},
		{dept: models.DepartmentHR, wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dept), func(t *testing.T) {
			employees, err := svc.ByDepartment(ctx, tt.dept)
			if err != nil {
				t.Fatalf("ByDepartment failed: %v", err)
			}
			names := make([]string, 0, len(employees))
			for _, e := range employees {
				names = append(names, e.Name)
			}
			if diff := cmp.Diff(tt.wantNames, names); diff != "" {
				t.Errorf("ByDepartment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmployeeService_FindByName(t *testing.T) {
	svc := newTestServices().Employee
	ctx := context.Background()

	frank, err := svc.FindByName(ctx, "Frank")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	want := models.Employee{ID: 2, Name: "Frank", Skills: []string{"Angular", "Node"}, Department: models.DepartmentIT}
	if diff := cmp.Diff(want, *frank); diff != "" {
		t.Errorf("FindByName mismatch (-want +got):\n%s", diff)
	}

	_, err = svc.FindByName(ctx, "frank")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for case-mismatched name, got %v", err)
	}
}

func TestEmployeeService_FindByName_FirstMatchWins(t *testing.T) {
	repo := mocks.NewMockEmployeeRepository()
	repo.Employees = []models.Employee{
		{ID: 1, Name: "Frank", Department: models.DepartmentHR},
		{ID: 2, Name: "Frank", Department: models.DepartmentIT},
	}
	svc := service.NewEmployeeService(repo, zerolog.Nop())

	emp, err := svc.FindByName(context.Background(), "Frank")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if emp.ID != 1 {
		t.Errorf("Expected first match (id 1), got id %d", emp.ID)
	}
	if repo.Calls != 1 {
		t.Errorf("Expected a single repository read, got %d", repo.Calls)
	}
}

func TestEmployeeService_Total(t *testing.T) {
	svc := newTestServices().Employee

	total, err := svc.Total(context.Background())
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected 3, got %d", total)
	}
}

func TestEmployeeService_RepositoryErrors(t *testing.T) {
	repo := mocks.NewMockEmployeeRepository()
	repo.Err = errors.New("connection refused")
	svc := service.NewEmployeeService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Names(ctx); err == nil {
		t.Error("Expected Names to surface repository error")
	}
	if _, err := svc.Total(ctx); err == nil {
		t.Error("Expected Total to surface repository error")
	}
	if _, err := svc.Preview(ctx, 1); err == nil {
		t.Error("Expected Preview to surface repository error")
	}
	if repo.Calls != 3 {
		t.Errorf("Expected 3 repository calls, got %d", repo.Calls)
	}
}

func TestEmployeeService_Projections(t *testing.T) {
	svc := newTestServices().Employee
	ctx := context.Background()

	preview, err := svc.Preview(ctx, 101)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if diff := cmp.Diff(models.EmployeePreview{ID: 101, Name: "yogesh"}, *preview); diff != "" {
		t.Errorf("Preview mismatch (-want +got):\n%s", diff)
	}

	without, err := svc.WithoutSkills(ctx, 3)
	if err != nil {
		t.Fatalf("WithoutSkills failed: %v", err)
	}
	if without.Name != "Alex" || without.Department != models.DepartmentSales {
		t.Errorf("Unexpected projection: %+v", without)
	}

	if _, err := svc.Preview(ctx, 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestEmployeeService_ValidateUpdate(t *testing.T) {
	svc := newTestServices().Employee
	ctx := context.Background()

	errs, err := svc.ValidateUpdate(ctx, &models.EmployeeUpdate{Email: models.StringPtr("yogesh@gmail.com")})
	if err != nil {
		t.Fatalf("ValidateUpdate failed: %v", err)
	}
	if len(errs) != 0 {
		t.Errorf("Expected valid update, got %+v", errs)
	}

	id := 99
	errs, _ = svc.ValidateUpdate(ctx, &models.EmployeeUpdate{ID: &id})
	if len(errs) != 1 || errs[0].Field != "id" {
		t.Errorf("Expected unknown id error, got %+v", errs)
	}

	// The list is unchanged
	emp, _ := svc.FindByName(ctx, "yogesh")
	if emp.Email != nil {
		t.Errorf("Update must not be applied, got email %v", *emp.Email)
	}
}

func TestEmployeeService_FetchEmployee(t *testing.T) {
	svc := newTestServices().Employee

	start := time.Now()
	emp, err := svc.FetchEmployee(context.Background())
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("FetchEmployee failed: %v", err)
	}
	if elapsed < service.FetchDelay {
		t.Errorf("Expected fetch to take at least %v, took %v", service.FetchDelay, elapsed)
	}

	want := models.Employee{ID: 101, Name: "yogesh", Skills: []string{"C#", "React"}, Department: models.DepartmentIT}
	if diff := cmp.Diff(want, *emp); diff != "" {
		t.Errorf("FetchEmployee mismatch (-want +got):\n%s", diff)
	}
}

func TestEmployeeService_FetchEmployee_Cancelled(t *testing.T) {
	svc := newTestServices().Employee
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	emp, err := svc.FetchEmployee(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected DeadlineExceeded, got %v", err)
	}
	if emp != nil {
		t.Errorf("Expected no employee, got %+v", emp)
	}
}

func TestExportService_NDJSON(t *testing.T) {
	svc := newTestServices().Export
	var buf bytes.Buffer

	count, err := svc.StreamEmployees(context.Background(), &buf, service.FormatNDJSON)
	if err != nil {
		t.Fatalf("StreamEmployees failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 records, got %d", count)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	var first models.Employee
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Invalid NDJSON line: %v", err)
	}
	if first.Name != "yogesh" {
		t.Errorf("Expected yogesh first, got %s", first.Name)
	}
}

func TestExportService_JSON(t *testing.T) {
	svc := newTestServices().Export
	var buf bytes.Buffer

	if _, err := svc.StreamEmployees(context.Background(), &buf, service.FormatJSON); err != nil {
		t.Fatalf("StreamEmployees failed: %v", err)
	}

	var employees []models.Employee
	if err := json.Unmarshal(buf.Bytes(), &employees); err != nil {
		t.Fatalf("Invalid JSON array: %v", err)
	}
	if diff := cmp.Diff(repository.SeedEmployees(), employees); diff != "" {
		t.Errorf("Export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportService_CSV(t *testing.T) {
	svc := newTestServices().Export
	var buf bytes.Buffer

	if _, err := svc.StreamEmployees(context.Background(), &buf, service.FormatCSV); err != nil {
		t.Fatalf("StreamEmployees failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Invalid CSV: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d", len(records))
	}
	if diff := cmp.Diff([]string{"2", "Frank", "", "Angular;Node", "IT"}, records[2]); diff != "" {
		t.Errorf("CSV row mismatch (-want +got):\n%s", diff)
	}
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	svc := newTestServices().Export
	var buf bytes.Buffer

	if _, err := svc.StreamEmployees(context.Background(), &buf, "xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
