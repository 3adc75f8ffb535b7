package playground

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/employee-playground/internal/greeting"
	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/payroll"
	"github.com/employee-playground/internal/repository"
	"github.com/employee-playground/internal/service"
	"github.com/employee-playground/pkg/query"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// printer serializes lines from the main walk and the deferred fetch
type printer struct {
	mu  sync.Mutex
	out io.Writer
	err error
}

func (p *printer) println(a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.out, a...)
}

func (p *printer) printf(format string, a ...any) {
	p.println(fmt.Sprintf(format, a...))
}

func toJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// Runner executes the walkthrough
type Runner struct {
	out io.Writer
	log zerolog.Logger
}

// New creates a Runner printing to out
func New(out io.Writer, log zerolog.Logger) *Runner {
	return &Runner{
		out: out,
		log: log.With().Str("component", "playground").Logger(),
	}
}

// Run prints every step in order. The deferred fetch starts before the
// collection queries and its line is printed when it resolves; Run returns
// once it has.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()
	r.log.Info().Msg("Playground run started")

	p := &printer{out: r.out}

	// Basic values
	id := 101
	name := "yogesh"
	isActive := true
	p.printf("Employee Name: %s, ID: %d, Active: %t", name, id, isActive)

	// Slices and pairs
	skills := []string{"C#", "React", "TypeScript"}
	employeeTuple := models.EmployeeTuple{ID: 101, Name: "yogesh"}
	p.printf("Skills: %s", strings.Join(skills, ", "))
	p.printf("Employee Tuple: ID=%d, Name=%s", employeeTuple.ID, employeeTuple.Name)

	// Closed sets
	role := models.RoleAdmin
	dept := models.DepartmentIT
	p.printf("Role: %s, Department: %s", role, dept)

	// Records
	emp1 := models.Employee{
		ID:         101,
		Name:       "yogesh",
		Skills:     []string{"C#", "React"},
		Department: models.DepartmentIT,
	}
	p.printf("Employee: %s", emp1)

	empName, department := emp1.Name, emp1.Department
	p.printf("%s works in %s department.", empName, department)

	// Functions
	p.println(greeting.Greet("yogesh"))
	p.println(greeting.GreetFunc("karpe"))

	p.println(payroll.CalculateBonus(50000))
	p.println(payroll.CalculateBonusWithPercent(50000, 15))

	var add payroll.AddFn = payroll.Add
	p.printf("Sum: %v", add(10, 20))

	p.println(query.WrapInArray(5))
	p.println(query.WrapInArray("TypeScript"))

	empResponse := models.OK(emp1)
	p.printf("API Response: %s", toJSON(empResponse))

	// Projections
	empUpdate := models.EmployeeUpdate{Email: models.StringPtr("yogesh@gmail.com")}
	p.println(toJSON(empUpdate))

	empPreview := models.EmployeePreview{ID: 101, Name: "yogesh"}
	p.println(toJSON(empPreview))

	empWithoutSkills := models.EmployeeWithoutSkills{ID: 101, Name: "yogesh", Department: models.DepartmentIT}
	p.println(toJSON(empWithoutSkills))

	employees := []models.Employee{
		emp1,
		{ID: 2, Name: "Frank", Skills: []string{"Angular", "Node"}, Department: models.DepartmentIT},
		{ID: 3, Name: "Alex", Skills: []string{"Salesforce"}, Department: models.DepartmentSales},
	}
	svc := service.NewEmployeeService(repository.NewMemoryEmployeeRepo(employees), r.log)

	// Deferred fetch
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		employee, err := svc.FetchEmployee(gctx)
		if err != nil {
			return fmt.Errorf("fetch employee: %w", err)
		}
		p.printf("Fetched Employee: %s", toJSON(employee))
		return nil
	})

	// Queries
	if err := r.runQueries(ctx, p, svc); err != nil {
		// Failing the group cancels the pending fetch
		g.Go(func() error { return err })
	}

	err := g.Wait()
	if err == nil && p.err != nil {
		err = fmt.Errorf("write output: %w", p.err)
	}
	if err != nil {
		r.log.Error().Err(err).Msg("Playground run failed")
		return err
	}

	r.log.Info().Dur("duration", time.Since(start)).Msg("Playground run completed")
	return nil
}

func (r *Runner) runQueries(ctx context.Context, p *printer, svc service.EmployeeService) error {
	names, err := svc.Names(ctx)
	if err != nil {
		return err
	}
	p.printf("Names: %s", toJSON(names))

	itDept, err := svc.ByDepartment(ctx, models.DepartmentIT)
	if err != nil {
		return err
	}
	p.printf("Employees in IT Department: %s", toJSON(itDept))

	empFrank, err := svc.FindByName(ctx, "Frank")
	if err != nil {
		return err
	}
	p.printf("Found Employee: %s", toJSON(empFrank))

	totalEmployees, err := svc.Total(ctx)
	if err != nil {
		return err
	}
	p.printf("Total Employees: %d", totalEmployees)
	return nil
}
