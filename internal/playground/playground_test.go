package playground_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/employee-playground/internal/playground"
	"github.com/employee-playground/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_Output(t *testing.T) {
	var out bytes.Buffer
	runner := playground.New(&out, zerolog.Nop())

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	const emp1 = `{"id":101,"name":"yogesh","skills":["C#","React"],"department":"IT"}`
	const frank = `{"id":2,"name":"Frank","skills":["Angular","Node"],"department":"IT"}`

	want := []string{
		"Employee Name: yogesh, ID: 101, Active: true",
		"Skills: C#, React, TypeScript",
		"Employee Tuple: ID=101, Name=yogesh",
		"Role: Admin, Department: IT",
		"Employee: " + emp1,
		"yogesh works in IT department.",
		"Hello, yogesh!",
		"Hello, karpe!",
		"55000",
		"57500",
		"Sum: 30",
		"[5]",
		"[TypeScript]",
		`API Response: {"success":true,"data":` + emp1 + `}`,
		`{"email":"yogesh@gmail.com"}`,
		`{"id":101,"name":"yogesh"}`,
		`{"id":101,"name":"yogesh","department":"IT"}`,
		`Names: ["yogesh","Frank","Alex"]`,
		"Employees in IT Department: [" + emp1 + "," + frank + "]",
		"Found Employee: " + frank,
		"Total Employees: 3",
		"Fetched Employee: " + emp1,
	}

	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_CancelledBeforeFetchResolves(t *testing.T) {
	var out bytes.Buffer
	runner := playground.New(&out, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := runner.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected DeadlineExceeded, got %v", err)
	}
	if strings.Contains(out.String(), "Fetched Employee") {
		t.Error("Fetched line must not print when the fetch is cancelled")
	}
}

func TestRun_QueryFailureIsLogged(t *testing.T) {
	var out, logs bytes.Buffer
	runner := playground.New(&out, logger.NewWithWriter(&logs, "error", "json"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected Canceled, got %v", err)
	}
	if strings.Contains(out.String(), "Names:") {
		t.Error("Query lines must not print once the context is done")
	}
	if !strings.Contains(logs.String(), "Playground run failed") {
		t.Errorf("Expected failure to be logged, got %q", logs.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	var logs bytes.Buffer
	runner := playground.New(failingWriter{}, logger.NewWithWriter(&logs, "error", "json"))

	err := runner.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Expected write error, got %v", err)
	}
	if !strings.Contains(logs.String(), "Playground run failed") {
		t.Errorf("Expected failure to be logged, got %q", logs.String())
	}
}
