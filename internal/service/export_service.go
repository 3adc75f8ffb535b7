package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
	"github.com/rs/zerolog"
)

// Export formats
const (
	FormatNDJSON = "ndjson"
	FormatJSON   = "json"
	FormatCSV    = "csv"
)

// ContentType returns the MIME type for an export format
func ContentType(format string) string {
	switch format {
	case FormatNDJSON:
		return "application/x-ndjson"
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// exportService is the concrete implementation of ExportService
type exportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(repos *repository.Repositories, log zerolog.Logger) *exportService {
	return &exportService{
		repos: repos,
		log:   log.With().Str("service", "export").Logger(),
	}
}

// StreamEmployees writes every employee to w in the given format and
// returns how many records were written
func (s *exportService) StreamEmployees(ctx context.Context, w io.Writer, format string) (int, error) {
	s.log.Info().Str("format", format).Msg("Starting employees export")

	var (
		count int
		err   error
	)
	switch format {
	case FormatNDJSON:
		count, err = s.streamNDJSON(ctx, w)
	case FormatJSON:
		count, err = s.streamJSON(ctx, w)
	case FormatCSV:
		count, err = s.streamCSV(ctx, w)
	default:
		return 0, fmt.Errorf("unsupported format: %s", format)
	}

	s.log.Info().Int("count", count).Msg("Employees export completed")
	return count, err
}

func (s *exportService) streamNDJSON(ctx context.Context, w io.Writer) (int, error) {
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	count := 0

	err := s.repos.Employee.StreamAll(ctx, func(emp *models.Employee) error {
		if err := enc.Encode(emp); err != nil {
			return err
		}
		count++

		// Flush every 100 records for streaming
		if count%100 == 0 && flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	return count, err
}

func (s *exportService) streamJSON(ctx context.Context, w io.Writer) (int, error) {
	if _, err := io.WriteString(w, "["); err != nil {
		return 0, err
	}
	count := 0

	err := s.repos.Employee.StreamAll(ctx, func(emp *models.Employee) error {
		if count > 0 {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		data, err := json.Marshal(emp)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	_, err = io.WriteString(w, "]")
	return count, err
}

func (s *exportService) streamCSV(ctx context.Context, w io.Writer) (int, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "name", "email", "skills", "department"}); err != nil {
		return 0, err
	}
	count := 0

	err := s.repos.Employee.StreamAll(ctx, func(emp *models.Employee) error {
		email := ""
		if emp.Email != nil {
			email = *emp.Email
		}
		record := []string{
			strconv.Itoa(emp.ID),
			emp.Name,
			email,
			strings.Join(emp.Skills, ";"),
			string(emp.Department),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
		count++
		return nil
	})

	writer.Flush()
	if err == nil {
		err = writer.Error()
	}
	return count, err
}
