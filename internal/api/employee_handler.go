package api

import (
	"net/http"
	"strconv"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EmployeeHandler handles employee endpoints
type EmployeeHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(services *service.Services, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		services: services,
		log:      log.With().Str("handler", "employee").Logger(),
	}
}

// List handles GET /v1/employees, optionally filtered by ?department=
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		employees []models.Employee
		err       error
	)
	if raw := c.Query("department"); raw != "" {
		dept, perr := models.ParseDepartment(raw)
		if perr != nil {
			writeError(c, h.log, perr)
			return
		}
		employees, err = h.services.Employee.ByDepartment(ctx, dept)
	} else {
		employees, err = h.services.Employee.List(ctx)
	}
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, models.OK(employees))
}

// Names handles GET /v1/employees/names
func (h *EmployeeHandler) Names(c *gin.Context) {
	names, err := h.services.Employee.Names(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(names))
}

// Count handles GET /v1/employees/count
func (h *EmployeeHandler) Count(c *gin.Context) {
	total, err := h.services.Employee.Total(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(total))
}

// Search handles GET /v1/employees/search?name=
func (h *EmployeeHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, models.Fail("name parameter is required"))
		return
	}

	emp, err := h.services.Employee.FindByName(c.Request.Context(), name)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(emp))
}

// Fetch handles GET /v1/employees/fetch. The response arrives once the
// deferred fetch resolves.
func (h *EmployeeHandler) Fetch(c *gin.Context) {
	emp, err := h.services.Employee.FetchEmployee(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(emp))
}

// Preview handles GET /v1/employees/:id/preview
func (h *EmployeeHandler) Preview(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	preview, err := h.services.Employee.Preview(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(preview))
}

// Summary handles GET /v1/employees/:id/summary, the record without skills
func (h *EmployeeHandler) Summary(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	summary, err := h.services.Employee.WithoutSkills(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, models.OK(summary))
}

// ValidateUpdate handles POST /v1/employees/updates/validate.
// The patch is checked and echoed back; nothing is stored.
func (h *EmployeeHandler) ValidateUpdate(c *gin.Context) {
	var update models.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("invalid request body"))
		return
	}

	violations, err := h.services.Employee.ValidateUpdate(c.Request.Context(), &update)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, models.Invalid("invalid update", violations))
		return
	}

	c.JSON(http.StatusOK, models.OK(update))
}

// Export handles GET /v1/employees/export?format=ndjson|json|csv
func (h *EmployeeHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatNDJSON)
	if format != service.FormatNDJSON && format != service.FormatJSON && format != service.FormatCSV {
		c.JSON(http.StatusBadRequest, models.Fail("format must be one of: ndjson, json, csv"))
		return
	}

	c.Header("Content-Type", service.ContentType(format))
	c.Header("Content-Disposition", "attachment; filename=employees."+format)
	c.Status(http.StatusOK)

	count, err := h.services.Export.StreamEmployees(c.Request.Context(), c.Writer, format)
	if err != nil {
		// Can't return error JSON after streaming has started
		h.log.Error().Err(err).Str("format", format).Int("written", count).Msg("Export failed")
	}
}

func (h *EmployeeHandler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("id must be an integer"))
		return 0, false
	}
	return id, true
}
