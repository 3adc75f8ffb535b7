package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/employee-playground/internal/greeting"
	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/payroll"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// GreetingHandler serves the stateless demo endpoints
type GreetingHandler struct {
	log zerolog.Logger
}

// NewGreetingHandler creates a new GreetingHandler
func NewGreetingHandler(log zerolog.Logger) *GreetingHandler {
	return &GreetingHandler{log: log.With().Str("handler", "greeting").Logger()}
}

// Hello handles GET /hello?name= and renders the greeting heading.
// A missing name renders "Hello, !".
func (h *GreetingHandler) Hello(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)

	if err := greeting.Render(c.Writer, c.Query("name")); err != nil {
		h.log.Error().Err(err).Msg("Failed to render greeting")
	}
}

// Bonus handles GET /v1/bonus?salary=&percent=. NaN and infinite inputs
// or results are rejected since they cannot be encoded as JSON.
func (h *GreetingHandler) Bonus(c *gin.Context) {
	salary, ok := parseFinite(c.Query("salary"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.Fail("salary must be a finite number"))
		return
	}

	percent := payroll.DefaultBonusPercent
	if raw, set := c.GetQuery("percent"); set {
		if percent, ok = parseFinite(raw); !ok {
			c.JSON(http.StatusBadRequest, models.Fail("percent must be a finite number"))
			return
		}
	}

	bonus := payroll.CalculateBonusWithPercent(salary, percent)
	if !isFinite(bonus) {
		c.JSON(http.StatusBadRequest, models.Fail("bonus is out of range"))
		return
	}
	c.JSON(http.StatusOK, models.OK(bonus))
}

func parseFinite(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
