package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/employee-playground/internal/models"
	"github.com/employee-playground/internal/repository"
	"github.com/employee-playground/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// Pinger reports whether a backing store is reachable
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router. store may be nil when
// employees are served from memory.
func NewRouter(services *service.Services, store Pinger, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	employeeHandler := NewEmployeeHandler(services, log)
	greetingHandler := NewGreetingHandler(log)

	router.GET("/health", healthCheck(store))
	router.GET("/hello", greetingHandler.Hello)

	v1 := router.Group("/v1")
	{
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.List)
			employees.GET("/names", employeeHandler.Names)
			employees.GET("/count", employeeHandler.Count)
			employees.GET("/search", employeeHandler.Search)
			employees.GET("/fetch", employeeHandler.Fetch)
			employees.GET("/export", employeeHandler.Export)
			employees.GET("/:id/preview", employeeHandler.Preview)
			employees.GET("/:id/summary", employeeHandler.Summary)
			employees.POST("/updates/validate", employeeHandler.ValidateUpdate)
		}

		v1.GET("/bonus", greetingHandler.Bonus)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "employee-playground",
		}

		if store != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := store.HealthCheck(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "unhealthy"
				body["error"] = err.Error()
			}
		}

		c.JSON(status, body)
	}
}

// writeError maps a service error onto an HTTP status and the failure envelope
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, models.ErrInvalidDepartment):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		message = "request cancelled"
	}

	if status >= 500 {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.JSON(status, models.Fail(message))
}

// requestIDMiddleware tags every request with an id, reusing the caller's
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Str("request_id", c.GetString("request_id")).Msg("Panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.Fail("internal server error"))
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
