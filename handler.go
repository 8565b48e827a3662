package main

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"fitcalc/internal/calc"
	"fitcalc/internal/nutrition"
	"fitcalc/internal/tracker"
)

// Handler holds shared dependencies for all route handlers.
type Handler struct {
	store tracker.Store
	now   func() time.Time // overridable for tests
}

func newHandler(store tracker.Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// errorStatus maps domain errors onto HTTP statuses. Anything unrecognised is
// a server error.
func errorStatus(err error) int {
	var ve *nutrition.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, calc.ErrInvalidInput),
		errors.Is(err, tracker.ErrInvalidEntry):
		return http.StatusBadRequest
	case errors.Is(err, tracker.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrEntryExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// failWith writes err with its mapped status. Server errors are logged and
// replaced by fallback so driver details never reach the client.
func failWith(c *gin.Context, fn string, err error, fallback string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[%s] %v", fn, err)
		apiError(c, status, fallback)
		return
	}
	apiError(c, status, err.Error())
}

/* ─── Middleware ──────────────────────────────────────────────────────── */

// requestLogger tags each request with an X-Request-ID (kept if the client
// sent one) and logs method, path, status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)

		c.Next()

		log.Printf("[request] %s %s %s -> %d (%v)",
			id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

/* ─── Server setup ────────────────────────────────────────────────────── */

// newRouter builds the gin engine with middleware and all routes.
func newRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)
	return router
}

// newServerHandler wraps the router with CORS handling for the given origins.
func newServerHandler(h *Handler, origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(newRouter(h))
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api")

	api.POST("/nutrition/plan", h.computePlan)
	api.GET("/nutrition/plans", h.listPlans)
	api.GET("/nutrition/plans/:id", h.getPlan)
	api.GET("/nutrition/templates", h.listTemplates)
	api.GET("/nutrition/templates/:goal", h.getTemplate)

	api.POST("/calc/bmi", h.calcBMI)
	api.POST("/calc/body-fat", h.calcBodyFat)
	api.POST("/calc/water", h.calcWater)
	api.POST("/calc/ideal-weight", h.calcIdealWeight)
	api.POST("/calc/macros", h.calcMacros)
	api.POST("/calc/projection", h.calcProjection)

	api.GET("/weight-log", h.getWeightLog)
	api.POST("/weight-log", h.createWeightEntry)
	api.PUT("/weight-log/:id", h.updateWeightEntry)
	api.DELETE("/weight-log/:id", h.deleteWeightEntry)
	api.DELETE("/weight-log", h.clearWeightLog)

	router.POST("/mcp", h.handleMCP)
}
