package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/localmark/store-directory/internal/infrastructure/db/memory"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. The store is process-local,
// so readiness reports collection sizes rather than pinging dependencies.
type ReadinessHandler struct {
	db *memory.DB
}

func NewReadinessHandler(db *memory.DB) *ReadinessHandler {
	return &ReadinessHandler{db: db}
}

type readinessResponse struct {
	Status      string         `json:"status"`
	Collections map[string]int `json:"collections"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	users, stores, ratings := h.db.Counts()
	return c.JSON(http.StatusOK, readinessResponse{
		Status: "ok",
		Collections: map[string]int{
			"users":   users,
			"stores":  stores,
			"ratings": ratings,
		},
	})
}
