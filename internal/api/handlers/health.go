package handlers

import (
	"context"
	"time"

	"github.com/RMahshie/filterform/pkg/models"
)

// HealthHandler reports service health
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health returns the health status of the service
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
	resp := &models.HealthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Version = h.version
	resp.Body.Time = time.Now()
	return resp, nil
}
