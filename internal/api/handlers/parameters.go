package handlers

import (
	"context"

	"github.com/RMahshie/filterform/internal/processing"
	"github.com/RMahshie/filterform/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// ParametersHandler handles JSON parameter submissions
type ParametersHandler struct {
	designSvc processing.DesignService
}

// NewParametersHandler creates a new parameters handler
func NewParametersHandler(designSvc processing.DesignService) *ParametersHandler {
	return &ParametersHandler{designSvc: designSvc}
}

// SubmitParameters accepts a set of filter parameters and acknowledges them
func (h *ParametersHandler) SubmitParameters(ctx context.Context, req *models.SubmitParametersRequest) (*models.SubmitParametersResponse, error) {
	params := models.FilterParameters{
		CutoffFrequency: req.Body.CutoffFrequency,
		Gain:            req.Body.Gain,
		C1:              req.Body.C1,
		Approximation:   req.Body.Approximation,
	}

	submission, err := h.designSvc.Submit(ctx, params)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to accept parameters", err)
	}
	log.Debug().Str("submissionID", submission.ID).Msg("Parameters accepted over JSON")

	return &models.SubmitParametersResponse{
		Body: models.SubmitParametersResponseBody{
			ID:              submission.ID,
			CutoffFrequency: submission.Parameters.CutoffFrequency,
			Gain:            submission.Parameters.Gain,
			C1:              submission.Parameters.C1,
			Approximation:   submission.Parameters.Approximation,
			Message:         processing.Describe(submission.Parameters),
			ReceivedAt:      submission.ReceivedAt,
		},
	}, nil
}
