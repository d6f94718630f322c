package processing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/RMahshie/filterform/internal/units"
	"github.com/RMahshie/filterform/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DesignService accepts filter design parameters
type DesignService interface {
	Submit(ctx context.Context, params models.FilterParameters) (*models.DesignSubmission, error)
}

type designService struct {
	now func() time.Time
}

// NewDesignService creates a design service that records submissions in the log.
// No synthesis is performed; the parameters are only acknowledged.
func NewDesignService() DesignService {
	return &designService{now: time.Now}
}

func (s *designService) Submit(ctx context.Context, params models.FilterParameters) (*models.DesignSubmission, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("design submission cancelled: %w", err)
	}

	submission := &models.DesignSubmission{
		ID:         uuid.New().String(),
		Parameters: params,
		ReceivedAt: s.now(),
	}

	log.Info().
		Str("submissionID", submission.ID).
		Str("approx", params.Approximation).
		Float64("fc", params.CutoffFrequency).
		Str("fcDisplay", units.FormatFrequency(params.CutoffFrequency)).
		Float64("gain", params.Gain).
		Float64("c1", params.C1).
		Str("c1Display", units.FormatCapacitance(params.C1)).
		Msg(Describe(params))

	return submission, nil
}

// Describe returns the diagnostic line logged for a submission
func Describe(params models.FilterParameters) string {
	return fmt.Sprintf("Designing a %s filter at %sHz with Gain %s",
		params.Approximation,
		formatNumber(params.CutoffFrequency),
		formatNumber(params.Gain))
}

// formatNumber renders v the way the form's users see floats elsewhere:
// 1000 -> "1000.0", 1e16 -> "1e+16", 1.5e-05 stays exponential, inf/nan lowercase.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if abs := math.Abs(v); v == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	// 'e' always writes at least two exponent digits
	return strconv.FormatFloat(v, 'e', -1, 64)
}
