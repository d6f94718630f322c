package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// FilterParameters holds the four values collected by the design form
type FilterParameters struct {
	CutoffFrequency float64 `json:"fc"`
	Gain            float64 `json:"gain"`
	C1              float64 `json:"c1"`
	Approximation   string  `json:"approx"`
}

// DesignSubmission is a set of parameters accepted by the design service (for internal use)
type DesignSubmission struct {
	ID         string           `json:"id"`
	Parameters FilterParameters `json:"parameters"`
	ReceivedAt time.Time        `json:"received_at"`
}

// SubmitParametersRequest represents a JSON submission of filter parameters
type SubmitParametersRequest struct {
	Body struct {
		CutoffFrequency float64 `json:"fc" required:"true" example:"1000" doc:"Cutoff frequency in Hz"`
		Gain            float64 `json:"gain" required:"true" example:"10" doc:"Passband gain"`
		C1              float64 `json:"c1" required:"true" example:"1e-8" doc:"Capacitor seed value in farads"`
		Approximation   string  `json:"approx" required:"true" example:"Butterworth" doc:"Approximation type"`
	}
}

// SubmitParametersResponseBody is the body of the submit parameters response
type SubmitParametersResponseBody struct {
	ID              string    `json:"id" doc:"Submission unique identifier"`
	CutoffFrequency float64   `json:"fc" doc:"Accepted cutoff frequency in Hz"`
	Gain            float64   `json:"gain" doc:"Accepted passband gain"`
	C1              float64   `json:"c1" doc:"Accepted capacitor seed value in farads"`
	Approximation   string    `json:"approx" doc:"Accepted approximation type"`
	Message         string    `json:"message" doc:"Human-readable confirmation"`
	ReceivedAt      time.Time `json:"received_at" doc:"When the parameters were accepted"`
}

// SubmitParametersResponse represents the response to a parameter submission
type SubmitParametersResponse struct {
	Body SubmitParametersResponseBody
}
