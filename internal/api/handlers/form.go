package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/RMahshie/filterform/internal/processing"
	"github.com/RMahshie/filterform/internal/web"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// InvalidNumbersMessage is the plain-text reply for a non-numeric field
const InvalidNumbersMessage = "Error: Please enter valid numbers."

// multipart parts beyond this stay on disk
const maxMultipartMemory = 32 << 10

// PageRenderer renders a named page template
type PageRenderer interface {
	Render(w io.Writer, name string) error
}

// FormHandler serves the design page and accepts its form posts
type FormHandler struct {
	renderer  PageRenderer
	designSvc processing.DesignService
}

// NewFormHandler creates a new form handler
func NewFormHandler(renderer PageRenderer, designSvc processing.DesignService) *FormHandler {
	return &FormHandler{
		renderer:  renderer,
		designSvc: designSvc,
	}
}

// Index renders the design page
func (h *FormHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r)
}

// Calculate parses the posted parameters, hands them to the design service
// and renders the design page again.
func (h *FormHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	if err := parseForm(r); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("requestID", reqID).Int64("limit", tooLarge.Limit).Msg("Form body too large")
			http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		log.Warn().Err(err).Str("requestID", reqID).Msg("Failed to parse form")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	params, err := processing.ParseForm(r.PostForm)
	switch {
	case errors.Is(err, processing.ErrMissingField):
		log.Warn().Err(err).Str("requestID", reqID).Msg("Rejected design form")
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, processing.ErrInvalidNumber):
		log.Info().Err(err).Str("requestID", reqID).Msg("Rejected design form")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, InvalidNumbersMessage)
		return
	case err != nil:
		log.Error().Err(err).Str("requestID", reqID).Msg("Failed to read design form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := h.designSvc.Submit(r.Context(), params); err != nil {
		log.Error().Err(err).Str("requestID", reqID).Msg("Design submission failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderIndex(w, r)
}

// parseForm fills r.PostForm from either encoding. ParseForm runs first because
// ParseMultipartForm drops its error for non-multipart bodies.
func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

func (h *FormHandler) renderIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, web.IndexTemplate); err != nil {
		log.Error().Err(err).Str("requestID", middleware.GetReqID(r.Context())).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
