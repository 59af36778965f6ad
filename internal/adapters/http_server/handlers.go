package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.SubmitService
}

// Fixed error bodies; existing clients match these bytes exactly.
const (
	bodyInvalidData      = `{"error": "Invalid data"}`
	bodyInvalidLocation  = `{"error": "Invalid location"}`
	bodyMethodNotAllowed = `{"error": "Method not allowed"}`
	bodyInternal         = `{"error": "Internal error"}`
)

// MountHandlers registers the review routes. The path is deliberately
// ignored: GET and POST behave the same on every path.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/*", h.listReviews)
	s.mux.Post("/*", h.createReview)
	s.mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeRaw(w, http.StatusMethodNotAllowed, bodyMethodNotAllowed)
	})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	// Query().Get percent-decodes; empty values mean "no filter".
	q := domain.ListQuery{
		Location:  r.URL.Query().Get("location"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	out, err := h.Q.ListReviews(r.Context(), q)
	if err != nil {
		log.Error().Err(err).Msg("list reviews failed")
		writeRaw(w, http.StatusInternalServerError, bodyInternal)
		return
	}

	body, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("marshal reviews failed")
		writeRaw(w, http.StatusInternalServerError, bodyInternal)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	// An unparseable body behaves like an empty form: missing fields
	// default to "" and fold into the invalid-data rejection.
	if err := r.ParseForm(); err != nil {
		log.Debug().Err(err).Msg("form parse failed; treating as empty")
	}
	location := r.PostFormValue("Location")
	reviewBody := r.PostFormValue("ReviewBody")

	rev, err := h.C.SubmitReview(r.Context(), location, reviewBody)
	switch {
	case errors.Is(err, domain.ErrInvalidData):
		writeRaw(w, http.StatusBadRequest, bodyInvalidData)
		return
	case errors.Is(err, domain.ErrInvalidLocation):
		writeRaw(w, http.StatusBadRequest, bodyInvalidLocation)
		return
	case err != nil:
		log.Error().Err(err).Msg("submit review failed")
		writeRaw(w, http.StatusInternalServerError, bodyInternal)
		return
	}

	body, err := json.MarshalIndent(rev, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("marshal review failed")
		writeRaw(w, http.StatusInternalServerError, bodyInternal)
		return
	}
	writeJSON(w, http.StatusCreated, body)
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	writeJSON(w, status, []byte(body))
}
