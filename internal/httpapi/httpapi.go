// Package httpapi provides the HTTP surface: the embedded single-page UI and
// the summarize endpoint it posts to.
package httpapi

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/madhavdargar/ai-transcript-summary/pkg/summarizer"
	"github.com/madhavdargar/ai-transcript-summary/pkg/summary"
)

//go:embed web
var webFS embed.FS

// Dispatcher is the summarization entry point the handlers call.
type Dispatcher interface {
	Summarize(ctx context.Context, credential, transcript string) (*summary.Result, error)
}

// Handler is the HTTP handler for the transcript summary service.
type Handler struct {
	dispatcher Dispatcher
	router     chi.Router
}

// New creates a Handler around a dispatcher.
func New(d Dispatcher) *Handler {
	h := &Handler{dispatcher: d}
	h.router = h.buildRouter()
	return h
}

// Router returns the chi router for mounting in an http.Server.
func (h *Handler) Router() chi.Router { return h.router }

func (h *Handler) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Minute))

	r.Get("/", h.handleIndex)
	r.Post("/api/summarize", h.handleSummarize)

	// Health check.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return r
}

// --- Request/Response types ---

type summarizeRequest struct {
	Credential string `json:"credential"`
	Transcript string `json:"transcript"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// genericFailure is the only text a caller sees for an upstream failure.
// Whether the completion endpoint refused the request or returned garbage is
// an internal distinction; the detail goes to the server log, not the user.
const genericFailure = "summarization failed, please try again"

// --- Handlers ---

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (h *Handler) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.dispatcher.Summarize(r.Context(), req.Credential, req.Transcript)
	if err != nil {
		status := statusFor(err)
		msg := err.Error()
		if status >= http.StatusInternalServerError {
			log.Printf("Summarize failed: %v", err)
			msg = genericFailure
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// statusFor maps the error taxonomy onto HTTP statuses. Validation failures
// are the caller's fault; a busy dispatcher is a conflict; everything that
// went wrong past the dispatch boundary is a bad gateway.
func statusFor(err error) int {
	var ve *summary.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, summarizer.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
