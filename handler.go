package formkit

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/pkg/form"
)

const formMediaType = "application/x-www-form-urlencoded"

// ValidationResponse is the JSON envelope returned by the form endpoint.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// FormHandler validates posted form data against a fixed registry and
// reports per-field errors as JSON. It is the HTTP equivalent of the
// submit-side of a form lifecycle: the client posts current field values,
// gets back whether submission may proceed and the first failing message
// for each invalid field.
type FormHandler struct {
	registry *form.Registry
	logger   *slog.Logger
	maxBody  int64
}

// HandlerOption configures a FormHandler.
type HandlerOption func(*FormHandler)

// WithLogger enables logging for the handler and its validation passes.
// Nil loggers are ignored.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *FormHandler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMaxBodySize caps the accepted request body in bytes. Non-positive
// values are ignored.
func WithMaxBodySize(n int64) HandlerOption {
	return func(h *FormHandler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// NewFormHandler returns a handler over a frozen registry.
func NewFormHandler(registry *form.Registry, opts ...HandlerOption) *FormHandler {
	h := &FormHandler{
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxBody:  1 << 20,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler. It accepts urlencoded form posts,
// runs a validation pass over the registry, and responds 200 with an empty
// error map when the form may proceed or 422 with the per-field messages
// when it may not.
func (h *FormHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := checkFormContentType(r); err != nil {
		writeJSON(w, http.StatusUnsupportedMediaType, ValidationResponse{
			Valid:  false,
			Errors: map[string]string{"_form": err.Error()},
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("failed to parse form", "error", err)
		writeJSON(w, http.StatusBadRequest, ValidationResponse{
			Valid:  false,
			Errors: map[string]string{"_form": "malformed form data"},
		})
		return
	}

	sink := form.NewErrors()
	engine := form.New(h.registry, form.Values(r.PostForm), sink, form.WithLogger(h.logger))

	valid := engine.Validate()
	if valid {
		// Successful submission clears any leftover per-field errors.
		sink.HideAllErrors()
		writeJSON(w, http.StatusOK, ValidationResponse{Valid: true})
		return
	}

	messages := make(map[string]string, len(sink))
	for _, field := range sink.Fields() {
		messages[field] = sink.Get(field)
	}
	writeJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Valid: false, Errors: messages})
}

// Router mounts the handler on a fresh chi router, ready to be nested into
// an application's route tree:
//
//	r.Mount("/signup", formkit.Router(handler))
func Router(h *FormHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeHTTP)
	return r
}

func checkFormContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return errors.Join(ErrMissingContentType, errors.New("expected "+formMediaType))
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != formMediaType {
		return errors.Join(ErrUnsupportedMediaType, errors.New("expected "+formMediaType))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body ValidationResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
