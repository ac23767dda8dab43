package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hyperengineering/fitlog/internal/store"
	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
)

// Handler implements the API handlers
type Handler struct {
	store   store.Store
	version string
}

// NewHandler creates a new Handler with store.Store interface
func NewHandler(s store.Store, version string) *Handler {
	return &Handler{
		store:   s,
		version: version,
	}
}

// Health returns the health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		WriteProblem(w, r, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	writeJSON(w, http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Version: h.version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDeleted(w http.ResponseWriter, entity string) {
	writeJSON(w, http.StatusOK, types.MessageResponse{
		Message: entity + " deleted successfully",
	})
}

// decodeJSON decodes the request body into dst, writing a 400 problem and
// returning false when the body is not valid JSON for dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return false
	}
	return true
}

// writeInvalid writes a 422 problem when errs is non-empty and reports
// whether it did.
func writeInvalid(w http.ResponseWriter, r *http.Request, errs []validation.ValidationError) bool {
	if len(errs) == 0 {
		return false
	}
	WriteProblemWithErrors(w, r, "Request contains invalid fields", errs)
	return true
}

// queryUserID reads the required user_id query parameter into c.
func queryUserID(r *http.Request, c *validation.Collector) int64 {
	id, err := validation.ParseUserID("user_id", r.URL.Query().Get("user_id"))
	c.Add(err)
	return id
}

// queryDate reads an optional date query parameter into c. Absent
// parameters return nil.
func queryDate(r *http.Request, name string, c *validation.Collector) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	t, err := validation.ParseDate(name, raw)
	if err != nil {
		c.Add(err)
		return nil
	}
	return &t
}
