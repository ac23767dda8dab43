package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
)

const defaultSkip = 0

// CreateExercise handles POST /api/v1/exercises/
func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req types.ExerciseInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidateExerciseInput(req)) {
		return
	}

	e, err := h.store.CreateExercise(r.Context(), req.Exercise())
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// ListExercises handles GET /api/v1/exercises/
func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var c validation.Collector
	skip, err := validation.ParseNonNegativeInt("skip", q.Get("skip"), defaultSkip)
	c.Add(err)
	limit, err := validation.ParseNonNegativeInt("limit", q.Get("limit"), types.DefaultExerciseLimit)
	c.Add(err)
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	exercises, storeErr := h.store.ListExercises(r.Context(), types.ExerciseFilter{
		Category:    q.Get("category"),
		MuscleGroup: q.Get("muscle_group"),
		Skip:        skip,
		Limit:       limit,
	})
	if storeErr != nil {
		MapStoreError(w, r, storeErr)
		return
	}
	writeJSON(w, http.StatusOK, exercises)
}

// GetExercise handles GET /api/v1/exercises/{id}
func (h *Handler) GetExercise(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.GetExercise(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// UpdateExercise handles PUT /api/v1/exercises/{id}
func (h *Handler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	var req types.ExerciseInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidateExerciseInput(req)) {
		return
	}

	e, err := h.store.UpdateExercise(r.Context(), chi.URLParam(r, "id"), req.Exercise())
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// DeleteExercise handles DELETE /api/v1/exercises/{id}
func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteExercise(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeDeleted(w, "Exercise")
}
