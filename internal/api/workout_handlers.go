package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
)

// LogWorkout handles POST /api/v1/workouts/?user_id=
func (h *Handler) LogWorkout(w http.ResponseWriter, r *http.Request) {
	var req types.WorkoutInput
	if !decodeJSON(w, r, &req) {
		return
	}

	var c validation.Collector
	userID := queryUserID(r, &c)
	c.AddAll(validation.ValidateWorkoutInput(req))
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	workout, err := h.store.CreateWorkout(r.Context(), req.Workout(userID))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, workout)
}

// GetWorkout handles GET /api/v1/workouts/{id}
func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	workout, err := h.store.GetWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// UpdateWorkout handles PUT /api/v1/workouts/{id}
func (h *Handler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var req types.WorkoutInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidateWorkoutInput(req)) {
		return
	}

	// The owner is never reassigned on update.
	workout, err := h.store.UpdateWorkout(r.Context(), chi.URLParam(r, "id"), req.Workout(0))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /api/v1/workouts/{id}
func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteWorkout(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeDeleted(w, "Workout")
}

// AddWorkoutExercise handles POST /api/v1/workouts/{id}/exercises
func (h *Handler) AddWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	var req types.WorkoutExerciseInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidateWorkoutExerciseInput(req)) {
		return
	}

	entry, err := h.store.AddWorkoutExercise(r.Context(), req.WorkoutExercise(chi.URLParam(r, "id")))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// RemoveWorkoutExercise handles DELETE /api/v1/workouts/{id}/exercises/{entry_id}
func (h *Handler) RemoveWorkoutExercise(w http.ResponseWriter, r *http.Request) {
	err := h.store.RemoveWorkoutExercise(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "entry_id"))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeDeleted(w, "Workout exercise")
}
