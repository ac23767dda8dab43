package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
)

// CreateGoal handles POST /api/v1/goals/?user_id=
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req types.GoalInput
	if !decodeJSON(w, r, &req) {
		return
	}

	var c validation.Collector
	userID := queryUserID(r, &c)
	c.AddAll(validation.ValidateGoalInput(req))
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	goal, err := h.store.CreateGoal(r.Context(), req.Goal(userID))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

// ListGoals handles GET /api/v1/goals/?user_id=&status=
func (h *Handler) ListGoals(w http.ResponseWriter, r *http.Request) {
	var c validation.Collector
	userID := queryUserID(r, &c)
	status := r.URL.Query().Get("status")
	if status != "" {
		c.Add(validation.ValidateGoalStatus("status", status))
	}
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	goals, err := h.store.ListGoals(r.Context(), types.GoalFilter{
		UserID: userID,
		Status: types.GoalStatus(status),
	})
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// UpdateGoalProgress handles PUT /api/v1/goals/{id}/progress?current_value=
func (h *Handler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	value, verr := validation.ParseFloat("current_value", r.URL.Query().Get("current_value"))
	if verr != nil {
		writeInvalid(w, r, []validation.ValidationError{*verr})
		return
	}

	goal, err := h.store.UpdateGoalProgress(r.Context(), chi.URLParam(r, "id"), value)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// UpdateGoal handles PUT /api/v1/goals/{id}
func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req types.GoalInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidateGoalInput(req)) {
		return
	}

	goal, err := h.store.UpdateGoal(r.Context(), chi.URLParam(r, "id"), req.Goal(0))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/goals/{id}
func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeDeleted(w, "Goal")
}
