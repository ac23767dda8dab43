package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
)

// LogCalories handles POST /api/v1/calories/?user_id=
func (h *Handler) LogCalories(w http.ResponseWriter, r *http.Request) {
	var req types.CalorieLogInput
	if !decodeJSON(w, r, &req) {
		return
	}

	var c validation.Collector
	userID := queryUserID(r, &c)
	c.AddAll(validation.ValidateCalorieLogInput(req))
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	log, err := h.store.CreateCalorieLog(r.Context(), req.CalorieLog(userID))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

// ListCalorieLogs handles GET /api/v1/calories/?user_id=&start_date=&end_date=
func (h *Handler) ListCalorieLogs(w http.ResponseWriter, r *http.Request) {
	var c validation.Collector
	userID := queryUserID(r, &c)
	start := queryDate(r, "start_date", &c)
	end := queryDate(r, "end_date", &c)
	if start != nil && end != nil {
		c.Add(validation.ValidateDateRange("end_date", *start, *end))
	}
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	logs, err := h.store.ListCalorieLogs(r.Context(), types.CalorieLogFilter{
		UserID: userID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// CalorieSummary handles GET /api/v1/calories/summary?user_id=&start_date=&end_date=
// A missing end_date defaults to one week after start_date.
func (h *Handler) CalorieSummary(w http.ResponseWriter, r *http.Request) {
	var c validation.Collector
	userID := queryUserID(r, &c)
	if r.URL.Query().Get("start_date") == "" {
		c.Add(validation.ValidatePresent("start_date", false))
	}
	start := queryDate(r, "start_date", &c)
	end := queryDate(r, "end_date", &c)
	if start != nil && end == nil {
		defaultEnd := start.Add(types.DefaultSummaryWindow)
		end = &defaultEnd
	}
	if start != nil && end != nil {
		c.Add(validation.ValidateDateRange("end_date", *start, *end))
	}
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	summary, err := h.store.CalorieSummary(r.Context(), userID, *start, *end)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// UpdateCalorieLog handles PUT /api/v1/calories/{id}
func (h *Handler) UpdateCalorieLog(w http.ResponseWriter, r *http.Request) {
	var req types.CalorieLogInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidateCalorieLogInput(req)) {
		return
	}

	log, err := h.store.UpdateCalorieLog(r.Context(), chi.URLParam(r, "id"), req.CalorieLog(0))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

// DeleteCalorieLog handles DELETE /api/v1/calories/{id}
func (h *Handler) DeleteCalorieLog(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCalorieLog(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeDeleted(w, "Calorie log")
}
