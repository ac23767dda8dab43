package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
)

// CreatePersonalRecord handles POST /api/v1/records/?user_id=
func (h *Handler) CreatePersonalRecord(w http.ResponseWriter, r *http.Request) {
	var req types.PersonalRecordInput
	if !decodeJSON(w, r, &req) {
		return
	}

	var c validation.Collector
	userID := queryUserID(r, &c)
	c.AddAll(validation.ValidatePersonalRecordInput(req))
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	record, err := h.store.CreatePersonalRecord(r.Context(), req.PersonalRecord(userID))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, record)
}

// GetExerciseRecords handles GET /api/v1/records/exercise/{exercise_id}?user_id=
func (h *Handler) GetExerciseRecords(w http.ResponseWriter, r *http.Request) {
	var c validation.Collector
	userID := queryUserID(r, &c)
	if writeInvalid(w, r, c.Errors()) {
		return
	}

	records, err := h.store.ListExerciseRecords(r.Context(), chi.URLParam(r, "exercise_id"), userID)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// UpdatePersonalRecord handles PUT /api/v1/records/{id}
func (h *Handler) UpdatePersonalRecord(w http.ResponseWriter, r *http.Request) {
	var req types.PersonalRecordInput
	if !decodeJSON(w, r, &req) {
		return
	}
	if writeInvalid(w, r, validation.ValidatePersonalRecordInput(req)) {
		return
	}

	record, err := h.store.UpdatePersonalRecord(r.Context(), chi.URLParam(r, "id"), req.PersonalRecord(0))
	if err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// DeletePersonalRecord handles DELETE /api/v1/records/{id}
func (h *Handler) DeletePersonalRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePersonalRecord(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStoreError(w, r, err)
		return
	}
	writeDeleted(w, "Personal record")
}
