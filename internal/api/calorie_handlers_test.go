package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/hyperengineering/fitlog/internal/types"
)

func logCalories(t *testing.T, h http.Handler, userID, body string) types.CalorieLog {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/v1/calories/?user_id="+userID, body)
	expectStatus(t, w, http.StatusCreated)
	return decode[types.CalorieLog](t, w)
}

func TestCalorieSummary(t *testing.T) {
	h := newTestRouter(t)
	logCalories(t, h, "1", `{"date":"2026-03-01T00:00:00Z","calories_consumed":2000,"protein_grams":100}`)
	logCalories(t, h, "1", `{"date":"2026-03-02T00:00:00Z","calories_consumed":2200,"protein_grams":110}`)

	w := do(t, h, http.MethodGet, "/api/v1/calories/summary?user_id=1&start_date=2026-03-01&end_date=2026-03-02", "")

	expectStatus(t, w, http.StatusOK)
	s := decode[types.CalorieSummary](t, w)
	if s.TotalCalories != 4200 {
		t.Errorf("total_calories = %d, want 4200", s.TotalCalories)
	}
	if s.AvgDailyCalories != 4200 {
		t.Errorf("avg_daily_calories = %v, want 4200", s.AvgDailyCalories)
	}
	if s.TotalProtein != 210 {
		t.Errorf("total_protein = %v, want 210", s.TotalProtein)
	}
}

func TestCalorieSummary_SameDayWindow(t *testing.T) {
	h := newTestRouter(t)
	logCalories(t, h, "1", `{"date":"2026-03-01T00:00:00Z","calories_consumed":1800}`)

	w := do(t, h, http.MethodGet, "/api/v1/calories/summary?user_id=1&start_date=2026-03-01&end_date=2026-03-01", "")

	expectStatus(t, w, http.StatusOK)
	s := decode[types.CalorieSummary](t, w)
	if s.AvgDailyCalories != 1800 || s.Days != 1 {
		t.Errorf("summary = %+v, want avg 1800 over 1 day", s)
	}
}

func TestCalorieSummary_DefaultEndDate(t *testing.T) {
	h := newTestRouter(t)
	logCalories(t, h, "1", `{"date":"2026-03-07T12:00:00Z","calories_consumed":700}`)
	logCalories(t, h, "1", `{"date":"2026-03-09T12:00:00Z","calories_consumed":900}`)

	w := do(t, h, http.MethodGet, "/api/v1/calories/summary?user_id=1&start_date=2026-03-01", "")

	expectStatus(t, w, http.StatusOK)
	s := decode[types.CalorieSummary](t, w)
	if s.Days != 7 {
		t.Errorf("days = %d, want 7", s.Days)
	}
	if s.TotalCalories != 700 {
		t.Errorf("total_calories = %d, want 700 (one week window)", s.TotalCalories)
	}
}

func TestCalorieSummary_InvalidParameters(t *testing.T) {
	h := newTestRouter(t)

	queries := []string{
		"?user_id=1",
		"?start_date=2026-03-01",
		"?user_id=1&start_date=March",
		"?user_id=1&start_date=2026-03-05&end_date=2026-03-01",
	}
	for _, q := range queries {
		w := do(t, h, http.MethodGet, "/api/v1/calories/summary"+q, "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("GET summary%s status = %d, want 422", q, w.Code)
		}
	}
}

func TestListCalorieLogs(t *testing.T) {
	h := newTestRouter(t)
	late := logCalories(t, h, "1", `{"date":"2026-03-03T00:00:00Z","calories_consumed":300}`)
	early := logCalories(t, h, "1", `{"date":"2026-03-01T00:00:00Z","calories_consumed":100}`)
	logCalories(t, h, "2", `{"date":"2026-03-01T00:00:00Z","calories_consumed":999}`)

	w := do(t, h, http.MethodGet, "/api/v1/calories/?user_id=1", "")
	expectStatus(t, w, http.StatusOK)
	got := decode[[]types.CalorieLog](t, w)
	if len(got) != 2 || got[0].ID != early.ID || got[1].ID != late.ID {
		t.Errorf("logs = %+v, want early then late", got)
	}

	w = do(t, h, http.MethodGet, "/api/v1/calories/?user_id=1&start_date=2026-03-02", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]types.CalorieLog](t, w); len(got) != 1 || got[0].ID != late.ID {
		t.Errorf("bounded logs = %+v, want only late", got)
	}
}

func TestUpdateAndDeleteCalorieLog(t *testing.T) {
	h := newTestRouter(t)
	l := logCalories(t, h, "1", `{"date":"2026-03-01T00:00:00Z","calories_consumed":2000,"fat_grams":60}`)

	w := do(t, h, http.MethodPut, "/api/v1/calories/"+l.ID, `{"date":"2026-03-01T00:00:00Z","calories_consumed":1900}`)
	expectStatus(t, w, http.StatusOK)
	updated := decode[types.CalorieLog](t, w)
	if updated.CaloriesConsumed != 1900 || updated.FatGrams != nil || updated.UserID != 1 {
		t.Errorf("updated = %+v", updated)
	}

	w = do(t, h, http.MethodDelete, "/api/v1/calories/"+l.ID, "")
	expectStatus(t, w, http.StatusOK)
	if msg := decode[types.MessageResponse](t, w); msg.Message != "Calorie log deleted successfully" {
		t.Errorf("message = %q", msg.Message)
	}
}

func TestLogCalories_Validation(t *testing.T) {
	h := newTestRouter(t)

	w := do(t, h, http.MethodPost, "/api/v1/calories/?user_id=1", `{"date":"2026-03-01T00:00:00Z","protein_grams":-1}`)

	expectStatus(t, w, http.StatusUnprocessableEntity)
	p := decode[ProblemWithErrors](t, w)
	if len(p.Errors) != 2 {
		t.Errorf("errors = %+v, want calories_consumed and protein_grams", p.Errors)
	}
}

func TestLogCalories_NaiveDatetime(t *testing.T) {
	h := newTestRouter(t)

	// Given: a body date without an offset
	l := logCalories(t, h, "1", `{"date":"2024-01-01T08:00:00","calories_consumed":1800}`)

	// Then: it is stored as UTC and matches the same value as a query bound
	if want := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC); !l.Date.Equal(want) {
		t.Errorf("date = %v, want %v", l.Date, want)
	}
	w := do(t, h, http.MethodGet, "/api/v1/calories/?user_id=1&start_date=2024-01-01T08:00:00", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode[[]types.CalorieLog](t, w); len(got) != 1 || got[0].ID != l.ID {
		t.Errorf("logs = %+v, want the naive-date log", got)
	}

	w = do(t, h, http.MethodPost, "/api/v1/calories/?user_id=1", `{"date":"next week","calories_consumed":1}`)
	expectStatus(t, w, http.StatusBadRequest)
}
