package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hyperengineering/fitlog/internal/types"
)

var (
	day1 = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 1)
)

func mustLogCalories(t *testing.T, s *SQLStore, l types.CalorieLog) *types.CalorieLog {
	t.Helper()
	created, err := s.CreateCalorieLog(context.Background(), l)
	if err != nil {
		t.Fatalf("CreateCalorieLog failed: %v", err)
	}
	return created
}

func TestCalorieSummary_TwoLogs(t *testing.T) {
	// Given: 2000 kcal / 100g protein on day 1 and 2200 kcal / 110g on day 2
	s := newTestStore(t)
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1, CaloriesConsumed: 2000, ProteinGrams: ptr(100.0)})
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day2, CaloriesConsumed: 2200, ProteinGrams: ptr(110.0)})

	// When: summarizing the one-day window [day1, day2]
	summary, err := s.CalorieSummary(context.Background(), 1, day1, day2)
	if err != nil {
		t.Fatalf("CalorieSummary failed: %v", err)
	}

	// Then
	if summary.TotalCalories != 4200 {
		t.Errorf("TotalCalories = %d, want 4200", summary.TotalCalories)
	}
	if summary.AvgDailyCalories != 4200 {
		t.Errorf("AvgDailyCalories = %v, want 4200", summary.AvgDailyCalories)
	}
	if summary.TotalProtein != 210 {
		t.Errorf("TotalProtein = %v, want 210", summary.TotalProtein)
	}
	if summary.LogCount != 2 {
		t.Errorf("LogCount = %d, want 2", summary.LogCount)
	}
}

func TestCalorieSummary_MissingMacrosCountAsZero(t *testing.T) {
	s := newTestStore(t)
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1, CaloriesConsumed: 500, CarbsGrams: ptr(40.0)})
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1.Add(6 * time.Hour), CaloriesConsumed: 700})

	summary, err := s.CalorieSummary(context.Background(), 1, day1, day1.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("CalorieSummary failed: %v", err)
	}

	if summary.TotalCarbs != 40 {
		t.Errorf("TotalCarbs = %v, want 40", summary.TotalCarbs)
	}
	if summary.TotalProtein != 0 || summary.TotalFat != 0 {
		t.Errorf("TotalProtein = %v, TotalFat = %v, want 0", summary.TotalProtein, summary.TotalFat)
	}
	if summary.Days != 7 {
		t.Errorf("Days = %d, want 7", summary.Days)
	}
	if summary.AvgDailyCalories != 1200.0/7 {
		t.Errorf("AvgDailyCalories = %v, want %v", summary.AvgDailyCalories, 1200.0/7)
	}
}

func TestCalorieSummary_EmptyWindow(t *testing.T) {
	s := newTestStore(t)

	summary, err := s.CalorieSummary(context.Background(), 1, day1, day1)
	if err != nil {
		t.Fatalf("CalorieSummary failed: %v", err)
	}

	if summary.TotalCalories != 0 || summary.LogCount != 0 || summary.AvgDailyCalories != 0 {
		t.Errorf("CalorieSummary() = %+v, want zero totals", summary)
	}
	if summary.Days != 1 {
		t.Errorf("Days = %d, want 1", summary.Days)
	}
}

func TestCalorieSummary_BoundsAndOwnership(t *testing.T) {
	s := newTestStore(t)
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1.Add(-time.Second), CaloriesConsumed: 100})
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1, CaloriesConsumed: 200})
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day2, CaloriesConsumed: 300})
	mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day2.Add(time.Second), CaloriesConsumed: 400})
	mustLogCalories(t, s, types.CalorieLog{UserID: 2, Date: day1, CaloriesConsumed: 5000})

	summary, err := s.CalorieSummary(context.Background(), 1, day1, day2)
	if err != nil {
		t.Fatalf("CalorieSummary failed: %v", err)
	}

	// Both bounds are inclusive; other users never count.
	if summary.TotalCalories != 500 {
		t.Errorf("TotalCalories = %d, want 500", summary.TotalCalories)
	}
}

func TestListCalorieLogs_OrderedByDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	late := mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day2, CaloriesConsumed: 300})
	early := mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1, CaloriesConsumed: 200})
	mustLogCalories(t, s, types.CalorieLog{UserID: 2, Date: day1, CaloriesConsumed: 900})

	tests := []struct {
		name   string
		filter types.CalorieLogFilter
		want   []string
	}{
		{"unbounded", types.CalorieLogFilter{UserID: 1}, []string{early.ID, late.ID}},
		{"start bound", types.CalorieLogFilter{UserID: 1, Start: &day2}, []string{late.ID}},
		{"end bound", types.CalorieLogFilter{UserID: 1, End: &day1}, []string{early.ID}},
		{"unknown user", types.CalorieLogFilter{UserID: 9}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListCalorieLogs(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListCalorieLogs failed: %v", err)
			}
			if got == nil {
				t.Fatal("ListCalorieLogs returned nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestUpdateCalorieLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	l := mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1, CaloriesConsumed: 2000, FatGrams: ptr(70.0)})

	updated, err := s.UpdateCalorieLog(ctx, l.ID, types.CalorieLog{Date: day2, CaloriesConsumed: 1800})
	if err != nil {
		t.Fatalf("UpdateCalorieLog failed: %v", err)
	}

	if updated.CaloriesConsumed != 1800 {
		t.Errorf("CaloriesConsumed = %d, want 1800", updated.CaloriesConsumed)
	}
	if updated.FatGrams != nil {
		t.Errorf("FatGrams = %v, want nil", *updated.FatGrams)
	}
	if !updated.Date.Equal(day2) {
		t.Errorf("Date = %v, want %v", updated.Date, day2)
	}

	_, err = s.UpdateCalorieLog(ctx, "01HZX3J8W7Q2M5N6P7R8S9T0VA", types.CalorieLog{Date: day1})
	if !errors.Is(err, ErrCalorieLogNotFound) {
		t.Errorf("err = %v, want ErrCalorieLogNotFound", err)
	}
}

func TestDeleteCalorieLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	l := mustLogCalories(t, s, types.CalorieLog{UserID: 1, Date: day1, CaloriesConsumed: 2000})

	if err := s.DeleteCalorieLog(ctx, l.ID); err != nil {
		t.Fatalf("DeleteCalorieLog failed: %v", err)
	}
	if err := s.DeleteCalorieLog(ctx, l.ID); !errors.Is(err, ErrCalorieLogNotFound) {
		t.Errorf("second delete err = %v, want ErrCalorieLogNotFound", err)
	}
}
