package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01T08:00:00Z", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"2026-03-01T09:00:00+01:00", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"2026-03-01T08:00:00", time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"2026-03-01T08:00:00.250", time.Date(2026, 3, 1, 8, 0, 0, 250_000_000, time.UTC)},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) || got.Location() != time.UTC {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "March 1st", "01/03/2026"} {
		if _, err := ParseTimestamp(bad); err == nil {
			t.Errorf("ParseTimestamp(%q) expected error", bad)
		}
	}
}

func TestInputs_AcceptNaiveDatetimes(t *testing.T) {
	want := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	var cl CalorieLogInput
	if err := json.Unmarshal([]byte(`{"date":"2024-01-01T08:00:00","calories_consumed":1800}`), &cl); err != nil {
		t.Fatalf("CalorieLogInput: %v", err)
	}
	if !cl.Date.Equal(want) || cl.CaloriesConsumed == nil || *cl.CaloriesConsumed != 1800 {
		t.Errorf("CalorieLogInput = %+v", cl)
	}

	var w WorkoutInput
	if err := json.Unmarshal([]byte(`{"date":"2024-01-01T08:00:00","duration_minutes":45,"notes":"legs"}`), &w); err != nil {
		t.Fatalf("WorkoutInput: %v", err)
	}
	if !w.Date.Equal(want) || w.Notes == nil || *w.Notes != "legs" {
		t.Errorf("WorkoutInput = %+v", w)
	}

	var g GoalInput
	if err := json.Unmarshal([]byte(`{"name":"Bench","target_value":100,"deadline":"2024-01-01","category":"strength"}`), &g); err != nil {
		t.Fatalf("GoalInput: %v", err)
	}
	if !g.Deadline.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) || g.Name != "Bench" {
		t.Errorf("GoalInput = %+v", g)
	}

	var pr PersonalRecordInput
	if err := json.Unmarshal([]byte(`{"exercise_id":"x","value":120.5,"date_achieved":"2024-01-01T08:00:00Z"}`), &pr); err != nil {
		t.Fatalf("PersonalRecordInput: %v", err)
	}
	if !pr.DateAchieved.Equal(want) || pr.ExerciseID != "x" {
		t.Errorf("PersonalRecordInput = %+v", pr)
	}
}

func TestInputs_DateErrors(t *testing.T) {
	// Missing and null dates stay zero for the required check
	var w WorkoutInput
	if err := json.Unmarshal([]byte(`{"date":null,"duration_minutes":45}`), &w); err != nil {
		t.Fatalf("null date: %v", err)
	}
	if !w.Date.IsZero() {
		t.Errorf("null date = %v, want zero", w.Date)
	}

	var cl CalorieLogInput
	err := json.Unmarshal([]byte(`{"date":"yesterday","calories_consumed":1}`), &cl)
	if err == nil || !strings.Contains(err.Error(), "yesterday") {
		t.Errorf("error = %v, want mention of the bad date", err)
	}
}
