package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured.
// Every route answers with and without a trailing slash.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/exercises", func(r chi.Router) {
			r.Post("/", h.CreateExercise)
			r.Get("/", h.ListExercises)
			r.Get("/{id}", h.GetExercise)
			r.Put("/{id}", h.UpdateExercise)
			r.Delete("/{id}", h.DeleteExercise)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Post("/", h.LogWorkout)
			r.Get("/{id}", h.GetWorkout)
			r.Put("/{id}", h.UpdateWorkout)
			r.Delete("/{id}", h.DeleteWorkout)
			r.Post("/{id}/exercises", h.AddWorkoutExercise)
			r.Delete("/{id}/exercises/{entry_id}", h.RemoveWorkoutExercise)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", h.CreateGoal)
			r.Get("/", h.ListGoals)
			r.Put("/{id}/progress", h.UpdateGoalProgress)
			r.Put("/{id}", h.UpdateGoal)
			r.Delete("/{id}", h.DeleteGoal)
		})

		r.Route("/records", func(r chi.Router) {
			r.Post("/", h.CreatePersonalRecord)
			r.Get("/exercise/{exercise_id}", h.GetExerciseRecords)
			r.Put("/{id}", h.UpdatePersonalRecord)
			r.Delete("/{id}", h.DeletePersonalRecord)
		})

		r.Route("/calories", func(r chi.Router) {
			r.Post("/", h.LogCalories)
			r.Get("/", h.ListCalorieLogs)
			r.Get("/summary", h.CalorieSummary)
			r.Put("/{id}", h.UpdateCalorieLog)
			r.Delete("/{id}", h.DeleteCalorieLog)
		})
	})

	return r
}
