package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/javi-source/MealCalendar/internal/models"
	"github.com/javi-source/MealCalendar/internal/repository"
	"github.com/javi-source/MealCalendar/internal/session"
)

type WorkoutHandler struct {
	workoutRepo repository.WorkoutRepository
	session     *session.State
}

func NewWorkoutHandler(workoutRepo repository.WorkoutRepository, sessionState *session.State) *WorkoutHandler {
	return &WorkoutHandler{workoutRepo: workoutRepo, session: sessionState}
}

func (handler *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
		return
	}

	var workouts []models.Workout
	var err error
	if typeValue := r.URL.Query().Get("type"); typeValue != "" {
		workoutType := models.WorkoutType(typeValue)
		if !workoutType.Valid() {
			writeError(w, http.StatusBadRequest, "unknown workout type")
			return
		}
		workouts, err = handler.workoutRepo.FindByDayAndType(ctx, day, workoutType)
	} else {
		workouts, err = handler.workoutRepo.FindByDay(ctx, day)
	}
	if err != nil {
		slog.Error("finding workouts", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load workouts")
		return
	}

	if workouts == nil {
		workouts = []models.Workout{}
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (handler *WorkoutHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if !workout.Type.Valid() {
		writeError(w, http.StatusBadRequest, "unknown workout type")
		return
	}
	if workout.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	if workout.Distance != nil && *workout.Distance < 0 {
		writeError(w, http.StatusBadRequest, "distance must be non-negative")
		return
	}
	if workout.Duration != nil && *workout.Duration < 0 {
		writeError(w, http.StatusBadRequest, "duration must be non-negative")
		return
	}

	saved, err := handler.workoutRepo.Save(ctx, workout)
	if err != nil {
		slog.Error("saving workout", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save workout")
		return
	}

	handler.session.CloseEditor()
	writeJSON(w, http.StatusOK, saved)
}

func (handler *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := handler.workoutRepo.Delete(ctx, id); err != nil {
		slog.Error("deleting workout", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete workout")
		return
	}

	handler.session.CloseEditor()
	w.WriteHeader(http.StatusOK)
}
