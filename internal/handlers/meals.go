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

type MealHandler struct {
	mealRepo repository.MealRepository
	session  *session.State
}

func NewMealHandler(mealRepo repository.MealRepository, sessionState *session.State) *MealHandler {
	return &MealHandler{mealRepo: mealRepo, session: sessionState}
}

// List returns the meals for one day, optionally filtered by type,
// in breakfast-to-dinner order.
func (handler *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
		return
	}

	var meals []models.Meal
	var err error
	if typeValue := r.URL.Query().Get("type"); typeValue != "" {
		mealType := models.MealType(typeValue)
		if !mealType.Valid() {
			writeError(w, http.StatusBadRequest, "unknown meal type")
			return
		}
		meals, err = handler.mealRepo.FindByDayAndType(ctx, day, mealType)
	} else {
		meals, err = handler.mealRepo.FindByDay(ctx, day)
	}
	if err != nil {
		slog.Error("finding meals", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load meals")
		return
	}

	if meals == nil {
		meals = []models.Meal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

// Save upserts a meal and closes the editor sheet.
func (handler *MealHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var meal models.Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if meal.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !meal.Type.Valid() {
		writeError(w, http.StatusBadRequest, "unknown meal type")
		return
	}
	if meal.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	saved, err := handler.mealRepo.Save(ctx, meal)
	if err != nil {
		slog.Error("saving meal", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save meal")
		return
	}

	handler.session.CloseEditor()
	writeJSON(w, http.StatusOK, saved)
}

// Delete removes a meal by id and closes the editor sheet. Deleting
// an absent id is a no-op.
func (handler *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := handler.mealRepo.Delete(ctx, id); err != nil {
		slog.Error("deleting meal", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete meal")
		return
	}

	handler.session.CloseEditor()
	w.WriteHeader(http.StatusOK)
}
