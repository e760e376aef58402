package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/javi-source/MealCalendar/internal/models"
	"github.com/javi-source/MealCalendar/internal/repository"
)

// ICalHandler serves the stored meals and workouts as an iCalendar
// feed of all-day events, so the calendar can be subscribed to from
// any calendar client.
type ICalHandler struct {
	mealRepo    repository.MealRepository
	workoutRepo repository.WorkoutRepository
}

func NewICalHandler(mealRepo repository.MealRepository, workoutRepo repository.WorkoutRepository) *ICalHandler {
	return &ICalHandler{mealRepo: mealRepo, workoutRepo: workoutRepo}
}

func (handler *ICalHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed := ical.NewCalendar()
	feed.SetMethod(ical.MethodPublish)
	feed.SetProductId("-//MealCalendar//MealCalendar//EN")
	feed.SetXWRCalName("Meal Calendar")

	meals, err := handler.mealRepo.FindAll(ctx)
	if err != nil {
		slog.Error("finding meals for ical", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build feed")
		return
	}
	for _, meal := range meals {
		event := feed.AddEvent(meal.ID)
		event.SetAllDayStartAt(meal.Date)
		event.SetAllDayEndAt(meal.Date.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s: %s", mealTypeLabel(meal.Type), meal.Name))
		if meal.Notes != "" {
			event.SetDescription(meal.Notes)
		}
	}

	workouts, err := handler.workoutRepo.FindAll(ctx)
	if err != nil {
		slog.Error("finding workouts for ical", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build feed")
		return
	}
	for _, workout := range workouts {
		event := feed.AddEvent(workout.ID)
		event.SetAllDayStartAt(workout.Date)
		event.SetAllDayEndAt(workout.Date.AddDate(0, 0, 1))
		event.SetSummary(workoutSummary(workout))
		if workout.Notes != "" {
			event.SetDescription(workout.Notes)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=meal-calendar.ics")
	w.Write([]byte(feed.Serialize()))
}

func mealTypeLabel(mealType models.MealType) string {
	return strings.ToUpper(string(mealType)[:1]) + string(mealType)[1:]
}

func workoutSummary(workout models.Workout) string {
	summary := strings.ToUpper(string(workout.Type)[:1]) + string(workout.Type)[1:]
	var details []string
	if workout.Distance != nil {
		details = append(details, fmt.Sprintf("%.1f km", *workout.Distance))
	}
	if workout.Duration != nil {
		details = append(details, fmt.Sprintf("%.0f min", *workout.Duration))
	}
	if len(details) > 0 {
		summary += " (" + strings.Join(details, ", ") + ")"
	}
	return summary
}
