package handlers

import (
	"log/slog"
	"net/http"

	"github.com/javi-source/MealCalendar/internal/calendar"
	"github.com/javi-source/MealCalendar/internal/models"
	"github.com/javi-source/MealCalendar/internal/repository"
)

type SummaryHandler struct {
	mealRepo    repository.MealRepository
	workoutRepo repository.WorkoutRepository
}

func NewSummaryHandler(mealRepo repository.MealRepository, workoutRepo repository.WorkoutRepository) *SummaryHandler {
	return &SummaryHandler{mealRepo: mealRepo, workoutRepo: workoutRepo}
}

type daySummary struct {
	Date     string           `json:"date"`
	Meals    []models.Meal    `json:"meals"`
	Workouts []models.Workout `json:"workouts"`
}

type weekSummary struct {
	WeekStart string       `json:"weekStart"`
	Days      []daySummary `json:"days"`
}

// Week returns the 7-day summary for the week containing ?date=,
// combining both domains per day. Query failures degrade to empty
// days rather than failing the whole summary.
func (handler *SummaryHandler) Week(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	day, ok := dayParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
		return
	}

	week := calendar.WeekOf(day)
	summary := weekSummary{WeekStart: week.Start.Format(dayFormat)}

	for _, date := range week.Days {
		meals, err := handler.mealRepo.FindByDay(ctx, date)
		if err != nil {
			slog.Error("finding meals for summary", "date", date, "error", err)
		}
		workouts, err := handler.workoutRepo.FindByDay(ctx, date)
		if err != nil {
			slog.Error("finding workouts for summary", "date", date, "error", err)
		}
		if meals == nil {
			meals = []models.Meal{}
		}
		if workouts == nil {
			workouts = []models.Workout{}
		}
		summary.Days = append(summary.Days, daySummary{
			Date:     date.Format(dayFormat),
			Meals:    meals,
			Workouts: workouts,
		})
	}

	writeJSON(w, http.StatusOK, summary)
}
