// Package importer migrates records out of the legacy flat JSON
// store the app used before SQLite. The migration is best effort:
// it runs once per database lifetime, guarded by an emptiness check,
// and never fails the startup path.
package importer

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/javi-source/MealCalendar/internal/models"
	"github.com/javi-source/MealCalendar/internal/repository"
)

type Importer struct {
	meals      repository.MealRepository
	workouts   repository.WorkoutRepository
	clearAfter bool
}

func New(meals repository.MealRepository, workouts repository.WorkoutRepository, clearAfter bool) *Importer {
	return &Importer{meals: meals, workouts: workouts, clearAfter: clearAfter}
}

// Run migrates both domains. Each domain is independent: a problem
// with one file never blocks the other.
func (importer *Importer) Run(ctx context.Context, mealsPath, workoutsPath string) {
	importer.ImportMeals(ctx, mealsPath)
	importer.ImportWorkouts(ctx, workoutsPath)
}

// ImportMeals reads the legacy meal store, a JSON mapping of date key
// to meal list, and inserts every meal with its original id and
// fields. A non-empty meals table means the migration already
// happened (or was never needed) and the call is a no-op.
func (importer *Importer) ImportMeals(ctx context.Context, path string) {
	count, err := importer.meals.Count(ctx)
	if err != nil {
		slog.Error("checking meals before legacy import", "error", err)
		return
	}
	if count > 0 {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("reading legacy meals", "path", path, "error", err)
		}
		return
	}

	var grouped map[string][]legacyMeal
	if err := json.Unmarshal(data, &grouped); err != nil {
		slog.Warn("decoding legacy meals", "path", path, "error", err)
		return
	}

	imported := 0
	for _, group := range grouped {
		for _, legacy := range group {
			if _, err := importer.meals.Save(ctx, legacy.meal()); err != nil {
				// Partial import is accepted; no rollback.
				slog.Error("importing legacy meal", "id", legacy.ID, "error", err)
				return
			}
			imported++
		}
	}

	slog.Info("imported legacy meals", "count", imported, "path", path)
	importer.clear(path)
}

// ImportWorkouts behaves like ImportMeals. The legacy workout store
// was keyed by workout id with a single record per key; both that
// shape and the grouped-list shape decode.
func (importer *Importer) ImportWorkouts(ctx context.Context, path string) {
	count, err := importer.workouts.Count(ctx)
	if err != nil {
		slog.Error("checking workouts before legacy import", "error", err)
		return
	}
	if count > 0 {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("reading legacy workouts", "path", path, "error", err)
		}
		return
	}

	var flattened []legacyWorkout

	var grouped map[string][]legacyWorkout
	if err := json.Unmarshal(data, &grouped); err == nil {
		for _, group := range grouped {
			flattened = append(flattened, group...)
		}
	} else {
		var keyed map[string]legacyWorkout
		if err := json.Unmarshal(data, &keyed); err != nil {
			slog.Warn("decoding legacy workouts", "path", path, "error", err)
			return
		}
		for id, legacy := range keyed {
			if legacy.ID == "" {
				legacy.ID = id
			}
			flattened = append(flattened, legacy)
		}
	}

	imported := 0
	for _, legacy := range flattened {
		if _, err := importer.workouts.Save(ctx, legacy.workout()); err != nil {
			slog.Error("importing legacy workout", "id", legacy.ID, "error", err)
			return
		}
		imported++
	}

	slog.Info("imported legacy workouts", "count", imported, "path", path)
	importer.clear(path)
}

func (importer *Importer) clear(path string) {
	if !importer.clearAfter {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("clearing legacy store", "path", path, "error", err)
	}
}

type legacyMeal struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  models.MealType `json:"type"`
	Date  legacyTime      `json:"date"`
	Notes string          `json:"notes"`
}

func (legacy legacyMeal) meal() models.Meal {
	mealType := legacy.Type
	if !mealType.Valid() {
		mealType = models.MealTypeMeal
	}
	return models.Meal{
		ID:    legacy.ID,
		Name:  legacy.Name,
		Type:  mealType,
		Date:  legacy.Date.Time,
		Notes: legacy.Notes,
	}
}

type legacyWorkout struct {
	ID       string             `json:"id"`
	Type     models.WorkoutType `json:"type"`
	Date     legacyTime         `json:"date"`
	Distance *float64           `json:"distance"`
	Duration *float64           `json:"duration"`
	Notes    string             `json:"notes"`
}

func (legacy legacyWorkout) workout() models.Workout {
	workoutType := legacy.Type
	if !workoutType.Valid() {
		workoutType = models.WorkoutTypeOther
	}
	return models.Workout{
		ID:       legacy.ID,
		Type:     workoutType,
		Date:     legacy.Date.Time,
		Distance: legacy.Distance,
		Duration: legacy.Duration,
		Notes:    legacy.Notes,
	}
}
