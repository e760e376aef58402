package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javi-source/MealCalendar/internal/calendar"
	"github.com/javi-source/MealCalendar/internal/models"
)

// mealTypeOrder ranks meal types in their declared order so a day
// reads breakfast first and dinner last regardless of insertion order.
const mealTypeOrder = `CASE type
		WHEN 'breakfast' THEN 1
		WHEN 'lunch' THEN 2
		WHEN 'meal' THEN 3
		WHEN 'snack' THEN 4
		WHEN 'dinner' THEN 5
	END`

type MealRepository interface {
	FindByID(ctx context.Context, id string) (models.Meal, error)
	FindByDay(ctx context.Context, day time.Time) ([]models.Meal, error)
	FindByDayAndType(ctx context.Context, day time.Time, mealType models.MealType) ([]models.Meal, error)
	FindRange(ctx context.Context, from, to time.Time) ([]models.Meal, error)
	FindAll(ctx context.Context) ([]models.Meal, error)
	Save(ctx context.Context, meal models.Meal) (models.Meal, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type SQLiteMealRepository struct {
	database *sql.DB
}

func NewMealRepository(database *sql.DB) *SQLiteMealRepository {
	return &SQLiteMealRepository{database: database}
}

func (repository *SQLiteMealRepository) FindByID(ctx context.Context, id string) (models.Meal, error) {
	var meal models.Meal
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, name, type, date, notes FROM meals WHERE id = ?", id,
	).Scan(&meal.ID, &meal.Name, &meal.Type, &meal.Date, &meal.Notes)
	if err != nil {
		return models.Meal{}, fmt.Errorf("finding meal by id: %w", err)
	}
	return meal, nil
}

// Timestamps are stored normalized to UTC so that SQLite's text
// comparison of dates is chronologically correct. Day boundaries are
// still computed in the local time zone first.
func (repository *SQLiteMealRepository) FindByDay(ctx context.Context, day time.Time) ([]models.Meal, error) {
	start, end := calendar.DayInterval(day)
	return repository.query(ctx,
		"SELECT id, name, type, date, notes FROM meals WHERE date >= ? AND date < ? ORDER BY "+mealTypeOrder+", name ASC, id ASC",
		start.UTC(), end.UTC(),
	)
}

func (repository *SQLiteMealRepository) FindByDayAndType(ctx context.Context, day time.Time, mealType models.MealType) ([]models.Meal, error) {
	start, end := calendar.DayInterval(day)
	return repository.query(ctx,
		"SELECT id, name, type, date, notes FROM meals WHERE date >= ? AND date < ? AND type = ? ORDER BY "+mealTypeOrder+", name ASC, id ASC",
		start.UTC(), end.UTC(), mealType,
	)
}

// FindRange returns all meals with a date in the half-open interval
// [from, to), ordered by day then meal type.
func (repository *SQLiteMealRepository) FindRange(ctx context.Context, from, to time.Time) ([]models.Meal, error) {
	return repository.query(ctx,
		"SELECT id, name, type, date, notes FROM meals WHERE date >= ? AND date < ? ORDER BY date ASC, "+mealTypeOrder+", name ASC, id ASC",
		from.UTC(), to.UTC(),
	)
}

func (repository *SQLiteMealRepository) FindAll(ctx context.Context) ([]models.Meal, error) {
	return repository.query(ctx,
		"SELECT id, name, type, date, notes FROM meals ORDER BY date ASC, "+mealTypeOrder+", name ASC, id ASC",
	)
}

// Save upserts by id: an empty id gets a fresh UUID, a known id has
// all its mutable fields overwritten in a single statement.
func (repository *SQLiteMealRepository) Save(ctx context.Context, meal models.Meal) (models.Meal, error) {
	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO meals (id, name, type, date, notes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			date = excluded.date,
			notes = excluded.notes`,
		meal.ID, meal.Name, meal.Type, meal.Date.UTC(), meal.Notes,
	)
	if err != nil {
		return models.Meal{}, fmt.Errorf("saving meal: %w", err)
	}
	return meal, nil
}

func (repository *SQLiteMealRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM meals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting meal: %w", err)
	}
	return nil
}

func (repository *SQLiteMealRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := repository.database.QueryRowContext(ctx, "SELECT COUNT(*) FROM meals").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting meals: %w", err)
	}
	return count, nil
}

func (repository *SQLiteMealRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Meal, error) {
	rows, err := repository.database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding meals: %w", err)
	}
	defer rows.Close()

	var meals []models.Meal
	for rows.Next() {
		var meal models.Meal
		if err := rows.Scan(&meal.ID, &meal.Name, &meal.Type, &meal.Date, &meal.Notes); err != nil {
			return nil, fmt.Errorf("scanning meal: %w", err)
		}
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}
