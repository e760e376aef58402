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

const workoutTypeOrder = `CASE type
		WHEN 'running' THEN 1
		WHEN 'walking' THEN 2
		WHEN 'cycling' THEN 3
		WHEN 'gym' THEN 4
		WHEN 'yoga' THEN 5
		WHEN 'swimming' THEN 6
		WHEN 'other' THEN 7
	END`

type WorkoutRepository interface {
	FindByID(ctx context.Context, id string) (models.Workout, error)
	FindByDay(ctx context.Context, day time.Time) ([]models.Workout, error)
	FindByDayAndType(ctx context.Context, day time.Time, workoutType models.WorkoutType) ([]models.Workout, error)
	FindRange(ctx context.Context, from, to time.Time) ([]models.Workout, error)
	FindAll(ctx context.Context) ([]models.Workout, error)
	Save(ctx context.Context, workout models.Workout) (models.Workout, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type SQLiteWorkoutRepository struct {
	database *sql.DB
}

func NewWorkoutRepository(database *sql.DB) *SQLiteWorkoutRepository {
	return &SQLiteWorkoutRepository{database: database}
}

func (repository *SQLiteWorkoutRepository) FindByID(ctx context.Context, id string) (models.Workout, error) {
	var workout models.Workout
	err := repository.database.QueryRowContext(ctx,
		"SELECT id, type, date, distance, duration, notes FROM workouts WHERE id = ?", id,
	).Scan(&workout.ID, &workout.Type, &workout.Date, &workout.Distance, &workout.Duration, &workout.Notes)
	if err != nil {
		return models.Workout{}, fmt.Errorf("finding workout by id: %w", err)
	}
	return workout, nil
}

// Longer workouts sort first within a type; NULL durations sort last
// under DESC in SQLite. Timestamps are stored normalized to UTC, day
// boundaries are computed in the local time zone.
func (repository *SQLiteWorkoutRepository) FindByDay(ctx context.Context, day time.Time) ([]models.Workout, error) {
	start, end := calendar.DayInterval(day)
	return repository.query(ctx,
		"SELECT id, type, date, distance, duration, notes FROM workouts WHERE date >= ? AND date < ? ORDER BY "+workoutTypeOrder+", duration DESC, id ASC",
		start.UTC(), end.UTC(),
	)
}

func (repository *SQLiteWorkoutRepository) FindByDayAndType(ctx context.Context, day time.Time, workoutType models.WorkoutType) ([]models.Workout, error) {
	start, end := calendar.DayInterval(day)
	return repository.query(ctx,
		"SELECT id, type, date, distance, duration, notes FROM workouts WHERE date >= ? AND date < ? AND type = ? ORDER BY "+workoutTypeOrder+", duration DESC, id ASC",
		start.UTC(), end.UTC(), workoutType,
	)
}

func (repository *SQLiteWorkoutRepository) FindRange(ctx context.Context, from, to time.Time) ([]models.Workout, error) {
	return repository.query(ctx,
		"SELECT id, type, date, distance, duration, notes FROM workouts WHERE date >= ? AND date < ? ORDER BY date ASC, "+workoutTypeOrder+", duration DESC, id ASC",
		from.UTC(), to.UTC(),
	)
}

func (repository *SQLiteWorkoutRepository) FindAll(ctx context.Context) ([]models.Workout, error) {
	return repository.query(ctx,
		"SELECT id, type, date, distance, duration, notes FROM workouts ORDER BY date ASC, "+workoutTypeOrder+", duration DESC, id ASC",
	)
}

func (repository *SQLiteWorkoutRepository) Save(ctx context.Context, workout models.Workout) (models.Workout, error) {
	if workout.ID == "" {
		workout.ID = uuid.New().String()
	}

	_, err := repository.database.ExecContext(ctx,
		`INSERT INTO workouts (id, type, date, distance, duration, notes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			type = excluded.type,
			date = excluded.date,
			distance = excluded.distance,
			duration = excluded.duration,
			notes = excluded.notes`,
		workout.ID, workout.Type, workout.Date.UTC(), workout.Distance, workout.Duration, workout.Notes,
	)
	if err != nil {
		return models.Workout{}, fmt.Errorf("saving workout: %w", err)
	}
	return workout, nil
}

func (repository *SQLiteWorkoutRepository) Delete(ctx context.Context, id string) error {
	_, err := repository.database.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	return nil
}

func (repository *SQLiteWorkoutRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := repository.database.QueryRowContext(ctx, "SELECT COUNT(*) FROM workouts").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting workouts: %w", err)
	}
	return count, nil
}

func (repository *SQLiteWorkoutRepository) query(ctx context.Context, query string, args ...interface{}) ([]models.Workout, error) {
	rows, err := repository.database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("finding workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(&workout.ID, &workout.Type, &workout.Date, &workout.Distance, &workout.Duration, &workout.Notes); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		workouts = append(workouts, workout)
	}
	return workouts, rows.Err()
}
