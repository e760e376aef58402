package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/javi-source/MealCalendar/internal/config"
	"github.com/javi-source/MealCalendar/internal/database"
	"github.com/javi-source/MealCalendar/internal/importer"
	"github.com/javi-source/MealCalendar/internal/repository"
	"github.com/javi-source/MealCalendar/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		slog.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("running migrations", "error", err)
		os.Exit(1)
	}

	mealRepo := repository.NewMealRepository(db)
	workoutRepo := repository.NewWorkoutRepository(db)

	// Legacy records must be in place before the first query is served.
	legacy := importer.New(mealRepo, workoutRepo, cfg.ClearLegacyAfterImport)
	legacy.Run(context.Background(), cfg.LegacyMealsPath, cfg.LegacyWorkoutsPath)

	srv := server.New(db, cfg)
	if err := srv.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
