package config

import "os"

type Config struct {
	DatabasePath       string
	LegacyMealsPath    string
	LegacyWorkoutsPath string
	// ClearLegacyAfterImport removes the legacy JSON files once their
	// records are in the database. Off by default: the files are kept
	// as a fallback.
	ClearLegacyAfterImport bool
	LogLevel               string
	Port                   string
}

func Load() Config {
	return Config{
		DatabasePath:           envOrDefault("DATABASE_PATH", "./data/mealcalendar.db"),
		LegacyMealsPath:        envOrDefault("LEGACY_MEALS_PATH", "./data/legacy/meals.json"),
		LegacyWorkoutsPath:     envOrDefault("LEGACY_WORKOUTS_PATH", "./data/legacy/workouts.json"),
		ClearLegacyAfterImport: os.Getenv("CLEAR_LEGACY_AFTER_IMPORT") == "true",
		LogLevel:               envOrDefault("LOG_LEVEL", "info"),
		Port:                   envOrDefault("PORT", "8080"),
	}
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
