package models

import "time"

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeMeal      MealType = "meal"
	MealTypeSnack     MealType = "snack"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes lists the meal types in display and sort order.
var MealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeMeal,
	MealTypeSnack,
	MealTypeDinner,
}

func (mealType MealType) Valid() bool {
	for _, known := range MealTypes {
		if mealType == known {
			return true
		}
	}
	return false
}

type WorkoutType string

const (
	WorkoutTypeRunning  WorkoutType = "running"
	WorkoutTypeWalking  WorkoutType = "walking"
	WorkoutTypeCycling  WorkoutType = "cycling"
	WorkoutTypeGym      WorkoutType = "gym"
	WorkoutTypeYoga     WorkoutType = "yoga"
	WorkoutTypeSwimming WorkoutType = "swimming"
	WorkoutTypeOther    WorkoutType = "other"
)

// WorkoutTypes lists the workout types in display and sort order.
var WorkoutTypes = []WorkoutType{
	WorkoutTypeRunning,
	WorkoutTypeWalking,
	WorkoutTypeCycling,
	WorkoutTypeGym,
	WorkoutTypeYoga,
	WorkoutTypeSwimming,
	WorkoutTypeOther,
}

func (workoutType WorkoutType) Valid() bool {
	for _, known := range WorkoutTypes {
		if workoutType == known {
			return true
		}
	}
	return false
}

// Meal is a single meal entry. ID is a UUID string assigned on first
// save and never changed afterwards.
type Meal struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Type  MealType  `json:"type"`
	Date  time.Time `json:"date"`
	Notes string    `json:"notes"`
}

// Workout is a single workout entry. Distance (km) and Duration
// (minutes) are each optional.
type Workout struct {
	ID       string      `json:"id"`
	Type     WorkoutType `json:"type"`
	Date     time.Time   `json:"date"`
	Distance *float64    `json:"distance,omitempty"`
	Duration *float64    `json:"duration,omitempty"`
	Notes    string      `json:"notes"`
}
