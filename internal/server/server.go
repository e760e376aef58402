package server

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/javi-source/MealCalendar/internal/config"
	"github.com/javi-source/MealCalendar/internal/handlers"
	"github.com/javi-source/MealCalendar/internal/repository"
	"github.com/javi-source/MealCalendar/internal/session"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(database *sql.DB, cfg config.Config) *Server {
	mealRepo := repository.NewMealRepository(database)
	workoutRepo := repository.NewWorkoutRepository(database)

	now := time.Now()
	tabs := map[string]*session.State{
		"meals":    session.New(now),
		"workouts": session.New(now),
	}

	mealHandler := handlers.NewMealHandler(mealRepo, tabs["meals"])
	workoutHandler := handlers.NewWorkoutHandler(workoutRepo, tabs["workouts"])
	sessionHandler := handlers.NewSessionHandler(tabs, time.Now)
	summaryHandler := handlers.NewSummaryHandler(mealRepo, workoutRepo)
	icalHandler := handlers.NewICalHandler(mealRepo, workoutRepo)

	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Compress(5))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/ical", icalHandler.Feed)

	router.Route("/api", func(r chi.Router) {
		r.Get("/meals", mealHandler.List)
		r.Post("/meals", mealHandler.Save)
		r.Delete("/meals/{id}", mealHandler.Delete)

		r.Get("/workouts", workoutHandler.List)
		r.Post("/workouts", workoutHandler.Save)
		r.Delete("/workouts/{id}", workoutHandler.Delete)

		r.Get("/summary", summaryHandler.Week)

		r.Route("/session/{tab}", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Post("/next-week", sessionHandler.NextWeek)
			r.Post("/previous-week", sessionHandler.PreviousWeek)
			r.Post("/today", sessionHandler.Today)
			r.Post("/editor/open", sessionHandler.OpenEditor)
			r.Post("/editor/close", sessionHandler.CloseEditor)
		})
	})

	return &Server{router: router, config: cfg}
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
