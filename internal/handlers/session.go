package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/javi-source/MealCalendar/internal/session"
)

// SessionHandler exposes the per-tab calendar session state. Each tab
// (meals, workouts) navigates its own week window independently, like
// the tabs of the mobile app.
type SessionHandler struct {
	tabs map[string]*session.State
	now  func() time.Time
}

func NewSessionHandler(tabs map[string]*session.State, now func() time.Time) *SessionHandler {
	if now == nil {
		now = time.Now
	}
	return &SessionHandler{tabs: tabs, now: now}
}

func (handler *SessionHandler) tab(w http.ResponseWriter, r *http.Request) (*session.State, bool) {
	state, ok := handler.tabs[chi.URLParam(r, "tab")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tab")
	}
	return state, ok
}

func (handler *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, ok := handler.tab(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.Snapshot())
}

func (handler *SessionHandler) NextWeek(w http.ResponseWriter, r *http.Request) {
	state, ok := handler.tab(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.NextWeek())
}

func (handler *SessionHandler) PreviousWeek(w http.ResponseWriter, r *http.Request) {
	state, ok := handler.tab(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.PreviousWeek())
}

func (handler *SessionHandler) Today(w http.ResponseWriter, r *http.Request) {
	state, ok := handler.tab(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.GoToToday(handler.now()))
}

type openEditorRequest struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	TargetID string `json:"targetId"`
}

// OpenEditor records the editor prefill: the tapped date, the type
// slot, and the existing record id when editing rather than creating.
func (handler *SessionHandler) OpenEditor(w http.ResponseWriter, r *http.Request) {
	state, ok := handler.tab(w, r)
	if !ok {
		return
	}

	var request openEditorRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	date, err := time.ParseInLocation(dayFormat, request.Date, time.Local)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date is required (YYYY-MM-DD)")
		return
	}

	writeJSON(w, http.StatusOK, state.OpenEditor(date, request.Type, request.TargetID))
}

func (handler *SessionHandler) CloseEditor(w http.ResponseWriter, r *http.Request) {
	state, ok := handler.tab(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, state.CloseEditor())
}
