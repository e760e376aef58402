// Package session holds the transient per-tab calendar state: the
// week window being browsed, the selected date, and the editor sheet
// target. Nothing here is persisted; a session lives for the process
// lifetime and is rebuilt around "today" on the next launch.
package session

import (
	"sync"
	"time"

	"github.com/javi-source/MealCalendar/internal/calendar"
)

// Editor describes the open editor sheet. An empty TargetID means a
// new record is being created; otherwise it references an existing
// record to edit. TypePrefill carries the type slot the user tapped
// (a meal type for the meals tab, a workout type for workouts).
type Editor struct {
	Open        bool      `json:"open"`
	Date        time.Time `json:"date,omitempty"`
	TypePrefill string    `json:"typePrefill,omitempty"`
	TargetID    string    `json:"targetId,omitempty"`
}

// Snapshot is the immutable view of the state handed to observers
// and serialized to clients.
type Snapshot struct {
	CurrentWeek  calendar.Week `json:"currentWeek"`
	SelectedDate time.Time     `json:"selectedDate"`
	Editor       Editor        `json:"editor"`
}

// State is a small state machine with two modes: browsing (editor
// closed) and editing (editor open). Week navigation is legal in
// either mode and never touches the editor.
type State struct {
	mu           sync.Mutex
	currentWeek  calendar.Week
	selectedDate time.Time
	editor       Editor
	observers    []func(Snapshot)
}

// New starts a session browsing the week containing now.
func New(now time.Time) *State {
	return &State{
		currentWeek:  calendar.WeekOf(now),
		selectedDate: calendar.StartOfDay(now),
	}
}

// Subscribe registers an observer called after every transition.
// Observers run synchronously on the mutating call, in registration
// order.
func (state *State) Subscribe(observer func(Snapshot)) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.observers = append(state.observers, observer)
}

func (state *State) Snapshot() Snapshot {
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.snapshotLocked()
}

func (state *State) NextWeek() Snapshot {
	return state.transition(func() {
		state.currentWeek = calendar.NewWeek(state.currentWeek.Start.AddDate(0, 0, 7))
	})
}

func (state *State) PreviousWeek() Snapshot {
	return state.transition(func() {
		state.currentWeek = calendar.NewWeek(state.currentWeek.Start.AddDate(0, 0, -7))
	})
}

// GoToToday recenters the window on the week containing now and
// selects now's date.
func (state *State) GoToToday(now time.Time) Snapshot {
	return state.transition(func() {
		state.currentWeek = calendar.WeekOf(now)
		state.selectedDate = calendar.StartOfDay(now)
	})
}

func (state *State) SelectDate(date time.Time) Snapshot {
	return state.transition(func() {
		state.selectedDate = calendar.StartOfDay(date)
	})
}

// OpenEditor moves to editing mode, recording what the editor should
// prefill. targetID is empty when creating a new record.
func (state *State) OpenEditor(date time.Time, typePrefill, targetID string) Snapshot {
	return state.transition(func() {
		state.editor = Editor{
			Open:        true,
			Date:        calendar.StartOfDay(date),
			TypePrefill: typePrefill,
			TargetID:    targetID,
		}
	})
}

// CloseEditor returns to browsing. Save, cancel and delete all end
// here.
func (state *State) CloseEditor() Snapshot {
	return state.transition(func() {
		state.editor = Editor{}
	})
}

func (state *State) transition(mutate func()) Snapshot {
	state.mu.Lock()
	mutate()
	snapshot := state.snapshotLocked()
	observers := state.observers
	state.mu.Unlock()

	for _, observer := range observers {
		observer(snapshot)
	}
	return snapshot
}

func (state *State) snapshotLocked() Snapshot {
	return Snapshot{
		CurrentWeek:  state.currentWeek,
		SelectedDate: state.selectedDate,
		Editor:       state.editor,
	}
}
