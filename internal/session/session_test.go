package session_test

import (
	"testing"
	"time"

	"github.com/javi-source/MealCalendar/internal/calendar"
	"github.com/javi-source/MealCalendar/internal/session"
)

func TestNew_StartsBrowsingCurrentWeek(t *testing.T) {
	now := time.Date(2024, 6, 5, 14, 0, 0, 0, time.Local)
	state := session.New(now)

	snapshot := state.Snapshot()
	wantStart := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)
	if !snapshot.CurrentWeek.Start.Equal(wantStart) {
		t.Errorf("expected week start %v, got %v", wantStart, snapshot.CurrentWeek.Start)
	}
	if !snapshot.SelectedDate.Equal(calendar.StartOfDay(now)) {
		t.Errorf("expected selected date %v, got %v", calendar.StartOfDay(now), snapshot.SelectedDate)
	}
	if snapshot.Editor.Open {
		t.Error("expected editor closed initially")
	}
}

func TestNextWeekThenPreviousWeek_ReturnsToStart(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))
	start := state.Snapshot().CurrentWeek.Start

	state.NextWeek()
	snapshot := state.PreviousWeek()

	if !snapshot.CurrentWeek.Start.Equal(start) {
		t.Errorf("expected to return to week starting %v, got %v", start, snapshot.CurrentWeek.Start)
	}
}

func TestNextWeek_ShiftsSevenDays(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))

	snapshot := state.NextWeek()

	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	if !snapshot.CurrentWeek.Start.Equal(want) {
		t.Errorf("expected week start %v, got %v", want, snapshot.CurrentWeek.Start)
	}
	if len(snapshot.CurrentWeek.Days) != 7 {
		t.Errorf("expected 7 days, got %d", len(snapshot.CurrentWeek.Days))
	}
}

func TestGoToToday_RecentersAndSelects(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))
	state.NextWeek()
	state.NextWeek()

	now := time.Date(2024, 6, 5, 16, 0, 0, 0, time.Local)
	snapshot := state.GoToToday(now)

	if !snapshot.CurrentWeek.Start.Equal(calendar.WeekStart(now)) {
		t.Errorf("expected week containing today, got start %v", snapshot.CurrentWeek.Start)
	}
	if !snapshot.SelectedDate.Equal(calendar.StartOfDay(now)) {
		t.Errorf("expected today selected, got %v", snapshot.SelectedDate)
	}
}

func TestOpenEditor_RecordsPrefill(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))

	target := time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local)
	snapshot := state.OpenEditor(target, "breakfast", "some-meal-id")

	if !snapshot.Editor.Open {
		t.Fatal("expected editor open")
	}
	if !snapshot.Editor.Date.Equal(target) {
		t.Errorf("expected editor date %v, got %v", target, snapshot.Editor.Date)
	}
	if snapshot.Editor.TypePrefill != "breakfast" {
		t.Errorf("expected breakfast prefill, got %q", snapshot.Editor.TypePrefill)
	}
	if snapshot.Editor.TargetID != "some-meal-id" {
		t.Errorf("expected target id, got %q", snapshot.Editor.TargetID)
	}
}

func TestOpenEditor_EmptyTargetMeansNewRecord(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))

	snapshot := state.OpenEditor(time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local), "running", "")

	if !snapshot.Editor.Open {
		t.Fatal("expected editor open")
	}
	if snapshot.Editor.TargetID != "" {
		t.Errorf("expected empty target for new record, got %q", snapshot.Editor.TargetID)
	}
}

func TestCloseEditor_ReturnsToBrowsing(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))
	state.OpenEditor(time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local), "lunch", "")

	snapshot := state.CloseEditor()

	if snapshot.Editor.Open {
		t.Error("expected editor closed")
	}
	if snapshot.Editor.TargetID != "" || snapshot.Editor.TypePrefill != "" {
		t.Errorf("expected editor reset, got %+v", snapshot.Editor)
	}
}

func TestWeekNavigation_DoesNotTouchEditor(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))
	state.OpenEditor(time.Date(2024, 6, 4, 0, 0, 0, 0, time.Local), "dinner", "id-1")

	snapshot := state.NextWeek()

	if !snapshot.Editor.Open || snapshot.Editor.TargetID != "id-1" {
		t.Errorf("expected editor untouched by navigation, got %+v", snapshot.Editor)
	}
}

func TestSubscribe_NotifiedOnEveryTransition(t *testing.T) {
	state := session.New(time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local))

	var seen []session.Snapshot
	state.Subscribe(func(snapshot session.Snapshot) {
		seen = append(seen, snapshot)
	})

	state.NextWeek()
	state.OpenEditor(time.Date(2024, 6, 11, 0, 0, 0, 0, time.Local), "snack", "")
	state.CloseEditor()

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if !seen[1].Editor.Open {
		t.Error("expected second notification with editor open")
	}
	if seen[2].Editor.Open {
		t.Error("expected final notification with editor closed")
	}
}
