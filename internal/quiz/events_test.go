package quiz

import "testing"

type eventLog struct {
	events []Event
}

func (l *eventLog) listen(ev Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds() []EventKind {
	kinds := make([]EventKind, len(l.events))
	for i, ev := range l.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventRoundStarted, "round_started"},
		{EventFlagSelected, "flag_selected"},
		{EventGameEnded, "game_ended"},
		{EventGameOverShown, "game_over_shown"},
		{EventGameReset, "game_reset"},
		{EventKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestEventsFollowRound(t *testing.T) {
	g, _ := newTestGame(t)
	log := &eventLog{}
	g.Subscribe(log.listen)

	g.SelectFlag(g.CorrectIndex())
	g.Acknowledge()

	want := []EventKind{EventFlagSelected, EventRoundStarted}
	got := log.kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}

	selected := log.events[0]
	if selected.Result != ResultCorrect {
		t.Errorf("select event result = %v, want correct", selected.Result)
	}
	if selected.State.Score != 1 || selected.State.Phase != PhaseRoundResolved {
		t.Errorf("select snapshot = %+v", selected.State)
	}
	if log.events[1].State.Selected != NoSelection {
		t.Errorf("round snapshot Selected = %d, want NoSelection", log.events[1].State.Selected)
	}
}

func TestEventsAtGameEnd(t *testing.T) {
	g, _ := newTestGame(t)
	log := &eventLog{}
	g.Subscribe(log.listen)

	for !g.GameEnded() {
		g.SelectFlag(wrongIndex(g))
		g.Acknowledge()
	}
	g.SelectFlag(0)
	g.Reset()

	kinds := log.kinds()
	n := len(kinds)
	if n < 4 {
		t.Fatalf("too few events: %v", kinds)
	}
	tail := []EventKind{EventGameEnded, EventGameOverShown, EventGameReset, EventRoundStarted}
	for i, want := range tail {
		if got := kinds[n-len(tail)+i]; got != want {
			t.Errorf("tail event %d = %v, want %v", i, got, want)
		}
	}

	ended := log.events[n-4].State
	if !ended.GameEnded() || ended.RoundsPlayed != TotalRounds || ended.Score != 0 {
		t.Errorf("end snapshot = %+v", ended)
	}
	reset := log.events[n-2].State
	if reset.GameEnded() || reset.Score != 0 || reset.RoundsPlayed != 0 {
		t.Errorf("reset snapshot = %+v", reset)
	}
}

func TestUnsubscribe(t *testing.T) {
	g, _ := newTestGame(t)
	first, second := &eventLog{}, &eventLog{}
	stop := g.Subscribe(first.listen)
	g.Subscribe(second.listen)

	g.SelectFlag(0)
	stop()
	g.Acknowledge()

	if len(first.events) != 1 {
		t.Errorf("unsubscribed listener got %d events, want 1", len(first.events))
	}
	if len(second.events) != 2 {
		t.Errorf("remaining listener got %d events, want 2", len(second.events))
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g, _ := newTestGame(t)
	snap := g.Snapshot()
	snap.Options[0] = "Atlantis"

	if g.Options()[0] == "Atlantis" {
		t.Error("mutating a snapshot changed the game")
	}
	if snap.TotalRounds != TotalRounds {
		t.Errorf("TotalRounds = %d, want %d", snap.TotalRounds, TotalRounds)
	}
}
