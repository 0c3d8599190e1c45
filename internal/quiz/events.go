package quiz

// EventKind identifies a state change emitted by Game.
type EventKind int

const (
	// EventRoundStarted - a fresh set of options and a new correct index are in place
	EventRoundStarted EventKind = iota
	// EventFlagSelected - a tap resolved the current round
	EventFlagSelected
	// EventGameEnded - the final round was acknowledged
	EventGameEnded
	// EventGameOverShown - a tap arrived after the game ended; nothing changed
	EventGameOverShown
	// EventGameReset - score and rounds were cleared for a new game
	EventGameReset
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round_started"
	case EventFlagSelected:
		return "flag_selected"
	case EventGameEnded:
		return "game_ended"
	case EventGameOverShown:
		return "game_over_shown"
	case EventGameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}

// NoSelection is the Selected value of a round without a tap.
const NoSelection = -1

// Snapshot is a copy of the game state at the moment an event was emitted.
type Snapshot struct {
	Options         []string
	CorrectIndex    int
	Target          string // Country the player is asked to find
	Selected        int    // Tapped option, or NoSelection
	Score           int
	RoundsCompleted int // Rounds won with a correct tap
	RoundsPlayed    int // Rounds resolved by any tap
	TotalRounds     int
	Phase           Phase
	LastResult      Result
}

// GameEnded reports whether the snapshot was taken after the final round.
func (s Snapshot) GameEnded() bool {
	return s.Phase == PhaseGameEnded
}

// Event describes a state change.
type Event struct {
	Kind   EventKind
	Result Result // Set for EventFlagSelected and EventGameOverShown
	State  Snapshot
}

// Listener receives events synchronously, on the goroutine that caused them.
type Listener func(Event)
