// Package quiz implements the flag-guessing round state machine.
package quiz

import "fmt"

// Phase represents where the game is within a round.
type Phase int

const (
	// PhaseAwaitingTap - options are shown and no flag has been picked yet
	PhaseAwaitingTap Phase = iota
	// PhaseRoundResolved - a flag was picked; waiting for the result to be acknowledged
	PhaseRoundResolved
	// PhaseGameEnded - all rounds are over; only Reset starts play again
	PhaseGameEnded
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingTap:
		return "awaiting_tap"
	case PhaseRoundResolved:
		return "round_resolved"
	case PhaseGameEnded:
		return "game_ended"
	default:
		return "unknown"
	}
}

// Result is the outcome of a SelectFlag call.
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultIncorrect
	// ResultGameOver is returned for taps after the game has ended.
	ResultGameOver
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultCorrect:
		return "correct"
	case ResultIncorrect:
		return "incorrect"
	case ResultGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndRule decides when a resolved round finishes the game.
type EndRule int

const (
	// EndAfterRounds ends the game once TotalRounds taps have been resolved,
	// whether they were right or wrong.
	EndAfterRounds EndRule = iota
	// EndAfterCorrect ends the game only after TotalRounds correct taps.
	// Wrong taps replay the round with a fresh set of flags.
	EndAfterCorrect
)

// String returns the configuration name of the rule.
func (r EndRule) String() string {
	switch r {
	case EndAfterRounds:
		return "rounds"
	case EndAfterCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// UnmarshalText parses "rounds" or "correct", so the rule can be read from
// the environment.
func (r *EndRule) UnmarshalText(text []byte) error {
	switch string(text) {
	case "rounds", "":
		*r = EndAfterRounds
	case "correct":
		*r = EndAfterCorrect
	default:
		return fmt.Errorf("unknown end rule %q", text)
	}
	return nil
}
