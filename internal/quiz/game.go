package quiz

import (
	"errors"
	"fmt"
)

const (
	// OptionCount is the number of flags shown in each round.
	OptionCount = 3
	// TotalRounds is the number of rounds in a game.
	TotalRounds = 8
)

// Option configures a Game.
type Option func(*Game)

// WithSource replaces the default time-seeded random source.
func WithSource(src Source) Option {
	return func(g *Game) {
		g.rng = src
	}
}

// WithEndRule sets the condition that ends the game.
func WithEndRule(rule EndRule) Option {
	return func(g *Game) {
		g.endRule = rule
	}
}

type subscription struct {
	id       int
	listener Listener
}

// Game holds the round, score and answer state of one play session.
// It is not safe for concurrent use; the presentation layer owns it.
type Game struct {
	pool     []string // Full country set, reshuffled every round; options are pool[:OptionCount]
	rng      Source
	endRule  EndRule
	correct  int
	selected int

	score           int
	roundsCompleted int
	roundsPlayed    int
	phase           Phase
	lastResult      Result

	listeners []subscription
	nextSubID int
}

// New creates a game over the given countries and starts the first round.
// The countries must be unique and at least OptionCount long.
func New(countries []string, opts ...Option) (*Game, error) {
	if len(countries) < OptionCount {
		return nil, fmt.Errorf("need at least %d countries, got %d", OptionCount, len(countries))
	}
	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate country %q", c)
		}
		seen[c] = struct{}{}
	}

	g := &Game{
		pool:     append([]string(nil), countries...),
		selected: NoSelection,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRandSource(0)
	}
	if g.endRule != EndAfterRounds && g.endRule != EndAfterCorrect {
		return nil, errors.New("invalid end rule")
	}

	g.startRound()
	return g, nil
}

// Subscribe registers l for state-change events and returns a function
// that removes it.
func (g *Game) Subscribe(l Listener) (unsubscribe func()) {
	id := g.nextSubID
	g.nextSubID++
	g.listeners = append(g.listeners, subscription{id: id, listener: l})

	return func() {
		for i, sub := range g.listeners {
			if sub.id == id {
				g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

// SelectFlag resolves the current round with a tap on option index.
//
// Taps after the game has ended return ResultGameOver and change nothing.
// A second tap on an already resolved round returns the first result.
// An index outside [0, OptionCount) is a caller bug and panics.
func (g *Game) SelectFlag(index int) Result {
	if index < 0 || index >= OptionCount {
		panic(fmt.Sprintf("quiz: SelectFlag index %d out of range [0,%d)", index, OptionCount))
	}

	switch g.phase {
	case PhaseGameEnded:
		g.emit(EventGameOverShown, ResultGameOver)
		return ResultGameOver
	case PhaseRoundResolved:
		return g.lastResult
	}

	g.selected = index
	g.roundsPlayed++
	if index == g.correct {
		g.score++
		g.roundsCompleted++
		g.lastResult = ResultCorrect
	} else {
		g.lastResult = ResultIncorrect
	}
	g.phase = PhaseRoundResolved

	g.emit(EventFlagSelected, g.lastResult)
	return g.lastResult
}

// Acknowledge is called once the result of a tap has been shown.
// It starts the next round, or ends the game when the end rule is met,
// and reports whether the game is over. Outside PhaseRoundResolved it
// changes nothing.
func (g *Game) Acknowledge() (ended bool) {
	if g.phase != PhaseRoundResolved {
		return g.phase == PhaseGameEnded
	}

	if g.endReached() {
		g.phase = PhaseGameEnded
		g.emit(EventGameEnded, g.lastResult)
		return true
	}

	g.startRound()
	g.emit(EventRoundStarted, ResultNone)
	return false
}

// Reset clears the score and round counters and starts a new round.
func (g *Game) Reset() {
	g.score = 0
	g.roundsCompleted = 0
	g.roundsPlayed = 0
	g.startRound()

	g.emit(EventGameReset, ResultNone)
	g.emit(EventRoundStarted, ResultNone)
}

// startRound reshuffles the pool and picks a new correct index.
func (g *Game) startRound() {
	g.rng.Shuffle(len(g.pool), func(i, j int) {
		g.pool[i], g.pool[j] = g.pool[j], g.pool[i]
	})
	g.correct = g.rng.RandomIndex(OptionCount)
	if g.correct < 0 || g.correct >= OptionCount {
		panic(fmt.Sprintf("quiz: random source returned index %d outside [0,%d)", g.correct, OptionCount))
	}
	g.selected = NoSelection
	g.lastResult = ResultNone
	g.phase = PhaseAwaitingTap
}

func (g *Game) endReached() bool {
	if g.endRule == EndAfterCorrect {
		return g.roundsCompleted >= TotalRounds
	}
	return g.roundsPlayed >= TotalRounds
}

func (g *Game) emit(kind EventKind, result Result) {
	if len(g.listeners) == 0 {
		return
	}
	ev := Event{Kind: kind, Result: result, State: g.Snapshot()}
	for _, sub := range append([]subscription(nil), g.listeners...) {
		sub.listener(ev)
	}
}

// Options returns the flags shown this round.
func (g *Game) Options() []string {
	return append([]string(nil), g.pool[:OptionCount]...)
}

// CorrectIndex returns the position of the target country within Options.
func (g *Game) CorrectIndex() int {
	return g.correct
}

// Target returns the country the player is asked to find.
func (g *Game) Target() string {
	return g.pool[g.correct]
}

// Selected returns the tapped option of the current round, if any.
func (g *Game) Selected() (int, bool) {
	return g.selected, g.selected != NoSelection
}

// Score returns the number of correct taps this game.
func (g *Game) Score() int {
	return g.score
}

// RoundsCompleted returns the number of rounds won with a correct tap.
func (g *Game) RoundsCompleted() int {
	return g.roundsCompleted
}

// RoundsPlayed returns the number of rounds resolved by any tap.
func (g *Game) RoundsPlayed() int {
	return g.roundsPlayed
}

// GameEnded reports whether the final round has been acknowledged.
func (g *Game) GameEnded() bool {
	return g.phase == PhaseGameEnded
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// LastResult returns the outcome of the current round's tap.
func (g *Game) LastResult() Result {
	return g.lastResult
}

// EndRule returns the rule that ends the game.
func (g *Game) EndRule() EndRule {
	return g.endRule
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Options:         g.Options(),
		CorrectIndex:    g.correct,
		Target:          g.Target(),
		Selected:        g.selected,
		Score:           g.score,
		RoundsCompleted: g.roundsCompleted,
		RoundsPlayed:    g.roundsPlayed,
		TotalRounds:     TotalRounds,
		Phase:           g.phase,
		LastResult:      g.lastResult,
	}
}
