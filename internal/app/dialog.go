package app

// dialogKind is the modal currently covering the board.
type dialogKind int

const (
	dialogNone dialogKind = iota
	// dialogCorrect - "Right", acknowledged with Continue
	dialogCorrect
	// dialogWrong - "Hint" naming the tapped flag, acknowledged with OK
	dialogWrong
	// dialogGameOver - final score with New game / OK
	dialogGameOver
)

// String returns a human-readable dialog name.
func (d dialogKind) String() string {
	switch d {
	case dialogNone:
		return "none"
	case dialogCorrect:
		return "correct"
	case dialogWrong:
		return "wrong"
	case dialogGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
