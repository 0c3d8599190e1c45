package app

import (
	"github.com/rs/zerolog"

	"github.com/samdwyer/guesstheflag/internal/quiz"
)

// LogEvents returns a quiz listener that writes every state change to log.
func LogEvents(log zerolog.Logger) quiz.Listener {
	return func(ev quiz.Event) {
		var e *zerolog.Event
		switch ev.Kind {
		case quiz.EventGameEnded, quiz.EventGameReset:
			e = log.Info()
		default:
			e = log.Debug()
		}

		e = e.Str("event", ev.Kind.String()).
			Int("score", ev.State.Score).
			Int("rounds_played", ev.State.RoundsPlayed).
			Str("target", ev.State.Target)
		if ev.Result != quiz.ResultNone {
			e = e.Str("result", ev.Result.String())
		}
		if ev.Kind == quiz.EventRoundStarted {
			e = e.Strs("options", ev.State.Options)
		}
		e.Msg("quiz event")
	}
}
