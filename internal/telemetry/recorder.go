package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/guesstheflag/internal/quiz"
)

// GameRecorder turns quiz events into spans. Each game is one parent span
// ("quiz.game") with a child span per event, so a trace reads as a game.
type GameRecorder struct {
	ctx       context.Context
	tracer    trace.Tracer
	sessionID string
	game      trace.Span
	gameCtx   context.Context
	games     int
}

// NewGameRecorder creates a recorder and opens the span of the first game.
func NewGameRecorder(ctx context.Context, tracer trace.Tracer, sessionID string) *GameRecorder {
	r := &GameRecorder{
		ctx:       ctx,
		tracer:    tracer,
		sessionID: sessionID,
	}
	r.startGame()
	return r
}

// Listen records ev. It has the quiz.Listener signature.
func (r *GameRecorder) Listen(ev quiz.Event) {
	switch ev.Kind {
	case quiz.EventFlagSelected:
		r.record("quiz.select", ev,
			attribute.String("result", ev.Result.String()),
			attribute.Int("selected", ev.State.Selected),
			attribute.String("selected_country", ev.State.Options[ev.State.Selected]),
		)
	case quiz.EventRoundStarted:
		r.record("quiz.round", ev,
			attribute.StringSlice("options", ev.State.Options),
		)
	case quiz.EventGameOverShown:
		r.record("quiz.tap_after_end", ev)
	case quiz.EventGameEnded:
		r.record("quiz.end", ev)
		r.game.SetAttributes(
			attribute.Int("final_score", ev.State.Score),
			attribute.Int("rounds_played", ev.State.RoundsPlayed),
		)
		r.game.SetStatus(codes.Ok, "")
	case quiz.EventGameReset:
		r.record("quiz.reset", ev)
		r.game.End()
		r.startGame()
	}
}

// Close ends the current game span.
func (r *GameRecorder) Close() {
	r.game.End()
}

func (r *GameRecorder) startGame() {
	r.games++
	r.gameCtx, r.game = r.tracer.Start(r.ctx, "quiz.game")
	r.game.SetAttributes(
		attribute.String("session.id", r.sessionID),
		attribute.Int("game.number", r.games),
	)
}

func (r *GameRecorder) record(name string, ev quiz.Event, attrs ...attribute.KeyValue) {
	_, span := r.tracer.Start(r.gameCtx, name)
	span.SetAttributes(
		attribute.String("session.id", r.sessionID),
		attribute.String("target", ev.State.Target),
		attribute.Int("score", ev.State.Score),
		attribute.Int("rounds_completed", ev.State.RoundsCompleted),
		attribute.Int("rounds_played", ev.State.RoundsPlayed),
		attribute.String("phase", ev.State.Phase.String()),
	)
	span.SetAttributes(attrs...)
	span.End()
}
