package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/guesstheflag/internal/quiz"
)

type firstSource struct{}

func (firstSource) Shuffle(int, func(i, j int)) {}
func (firstSource) RandomIndex(int) int        { return 0 }

func newRecordedGame(t *testing.T) (*quiz.Game, *GameRecorder, *tracetest.SpanRecorder) {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	g, err := quiz.New([]string{"France", "Italy", "Nigeria"}, quiz.WithSource(firstSource{}))
	if err != nil {
		t.Fatalf("quiz.New() error = %v", err)
	}
	rec := NewGameRecorder(context.Background(), tp.Tracer("test"), "session-1")
	g.Subscribe(rec.Listen)
	return g, rec, spans
}

func attr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestRecorderSelectSpan(t *testing.T) {
	g, _, spans := newRecordedGame(t)

	g.SelectFlag(1)

	ended := spans.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	span := ended[0]
	if span.Name() != "quiz.select" {
		t.Errorf("span name = %q, want quiz.select", span.Name())
	}
	if v, _ := attr(span, "result"); v.AsString() != "incorrect" {
		t.Errorf("result = %q, want incorrect", v.AsString())
	}
	if v, _ := attr(span, "selected_country"); v.AsString() != "Italy" {
		t.Errorf("selected_country = %q, want Italy", v.AsString())
	}
	if v, _ := attr(span, "session.id"); v.AsString() != "session-1" {
		t.Errorf("session.id = %q, want session-1", v.AsString())
	}
}

func TestRecorderGameSpans(t *testing.T) {
	g, rec, spans := newRecordedGame(t)

	for !g.GameEnded() {
		g.SelectFlag(g.CorrectIndex())
		g.Acknowledge()
	}
	g.Reset()
	rec.Close()

	var games, ends int
	var parent sdktrace.ReadOnlySpan
	for _, s := range spans.Ended() {
		switch s.Name() {
		case "quiz.game":
			games++
			if parent == nil {
				parent = s
			}
		case "quiz.end":
			ends++
		}
	}
	if games != 2 {
		t.Errorf("game spans = %d, want 2 (one per game)", games)
	}
	if ends != 1 {
		t.Errorf("end spans = %d, want 1", ends)
	}
	if v, ok := attr(parent, "final_score"); !ok || v.AsInt64() != quiz.TotalRounds {
		t.Errorf("final_score = %v, want %d", v.AsInt64(), quiz.TotalRounds)
	}
}

func TestTracerBeforeSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "noop")
	defer span.End()
	// Without Setup the global provider is a no-op
	if span.SpanContext().IsValid() {
		t.Error("span should not be recorded before Setup")
	}
}
