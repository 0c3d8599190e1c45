// Package app runs the terminal game loop: it renders the quiz, turns key
// presses and clicks into taps, and manages the result dialogs.
package app

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/guesstheflag/internal/flagdata"
	"github.com/samdwyer/guesstheflag/internal/quiz"
	"github.com/samdwyer/guesstheflag/internal/ui"
)

// Config holds presentation options.
type Config struct {
	ShowLabels bool
}

// App holds the screen, the quiz and the dialog currently shown.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *quiz.Game
	flags    *flagdata.Registry
	log      zerolog.Logger
	cfg      Config
	dialog   dialogKind
	running  bool
}

// New creates an app drawing game on screen.
func New(screen *ui.Screen, game *quiz.Game, flags *flagdata.Registry, log zerolog.Logger, cfg Config) *App {
	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		game:     game,
		flags:    flags,
		log:      log,
		cfg:      cfg,
		running:  true,
	}
}

// Run executes the main loop until the player quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.screen.Close()

	a.log.Info().
		Str("target", a.game.Target()).
		Str("end_rule", a.game.EndRule().String()).
		Msg("game started")

	for a.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.render()

		ev := a.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		a.handleEvent(ev)
	}

	a.log.Info().Int("score", a.game.Score()).Msg("player quit")
	return nil
}

// handleEvent processes a single terminal event.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ev)
	case *tcell.EventMouse:
		a.handleMouseEvent(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
		return
	case tcell.KeyEnter:
		a.confirm()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		a.running = false
	case ' ':
		a.confirm()
	case 'o', 'O':
		if a.dialog == dialogGameOver {
			a.dialog = dialogNone
		}
	case 'n', 'N':
		if a.dialog == dialogGameOver {
			a.newGame()
		}
	case '1', '2', '3':
		a.tap(int(r - '1'))
	}
}

// handleMouseEvent treats a left click on a flag as a tap.
func (a *App) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if idx := a.renderer.FlagAt(x, y); idx >= 0 {
		a.tap(idx)
	}
}

// tap forwards a flag selection unless a dialog is covering the board.
func (a *App) tap(index int) {
	if a.dialog != dialogNone {
		return
	}

	switch a.game.SelectFlag(index) {
	case quiz.ResultCorrect:
		a.dialog = dialogCorrect
	case quiz.ResultIncorrect:
		a.dialog = dialogWrong
	case quiz.ResultGameOver:
		a.dialog = dialogGameOver
	}
	a.log.Debug().Int("index", index).Stringer("dialog", a.dialog).Msg("flag tapped")
}

// confirm dismisses the open dialog with its default button.
func (a *App) confirm() {
	switch a.dialog {
	case dialogCorrect, dialogWrong:
		a.dialog = dialogNone
		if a.game.Acknowledge() {
			a.dialog = dialogGameOver
		}
	case dialogGameOver:
		a.dialog = dialogNone
	}
}

func (a *App) newGame() {
	a.game.Reset()
	a.dialog = dialogNone
	a.log.Info().Str("target", a.game.Target()).Msg("new game")
}

// view assembles the frame for the renderer.
func (a *App) view() ui.View {
	state := a.game.Snapshot()
	flags := make([]*flagdata.Flag, len(state.Options))
	labels := make([]string, len(state.Options))
	for i, id := range state.Options {
		flags[i] = a.flags.Get(id)
		labels[i] = a.flags.Label(id)
	}

	return ui.View{
		State:      state,
		Flags:      flags,
		Labels:     labels,
		Prompt:     a.flags.Name(state.Target),
		ShowLabels: a.cfg.ShowLabels,
		Dialog:     a.dialogFor(state),
	}
}

func (a *App) render() {
	a.renderer.Render(a.view())
}

func (a *App) dialogFor(state quiz.Snapshot) *ui.Dialog {
	score := "Your score: " + strconv.Itoa(state.Score)
	switch a.dialog {
	case dialogCorrect:
		return &ui.Dialog{Title: "Right", Message: score, Buttons: []string{"Continue"}}
	case dialogWrong:
		tapped := ""
		if state.Selected != quiz.NoSelection {
			tapped = a.flags.Name(state.Options[state.Selected])
		}
		return &ui.Dialog{
			Title:   "Hint",
			Message: "Wrong! That's the flag of " + tapped,
			Buttons: []string{"OK, thanks"},
		}
	case dialogGameOver:
		return &ui.Dialog{Title: "Game ended", Message: score, Buttons: []string{"New game", "OK"}}
	default:
		return nil
	}
}
