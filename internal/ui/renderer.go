package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/guesstheflag/internal/flagdata"
	"github.com/samdwyer/guesstheflag/internal/quiz"
)

const (
	flagWidth    = 18
	flagHeight   = 6
	minFlagWidth = 6
	flagGap      = 4
	flagTop      = 6
	maxLabelRows = 5
)

// Dialog is a modal message drawn over the board.
type Dialog struct {
	Title   string
	Message string
	Buttons []string
}

// View is everything the renderer needs for one frame.
type View struct {
	State      quiz.Snapshot
	Flags      []*flagdata.Flag // Parallel to State.Options; nil entries draw blank
	Labels     []string         // Accessibility labels, parallel to State.Options
	Prompt     string           // Name of the country to find
	ShowLabels bool
	Dialog     *Dialog // nil when no dialog is open
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a full frame and flushes it.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	w, h := r.screen.Size()

	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	sub := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	prompt := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	r.centered(1, w, "Guess the flag", title)
	r.centered(3, w, "Tap the flag of:", sub)
	r.centered(4, w, v.Prompt, prompt)

	x0, fw := flagLayout(w)
	for i := range v.State.Options {
		x := x0 + i*(fw+flagGap)
		var flag *flagdata.Flag
		if i < len(v.Flags) {
			flag = v.Flags[i]
		}
		dimmed := v.State.Selected != quiz.NoSelection && v.State.Selected != i
		r.drawFlag(x, flagTop, fw, flag, dimmed)

		hint := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if v.State.Selected == i {
			hint = hint.Reverse(true)
		}
		key := "[" + strconv.Itoa(i+1) + "]"
		r.screen.DrawText(x+(fw-len(key))/2, flagTop+flagHeight, key, hint)

		if v.ShowLabels && i < len(v.Labels) {
			for row, line := range wrap(v.Labels[i], fw) {
				if row == maxLabelRows {
					break
				}
				r.screen.DrawText(x, flagTop+flagHeight+1+row, line, sub)
			}
		}
	}

	r.centered(h-3, w, "Score: "+strconv.Itoa(v.State.Score), title)
	r.centered(h-1, w, "1-3 pick a flag   q quit", sub)

	if v.Dialog != nil {
		r.drawDialog(w, h, v.Dialog)
	}

	r.screen.Show()
}

// FlagAt returns the option index of the flag drawn at x, y, or -1.
func (r *Renderer) FlagAt(x, y int) int {
	if y < flagTop || y >= flagTop+flagHeight {
		return -1
	}
	w, _ := r.screen.Size()
	x0, fw := flagLayout(w)
	for i := 0; i < quiz.OptionCount; i++ {
		left := x0 + i*(fw+flagGap)
		if x >= left && x < left+fw {
			return i
		}
	}
	return -1
}

// flagLayout returns the left edge of the first flag and the flag width.
func flagLayout(screenWidth int) (x0, width int) {
	width = flagWidth
	total := quiz.OptionCount*width + (quiz.OptionCount-1)*flagGap
	if total > screenWidth {
		width = (screenWidth - (quiz.OptionCount-1)*flagGap) / quiz.OptionCount
		if width < minFlagWidth {
			width = minFlagWidth
		}
		total = quiz.OptionCount*width + (quiz.OptionCount-1)*flagGap
	}
	x0 = (screenWidth - total) / 2
	if x0 < 0 {
		x0 = 0
	}
	return x0, width
}

// drawFlag paints the flag as coloured cells. Dimmed flags are shaded so the
// tapped one stands out.
func (r *Renderer) drawFlag(x, y, w int, flag *flagdata.Flag, dimmed bool) {
	if flag == nil || len(flag.Colors) == 0 {
		r.screen.Fill(x, y, w, flagHeight, '?', tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}

	palette := flag.Palette()
	weights := flag.StripeWeights()
	for row := 0; row < flagHeight; row++ {
		for col := 0; col < w; col++ {
			color := palette[colorIndex(flag.Layout, col, row, w, flagHeight, weights)%len(palette)]
			if dimmed {
				r.screen.SetContent(x+col, y+row, '░', tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack))
			} else {
				r.screen.SetContent(x+col, y+row, ' ', tcell.StyleDefault.Background(color))
			}
		}
	}
}

// colorIndex picks the palette entry for a cell of a w x h flag.
func colorIndex(layout flagdata.Layout, col, row, w, h int, weights []int) int {
	switch layout {
	case flagdata.LayoutVertical:
		return bandAt(col, w, weights)
	case flagdata.LayoutCross:
		dx, dy := abs(col-w/2), abs(row-h/2)
		switch {
		case dx <= 1 || dy == 0:
			return 2
		case dx <= 2 || dy <= 1:
			return 1
		default:
			return 0
		}
	case flagdata.LayoutCanton:
		if col < w*2/5 && row < (h+1)/2 {
			return 2
		}
		return row % 2
	default:
		return bandAt(row, h, weights)
	}
}

// bandAt maps position pos along a span of size total to a weighted band.
func bandAt(pos, total int, weights []int) int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 || total == 0 {
		return 0
	}

	scaled := pos * sum / total
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if scaled < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

func (r *Renderer) drawDialog(w, h int, d *Dialog) {
	buttons := ""
	for i, b := range d.Buttons {
		if i > 0 {
			buttons += "  "
		}
		buttons += "[ " + b + " ]"
	}

	inner := len(d.Title)
	for _, s := range []string{d.Message, buttons} {
		if n := len([]rune(s)); n > inner {
			inner = n
		}
	}
	bw, bh := inner+4, 7
	bx, by := (w-bw)/2, (h-bh)/2

	box := tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	r.screen.Fill(bx, by, bw, bh, ' ', box)
	for col := bx; col < bx+bw; col++ {
		r.screen.SetContent(col, by, '─', box)
		r.screen.SetContent(col, by+bh-1, '─', box)
	}
	for row := by; row < by+bh; row++ {
		r.screen.SetContent(bx, row, '│', box)
		r.screen.SetContent(bx+bw-1, row, '│', box)
	}
	r.screen.SetContent(bx, by, '┌', box)
	r.screen.SetContent(bx+bw-1, by, '┐', box)
	r.screen.SetContent(bx, by+bh-1, '└', box)
	r.screen.SetContent(bx+bw-1, by+bh-1, '┘', box)

	r.centered(by+1, w, d.Title, box.Bold(true))
	r.centered(by+3, w, d.Message, box)
	r.centered(by+5, w, buttons, box.Foreground(tcell.ColorYellow))
}

func (r *Renderer) centered(y, w int, text string, style tcell.Style) {
	r.screen.DrawText((w-len([]rune(text)))/2, y, text, style)
}

// wrap breaks text into lines no longer than width, splitting on spaces.
func wrap(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
