// Package anim plays the car animation: it slides the rest pose in from the
// left edge, bounces it in place, and repaints a fixed-height region of the
// terminal in place on every step.
package anim

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/scbrown/vroom/internal/frames"
)

const (
	// Tick is the delay between two repaints.
	Tick = 100 * time.Millisecond
	// SlideStep is the number of columns the car travels per slide-in step.
	SlideStep = 3
	// MaxSlide caps how far the car travels before it starts bouncing.
	MaxSlide = 24
	// DefaultWidth is used whenever the terminal width cannot be determined.
	DefaultWidth = 80
)

// WidthFunc reports the current terminal width in columns.
type WidthFunc func() (int, error)

// Animator repaints frames from a store onto Out. The zero value of every
// field except Out is usable: Frames defaults to the car, Width to
// DefaultWidth and Sleep to time.Sleep.
type Animator struct {
	Out    io.Writer
	Frames *frames.Store
	Width  WidthFunc
	Sleep  func(time.Duration)
}

// Run plays the whole animation and clears the region it drew in, leaving
// the cursor where the region started. It returns the first write error.
func (a *Animator) Run() error {
	store := a.Frames
	if store == nil {
		store = frames.Car()
	}
	sleep := a.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	h := store.LineHeight()

	center := Center(a.width(), store.MaxWidth())

	// Reserve the region so the first erase lands on blank rows.
	if _, err := io.WriteString(a.Out, strings.Repeat("\n", h)); err != nil {
		return fmt.Errorf("reserving screen region: %w", err)
	}

	for step := range Steps(store, center) {
		var b strings.Builder
		width := a.width()
		erase(&b, h, width)
		draw(&b, store.Frame(step.Frame), h, step.Offset, width)
		if _, err := io.WriteString(a.Out, b.String()); err != nil {
			return fmt.Errorf("drawing frame %d: %w", step.Frame, err)
		}
		sleep(Tick)
	}

	var b strings.Builder
	erase(&b, h, a.width())
	if _, err := io.WriteString(a.Out, b.String()); err != nil {
		return fmt.Errorf("clearing screen region: %w", err)
	}
	return nil
}

// width queries the terminal, substituting DefaultWidth for any failure,
// including a panicking WidthFunc.
func (a *Animator) width() (w int) {
	if a.Width == nil {
		return DefaultWidth
	}
	defer func() {
		if recover() != nil {
			w = DefaultWidth
		}
	}()
	var err error
	w, err = a.Width()
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// erase moves up h rows, blanks them, and moves back up so the next draw
// starts on the first row of the region.
func erase(b *strings.Builder, h, width int) {
	if h == 0 {
		return
	}
	up := fmt.Sprintf("\x1b[%dA", h)
	blank := strings.Repeat(" ", width)
	b.WriteString(up)
	for range h {
		b.WriteString(blank)
		b.WriteByte('\n')
	}
	b.WriteString(up)
}

// draw writes exactly h rows: the lines of f, then empty rows if f is short.
func draw(b *strings.Builder, f frames.Frame, h, offset, width int) {
	for i := range h {
		if i < len(f) {
			b.WriteString(renderLine(f[i], offset, width))
		}
		b.WriteByte('\n')
	}
}

// renderLine indents line by offset columns, or drops -offset leading runes
// when offset is negative, and clips the result to width so it never wraps.
func renderLine(line string, offset, width int) string {
	if offset < 0 {
		r := []rune(line)
		drop := min(-offset, len(r))
		return runewidth.Truncate(string(r[drop:]), width, "")
	}
	pad := min(offset, width)
	return strings.Repeat(" ", pad) + runewidth.Truncate(line, width-pad, "")
}
