package anim

import (
	"iter"

	"github.com/scbrown/vroom/internal/frames"
)

// Step is one repaint: which frame to draw and how many columns to indent it
// from the left edge of the terminal. A negative offset scrolls the frame off
// the left edge.
type Step struct {
	Frame  int
	Offset int
}

// Center returns the offset that centers a car of carWidth columns in a
// terminal of width columns. It is negative when the car is wider than half
// the terminal allows.
func Center(width, carWidth int) int {
	return width/2 - carWidth/2
}

// Endpoint returns the offset where the slide-in stops: the center, capped at
// MaxSlide columns of travel.
func Endpoint(center int) int {
	return min(MaxSlide, center)
}

// Steps returns the full animation for a car centered at center: the rest
// frame sliding in from offset 0 in SlideStep increments, then every bounce
// sequence of s played in place at the endpoint.
func Steps(s *frames.Store, center int) iter.Seq[Step] {
	end := Endpoint(center)
	return func(yield func(Step) bool) {
		for off := range slide(end) {
			if !yield(Step{Frame: 0, Offset: off}) {
				return
			}
		}
		for _, seq := range s.Bounces() {
			for _, f := range seq {
				if !yield(Step{Frame: f, Offset: end}) {
					return
				}
			}
		}
	}
}

// slide yields 0, SlideStep, 2*SlideStep, ... and finally end itself. A
// non-positive end yields end alone.
func slide(end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if end <= 0 {
			yield(end)
			return
		}
		for off := 0; off < end; off += SlideStep {
			if !yield(off) {
				return
			}
		}
		yield(end)
	}
}
