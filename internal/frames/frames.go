// Package frames holds the fixed catalog of car poses played by the animator.
package frames

import "github.com/mattn/go-runewidth"

// Frame is one pose of the car as an ordered sequence of lines.
type Frame []string

// Height returns the number of lines in the frame.
func (f Frame) Height() int {
	return len(f)
}

// Width returns the widest line of the frame in terminal cells.
func (f Frame) Width() int {
	w := 0
	for _, line := range f {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// Store is an ordered, read-only collection of frames. Frame 0 is the
// reference frame: the rest pose that fixes the height and width of the
// screen region the animator owns.
type Store struct {
	frames  []Frame
	bounces [][]int
}

// Count returns the number of frames in the store.
func (s *Store) Count() int {
	return len(s.frames)
}

// Frame returns the frame at index i. Indices come from Bounces or are 0,
// so an out-of-range index panics like any slice access.
func (s *Store) Frame(i int) Frame {
	return s.frames[i]
}

// LineHeight returns the height of the reference frame.
func (s *Store) LineHeight() int {
	return s.frames[0].Height()
}

// MaxWidth returns the width of the reference frame.
func (s *Store) MaxWidth() int {
	return s.frames[0].Width()
}

// Bounces returns the canned frame-index sequences played in place after
// the car slides in. Each sequence ends on the rest frame.
func (s *Store) Bounces() [][]int {
	return s.bounces
}

const (
	rest = iota
	lift
	squash
	leanLeft
	leanRight
)

var car = &Store{
	frames: []Frame{
		rest: {
			``,
			`      ____________`,
			`   __/  ||    ||  \___`,
			` |   _            _   |`,
			`'----(o)----------(o)--'`,
		},
		lift: {
			`      ____________`,
			`   __/  ||    ||  \___`,
			` |   _            _   |`,
			`'----------------------'`,
			`     (o)          (o)`,
		},
		squash: {
			``,
			``,
			`      ____________`,
			`   __/  ||    ||  \___`,
			`'----(o)----------(o)--'`,
		},
		leanLeft: {
			``,
			`    ____________`,
			`  __/  ||    ||  \___`,
			` |   _            _   |`,
			`'----(o)----------(o)--'`,
		},
		leanRight: {
			``,
			`        ____________`,
			`    __/  ||    ||  \___`,
			` |   _            _   |`,
			`'----(o)----------(o)--'`,
		},
	},
	bounces: [][]int{
		{lift, rest, squash, rest},
		{leanLeft, rest, leanLeft, rest},
		{leanRight, rest, leanRight, squash, rest},
	},
}

// Car returns the store of car poses shared by the whole process.
func Car() *Store {
	return car
}
