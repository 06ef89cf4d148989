// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"time"

	"cogentcore.org/core/events/key"
)

// Event is a discrete navigation input, processed by [Reduce].
type Event interface {
	navEvent()
}

// Button is a pointer button.
type Button int32

const (
	// Primary is the main (left) button, which rotates.
	Primary Button = iota

	// Secondary is the other (right) button, which pans.
	Secondary
)

// ButtonDown is a pointer button press over the scene. A primary
// press with Shift held pans instead of rotating.
type ButtonDown struct {
	Button Button
	Shift  bool
}

// ButtonUp is a pointer button release.
type ButtonUp struct {
	Button Button
}

// Move is a pointer movement by the given number of pixels.
type Move struct {
	DX, DY float32
}

// Click is a primary button click that did not hit any node.
type Click struct{}

// Scroll is a wheel movement. Positive Delta zooms out.
type Scroll struct {
	Delta float32
}

// KeyDown is the press of one of the movement keys.
type KeyDown struct {
	Key Keys
}

// KeyUp is the release of one of the movement keys.
type KeyUp struct {
	Key Keys
}

// Suspend reports that a form or dialog over the scene was
// opened (Open true) or closed (Open false).
type Suspend struct {
	Open bool
}

// Frame is one rendered frame, DT after the previous one.
// A zero DT counts as one frame at 60 fps.
type Frame struct {
	DT time.Duration
}

// Reset returns the camera to its initial pose.
type Reset struct{}

func (ButtonDown) navEvent() {}
func (ButtonUp) navEvent()   {}
func (Move) navEvent()       {}
func (Click) navEvent()      {}
func (Scroll) navEvent()     {}
func (KeyDown) navEvent()    {}
func (KeyUp) navEvent()      {}
func (Suspend) navEvent()    {}
func (Frame) navEvent()      {}
func (Reset) navEvent()      {}

// Keys is a set of movement keys.
type Keys uint8

const (
	// KeyForward moves along the view direction (W, Up arrow).
	KeyForward Keys = 1 << iota

	// KeyBack moves against the view direction (S, Down arrow).
	KeyBack

	// KeyLeft moves to the left (A, Left arrow).
	KeyLeft

	// KeyRight moves to the right (D, Right arrow).
	KeyRight
)

// Has returns whether all of the given keys are in the set.
func (k Keys) Has(o Keys) bool {
	return k&o == o
}

func (k Keys) String() string {
	s := ""
	for _, kn := range []struct {
		k Keys
		n string
	}{{KeyForward, "Forward"}, {KeyBack, "Back"}, {KeyLeft, "Left"}, {KeyRight, "Right"}} {
		if k.Has(kn.k) {
			if s != "" {
				s += "|"
			}
			s += kn.n
		}
	}
	return s
}

// KeyFor maps a key event to a movement key. The physical code is
// checked first so that movement works on any keyboard layout, then
// the logical rune.
func KeyFor(code key.Codes, r rune) (Keys, bool) {
	switch code {
	case key.CodeW, key.CodeUpArrow:
		return KeyForward, true
	case key.CodeS, key.CodeDownArrow:
		return KeyBack, true
	case key.CodeA, key.CodeLeftArrow:
		return KeyLeft, true
	case key.CodeD, key.CodeRightArrow:
		return KeyRight, true
	}
	switch r {
	case 'w', 'W':
		return KeyForward, true
	case 's', 'S':
		return KeyBack, true
	case 'a', 'A':
		return KeyLeft, true
	case 'd', 'D':
		return KeyRight, true
	}
	return 0, false
}

// IsReset returns whether a key event is the reset key (Space).
func IsReset(code key.Codes, r rune) bool {
	return code == key.CodeSpacebar || r == ' '
}
