// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav provides the camera navigation controller of the galaxy:
// pointer rotation (drag or toggled follow), panning, scroll zoom,
// keyboard movement and reset, all driving one camera [Pose] that
// never leaves a sphere of fixed radius around the origin.
//
// All input is processed by the pure function [Reduce], which maps
// a [State] and an [Event] to a new State and the resulting [Delta].
// [Controller] holds the state for use in a widget.
package nav

import (
	"cogentcore.org/core/math32"
)

// Params are the navigation parameters.
type Params struct {

	// MaxRadius is the maximum distance of the camera from the origin.
	MaxRadius float32 `default:"200"`

	// Initial is the initial camera position, which looks at the origin.
	Initial math32.Vector3

	// RotateSpeed is the rotation per pixel of pointer movement, in radians.
	RotateSpeed float32 `default:"0.005"`

	// ZoomSpeed is the fraction of the distance to the origin
	// moved per scroll step.
	ZoomSpeed float32 `default:"0.1"`

	// PanSpeed is the translation per pixel of panning movement.
	PanSpeed float32 `default:"0.025"`

	// MoveSpeed is the keyboard translation per frame at 60 fps.
	MoveSpeed float32 `default:"1"`

	// MaxPitch is the maximum up or down pitch, in degrees.
	MaxPitch float32 `default:"89"`
}

// Defaults sets the default parameters.
func (p *Params) Defaults() {
	p.MaxRadius = 200
	p.Initial = math32.Vec3(0, 0, 50)
	p.RotateSpeed = 0.005
	p.ZoomSpeed = 0.1
	p.PanSpeed = 0.025
	p.MoveSpeed = 1
	p.MaxPitch = 89
}

// DefaultParams returns the default parameters.
func DefaultParams() Params {
	p := Params{}
	p.Defaults()
	return p
}

// InitialPose returns the initial pose: at Initial, looking at the origin.
func (p *Params) InitialPose() Pose {
	return LookAt(p.Initial, math32.Vector3{})
}

// Mode is the pointer rotation source. At most one is active.
type Mode int32

const (
	// Idle is when pointer movement does not rotate.
	Idle Mode = iota

	// Dragging is when the primary button is held, so that
	// pointer movement rotates.
	Dragging

	// Following is when a click has toggled on rotation by
	// pointer movement without any button held.
	Following
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "Dragging"
	case Following:
		return "Following"
	}
	return "Idle"
}

// State is the full navigation state.
type State struct {

	// Pose is the current camera pose.
	Pose Pose

	// Mode is the pointer rotation source.
	Mode Mode

	// Keys is the set of movement keys held down. Keyboard movement
	// runs alongside any pointer Mode.
	Keys Keys

	// Panning is whether a pan drag is in progress.
	Panning bool

	// Suspended is whether a form or dialog is open, which
	// makes all input other than [Suspend] a no-op.
	Suspended bool

	// DragMoved is whether the current or last drag rotated the
	// camera, in which case the click that ends it does not toggle
	// following.
	DragMoved bool

	// Reset is set by a reset until the next [Frame], and blocks all
	// other pose changes until then.
	Reset bool
}

// NewState returns the initial state for the given parameters.
func NewState(p *Params) State {
	return State{Pose: p.InitialPose()}
}

// Active returns whether any input is currently moving the camera.
func (s *State) Active() bool {
	return s.Keys != 0 || s.Mode != Idle || s.Panning
}

// Delta is the change in pose caused by one event.
type Delta struct {

	// Move is the translation actually applied, after clamping.
	Move math32.Vector3

	// Yaw and Pitch are the rotation actually applied, in radians.
	Yaw, Pitch float32

	// Reset is whether the pose was reset to the initial pose.
	Reset bool
}

// Changed returns whether the pose changed.
func (d Delta) Changed() bool {
	return d.Reset || d.Yaw != 0 || d.Pitch != 0 || d.Move != (math32.Vector3{})
}
