// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"cogentcore.org/core/math32"
)

// Reduce returns the state that results from applying the given event
// to the given state, along with the change in pose. It has no side
// effects. Every translation is clamped with [ClampMove], so the camera
// never leaves the MaxRadius sphere.
func Reduce(p *Params, s State, ev Event) (State, Delta) {
	if sp, ok := ev.(Suspend); ok {
		if sp.Open {
			s.Suspended = true
			s.Keys = 0
			s.Mode = Idle
			s.Panning = false
			s.DragMoved = false
		} else {
			s.Suspended = false
		}
		return s, Delta{}
	}
	if s.Suspended {
		return s, Delta{}
	}
	switch ev := ev.(type) {
	case ButtonDown:
		if ev.Button == Secondary || ev.Shift {
			s.Panning = true
			s.DragMoved = false
			return s, Delta{}
		}
		// a press while following is the start of the click that ends it
		if s.Mode == Idle {
			s.Mode = Dragging
			s.DragMoved = false
		}
	case ButtonUp:
		if ev.Button == Secondary || s.Panning {
			s.Panning = false
		}
		if ev.Button == Primary && s.Mode == Dragging {
			s.Mode = Idle
		}
	case Click:
		switch {
		case s.Mode == Following:
			s.Mode = Idle
		case s.DragMoved:
			s.DragMoved = false
		default:
			s.Mode = Following
		}
	case Move:
		if s.Reset {
			return s, Delta{}
		}
		if s.Panning {
			return pan(p, s, ev)
		}
		if s.Mode == Idle || (ev.DX == 0 && ev.DY == 0) {
			return s, Delta{}
		}
		if s.Mode == Dragging {
			s.DragMoved = true
		}
		yaw := -ev.DX * p.RotateSpeed
		pitch := s.Pose.Pitch
		s.Pose.rotate(yaw, -ev.DY*p.RotateSpeed, math32.DegToRad(p.MaxPitch))
		return s, Delta{Yaw: yaw, Pitch: s.Pose.Pitch - pitch}
	case Scroll:
		if s.Reset || ev.Delta == 0 {
			return s, Delta{}
		}
		step := max(s.Pose.Distance(), 1) * p.ZoomSpeed
		dir := s.Pose.Forward()
		if ev.Delta > 0 {
			dir = dir.MulScalar(-1)
		}
		return translate(p, s, dir.MulScalar(step))
	case KeyDown:
		s.Keys |= ev.Key
	case KeyUp:
		s.Keys &^= ev.Key
	case Reset:
		s.Pose = p.InitialPose()
		s.Reset = true
		return s, Delta{Reset: true}
	case Frame:
		if s.Reset {
			s.Reset = false
			return s, Delta{}
		}
		local := keyDirection(s.Keys)
		if local == (math32.Vector3{}) {
			return s, Delta{}
		}
		scale := float32(1)
		if ev.DT > 0 {
			scale = float32(ev.DT.Seconds() * 60)
		}
		return translate(p, s, s.Pose.Local(local).MulScalar(p.MoveSpeed*scale))
	}
	return s, Delta{}
}

// keyDirection returns the camera space direction of the given
// movement keys. Opposite keys cancel and diagonals add up.
func keyDirection(k Keys) math32.Vector3 {
	var d math32.Vector3
	if k.Has(KeyForward) {
		d.Z -= 1
	}
	if k.Has(KeyBack) {
		d.Z += 1
	}
	if k.Has(KeyLeft) {
		d.X -= 1
	}
	if k.Has(KeyRight) {
		d.X += 1
	}
	return d
}

func pan(p *Params, s State, ev Move) (State, Delta) {
	if ev.DX == 0 && ev.DY == 0 {
		return s, Delta{}
	}
	s.DragMoved = true
	move := s.Pose.Local(math32.Vec3(-ev.DX*p.PanSpeed, ev.DY*p.PanSpeed, 0))
	return translate(p, s, move)
}

func translate(p *Params, s State, move math32.Vector3) (State, Delta) {
	from := s.Pose.Pos
	s.Pose.Pos = ClampMove(from, move, p.MaxRadius)
	return s, Delta{Move: s.Pose.Pos.Sub(from)}
}
