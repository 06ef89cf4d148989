// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Pose is the position and orientation of the camera. The camera
// is always kept level, so orientation is only a yaw around the
// world Y axis followed by a pitch around the camera X axis. With
// zero yaw and pitch the camera looks down the -Z axis.
type Pose struct {

	// Pos is the camera position.
	Pos math32.Vector3

	// Yaw is the rotation around the world Y axis, in radians.
	Yaw float32

	// Pitch is the rotation around the camera X axis, in radians.
	// Positive pitch looks up.
	Pitch float32
}

// LookAt returns the level pose at pos that looks at target.
// If pos and target coincide it looks down -Z.
func LookAt(pos, target math32.Vector3) Pose {
	p := Pose{Pos: pos}
	d := target.Sub(pos)
	h := math32.Sqrt(d.X*d.X + d.Z*d.Z)
	if h == 0 && d.Y == 0 {
		return p
	}
	if h > 0 {
		p.Yaw = math32.Atan2(-d.X, -d.Z)
	}
	p.Pitch = math32.Atan2(d.Y, h)
	return p
}

// Forward returns the unit view direction.
func (p Pose) Forward() math32.Vector3 {
	sy, cy := math32.Sin(p.Yaw), math32.Cos(p.Yaw)
	sp, cp := math32.Sin(p.Pitch), math32.Cos(p.Pitch)
	return math32.Vec3(-sy*cp, sp, -cy*cp)
}

// Right returns the unit camera X axis, which is always horizontal.
func (p Pose) Right() math32.Vector3 {
	sy, cy := math32.Sin(p.Yaw), math32.Cos(p.Yaw)
	return math32.Vec3(cy, 0, -sy)
}

// Up returns the unit camera Y axis.
func (p Pose) Up() math32.Vector3 {
	sy, cy := math32.Sin(p.Yaw), math32.Cos(p.Yaw)
	sp, cp := math32.Sin(p.Pitch), math32.Cos(p.Pitch)
	return math32.Vec3(sy*sp, cp, cy*sp)
}

// Quat returns the orientation as a quaternion, for the renderer.
func (p Pose) Quat() math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), p.Yaw)
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), p.Pitch))
	return q
}

// Local converts a direction in camera space (X right, Y up,
// -Z forward) into world space.
func (p Pose) Local(v math32.Vector3) math32.Vector3 {
	return p.Right().MulScalar(v.X).Add(p.Up().MulScalar(v.Y)).Sub(p.Forward().MulScalar(v.Z))
}

// Ray returns the world space ray through a point of the view, for
// picking. fov is the vertical field of view in degrees, aspect is the
// width over height of the view, and x, y are normalized device
// coordinates in [-1, 1] with y up.
func (p Pose) Ray(fov, aspect, x, y float32) (origin, dir math32.Vector3) {
	th := math32.Tan(math32.DegToRad(fov) / 2)
	dir = p.Local(math32.Vec3(x*th*aspect, y*th, -1)).Normal()
	return p.Pos, dir
}

// Distance returns the distance of the camera from the origin.
func (p Pose) Distance() float32 {
	return p.Pos.Length()
}

func (p Pose) String() string {
	return fmt.Sprintf("pos: %v yaw: %.3f pitch: %.3f", p.Pos, p.Yaw, p.Pitch)
}

// rotate applies a yaw and pitch change, keeping pitch within
// [-maxPitch, maxPitch] and yaw within [-pi, pi].
func (p *Pose) rotate(yaw, pitch, maxPitch float32) {
	p.Yaw += yaw
	for p.Yaw > math32.Pi {
		p.Yaw -= 2 * math32.Pi
	}
	for p.Yaw < -math32.Pi {
		p.Yaw += 2 * math32.Pi
	}
	p.Pitch = math32.Clamp(p.Pitch+pitch, -maxPitch, maxPitch)
}
