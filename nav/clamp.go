// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import "cogentcore.org/core/math32"

// boundaryTol is the distance within which a position counts as
// being on the boundary sphere.
const boundaryTol = 1e-3

// ClampMove returns the position reached by moving from pos by move
// without leaving the sphere of the given radius around the origin.
//
// If the full move stays inside, it is applied as is. Otherwise the
// move stops where the ray from pos along move meets the sphere. If pos
// is already on (or outside) the boundary, the outward radial component
// of the move is removed so that the camera can slide along the sphere,
// and the result is projected back onto it.
func ClampMove(pos, move math32.Vector3, radius float32) math32.Vector3 {
	to := pos.Add(move)
	if to.LengthSquared() <= radius*radius {
		return to
	}
	dist := pos.Length()
	if dist >= radius-boundaryTol {
		n := pos.Normal()
		if out := move.Dot(n); out > 0 {
			move = move.Sub(n.MulScalar(out))
		}
		return onSphere(pos.Add(move), radius)
	}
	// solve |pos + t*move| = radius for the positive root t in (0, 1)
	a := move.LengthSquared()
	b := 2 * pos.Dot(move)
	c := pos.LengthSquared() - radius*radius
	t := (-b + math32.Sqrt(b*b-4*a*c)) / (2 * a)
	return onSphere(pos.Add(move.MulScalar(t)), radius)
}

// onSphere scales v down onto the sphere of the given radius if it
// lies outside it.
func onSphere(v math32.Vector3, radius float32) math32.Vector3 {
	if l := v.Length(); l > radius {
		return v.MulScalar(radius / l)
	}
	return v
}
