// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import "log/slog"

// Controller holds the navigation [State] for a scene and applies
// events to it with [Reduce]. It is not safe for concurrent use:
// events and frames must come from the same goroutine.
type Controller struct {

	// Params are the navigation parameters.
	Params Params

	// State is the current state.
	State State
}

// NewController returns a new controller at the initial pose.
func NewController(p Params) *Controller {
	c := &Controller{Params: p}
	c.State = NewState(&c.Params)
	return c
}

// Dispatch applies the given event, returning the change in pose.
func (c *Controller) Dispatch(ev Event) Delta {
	prev := c.State.Mode
	var d Delta
	c.State, d = Reduce(&c.Params, c.State, ev)
	if c.State.Mode != prev {
		slog.Debug("nav: mode changed", "from", prev, "to", c.State.Mode)
	}
	return d
}

// Pose returns the current camera pose.
func (c *Controller) Pose() Pose {
	return c.State.Pose
}

// Active returns whether any input is currently moving the camera,
// during which the galaxy does not rotate.
func (c *Controller) Active() bool {
	return c.State.Active()
}

// Suspended returns whether navigation is suspended by an open dialog.
func (c *Controller) Suspended() bool {
	return c.State.Suspended
}
