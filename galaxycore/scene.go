// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxycore

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/galaxy/galaxy"
	"cogentcore.org/galaxy/nav"
	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/texture"
)

// Galaxy is a 3D view of a [galaxy.Galaxy]. It replaces the orbit
// camera of [xyzcore.Scene] with a [nav.Controller], and reports
// clicks on nodes through OnSelect.
type Galaxy struct {
	xyzcore.Scene

	// Model is the galaxy shown in the view.
	Model *galaxy.Galaxy `set:"-"`

	// Nav controls the camera.
	Nav *nav.Controller `set:"-"`

	// Textures loads the node images. Nodes are plain
	// colored spheres if it is nil or an image fails to load.
	Textures texture.Loader

	// FOV is the vertical field of view of the camera, in degrees.
	FOV float32

	// Near is the near clipping distance of the camera.
	Near float32

	// Far is the far clipping distance of the camera.
	Far float32

	// OnSelect is called with the project of a clicked node.
	OnSelect func(p project.Project)

	root  *xyz.Group
	stars *xyz.Group
	views map[int64]*nodeView

	// pending are projects whose images have not been requested yet.
	pending []project.Project

	// last is the last pointer position, for movement deltas.
	last image.Point

	centralMesh, nodeMesh, centralHaloMesh, nodeHaloMesh xyz.Mesh
}

// nodeView holds the scene nodes of one galaxy node.
type nodeView struct {
	group    *xyz.Group
	sphere   *xyz.Solid
	halo     *xyz.Solid
	textured bool
}

// NewGalaxy returns a new [Galaxy] with the given optional parent.
func NewGalaxy(parent ...tree.Node) *Galaxy {
	return tree.New[Galaxy](parent...)
}

func (gw *Galaxy) Init() {
	gw.Scene.Init()
	gw.FOV, gw.Near, gw.Far = 75, 0.1, 1000
	gw.views = map[int64]*nodeView{}
	gw.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.ScrollableUnattended)
		s.Min.Set(units.Em(30))
	})

	// These are added after the handlers of the base scene,
	// so they run first and keep it from moving its own camera.
	gw.On(events.MouseDown, func(e events.Event) {
		e.SetHandled()
		gw.last = e.Pos()
		gw.SetFocus()
		gw.dispatch(nav.ButtonDown{Button: navButton(e.MouseButton()), Shift: e.HasAnyModifier(key.Shift)})
	})
	gw.On(events.MouseUp, func(e events.Event) {
		gw.dispatch(nav.ButtonUp{Button: navButton(e.MouseButton())})
	})
	gw.On(events.MouseMove, func(e events.Event) {
		gw.move(e.Pos())
		gw.hover(e.Pos())
	})
	gw.On(events.MouseDrag, func(e events.Event) {
		e.SetHandled()
		gw.move(e.Pos())
	})
	gw.On(events.SlideMove, func(e events.Event) {
		e.SetHandled()
		gw.move(e.Pos())
	})
	// The mouse up of a slide is not sent, nor is a click after it,
	// so both come from the slide stop.
	gw.On(events.SlideStop, func(e events.Event) {
		e.SetHandled()
		gw.move(e.Pos())
		gw.dispatch(nav.ButtonUp{Button: navButton(e.MouseButton())})
		gw.dispatch(nav.Click{})
	})
	// Repeated clicks arrive as double and triple clicks.
	for _, t := range []events.Types{events.Click, events.DoubleClick, events.TripleClick} {
		gw.On(t, func(e events.Event) {
			e.SetHandled()
			gw.click(e.Pos())
		})
	}
	gw.On(events.Scroll, func(e events.Event) {
		e.SetHandled()
		gw.dispatch(nav.Scroll{Delta: e.(*events.MouseScroll).Delta.Y})
	})
	gw.On(events.KeyDown, func(e events.Event) {
		code, r := e.KeyCode(), e.KeyRune()
		if nav.IsReset(code, r) {
			e.SetHandled()
			gw.dispatch(nav.Reset{})
			return
		}
		if k, ok := nav.KeyFor(code, r); ok {
			e.SetHandled()
			gw.dispatch(nav.KeyDown{Key: k})
		}
	})
	gw.On(events.KeyUp, func(e events.Event) {
		if k, ok := nav.KeyFor(e.KeyCode(), e.KeyRune()); ok {
			e.SetHandled()
			gw.dispatch(nav.KeyUp{Key: k})
		}
	})
	gw.On(events.KeyChord, func(e events.Event) {
		code, r := e.KeyCode(), e.KeyRune()
		if _, ok := nav.KeyFor(code, r); ok || nav.IsReset(code, r) {
			e.SetHandled()
		}
	})
	gw.On(events.FocusLost, func(e events.Event) {
		gw.dispatch(nav.KeyUp{Key: nav.KeyForward | nav.KeyBack | nav.KeyLeft | nav.KeyRight})
	})
}

func (gw *Galaxy) OnAdd() {
	gw.Scene.OnAdd()
	gw.Animate(gw.step)
}

// SetModel sets the galaxy and camera controller shown in the
// view, and builds the scene for them.
func (gw *Galaxy) SetModel(g *galaxy.Galaxy, ctrl *nav.Controller) *Galaxy {
	gw.Model = g
	gw.Nav = ctrl
	gw.build()
	return gw
}

// SetProjects replaces all project nodes, newest first.
func (gw *Galaxy) SetProjects(ps []project.Project) {
	gw.Model.SetProjects(ps)
	gw.syncNodes()
	gw.NeedsRender()
}

// AddProject adds a node for a newly added project.
func (gw *Galaxy) AddProject(p project.Project) {
	gw.Model.Prepend(p)
	gw.syncNodes()
	gw.NeedsRender()
}

// Suspend suspends navigation while a dialog is open, or
// resumes it when the dialog is closed.
func (gw *Galaxy) Suspend(open bool) {
	gw.dispatch(nav.Suspend{Open: open})
}

// build makes the lights, meshes, starfield and node groups.
func (gw *Galaxy) build() {
	sc := gw.XYZ
	sc.Background = colors.Uniform(color.RGBA{0, 0, 0, 255})
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(10, 10, 10)

	p := &gw.Model.Params
	gw.centralMesh = xyz.NewSphere(sc, "central", p.CentralRadius, 64)
	gw.nodeMesh = xyz.NewSphere(sc, "node", p.NodeRadius, 32)
	gw.centralHaloMesh = xyz.NewSphere(sc, "central-halo", p.CentralRadius*p.HaloScale, 32)
	gw.nodeHaloMesh = xyz.NewSphere(sc, "node-halo", p.NodeRadius*p.HaloScale, 16)
	star := xyz.NewSphere(sc, "star", 0.25, 4)

	gw.stars = xyz.NewGroup(sc)
	gw.stars.SetName("stars")
	for _, s := range gw.Model.Stars {
		xyz.NewSolid(gw.stars).SetMesh(star).
			SetColor(galaxy.StarColor).SetEmissive(galaxy.StarColor).
			SetPos(s.X, s.Y, s.Z)
	}
	gw.root = xyz.NewGroup(sc)
	gw.root.SetName("galaxy")
	gw.syncNodes()
}

// syncNodes makes scene nodes for new galaxy nodes and
// deletes those of galaxy nodes that are gone.
func (gw *Galaxy) syncNodes() {
	keep := map[int64]bool{}
	gw.Model.Each(func(n *galaxy.Node) {
		id := n.Project.ID
		keep[id] = true
		if _, ok := gw.views[id]; !ok {
			gw.views[id] = gw.newNodeView(n)
			gw.pending = append(gw.pending, n.Project)
		}
	})
	for id, v := range gw.views {
		if !keep[id] {
			gw.root.DeleteChild(v.group)
			delete(gw.views, id)
		}
	}
	gw.XYZ.Rebuild()
	gw.syncPoses()
}

func (gw *Galaxy) newNodeView(n *galaxy.Node) *nodeView {
	mesh, halo := gw.nodeMesh, gw.nodeHaloMesh
	if n.Project.IsCentral() {
		mesh, halo = gw.centralMesh, gw.centralHaloMesh
	}
	v := &nodeView{}
	v.group = xyz.NewGroup(gw.root)
	v.group.SetName(fmt.Sprintf("project-%d", n.Project.ID))
	pos := n.Project.Pos()
	v.group.SetPos(pos.X, pos.Y, pos.Z)
	v.sphere = xyz.NewSolid(v.group).SetMesh(mesh)
	v.sphere.SetName("sphere")
	v.halo = xyz.NewSolid(v.group).SetMesh(halo).SetColor(haloColor(n))
	v.halo.SetName("halo")
	gw.setAppearance(n, v)
	return v
}

func (gw *Galaxy) setAppearance(n *galaxy.Node, v *nodeView) {
	a := nodeAppearance(n, v.textured)
	v.sphere.SetColor(a.Base).SetEmissive(a.Emissive)
}

// loadTextures requests the images of all pending projects. Each
// image is applied when it arrives; a node whose image fails to
// load stays a plain sphere.
func (gw *Galaxy) loadTextures() {
	ps := gw.pending
	gw.pending = nil
	if gw.Textures == nil {
		return
	}
	for _, p := range ps {
		if p.Image == "" {
			continue
		}
		go func() {
			img, err := gw.Textures.Load(context.Background(), p.Image)
			if err != nil {
				slog.Warn("galaxycore: could not load node image", "project", p.ID, "err", err)
				return
			}
			gw.AsyncLock()
			defer gw.AsyncUnlock()
			gw.applyTexture(p.ID, img)
		}()
	}
}

func (gw *Galaxy) applyTexture(id int64, img image.Image) {
	v, ok := gw.views[id]
	if !ok {
		return
	}
	tx := &xyz.TextureBase{Name: fmt.Sprintf("project-%d", id), RGBA: imagex.AsRGBA(img)}
	gw.XYZ.SetTexture(tx)
	v.sphere.SetTexture(tx)
	v.textured = true
	gw.Model.Each(func(n *galaxy.Node) {
		if n.Project.ID == id {
			gw.setAppearance(n, v)
		}
	})
	gw.XYZ.SetNeedsUpdate()
	gw.NeedsRender()
}

// step advances the camera and the rotations by one frame.
func (gw *Galaxy) step(a *core.Animation) {
	if gw.Model == nil || gw.Nav == nil {
		return
	}
	if len(gw.pending) > 0 {
		gw.loadTextures()
	}
	dt := time.Duration(a.Dt * float32(time.Millisecond))
	gw.Nav.Dispatch(nav.Frame{DT: dt})
	gw.Model.Tick(dt, gw.Nav.Active())
	gw.syncPoses()
	gw.NeedsRender()
}

// syncPoses copies the rotations and the camera pose to the scene.
func (gw *Galaxy) syncPoses() {
	m := gw.Model
	gw.root.Pose.Quat = m.Rotation()
	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), m.StarAngle.X)
	qy := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), m.StarAngle.Y)
	q.SetMul(qy)
	gw.stars.Pose.Quat = q
	m.Each(func(n *galaxy.Node) {
		if v, ok := gw.views[n.Project.ID]; ok {
			v.sphere.Pose.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), n.Spin)
		}
	})
	gw.syncCamera()
}

func (gw *Galaxy) syncCamera() {
	pose := gw.Nav.Pose()
	cam := &gw.XYZ.Camera
	cam.Pose.Pos = pose.Pos
	cam.Pose.Quat = pose.Quat()
	cam.FOV = gw.FOV
	cam.Near = gw.Near
	cam.Far = gw.Far
	gw.XYZ.SetNeedsUpdate()
}

func (gw *Galaxy) dispatch(ev nav.Event) {
	if gw.Nav == nil {
		return
	}
	if d := gw.Nav.Dispatch(ev); d.Changed() {
		gw.syncCamera()
		gw.NeedsRender()
	}
}

// move sends the pointer movement since the last position.
// Several events can report the same motion, so repeated
// positions are ignored.
func (gw *Galaxy) move(pos image.Point) {
	d := pos.Sub(gw.last)
	gw.last = pos
	if d == (image.Point{}) {
		return
	}
	gw.dispatch(nav.Move{DX: float32(d.X), DY: float32(d.Y)})
}

// pick returns the node under the given window position.
func (gw *Galaxy) pick(pos image.Point) (*galaxy.Node, bool) {
	if gw.Model == nil || gw.Nav == nil {
		return nil, false
	}
	x, y, aspect := viewCoords(pos, gw.Geom.ContentBBox)
	return gw.Model.Pick(gw.Nav.Pose().Ray(gw.FOV, aspect, x, y))
}

func (gw *Galaxy) hover(pos image.Point) {
	if gw.Model == nil {
		return
	}
	n, _ := gw.pick(pos)
	if !gw.Model.SetHovered(n) {
		return
	}
	gw.Model.Each(func(n *galaxy.Node) {
		if v, ok := gw.views[n.Project.ID]; ok {
			gw.setAppearance(n, v)
		}
	})
	gw.XYZ.SetNeedsUpdate()
	gw.NeedsRender()
}

// click selects the node under the pointer. A click that ends a
// drag, or one in follow mode, only goes to navigation, as does
// one on empty space.
func (gw *Galaxy) click(pos image.Point) {
	if gw.Nav == nil {
		return
	}
	st := &gw.Nav.State
	if !st.DragMoved && st.Mode != nav.Following {
		if n, ok := gw.pick(pos); ok {
			if gw.OnSelect != nil {
				gw.OnSelect(n.Project)
			}
			return
		}
	}
	gw.dispatch(nav.Click{})
}
