// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxycore

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/galaxy/config"
	"cogentcore.org/galaxy/galaxy"
	"cogentcore.org/galaxy/nav"
	"cogentcore.org/galaxy/placement"
	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/store"
	"cogentcore.org/galaxy/submit"
	"cogentcore.org/galaxy/texture"
	"cogentcore.org/galaxy/upload"
)

// Help is the controls help shown below the galaxy.
var Help = []string{
	"Use W, A, S, D or arrows to navigate | Mouse wheel to zoom | Drag to rotate | Click to toggle follow",
	"Press Space bar to reset to center",
}

// Page is the galaxy page: the 3D view of the projects in a store,
// with a button for adding projects and the controls help.
type Page struct {

	// Galaxy is the 3D view.
	Galaxy *Galaxy

	// Store is where the projects are listed from and added to.
	Store store.Store

	// Submitter adds projects from the form.
	Submitter *submit.Submitter

	// Upload are the image preparation options of the form.
	Upload upload.Options

	// status shows the loading state until the projects are listed.
	status *core.Text
}

// NewPage adds the galaxy page for the projects in the given store
// to the body, configured by cfg. The projects are listed once the
// page is shown.
func NewPage(b *core.Body, cfg *config.Config, st store.Store) *Page {
	pg := &Page{Store: st, Upload: cfg.Upload}
	pg.Submitter = submit.NewSubmitter(st, placement.NewGeneratorParams(cfg.Placement, nil))

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(pg.MakeToolbar)
	})

	pg.status = core.NewText(b).SetType(core.TextTitleMedium).SetText("Loading galaxy...")
	pg.status.Styler(func(s *styles.Style) {
		if pg.status.Text == "" {
			s.Display = styles.DisplayNone
		}
	})

	gw := NewGalaxy(b)
	gw.FOV, gw.Near, gw.Far = cfg.FOV, cfg.Near, cfg.Far
	var disk *texture.DiskCache
	if cfg.CacheDir != "" {
		disk = texture.NewDiskCache(filepath.Join(cfg.CacheDir, "images"))
	}
	gw.Textures = texture.NewCached(texture.NewSources(Assets), disk)
	gw.OnSelect = func(p project.Project) {
		ProjectDialog(gw, p)
	}
	gw.SetModel(galaxy.New(cfg.Galaxy, nil), nav.NewController(cfg.Nav))
	gw.StartFocus()
	pg.Galaxy = gw

	help := core.NewFrame(b)
	help.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	for _, h := range Help {
		core.NewText(help).SetType(core.TextBodySmall).SetText(h)
	}

	b.OnShow(func(e events.Event) {
		go pg.load()
	})
	return pg
}

// MakeToolbar makes the toolbar of the page.
func (pg *Page) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.Button) {
		w.SetText("Add Project").SetIcon(icons.Add).
			SetTooltip("Add your project to the galaxy")
		w.OnClick(func(e events.Event) {
			AddProjectDialog(pg.Galaxy, pg.Submitter, &pg.Upload)
		})
	})
}

// load lists the projects and shows them.
func (pg *Page) load() {
	ps, err := pg.Store.List(context.Background())
	gw := pg.Galaxy
	gw.AsyncLock()
	defer gw.AsyncUnlock()
	if err != nil {
		slog.Error("galaxycore: could not list projects", "err", err)
		pg.status.SetText("Could not load the galaxy: " + err.Error())
		pg.status.Update()
		return
	}
	slog.Info("galaxycore: loaded projects", "count", len(ps))
	gw.SetProjects(ps)
	pg.status.SetText("")
	pg.status.Update()
}
