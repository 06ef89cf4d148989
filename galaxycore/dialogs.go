// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package galaxycore

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/system"
	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/submit"
	"cogentcore.org/galaxy/texture"
	"cogentcore.org/galaxy/upload"
)

// imageExtensions are the file types offered by the image picker.
const imageExtensions = ".png,.jpg,.jpeg,.gif,.webp,.bmp,.tif,.tiff"

// AddProjectDialog opens the form for adding a project to the galaxy
// shown in gw. Navigation is suspended while it is open. The form
// closes when the project has been added; on failure it stays open
// with its values, for another try.
func AddProjectDialog(gw *Galaxy, sub *submit.Submitter, opts *upload.Options) {
	var prepared *upload.Image
	d := core.NewBody("Add Your Project")

	errs := map[string]*core.Text{}
	field := func(name, label, placeholder string) *core.TextField {
		core.NewText(d).SetType(core.TextLabelLarge).SetText(label)
		tf := core.NewTextField(d).SetPlaceholder(placeholder)
		tf.Styler(func(s *styles.Style) {
			s.Min.X.Em(25)
		})
		errs[name] = newErrorText(d)
		return tf
	}
	name := field(submit.FieldName, "Project Name", "Enter project name")
	desc := field(submit.FieldDescription, "Description", "Describe your project")
	desc.SetType(core.TextFieldOutlined)
	link := field(submit.FieldLink, "Project Link", "https://")

	core.NewText(d).SetType(core.TextLabelLarge).SetText("Project Image")
	preview := core.NewFrame(d)
	preview.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		if prepared == nil {
			s.Display = styles.DisplayNone
		}
	})
	img := core.NewImage(preview)
	img.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(150))
	})
	core.NewButton(preview).SetType(core.ButtonText).SetIcon(icons.Delete).SetText("Remove Image").
		OnClick(func(e events.Event) {
			prepared = nil
			d.Update()
		})

	pick := core.NewFileButton(d).SetExtensions(imageExtensions)
	pick.SetTooltip("Upload an image of the project")
	pick.Styler(func(s *styles.Style) {
		if prepared != nil {
			s.Display = styles.DisplayNone
		}
	})
	errs[submit.FieldImage] = newErrorText(d)
	pick.OnChange(func(e events.Event) {
		if pick.Filename == "" {
			return
		}
		im, err := opts.PrepareFile(pick.Filename)
		pick.Filename = ""
		if err != nil {
			slog.Warn("galaxycore: image rejected", "err", err)
			core.MessageDialog(d, upload.Message(err))
			return
		}
		prepared = im
		img.SetImage(im.Preview)
		showErrors(errs, nil)
		d.Update()
	})

	d.AddBottomBar(func(bar *core.Frame) {
		d.AddCancel(bar)
		add := core.NewButton(bar).SetText("Add Project").SetIcon(icons.Add)
		add.OnClick(func(e events.Event) {
			form := &submit.Form{Name: name.Text(), Description: desc.Text(), Link: link.Text()}
			if prepared != nil {
				form.Image = prepared.DataURL
			}
			if fe := form.Validate(); fe != nil {
				showErrors(errs, fe)
				return
			}
			showErrors(errs, nil)
			add.SetText("Processing...").SetEnabled(false)
			add.Update()

			// the callbacks run on the submitting goroutine
			s := *sub
			s.OnAdded = func(p project.Project) {
				gw.AsyncLock()
				gw.AddProject(p)
				gw.AsyncUnlock()
			}
			s.OnClose = func() {
				gw.AsyncLock()
				d.Close()
				gw.AsyncUnlock()
			}
			existing := gw.Model.Projects()
			go func() {
				_, err := s.Submit(context.Background(), form, existing)
				if err == nil {
					return
				}
				gw.AsyncLock()
				defer gw.AsyncUnlock()
				add.SetText("Add Project").SetEnabled(true)
				add.Update()
				if fe, ok := submit.FieldErrors(err); ok {
					showErrors(errs, fe)
					return
				}
				core.MessageDialog(d, submit.FailedMessage)
			}()
		})
	})
	gw.Suspend(true)
	d.OnClose(func(e events.Event) {
		gw.Suspend(false)
	})
	d.RunDialog(gw)
}

func newErrorText(parent core.Widget) *core.Text {
	tx := core.NewText(parent).SetType(core.TextBodySmall)
	tx.Styler(func(s *styles.Style) {
		s.Color = colors.Scheme.Error.Base
	})
	return tx
}

// showErrors shows the field errors under their fields,
// clearing the others.
func showErrors(texts map[string]*core.Text, errs submit.Errors) {
	for field, tx := range texts {
		tx.SetText(errs[field])
		tx.Update()
	}
}

// ProjectDialog opens the details of a project: its image, name,
// description, a button to visit its link, its identifier and
// its location. Navigation of gw is suspended while it is open.
func ProjectDialog(gw *Galaxy, p project.Project) {
	d := core.NewBody(p.Name)
	pic := core.NewImage(d)
	icon := core.NewIcon(d).SetIcon(icons.Image)
	icon.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(96))
		if pic.Image != nil {
			s.Display = styles.DisplayNone
		}
	})
	pic.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(200))
		if pic.Image == nil {
			s.Display = styles.DisplayNone
		}
	})
	if gw.Textures != nil && p.Image != "" {
		go func() {
			im, err := gw.Textures.Load(context.Background(), p.Image)
			if err != nil {
				slog.Warn("galaxycore: could not load project image", "project", p.ID, "err", err)
				return
			}
			gw.AsyncLock()
			defer gw.AsyncUnlock()
			pic.SetImage(texture.Fit(im, 400))
			d.Update()
		}()
	}

	core.NewText(d).SetType(core.TextBodyLarge).SetText(p.Description)
	if p.Link != "" {
		core.NewButton(d).SetText("Visit Project").SetIcon(icons.OpenInNew).
			OnClick(func(e events.Event) {
				system.TheApp.OpenURL(p.Link)
			})
	}
	core.NewText(d).SetType(core.TextSupporting).SetText(projectInfo(p))
	d.AddOKOnly()
	gw.Suspend(true)
	d.OnClose(func(e events.Event) {
		gw.Suspend(false)
	})
	d.RunDialog(gw)
}

// projectInfo returns the identifier and location line of the
// project details.
func projectInfo(p project.Project) string {
	return fmt.Sprintf("ID: %d | Location: %s", p.ID, p.Location())
}
