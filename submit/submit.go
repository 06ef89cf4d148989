// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package submit implements the add-project form model: validation of
// the entered fields, placement of the new project, and insertion
// into the store.
package submit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"cogentcore.org/galaxy/placement"
	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/store"
)

// Form field names, used as keys of [Errors].
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldLink        = "link"
	FieldImage       = "image"
)

// FailedMessage is shown to the user when the store rejects a submission.
const FailedMessage = "Failed to add project. Please try again."

var linkPattern = regexp.MustCompile(`(?i)^https?://.+`)

// Form holds the values entered in the add-project form.
type Form struct {

	// Name is the project name.
	Name string

	// Description is the project description.
	Description string

	// Link is the project URL, which must start with http:// or https://.
	Link string

	// Image is the prepared image data URL.
	Image string
}

// Errors maps form fields to the validation message shown under them.
type Errors map[string]string

func (e Errors) Error() string {
	fields := slices.Sorted(maps.Keys(e))
	msgs := make([]string, len(fields))
	for i, f := range fields {
		msgs[i] = f + ": " + e[f]
	}
	return "invalid project: " + strings.Join(msgs, "; ")
}

// Validate returns the field errors of the form, or nil if it is valid.
func (f *Form) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "Project name is required"
	}
	if strings.TrimSpace(f.Description) == "" {
		errs[FieldDescription] = "Description is required"
	}
	switch link := strings.TrimSpace(f.Link); {
	case link == "":
		errs[FieldLink] = "Project link is required"
	case !linkPattern.MatchString(link):
		errs[FieldLink] = "Please enter a valid URL starting with http:// or https://"
	}
	if f.Image == "" {
		errs[FieldImage] = "Please upload an image"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Draft returns the project draft for the form at the given position.
func (f *Form) Draft() project.Draft {
	return project.Draft{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Link:        strings.TrimSpace(f.Link),
		Image:       f.Image,
	}
}

// Submitter submits forms to a store.
type Submitter struct {

	// Store is where new projects are inserted.
	Store store.Store

	// Generator places new projects.
	Generator *placement.Generator

	// OnAdded is called with each successfully added project.
	OnAdded func(p project.Project)

	// OnClose is called after a successful submission, to close the form.
	OnClose func()
}

// NewSubmitter returns a new [Submitter] for the given store,
// placing projects with the given generator.
func NewSubmitter(st store.Store, gen *placement.Generator) *Submitter {
	return &Submitter{Store: st, Generator: gen}
}

// Submit validates the form and, if it is valid, places the new project
// apart from the existing ones and inserts it into the store. On success
// it calls OnAdded and then OnClose. A validation failure returns
// [Errors] without contacting the store, and a store failure returns
// its error; in both cases the form stays open.
func (s *Submitter) Submit(ctx context.Context, f *Form, existing []project.Project) (project.Project, error) {
	if errs := f.Validate(); errs != nil {
		return project.Project{}, errs
	}
	d := f.Draft()
	pos, ok := s.Generator.Place(project.Positions(existing))
	if !ok {
		slog.Warn("submit: no free position found, using fallback placement", "pos", pos, "existing", len(existing))
	}
	d.SetPos(pos)
	p, err := s.Store.Insert(ctx, d)
	if err != nil {
		slog.Error("submit: adding project failed", "name", d.Name, "err", err)
		return project.Project{}, fmt.Errorf("submit: adding project %q: %w", d.Name, err)
	}
	slog.Info("submit: added project", "id", p.ID, "name", p.Name, "location", p.Location())
	if s.OnAdded != nil {
		s.OnAdded(p)
	}
	if s.OnClose != nil {
		s.OnClose()
	}
	return p, nil
}

// FieldErrors returns the field errors in err, if it is a
// validation failure.
func FieldErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
