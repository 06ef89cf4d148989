// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cogentcore.org/galaxy/project"
)

// RESTPath is the path prefix of the REST table endpoints.
const RESTPath = "/rest/v1/"

// REST is a [Store] backed by a hosted REST table service: one table
// whose columns match [project.Project], listed with a descending
// created_at order and inserted one row at a time.
type REST struct {

	// URL is the base URL of the service.
	URL string

	// Key is the access key, sent as both the apikey header
	// and a bearer token.
	Key string

	// Table is the name of the projects table.
	Table string

	// Client is the HTTP client; http.DefaultClient is used if nil.
	Client *http.Client
}

// NewREST returns a new [REST] store for the given service URL and
// access key. It returns [ErrNotConfigured] if either is empty.
func NewREST(serviceURL, key, table string) (*REST, error) {
	if strings.TrimSpace(serviceURL) == "" || strings.TrimSpace(key) == "" {
		return nil, ErrNotConfigured
	}
	if table == "" {
		table = "projects"
	}
	return &REST{URL: strings.TrimSuffix(serviceURL, "/"), Key: key, Table: table}, nil
}

func (rs *REST) client() *http.Client {
	if rs.Client != nil {
		return rs.Client
	}
	return http.DefaultClient
}

func (rs *REST) endpoint(query url.Values) string {
	u := rs.URL + RESTPath + rs.Table
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (rs *REST) newRequest(ctx context.Context, method, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", rs.Key)
	req.Header.Set("Authorization", "Bearer "+rs.Key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (rs *REST) do(req *http.Request, result any) error {
	resp, err := rs.client().Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", req.Method, rs.Table, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("store: %s %s: %s: %s", req.Method, rs.Table, resp.Status, bytes.TrimSpace(msg))
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("store: decoding %s response: %w", rs.Table, err)
	}
	return nil
}

func (rs *REST) List(ctx context.Context) ([]project.Project, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "created_at.desc")
	req, err := rs.newRequest(ctx, http.MethodGet, rs.endpoint(q), nil)
	if err != nil {
		return nil, err
	}
	var ps []project.Project
	if err := rs.do(req, &ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (rs *REST) Insert(ctx context.Context, d project.Draft) (project.Project, error) {
	b, err := json.Marshal([]project.Draft{d})
	if err != nil {
		return project.Project{}, err
	}
	req, err := rs.newRequest(ctx, http.MethodPost, rs.endpoint(nil), bytes.NewReader(b))
	if err != nil {
		return project.Project{}, err
	}
	req.Header.Set("Prefer", "return=representation")
	var ps []project.Project
	if err := rs.do(req, &ps); err != nil {
		return project.Project{}, err
	}
	if len(ps) != 1 {
		return project.Project{}, fmt.Errorf("store: insert into %s returned %d rows, expected 1", rs.Table, len(ps))
	}
	return ps[0], nil
}
