// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server provides a local REST service for the galaxy
// projects table, speaking the same protocol as the hosted service
// used by [store.REST], so that the app can run against any [store.Store].
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cogentcore.org/galaxy/project"
	"cogentcore.org/galaxy/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is a local REST service for one projects table.
type Server struct {

	// Store is the store that requests are served from.
	Store store.Store

	// Table is the name of the served table.
	Table string

	// Key is the access key that clients must send in the apikey
	// header. If it is empty, all requests are accepted.
	Key string

	// Echo is the underlying echo instance.
	Echo *echo.Echo
}

// New returns a new [Server] serving the given store as the given
// table, requiring the given access key if it is non-empty.
func New(st store.Store, table, key string) *Server {
	if table == "" {
		table = "projects"
	}
	sv := &Server{Store: st, Table: table, Key: key}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				slog.Error("server: request failed", "method", v.Method, "uri", v.URI, "status", v.Status, "err", v.Error)
				return nil
			}
			slog.Debug("server: request", "method", v.Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	g := e.Group(strings.TrimSuffix(store.RESTPath, "/"), sv.authorize)
	g.GET("/:table", sv.list)
	g.POST("/:table", sv.insert)
	sv.Echo = e
	return sv
}

// ServeHTTP implements [http.Handler].
func (sv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sv.Echo.ServeHTTP(w, r)
}

// Start starts serving on the given address, blocking until
// the server stops.
func (sv *Server) Start(addr string) error {
	slog.Info("server: listening", "addr", addr, "table", sv.Table)
	err := sv.Echo.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (sv *Server) authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if sv.Key == "" {
			return next(c)
		}
		key := c.Request().Header.Get("apikey")
		if key == "" {
			key = strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		}
		if key != sv.Key {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid API key")
		}
		return next(c)
	}
}

func (sv *Server) checkTable(c echo.Context) error {
	if t := c.Param("table"); t != sv.Table {
		return echo.NewHTTPError(http.StatusNotFound, "unknown table "+t)
	}
	return nil
}

func (sv *Server) list(c echo.Context) error {
	if err := sv.checkTable(c); err != nil {
		return err
	}
	if o := c.QueryParam("order"); o != "" && o != "created_at.desc" {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported order "+o)
	}
	ps, err := sv.Store.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "listing projects").SetInternal(err)
	}
	if ps == nil {
		ps = []project.Project{}
	}
	return c.JSON(http.StatusOK, ps)
}

// insert accepts either a single row object or an array of rows.
// Rows are inserted one at a time, in order.
func (sv *Server) insert(c echo.Context) error {
	if err := sv.checkTable(c); err != nil {
		return err
	}
	req := c.Request()
	if !strings.HasPrefix(strings.ToLower(req.Header.Get(echo.HeaderContentType)), echo.MIMEApplicationJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "content type must be application/json")
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "reading body").SetInternal(err)
	}
	var drafts []project.Draft
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '{' {
		var d project.Draft
		err = json.Unmarshal(body, &d)
		drafts = append(drafts, d)
	} else {
		err = json.Unmarshal(body, &drafts)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "can not understand the requested json").SetInternal(err)
	}
	if len(drafts) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no rows to insert")
	}
	ps := make([]project.Project, 0, len(drafts))
	for _, d := range drafts {
		p, err := sv.Store.Insert(req.Context(), d)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "inserting project").SetInternal(err)
		}
		ps = append(ps, p)
	}
	if !strings.Contains(req.Header.Get("Prefer"), "return=representation") {
		return c.NoContent(http.StatusCreated)
	}
	return c.JSON(http.StatusCreated, ps)
}
