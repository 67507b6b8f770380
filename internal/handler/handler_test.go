// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/osite-go/internal/cache"
	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/service"
	"github.com/olegiv/osite-go/internal/store"
	"github.com/olegiv/osite-go/internal/version"
)

// newTestServer wires the full router over a temporary database.
func newTestServer(t *testing.T) (*httptest.Server, *service.ProjectService) {
	t.Helper()

	f, err := os.CreateTemp("", "osite-handler-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	st := store.New(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	appCache := cache.NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { _ = appCache.Close() })
	render := cache.NewRenderCache(appCache, time.Minute)

	versions := service.NewVersionService(st, 10, 0)
	projects := service.NewProjectService(st, versions, render, logger)

	h := NewHandler(st, projects, versions, render, appCache, logger)
	health := NewHealthHandler(st, appCache, version.Info{Version: "test"})

	srv := httptest.NewServer(NewRouter(h, health, RouterConfig{}))
	t.Cleanup(srv.Close)
	return srv, projects
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeData(t *testing.T, resp *http.Response, dst any) {
	t.Helper()

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if err := json.Unmarshal(wrapper.Data, dst); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/status", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var status StatusResponse
	decodeData(t, resp, &status)
	if status.Status != "ok" || status.Version != "v1" {
		t.Errorf("status body = %+v", status)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		resp := doJSON(t, http.MethodGet, srv.URL+path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestProjectLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	// Create from template
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects",
		CreateProjectRequest{Name: "Trattoria Roma", Template: "restaurant"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var p model.Project
	decodeData(t, resp, &p)
	if p.ID == "" || len(p.Pages) == 0 {
		t.Fatalf("created project incomplete: %+v", p)
	}

	// Listed
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects", nil)
	var infos []store.ProjectInfo
	decodeData(t, resp, &infos)
	if len(infos) != 1 || infos[0].Name != "Trattoria Roma" {
		t.Errorf("listing = %+v", infos)
	}

	// Update via full save
	p.Name = "Trattoria Roma e Figli"
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/projects/"+p.ID, p)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	var saved model.Project
	decodeData(t, resp, &saved)
	if saved.Name != "Trattoria Roma e Figli" {
		t.Errorf("saved name = %q", saved.Name)
	}
	if !saved.UpdatedAt.After(p.CreatedAt) {
		t.Error("save did not bump the update timestamp")
	}

	// Delete
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projects/"+p.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+p.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", resp.StatusCode)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects", CreateProjectRequest{Name: "  "})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("blank name status = %d, want 422", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects",
		CreateProjectRequest{Name: "X", Template: "no-such-template"})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("unknown template status = %d, want 422", resp.StatusCode)
	}
}

func TestPageEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects",
		CreateProjectRequest{Name: "Site"})
	var p model.Project
	decodeData(t, resp, &p)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects/"+p.ID+"/pages",
		CreatePageRequest{Name: "Kontakt"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add page status = %d", resp.StatusCode)
	}
	var page model.Page
	decodeData(t, resp, &page)
	if page.Slug != "/kontakt" {
		t.Errorf("page slug = %q", page.Slug)
	}

	// Duplicate slug conflicts
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects/"+p.ID+"/pages",
		CreatePageRequest{Name: "Kontakt"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate slug status = %d, want 409", resp.StatusCode)
	}

	// Rename with reslug
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/projects/"+p.ID+"/pages/"+page.ID,
		UpdatePageRequest{Name: "Anfahrt", Reslug: true})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rename page status = %d", resp.StatusCode)
	}
	var renamed model.Page
	decodeData(t, resp, &renamed)
	if renamed.Name != "Anfahrt" || renamed.Slug != "/anfahrt" {
		t.Errorf("renamed page = %+v", renamed)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projects/"+p.ID+"/pages/"+page.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete page status = %d", resp.StatusCode)
	}

	// Deleting the last page conflicts
	reloaded := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+p.ID, nil)
	var after model.Project
	decodeData(t, reloaded, &after)
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projects/"+p.ID+"/pages/"+after.Pages[0].ID, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("delete last page status = %d, want 409", resp.StatusCode)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects",
		CreateProjectRequest{Name: "Salon", Template: "portfolio"})
	var p model.Project
	decodeData(t, resp, &p)

	url := srv.URL + "/api/v1/projects/" + p.ID + "/preview/" + p.Pages[0].ID
	resp = doJSON(t, http.MethodGet, url, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("preview status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("preview content type = %q", ct)
	}
	if resp.Header.Get("X-Cache") != "MISS" {
		t.Errorf("first preview X-Cache = %q, want MISS", resp.Header.Get("X-Cache"))
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<!DOCTYPE html>") {
		t.Error("preview body is not an HTML document")
	}

	resp = doJSON(t, http.MethodGet, url, nil)
	if resp.Header.Get("X-Cache") != "HIT" {
		t.Errorf("second preview X-Cache = %q, want HIT", resp.Header.Get("X-Cache"))
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+p.ID+"/preview/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown page preview status = %d, want 404", resp.StatusCode)
	}
}

func TestExportEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects",
		CreateProjectRequest{Name: "Müller Elektrotechnik", Template: "craftsman"})
	var p model.Project
	decodeData(t, resp, &p)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+p.ID+"/export", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Errorf("export content type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "muller-elektrotechnik.zip") {
		t.Errorf("content disposition = %q", cd)
	}

	data, _ := io.ReadAll(resp.Body)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reading zip: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["index.html"] || !names["README.md"] {
		t.Errorf("zip entries = %v", names)
	}
}

func TestVersionEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects",
		CreateProjectRequest{Name: "Original"})
	var p model.Project
	decodeData(t, resp, &p)

	// Manual snapshot
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/projects/"+p.ID+"/versions",
		CreateVersionRequest{Label: "Erster Stand"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("snapshot status = %d", resp.StatusCode)
	}
	var v model.Version
	decodeData(t, resp, &v)
	if v.ID == 0 || v.Label != "Erster Stand" {
		t.Errorf("snapshot = %+v", v)
	}

	// Edit, then restore
	p.Name = "Edited"
	doJSON(t, http.MethodPut, srv.URL+"/api/v1/projects/"+p.ID, p)

	resp = doJSON(t, http.MethodPost,
		srv.URL+"/api/v1/projects/"+p.ID+"/versions/"+int64String(v.ID)+"/restore", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("restore status = %d", resp.StatusCode)
	}
	var restored model.Project
	decodeData(t, resp, &restored)
	if restored.Name != "Original" {
		t.Errorf("restored name = %q", restored.Name)
	}

	// History contains snapshots
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projects/"+p.ID+"/versions", nil)
	var history []model.Version
	decodeData(t, resp, &history)
	if len(history) < 2 {
		t.Errorf("history len = %d, want at least 2", len(history))
	}

	// Unknown version 404s
	resp = doJSON(t, http.MethodPost,
		srv.URL+"/api/v1/projects/"+p.ID+"/versions/99999/restore", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown version restore status = %d, want 404", resp.StatusCode)
	}
}

func TestTemplatesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/templates", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("templates status = %d", resp.StatusCode)
	}
	var templates []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeData(t, resp, &templates)
	if len(templates) < 3 {
		t.Errorf("templates = %+v", templates)
	}
}

func TestEventsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/events?limit=10", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("events status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/events?limit=abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad limit status = %d, want 400", resp.StatusCode)
	}
}

func TestCacheEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/cache/stats", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cache stats status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/cache/clear", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cache clear status = %d", resp.StatusCode)
	}
}

func int64String(n int64) string {
	return strconv.FormatInt(n, 10)
}
