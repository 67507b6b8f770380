// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/osite-go/internal/model"
	"github.com/olegiv/osite-go/internal/theme"
)

func sampleProject() *model.Project {
	return &model.Project{
		ID:    "p1",
		Name:  "Trattoria Roma",
		Theme: theme.Preset("restaurant"),
		Pages: []model.Page{
			{
				ID: "pg1", Name: "Start", Slug: "/",
				Content: []model.Block{
					{Type: model.BlockHero, Props: model.HeroProps{Title: "Benvenuti", Subtitle: "Italienische Küche"}},
					{Type: model.BlockTextBlock, Props: model.TextBlockProps{Content: "Seit 1987."}},
				},
			},
			{
				ID: "pg2", Name: "Speisekarte", Slug: "/speisekarte",
				Content: []model.Block{
					{Type: model.BlockTextBlock, Props: model.TextBlockProps{Heading: "Speisekarte", Content: "Pasta und Pizza."}},
				},
			},
			{
				ID: "pg3", Name: "Kontakt", Slug: "/kontakt",
				Content: []model.Block{
					{Type: model.BlockContactForm, Props: model.ContactFormProps{Heading: "Schreib uns"}},
				},
			},
		},
		ActivePageID: "pg1",
		CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 4, 15, 12, 30, 0, 0, time.UTC),
	}
}

func TestPageFilename(t *testing.T) {
	p := sampleProject()
	tests := []struct {
		index int
		want  string
	}{
		{0, "index.html"},
		{1, "speisekarte.html"},
		{2, "kontakt.html"},
	}
	for _, tt := range tests {
		if got := PageFilename(&p.Pages[tt.index], tt.index); got != tt.want {
			t.Errorf("PageFilename(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestComposePageMultiPageNav(t *testing.T) {
	p := sampleProject()
	body := ComposePage(p, 1)

	if !strings.Contains(body, "<nav ") {
		t.Fatalf("nav missing: %s", body)
	}
	if !strings.Contains(body, ">Trattoria Roma</span>") {
		t.Errorf("brand missing: %s", body)
	}
	if !strings.Contains(body, `href="index.html"`) {
		t.Errorf("home link missing: %s", body)
	}
	if !strings.Contains(body, `href="speisekarte.html" style="color:#818cf8`) {
		t.Errorf("current page not highlighted: %s", body)
	}
	if !strings.Contains(body, `href="kontakt.html" style="color:#999`) {
		t.Errorf("other page not dimmed: %s", body)
	}
}

func TestComposePageSinglePageNoNav(t *testing.T) {
	p := sampleProject()
	p.Pages = p.Pages[:1]
	body := ComposePage(p, 0)
	if strings.Contains(body, "<nav ") {
		t.Errorf("nav rendered for single-page project: %s", body)
	}
}

func TestAssembleDocumentHead(t *testing.T) {
	p := sampleProject()
	doc := AssembleDocument(p, 0)

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="de">`,
		`<meta charset="UTF-8">`,
		"<title>Start — Trattoria Roma</title>",
		`<meta name="description" content="Italienische Küche">`,
		`<meta property="og:title" content="Start">`,
		`<meta property="og:site_name" content="Trattoria Roma">`,
		"--theme-primary: #b45309;",
		"font-family: 'Lato', 'Helvetica Neue', sans-serif;",
		"https://fonts.googleapis.com/css2",
		"<!-- Erstellt mit oSite -->",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestAssembleDocumentSEOTitleWins(t *testing.T) {
	p := sampleProject()
	p.Pages[0].SEO = &model.PageSEO{Title: "Italiener in Berlin", Description: "Beste Pasta der Stadt."}
	doc := AssembleDocument(p, 0)

	if !strings.Contains(doc, "<title>Italiener in Berlin — Trattoria Roma</title>") {
		t.Errorf("SEO title not used")
	}
	if !strings.Contains(doc, `content="Beste Pasta der Stadt."`) {
		t.Errorf("SEO description not used")
	}
}

func TestAssembleDocumentAnalytics(t *testing.T) {
	p := sampleProject()
	p.Analytics = &model.Analytics{Provider: model.AnalyticsPlausible, SiteID: "trattoria.example"}
	doc := AssembleDocument(p, 0)
	if !strings.Contains(doc, `data-domain="trattoria.example"`) {
		t.Errorf("plausible snippet missing")
	}

	p.Analytics = &model.Analytics{Provider: model.AnalyticsPlausible}
	doc = AssembleDocument(p, 0)
	if strings.Contains(doc, "plausible.io") {
		t.Errorf("snippet emitted without site id")
	}

	p.Analytics = nil
	doc = AssembleDocument(p, 0)
	if strings.Contains(doc, "plausible.io") || strings.Contains(doc, "gtag") {
		t.Errorf("snippet emitted without settings")
	}
}

func TestAssembleDocumentWhiteLabel(t *testing.T) {
	p := sampleProject()
	p.WhiteLabel = &model.WhiteLabel{Enabled: true, CustomBrand: "Agentur Nord", HidePoweredBy: false}
	doc := AssembleDocument(p, 0)
	if !strings.Contains(doc, "<!-- Erstellt mit Agentur Nord -->") {
		t.Errorf("custom brand missing")
	}

	p.WhiteLabel.HidePoweredBy = true
	doc = AssembleDocument(p, 0)
	if strings.Contains(doc, "Erstellt mit") {
		t.Errorf("powered-by marker shown despite hide flag")
	}
}

func TestAssembleDocumentThemeTokenPropagation(t *testing.T) {
	p := sampleProject()
	p.Theme.PrimaryColor = "#123456"
	doc := AssembleDocument(p, 0)

	if !strings.Contains(doc, "--theme-primary: #123456;") {
		t.Errorf("changed primary not in :root")
	}
	if !strings.Contains(doc, "--theme-secondary: "+p.Theme.SecondaryColor+";") {
		t.Errorf("unrelated token changed")
	}
}

func TestExportProjectFileSet(t *testing.T) {
	p := sampleProject()
	archive, err := ExportProject(p)
	if err != nil {
		t.Fatalf("ExportProject: %v", err)
	}

	wantNames := []string{"index.html", "speisekarte.html", "kontakt.html", "README.md"}
	if len(archive.Files) != len(wantNames) {
		t.Fatalf("got %d files, want %d", len(archive.Files), len(wantNames))
	}
	for i, want := range wantNames {
		if archive.Files[i].Name != want {
			t.Errorf("file[%d] = %q, want %q", i, archive.Files[i].Name, want)
		}
	}
}

func TestExportProjectReadme(t *testing.T) {
	p := sampleProject()
	archive, err := ExportProject(p)
	if err != nil {
		t.Fatalf("ExportProject: %v", err)
	}

	readme := archive.Files[len(archive.Files)-1].Body
	for _, want := range []string{
		"# Trattoria Roma",
		"Exportiert am 15.04.2026 mit oSite.",
		"`index.html` — Start",
		"`speisekarte.html` — Speisekarte",
		"Öffne index.html",
	} {
		if !strings.Contains(readme, want) {
			t.Errorf("README missing %q:\n%s", want, readme)
		}
	}
}

func TestExportProjectDeterministic(t *testing.T) {
	p := sampleProject()

	first, err := ExportProject(p)
	if err != nil {
		t.Fatalf("first export: %v", err)
	}
	second, err := ExportProject(p)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}

	if !bytes.Equal(first.Zip, second.Zip) {
		t.Errorf("two exports of an unchanged project differ")
	}
}

func TestExportProjectZipContents(t *testing.T) {
	p := sampleProject()
	archive, err := ExportProject(p)
	if err != nil {
		t.Fatalf("ExportProject: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(archive.Zip), int64(len(archive.Zip)))
	if err != nil {
		t.Fatalf("reading zip: %v", err)
	}
	if len(zr.File) != 4 {
		t.Fatalf("zip has %d entries, want 4", len(zr.File))
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("opening first entry: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading first entry: %v", err)
	}
	if string(data) != archive.Files[0].Body {
		t.Errorf("zip entry diverges from file body")
	}
}

func TestExportProjectNoPages(t *testing.T) {
	p := sampleProject()
	p.Pages = nil
	if _, err := ExportProject(p); err == nil {
		t.Errorf("export of empty project should fail")
	}
}

func TestExportProjectUnknownBlockDegrades(t *testing.T) {
	p := sampleProject()
	p.Pages[0].Content = append(p.Pages[0].Content, model.Block{Type: "Countdown", Props: model.UnknownProps{}})

	archive, err := ExportProject(p)
	if err != nil {
		t.Fatalf("ExportProject: %v", err)
	}
	if !strings.Contains(archive.Files[0].Body, "<!-- unknown block: Countdown -->") {
		t.Errorf("unknown block placeholder missing")
	}
}
