// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/olegiv/osite-go/internal/model"
)

// File is one entry of an export archive.
type File struct {
	Name string
	Body string
}

// Archive is the complete result of a project export: the individual files
// and the packaged zip. Two exports of an unchanged project produce
// byte-identical zips; entries are written without timestamps.
type Archive struct {
	Files []File
	Zip   []byte
}

// ExportProject renders every page of the project to a standalone HTML file,
// adds a README and packages everything as a zip. The first page becomes
// index.html, all others their slug plus ".html". Any packaging failure
// aborts the export; there is no partial archive.
func ExportProject(project *model.Project) (*Archive, error) {
	if len(project.Pages) == 0 {
		return nil, fmt.Errorf("project %s has no pages", project.ID)
	}

	files := make([]File, 0, len(project.Pages)+1)
	for i := range project.Pages {
		files = append(files, File{
			Name: PageFilename(&project.Pages[i], i),
			Body: AssembleDocument(project, i),
		})
	}
	files = append(files, File{Name: "README.md", Body: exportReadme(project)})

	zipBytes, err := packZip(files)
	if err != nil {
		return nil, fmt.Errorf("packaging export of project %s: %w", project.ID, err)
	}

	return &Archive{Files: files, Zip: zipBytes}, nil
}

// exportReadme builds the German README shipped with every export. The date
// derives from the project's update timestamp, not the wall clock, keeping
// exports reproducible.
func exportReadme(project *model.Project) string {
	date := project.UpdatedAt.UTC().Format("02.01.2006")

	var sb strings.Builder
	sb.WriteString("# " + project.Name + "\n\n")
	sb.WriteString("Exportiert am " + date + " mit " + project.BrandName() + ".\n\n")
	sb.WriteString("## Dateien\n\n")
	for i := range project.Pages {
		p := &project.Pages[i]
		sb.WriteString("- `" + PageFilename(p, i) + "` — " + p.Name + "\n")
	}
	sb.WriteString("\nÖffne index.html in deinem Browser oder lade alle Dateien auf deinen Webhost hoch.\n")
	return sb.String()
}

// packZip writes the files into an in-memory zip. Entries are created with
// zip.Writer.Create, which leaves modification times at their zero value, so
// repeated packaging of identical content yields identical bytes.
func packZip(files []File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %s: %w", f.Name, err)
		}
		if _, err := w.Write([]byte(f.Body)); err != nil {
			return nil, fmt.Errorf("writing zip entry %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing zip: %w", err)
	}
	return buf.Bytes(), nil
}
