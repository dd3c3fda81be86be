// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	archivefiles "github.com/shockpkg/archive-files"
)

// testModTime is the timestamp packed entries carry unless a test sets
// its own.
var testModTime = time.Date(2010, 6, 15, 12, 30, 0, 0, time.UTC)

// archiveContent describes one entry to pack into a test archive.
type archiveContent struct {
	Name     string
	Mode     int64
	Filetype byte
	Linkname string
	Content  []byte
	Modified time.Time

	// Posix marks a zip entry to carry a POSIX mode in its external
	// attributes. Ignored by packTar.
	Posix bool
}

// packTar creates a tar archive with the given content.
func packTar(t *testing.T, content []archiveContent) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := tar.NewWriter(&buf)
	for _, c := range content {
		ft := c.Filetype
		if ft == 0 {
			ft = tar.TypeReg
		}
		mod := c.Modified
		if mod.IsZero() {
			mod = testModTime
		}
		hdr := &tar.Header{
			Name:     c.Name,
			Mode:     c.Mode,
			Typeflag: ft,
			Linkname: c.Linkname,
			Size:     int64(len(c.Content)),
			ModTime:  mod,
		}
		if err := w.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header for %s: %v", c.Name, err)
		}
		if len(c.Content) != 0 {
			if _, err := w.Write(c.Content); err != nil {
				t.Fatalf("write tar content for %s: %v", c.Name, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	return buf.Bytes()
}

// packZip creates a zip archive with the given content. Entries marked
// Posix carry their mode in the external attributes, the rest rely on
// the trailing slash convention.
func packZip(t *testing.T, content []archiveContent) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, c := range content {
		mod := c.Modified
		if mod.IsZero() {
			mod = testModTime
		}
		hdr := &zip.FileHeader{
			Name:     c.Name,
			Method:   zip.Deflate,
			Modified: mod,
		}
		if c.Posix {
			switch c.Filetype {
			case tar.TypeDir:
				hdr.SetMode(fs.ModeDir | fs.FileMode(c.Mode))
			case tar.TypeSymlink:
				hdr.SetMode(fs.ModeSymlink | fs.FileMode(c.Mode))
			default:
				hdr.SetMode(fs.FileMode(c.Mode))
			}
		}
		fw, err := w.CreateHeader(hdr)
		if err != nil {
			t.Fatalf("create zip header for %s: %v", c.Name, err)
		}
		data := c.Content
		if c.Filetype == tar.TypeSymlink {
			data = []byte(c.Linkname)
		}
		if len(data) != 0 {
			if _, err := fw.Write(data); err != nil {
				t.Fatalf("write zip content for %s: %v", c.Name, err)
			}
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

// writeTemp writes data to a file with the given name in a fresh temp
// directory and returns its path.
func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

// readResult is one delivered entry with its content fully read.
type readResult struct {
	path string
	typ  archivefiles.PathType
	data []byte
}

// readAllEntries reads the archive to completion, consuming every entry
// with ReadAll.
func readAllEntries(t *testing.T, a archivefiles.Archive) []readResult {
	t.Helper()

	var out []readResult
	err := a.Read(context.Background(), func(e *archivefiles.Entry) (archivefiles.ReadAction, error) {
		data, err := e.ReadAll()
		if err != nil {
			return archivefiles.ActionStop, err
		}
		out = append(out, readResult{path: e.Path(), typ: e.Type, data: data})
		return archivefiles.ActionContinue, nil
	})
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	return out
}
