// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles_test

import (
	"errors"
	"testing"

	archivefiles "github.com/shockpkg/archive-files"
)

func TestByFileExtension(t *testing.T) {
	cfg := archivefiles.NewConfig()

	tests := []struct {
		path string
		want string
	}{
		{"a.zip", ".zip"},
		{"a.tar", ".tar"},
		{"a.tar.gz", ".tar.gz"},
		{"a.tgz", ".tar.gz"},
		{"a.tar.bz2", ".tar.bz2"},
		{"a.tbz2", ".tar.bz2"},
		{"a.tar.xz", ".tar.xz"},
		{"a.txz", ".tar.xz"},
		{"a.tar.zst", ".tar.zst"},
		{"a.tzst", ".tar.zst"},
		{"a.tar.lz4", ".tar.lz4"},
		{"a.tar.br", ".tar.br"},
		{"a.tar.sz", ".tar.sz"},
		{"a.dmg", ".dmg"},
		{"a.iso", ".dmg"},
		{"a.cdr", ".dmg"},

		// Case-insensitive.
		{"A.ZIP", ".zip"},
		{"A.TAR.GZ", ".tar.gz"},

		// Nested paths.
		{"some/dir/a.tar.bz2", ".tar.bz2"},
	}
	for _, tt := range tests {
		a := archivefiles.ByFileExtension(tt.path, cfg)
		if a == nil {
			t.Errorf("%s: no archive type", tt.path)
			continue
		}
		if got := a.FileExtensions()[0]; got != tt.want {
			t.Errorf("%s: extension = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestByFileExtensionUnknown(t *testing.T) {
	cfg := archivefiles.NewConfig()
	for _, path := range []string{"a.unknown", "a", "a.gz", "a.rar", ""} {
		if a := archivefiles.ByFileExtension(path, cfg); a != nil {
			t.Errorf("%q: got %T, want nil", path, a)
		}
	}
}

func TestOpenByFileExtension(t *testing.T) {
	cfg := archivefiles.NewConfig()

	if _, err := archivefiles.OpenByFileExtension("a.tar", cfg); err != nil {
		t.Errorf("known extension error = %v", err)
	}
	if _, err := archivefiles.OpenByFileExtension("a.unknown", cfg); !errors.Is(err, archivefiles.ErrUnknownArchiveType) {
		t.Errorf("unknown extension error = %v, want ErrUnknownArchiveType", err)
	}
}

func TestOpen(t *testing.T) {
	cfg := archivefiles.NewConfig()

	dir := t.TempDir()
	a, err := archivefiles.Open(dir, cfg)
	if err != nil {
		t.Fatalf("open dir: %v", err)
	}
	if _, ok := a.(*archivefiles.Dir); !ok {
		t.Errorf("dir archive = %T, want *Dir", a)
	}

	path := writeTemp(t, "test.tar", packTar(t, nil))
	a, err = archivefiles.Open(path, cfg)
	if err != nil {
		t.Fatalf("open tar: %v", err)
	}
	if _, ok := a.(*archivefiles.Tar); !ok {
		t.Errorf("tar archive = %T, want *Tar", a)
	}

	if _, err := archivefiles.Open(dir+"/missing.tar", cfg); err == nil {
		t.Error("open missing path succeeded")
	}
}

func TestArchivePath(t *testing.T) {
	a := archivefiles.NewTar("/some/file.tar", archivefiles.NewConfig())
	if a.Path() != "/some/file.tar" {
		t.Errorf("path = %q", a.Path())
	}
	if a.HasNamedVolumes() {
		t.Error("tar has no named volumes")
	}
}
