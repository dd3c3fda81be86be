// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles_test

import (
	"archive/tar"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	archivefiles "github.com/shockpkg/archive-files"
)

// extractAll reads the archive and extracts every entry under root.
func extractAll(t *testing.T, a archivefiles.Archive, root string, opts ...archivefiles.ExtractOption) error {
	t.Helper()

	return a.Read(context.Background(), func(e *archivefiles.Entry) (archivefiles.ReadAction, error) {
		dst := filepath.Join(root, filepath.FromSlash(e.Path()))
		if err := e.Extract(dst, opts...); err != nil {
			return archivefiles.ActionStop, err
		}
		return archivefiles.ActionContinue, nil
	})
}

func TestExtract(t *testing.T) {
	dirTime := testModTime
	fileTime := testModTime.Add(time.Hour)
	content := []archiveContent{
		{Name: "d", Mode: 0750, Filetype: tar.TypeDir, Modified: dirTime},
		{Name: "d/f.txt", Mode: 0640, Content: []byte("hello"), Modified: fileTime},
		{Name: "d/l", Mode: 0777, Filetype: tar.TypeSymlink, Linkname: "f.txt"},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))

	var td archivefiles.TelemetryData
	cfg := archivefiles.NewConfig(archivefiles.WithTelemetryHook(func(_ context.Context, d *archivefiles.TelemetryData) {
		td = *d
	}))
	root := t.TempDir()
	require.NoError(t, extractAll(t, archivefiles.NewTar(path, cfg), root))

	// File content, mode and time are restored.
	b, err := os.ReadFile(filepath.Join(root, "d", "f.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)
	fi, err := os.Lstat(filepath.Join(root, "d", "f.txt"))
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0640), fi.Mode().Perm())
	}
	require.WithinDuration(t, fileTime, fi.ModTime(), 2*time.Second)

	// Directory attributes are applied after its children were written,
	// so the declared time survives.
	di, err := os.Lstat(filepath.Join(root, "d"))
	require.NoError(t, err)
	require.True(t, di.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0750), di.Mode().Perm())
	}
	require.WithinDuration(t, dirTime, di.ModTime(), 2*time.Second)

	// Symlink points at its target.
	target, err := os.Readlink(filepath.Join(root, "d", "l"))
	require.NoError(t, err)
	require.Equal(t, "f.txt", target)

	require.Equal(t, int64(1), td.ExtractedFiles)
	require.Equal(t, int64(1), td.ExtractedDirs)
	require.Equal(t, int64(1), td.ExtractedSymlinks)
	require.Equal(t, int64(len("hello")+len("f.txt")), td.ExtractionSize)
}

func TestExtractConflict(t *testing.T) {
	content := []archiveContent{
		{Name: "f.txt", Mode: 0644, Content: []byte("hello")},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))
	a := archivefiles.NewTar(path, archivefiles.NewConfig())
	root := t.TempDir()

	require.NoError(t, extractAll(t, a, root))

	// A second extraction fails on the existing path.
	err := extractAll(t, a, root)
	require.ErrorIs(t, err, archivefiles.ErrPathExists)

	// Replacing removes the existing path first.
	require.NoError(t, extractAll(t, a, root, archivefiles.WithReplace(true)))
}

func TestExtractDirectoryOntoNonDirectory(t *testing.T) {
	content := []archiveContent{
		{Name: "d", Mode: 0755, Filetype: tar.TypeDir},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))
	a := archivefiles.NewTar(path, archivefiles.NewConfig())

	root := t.TempDir()
	blocker := filepath.Join(root, "d")
	require.NoError(t, os.WriteFile(blocker, []byte("in the way"), 0644))

	err := extractAll(t, a, root)
	require.ErrorIs(t, err, archivefiles.ErrPathExists)

	require.NoError(t, extractAll(t, a, root, archivefiles.WithReplace(true)))
	fi, err := os.Lstat(blocker)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestExtractDirectoryReused(t *testing.T) {
	content := []archiveContent{
		{Name: "d", Mode: 0755, Filetype: tar.TypeDir},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))
	a := archivefiles.NewTar(path, archivefiles.NewConfig())

	root := t.TempDir()
	existing := filepath.Join(root, "d")
	require.NoError(t, os.MkdirAll(existing, 0755))
	keep := filepath.Join(existing, "keep.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0644))

	// An existing directory is reused without replace, its content
	// survives.
	require.NoError(t, extractAll(t, a, root))
	_, err := os.Lstat(keep)
	require.NoError(t, err)
}

func TestExtractSymlinkAsFile(t *testing.T) {
	content := []archiveContent{
		{Name: "l", Mode: 0777, Filetype: tar.TypeSymlink, Linkname: "target.txt"},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))

	root := t.TempDir()
	require.NoError(t, extractAll(t, archivefiles.NewTar(path, archivefiles.NewConfig()), root, archivefiles.WithSymlinkAsFile(true)))

	dst := filepath.Join(root, "l")
	fi, err := os.Lstat(dst)
	require.NoError(t, err)
	require.True(t, fi.Mode().IsRegular())
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, []byte("target.txt"), b)
}

func TestExtractIgnoreTimes(t *testing.T) {
	content := []archiveContent{
		{Name: "f.txt", Mode: 0644, Content: []byte("hello"), Modified: testModTime},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))

	root := t.TempDir()
	require.NoError(t, extractAll(t, archivefiles.NewTar(path, archivefiles.NewConfig()), root, archivefiles.WithIgnoreTimes(true)))

	fi, err := os.Lstat(filepath.Join(root, "f.txt"))
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), fi.ModTime(), time.Minute)
}

func TestExtractCreatesParents(t *testing.T) {
	// No directory entry precedes the file, parents come from the
	// default directory mode.
	content := []archiveContent{
		{Name: "deep/er/f.txt", Mode: 0644, Content: []byte("hello")},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))

	root := t.TempDir()
	require.NoError(t, extractAll(t, archivefiles.NewTar(path, archivefiles.NewConfig()), root))

	b, err := os.ReadFile(filepath.Join(root, "deep", "er", "f.txt"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)
}

func TestSetAttributes(t *testing.T) {
	content := []archiveContent{
		{Name: "f.txt", Mode: 0640, Content: []byte("hello"), Modified: testModTime},
	}
	path := writeTemp(t, "test.tar", packTar(t, content))

	dst := filepath.Join(t.TempDir(), "other.txt")
	require.NoError(t, os.WriteFile(dst, []byte("other"), 0666))

	err := archivefiles.NewTar(path, archivefiles.NewConfig()).Read(context.Background(), func(e *archivefiles.Entry) (archivefiles.ReadAction, error) {
		// Applies metadata without consuming the content.
		require.NoError(t, e.SetAttributes(dst))
		b, err := e.ReadAll()
		require.NoError(t, err)
		require.Equal(t, []byte("hello"), b)
		return archivefiles.ActionStop, nil
	})
	require.NoError(t, err)

	fi, err := os.Lstat(dst)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0640), fi.Mode().Perm())
	}
	require.WithinDuration(t, testModTime, fi.ModTime(), 2*time.Second)
}
