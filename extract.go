// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
)

// extractOptions holds the extraction knobs.
type extractOptions struct {
	replace            bool
	ignorePermissions  bool
	ignoreTimes        bool
	resourceForkAsFile bool
	symlinkAsFile      bool
}

// ExtractOption is a function that modifies extraction behavior.
type ExtractOption func(*extractOptions)

// WithReplace removes an existing path at the destination before
// extracting, instead of failing with ErrPathExists. An existing
// directory survives a directory entry either way.
func WithReplace(replace bool) ExtractOption {
	return func(o *extractOptions) {
		o.replace = replace
	}
}

// WithIgnorePermissions skips restoring recorded permission bits.
func WithIgnorePermissions(ignore bool) ExtractOption {
	return func(o *extractOptions) {
		o.ignorePermissions = ignore
	}
}

// WithIgnoreTimes skips restoring recorded timestamps.
func WithIgnoreTimes(ignore bool) ExtractOption {
	return func(o *extractOptions) {
		o.ignoreTimes = ignore
	}
}

// WithResourceForkAsFile extracts a resource fork entry as a plain file
// at the destination path instead of attaching it to an existing file.
func WithResourceForkAsFile(asFile bool) ExtractOption {
	return func(o *extractOptions) {
		o.resourceForkAsFile = asFile
	}
}

// WithSymlinkAsFile extracts a symlink entry as a plain file containing
// the link target bytes instead of creating a symbolic link.
func WithSymlinkAsFile(asFile bool) ExtractOption {
	return func(o *extractOptions) {
		o.symlinkAsFile = asFile
	}
}

// Extract consumes the entry and materializes it at dst on the archive's
// target filesystem. Directory attributes are deferred until the read
// finishes so writes inside the directory do not disturb them.
func (e *Entry) Extract(dst string, opts ...ExtractOption) error {
	if err := e.consume(); err != nil {
		return err
	}
	o := &extractOptions{}
	for _, opt := range opts {
		opt(o)
	}
	e.arc.cfg.Logger().Debug("extracting entry", "path", e.path, "type", e.Type.String(), "dst", dst)

	resolved, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("failed to resolve destination: %w", err)
	}
	// A fresh extraction to this path supersedes any pending attributes.
	if err := e.arc.afterReadSetAttributesRemove(resolved); err != nil {
		return err
	}

	switch e.Type {
	case PathTypeDirectory:
		return e.extractDirectory(dst, resolved, o)
	case PathTypeSymlink:
		return e.extractSymlink(dst, o)
	case PathTypeResourceFork:
		return e.extractResourceFork(dst, o)
	default:
		return e.extractFile(dst, o)
	}
}

// extractFile writes the entry content to dst, creating missing parent
// directories.
func (e *Entry) extractFile(dst string, o *extractOptions) error {
	t := e.arc.cfg.Target()
	if err := checkConflict(t, dst, o.replace); err != nil {
		return err
	}
	if err := t.CreateDir(filepath.Dir(dst), e.arc.cfg.DefaultDirMode()); err != nil {
		return err
	}

	src := &lazyReadCloser{open: e.open}
	defer func() {
		src.Close()
	}()
	n, err := t.CreateFile(dst, src, e.fileMode(e.arc.cfg.DefaultFileMode()))
	if err != nil {
		return err
	}
	e.arc.td.ExtractedFiles++
	e.arc.td.ExtractionSize += n

	return e.setAttributes(dst, o, false)
}

// extractDirectory creates dst and registers the entry attributes to be
// applied once the read finishes. An existing directory at dst is reused.
func (e *Entry) extractDirectory(dst, resolved string, o *extractOptions) error {
	t := e.arc.cfg.Target()
	if fi, err := t.Lstat(dst); err == nil && !fi.IsDir() {
		if !o.replace {
			return fmt.Errorf("%w: %s", ErrPathExists, dst)
		}
		if err := t.RemoveAll(dst); err != nil {
			return err
		}
	}
	// Created writable so children can be extracted into it. Recorded
	// permissions land in the deferred pass.
	if err := t.CreateDir(dst, e.arc.cfg.DefaultDirMode()); err != nil {
		return err
	}
	e.arc.td.ExtractedDirs++

	return e.arc.afterReadSetAttributes(resolved, e, o, dst)
}

// extractSymlink creates a symbolic link at dst pointing at the entry
// target, or a plain file holding the target bytes when requested.
func (e *Entry) extractSymlink(dst string, o *extractOptions) error {
	t := e.arc.cfg.Target()
	if err := checkConflict(t, dst, o.replace); err != nil {
		return err
	}
	if err := t.CreateDir(filepath.Dir(dst), e.arc.cfg.DefaultDirMode()); err != nil {
		return err
	}

	target, err := e.readlink()
	if err != nil {
		return err
	}
	if o.symlinkAsFile {
		n, err := t.CreateFile(dst, bytes.NewReader(target), e.fileMode(e.arc.cfg.DefaultFileMode()))
		if err != nil {
			return err
		}
		e.arc.td.ExtractedFiles++
		e.arc.td.ExtractionSize += n
		return e.setAttributes(dst, o, false)
	}
	if err := t.CreateSymlink(dst, target); err != nil {
		return err
	}
	e.arc.td.ExtractedSymlinks++
	e.arc.td.ExtractionSize += int64(len(target))

	return e.setAttributes(dst, o, true)
}

// extractResourceFork attaches the entry content to the resource fork of
// an existing regular file at dst, or writes a plain file at dst when
// requested.
func (e *Entry) extractResourceFork(dst string, o *extractOptions) error {
	t := e.arc.cfg.Target()
	if o.resourceForkAsFile {
		if err := checkConflict(t, dst, o.replace); err != nil {
			return err
		}
		if err := t.CreateDir(filepath.Dir(dst), e.arc.cfg.DefaultDirMode()); err != nil {
			return err
		}
		src := &lazyReadCloser{open: e.open}
		defer func() {
			src.Close()
		}()
		n, err := t.CreateFile(dst, src, e.fileMode(e.arc.cfg.DefaultFileMode()))
		if err != nil {
			return err
		}
		e.arc.td.ExtractedFiles++
		e.arc.td.ExtractionSize += n
		return e.setAttributes(dst, o, false)
	}

	fi, err := t.Lstat(dst)
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNoResourceForkTarget, dst)
	}
	src := &lazyReadCloser{open: e.open}
	defer func() {
		src.Close()
	}()
	n, err := t.CreateFile(resourceForkPath(dst), src, e.fileMode(e.arc.cfg.DefaultFileMode()))
	if err != nil {
		return err
	}
	e.arc.td.ExtractedResourceForks++
	e.arc.td.ExtractionSize += n

	// Attributes apply to the primary file, not the fork pseudo-path.
	return e.setAttributes(dst, o, false)
}

// checkConflict fails with ErrPathExists when dst exists, or removes it
// when replace is set.
func checkConflict(t Target, dst string, replace bool) error {
	if _, err := t.Lstat(dst); err != nil {
		return nil
	}
	if !replace {
		return fmt.Errorf("%w: %s", ErrPathExists, dst)
	}
	return t.RemoveAll(dst)
}

// setAttributes restores the recorded permission bits and timestamps on
// path, subject to the ignore options. Symlink attributes go through the
// l-variants so the link itself is modified.
func (e *Entry) setAttributes(path string, o *extractOptions, symlink bool) error {
	t := e.arc.cfg.Target()

	if !o.ignorePermissions && e.Mode != nil {
		perm := e.Mode.Perm()
		if symlink {
			if err := t.Lchmod(path, perm); err != nil {
				return err
			}
		} else if err := t.Chmod(path, perm); err != nil {
			return err
		}
	}

	if !o.ignoreTimes {
		atime, mtime := e.Atime, e.Mtime
		// Either timestamp stands in for a missing counterpart.
		if atime.IsZero() {
			atime = mtime
		}
		if mtime.IsZero() {
			mtime = atime
		}
		if !mtime.IsZero() {
			if symlink {
				if err := t.Lchtimes(path, atime, mtime); err != nil {
					return err
				}
			} else if err := t.Chtimes(path, atime, mtime); err != nil {
				return err
			}
		}
	}
	return nil
}

// SetAttributes applies the entry's recorded permission bits and
// timestamps to an arbitrary path, without consuming the entry content.
func (e *Entry) SetAttributes(path string, opts ...ExtractOption) error {
	o := &extractOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return e.setAttributes(path, o, e.Type == PathTypeSymlink)
}

// fileMode returns the recorded permission bits or def when the archive
// did not record any.
func (e *Entry) fileMode(def fs.FileMode) fs.FileMode {
	if e.Mode != nil {
		return e.Mode.Perm()
	}
	return def
}
