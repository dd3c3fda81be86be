// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
)

// Dir reads a plain directory tree as an archive, one entry per path in
// sorted preorder.
type Dir struct {
	archive
}

// NewDir creates a new Dir over the directory at path.
func NewDir(path string, cfg *Config) *Dir {
	return &Dir{archive{path: path, cfg: cfg}}
}

// FileExtensions returns nil, directories are not extension-dispatched.
func (d *Dir) FileExtensions() []string {
	return nil
}

// Read walks the directory tree, delivering an entry per path. Regular
// files with a non-empty resource fork yield a second resource fork
// entry right after the file entry.
func (d *Dir) Read(ctx context.Context, cb EntryCallback) error {
	return d.runRead(ctx, "dir", func(ctx context.Context) error {
		err := d.readTree(ctx, cb, d.path, "", d.cfg.Subpaths())
		if errors.Is(err, errStopWalk) {
			return nil
		}
		return err
	})
}

// readTree walks the tree at root, prefixing entry paths with prefix
// when non-empty. Shared with the disk image reader, which walks each
// mounted volume with the volume name as prefix.
func (a *archive) readTree(ctx context.Context, cb EntryCallback, root, prefix string, subpaths []string) error {
	t := a.cfg.Target()
	return walkTree(ctx, t, root, subpaths, a.cfg.IgnoreUnreadableDirectories(), func(rel string, fi fs.FileInfo) (ReadAction, error) {
		typ, ok := pathTypeFromFileInfo(fi)
		if !ok {
			a.td.SkippedEntries++
			a.cfg.Logger().Debug("skipping special file", "path", rel)
			return ActionContinue, nil
		}

		raw := rel
		if prefix != "" {
			raw = prefix + "/" + rel
		}
		full := filepath.Join(root, filepath.FromSlash(rel))

		e := a.newTreeEntry(t, typ, raw, full, fi)
		action, err := a.deliver(cb, e)
		if err != nil || action != ActionContinue {
			return action, err
		}

		// A regular file may carry a resource fork alongside it.
		if typ == PathTypeFile {
			if ffi, err := t.Lstat(resourceForkPath(full)); err == nil && ffi.Size() > 0 {
				fe := a.forkEntry(t, raw, full, fi, ffi)
				if action, err := a.deliver(cb, fe); err != nil || action == ActionStop {
					return action, err
				}
			}
		}
		return ActionContinue, nil
	})
}

// newTreeEntry builds an entry for a walked filesystem path.
func (a *archive) newTreeEntry(t Target, typ PathType, raw, full string, fi fs.FileInfo) *Entry {
	mode := fi.Mode()
	size := fi.Size()
	if typ == PathTypeDirectory {
		size = 0
	}
	e := &Entry{
		Type:           typ,
		PathRaw:        raw,
		Size:           size,
		SizeCompressed: -1,
		Mode:           &mode,
		UID:            -1,
		GID:            -1,
		Mtime:          fi.ModTime(),
		Sys:            fi,
		arc:            a,
		path:           normalizePath(raw),
	}
	if uid, gid, atime, ok := statOwner(fi); ok {
		e.UID = uid
		e.GID = gid
		e.Atime = atime
	}
	switch typ {
	case PathTypeSymlink:
		e.readlink = func() ([]byte, error) {
			return t.Readlink(full)
		}
		if target, err := t.Readlink(full); err == nil {
			e.Size = int64(len(target))
		}
	case PathTypeFile:
		e.open = func() (io.ReadCloser, error) {
			return t.OpenRead(full)
		}
	}
	return e
}

// forkEntry builds the resource fork entry trailing a regular file.
func (a *archive) forkEntry(t Target, raw, full string, fi, ffi fs.FileInfo) *Entry {
	mode := fi.Mode()
	forkRaw := resourceForkPath(raw)
	return &Entry{
		Type:           PathTypeResourceFork,
		PathRaw:        forkRaw,
		Size:           ffi.Size(),
		SizeCompressed: -1,
		Mode:           &mode,
		UID:            -1,
		GID:            -1,
		Mtime:          fi.ModTime(),
		Sys:            ffi,
		arc:            a,
		path:           normalizePath(forkRaw),
		open: func() (io.ReadCloser, error) {
			return t.OpenRead(resourceForkPath(full))
		},
	}
}
