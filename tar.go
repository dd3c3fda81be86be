// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// fileExtensionTar is the file extension of uncompressed tar archives.
const fileExtensionTar = ".tar"

// decompressionFunc wraps a source reader with a decompression stage.
type decompressionFunc func(src io.Reader) (io.Reader, error)

// Tar reads tar archives, optionally through a decompression stage.
// Entries are delivered in archive order, which for tar is the only
// order there is.
type Tar struct {
	archive
	typ        string
	extensions []string
	decompress decompressionFunc
}

// NewTar creates a new Tar over the uncompressed tar archive at path.
func NewTar(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar", []string{fileExtensionTar}, nil)
}

func newTar(path string, cfg *Config, typ string, extensions []string, decompress decompressionFunc) *Tar {
	return &Tar{
		archive:    archive{path: path, cfg: cfg},
		typ:        typ,
		extensions: extensions,
		decompress: decompress,
	}
}

// FileExtensions returns the file extensions this archive type handles.
func (t *Tar) FileExtensions() []string {
	return t.extensions
}

// Read iterates the tar entries in archive order. Entry types other than
// regular files, directories and symlinks are skipped. Returning
// ActionSkipDescent behaves like ActionContinue, tar has no tree to
// prune.
func (t *Tar) Read(ctx context.Context, cb EntryCallback) error {
	return t.runRead(ctx, t.typ, func(ctx context.Context) error {
		f, err := os.Open(t.path)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() {
			f.Close()
		}()

		var src io.Reader = f
		if t.decompress != nil {
			src, err = t.decompress(f)
			if err != nil {
				return fmt.Errorf("failed to open decompression stream: %w", err)
			}
			if c, isCloser := src.(io.Closer); isCloser {
				defer func() {
					c.Close()
				}()
			}
		}

		tr := tar.NewReader(src)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			hdr, err := tr.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to read tar header: %w", err)
			}

			e, ok := t.newEntry(hdr, tr)
			if !ok {
				t.td.SkippedEntries++
				t.cfg.Logger().Debug("skipping tar entry", "path", hdr.Name, "typeflag", hdr.Typeflag)
				continue
			}
			action, err := t.deliver(cb, e)
			if err != nil {
				return err
			}
			if action == ActionStop {
				return nil
			}
		}
	})
}

// newEntry builds an entry from a tar header, or reports false for entry
// types that are not files, directories or symlinks.
func (t *Tar) newEntry(hdr *tar.Header, tr *tar.Reader) (*Entry, bool) {
	var typ PathType
	switch hdr.Typeflag {
	case tar.TypeReg:
		typ = PathTypeFile
	case tar.TypeDir:
		typ = PathTypeDirectory
	case tar.TypeSymlink:
		typ = PathTypeSymlink
	default:
		return nil, false
	}

	mode := fs.FileMode(hdr.Mode).Perm()
	e := &Entry{
		Type:           typ,
		PathRaw:        hdr.Name,
		Size:           hdr.Size,
		SizeCompressed: -1,
		Mode:           &mode,
		UID:            hdr.Uid,
		GID:            hdr.Gid,
		Uname:          hdr.Uname,
		Gname:          hdr.Gname,
		Atime:          hdr.AccessTime,
		Mtime:          hdr.ModTime,
		Sys:            hdr,
		arc:            &t.archive,
		path:           normalizePath(hdr.Name),
	}
	switch typ {
	case PathTypeDirectory:
		e.Size = 0
	case PathTypeSymlink:
		// The link target is the content, its byte length is the size.
		target := []byte(hdr.Linkname)
		e.Size = int64(len(target))
		e.readlink = func() ([]byte, error) {
			return target, nil
		}
	case PathTypeFile:
		e.open = func() (io.ReadCloser, error) {
			return &noopReaderCloser{tr}, nil
		}
	}
	return e, true
}
