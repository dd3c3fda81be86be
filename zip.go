// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"strings"
)

// fileExtensionZip is the file extension of zip archives.
const fileExtensionZip = ".zip"

// macResourcePrefix marks the AppleDouble sidecar tree some macOS zip
// tools add. Those entries duplicate metadata, not content.
const macResourcePrefix = "__MACOSX/"

// Zip reads zip archives in central directory order.
type Zip struct {
	archive
}

// NewZip creates a new Zip over the zip archive at path.
func NewZip(path string, cfg *Config) *Zip {
	return &Zip{archive{path: path, cfg: cfg}}
}

// FileExtensions returns the file extensions this archive type handles.
func (z *Zip) FileExtensions() []string {
	return []string{fileExtensionZip}
}

// Read iterates the zip entries in central directory order. Entries
// under __MACOSX/ are skipped. Returning ActionSkipDescent behaves like
// ActionContinue, zip has no tree to prune.
func (z *Zip) Read(ctx context.Context, cb EntryCallback) error {
	return z.runRead(ctx, "zip", func(ctx context.Context) error {
		r, err := zip.OpenReader(z.path)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() {
			r.Close()
		}()

		for _, zf := range r.File {
			if err := ctx.Err(); err != nil {
				return err
			}
			if strings.HasPrefix(zf.Name, macResourcePrefix) {
				z.td.SkippedEntries++
				z.cfg.Logger().Debug("skipping sidecar entry", "path", zf.Name)
				continue
			}
			action, err := z.deliver(cb, z.newEntry(zf))
			if err != nil {
				return err
			}
			if action == ActionStop {
				return nil
			}
		}
		return nil
	})
}

// newEntry builds an entry from a zip file header. The path type comes
// from the external attributes when the entry was made on a posix
// system, with the trailing slash convention as fallback.
func (z *Zip) newEntry(zf *zip.File) *Entry {
	typ, mode := zipPathType(&zf.FileHeader)
	e := &Entry{
		Type:           typ,
		PathRaw:        zf.Name,
		Size:           int64(zf.UncompressedSize64),
		SizeCompressed: int64(zf.CompressedSize64),
		Mode:           mode,
		UID:            -1,
		GID:            -1,
		Mtime:          zf.Modified,
		Sys:            &zf.FileHeader,
		arc:            &z.archive,
		path:           normalizePath(zf.Name),
	}
	switch typ {
	case PathTypeDirectory:
		e.Size = 0
	case PathTypeSymlink:
		// The link target is stored as the entry content.
		e.readlink = func() ([]byte, error) {
			rc, err := zf.Open()
			if err != nil {
				return nil, err
			}
			defer func() {
				rc.Close()
			}()
			return io.ReadAll(rc)
		}
	case PathTypeFile:
		e.open = func() (io.ReadCloser, error) {
			return zf.Open()
		}
	}
	return e
}
