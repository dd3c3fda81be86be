// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"bytes"
	"io"
	"io/fs"
	"time"
)

// Entry describes a single path inside an archive. Entries are delivered
// to the read callback one at a time and are only valid for the duration
// of that callback. The content of an entry can be consumed at most once,
// through exactly one of Open, ReadAll, or Extract.
type Entry struct {
	// Type is the kind of path this entry describes.
	Type PathType

	// PathRaw is the path as stored in the archive, before volume
	// prefixing and normalization.
	PathRaw string

	// Size is the content size in bytes. For symlinks it is the byte
	// length of the link target, for directories it is zero.
	Size int64

	// SizeCompressed is the stored size in bytes, or -1 when the format
	// does not report one.
	SizeCompressed int64

	// Mode holds the permission bits when the archive records them, nil
	// otherwise.
	Mode *fs.FileMode

	// UID and GID are the numeric owner, or -1 when unknown.
	UID int
	GID int

	// Uname and Gname are the symbolic owner names, empty when unknown.
	Uname string
	Gname string

	// Atime and Mtime are the access and modification times, zero when
	// the archive does not record them.
	Atime time.Time
	Mtime time.Time

	// Sys holds the underlying format-specific header, if any.
	Sys any

	arc      *archive
	path     string
	open     func() (io.ReadCloser, error)
	readlink func() ([]byte, error)
	active   bool
	consumed bool
}

// Path returns the normalized entry path, including the volume name for
// archives that have named volumes.
func (e *Entry) Path() string {
	return e.path
}

// HasNamedVolume reports whether the entry path starts with a volume name.
func (e *Entry) HasNamedVolume() bool {
	return e.arc != nil && e.arc.namedVolumes
}

// VolumeName returns the volume name prefix of the entry path, or the
// empty string for archives without named volumes.
func (e *Entry) VolumeName() string {
	if !e.HasNamedVolume() {
		return ""
	}
	name, _ := splitVolumePath(e.path)
	return name
}

// VolumePath returns the entry path with the volume name removed. For
// archives without named volumes it equals Path.
func (e *Entry) VolumePath() string {
	if !e.HasNamedVolume() {
		return e.path
	}
	_, rest := splitVolumePath(e.path)
	return rest
}

// consume marks the entry content as used. It fails if the entry is no
// longer active or was already consumed.
func (e *Entry) consume() error {
	if !e.active {
		return ErrEntryInactive
	}
	if e.consumed {
		return ErrEntryConsumed
	}
	e.consumed = true
	return nil
}

// Open returns a reader over the entry content. For directories it
// returns nil with no error, as directories have no content. For symlinks
// the reader yields the raw link target bytes. The underlying archive
// data is not touched until the first Read call, so an unread stream
// costs nothing.
func (e *Entry) Open() (io.ReadCloser, error) {
	if err := e.consume(); err != nil {
		return nil, err
	}
	switch e.Type {
	case PathTypeDirectory:
		return nil, nil
	case PathTypeSymlink:
		readlink := e.readlink
		return &lazyReadCloser{open: func() (io.ReadCloser, error) {
			target, err := readlink()
			if err != nil {
				return nil, err
			}
			return io.NopCloser(bytes.NewReader(target)), nil
		}}, nil
	default:
		return &lazyReadCloser{open: e.open}, nil
	}
}

// ReadAll consumes the entry and returns its full content. For
// directories it returns nil with no error.
func (e *Entry) ReadAll() ([]byte, error) {
	rc, err := e.Open()
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, nil
	}
	defer func() {
		rc.Close()
	}()
	return io.ReadAll(rc)
}

// lazyReadCloser defers opening the underlying reader until the first
// Read call. Close without a prior Read never opens the source.
type lazyReadCloser struct {
	open func() (io.ReadCloser, error)
	rc   io.ReadCloser
	err  error
}

func (l *lazyReadCloser) Read(p []byte) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	if l.rc == nil {
		rc, err := l.open()
		if err != nil {
			l.err = err
			return 0, err
		}
		l.rc = rc
	}
	return l.rc.Read(p)
}

func (l *lazyReadCloser) Close() error {
	if l.rc == nil {
		return nil
	}
	return l.rc.Close()
}

// noopReaderCloser adapts an io.Reader to an io.ReadCloser with a no-op
// Close, for streams whose lifetime is owned by the archive reader.
type noopReaderCloser struct {
	io.Reader
}

// Close is a no-op.
func (n *noopReaderCloser) Close() error {
	return nil
}
