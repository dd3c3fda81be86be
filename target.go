// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"
	"io/fs"
	"time"
)

// Target specifies all functions that are needed to walk directory trees
// and to materialize entries on a filesystem.
type Target interface {
	// CreateDir creates a directory at the specified path with the
	// specified mode, including missing parents. If the directory already
	// exists, nothing is done.
	CreateDir(path string, mode fs.FileMode) error

	// CreateFile creates a file at the specified path with src as content,
	// truncating any existing file. It returns the number of bytes
	// written.
	CreateFile(path string, src io.Reader, mode fs.FileMode) (int64, error)

	// CreateSymlink creates a symbolic link at path pointing at target.
	// The target is raw bytes to tolerate non-UTF8 link targets.
	CreateSymlink(path string, target []byte) error

	// Lstat see docs for os.Lstat. Does not follow symlinks.
	Lstat(path string) (fs.FileInfo, error)

	// Stat see docs for os.Stat.
	Stat(path string) (fs.FileInfo, error)

	// ReadDir returns the entries of a directory sorted by name.
	ReadDir(path string) ([]fs.DirEntry, error)

	// Readlink returns the raw target bytes of a symbolic link.
	Readlink(path string) ([]byte, error)

	// OpenRead opens the named file for reading.
	OpenRead(path string) (io.ReadCloser, error)

	// Remove removes the named file or empty directory.
	Remove(path string) error

	// RemoveAll removes path and any children it contains.
	RemoveAll(path string) error

	// Chmod see docs for os.Chmod. Main purpose is to restore the
	// permission bits of a file or directory.
	Chmod(path string, mode fs.FileMode) error

	// Lchmod changes the mode of a symlink itself. A no-op on platforms
	// that cannot change symlink modes.
	Lchmod(path string, mode fs.FileMode) error

	// Chtimes see docs for os.Chtimes. Main purpose is to restore the
	// timestamps of a file or directory.
	Chtimes(path string, atime, mtime time.Time) error

	// Lchtimes changes the timestamps of a symlink itself. A no-op on
	// platforms that cannot change symlink timestamps.
	Lchtimes(path string, atime, mtime time.Time) error
}
