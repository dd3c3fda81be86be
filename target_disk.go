// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

// TargetDisk is the struct type that holds all information for interacting
// with the local filesystem.
type TargetDisk struct{}

// NewTargetDisk creates a new TargetDisk.
func NewTargetDisk() *TargetDisk {
	return &TargetDisk{}
}

// CreateDir creates a directory at the specified path with the specified
// mode, including missing parents. If the directory already exists,
// nothing is done.
func (d *TargetDisk) CreateDir(path string, mode fs.FileMode) error {
	if err := os.MkdirAll(path, mode.Perm()); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// CreateFile creates a file at the specified path with src as content,
// truncating any existing file. It returns the number of bytes written.
func (d *TargetDisk) CreateFile(path string, src io.Reader, mode fs.FileMode) (int64, error) {
	dstFile, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		dstFile.Close()
	}()

	n, err := io.Copy(dstFile, src)
	if err != nil {
		return n, fmt.Errorf("failed to write file: %w", err)
	}
	return n, nil
}

// CreateSymlink creates a symbolic link at path pointing at target. Go
// strings carry arbitrary bytes, so non-UTF8 targets survive unmodified.
func (d *TargetDisk) CreateSymlink(path string, target []byte) error {
	if err := os.Symlink(string(target), path); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// Lstat returns the FileInfo structure describing the named file without
// following symlinks.
func (d *TargetDisk) Lstat(path string) (fs.FileInfo, error) {
	return os.Lstat(path)
}

// Stat returns the FileInfo structure describing the named file.
func (d *TargetDisk) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadDir returns the entries of a directory sorted by name.
func (d *TargetDisk) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

// Readlink returns the raw target bytes of a symbolic link.
func (d *TargetDisk) Readlink(path string) ([]byte, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return nil, err
	}
	return []byte(target), nil
}

// OpenRead opens the named file for reading.
func (d *TargetDisk) OpenRead(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Remove removes the named file or empty directory.
func (d *TargetDisk) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes path and any children it contains.
func (d *TargetDisk) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Chmod changes the mode of the named file to mode.
func (d *TargetDisk) Chmod(path string, mode fs.FileMode) error {
	return os.Chmod(path, mode.Perm())
}

// Lchmod changes the mode of a symlink itself where the platform supports
// it, and is a silent no-op where it does not.
func (d *TargetDisk) Lchmod(path string, mode fs.FileMode) error {
	if canChmodSymlinks {
		return lchmod(path, mode)
	}
	return nil
}

// Chtimes changes the access and modification times of the named file.
func (d *TargetDisk) Chtimes(path string, atime, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

// Lchtimes changes the access and modification times of a symlink itself
// where the platform supports it, and is a silent no-op where it does not.
func (d *TargetDisk) Lchtimes(path string, atime, mtime time.Time) error {
	if canMaintainSymlinkTimestamps {
		return lchtimes(path, atime, mtime)
	}
	return nil
}
