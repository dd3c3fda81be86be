// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"fmt"
	"io/fs"
)

// PathType classifies an archive entry. The type determines which
// consumption operations are valid and which metadata fields carry
// meaning.
type PathType int

const (
	// PathTypeFile is a regular file.
	PathTypeFile PathType = iota

	// PathTypeDirectory is a directory.
	PathTypeDirectory

	// PathTypeSymlink is a symbolic link. Its byte stream is the link
	// target.
	PathTypeSymlink

	// PathTypeResourceFork is a secondary named data stream sharing the
	// path of its primary file.
	PathTypeResourceFork
)

// String returns the lowercase name of the path type.
func (t PathType) String() string {
	switch t {
	case PathTypeFile:
		return "file"
	case PathTypeDirectory:
		return "directory"
	case PathTypeSymlink:
		return "symlink"
	case PathTypeResourceFork:
		return "resource-fork"
	}
	return fmt.Sprintf("PathType(%d)", int(t))
}

// pathTypeFromFileInfo classifies a filesystem object. Sockets, devices,
// FIFOs and other special files report ok == false and are omitted by
// walks.
func pathTypeFromFileInfo(fi fs.FileInfo) (PathType, bool) {
	switch {
	case fi.Mode().IsRegular():
		return PathTypeFile, true
	case fi.IsDir():
		return PathTypeDirectory, true
	case fi.Mode()&fs.ModeSymlink != 0:
		return PathTypeSymlink, true
	}
	return 0, false
}
