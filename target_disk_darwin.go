// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

//go:build darwin

package archivefiles

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// lchmod modifies the permission bits on a target path without following
// symlinks. Only darwin exposes a working AT_SYMLINK_NOFOLLOW chmod.
func lchmod(path string, mode fs.FileMode) error {
	return unix.Fchmodat(unix.AT_FDCWD, path, uint32(mode.Perm()), unix.AT_SYMLINK_NOFOLLOW)
}

// canChmodSymlinks determines whether it is possible to change permission
// bits on symlinks for the current platform.
const canChmodSymlinks = true
