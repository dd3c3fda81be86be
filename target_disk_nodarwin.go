// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

//go:build !darwin

package archivefiles

import (
	"fmt"
	"io/fs"
	"runtime"
)

// lchmod modifies the permission bits on a target path without following
// symlinks. Only darwin exposes a working AT_SYMLINK_NOFOLLOW chmod.
func lchmod(_ string, _ fs.FileMode) error {
	return fmt.Errorf("lchmod is not supported on this platform (%s)", runtime.GOOS)
}

// canChmodSymlinks determines whether it is possible to change permission
// bits on symlinks for the current platform.
const canChmodSymlinks = false
