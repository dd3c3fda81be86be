// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package archivefiles

import (
	"fmt"
	"runtime"
	"time"
)

// lchtimes modifies the access and modified timestamps on a target path
// without following symlinks. This capability is only available on unix as
// of now.
func lchtimes(_ string, _, _ time.Time) error {
	return fmt.Errorf("lchtimes is not supported on this platform (%s)", runtime.GOOS)
}

// canMaintainSymlinkTimestamps determines whether it is possible to change
// timestamps on symlinks for the current platform. See the unix variant
// for details; on this platform symlink timestamps are left as created.
const canMaintainSymlinkTimestamps = false
