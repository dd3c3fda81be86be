// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

//go:build !linux && !darwin

package archivefiles

import (
	"io/fs"
	"time"
)

// statOwner extracts the numeric owner and access time from the
// platform stat data, when available.
func statOwner(_ fs.FileInfo) (uid, gid int, atime time.Time, ok bool) {
	return -1, -1, time.Time{}, false
}
