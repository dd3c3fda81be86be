// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

//go:build linux

package archivefiles

import (
	"io/fs"
	"syscall"
	"time"
)

// statOwner extracts the numeric owner and access time from the
// platform stat data, when available.
func statOwner(fi fs.FileInfo) (uid, gid int, atime time.Time, ok bool) {
	st, isStat := fi.Sys().(*syscall.Stat_t)
	if !isStat {
		return -1, -1, time.Time{}, false
	}
	return int(st.Uid), int(st.Gid), time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)), true
}
