// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import "errors"

var (
	// ErrReadInProgress is returned by [Archive.Read] when a read is
	// already running on the same archive instance. Reads are not
	// reentrant; sequential reads are fine.
	ErrReadInProgress = errors.New("read already in progress")

	// ErrNoActiveRead is returned when the deferred attribute registry is
	// accessed outside an active read. This indicates a caller bug.
	ErrNoActiveRead = errors.New("no read in progress")

	// ErrEntryInactive is returned when an entry is consumed outside the
	// synchronous extent of its callback. This indicates a caller bug.
	ErrEntryInactive = errors.New("entry is no longer active")

	// ErrEntryConsumed is returned by the second consumption of an entry.
	// Exactly one of Open, ReadAll or Extract may run, exactly once.
	ErrEntryConsumed = errors.New("entry already consumed")

	// ErrPathExists is returned when an extraction destination already
	// exists and replacing was not requested.
	ErrPathExists = errors.New("path already exists")

	// ErrNoResourceForkTarget is returned when a resource fork is
	// extracted but no regular file exists at the destination to attach
	// the fork to.
	ErrNoResourceForkTarget = errors.New("resource fork target does not exist")

	// ErrUnknownArchiveType is returned when no archive type claims the
	// file extension of a path.
	ErrUnknownArchiveType = errors.New("archive type not supported")
)
