// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"encoding/json"
	"time"
)

// now is a function pointer that returns time.Now to the caller.
var now = time.Now

// TelemetryData holds all telemetry data of one archive read.
type TelemetryData struct {
	// ArchiveType is the type of the archive that was read.
	ArchiveType string `json:"archive_type"`

	// EntriesDelivered is the number of entries handed to the callback.
	EntriesDelivered int64 `json:"entries_delivered"`

	// SkippedEntries is the number of items omitted from delivery, such as
	// unsupported file types and zip sidecar metadata.
	SkippedEntries int64 `json:"skipped_entries"`

	// ExtractedFiles is the number of extracted files.
	ExtractedFiles int64 `json:"extracted_files"`

	// ExtractedDirs is the number of extracted directories.
	ExtractedDirs int64 `json:"extracted_dirs"`

	// ExtractedSymlinks is the number of extracted symlinks.
	ExtractedSymlinks int64 `json:"extracted_symlinks"`

	// ExtractedResourceForks is the number of extracted resource forks.
	ExtractedResourceForks int64 `json:"extracted_resource_forks"`

	// ExtractionSize is the byte count written by extractions.
	ExtractionSize int64 `json:"extraction_size"`

	// ReadDuration is the time the read took.
	ReadDuration time.Duration `json:"read_duration"`
}

// String returns a string representation of [TelemetryData].
func (d TelemetryData) String() string {
	b, _ := json.Marshal(d)
	return string(b)
}

// TelemetryHook is a function type that consumes [TelemetryData] after a
// read has finished, which can be used to submit the data to a telemetry
// service, for example.
type TelemetryHook func(context.Context, *TelemetryData)

// captureReadDuration captures the duration of the read.
func captureReadDuration(d *TelemetryData, start time.Time) {
	stop := now()
	d.ReadDuration = stop.Sub(start)
}
