// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

// Package archivefiles provides a uniform way to read heterogeneous
// archive containers (directory trees, tar and its compressed variants,
// zip, and mountable disk images) through a single [Archive] interface.
//
// Reading an archive yields a lazy sequence of [Entry] values. Each entry
// may be streamed, buffered, or extracted to disk exactly once, with
// permission bits, timestamps, symbolic links, and resource forks restored
// faithfully. Directory timestamps are applied after all of a directory's
// descendants have been written, so extracting children does not clobber
// them.
//
// Configuration is done using [Config] options, which can set the logger,
// the telemetry hook, the extraction [Target], and the volume [Mounter].
// The collection of [TelemetryData] happens during every read.
package archivefiles
