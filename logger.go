// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

// logger is an interface that defines the logging functions that are used
// while reading and extracting archives.
type logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}
