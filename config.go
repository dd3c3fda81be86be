// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern.
type ConfigOption func(*Config)

// Config holds the adjustable behavior shared by all archive types.
//
// The configuration options can be adjusted using the option pattern
// style. Options that only apply to one archive type are documented as
// such and are ignored by the other types.
type Config struct {
	// defaultDirMode is the mode for directories created during
	// extraction, including parents not described by any entry
	// (respecting umask)
	defaultDirMode fs.FileMode

	// defaultFileMode is the mode for extracted files whose entry carries
	// no mode (respecting umask)
	defaultFileMode fs.FileMode

	// ignoreUnreadableDirectories tolerates permission errors when listing
	// directories during a walk, treating the directory as childless. This
	// applies only to directory and disk image archives.
	ignoreUnreadableDirectories bool

	// logger stream for reads and extractions
	logger logger

	// mounter attaches disk images. This applies only to disk image
	// archives.
	mounter Mounter

	// subpaths restricts a walk to an ordered list of top level subpaths.
	// This applies only to directory archives.
	subpaths []string

	// target is the filesystem the archive is extracted to
	target Target

	// telemetryHook is a function to consume telemetry data after a
	// finished read. Important: do not adjust this value after a read
	// started.
	telemetryHook TelemetryHook
}

// DefaultDirMode returns the mode for directories created during
// extraction. (respecting umask)
func (c *Config) DefaultDirMode() fs.FileMode {
	return c.defaultDirMode
}

// DefaultFileMode returns the mode for extracted files whose entry carries
// no mode. (respecting umask)
func (c *Config) DefaultFileMode() fs.FileMode {
	return c.defaultFileMode
}

// IgnoreUnreadableDirectories returns true if unreadable directories are
// treated as childless during walks instead of failing the read.
func (c *Config) IgnoreUnreadableDirectories() bool {
	return c.ignoreUnreadableDirectories
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// Mounter returns the volume mounter for disk images.
func (c *Config) Mounter() Mounter {
	if c.mounter == nil {
		return HdiutilMounter{}
	}
	return c.mounter
}

// Subpaths returns the ordered top level subpaths a directory archive is
// restricted to, or nil for the whole tree.
func (c *Config) Subpaths() []string {
	return c.subpaths
}

// Target returns the filesystem the archive is extracted to.
func (c *Config) Target() Target {
	return c.target
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return func(ctx context.Context, d *TelemetryData) {
			// noop
		}
	}
	return c.telemetryHook
}

const (
	defaultDirMode                     = 0755  // default directory permissions rwxr-xr-x
	defaultFileMode                    = 0644  // default file permissions rw-r--r--
	defaultIgnoreUnreadableDirectories = false // propagate listing errors
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {
	config := &Config{
		defaultDirMode:              defaultDirMode,
		defaultFileMode:             defaultFileMode,
		ignoreUnreadableDirectories: defaultIgnoreUnreadableDirectories,
		logger:                      defaultLogger,
		target:                      NewTargetDisk(),
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithDefaultDirMode options pattern function to set the mode for
// directories created during extraction. (respecting umask)
func WithDefaultDirMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.defaultDirMode = mode
	}
}

// WithDefaultFileMode options pattern function to set the mode for
// extracted files whose entry carries no mode. (respecting umask)
func WithDefaultFileMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.defaultFileMode = mode
	}
}

// WithIgnoreUnreadableDirectories options pattern function to tolerate
// permission errors when listing directories during a walk. The directory
// is treated as childless. This applies only to directory and disk image
// archives.
func WithIgnoreUnreadableDirectories(ignore bool) ConfigOption {
	return func(c *Config) {
		c.ignoreUnreadableDirectories = ignore
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMounter options pattern function to set the volume mounter used for
// disk images. This applies only to disk image archives.
func WithMounter(mounter Mounter) ConfigOption {
	return func(c *Config) {
		c.mounter = mounter
	}
}

// WithSubpaths options pattern function to restrict a directory archive to
// an ordered list of top level subpaths, each walked independently. This
// applies only to directory archives.
func WithSubpaths(subpaths ...string) ConfigOption {
	return func(c *Config) {
		c.subpaths = append(c.subpaths, subpaths...)
	}
}

// WithTarget options pattern function to set the filesystem the archive is
// extracted to.
func WithTarget(target Target) ConfigOption {
	return func(c *Config) {
		c.target = target
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook],
// which is called after every read.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
