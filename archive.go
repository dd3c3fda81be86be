// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"sort"
)

// ReadAction is returned by the read callback to steer iteration.
type ReadAction int

const (
	// ActionContinue proceeds to the next entry.
	ActionContinue ReadAction = iota

	// ActionStop ends the read early without error.
	ActionStop

	// ActionSkipDescent skips the children of a directory entry. On
	// formats with a flat entry list it behaves like ActionContinue.
	ActionSkipDescent
)

// EntryCallback receives each entry during a read. The entry is only
// valid until the callback returns.
type EntryCallback func(e *Entry) (ReadAction, error)

// Archive is implemented by every archive format reader.
type Archive interface {
	// Read iterates the archive entries, delivering each to cb in
	// archive order. Directory attributes registered by Extract are
	// applied once iteration finishes successfully.
	Read(ctx context.Context, cb EntryCallback) error

	// Path returns the archive file path.
	Path() string

	// HasNamedVolumes reports whether entry paths are prefixed with a
	// volume name.
	HasNamedVolumes() bool

	// FileExtensions returns the file extensions this archive type
	// handles, or nil when it is not extension-dispatched.
	FileExtensions() []string
}

// deferredAttributes holds attribute state for a directory whose
// permissions and timestamps must be applied after its children exist.
type deferredAttributes struct {
	path  string
	entry *Entry
	opts  *extractOptions
}

// archive carries the state shared by all format readers.
type archive struct {
	path         string
	cfg          *Config
	namedVolumes bool
	reading      bool
	deferred     map[string]*deferredAttributes
	td           *TelemetryData
}

// Path returns the archive file path.
func (a *archive) Path() string {
	return a.path
}

// HasNamedVolumes reports whether entry paths are prefixed with a volume
// name.
func (a *archive) HasNamedVolumes() bool {
	return a.namedVolumes
}

// runRead wraps a format discover function with the shared read
// lifecycle: the reentrancy guard, telemetry capture, and the deferred
// attribute flush on success.
func (a *archive) runRead(ctx context.Context, typ string, discover func(ctx context.Context) error) error {
	if a.reading {
		return ErrReadInProgress
	}
	a.reading = true
	a.deferred = make(map[string]*deferredAttributes)
	td := &TelemetryData{ArchiveType: typ}
	a.td = td

	// Registered first so it runs after the telemetry hook fires.
	defer func() {
		a.reading = false
		a.deferred = nil
		a.td = nil
	}()
	defer a.cfg.TelemetryHook()(ctx, td)
	defer captureReadDuration(td, now())

	a.cfg.Logger().Debug("reading archive", "path", a.path, "type", typ)
	if err := discover(ctx); err != nil {
		return err
	}
	return a.applyDeferredAttributes()
}

// deliver invokes the callback with the entry marked active, counting it
// in the telemetry data.
func (a *archive) deliver(cb EntryCallback, e *Entry) (ReadAction, error) {
	a.td.EntriesDelivered++
	e.active = true
	action, err := cb(e)
	e.active = false
	return action, err
}

// afterReadSetAttributes registers directory attributes to be applied
// once the read finishes. A later registration for the same resolved
// path replaces the earlier one.
func (a *archive) afterReadSetAttributes(resolved string, e *Entry, opts *extractOptions, path string) error {
	if a.deferred == nil {
		return ErrNoActiveRead
	}
	a.deferred[resolved] = &deferredAttributes{
		path:  path,
		entry: e,
		opts:  opts,
	}
	return nil
}

// afterReadSetAttributesRemove drops any pending registration for the
// resolved path. Extracting over a previously registered directory must
// not resurrect stale attributes.
func (a *archive) afterReadSetAttributesRemove(resolved string) error {
	if a.deferred == nil {
		return ErrNoActiveRead
	}
	delete(a.deferred, resolved)
	return nil
}

// applyDeferredAttributes flushes registered directory attributes,
// deepest paths first so parent timestamps are not disturbed by writes
// inside their children.
func (a *archive) applyDeferredAttributes() error {
	keys := make([]string, 0, len(a.deferred))
	for k := range a.deferred {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] > keys[j]
	})
	for _, k := range keys {
		d := a.deferred[k]
		if err := d.entry.setAttributes(d.path, d.opts, false); err != nil {
			return err
		}
	}
	return nil
}
