// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"errors"
	"path/filepath"
)

// fileExtensionsDiskImage are the file extensions of mountable disk
// images.
var fileExtensionsDiskImage = []string{".dmg", ".iso", ".cdr"}

// AttachOptions configure how a disk image is attached.
type AttachOptions struct {
	// ReadOnly attaches the image without write access.
	ReadOnly bool

	// NoBrowse hides mounted volumes from the desktop.
	NoBrowse bool

	// AutoEject requests the image be ejected when the attaching process
	// exits. Mounters that cannot arrange this accept and ignore it.
	AutoEject bool
}

// MountHandle is an attached disk image.
type MountHandle interface {
	// Volumes returns the mount points of the attached volumes.
	Volumes() []string

	// Eject detaches the image. Eject is idempotent.
	Eject(ctx context.Context) error
}

// Mounter attaches disk images to the filesystem.
type Mounter interface {
	// Attach mounts the disk image at path and returns a handle to its
	// volumes.
	Attach(ctx context.Context, path string, opts *AttachOptions) (MountHandle, error)
}

// DiskImage reads mountable disk images by attaching them and walking
// each mounted volume. Entry paths are prefixed with the volume name.
type DiskImage struct {
	archive
}

// NewDiskImage creates a new DiskImage over the disk image at path.
func NewDiskImage(path string, cfg *Config) *DiskImage {
	return &DiskImage{archive{path: path, cfg: cfg, namedVolumes: true}}
}

// FileExtensions returns the file extensions this archive type handles.
func (d *DiskImage) FileExtensions() []string {
	return fileExtensionsDiskImage
}

// Read attaches the image and walks each volume in mount order. The
// image is ejected before Read returns, on success and failure alike.
func (d *DiskImage) Read(ctx context.Context, cb EntryCallback) error {
	return d.runRead(ctx, "diskimage", func(ctx context.Context) error {
		handle, err := d.cfg.Mounter().Attach(ctx, d.path, &AttachOptions{
			ReadOnly:  true,
			NoBrowse:  true,
			AutoEject: true,
		})
		if err != nil {
			return err
		}

		walkErr := d.readVolumes(ctx, cb, handle.Volumes())
		ejectErr := handle.Eject(ctx)
		if walkErr != nil {
			if errors.Is(walkErr, errStopWalk) {
				walkErr = nil
			}
			return walkErr
		}
		return ejectErr
	})
}

func (d *DiskImage) readVolumes(ctx context.Context, cb EntryCallback, volumes []string) error {
	for _, mount := range volumes {
		// The volume name prefixes every entry path on this volume.
		err := d.readTree(ctx, cb, mount, filepath.Base(mount), nil)
		if err != nil {
			return err
		}
	}
	return nil
}
