// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// HdiutilMounter attaches disk images with the macOS hdiutil tool.
type HdiutilMounter struct{}

// Attach mounts the disk image at path with hdiutil attach. AutoEject is
// accepted and ignored, hdiutil has no flag for it.
func (m HdiutilMounter) Attach(ctx context.Context, path string, opts *AttachOptions) (MountHandle, error) {
	args := []string{"attach", "-noautoopen"}
	if opts != nil && opts.ReadOnly {
		args = append(args, "-readonly")
	}
	if opts != nil && opts.NoBrowse {
		args = append(args, "-nobrowse")
	}
	args = append(args, path)

	out, err := exec.CommandContext(ctx, "hdiutil", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("hdiutil attach failed: %w", err)
	}

	handle := &hdiutilHandle{}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Split(line, "\t")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		if len(fields) == 0 || fields[0] == "" {
			continue
		}
		if handle.device == "" && strings.HasPrefix(fields[0], "/dev/") {
			handle.device = fields[0]
		}
		if last := fields[len(fields)-1]; strings.HasPrefix(last, "/") && !strings.HasPrefix(last, "/dev/") {
			handle.volumes = append(handle.volumes, last)
		}
	}
	if handle.device == "" {
		return nil, fmt.Errorf("hdiutil attach: no device in output")
	}
	return handle, nil
}

// hdiutilHandle is an hdiutil-attached image.
type hdiutilHandle struct {
	device  string
	volumes []string
	ejected bool
}

// Volumes returns the mount points of the attached volumes.
func (h *hdiutilHandle) Volumes() []string {
	return h.volumes
}

// Eject detaches the image with hdiutil detach. Eject is idempotent.
func (h *hdiutilHandle) Eject(ctx context.Context) error {
	if h.ejected {
		return nil
	}
	if err := exec.CommandContext(ctx, "hdiutil", "detach", h.device).Run(); err != nil {
		return fmt.Errorf("hdiutil detach failed: %w", err)
	}
	h.ejected = true
	return nil
}
