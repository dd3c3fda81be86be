// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"archive/zip"
	"io/fs"
	"strings"
)

// normalizePath converts backslashes to forward slashes and trims trailing
// slashes, keeping a bare "/" intact.
func normalizePath(raw string) string {
	p := strings.ReplaceAll(raw, `\`, "/")
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// splitVolumePath splits a normalized path on its first separator into the
// volume name and the volume relative remainder.
func splitVolumePath(p string) (string, string) {
	if i := strings.Index(p, "/"); i >= 0 {
		return p[:i], p[i+1:]
	}
	return p, ""
}

// resourceForkPath returns the pseudo path of the resource fork of path.
// The ..namedfork convention is the macOS alternate data stream surface;
// on filesystems without forks the path simply does not exist.
func resourceForkPath(path string) string {
	return path + "/..namedfork/rsrc"
}

// POSIX file type bits as encoded in the upper 16 bits of zip external
// attributes by unix archivers.
const (
	posixTypeMask    = 0xF000
	posixTypeDir     = 0x4000
	posixTypeSymlink = 0xA000
)

// zipPathType classifies a zip entry. If the external attributes carry a
// POSIX mode (nonzero file type nibble in the upper 16 bits) that wins;
// otherwise a trailing separator marks a directory and everything else is
// a file. Zip has no native symlink concept outside the POSIX convention,
// so symlinks are only detected on that path.
func zipPathType(fh *zip.FileHeader) (PathType, *fs.FileMode) {
	posix := fh.ExternalAttrs >> 16
	if posix&posixTypeMask != 0 {
		mode := fs.FileMode(posix & 0o777)
		switch posix & posixTypeMask {
		case posixTypeDir:
			m := mode | fs.ModeDir
			return PathTypeDirectory, &m
		case posixTypeSymlink:
			m := mode | fs.ModeSymlink
			return PathTypeSymlink, &m
		default:
			return PathTypeFile, &mode
		}
	}
	if strings.HasSuffix(fh.Name, "/") || strings.HasSuffix(fh.Name, `\`) {
		return PathTypeDirectory, nil
	}
	return PathTypeFile, nil
}
