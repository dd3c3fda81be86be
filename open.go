// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// openFunc creates an archive for a path.
type openFunc func(path string, cfg *Config) Archive

// archiveTypes maps file extensions to archive constructors. Sorted by
// extension length at init so the longest suffix wins, .tar.gz before
// .gz style collisions never pick the wrong reader.
var archiveTypes = []struct {
	extension string
	open      openFunc
}{
	{fileExtensionZip, func(p string, c *Config) Archive { return NewZip(p, c) }},
	{fileExtensionTar, func(p string, c *Config) Archive { return NewTar(p, c) }},
	{fileExtensionsTarGz[0], func(p string, c *Config) Archive { return NewTarGz(p, c) }},
	{fileExtensionsTarGz[1], func(p string, c *Config) Archive { return NewTarGz(p, c) }},
	{fileExtensionsTarBz2[0], func(p string, c *Config) Archive { return NewTarBz2(p, c) }},
	{fileExtensionsTarBz2[1], func(p string, c *Config) Archive { return NewTarBz2(p, c) }},
	{fileExtensionsTarXz[0], func(p string, c *Config) Archive { return NewTarXz(p, c) }},
	{fileExtensionsTarXz[1], func(p string, c *Config) Archive { return NewTarXz(p, c) }},
	{fileExtensionsTarZst[0], func(p string, c *Config) Archive { return NewTarZst(p, c) }},
	{fileExtensionsTarZst[1], func(p string, c *Config) Archive { return NewTarZst(p, c) }},
	{fileExtensionsTarLz4[0], func(p string, c *Config) Archive { return NewTarLz4(p, c) }},
	{fileExtensionsTarBr[0], func(p string, c *Config) Archive { return NewTarBr(p, c) }},
	{fileExtensionsTarSz[0], func(p string, c *Config) Archive { return NewTarSz(p, c) }},
	{fileExtensionsDiskImage[0], func(p string, c *Config) Archive { return NewDiskImage(p, c) }},
	{fileExtensionsDiskImage[1], func(p string, c *Config) Archive { return NewDiskImage(p, c) }},
	{fileExtensionsDiskImage[2], func(p string, c *Config) Archive { return NewDiskImage(p, c) }},
}

func init() {
	sort.SliceStable(archiveTypes, func(i, j int) bool {
		return len(archiveTypes[i].extension) > len(archiveTypes[j].extension)
	})
}

// ByFileExtension returns the archive reader for the path based on its
// file extension, matched case-insensitively, or nil when no reader
// handles it.
func ByFileExtension(path string, cfg *Config) Archive {
	lower := strings.ToLower(path)
	for _, at := range archiveTypes {
		if strings.HasSuffix(lower, at.extension) {
			return at.open(path, cfg)
		}
	}
	return nil
}

// OpenByFileExtension returns the archive reader for the path based on
// its file extension, failing with ErrUnknownArchiveType when no reader
// handles it.
func OpenByFileExtension(path string, cfg *Config) (Archive, error) {
	if a := ByFileExtension(path, cfg); a != nil {
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownArchiveType, path)
}

// Open returns an archive reader for the path, dispatching directories
// to Dir and files by extension.
func Open(path string, cfg *Config) (Archive, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return NewDir(path, cfg), nil
	}
	return OpenByFileExtension(path, cfg)
}
