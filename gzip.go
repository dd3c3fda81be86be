// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// fileExtensionsTarGz are the file extensions of gzip compressed tar
// archives.
var fileExtensionsTarGz = []string{".tar.gz", ".tgz"}

// NewTarGz creates a new Tar over the gzip compressed tar archive at
// path.
func NewTarGz(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.gz", fileExtensionsTarGz, func(src io.Reader) (io.Reader, error) {
		return gzip.NewReader(src)
	})
}
