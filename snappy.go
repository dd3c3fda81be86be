// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/golang/snappy"
)

// fileExtensionsTarSz are the file extensions of snappy compressed tar
// archives.
var fileExtensionsTarSz = []string{".tar.sz"}

// NewTarSz creates a new Tar over the snappy compressed tar archive at
// path.
func NewTarSz(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.sz", fileExtensionsTarSz, func(src io.Reader) (io.Reader, error) {
		return snappy.NewReader(src), nil
	})
}
