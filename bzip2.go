// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// fileExtensionsTarBz2 are the file extensions of bzip2 compressed tar
// archives.
var fileExtensionsTarBz2 = []string{".tar.bz2", ".tbz2"}

// NewTarBz2 creates a new Tar over the bzip2 compressed tar archive at
// path.
func NewTarBz2(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.bz2", fileExtensionsTarBz2, func(src io.Reader) (io.Reader, error) {
		return bzip2.NewReader(src, nil)
	})
}
