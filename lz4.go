// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// fileExtensionsTarLz4 are the file extensions of lz4 compressed tar
// archives.
var fileExtensionsTarLz4 = []string{".tar.lz4"}

// NewTarLz4 creates a new Tar over the lz4 compressed tar archive at
// path.
func NewTarLz4(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.lz4", fileExtensionsTarLz4, func(src io.Reader) (io.Reader, error) {
		return lz4.NewReader(src), nil
	})
}
