// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/andybalholm/brotli"
)

// fileExtensionsTarBr are the file extensions of brotli compressed tar
// archives.
var fileExtensionsTarBr = []string{".tar.br"}

// NewTarBr creates a new Tar over the brotli compressed tar archive at
// path.
func NewTarBr(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.br", fileExtensionsTarBr, func(src io.Reader) (io.Reader, error) {
		return brotli.NewReader(src), nil
	})
}
