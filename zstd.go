// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// fileExtensionsTarZst are the file extensions of zstandard compressed
// tar archives.
var fileExtensionsTarZst = []string{".tar.zst", ".tzst"}

// NewTarZst creates a new Tar over the zstandard compressed tar archive
// at path.
func NewTarZst(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.zst", fileExtensionsTarZst, func(src io.Reader) (io.Reader, error) {
		d, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		// IOReadCloser releases the decoder on Close.
		return d.IOReadCloser(), nil
	})
}
