// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"io"

	"github.com/ulikunitz/xz"
)

// fileExtensionsTarXz are the file extensions of xz compressed tar
// archives.
var fileExtensionsTarXz = []string{".tar.xz", ".txz"}

// NewTarXz creates a new Tar over the xz compressed tar archive at path.
func NewTarXz(path string, cfg *Config) *Tar {
	return newTar(path, cfg, "tar.xz", fileExtensionsTarXz, func(src io.Reader) (io.Reader, error) {
		return xz.NewReader(src)
	})
}
