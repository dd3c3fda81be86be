// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractResourceFork(t *testing.T) {
	// Fork entries are crafted inside an active read, filesystems
	// without fork support cannot produce them naturally.
	treeRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(treeRoot, "host.txt"), []byte("host"), 0644))

	dstRoot := t.TempDir()
	err := NewDir(treeRoot, NewConfig()).Read(context.Background(), func(e *Entry) (ReadAction, error) {
		forkEntry := func() *Entry {
			return &Entry{
				Type:   PathTypeResourceFork,
				Size:   4,
				UID:    -1,
				GID:    -1,
				arc:    e.arc,
				path:   resourceForkPath(e.Path()),
				active: true,
				open: func() (io.ReadCloser, error) {
					return io.NopCloser(strings.NewReader("RSRC")), nil
				},
			}
		}

		// No regular file at the destination to attach the fork to.
		missing := filepath.Join(dstRoot, "missing.txt")
		require.ErrorIs(t, forkEntry().Extract(missing), ErrNoResourceForkTarget)

		// As a plain file the fork lands at the destination itself.
		asFile := filepath.Join(dstRoot, "fork.bin")
		require.NoError(t, forkEntry().Extract(asFile, WithResourceForkAsFile(true)))
		b, err := os.ReadFile(asFile)
		require.NoError(t, err)
		require.Equal(t, []byte("RSRC"), b)

		if runtime.GOOS == "darwin" {
			// With a regular file in place the fork attaches to it.
			host := filepath.Join(dstRoot, "host.txt")
			require.NoError(t, os.WriteFile(host, []byte("host"), 0644))
			require.NoError(t, forkEntry().Extract(host))
			fb, err := os.ReadFile(resourceForkPath(host))
			require.NoError(t, err)
			require.Equal(t, []byte("RSRC"), fb)
		}
		return ActionStop, nil
	})
	require.NoError(t, err)
}

func TestExtractOutsideReadFails(t *testing.T) {
	// The deferred attribute registry only exists during a read, an
	// entry escaping its callback cannot extract.
	e := &Entry{
		Type:   PathTypeFile,
		arc:    &archive{cfg: NewConfig()},
		active: true,
	}
	err := e.Extract(filepath.Join(t.TempDir(), "f"))
	require.ErrorIs(t, err, ErrNoActiveRead)
}
