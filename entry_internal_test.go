// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"errors"
	"io"
	"testing"
)

func TestLazyReadCloserOpenError(t *testing.T) {
	wantErr := errors.New("open failed")
	l := &lazyReadCloser{open: func() (io.ReadCloser, error) {
		return nil, wantErr
	}}
	if _, err := l.Read(make([]byte, 1)); !errors.Is(err, wantErr) {
		t.Errorf("read error = %v, want %v", err, wantErr)
	}
	// The error sticks for later reads.
	if _, err := l.Read(make([]byte, 1)); !errors.Is(err, wantErr) {
		t.Errorf("second read error = %v, want %v", err, wantErr)
	}
	if err := l.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
