// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

package archivefiles

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// errStopWalk signals that the callback requested an early stop. It never
// escapes to callers.
var errStopWalk = errors.New("stop walk")

// walkFunc receives each walked path relative to the root, with its
// Lstat info. Returning ActionSkipDescent on a directory prunes it.
type walkFunc func(rel string, fi fs.FileInfo) (ReadAction, error)

type walkItem struct {
	rel string
	fi  fs.FileInfo
}

// walkTree walks the directory tree rooted at root in sorted preorder,
// without following symlinks. When subpaths is non-empty, only those
// paths and their descendants are walked, in the given order. Unreadable
// directories are treated as childless when ignoreUnreadable is set.
func walkTree(ctx context.Context, t Target, root string, subpaths []string, ignoreUnreadable bool, fn walkFunc) error {
	var stack []walkItem

	push := func(items []walkItem) {
		// Reversed so the stack pops in sorted order.
		for i := len(items) - 1; i >= 0; i-- {
			stack = append(stack, items[i])
		}
	}

	list := func(rel string) ([]walkItem, error) {
		entries, err := t.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			if ignoreUnreadable && errors.Is(err, fs.ErrPermission) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to list directory: %w", err)
		}
		items := make([]walkItem, 0, len(entries))
		for _, de := range entries {
			fi, err := de.Info()
			if err != nil {
				return nil, err
			}
			child := de.Name()
			if rel != "" {
				child = rel + "/" + de.Name()
			}
			items = append(items, walkItem{rel: child, fi: fi})
		}
		return items, nil
	}

	if len(subpaths) != 0 {
		seeds := make([]walkItem, 0, len(subpaths))
		for _, sub := range subpaths {
			rel := filepath.ToSlash(filepath.Clean(filepath.FromSlash(sub)))
			fi, err := t.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("failed to stat subpath: %w", err)
			}
			seeds = append(seeds, walkItem{rel: rel, fi: fi})
		}
		// Seeds walk in the order given, not sorted.
		for i := len(seeds) - 1; i >= 0; i-- {
			stack = append(stack, seeds[i])
		}
	} else {
		items, err := list("")
		if err != nil {
			return err
		}
		push(items)
	}

	for len(stack) != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		action, err := fn(item.rel, item.fi)
		if err != nil {
			return err
		}
		switch action {
		case ActionStop:
			return errStopWalk
		case ActionSkipDescent:
			continue
		}
		if item.fi.IsDir() {
			items, err := list(item.rel)
			if err != nil {
				return err
			}
			push(items)
		}
	}
	return nil
}
