// Copyright (c) shockpkg.
// SPDX-License-Identifier: MPL-2.0

// Package main implements the archive-files command, a small frontend
// over the archive readers for listing and extracting archives.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	archivefiles "github.com/shockpkg/archive-files"
)

type cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	List struct {
		Archive string `arg:"" help:"Archive file or directory to list."`
	} `cmd:"" help:"List archive entries."`

	Extract struct {
		Archive            string `arg:"" help:"Archive file or directory to extract."`
		Dest               string `arg:"" help:"Destination directory."`
		Replace            bool   `help:"Replace existing paths."`
		IgnorePermissions  bool   `help:"Do not restore permission bits."`
		IgnoreTimes        bool   `help:"Do not restore timestamps."`
		SymlinkAsFile      bool   `help:"Extract symlinks as plain files."`
		ResourceForkAsFile bool   `help:"Extract resource forks as plain files."`
	} `cmd:"" help:"Extract an archive."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("archive-files"),
		kong.Description("Read and extract directories, tarballs, zip archives and disk images."),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var err error
	switch kctx.Command() {
	case "list <archive>":
		err = list(c.Archive(), logger)
	case "extract <archive> <dest>":
		err = extract(&c, logger)
	default:
		err = fmt.Errorf("unknown command: %s", kctx.Command())
	}
	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func (c *cli) Archive() string {
	if c.List.Archive != "" {
		return c.List.Archive
	}
	return c.Extract.Archive
}

func list(path string, logger *slog.Logger) error {
	arc, err := archivefiles.Open(path, archivefiles.NewConfig(
		archivefiles.WithLogger(logger),
	))
	if err != nil {
		return err
	}
	return arc.Read(context.Background(), func(e *archivefiles.Entry) (archivefiles.ReadAction, error) {
		fmt.Printf("%-13s %12d  %s\n", e.Type, e.Size, e.Path())
		return archivefiles.ActionContinue, nil
	})
}

func extract(c *cli, logger *slog.Logger) error {
	arc, err := archivefiles.Open(c.Extract.Archive, archivefiles.NewConfig(
		archivefiles.WithLogger(logger),
	))
	if err != nil {
		return err
	}

	opts := []archivefiles.ExtractOption{
		archivefiles.WithReplace(c.Extract.Replace),
		archivefiles.WithIgnorePermissions(c.Extract.IgnorePermissions),
		archivefiles.WithIgnoreTimes(c.Extract.IgnoreTimes),
		archivefiles.WithSymlinkAsFile(c.Extract.SymlinkAsFile),
		archivefiles.WithResourceForkAsFile(c.Extract.ResourceForkAsFile),
	}
	return arc.Read(context.Background(), func(e *archivefiles.Entry) (archivefiles.ReadAction, error) {
		dst := filepath.Join(c.Extract.Dest, filepath.FromSlash(e.Path()))
		logger.Debug("extracting", "path", e.Path(), "type", e.Type)
		if err := e.Extract(dst, opts...); err != nil {
			return archivefiles.ActionStop, err
		}
		return archivefiles.ActionContinue, nil
	})
}
