// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/moddiff/moddiff/internal/meta"
	"github.com/moddiff/moddiff/internal/output"
	"github.com/moddiff/moddiff/internal/viewer"
)

// viewCommandAction is the action handler for the "view" subcommand. It
// browses previously generated diff documents interactively.
func viewCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	dir := m.RootDir

	// When pointed at a repository root rather than the output directory
	// itself, descend into the conventional subdirectory.
	docs, err := diffDocs(dir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		sub := filepath.Join(dir, "module_diffs")
		if fi, err := os.Stat(sub); err == nil && fi.IsDir() {
			dir = sub
			if docs, err = diffDocs(dir); err != nil {
				return err
			}
		}
	}

	if len(docs) == 0 {
		fmt.Fprintf(os.Stdout, "No diff documents found in %s.\n", dir)
		return nil
	}

	return viewer.Browse(docs)
}

// diffDocs enumerates the browsable diff documents in dir, in name order,
// skipping the aggregate index.
func diffDocs(dir string) ([]viewer.Doc, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read diff directory (%s): %w", dir, err)
	}

	var docs []viewer.Doc
	for _, d := range dirents {
		name := d.Name()
		if d.IsDir() || !strings.HasSuffix(name, ".md") || name == output.IndexFilename {
			continue
		}

		title := strings.ReplaceAll(strings.TrimSuffix(name, ".md"), "__to__", " → ")
		docs = append(docs, viewer.Doc{
			Title: title,
			Path:  filepath.Join(dir, name),
		})
	}

	return docs, nil
}

// viewCommandBuilder constructs the cli.Command for "view", wiring metadata
// and the action handler.
func viewCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "browse generated diffs interactively",
		UsageText: "moddiff view [OutputDir]",
		Action:    viewCommandAction,
		Metadata:  map[string]interface{}{"meta": meta},
	}
}
