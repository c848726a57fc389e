// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/moddiff/moddiff/internal/config"
	"github.com/moddiff/moddiff/internal/differ"
	"github.com/moddiff/moddiff/internal/discover"
	"github.com/moddiff/moddiff/internal/meta"
	"github.com/moddiff/moddiff/internal/output"
)

// genCommandAction is the action handler for the "gen" subcommand. It walks
// the sorted module sequence, renders one Markdown diff per adjacent pair and
// writes the documents plus the aggregate index into the output directory.
func genCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	config.Config.Namespace = "gen"

	root := m.RootDir
	content := ResolveContent(cmd, m)

	entries, err := discover.Modules(root, content)
	if err != nil {
		return err
	}

	if len(entries) < 2 {
		fmt.Fprintf(os.Stdout, "Fewer than two modules with %s found; nothing to diff.\n", content)
		return nil
	}

	// The diffed tree conventionally sits one level below the repository
	// root, so defaults and reported paths anchor on the parent of RootDir.
	base := filepath.Dir(root)
	outDir := cmd.String("output-dir")
	switch {
	case outDir == "":
		outDir = filepath.Join(base, "module_diffs")
	case !filepath.IsAbs(outDir):
		outDir = filepath.Join(m.StartingDir, outDir)
	}

	dryRun := cmd.Bool("dry-run")
	opts := differ.Options{
		Content:  content,
		Context:  cmd.Int("context"),
		Semantic: cmd.Bool("semantic"),
	}

	log.Debugf("gen: root=%s outDir=%s entries=%d dryRun=%t", root, outDir, len(entries), dryRun)

	if !dryRun {
		if err := output.EnsureDir(outDir); err != nil {
			return err
		}
	}

	docs := make([]differ.Doc, 0, len(entries)-1)
	for _, pair := range discover.Pairs(entries) {
		doc, err := differ.Render(pair, root, opts)
		if err != nil {
			return err
		}

		if dryRun {
			fmt.Fprintf(os.Stdout, "Would write %s\n", filepath.Join(outDir, doc.Filename))
		} else {
			rel, err := output.WriteDoc(outDir, doc, base)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Wrote %s\n", rel)
		}

		docs = append(docs, doc)
	}

	if dryRun {
		fmt.Fprintf(os.Stdout, "Would write %s\n", filepath.Join(outDir, output.IndexFilename))
		return nil
	}

	rel, err := output.WriteIndex(outDir, docs, base)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", rel)

	return nil
}

// genCommandBuilder constructs the cli.Command for "gen", wiring metadata,
// flags, and the action handler.
func genCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "generate sequential module diffs",
		UsageText: "moddiff gen [RootDir] [options]",
		Flags: []cli.Flag{
			NewContentFlag("gen", meta.Config.Source),
			NewOutputDirFlag("gen", meta.Config.Source),
			NewContextFlag(),
			&cli.BoolFlag{
				Name:        "semantic",
				Usage:       "structural diff for JSON content files",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Aliases:     []string{"n"},
				Usage:       "report what would be written without writing",
				HideDefault: true,
			},
		},
		Action:   genCommandAction,
		Metadata: map[string]interface{}{"meta": meta},
	}
}
