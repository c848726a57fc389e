// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/moddiff/moddiff/internal/config"
	"github.com/moddiff/moddiff/internal/discover"
	"github.com/moddiff/moddiff/internal/meta"
	"github.com/moddiff/moddiff/internal/output"
)

// lsCommandAction is the action handler for the "ls" subcommand. It lists the
// discovered module entries in discovery order and emits them per common
// flags.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	config.Config.Namespace = "ls"

	content := ResolveContent(cmd, m)

	entries, err := discover.Modules(m.RootDir, content)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stdout, "No modules with %s found.\n", content)
		return nil
	}

	return output.SpitEntries(entries, cmd, os.Stdout)
}

// lsCommandBuilder constructs the cli.Command for "ls", wiring metadata,
// flags, and the action handler.
func lsCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list discovered modules",
		UsageText: "moddiff ls [RootDir] [options]",
		Flags: []cli.Flag{
			NewContentFlag("ls", meta.Config.Source),
			NewOutputFormatFlag(),
			sortFlag,
			titlesFlag,
		},
		Action:   lsCommandAction,
		Metadata: map[string]interface{}{"meta": meta},
	}
}
