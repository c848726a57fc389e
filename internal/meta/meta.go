// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/moddiff/moddiff/internal/config"
)

// RootDirSpec holds the resolved modules root directory and the optional
// per-run content file override parsed from the RootDir argument.
type RootDirSpec struct {
	RootDir string
	Content string
}

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, the resolved root directory specification, and
// the starting working directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	RootDirSpec
	StartingDir string
}
