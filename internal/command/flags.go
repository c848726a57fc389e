// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	titlesFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Value:   false,
	}

	sortFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "sort",
		Aliases: []string{"s"},
		Usage:   "comma-separated list of attributes to sort the results by",
	}
)

// NewContentFlag constructs a cli.StringFlag for the "content" flag, the
// per-module content file relative path, optionally namespaced to a command
// and config file. params[1] is the config file.
func NewContentFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "content",
		Usage: "per-module content file relative path",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("MODDIFF_CONTENT"),
		),
		Value: "src/agent.py",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewOutputDirFlag constructs a cli.StringFlag for the "output-dir" flag,
// optionally namespaced to a command and config file. An empty value means
// the command resolves its own default next to the modules root.
func NewOutputDirFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "output-dir",
		Aliases: []string{"d"},
		Usage:   "directory to write markdown diff files",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("MODDIFF_OUTPUT_DIR"),
		),
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewOutputFormatFlag constructs the "output" format selector for list-style
// commands.
func NewOutputFormatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Validator: func(value string) error {
			return OutputValidator(value)
		},
	}
}

// NewContextFlag constructs the unified diff context-lines flag.
func NewContextFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "context",
		Aliases: []string{"C"},
		Usage:   "unified diff context lines",
		Value:   3,
	}
}

// OutputValidator rejects output formats the renderers don't understand.
func OutputValidator(value string) error {
	switch value {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("invalid output format: %s", value)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
