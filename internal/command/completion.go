// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/moddiff/moddiff/internal/meta"
)

const bashCompletionScript = `# bash completion for moddiff
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_moddiff()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "gen ls view completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}

    # Determine if an optional RootDir (first non-flag after subcommand) has
    # already been provided
    local have_rootdir=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* ]]; then
            have_rootdir=1
            break
        fi
        ((idx++))
    done

    case "$cmd" in
        gen)
      local opts="--content --output-dir -d --context -C --semantic --dry-run -n"
            ;;
        ls)
      local opts="--content --output -o --sort -s --titles -t"
            ;;
        view)
      local opts=""
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', or we've already consumed RootDir, offer flags
  if [[ "$cur" == -* || $have_rootdir -eq 1 ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise, we're on the (optional) RootDir positional — complete directories
  COMPREPLY=( $(compgen -o dirnames -- "$cur") )
  return 0
}

complete -F _moddiff moddiff
`

const zshCompletionScript = `#compdef moddiff

_moddiff() {
  local -a cmds
  cmds=(
    'gen:generate sequential module diffs'
    'ls:list discovered modules'
    'view:browse generated diffs interactively'
    'completion:generate shell completion script'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'moddiff commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    gen)
      _arguments -C \
        '--content[content file relative path]:path' \
        '(-d --output-dir)'{-d,--output-dir}'[output directory]:dir:_directories' \
        '(-C --context)'{-C,--context}'[unified diff context lines]:lines' \
        '--semantic[structural diff for JSON content files]' \
        '(-n --dry-run)'{-n,--dry-run}'[report without writing]' \
        '::RootDir:_directories'
      ;;
    ls)
      _arguments -C \
        '--content[content file relative path]:path' \
        '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)' \
        '(-s --sort)'{-s,--sort}'[sort attributes]:attrs' \
        '(-t --titles)'{-t,--titles}'[show titles]' \
        '::RootDir:_directories'
      ;;
    view)
      _arguments -C \
        '::OutputDir:_directories'
      ;;
    completion)
      _arguments '1:shell:(bash zsh)'
      ;;
  esac
}

if ! command -v compinit >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _moddiff moddiff moddiff
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: moddiff completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "moddiff completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
