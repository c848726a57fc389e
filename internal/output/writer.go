// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moddiff/moddiff/internal/config"
	"github.com/moddiff/moddiff/internal/differ"
	"github.com/moddiff/moddiff/internal/log"
)

// IndexFilename is the name of the aggregate index document.
const IndexFilename = "README.md"

// EnsureDir creates the target directory, including parents, if absent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory (%s): %w", dir, err)
	}
	return nil
}

// WriteDoc persists one diff document into dir, overwriting unconditionally.
// It returns the written path relative to base for operator-facing reporting.
func WriteDoc(dir string, doc differ.Doc, base string) (string, error) {
	target := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(target, []byte(doc.Markdown), 0o644); err != nil {
		return "", fmt.Errorf("failed to write diff file (%s): %w", target, err)
	}

	log.Debugf("wrote diff document: file=%s changed=%t", target, doc.Changed)

	return relTo(base, target), nil
}

// WriteIndex persists the aggregate index listing every produced diff document
// as a relative Markdown link, in processing order. The heading may be
// overridden with the "index.title" config key.
func WriteIndex(dir string, docs []differ.Doc, base string) (string, error) {
	title, _ := config.GetString("index.title", "Module Diffs (Sequential)")

	lines := []string{"# " + title, ""}
	for _, d := range docs {
		lines = append(lines, fmt.Sprintf("- [%s → %s](%s)", d.From.Name, d.To.Name, d.Filename))
	}

	target := filepath.Join(dir, IndexFilename)
	if err := os.WriteFile(target, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write index file (%s): %w", target, err)
	}

	return relTo(base, target), nil
}

// relTo renders target relative to base, falling back to the absolute path
// when no relative form exists (e.g. different volumes).
func relTo(base string, target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		return target
	}

	rel, err := filepath.Rel(base, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}
