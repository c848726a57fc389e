// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/moddiff/moddiff/internal/discover"
	"github.com/moddiff/moddiff/internal/log"
)

// Options controls how a pairwise diff is computed and rendered.
type Options struct {
	// Content is the per-module content file relative path, used for labels.
	Content string
	// Context is the number of unchanged context lines around each hunk.
	Context int
	// Semantic enables a structural JSON diff when both sides parse as JSON.
	Semantic bool
}

// Doc is the rendered Markdown comparison of one adjacent module pair.
type Doc struct {
	From     discover.Entry
	To       discover.Entry
	Filename string
	Markdown string
	Changed  bool
}

// Render reads both sides of an adjacent pair and produces the Markdown diff
// document. Labels are expressed relative to the parent of root so they read
// like repository paths. Encoding irregularities never fail the run; invalid
// bytes are replaced and a warning is logged per affected file.
func Render(pair [2]discover.Entry, root string, opts Options) (Doc, error) {
	a, b := pair[0], pair[1]

	doc := Doc{
		From:     a,
		To:       b,
		Filename: a.Name + "__to__" + b.Name + ".md",
	}

	aText, err := readText(a.Path)
	if err != nil {
		return doc, err
	}
	bText, err := readText(b.Path)
	if err != nil {
		return doc, err
	}

	content := filepath.ToSlash(opts.Content)
	header := fmt.Sprintf("# Diff: %s/%s → %s/%s\n\n", a.Name, content, b.Name, content)

	var body string
	semanticApplied := false
	if opts.Semantic {
		if s, serr := semanticDiff(aText, bText); serr == nil {
			body = s
			semanticApplied = true
		} else {
			log.Debugf("semantic diff unavailable, falling back to unified: pair=%s err=%v", doc.Filename, serr)
		}
	}

	if !semanticApplied {
		body, err = unifiedDiff(aText, bText, label(root, a, content), label(root, b, content), opts.Context)
		if err != nil {
			return doc, fmt.Errorf("failed to compute diff (%s): %w", doc.Filename, err)
		}
	}

	if body == "" {
		doc.Markdown = header + "No changes detected.\n"
		return doc, nil
	}

	doc.Changed = true
	doc.Markdown = header + "```diff\n" + body + "```\n"
	return doc, nil
}

// unifiedDiff computes the standard unified diff between two texts. An empty
// string means the sides are identical.
func unifiedDiff(aText, bText, fromFile, toFile string, context int) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(aText),
		B:        difflib.SplitLines(bText),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  context,
	}

	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", err
	}

	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}

// semanticDiff produces a structural diff when both sides are JSON documents.
// It returns an error when either side is not JSON so the caller can fall back
// to the plain unified diff. An empty string with a nil error means the
// documents are structurally identical.
func semanticDiff(aText, bText string) (string, error) {
	var jdoc map[string]interface{}
	if err := json.Unmarshal([]byte(aText), &jdoc); err != nil {
		return "", fmt.Errorf("from side is not a JSON document: %w", err)
	}
	var check map[string]interface{}
	if err := json.Unmarshal([]byte(bText), &check); err != nil {
		return "", fmt.Errorf("to side is not a JSON document: %w", err)
	}

	delta, err := gojsondiff.New().Compare([]byte(aText), []byte(bText))
	if err != nil {
		return "", fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return "", nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       false,
	}

	diffString, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(diffString, "\n") {
		diffString += "\n"
	}
	return diffString, nil
}

// readText reads a file as UTF-8 text. Undecodable bytes are substituted with
// the replacement character rather than failing the run.
func readText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read content file (%s): %w", path, err)
	}

	if !utf8.Valid(raw) {
		log.Warnf("replacing undecodable bytes: file=%s", path)
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError)), nil
	}

	return string(raw), nil
}

// label renders an entry's content path relative to the parent of root, e.g.
// "public_modules/01-overview/src/agent.py".
func label(root string, e discover.Entry, content string) string {
	return filepath.ToSlash(filepath.Join(filepath.Base(root), e.Name, content))
}
