// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/moddiff/moddiff/internal/log"
)

// UnorderedOrdinal is the sort key assigned to module directories whose name
// carries no numeric prefix. It places them after every prefixed entry.
const UnorderedOrdinal = 1_000_000_000

// ordinalPattern matches a leading integer prefix such as "03-" in
// "03-structured-output".
var ordinalPattern = regexp.MustCompile(`^(\d+)-`)

// Entry is one discovered module directory participating in the diff
// sequence. Entries are immutable once discovered.
type Entry struct {
	Name    string
	Ordinal int
	Path    string
	Size    int64
}

// Ordered reports whether the entry carried a numeric prefix.
func (e Entry) Ordered() bool {
	return e.Ordinal != UnorderedOrdinal
}

// Modules enumerates the immediate subdirectories of root that contain the
// content file at the given relative path and returns them sorted by
// (numeric prefix ascending, name ascending). Directories without a numeric
// prefix sort after all prefixed ones.
//
// A missing or non-directory root is a configuration error and fails the run.
func Modules(root string, content string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("modules directory not found (%s): %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("modules path is not a directory (%s): %w", root, os.ErrInvalid)
	}

	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read modules directory (%s): %w", root, err)
	}

	var entries []Entry
	for _, d := range dirents {
		if !d.IsDir() {
			continue
		}

		candidate := filepath.Join(root, d.Name(), content)
		fi, err := os.Stat(candidate)
		if err != nil || fi.IsDir() {
			log.Debugf("skipping module dir without content file: dir=%s content=%s", d.Name(), content)
			continue
		}

		entries = append(entries, Entry{
			Name:    d.Name(),
			Ordinal: ordinalOf(d.Name()),
			Path:    candidate,
			Size:    fi.Size(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Ordinal != entries[j].Ordinal {
			return entries[i].Ordinal < entries[j].Ordinal
		}
		return entries[i].Name < entries[j].Name
	})

	log.Debugf("discovered modules: count=%d root=%s", len(entries), root)

	return entries, nil
}

// Pairs returns the adjacent pairs of the sorted entry sequence, in order.
// Only consecutive entries are paired, never all combinations.
func Pairs(entries []Entry) [][2]Entry {
	if len(entries) < 2 {
		return nil
	}

	pairs := make([][2]Entry, 0, len(entries)-1)
	for i := 0; i < len(entries)-1; i++ {
		pairs = append(pairs, [2]Entry{entries[i], entries[i+1]})
	}
	return pairs
}

// ordinalOf extracts the leading integer prefix from a module directory name,
// or UnorderedOrdinal when the name has none.
func ordinalOf(name string) int {
	m := ordinalPattern.FindStringSubmatch(name)
	if m == nil {
		return UnorderedOrdinal
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return UnorderedOrdinal
	}
	return n
}
