// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moddiff/moddiff/internal/config"
	"github.com/moddiff/moddiff/internal/meta"
)

// setupModules lays out a modules tree with src/agent.py content files and
// returns the repository root and the modules root.
func setupModules(t *testing.T, contents map[string]string) (string, string) {
	t.Helper()

	// Pin config resolution away from any developer moddiff.yaml.
	t.Setenv("MODDIFF_CFG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	config.Config = config.Type{}

	base := t.TempDir()
	root := filepath.Join(base, "public_modules")
	for name, data := range contents {
		dir := filepath.Join(root, name, "src")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "agent.py"), []byte(data), 0o644))
	}

	return base, root
}

func runGen(t *testing.T, m meta.Meta, args ...string) error {
	t.Helper()
	cmd := genCommandBuilder(m)
	return cmd.Run(context.Background(), append([]string{"gen"}, args...))
}

func TestGenCommand_EndToEnd(t *testing.T) {
	base, root := setupModules(t, map[string]string{
		"01-overview":     "hello\nworld\n",
		"02-architecture": "hello\nbrave world\n",
		"03-pipeline":     "hello\nbrave world\n",
	})

	m := meta.Meta{RootDirSpec: meta.RootDirSpec{RootDir: root}, StartingDir: base}
	require.NoError(t, runGen(t, m))

	outDir := filepath.Join(base, "module_diffs")
	require.DirExists(t, outDir)

	first, err := os.ReadFile(filepath.Join(outDir, "01-overview__to__02-architecture.md"))
	require.NoError(t, err)
	assert.Contains(t, string(first), "# Diff: 01-overview/src/agent.py → 02-architecture/src/agent.py")
	assert.Contains(t, string(first), "```diff")
	assert.Contains(t, string(first), "-world")
	assert.Contains(t, string(first), "+brave world")

	second, err := os.ReadFile(filepath.Join(outDir, "02-architecture__to__03-pipeline.md"))
	require.NoError(t, err)
	assert.Contains(t, string(second), "No changes detected.")
	assert.NotContains(t, string(second), "```diff")

	index, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t,
		"# Module Diffs (Sequential)\n\n"+
			"- [01-overview → 02-architecture](01-overview__to__02-architecture.md)\n"+
			"- [02-architecture → 03-pipeline](02-architecture__to__03-pipeline.md)\n",
		string(index))

	// Re-running with unchanged inputs produces byte-identical files.
	require.NoError(t, runGen(t, m))
	firstAgain, err := os.ReadFile(filepath.Join(outDir, "01-overview__to__02-architecture.md"))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(firstAgain))
	indexAgain, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, string(index), string(indexAgain))
}

func TestGenCommand_ProducesNMinusOneDiffs(t *testing.T) {
	base, root := setupModules(t, map[string]string{
		"01-a": "a\n",
		"02-b": "b\n",
		"03-c": "c\n",
		"04-d": "d\n",
		"05-e": "e\n",
	})

	m := meta.Meta{RootDirSpec: meta.RootDirSpec{RootDir: root}, StartingDir: base}
	require.NoError(t, runGen(t, m))

	dirents, err := os.ReadDir(filepath.Join(base, "module_diffs"))
	require.NoError(t, err)

	var diffs int
	for _, d := range dirents {
		if d.Name() != "README.md" {
			diffs++
		}
	}
	assert.Equal(t, 4, diffs)
}

func TestGenCommand_FewerThanTwoModules(t *testing.T) {
	base, root := setupModules(t, map[string]string{
		"01-only": "alone\n",
	})

	m := meta.Meta{RootDirSpec: meta.RootDirSpec{RootDir: root}, StartingDir: base}
	require.NoError(t, runGen(t, m))

	assert.NoDirExists(t, filepath.Join(base, "module_diffs"))
}

func TestGenCommand_MissingRoot(t *testing.T) {
	base, _ := setupModules(t, nil)

	m := meta.Meta{
		RootDirSpec: meta.RootDirSpec{RootDir: filepath.Join(base, "does-not-exist")},
		StartingDir: base,
	}
	err := runGen(t, m)
	assert.Error(t, err)

	assert.NoDirExists(t, filepath.Join(base, "module_diffs"))
}

func TestGenCommand_DryRun(t *testing.T) {
	base, root := setupModules(t, map[string]string{
		"01-a": "a\n",
		"02-b": "b\n",
	})

	m := meta.Meta{RootDirSpec: meta.RootDirSpec{RootDir: root}, StartingDir: base}
	require.NoError(t, runGen(t, m, "--dry-run"))

	assert.NoDirExists(t, filepath.Join(base, "module_diffs"))
}

func TestGenCommand_OutputDirFlag(t *testing.T) {
	base, root := setupModules(t, map[string]string{
		"01-a": "a\n",
		"02-b": "b\n",
	})

	m := meta.Meta{RootDirSpec: meta.RootDirSpec{RootDir: root}, StartingDir: base}
	require.NoError(t, runGen(t, m, "--output-dir", "custom_diffs"))

	// A relative output dir resolves against the starting directory.
	assert.DirExists(t, filepath.Join(base, "custom_diffs"))
	assert.FileExists(t, filepath.Join(base, "custom_diffs", "01-a__to__02-b.md"))
	assert.FileExists(t, filepath.Join(base, "custom_diffs", "README.md"))
	assert.NoDirExists(t, filepath.Join(base, "module_diffs"))
}

func TestGenCommand_ContentOverride(t *testing.T) {
	base, root := setupModules(t, nil)
	for _, name := range []string{"01-a", "02-b"} {
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.py"), []byte(name+"\n"), 0o644))
	}

	// The RootDir "::" override takes precedence over the --content flag.
	m := meta.Meta{
		RootDirSpec: meta.RootDirSpec{RootDir: root, Content: "main.py"},
		StartingDir: base,
	}
	require.NoError(t, runGen(t, m, "--content", "src/agent.py"))

	assert.FileExists(t, filepath.Join(base, "module_diffs", "01-a__to__02-b.md"))
}

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("text"))
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("raw"))
	assert.Error(t, OutputValidator(""))
}
