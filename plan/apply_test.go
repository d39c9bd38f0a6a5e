package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/workbench/registry"
)

func readText(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestApplyInstallsComponent(t *testing.T) {
	root := t.TempDir()
	entry := dialogEntry(t)
	p := Generate(entry, NewDefaultLayout(root), nil)

	result, err := Apply(p, ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, len(p.Mutations), result.Applied)
	assert.NotEmpty(t, result.RunID)

	source := filepath.Join(root, "src", "shared", "ui", "dialog", "dialog.rs")
	assert.Contains(t, readText(t, source), "Component: Dialog v0.1.0")

	mod := filepath.Join(root, "src", "shared", "ui", "dialog", "mod.rs")
	assert.Contains(t, readText(t, mod), "mod dialog;")

	parent := filepath.Join(root, "src", "shared", "ui", "mod.rs")
	assert.Contains(t, readText(t, parent), "pub mod dialog;")
}

func TestApplyRejectsConflictsWithoutForce(t *testing.T) {
	p := &Plan{
		Operation:     OperationAdd,
		ComponentName: "Dialog",
		Conflicts:     []Conflict{{FilePath: "x", Reason: "exists"}},
	}

	_, err := Apply(p, ApplyOptions{})
	assert.ErrorIs(t, err, ErrConflicts)

	_, err = Apply(p, ApplyOptions{Force: true})
	assert.NoError(t, err)
}

func TestApplyAppendExportIdempotent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.rs")
	m := FileMutation{
		Action:   ActionModify,
		FilePath: path,
		Strategy: StrategyAppendExport,
		Content:  "pub mod dialog;",
	}

	require.NoError(t, applyMutation(m))
	require.NoError(t, applyMutation(m))
	assert.Equal(t, "pub mod dialog;\n", readText(t, path))
}

func TestApplyRemoveExportLine(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.rs")
	require.NoError(t, os.WriteFile(path,
		[]byte("pub mod dialog;\npub mod select;\n"), 0o644))

	m := FileMutation{
		Action:   ActionDelete,
		FilePath: path,
		Strategy: StrategyAppendExport,
		Content:  "pub mod dialog;",
	}
	require.NoError(t, applyMutation(m))
	text := readText(t, path)
	assert.NotContains(t, text, "pub mod dialog;")
	assert.Contains(t, text, "pub mod select;")
}

func TestApplyInsertUse(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte("fn main() {}\n"), 0o644))

	m := FileMutation{
		Action:   ActionModify,
		FilePath: path,
		Strategy: StrategyInsertUse,
		Content:  "use shared::ui::dialog::*;",
	}
	require.NoError(t, applyMutation(m))
	text := readText(t, path)
	assert.True(t, len(text) > 0)
	assert.Equal(t, "use shared::ui::dialog::*;", text[:len("use shared::ui::dialog::*;")])

	// Re-inserting is a no-op.
	require.NoError(t, applyMutation(m))
	assert.Equal(t, text, readText(t, path))
}

func TestApplyReplaceSection(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "tokens.rs")

	write := FileMutation{
		Action:      ActionModify,
		FilePath:    path,
		Strategy:    StrategyReplaceSection,
		Content:     "pub const ACCENT: &str = \"#74ade8\";",
		Description: "accent-tokens",
	}
	require.NoError(t, applyMutation(write))
	text := readText(t, path)
	assert.Contains(t, text, "// workbench:begin accent-tokens")
	assert.Contains(t, text, "#74ade8")
	assert.Contains(t, text, "// workbench:end accent-tokens")

	// Replacing swaps the block contents in place.
	write.Content = "pub const ACCENT: &str = \"#5c78e2\";"
	require.NoError(t, applyMutation(write))
	text = readText(t, path)
	assert.Contains(t, text, "#5c78e2")
	assert.NotContains(t, text, "#74ade8")

	remove := FileMutation{
		Action:      ActionDelete,
		FilePath:    path,
		Strategy:    StrategyReplaceSection,
		Description: "accent-tokens",
	}
	require.NoError(t, applyMutation(remove))
	assert.NotContains(t, readText(t, path), "workbench:begin")
}

func TestApplyDeleteFileMissingIsNoError(t *testing.T) {
	m := FileMutation{
		Action:   ActionDelete,
		FilePath: filepath.Join(t.TempDir(), "nope.rs"),
		Strategy: StrategyDeleteFile,
	}
	assert.NoError(t, applyMutation(m))
}

func TestApplyFailureReport(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(root, "blocked")
	// A file where a directory is expected makes MkdirAll fail.
	require.NoError(t, os.WriteFile(blocked, []byte("wall"), 0o644))

	p := &Plan{
		Operation:     OperationAdd,
		ComponentName: "Dialog",
		Mutations: []FileMutation{
			{
				Action:   ActionCreate,
				FilePath: filepath.Join(root, "ok.rs"),
				Strategy: StrategyWriteFile,
				Content:  "fine",
			},
			{
				Action:   ActionCreate,
				FilePath: filepath.Join(blocked, "inner", "x.rs"),
				Strategy: StrategyWriteFile,
				Content:  "never written",
			},
			{
				Action:   ActionCreate,
				FilePath: filepath.Join(root, "after.rs"),
				Strategy: StrategyWriteFile,
				Content:  "not reached",
			},
		},
	}

	_, err := Apply(p, ApplyOptions{})
	require.Error(t, err)

	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	report := applyErr.Report
	assert.Equal(t, 1, report.FailedAtIndex)
	assert.Len(t, report.CompletedMutations, 1)
	assert.Len(t, report.RemainingMutations, 2)
	assert.NotEmpty(t, report.RunID)

	data, jsonErr := report.ToJSON()
	require.NoError(t, jsonErr)
	assert.Contains(t, string(data), `"failed_at_index": 1`)

	// First mutation landed, third never ran.
	assert.FileExists(t, filepath.Join(root, "ok.rs"))
	assert.NoFileExists(t, filepath.Join(root, "after.rs"))
}

func TestApplyUnknownStrategy(t *testing.T) {
	err := applyMutation(FileMutation{Strategy: Strategy("bogus")})
	assert.Error(t, err)
}

func TestDetectExisting(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "present.rs")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o644))

	existing := DetectExisting([]string{present, filepath.Join(root, "absent.rs")})
	assert.Equal(t, []string{present}, existing)
}

func TestRemovePlanRoundTrip(t *testing.T) {
	root := t.TempDir()
	entry, ok := registry.Generate().Get("Tabs")
	require.True(t, ok)
	layout := NewDefaultLayout(root)

	addPlan := Generate(entry, layout, nil)
	_, err := Apply(addPlan, ApplyOptions{})
	require.NoError(t, err)

	removePlan := GenerateRemove(entry, layout, TargetPaths(addPlan))
	_, err = Apply(removePlan, ApplyOptions{})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "src", "shared", "ui", "tabs", "tabs.rs"))
	assert.NotContains(t, readText(t, layout.ModuleFile()), "pub mod tabs;")
}
