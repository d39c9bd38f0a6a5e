package plan

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiokit/workbench/registry"
)

func dialogEntry(t *testing.T) registry.Entry {
	t.Helper()
	entry, ok := registry.Generate().Get("Dialog")
	require.True(t, ok)
	return entry
}

func testLayout() *DefaultLayout {
	return NewDefaultLayout(filepath.Join("/test", "project"))
}

func TestGenerateForDialog(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)

	assert.Equal(t, OperationAdd, p.Operation)
	assert.Equal(t, "Dialog", p.ComponentName)
	assert.Equal(t, "0.1.0", p.ComponentVersion)
	assert.Equal(t, "default", p.TargetLayout)
	assert.NotEmpty(t, p.Mutations)
	assert.False(t, p.HasConflicts())
	assert.NotEmpty(t, p.ProvenanceActions)
	assert.NotEmpty(t, p.FileChecksums)
}

func TestGenerateForAllBuiltins(t *testing.T) {
	idx := registry.Generate()
	for _, name := range []string{"Dialog", "Select", "Tabs"} {
		entry, ok := idx.Get(name)
		require.True(t, ok)
		p := Generate(entry, testLayout(), nil)
		assert.Equal(t, name, p.ComponentName)
		assert.NotEmpty(t, p.Mutations)
	}
}

func TestPlanHasCreateAndModifyMutations(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)

	var creates, modifies int
	for _, m := range p.Mutations {
		switch m.Action {
		case ActionCreate:
			creates++
		case ActionModify:
			modifies++
		}
	}
	assert.Positive(t, creates)
	assert.Positive(t, modifies)
}

func TestPlanTargetsComponentDirectory(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)

	want := filepath.Join("src", "shared", "ui", "dialog")
	for _, m := range p.Mutations {
		if m.Action == ActionCreate {
			assert.Contains(t, m.FilePath, want)
		}
	}
}

func TestPlanIncludesModuleExport(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)

	var export *FileMutation
	for i := range p.Mutations {
		if p.Mutations[i].Strategy == StrategyAppendExport {
			export = &p.Mutations[i]
		}
	}
	require.NotNil(t, export)
	assert.Equal(t, "pub mod dialog;", export.Content)
}

func TestPlanIsDeterministic(t *testing.T) {
	idx := registry.Generate()
	layout := testLayout()
	for _, name := range []string{"Dialog", "Select", "Tabs"} {
		entry, ok := idx.Get(name)
		require.True(t, ok)

		json1, err := Generate(entry, layout, nil).ToJSON()
		require.NoError(t, err)
		json2, err := Generate(entry, layout, nil).ToJSON()
		require.NoError(t, err)
		assert.Equal(t, json1, json2, "%s plan is not deterministic", name)
	}
}

func TestConflictDetectedForExistingFile(t *testing.T) {
	existing := []string{
		filepath.Join("/test", "project", "src", "shared", "ui", "dialog", "dialog.rs"),
	}
	p := Generate(dialogEntry(t), testLayout(), existing)

	require.True(t, p.HasConflicts())
	require.Len(t, p.Conflicts, 1)
	assert.Contains(t, p.Conflicts[0].Reason, "already exists")
}

func TestPlanJSONRoundTrip(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)

	data, err := p.ToJSON()
	require.NoError(t, err)

	restored, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, p, restored)
}

func TestPlanJSONFields(t *testing.T) {
	data, err := Generate(dialogEntry(t), testLayout(), nil).ToJSON()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{
		"operation", "component_name", "component_version", "mutations",
		"conflicts", "provenance_actions", "file_checksums", "target_layout",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "add", m["operation"])

	mutations, ok := m["mutations"].([]any)
	require.True(t, ok)
	first, ok := mutations[0].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"action", "file_path", "strategy", "content", "description"} {
		assert.Contains(t, first, key)
	}
}

func TestChecksumsCoverCreatedFiles(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)
	for _, m := range p.Mutations {
		if m.Action == ActionCreate {
			sum, ok := p.FileChecksums[m.FilePath]
			require.True(t, ok, "missing checksum for %s", m.FilePath)
			assert.Equal(t, Checksum(m.Content), sum)
		}
	}
}

func TestChecksumFormat(t *testing.T) {
	sum := Checksum("hello")
	assert.Len(t, sum, 16)
	assert.Equal(t, Checksum("hello"), sum)
	assert.NotEqual(t, Checksum("world"), sum)

	// FNV-1a 64 offset basis for empty input.
	assert.Equal(t, "cbf29ce484222325", Checksum(""))
}

func TestProvenanceActionsCoverRequiredFiles(t *testing.T) {
	entry := dialogEntry(t)
	p := Generate(entry, testLayout(), nil)

	require.Len(t, p.ProvenanceActions, len(entry.RequiredFiles))
	for _, pa := range p.ProvenanceActions {
		assert.NotEmpty(t, pa.Source)
		assert.NotEmpty(t, pa.License)
		assert.NotEmpty(t, pa.Modifications)
	}
}

func TestGenerateRemove(t *testing.T) {
	entry := dialogEntry(t)
	installed := []string{
		filepath.Join("/test", "project", "src", "shared", "ui", "dialog", "dialog.rs"),
		filepath.Join("/test", "project", "src", "shared", "ui", "dialog", "mod.rs"),
	}
	p := GenerateRemove(entry, testLayout(), installed)

	assert.Equal(t, OperationRemove, p.Operation)
	require.Len(t, p.Mutations, 3)
	assert.Equal(t, StrategyDeleteFile, p.Mutations[0].Strategy)
	assert.Equal(t, StrategyDeleteFile, p.Mutations[1].Strategy)

	last := p.Mutations[2]
	assert.Equal(t, ActionDelete, last.Action)
	assert.Equal(t, StrategyAppendExport, last.Strategy)
	assert.Equal(t, "pub mod dialog;", last.Content)
}

func TestDefaultLayoutPaths(t *testing.T) {
	layout := NewDefaultLayout("/myapp")

	assert.Equal(t, "default", layout.Name())
	assert.Equal(t, filepath.Join("/myapp", "src", "shared", "ui", "dialog"),
		layout.ComponentDir("Dialog"))
	assert.Equal(t, filepath.Join("/myapp", "src", "shared", "ui", "mod.rs"),
		layout.ModuleFile())
	assert.Equal(t, "pub mod dialog;", layout.ExportLine("Dialog"))
	assert.Equal(t, filepath.Join("/myapp", "src", "shared", "theme", "tokens.rs"),
		layout.ThemeTokensFile())
}

func TestTargetPaths(t *testing.T) {
	p := Generate(dialogEntry(t), testLayout(), nil)
	paths := TargetPaths(p)

	require.Len(t, paths, 2)
	assert.Contains(t, paths[0], "dialog.rs")
	assert.Contains(t, paths[1], "mod.rs")
}
