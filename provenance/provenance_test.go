package provenance

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func writeDoc(t *testing.T, root string, rows ...string) {
	t.Helper()
	doc := "# Provenance\n\nEvery file carrying a Provenance: marker must be listed.\n\n" +
		TableHeader + "\n|---|---|---|---|---|\n"
	for _, row := range rows {
		doc += row + "\n"
	}
	writeFile(t, root, DefaultDocPath, doc)
}

func TestCheckPassesWithNoMarkedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.rs", "fn main() {}\n")

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.MarkedFiles)
}

func TestCheckDocMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/dialog.rs", "// Provenance: adapted from upstream\n")

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OK())
	require.Len(t, report.Failures, 1)
	assert.Equal(t, FailureDocMissing, report.Failures[0].Kind)
	assert.Contains(t, report.Failures[0].Message(), "FAIL:")
}

func TestCheckHeaderMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/dialog.rs", "// Provenance: adapted\n")
	writeFile(t, root, DefaultDocPath, "# Provenance\n\nsrc/dialog.rs is adapted.\n")

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OK())

	kinds := make([]FailureKind, 0, len(report.Failures))
	for _, f := range report.Failures {
		kinds = append(kinds, f.Kind)
	}
	assert.Contains(t, kinds, FailureHeaderMissing)
	// The path substring is present, so no entry failure.
	assert.NotContains(t, kinds, FailureEntryMissing)
}

func TestCheckEntryMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/dialog.rs", "// Provenance: adapted\n")
	writeFile(t, root, "src/tabs.rs", "// Provenance: adapted\n")
	writeDoc(t, root, "| src/dialog.rs | zed | abc123 | Apache-2.0 | none |")

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.False(t, report.OK())
	require.Len(t, report.Failures, 1)
	assert.Equal(t, FailureEntryMissing, report.Failures[0].Kind)
	assert.Equal(t, "src/tabs.rs", report.Failures[0].Path)
	assert.Contains(t, report.Failures[0].Message(), "src/tabs.rs")
}

func TestCheckPassesWithAllEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/dialog.rs", "// Provenance: adapted\n")
	writeFile(t, root, "src/tabs.rs", "// Provenance: adapted\n")
	writeDoc(t, root,
		"| src/dialog.rs | zed | abc123 | Apache-2.0 | none |",
		"| src/tabs.rs | zed | abc123 | Apache-2.0 | renamed |")

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, []string{"src/dialog.rs", "src/tabs.rs"}, report.MarkedFiles)
}

func TestCheckExcludesDefaultDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "target/debug/gen.rs", "// Provenance: generated\n")
	writeFile(t, root, ".refs/upstream.rs", "// Provenance: vendored\n")

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.MarkedFiles)
}

func TestCheckCustomExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "vendor/x.rs", "// Provenance: vendored\n")
	writeFile(t, root, "src/x.rs", "// Provenance: adapted\n")
	writeDoc(t, root, "| src/x.rs | zed | abc | MIT | none |")

	checker := NewChecker(root)
	checker.Exclude = []string{"vendor/**"}

	report, err := checker.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, []string{"src/x.rs"}, report.MarkedFiles)
}

func TestCheckIgnoresDocItself(t *testing.T) {
	root := t.TempDir()
	// The doc mentions the marker but is not itself a marked file.
	writeDoc(t, root)

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.MarkedFiles)
}

func TestRecordCreatesDoc(t *testing.T) {
	root := t.TempDir()

	added, err := Record(root, "", []Entry{{
		File:          "src/shared/ui/dialog/dialog.rs",
		Source:        "crates/components/src/dialog.rs",
		Commit:        "abc123",
		License:       "Apache-2.0 OR MIT",
		Modifications: "Installed via workbench add dialog",
	}})
	require.NoError(t, err)
	require.Len(t, added, 1)

	data, err := os.ReadFile(filepath.Join(root, DefaultDocPath))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, TableHeader)
	assert.Contains(t, text, "src/shared/ui/dialog/dialog.rs")
}

func TestRecordIsIdempotent(t *testing.T) {
	root := t.TempDir()
	entry := Entry{File: "src/x.rs", Source: "upstream", Commit: "abc", License: "MIT", Modifications: "none"}

	added, err := Record(root, "", []Entry{entry})
	require.NoError(t, err)
	assert.Len(t, added, 1)

	added, err = Record(root, "", []Entry{entry})
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestRecordThenCheck(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/x.rs", "// Provenance: adapted from upstream\n")

	_, err := Record(root, "", []Entry{{
		File: "src/x.rs", Source: "upstream", Commit: "abc",
		License: "MIT", Modifications: "none",
	}})
	require.NoError(t, err)

	report, err := NewChecker(root).Check(context.Background())
	require.NoError(t, err)
	assert.True(t, report.OK())
}

func TestRecordAddsHeaderToHeaderlessDoc(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, DefaultDocPath, "# Provenance\n\nfree-form notes\n")

	_, err := Record(root, "", []Entry{{File: "src/x.rs", Source: "u", Commit: "c", License: "MIT", Modifications: "none"}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, DefaultDocPath))
	require.NoError(t, err)
	assert.Contains(t, string(data), TableHeader)
	assert.Contains(t, string(data), "free-form notes")
}
