package specdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSpec = `# Dialog Component

## Purpose

The Dialog component provides a modal surface for confirmations and
focused tasks, rendered above the page with a dimmed backdrop.

## Requirements

- Opening the dialog traps focus inside the panel until it closes.
- Escape dismisses the dialog and returns focus to the trigger element.
- Clicking the backdrop dismisses the dialog when overlay_closable is set.
- The close button is shown unless show_close_button is false.

## Constraints

- All surfaces map to design tokens; no hard-coded colors.

## Acceptance Criteria

- [ ] Focus trap verified with keyboard-only navigation.
- [ ] Escape and backdrop dismissal covered by interaction tests.
`

func TestValidateValidSpec(t *testing.T) {
	result := NewValidator().Validate(validSpec)

	assert.True(t, result.Valid, "missing: %v", result.MissingSections)
	assert.Empty(t, result.MissingSections)
	assert.Contains(t, result.SectionDetails, "Purpose")
	assert.Contains(t, result.SectionDetails, "Requirements")
	assert.Equal(t, "OK", result.SectionDetails["Title"])
	assert.Empty(t, result.FormatFeedback())
}

func TestValidateMissingSections(t *testing.T) {
	result := NewValidator().Validate("# Something\n\nJust a title.\n")

	assert.False(t, result.Valid)
	joined := strings.Join(result.MissingSections, "\n")
	assert.Contains(t, joined, "Purpose")
	assert.Contains(t, joined, "Requirements")
	assert.Contains(t, joined, "Constraints")
	assert.Contains(t, joined, "Acceptance Criteria")

	feedback := result.FormatFeedback()
	assert.Contains(t, feedback, "Validation Failed")
	assert.Contains(t, feedback, "Missing or Incomplete Sections")
}

func TestValidateSectionTooShort(t *testing.T) {
	doc := strings.Replace(validSpec,
		"The Dialog component provides a modal surface for confirmations and\nfocused tasks, rendered above the page with a dimmed backdrop.",
		"Modal.", 1)
	result := NewValidator().Validate(doc)

	assert.False(t, result.Valid)
	joined := strings.Join(result.MissingSections, "\n")
	assert.Contains(t, joined, "Purpose")
	assert.Contains(t, joined, "too short")
}

func TestValidateWarnsOnPlaceholders(t *testing.T) {
	result := NewValidator().Validate(validSpec + "\nTBD: finish this later\n")

	assert.True(t, result.Valid)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "TBD")
}

func TestValidateWarnsOnShortDocument(t *testing.T) {
	v := NewValidator()
	v.RequiredSections = nil
	result := v.Validate("# Tiny\n")

	assert.True(t, result.Valid)
	joined := strings.Join(result.Warnings, "\n")
	assert.Contains(t, joined, "too short")
}

func TestScaffoldCreatesValidSpec(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	path, err := m.Scaffold("dialog", "Dialog Component")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "specs", "dialog.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# Dialog Component")

	// A freshly scaffolded spec passes its own validator.
	result := NewValidator().Validate(content)
	assert.True(t, result.Valid, "missing: %v", result.MissingSections)
}

func TestScaffoldRefusesOverwrite(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Scaffold("dialog", "Dialog")
	require.NoError(t, err)

	_, err = m.Scaffold("dialog", "Dialog Again")
	assert.ErrorIs(t, err, ErrSpecExists)
}

func TestScaffoldRejectsBadSlugs(t *testing.T) {
	m := NewManager(t.TempDir())

	for _, slug := range []string{"", "Dialog", "../escape", "a/b", "-x"} {
		_, err := m.Scaffold(slug, "Title")
		assert.ErrorIs(t, err, ErrInvalidSlug, "slug %q", slug)
	}
}

func TestLintEmptyDirectory(t *testing.T) {
	report, err := NewManager(t.TempDir()).Lint()
	require.NoError(t, err)
	assert.True(t, report.Valid())
	assert.Empty(t, report.Findings)
}

func TestLintMixedSpecs(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root)

	specsDir := filepath.Join(root, "specs")
	require.NoError(t, os.MkdirAll(specsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(specsDir, "dialog.md"), []byte(validSpec), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(specsDir, "broken.md"), []byte("# Broken\n"), 0o644))

	report, err := m.Lint()
	require.NoError(t, err)
	require.Len(t, report.Findings, 2)
	assert.False(t, report.Valid())

	invalid := report.Invalid()
	require.Len(t, invalid, 1)
	assert.Equal(t, "specs/broken.md", invalid[0].Path)

	// Findings are sorted by path.
	assert.Equal(t, "specs/broken.md", report.Findings[0].Path)
	assert.Equal(t, "specs/dialog.md", report.Findings[1].Path)
}

func TestLintFindsNestedSpecs(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "specs", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "tabs.md"), []byte(validSpec), 0o644))

	report, err := NewManager(root).Lint()
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, "specs/components/tabs.md", report.Findings[0].Path)
}
