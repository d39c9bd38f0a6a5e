package specdoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
)

// SpecsDir is the spec directory name relative to the project root.
const SpecsDir = "specs"

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,48}[a-z0-9])?$`)

// Sentinel errors for spec document operations.
var (
	ErrInvalidSlug = errors.New("invalid spec slug")
	ErrSpecExists  = errors.New("spec already exists")
)

var specTemplate = template.Must(template.New("spec").Parse(`# {{.Title}}

## Purpose

Describe what {{.Title}} is for and the problem it solves. Cover the
user-facing behavior this spec pins down.

## Requirements

- List each observable behavior the implementation must provide.
- State inputs, outputs, and failure modes.
- Keep every requirement independently checkable.

## Constraints

- Note layout, performance, or compatibility limits that bound the design.

## Acceptance Criteria

- [ ] Every requirement above has a passing check.
- [ ] No hard-coded colors; all surfaces map to design tokens.
- [ ] Provenance metadata recorded for adapted code.
`))

type templateData struct {
	Title string
}

// Manager scaffolds and lints spec documents under a project root.
type Manager struct {
	root string
}

// NewManager creates a manager rooted at the project root.
func NewManager(root string) *Manager {
	return &Manager{root: root}
}

// ValidateSlug checks that a spec slug is usable as a file name.
func ValidateSlug(slug string) error {
	if strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return fmt.Errorf("%w: %q contains path separators", ErrInvalidSlug, slug)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

// Path returns the file path for a spec slug.
func (m *Manager) Path(slug string) string {
	return filepath.Join(m.root, SpecsDir, slug+".md")
}

// Scaffold creates a new spec document from the template. An existing
// spec with the same slug is never overwritten.
func (m *Manager) Scaffold(slug, title string) (string, error) {
	if err := ValidateSlug(slug); err != nil {
		return "", err
	}
	if title == "" {
		title = slug
	}

	path := m.Path(slug)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrSpecExists, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create specs dir: %w", err)
	}

	var sb strings.Builder
	if err := specTemplate.Execute(&sb, templateData{Title: title}); err != nil {
		return "", fmt.Errorf("render spec template: %w", err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write spec %s: %w", slug, err)
	}
	return path, nil
}

// LintFinding pairs a spec file with its validation result.
type LintFinding struct {
	Path   string  `json:"path"`
	Result *Result `json:"result"`
}

// LintReport aggregates validation across a spec directory.
type LintReport struct {
	Findings []LintFinding `json:"findings"`
}

// Valid reports whether every linted spec passed.
func (r *LintReport) Valid() bool {
	for _, f := range r.Findings {
		if !f.Result.Valid {
			return false
		}
	}
	return true
}

// Invalid returns only the findings that failed validation.
func (r *LintReport) Invalid() []LintFinding {
	var out []LintFinding
	for _, f := range r.Findings {
		if !f.Result.Valid {
			out = append(out, f)
		}
	}
	return out
}

// Lint validates every markdown file under specs/, sorted by path. A
// missing specs directory yields an empty report.
func (m *Manager) Lint() (*LintReport, error) {
	dir := filepath.Join(m.root, SpecsDir)
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "*.md"))
	if err != nil {
		return nil, fmt.Errorf("glob specs: %w", err)
	}
	sort.Strings(matches)

	validator := NewValidator()
	report := &LintReport{}
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read spec %s: %w", path, err)
		}
		rel, err := filepath.Rel(m.root, path)
		if err != nil {
			rel = path
		}
		report.Findings = append(report.Findings, LintFinding{
			Path:   filepath.ToSlash(rel),
			Result: validator.Validate(string(data)),
		})
	}
	return report, nil
}
