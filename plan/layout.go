package plan

import (
	"path/filepath"
	"strings"
)

// Layout abstracts how components are arranged in a target application so
// plan generation can target any supported structure.
type Layout interface {
	// Name is the layout identifier recorded in plans (e.g. "default").
	Name() string
	// ComponentDir returns the directory a component's source files go in.
	ComponentDir(componentName string) string
	// ModuleFile returns the module file that exports components.
	ModuleFile() string
	// ExportLine returns the export line added to the module file.
	ExportLine(componentName string) string
	// ThemeTokensFile returns the theme tokens file used for token injection.
	ThemeTokensFile() string
}

// DefaultLayout is the feature-first vertical slice layout:
// component sources under src/shared/ui/<component>/, exports in
// src/shared/ui/mod.rs, theme tokens in src/shared/theme/tokens.rs.
type DefaultLayout struct {
	ProjectRoot string
}

// NewDefaultLayout creates the default layout rooted at projectRoot.
func NewDefaultLayout(projectRoot string) *DefaultLayout {
	return &DefaultLayout{ProjectRoot: projectRoot}
}

func (l *DefaultLayout) Name() string { return "default" }

func (l *DefaultLayout) ComponentDir(componentName string) string {
	return filepath.Join(l.ProjectRoot, "src", "shared", "ui", strings.ToLower(componentName))
}

func (l *DefaultLayout) ModuleFile() string {
	return filepath.Join(l.ProjectRoot, "src", "shared", "ui", "mod.rs")
}

func (l *DefaultLayout) ExportLine(componentName string) string {
	return "pub mod " + strings.ToLower(componentName) + ";"
}

func (l *DefaultLayout) ThemeTokensFile() string {
	return filepath.Join(l.ProjectRoot, "src", "shared", "theme", "tokens.rs")
}
