package plan

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/studiokit/workbench/registry"
)

// Generate builds the installation plan for a component. The plan lists
// every file that will be created and every existing file that will be
// modified. Conflict detection checks existingFiles for collisions with
// planned create targets. Identical inputs always yield an identical plan.
func Generate(entry registry.Entry, layout Layout, existingFiles []string) *Plan {
	componentDir := layout.ComponentDir(entry.Name)
	lower := strings.ToLower(entry.Name)

	existing := make(map[string]struct{}, len(existingFiles))
	for _, f := range existingFiles {
		existing[f] = struct{}{}
	}

	var mutations []FileMutation
	var conflicts []Conflict
	checksums := make(map[string]string)

	// Component source files.
	for _, sourceFile := range entry.RequiredFiles {
		name := filepath.Base(sourceFile)
		if name == "." || name == string(filepath.Separator) {
			name = lower + ".rs"
		}
		target := filepath.Join(componentDir, name)

		if _, ok := existing[target]; ok {
			conflicts = append(conflicts, Conflict{
				FilePath: target,
				Reason:   fmt.Sprintf("File already exists at target path; would overwrite existing %s", name),
			})
		}

		content := fmt.Sprintf(
			"// Component: %s v%s\n// Provenance: %s\n// This file was installed by `workbench add %s`\n\npub use %s::*;\n",
			entry.Name, entry.Version, sourceFile, lower, lower)
		checksums[target] = Checksum(content)

		mutations = append(mutations, FileMutation{
			Action:      ActionCreate,
			FilePath:    target,
			Strategy:    StrategyWriteFile,
			Content:     content,
			Description: fmt.Sprintf("Install %s component source", entry.Name),
		})
	}

	// Component module file.
	modPath := filepath.Join(componentDir, "mod.rs")
	modContent := fmt.Sprintf("//! %s component module.\n\nmod %s;\npub use %s::*;\n",
		entry.Name, lower, lower)
	checksums[modPath] = Checksum(modContent)

	if _, ok := existing[modPath]; ok {
		conflicts = append(conflicts, Conflict{
			FilePath: modPath,
			Reason:   "Component mod.rs already exists; would overwrite",
		})
	}
	mutations = append(mutations, FileMutation{
		Action:      ActionCreate,
		FilePath:    modPath,
		Strategy:    StrategyWriteFile,
		Content:     modContent,
		Description: fmt.Sprintf("Create %s module file", entry.Name),
	})

	// Parent module export.
	mutations = append(mutations, FileMutation{
		Action:      ActionModify,
		FilePath:    layout.ModuleFile(),
		Strategy:    StrategyAppendExport,
		Content:     layout.ExportLine(entry.Name),
		Description: fmt.Sprintf("Add %s export to shared UI module", entry.Name),
	})

	// Provenance attribution for each planned source file.
	provenance := make([]ProvenanceAction, 0, len(entry.RequiredFiles))
	for _, sourceFile := range entry.RequiredFiles {
		provenance = append(provenance, ProvenanceAction{
			FilePath:      filepath.Join(componentDir, filepath.Base(sourceFile)),
			Source:        sourceFile,
			License:       "Apache-2.0 OR MIT",
			Modifications: fmt.Sprintf("Installed via workbench add %s", lower),
		})
	}

	return &Plan{
		Operation:         OperationAdd,
		ComponentName:     entry.Name,
		ComponentVersion:  entry.Version,
		Mutations:         mutations,
		Conflicts:         conflicts,
		ProvenanceActions: provenance,
		FileChecksums:     checksums,
		TargetLayout:      layout.Name(),
	}
}

// GenerateRemove builds the removal plan for an installed component: every
// file the install created is deleted and the module export line is taken
// back out. installedFiles is the create-target list recorded at install
// time.
func GenerateRemove(entry registry.Entry, layout Layout, installedFiles []string) *Plan {
	mutations := make([]FileMutation, 0, len(installedFiles)+1)
	for _, path := range installedFiles {
		mutations = append(mutations, FileMutation{
			Action:      ActionDelete,
			FilePath:    path,
			Strategy:    StrategyDeleteFile,
			Description: fmt.Sprintf("Remove %s file", entry.Name),
		})
	}
	mutations = append(mutations, FileMutation{
		Action:      ActionDelete,
		FilePath:    layout.ModuleFile(),
		Strategy:    StrategyAppendExport,
		Content:     layout.ExportLine(entry.Name),
		Description: fmt.Sprintf("Remove %s export from shared UI module", entry.Name),
	})

	return &Plan{
		Operation:        OperationRemove,
		ComponentName:    entry.Name,
		ComponentVersion: entry.Version,
		Mutations:        mutations,
		FileChecksums:    make(map[string]string),
		TargetLayout:     layout.Name(),
	}
}

// TargetPaths returns the file paths a plan's create mutations will write,
// in mutation order.
func TargetPaths(p *Plan) []string {
	var paths []string
	for _, m := range p.Mutations {
		if m.Action == ActionCreate {
			paths = append(paths, m.FilePath)
		}
	}
	return paths
}
