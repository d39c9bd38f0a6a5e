// Package plan generates and applies deterministic component installation
// plans. A plan is a JSON-serializable list of file mutations describing
// exactly which files will be created, modified, or deleted for an add,
// update, or remove operation. Generation never mutates files; only Apply
// does.
package plan

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
)

// Operation is the kind of change being planned.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationUpdate Operation = "update"
	OperationRemove Operation = "remove"
)

// FileAction is the action to perform on a single file.
type FileAction string

const (
	ActionCreate FileAction = "create"
	ActionModify FileAction = "modify"
	ActionDelete FileAction = "delete"
)

// Strategy describes how a mutation is applied to its target file.
type Strategy string

const (
	// StrategyWriteFile writes the full file contents.
	StrategyWriteFile Strategy = "write_file"
	// StrategyAppendExport appends or removes an export line in a module file.
	StrategyAppendExport Strategy = "append_export"
	// StrategyInsertUse inserts or removes an import line at the top of a file.
	StrategyInsertUse Strategy = "insert_use"
	// StrategyReplaceSection replaces a marker-delimited section.
	StrategyReplaceSection Strategy = "replace_section"
	// StrategyDeleteFile removes the entire file.
	StrategyDeleteFile Strategy = "delete_file"
)

// FileMutation is a single step in a plan.
type FileMutation struct {
	Action      FileAction `json:"action"`
	FilePath    string     `json:"file_path"`
	Strategy    Strategy   `json:"strategy"`
	Content     string     `json:"content"`
	Description string     `json:"description"`
}

// Conflict records a collision with an existing file.
type Conflict struct {
	FilePath string `json:"file_path"`
	Reason   string `json:"reason"`
}

// ProvenanceAction marks a file that needs attribution metadata after apply.
type ProvenanceAction struct {
	FilePath      string `json:"file_path"`
	Source        string `json:"source"`
	License       string `json:"license"`
	Modifications string `json:"modifications"`
}

// Plan is the full mutation contract for one operation on one component.
// A reader can predict from the plan exactly which files will be created,
// modified, or deleted.
type Plan struct {
	Operation         Operation          `json:"operation"`
	ComponentName     string             `json:"component_name"`
	ComponentVersion  string             `json:"component_version"`
	Mutations         []FileMutation     `json:"mutations"`
	Conflicts         []Conflict         `json:"conflicts"`
	ProvenanceActions []ProvenanceAction `json:"provenance_actions"`
	FileChecksums     map[string]string  `json:"file_checksums"`
	TargetLayout      string             `json:"target_layout"`
}

// HasConflicts reports whether the plan detected any conflicts.
func (p *Plan) HasConflicts() bool { return len(p.Conflicts) > 0 }

// MutationCount returns the number of file mutations.
func (p *Plan) MutationCount() int { return len(p.Mutations) }

// ToJSON serializes the plan as indented JSON. Map keys serialize in
// sorted order, so identical plans produce identical bytes.
func (p *Plan) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FromJSON parses a plan from JSON.
func FromJSON(data []byte) (*Plan, error) {
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return &p, nil
}

// Checksum computes the integrity checksum recorded in plans: FNV-1a 64
// over the content bytes, rendered as 16 hex digits.
func Checksum(content string) string {
	h := fnv.New64a()
	h.Write([]byte(content))
	return fmt.Sprintf("%016x", h.Sum64())
}
