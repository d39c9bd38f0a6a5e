package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrConflicts is returned by Apply when the plan carries unresolved
// conflicts and force is not set.
var ErrConflicts = errors.New("plan has unresolved conflicts")

// ApplyOptions controls how a plan is executed.
type ApplyOptions struct {
	// Force applies the plan even when it has recorded conflicts.
	Force bool
}

// ApplyResult summarizes a successful apply.
type ApplyResult struct {
	// RunID uniquely identifies this apply run.
	RunID string `json:"run_id"`
	// Applied is the number of mutations executed.
	Applied int `json:"applied"`
	// Paths are the files touched, in mutation order.
	Paths []string `json:"paths"`
}

// FailureReport captures the post-failure state when an apply stops partway
// through. There is no rollback; the report tells the operator exactly what
// was and was not done.
type FailureReport struct {
	RunID              string         `json:"run_id"`
	Plan               *Plan          `json:"plan"`
	FailedAtIndex      int            `json:"failed_at_index"`
	Error              string         `json:"error"`
	CompletedMutations []FileMutation `json:"completed_mutations"`
	RemainingMutations []FileMutation `json:"remaining_mutations"`
}

// ToJSON serializes the failure report as indented JSON.
func (r *FailureReport) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ApplyError wraps the mutation failure together with its report.
type ApplyError struct {
	Report *FailureReport
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply failed at mutation %d: %v", e.Report.FailedAtIndex, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// Apply executes the plan's mutations in order. A plan with conflicts is
// rejected unless opts.Force is set. On the first mutation failure, apply
// stops and returns an *ApplyError carrying a FailureReport with the
// completed and remaining mutations.
func Apply(p *Plan, opts ApplyOptions) (*ApplyResult, error) {
	if p.HasConflicts() && !opts.Force {
		return nil, fmt.Errorf("%w: %d conflicts", ErrConflicts, len(p.Conflicts))
	}

	runID := uuid.NewString()
	paths := make([]string, 0, len(p.Mutations))

	for i, m := range p.Mutations {
		if err := applyMutation(m); err != nil {
			report := &FailureReport{
				RunID:              runID,
				Plan:               p,
				FailedAtIndex:      i,
				Error:              err.Error(),
				CompletedMutations: append([]FileMutation(nil), p.Mutations[:i]...),
				RemainingMutations: append([]FileMutation(nil), p.Mutations[i:]...),
			}
			return nil, &ApplyError{Report: report, Err: err}
		}
		paths = append(paths, m.FilePath)
	}

	return &ApplyResult{RunID: runID, Applied: len(p.Mutations), Paths: paths}, nil
}

func applyMutation(m FileMutation) error {
	switch m.Strategy {
	case StrategyWriteFile:
		return writeFile(m.FilePath, m.Content)
	case StrategyAppendExport:
		if m.Action == ActionDelete {
			return removeLine(m.FilePath, m.Content)
		}
		return appendLine(m.FilePath, m.Content)
	case StrategyInsertUse:
		if m.Action == ActionDelete {
			return removeLine(m.FilePath, m.Content)
		}
		return insertLineAtTop(m.FilePath, m.Content)
	case StrategyReplaceSection:
		if m.Action == ActionDelete {
			return removeSection(m.FilePath, m.Description)
		}
		return replaceSection(m.FilePath, m.Description, m.Content)
	case StrategyDeleteFile:
		if err := os.Remove(m.FilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete %s: %w", m.FilePath, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown mutation strategy %q", m.Strategy)
	}
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// appendLine appends line to the file unless an identical line is already
// present. The file is created if missing.
func appendLine(path, line string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if containsLine(string(data), line) {
		return nil
	}
	text := string(data)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text += line + "\n"
	return writeFile(path, text)
}

// insertLineAtTop inserts line as the first line of the file unless it is
// already present anywhere.
func insertLineAtTop(path, line string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if containsLine(string(data), line) {
		return nil
	}
	return writeFile(path, line+"\n"+string(data))
}

// removeLine deletes every line exactly matching line from the file.
// A missing file is not an error.
func removeLine(path, line string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != strings.TrimSpace(line) {
			kept = append(kept, l)
		}
	}
	return writeFile(path, strings.Join(kept, "\n"))
}

func sectionMarkers(name string) (string, string) {
	return "// workbench:begin " + name, "// workbench:end " + name
}

// replaceSection replaces the marker-delimited section named name with
// content, or appends a new marked section when none exists.
func replaceSection(path, name, content string) error {
	begin, end := sectionMarkers(name)
	block := begin + "\n" + content + "\n" + end

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return writeFile(path, block+"\n")
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	text := string(data)
	start := strings.Index(text, begin)
	if start < 0 {
		if text != "" && !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		return writeFile(path, text+block+"\n")
	}
	stop := strings.Index(text[start:], end)
	if stop < 0 {
		return fmt.Errorf("section %q in %s has no end marker", name, path)
	}
	stop = start + stop + len(end)
	return writeFile(path, text[:start]+block+text[stop:])
}

// removeSection deletes the marker-delimited section named name. A missing
// file or section is not an error.
func removeSection(path, name string) error {
	begin, end := sectionMarkers(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	start := strings.Index(text, begin)
	if start < 0 {
		return nil
	}
	stop := strings.Index(text[start:], end)
	if stop < 0 {
		return fmt.Errorf("section %q in %s has no end marker", name, path)
	}
	stop = start + stop + len(end)
	rest := strings.TrimPrefix(text[stop:], "\n")
	return writeFile(path, text[:start]+rest)
}

func containsLine(text, line string) bool {
	target := strings.TrimSpace(line)
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == target {
			return true
		}
	}
	return false
}

// DetectExisting returns which of the plan's create targets already exist
// on disk, for conflict detection against a real project tree.
func DetectExisting(targets []string) []string {
	var existing []string
	for _, path := range targets {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	return existing
}
