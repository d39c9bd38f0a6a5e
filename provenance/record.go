package provenance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one row of the provenance table.
type Entry struct {
	File          string
	Source        string
	Commit        string
	License       string
	Modifications string
}

func (e Entry) row() string {
	return fmt.Sprintf("| %s | %s | %s | %s | %s |",
		e.File, e.Source, e.Commit, e.License, e.Modifications)
}

const docPreamble = `# Provenance

Attribution for code adapted from external sources. Every file carrying a
Provenance: marker must have a row in the table below.

` + TableHeader + `
|------|--------|--------|---------|---------------|
`

// Record appends entries to the provenance doc under root, creating the
// doc with its header when missing. Entries whose file path already
// appears anywhere in the doc are skipped, so recording is idempotent.
// Returns the entries actually appended.
func Record(root, docPath string, entries []Entry) ([]Entry, error) {
	if docPath == "" {
		docPath = DefaultDocPath
	}
	full := filepath.Join(root, docPath)

	data, err := os.ReadFile(full)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read provenance doc: %w", err)
	}
	text := string(data)
	if text == "" {
		text = docPreamble
	} else if !strings.Contains(text, TableHeader) {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += "\n" + TableHeader + "\n|------|--------|--------|---------|---------------|\n"
	}

	var added []Entry
	for _, entry := range entries {
		if strings.Contains(text, entry.File) {
			continue
		}
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		text += entry.row() + "\n"
		added = append(added, entry)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, fmt.Errorf("create provenance doc dir: %w", err)
	}
	if err := os.WriteFile(full, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("write provenance doc: %w", err)
	}
	return added, nil
}
