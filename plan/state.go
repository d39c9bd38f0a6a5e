package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Install state lives under .workbench/installs/, one JSON file per
// component keyed by the lowercased component name.

const installsDir = ".workbench/installs"

var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,48}[a-z0-9])?$`)

// Sentinel errors for install-state operations.
var (
	ErrInvalidSlug      = errors.New("invalid component slug")
	ErrNotInstalled     = errors.New("component is not installed")
	ErrAlreadyInstalled = errors.New("component is already installed")
)

// InstallRecord tracks one installed component.
type InstallRecord struct {
	Component   string            `json:"component"`
	Version     string            `json:"version"`
	InstalledAt time.Time         `json:"installed_at"`
	RunID       string            `json:"run_id"`
	Files       []string          `json:"files"`
	Checksums   map[string]string `json:"checksums"`
	Layout      string            `json:"layout"`
}

// Store persists install records under a project root.
type Store struct {
	root string
}

// NewStore creates a store rooted at the project root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// ValidateSlug checks that a component slug is safe to use as a file name:
// lowercase alphanumerics and hyphens, at most 50 characters, no path
// separators or traversal.
func ValidateSlug(slug string) error {
	if strings.Contains(slug, "/") || strings.Contains(slug, "\\") || strings.Contains(slug, "..") {
		return fmt.Errorf("%w: %q contains path separators", ErrInvalidSlug, slug)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

func (s *Store) recordPath(slug string) string {
	return filepath.Join(s.root, installsDir, slug+".json")
}

// Save writes an install record, overwriting any existing record for the
// same component.
func (s *Store) Save(record *InstallRecord) error {
	slug := strings.ToLower(record.Component)
	if err := ValidateSlug(slug); err != nil {
		return err
	}
	path := s.recordPath(slug)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create install state dir: %w", err)
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode install record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write install record: %w", err)
	}
	return nil
}

// Load reads the install record for a component.
func (s *Store) Load(component string) (*InstallRecord, error) {
	slug := strings.ToLower(component)
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.recordPath(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotInstalled, component)
		}
		return nil, fmt.Errorf("read install record: %w", err)
	}
	var record InstallRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse install record for %s: %w", component, err)
	}
	return &record, nil
}

// Delete removes the install record for a component.
func (s *Store) Delete(component string) error {
	slug := strings.ToLower(component)
	if err := ValidateSlug(slug); err != nil {
		return err
	}
	err := os.Remove(s.recordPath(slug))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotInstalled, component)
	}
	return err
}

// IsInstalled reports whether a component has an install record.
func (s *Store) IsInstalled(component string) bool {
	_, err := s.Load(component)
	return err == nil
}

// List returns all install records, sorted by component name.
func (s *Store) List() ([]*InstallRecord, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, installsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read install state dir: %w", err)
	}

	var records []*InstallRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		record, err := s.Load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Component < records[j].Component
	})
	return records, nil
}
