// Package provenance validates attribution metadata for adapted code.
// Files adapted from external sources carry a "Provenance:" marker and
// must have a matching row in the provenance document, a markdown table
// listing file, source, commit, license, and modifications.
package provenance

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

const (
	// Marker is the literal substring that flags a file as adapted code.
	Marker = "Provenance:"
	// TableHeader is the exact header row the provenance doc must contain.
	TableHeader = "| File | Source | Commit | License | Modifications |"
	// DefaultDocPath is the provenance doc location relative to the root.
	DefaultDocPath = "docs/PROVENANCE.md"
)

// DefaultExcludes are tree prefixes never scanned for markers.
var DefaultExcludes = []string{"target/**", ".refs/**", ".git/**"}

// FailureKind classifies a provenance check failure.
type FailureKind string

const (
	// FailureDocMissing means the provenance doc does not exist.
	FailureDocMissing FailureKind = "doc_missing"
	// FailureHeaderMissing means the doc lacks the required table header.
	FailureHeaderMissing FailureKind = "header_missing"
	// FailureEntryMissing means a marked file has no entry in the doc.
	FailureEntryMissing FailureKind = "entry_missing"
)

// Failure is a single provenance check failure.
type Failure struct {
	Kind FailureKind `json:"kind"`
	Path string      `json:"path,omitempty"`
}

// Message renders the failure as a FAIL: line for CLI output.
func (f Failure) Message() string {
	switch f.Kind {
	case FailureDocMissing:
		return fmt.Sprintf("FAIL: provenance doc %s does not exist", f.Path)
	case FailureHeaderMissing:
		return fmt.Sprintf("FAIL: provenance doc %s is missing the table header", f.Path)
	default:
		return fmt.Sprintf("FAIL: %s has a Provenance: marker but no entry in the provenance doc", f.Path)
	}
}

// Report is the outcome of a provenance check.
type Report struct {
	// MarkedFiles are all scanned files carrying the marker, sorted.
	MarkedFiles []string `json:"marked_files"`
	// Failures are the problems found. Empty means the check passed.
	Failures []Failure `json:"failures"`
}

// OK reports whether the check passed. A tree with no marked files and a
// missing doc still passes.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

// Checker scans a tree for provenance markers and verifies them against
// the provenance doc.
type Checker struct {
	// Root is the directory to scan.
	Root string
	// DocPath is the provenance doc path relative to Root. Defaults to
	// DefaultDocPath.
	DocPath string
	// Exclude are doublestar globs (relative to Root) never scanned.
	// Defaults to DefaultExcludes.
	Exclude []string
	// Concurrency bounds the parallel file reads. Defaults to 8.
	Concurrency int
}

// NewChecker creates a checker with default doc path and excludes.
func NewChecker(root string) *Checker {
	return &Checker{Root: root}
}

func (c *Checker) docPath() string {
	if c.DocPath != "" {
		return c.DocPath
	}
	return DefaultDocPath
}

func (c *Checker) excludes() []string {
	if c.Exclude != nil {
		return c.Exclude
	}
	return DefaultExcludes
}

func (c *Checker) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.excludes() {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Check scans the tree for files containing the marker and verifies each
// against the provenance doc. The doc itself is never treated as a marked
// file. If no files carry the marker the check passes even without a doc.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	marked, err := c.scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{MarkedFiles: marked}
	if len(marked) == 0 {
		return report, nil
	}

	docRel := filepath.ToSlash(c.docPath())
	doc, err := os.ReadFile(filepath.Join(c.Root, c.docPath()))
	if err != nil {
		if os.IsNotExist(err) {
			report.Failures = append(report.Failures, Failure{Kind: FailureDocMissing, Path: docRel})
			return report, nil
		}
		return nil, fmt.Errorf("read provenance doc: %w", err)
	}

	text := string(doc)
	if !strings.Contains(text, TableHeader) {
		report.Failures = append(report.Failures, Failure{Kind: FailureHeaderMissing, Path: docRel})
	}
	for _, path := range marked {
		if !strings.Contains(text, path) {
			report.Failures = append(report.Failures, Failure{Kind: FailureEntryMissing, Path: path})
		}
	}
	return report, nil
}

// scan walks the tree and returns the sorted relative paths of files
// containing the marker, reading files concurrently.
func (c *Checker) scan(ctx context.Context) ([]string, error) {
	docRel := filepath.ToSlash(c.docPath())

	var candidates []string
	err := filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(c.Root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		if c.excluded(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.ToSlash(rel) == docRel {
			return nil
		}
		candidates = append(candidates, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", c.Root, err)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	var mu sync.Mutex
	var marked []string
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, rel := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(filepath.Join(c.Root, rel))
			if err != nil {
				return fmt.Errorf("read %s: %w", rel, err)
			}
			if strings.Contains(string(data), Marker) {
				mu.Lock()
				marked = append(marked, filepath.ToSlash(rel))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(marked)
	return marked, nil
}
