// Package registry indexes installable components by name. The index is
// generated from contract metadata rather than hand-maintained manifests,
// so it is always regenerable and never stale.
package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/studiokit/workbench/contract"
)

// Entry is a flattened, serializable view of a component contract,
// optimized for lookup and listing.
type Entry struct {
	Name              string               `json:"name"`
	Version           string               `json:"version"`
	Disposition       contract.Disposition `json:"disposition"`
	Variants          []string             `json:"variants"`
	States            []contract.State     `json:"states"`
	Props             []contract.PropDef   `json:"props"`
	TokenDependencies []contract.TokenRef  `json:"token_dependencies"`
	RequiredFiles     []string             `json:"required_files"`
}

// FromContract flattens a contract into a registry entry.
func FromContract(c *contract.Contract) Entry {
	return Entry{
		Name:              c.Name,
		Version:           c.Version,
		Disposition:       c.Disposition,
		Variants:          append([]string(nil), c.Variants...),
		States:            append([]contract.State(nil), c.States...),
		Props:             append([]contract.PropDef(nil), c.Props...),
		TokenDependencies: append([]contract.TokenRef(nil), c.TokenDependencies...),
		RequiredFiles:     append([]string(nil), c.RequiredFiles...),
	}
}

// Summary returns a one-line description for listing output.
func (e Entry) Summary() string {
	states := make([]string, 0, len(e.States))
	for _, s := range e.States {
		states = append(states, string(s))
	}
	return fmt.Sprintf("%s v%s (%s) -- %d props, %d states [%s], %d files",
		e.Name, e.Version, e.Disposition,
		len(e.Props), len(e.States), strings.Join(states, ", "),
		len(e.RequiredFiles))
}

// Index is the component registry. Lookup is case-insensitive; entries are
// keyed by lowercased name and the latest registration wins.
type Index struct {
	entries map[string]Entry
}

// NewIndex creates an empty registry index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]Entry)}
}

// Register indexes a component from its contract, replacing any existing
// entry with the same name.
func (idx *Index) Register(c *contract.Contract) {
	entry := FromContract(c)
	idx.entries[strings.ToLower(entry.Name)] = entry
}

// Get looks up a component by name, case-insensitively.
func (idx *Index) Get(name string) (Entry, bool) {
	entry, ok := idx.entries[strings.ToLower(name)]
	return entry, ok
}

// List returns all entries sorted by name.
func (idx *Index) List() []Entry {
	entries := make([]Entry, 0, len(idx.entries))
	for _, e := range idx.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Names returns all component names, sorted.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for _, e := range idx.entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (idx *Index) Len() int { return len(idx.entries) }

// Remove deletes a component by name, case-insensitively, and returns the
// removed entry if one existed.
func (idx *Index) Remove(name string) (Entry, bool) {
	key := strings.ToLower(name)
	entry, ok := idx.entries[key]
	if ok {
		delete(idx.entries, key)
	}
	return entry, ok
}

type indexJSON struct {
	Entries map[string]Entry `json:"entries"`
}

// MarshalJSON serializes the index with its lowercased-name keys.
func (idx *Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(indexJSON{Entries: idx.entries})
}

// UnmarshalJSON restores an index serialized by MarshalJSON.
func (idx *Index) UnmarshalJSON(data []byte) error {
	var raw indexJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Entries == nil {
		raw.Entries = make(map[string]Entry)
	}
	idx.entries = raw.Entries
	return nil
}

// ToJSON serializes the index as indented JSON.
func (idx *Index) ToJSON() ([]byte, error) {
	return json.MarshalIndent(idx, "", "  ")
}

// FromJSON parses an index from JSON.
func FromJSON(data []byte) (*Index, error) {
	idx := NewIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("parse registry index: %w", err)
	}
	return idx, nil
}

// ComponentErrors pairs a component name with its validation failures.
type ComponentErrors struct {
	Name   string
	Errors []contract.ValidationError
}

func (e ComponentErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.Error())
	}
	return fmt.Sprintf("%s: %s", e.Name, strings.Join(msgs, "; "))
}

// ValidationFailure aggregates validation errors across components.
type ValidationFailure struct {
	Components []ComponentErrors
}

func (f *ValidationFailure) Error() string {
	msgs := make([]string, 0, len(f.Components))
	for _, ce := range f.Components {
		msgs = append(msgs, ce.Error())
	}
	return fmt.Sprintf("registry validation failed: %s", strings.Join(msgs, " | "))
}

// Generate builds the index from the built-in component contracts. Contract
// metadata is read straight from source, so the index always matches the
// component implementations.
func Generate() *Index {
	idx := NewIndex()
	for _, c := range contract.Builtin() {
		idx.Register(c)
	}
	return idx
}

// GenerateValidated builds the index, failing if any contract is invalid.
func GenerateValidated() (*Index, error) {
	contracts := contract.Builtin()

	var failure ValidationFailure
	for _, c := range contracts {
		if errs := c.Validate(); len(errs) > 0 {
			failure.Components = append(failure.Components, ComponentErrors{
				Name:   c.Name,
				Errors: errs,
			})
		}
	}
	if len(failure.Components) > 0 {
		return nil, &failure
	}

	idx := NewIndex()
	for _, c := range contracts {
		idx.Register(c)
	}
	return idx, nil
}
