package plan

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/studiokit/workbench/registry"
)

// Installer orchestrates the full add and remove lifecycle: plan
// generation against the real file tree, apply, and install-state
// bookkeeping.
type Installer struct {
	index  *registry.Index
	layout Layout
	store  *Store
	logger *slog.Logger
}

// NewInstaller creates an installer over the given registry index, target
// layout, and install-state store.
func NewInstaller(index *registry.Index, layout Layout, store *Store, logger *slog.Logger) *Installer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Installer{index: index, layout: layout, store: store, logger: logger}
}

// PlanAdd generates the installation plan for a component, with conflicts
// detected against files actually on disk.
func (ins *Installer) PlanAdd(component string) (*Plan, error) {
	entry, ok := ins.index.Get(component)
	if !ok {
		return nil, fmt.Errorf("unknown component %q", component)
	}
	probe := Generate(entry, ins.layout, nil)
	existing := DetectExisting(TargetPaths(probe))
	return Generate(entry, ins.layout, existing), nil
}

// Add plans and applies the installation of a component, then records the
// install. An already-installed component is rejected unless force is set.
func (ins *Installer) Add(component string, opts ApplyOptions) (*ApplyResult, error) {
	entry, ok := ins.index.Get(component)
	if !ok {
		return nil, fmt.Errorf("unknown component %q", component)
	}
	if ins.store.IsInstalled(entry.Name) && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInstalled, entry.Name)
	}

	p, err := ins.PlanAdd(component)
	if err != nil {
		return nil, err
	}
	result, err := Apply(p, opts)
	if err != nil {
		return nil, err
	}
	ins.logger.Info("component installed",
		"component", entry.Name,
		"version", entry.Version,
		"mutations", result.Applied,
		"run_id", result.RunID)

	record := &InstallRecord{
		Component:   entry.Name,
		Version:     entry.Version,
		InstalledAt: time.Now().UTC(),
		RunID:       result.RunID,
		Files:       TargetPaths(p),
		Checksums:   p.FileChecksums,
		Layout:      p.TargetLayout,
	}
	if err := ins.store.Save(record); err != nil {
		return nil, fmt.Errorf("record install: %w", err)
	}
	return result, nil
}

// PlanRemove generates the removal plan for an installed component from
// its install record.
func (ins *Installer) PlanRemove(component string) (*Plan, error) {
	entry, ok := ins.index.Get(component)
	if !ok {
		return nil, fmt.Errorf("unknown component %q", component)
	}
	record, err := ins.store.Load(entry.Name)
	if err != nil {
		return nil, err
	}
	return GenerateRemove(entry, ins.layout, record.Files), nil
}

// Remove plans and applies the removal of an installed component and
// deletes its install record.
func (ins *Installer) Remove(component string, opts ApplyOptions) (*ApplyResult, error) {
	p, err := ins.PlanRemove(component)
	if err != nil {
		return nil, err
	}
	result, err := Apply(p, opts)
	if err != nil {
		return nil, err
	}
	if err := ins.store.Delete(p.ComponentName); err != nil {
		return nil, fmt.Errorf("delete install record: %w", err)
	}
	ins.logger.Info("component removed",
		"component", p.ComponentName,
		"mutations", result.Applied,
		"run_id", result.RunID)
	return result, nil
}
