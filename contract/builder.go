package contract

// Builder constructs a Contract incrementally. All setters return the
// builder for chaining; call Build to produce the finished contract.
type Builder struct {
	c Contract
}

// NewBuilder starts a contract for the given component name and version.
// The disposition defaults to rewrite.
func NewBuilder(name, version string) *Builder {
	return &Builder{c: Contract{
		Name:        name,
		Version:     version,
		Disposition: DispositionRewrite,
	}}
}

// Disposition sets the sourcing disposition.
func (b *Builder) Disposition(d Disposition) *Builder {
	b.c.Disposition = d
	return b
}

// Prop adds a prop definition.
func (b *Builder) Prop(p PropDef) *Builder {
	b.c.Props = append(b.c.Props, p)
	return b
}

// RequiredProp adds a caller-supplied prop with no default.
func (b *Builder) RequiredProp(name, typeName, description string) *Builder {
	return b.Prop(PropDef{
		Name:        name,
		TypeName:    typeName,
		Required:    true,
		Description: description,
	})
}

// OptionalProp adds an optional prop with a default value.
func (b *Builder) OptionalProp(name, typeName, defaultValue, description string) *Builder {
	return b.Prop(PropDef{
		Name:         name,
		TypeName:     typeName,
		Required:     false,
		DefaultValue: &defaultValue,
		Description:  description,
	})
}

// Variant adds a named visual variant.
func (b *Builder) Variant(variant string) *Builder {
	b.c.Variants = append(b.c.Variants, variant)
	return b
}

// State adds a component state, ignoring duplicates.
func (b *Builder) State(state State) *Builder {
	if !b.c.HasState(state) {
		b.c.States = append(b.c.States, state)
	}
	return b
}

// States adds multiple states at once.
func (b *Builder) States(states ...State) *Builder {
	for _, s := range states {
		b.State(s)
	}
	return b
}

// TokenDep records a design-token dependency.
func (b *Builder) TokenDep(path, usage string) *Builder {
	b.c.TokenDependencies = append(b.c.TokenDependencies, TokenRef{Path: path, Usage: usage})
	return b
}

// FocusBehavior documents focus navigation.
func (b *Builder) FocusBehavior(desc string) *Builder {
	b.c.InteractionChecklist.FocusBehavior = &desc
	return b
}

// KeyboardModel documents keyboard shortcuts and navigation.
func (b *Builder) KeyboardModel(desc string) *Builder {
	b.c.InteractionChecklist.KeyboardModel = &desc
	return b
}

// PointerBehavior documents click, hover, and pointer behavior.
func (b *Builder) PointerBehavior(desc string) *Builder {
	b.c.InteractionChecklist.PointerBehavior = &desc
	return b
}

// StateModel documents controlled vs uncontrolled state management.
func (b *Builder) StateModel(desc string) *Builder {
	b.c.InteractionChecklist.StateModel = &desc
	return b
}

// DisabledBehavior documents behavior while disabled.
func (b *Builder) DisabledBehavior(desc string) *Builder {
	b.c.InteractionChecklist.DisabledBehavior = &desc
	return b
}

// ReadonlyBehavior documents behavior while read-only.
func (b *Builder) ReadonlyBehavior(desc string) *Builder {
	b.c.InteractionChecklist.ReadonlyBehavior = &desc
	return b
}

// AcceptanceChecklist sets the sign-off checklist.
func (b *Builder) AcceptanceChecklist(cl AcceptanceChecklist) *Builder {
	b.c.AcceptanceChecklist = cl
	return b
}

// PerfEvidence attaches performance evidence.
func (b *Builder) PerfEvidence(e PerfEvidence) *Builder {
	b.c.PerfEvidence = &e
	return b
}

// RequiredFile adds a file path the implementation needs.
func (b *Builder) RequiredFile(path string) *Builder {
	b.c.RequiredFiles = append(b.c.RequiredFiles, path)
	return b
}

// ID sets the component instance id.
func (b *Builder) ID(id string) *Builder {
	b.c.SharedIdentifiers.ID = &id
	return b
}

// Tooltip sets the tooltip text.
func (b *Builder) Tooltip(tooltip string) *Builder {
	b.c.SharedIdentifiers.Tooltip = &tooltip
	return b
}

// Metadata inserts a metadata key-value pair.
func (b *Builder) Metadata(key, value string) *Builder {
	if b.c.SharedIdentifiers.Metadata == nil {
		b.c.SharedIdentifiers.Metadata = make(map[string]string)
	}
	b.c.SharedIdentifiers.Metadata[key] = value
	return b
}

// Build returns the finished contract.
func (b *Builder) Build() *Contract {
	c := b.c
	return &c
}
