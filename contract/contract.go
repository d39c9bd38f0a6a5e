// Package contract defines the component contract schema: the full
// specification of a UI component covering its props, variants, states,
// token dependencies, interaction model, and acceptance checklist.
// Contracts are built with Builder and serialize to snake_case JSON.
package contract

import (
	"encoding/json"
	"fmt"
)

// State is an interactive or visual state a component can enter.
type State string

const (
	StateHover    State = "hover"
	StateActive   State = "active"
	StateFocused  State = "focused"
	StateDisabled State = "disabled"
	StateError    State = "error"
	StateOpen     State = "open"
	StateSelected State = "selected"
	StateReadonly State = "readonly"
)

// AllStates returns every component state.
func AllStates() []State {
	return []State{
		StateHover, StateActive, StateFocused, StateDisabled,
		StateError, StateOpen, StateSelected, StateReadonly,
	}
}

// Disposition describes how a component was sourced.
type Disposition string

const (
	// DispositionReuse marks a component reused from upstream unmodified.
	DispositionReuse Disposition = "reuse"
	// DispositionFork marks a component forked from upstream with local changes.
	DispositionFork Disposition = "fork"
	// DispositionRewrite marks a component written from scratch.
	DispositionRewrite Disposition = "rewrite"
)

// PropDef describes a single prop in a component's public API.
type PropDef struct {
	Name         string  `json:"name"`
	TypeName     string  `json:"type_name"`
	Required     bool    `json:"required"`
	DefaultValue *string `json:"default_value"`
	Description  string  `json:"description"`
}

// TokenRef names a design token a component depends on and how it is used.
type TokenRef struct {
	Path  string `json:"path"`
	Usage string `json:"usage"`
}

// InteractionChecklist holds narrative descriptions of how the component
// handles interaction. Nil fields have not been documented.
type InteractionChecklist struct {
	FocusBehavior    *string `json:"focus_behavior"`
	KeyboardModel    *string `json:"keyboard_model"`
	PointerBehavior  *string `json:"pointer_behavior"`
	StateModel       *string `json:"state_model"`
	DisabledBehavior *string `json:"disabled_behavior"`
	ReadonlyBehavior *string `json:"readonly_behavior"`
}

// AcceptanceChecklist is the boolean sign-off checklist for a component.
type AcceptanceChecklist struct {
	HasFocusBehavior       bool `json:"has_focus_behavior"`
	HasKeyboardModel       bool `json:"has_keyboard_model"`
	HasPointerBehavior     bool `json:"has_pointer_behavior"`
	HasStateModel          bool `json:"has_state_model"`
	HasDisabledSemantics   bool `json:"has_disabled_semantics"`
	SurfacesMappedToTokens bool `json:"surfaces_mapped_to_tokens"`
	NoHardcodedColors      bool `json:"no_hardcoded_colors"`
	HasReleaseModeEvidence bool `json:"has_release_mode_evidence"`
	NoUnapprovedRegression bool `json:"no_unapproved_regressions"`
	BoundedRenderingOK     bool `json:"bounded_rendering_verified"`
	HasStoryCoverage       bool `json:"has_story_coverage"`
	HasInteractionTests    bool `json:"has_interaction_tests"`
	HasProvenanceMetadata  bool `json:"has_provenance_metadata"`
}

// PerfEvidence is performance data collected in release builds.
type PerfEvidence struct {
	RenderTimeMs         *float64 `json:"render_time_ms"`
	InteractionLatencyMs *float64 `json:"interaction_latency_ms"`
	Notes                string   `json:"notes"`
}

// SharedIdentifiers are identifiers every component instance may carry.
type SharedIdentifiers struct {
	ID       *string           `json:"id"`
	Tooltip  *string           `json:"tooltip"`
	Metadata map[string]string `json:"metadata"`
}

// Contract is the full specification of a single UI component.
type Contract struct {
	Name                 string               `json:"name"`
	Version              string               `json:"version"`
	Disposition          Disposition          `json:"disposition"`
	Props                []PropDef            `json:"props"`
	Variants             []string             `json:"variants"`
	States               []State              `json:"states"`
	TokenDependencies    []TokenRef           `json:"token_dependencies"`
	InteractionChecklist InteractionChecklist `json:"interaction_checklist"`
	AcceptanceChecklist  AcceptanceChecklist  `json:"acceptance_checklist"`
	PerfEvidence         *PerfEvidence        `json:"perf_evidence"`
	RequiredFiles        []string             `json:"required_files"`
	SharedIdentifiers    SharedIdentifiers    `json:"shared_identifiers"`
}

// ValidationError identifies a single problem found during validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// HasState reports whether the contract declares the given state.
func (c *Contract) HasState(state State) bool {
	for _, s := range c.States {
		if s == state {
			return true
		}
	}
	return false
}

// Validate checks the contract and returns all problems found. An empty
// result means the contract is valid.
//
// Rules: name and version must be non-empty, at least one prop and one
// state must be declared, required props must not carry defaults, and
// every declared state with an interaction-checklist counterpart must
// have that field filled in.
func (c *Contract) Validate() []ValidationError {
	var errs []ValidationError

	if c.Name == "" {
		errs = append(errs, ValidationError{
			Field:   "name",
			Message: "Component name must not be empty",
		})
	}
	if c.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "version",
			Message: "Version must not be empty",
		})
	}
	if len(c.Props) == 0 {
		errs = append(errs, ValidationError{
			Field:   "props",
			Message: "At least one prop must be defined",
		})
	}
	if len(c.States) == 0 {
		errs = append(errs, ValidationError{
			Field:   "states",
			Message: "At least one state must be listed",
		})
	}

	for i, prop := range c.Props {
		if prop.Required && prop.DefaultValue != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("props[%d].default_value", i),
				Message: fmt.Sprintf("Required prop %q should not have a default value", prop.Name),
			})
		}
	}

	ic := c.InteractionChecklist
	if c.HasState(StateDisabled) && ic.DisabledBehavior == nil {
		errs = append(errs, ValidationError{
			Field:   "interaction_checklist.disabled_behavior",
			Message: "Disabled state is listed but disabled_behavior is not described",
		})
	}
	if c.HasState(StateReadonly) && ic.ReadonlyBehavior == nil {
		errs = append(errs, ValidationError{
			Field:   "interaction_checklist.readonly_behavior",
			Message: "Readonly state is listed but readonly_behavior is not described",
		})
	}
	if c.HasState(StateFocused) && ic.FocusBehavior == nil {
		errs = append(errs, ValidationError{
			Field:   "interaction_checklist.focus_behavior",
			Message: "Focused state is listed but focus_behavior is not described",
		})
	}
	if c.HasState(StateHover) && ic.PointerBehavior == nil {
		errs = append(errs, ValidationError{
			Field:   "interaction_checklist.pointer_behavior",
			Message: "Hover state is listed but pointer_behavior is not described",
		})
	}

	return errs
}

// ToJSON serializes the contract as indented JSON.
func (c *Contract) ToJSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// FromJSON parses a contract from JSON.
func FromJSON(data []byte) (*Contract, error) {
	var c Contract
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse contract: %w", err)
	}
	return &c, nil
}
