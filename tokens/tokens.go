// Package tokens defines the design token model and the frozen One Dark /
// One Light token sets extracted from Zed's one.json theme.
//
// Tokens are the single source of truth for all component colors, surfaces,
// and states. Components resolve colors through tokens and never hard-code
// color values.
package tokens

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Appearance is the theme appearance mode.
type Appearance string

const (
	Dark  Appearance = "dark"
	Light Appearance = "light"
)

// BorderTokens cover outlines, separators, and focus/selection indicators.
type BorderTokens struct {
	Default     Color `json:"default" yaml:"default"`
	Variant     Color `json:"variant" yaml:"variant"`
	Focused     Color `json:"focused" yaml:"focused"`
	Selected    Color `json:"selected" yaml:"selected"`
	Transparent Color `json:"transparent" yaml:"transparent"`
	Disabled    Color `json:"disabled" yaml:"disabled"`
}

// SurfaceTokens cover app, panel, and elevated surfaces.
type SurfaceTokens struct {
	Background      Color `json:"background" yaml:"background"`
	Surface         Color `json:"surface" yaml:"surface"`
	ElevatedSurface Color `json:"elevated_surface" yaml:"elevated_surface"`
}

// ElementTokens are backgrounds for interactive element states.
type ElementTokens struct {
	Background Color `json:"background" yaml:"background"`
	Hover      Color `json:"hover" yaml:"hover"`
	Active     Color `json:"active" yaml:"active"`
	Selected   Color `json:"selected" yaml:"selected"`
	Disabled   Color `json:"disabled" yaml:"disabled"`
}

// GhostElementTokens are transparent-background variants of element states.
type GhostElementTokens struct {
	Background Color `json:"background" yaml:"background"`
	Hover      Color `json:"hover" yaml:"hover"`
	Active     Color `json:"active" yaml:"active"`
	Selected   Color `json:"selected" yaml:"selected"`
	Disabled   Color `json:"disabled" yaml:"disabled"`
}

// TextTokens cover primary, muted, placeholder, disabled, and accent text.
type TextTokens struct {
	Default     Color `json:"default" yaml:"default"`
	Muted       Color `json:"muted" yaml:"muted"`
	Placeholder Color `json:"placeholder" yaml:"placeholder"`
	Disabled    Color `json:"disabled" yaml:"disabled"`
	Accent      Color `json:"accent" yaml:"accent"`
}

// IconTokens mirror the text token categories.
type IconTokens struct {
	Default     Color `json:"default" yaml:"default"`
	Muted       Color `json:"muted" yaml:"muted"`
	Disabled    Color `json:"disabled" yaml:"disabled"`
	Placeholder Color `json:"placeholder" yaml:"placeholder"`
	Accent      Color `json:"accent" yaml:"accent"`
}

// StatusTriplet is a semantic status color triplet.
type StatusTriplet struct {
	Foreground Color `json:"foreground" yaml:"foreground"`
	Background Color `json:"background" yaml:"background"`
	Border     Color `json:"border" yaml:"border"`
}

// StatusTokens cover error, warning, info, success, and hint colors.
type StatusTokens struct {
	Error   StatusTriplet `json:"error" yaml:"error"`
	Warning StatusTriplet `json:"warning" yaml:"warning"`
	Info    StatusTriplet `json:"info" yaml:"info"`
	Success StatusTriplet `json:"success" yaml:"success"`
	Hint    StatusTriplet `json:"hint" yaml:"hint"`
}

// TabTokens cover tab and tab bar chrome.
type TabTokens struct {
	BarBackground      Color `json:"bar_background" yaml:"bar_background"`
	InactiveBackground Color `json:"inactive_background" yaml:"inactive_background"`
	ActiveBackground   Color `json:"active_background" yaml:"active_background"`
}

// PanelTokens cover panel chrome. FocusedBorder is nil when the theme does
// not define one.
type PanelTokens struct {
	Background    Color  `json:"background" yaml:"background"`
	FocusedBorder *Color `json:"focused_border" yaml:"focused_border"`
}

// ChromeTokens cover the title bar, status bar, and toolbar.
type ChromeTokens struct {
	TitleBarBackground  Color `json:"title_bar_background" yaml:"title_bar_background"`
	StatusBarBackground Color `json:"status_bar_background" yaml:"status_bar_background"`
	ToolbarBackground   Color `json:"toolbar_background" yaml:"toolbar_background"`
}

// ScrollbarTokens cover scrollbar thumb and track.
type ScrollbarTokens struct {
	ThumbBackground      Color `json:"thumb_background" yaml:"thumb_background"`
	ThumbHoverBackground Color `json:"thumb_hover_background" yaml:"thumb_hover_background"`
	ThumbBorder          Color `json:"thumb_border" yaml:"thumb_border"`
	TrackBackground      Color `json:"track_background" yaml:"track_background"`
	TrackBorder          Color `json:"track_border" yaml:"track_border"`
}

// PlayerTokens are the primary player accent colors (cursor, background,
// selection from players[0]).
type PlayerTokens struct {
	Cursor     Color `json:"cursor" yaml:"cursor"`
	Background Color `json:"background" yaml:"background"`
	Selection  Color `json:"selection" yaml:"selection"`
}

// LinkTokens cover link text.
type LinkTokens struct {
	Hover Color `json:"hover" yaml:"hover"`
}

// Set is the complete set of design tokens for a theme.
//
// Covered categories: border, surface, element/ghost states, text, icon,
// status colors, tab/panel/chrome, scrollbar, player accent, and link
// tokens. Editor, terminal, and syntax tokens are out of scope.
type Set struct {
	Name         string             `json:"name" yaml:"name"`
	Appearance   Appearance         `json:"appearance" yaml:"appearance"`
	Border       BorderTokens       `json:"border" yaml:"border"`
	Surface      SurfaceTokens      `json:"surface" yaml:"surface"`
	Element      ElementTokens      `json:"element" yaml:"element"`
	GhostElement GhostElementTokens `json:"ghost_element" yaml:"ghost_element"`
	Text         TextTokens         `json:"text" yaml:"text"`
	Icon         IconTokens         `json:"icon" yaml:"icon"`
	Status       StatusTokens       `json:"status" yaml:"status"`
	Tab          TabTokens          `json:"tab" yaml:"tab"`
	Panel        PanelTokens        `json:"panel" yaml:"panel"`
	Chrome       ChromeTokens       `json:"chrome" yaml:"chrome"`
	Scrollbar    ScrollbarTokens    `json:"scrollbar" yaml:"scrollbar"`
	Player       PlayerTokens       `json:"player" yaml:"player"`
	Link         LinkTokens         `json:"link" yaml:"link"`
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	out := *s
	if s.Panel.FocusedBorder != nil {
		fb := *s.Panel.FocusedBorder
		out.Panel.FocusedBorder = &fb
	}
	return &out
}

// ToJSON serializes the set as indented JSON.
func (s *Set) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal token set: %w", err)
	}
	return data, nil
}

// FromJSON parses a token set from JSON.
func FromJSON(data []byte) (*Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse token set: %w", err)
	}
	return &s, nil
}

// ToYAML serializes the set as YAML.
func (s *Set) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal token set: %w", err)
	}
	return data, nil
}

// FromYAML parses a token set from YAML.
func FromYAML(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse token set: %w", err)
	}
	return &s, nil
}
