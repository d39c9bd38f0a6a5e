package tokens

import (
	"errors"
	"fmt"
)

// Sentinel errors for token path operations.
var (
	// ErrUnknownPath is returned when a dot-path does not name a token.
	ErrUnknownPath = errors.New("unknown token path")
)

// SetPath sets a single token by dot-path (e.g. "border.default",
// "status.error.foreground") from a hex color string. The path must be one
// of the internal paths in Mapping.
func (s *Set) SetPath(path, hex string) error {
	color, err := ParseColor(hex)
	if err != nil {
		return err
	}
	return s.setPath(path, color)
}

func (s *Set) setPath(path string, color Color) error {
	switch path {
	// Border
	case "border.default":
		s.Border.Default = color
	case "border.variant":
		s.Border.Variant = color
	case "border.focused":
		s.Border.Focused = color
	case "border.selected":
		s.Border.Selected = color
	case "border.transparent":
		s.Border.Transparent = color
	case "border.disabled":
		s.Border.Disabled = color

	// Surface
	case "surface.background":
		s.Surface.Background = color
	case "surface.surface":
		s.Surface.Surface = color
	case "surface.elevated_surface":
		s.Surface.ElevatedSurface = color

	// Element
	case "element.background":
		s.Element.Background = color
	case "element.hover":
		s.Element.Hover = color
	case "element.active":
		s.Element.Active = color
	case "element.selected":
		s.Element.Selected = color
	case "element.disabled":
		s.Element.Disabled = color

	// Ghost element
	case "ghost_element.background":
		s.GhostElement.Background = color
	case "ghost_element.hover":
		s.GhostElement.Hover = color
	case "ghost_element.active":
		s.GhostElement.Active = color
	case "ghost_element.selected":
		s.GhostElement.Selected = color
	case "ghost_element.disabled":
		s.GhostElement.Disabled = color

	// Text
	case "text.default":
		s.Text.Default = color
	case "text.muted":
		s.Text.Muted = color
	case "text.placeholder":
		s.Text.Placeholder = color
	case "text.disabled":
		s.Text.Disabled = color
	case "text.accent":
		s.Text.Accent = color

	// Icon
	case "icon.default":
		s.Icon.Default = color
	case "icon.muted":
		s.Icon.Muted = color
	case "icon.disabled":
		s.Icon.Disabled = color
	case "icon.placeholder":
		s.Icon.Placeholder = color
	case "icon.accent":
		s.Icon.Accent = color

	// Status
	case "status.error.foreground":
		s.Status.Error.Foreground = color
	case "status.error.background":
		s.Status.Error.Background = color
	case "status.error.border":
		s.Status.Error.Border = color
	case "status.warning.foreground":
		s.Status.Warning.Foreground = color
	case "status.warning.background":
		s.Status.Warning.Background = color
	case "status.warning.border":
		s.Status.Warning.Border = color
	case "status.info.foreground":
		s.Status.Info.Foreground = color
	case "status.info.background":
		s.Status.Info.Background = color
	case "status.info.border":
		s.Status.Info.Border = color
	case "status.success.foreground":
		s.Status.Success.Foreground = color
	case "status.success.background":
		s.Status.Success.Background = color
	case "status.success.border":
		s.Status.Success.Border = color
	case "status.hint.foreground":
		s.Status.Hint.Foreground = color
	case "status.hint.background":
		s.Status.Hint.Background = color
	case "status.hint.border":
		s.Status.Hint.Border = color

	// Tab
	case "tab.bar_background":
		s.Tab.BarBackground = color
	case "tab.inactive_background":
		s.Tab.InactiveBackground = color
	case "tab.active_background":
		s.Tab.ActiveBackground = color

	// Panel
	case "panel.background":
		s.Panel.Background = color
	case "panel.focused_border":
		s.Panel.FocusedBorder = &color

	// Chrome
	case "chrome.title_bar_background":
		s.Chrome.TitleBarBackground = color
	case "chrome.status_bar_background":
		s.Chrome.StatusBarBackground = color
	case "chrome.toolbar_background":
		s.Chrome.ToolbarBackground = color

	// Scrollbar
	case "scrollbar.thumb_background":
		s.Scrollbar.ThumbBackground = color
	case "scrollbar.thumb_hover_background":
		s.Scrollbar.ThumbHoverBackground = color
	case "scrollbar.thumb_border":
		s.Scrollbar.ThumbBorder = color
	case "scrollbar.track_background":
		s.Scrollbar.TrackBackground = color
	case "scrollbar.track_border":
		s.Scrollbar.TrackBorder = color

	// Player
	case "player.cursor":
		s.Player.Cursor = color
	case "player.background":
		s.Player.Background = color
	case "player.selection":
		s.Player.Selection = color

	// Link
	case "link.hover":
		s.Link.Hover = color

	default:
		return fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	return nil
}
