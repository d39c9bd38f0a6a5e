package tokens

// MappingEntry records the correspondence between an internal token path and
// its source key in Zed's one.json. Used for provenance tracking and theme
// import/export.
type MappingEntry struct {
	Internal string
	Upstream string
}

// Mapping is the full token-to-upstream-key table.
var Mapping = []MappingEntry{
	// Border
	{"border.default", "border"},
	{"border.variant", "border.variant"},
	{"border.focused", "border.focused"},
	{"border.selected", "border.selected"},
	{"border.transparent", "border.transparent"},
	{"border.disabled", "border.disabled"},
	// Surface
	{"surface.background", "background"},
	{"surface.surface", "surface.background"},
	{"surface.elevated_surface", "elevated_surface.background"},
	// Element states
	{"element.background", "element.background"},
	{"element.hover", "element.hover"},
	{"element.active", "element.active"},
	{"element.selected", "element.selected"},
	{"element.disabled", "element.disabled"},
	// Ghost element states
	{"ghost_element.background", "ghost_element.background"},
	{"ghost_element.hover", "ghost_element.hover"},
	{"ghost_element.active", "ghost_element.active"},
	{"ghost_element.selected", "ghost_element.selected"},
	{"ghost_element.disabled", "ghost_element.disabled"},
	// Text
	{"text.default", "text"},
	{"text.muted", "text.muted"},
	{"text.placeholder", "text.placeholder"},
	{"text.disabled", "text.disabled"},
	{"text.accent", "text.accent"},
	// Icon
	{"icon.default", "icon"},
	{"icon.muted", "icon.muted"},
	{"icon.disabled", "icon.disabled"},
	{"icon.placeholder", "icon.placeholder"},
	{"icon.accent", "icon.accent"},
	// Status
	{"status.error.foreground", "error"},
	{"status.error.background", "error.background"},
	{"status.error.border", "error.border"},
	{"status.warning.foreground", "warning"},
	{"status.warning.background", "warning.background"},
	{"status.warning.border", "warning.border"},
	{"status.info.foreground", "info"},
	{"status.info.background", "info.background"},
	{"status.info.border", "info.border"},
	{"status.success.foreground", "success"},
	{"status.success.background", "success.background"},
	{"status.success.border", "success.border"},
	{"status.hint.foreground", "hint"},
	{"status.hint.background", "hint.background"},
	{"status.hint.border", "hint.border"},
	// Tab
	{"tab.bar_background", "tab_bar.background"},
	{"tab.inactive_background", "tab.inactive_background"},
	{"tab.active_background", "tab.active_background"},
	// Panel
	{"panel.background", "panel.background"},
	{"panel.focused_border", "panel.focused_border"},
	// Chrome
	{"chrome.title_bar_background", "title_bar.background"},
	{"chrome.status_bar_background", "status_bar.background"},
	{"chrome.toolbar_background", "toolbar.background"},
	// Scrollbar
	{"scrollbar.thumb_background", "scrollbar.thumb.background"},
	{"scrollbar.thumb_hover_background", "scrollbar.thumb.hover_background"},
	{"scrollbar.thumb_border", "scrollbar.thumb.border"},
	{"scrollbar.track_background", "scrollbar.track.background"},
	{"scrollbar.track_border", "scrollbar.track.border"},
	// Player
	{"player.cursor", "players[0].cursor"},
	{"player.background", "players[0].background"},
	{"player.selection", "players[0].selection"},
	// Link
	{"link.hover", "link_text.hover"},
}

// Paths returns every internal token dot-path, in mapping order. Useful for
// CLI introspection, autocomplete, and validation.
func Paths() []string {
	paths := make([]string, len(Mapping))
	for i, m := range Mapping {
		paths[i] = m.Internal
	}
	return paths
}
