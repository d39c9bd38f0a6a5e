package contract

// Dialog returns the contract for the modal dialog component.
func Dialog() *Contract {
	return NewBuilder("Dialog", "0.1.0").
		Disposition(DispositionFork).
		RequiredProp("id", "ElementId", "Unique identifier for the dialog instance").
		OptionalProp("title", "Option<SharedString>", "None", "Dialog title text").
		OptionalProp("description", "Option<SharedString>", "None", "Dialog description text").
		OptionalProp("width", "Pixels", "480.0", "Dialog width in pixels").
		OptionalProp("overlay_closable", "bool", "true", "Whether clicking backdrop closes the dialog").
		OptionalProp("show_close_button", "bool", "true", "Whether to show the X close button").
		OptionalProp("tooltip", "Option<SharedString>", "None", "Tooltip text").
		States(StateOpen, StateFocused, StateHover, StateActive).
		TokenDep("surface.elevated_surface", "Dialog panel background").
		TokenDep("border.default", "Dialog panel border").
		TokenDep("text.default", "Dialog title and body text").
		TokenDep("text.muted", "Dialog description text").
		TokenDep("surface.background", "Overlay backdrop (with alpha)").
		TokenDep("ghost_element.hover", "Close button hover state").
		FocusBehavior("Focus trap: Tab/Shift-Tab cycle within dialog. " +
			"Focus captured on open, returned to trigger on close.").
		KeyboardModel("Escape dismisses the dialog. Enter is not bound by default " +
			"(action buttons handle their own activation).").
		PointerBehavior("Click on backdrop dismisses (if overlay_closable). " +
			"Click on close button dismisses. " +
			"Mouse events on dialog panel stop propagation to backdrop.").
		StateModel("Controlled open/close via OpenState. " +
			"Dialog is created in Open state; closing returns focus.").
		RequiredFile("src/shared/ui/dialog/dialog.rs").
		Build()
}

// Select returns the contract for the dropdown select component.
func Select() *Contract {
	return NewBuilder("Select", "0.1.0").
		Disposition(DispositionFork).
		RequiredProp("id", "ElementId", "Unique identifier for the select instance").
		RequiredProp("items", "Vec<SelectItem>", "List of selectable items").
		OptionalProp("selected_index", "Option<usize>", "None", "Currently selected item index").
		OptionalProp("placeholder", "SharedString", "Select...", "Text shown when no item is selected").
		OptionalProp("disabled", "bool", "false", "Whether the select is disabled").
		OptionalProp("width", "Pixels", "200.0", "Select trigger width").
		OptionalProp("tooltip", "Option<SharedString>", "None", "Tooltip text").
		States(StateOpen, StateFocused, StateHover, StateActive, StateSelected, StateDisabled).
		TokenDep("element.background", "Trigger button background").
		TokenDep("element.hover", "Trigger button hover background").
		TokenDep("border.default", "Trigger and popover border").
		TokenDep("text.default", "Selected item text").
		TokenDep("text.placeholder", "Placeholder text").
		TokenDep("text.disabled", "Disabled item text").
		TokenDep("surface.elevated_surface", "Popover dropdown background").
		TokenDep("ghost_element.hover", "Dropdown item hover background").
		TokenDep("ghost_element.selected", "Selected dropdown item background").
		FocusBehavior("Trigger receives focus via Tab. Arrow keys navigate items. " +
			"Focus returns to trigger on close.").
		KeyboardModel("Enter/Space opens dropdown and selects highlighted item. " +
			"Up/Down arrows navigate through items (wrapping). " +
			"Escape closes dropdown. Home/End jump to first/last.").
		PointerBehavior("Click on trigger toggles dropdown. " +
			"Click on item selects it. " +
			"Click outside dismisses dropdown.").
		StateModel("Supports controlled (selected_index) and uncontrolled mode. " +
			"OpenState tracks popover visibility. " +
			"on_change fires when selection changes.").
		DisabledBehavior("Disabled state blocks all interaction, shows reduced-opacity text, " +
			"prevents dropdown from opening.").
		RequiredFile("src/shared/ui/select/select.rs").
		Build()
}

// Tabs returns the contract for the tab bar component.
func Tabs() *Contract {
	return NewBuilder("Tabs", "0.1.0").
		Disposition(DispositionFork).
		RequiredProp("id", "ElementId", "Unique identifier for the tabs instance").
		RequiredProp("tabs", "Vec<TabItem>", "List of tab definitions").
		OptionalProp("active_index", "usize", "0", "Index of the currently active tab").
		OptionalProp("tooltip", "Option<SharedString>", "None", "Tooltip text").
		States(StateFocused, StateHover, StateActive, StateSelected, StateDisabled).
		TokenDep("tab.bar_background", "Tab bar background color").
		TokenDep("tab.active_background", "Active tab background color").
		TokenDep("tab.inactive_background", "Inactive tab background color").
		TokenDep("border.default", "Tab bar bottom border").
		TokenDep("border.selected", "Active tab indicator").
		TokenDep("text.default", "Active tab text color").
		TokenDep("text.muted", "Inactive tab text color").
		TokenDep("text.disabled", "Disabled tab text color").
		TokenDep("ghost_element.hover", "Tab hover background").
		FocusBehavior("Tab bar receives focus via Tab key. " +
			"Left/Right arrows navigate between tabs. " +
			"Tab/Shift-Tab moves focus out of the tab bar.").
		KeyboardModel("Left/Right arrows move between tabs (wrapping). " +
			"Home/End jump to first/last tab. " +
			"Enter/Space activates the focused tab. " +
			"Disabled tabs are skipped during navigation.").
		PointerBehavior("Click on a tab activates it. " +
			"Hover shows highlight. " +
			"Disabled tabs do not respond to click.").
		StateModel("Supports controlled (active_index) and uncontrolled mode. " +
			"on_change fires when active tab changes. " +
			"Each tab has its own disabled state.").
		DisabledBehavior("Disabled tabs are visually dimmed, " +
			"skip during keyboard navigation, " +
			"and do not respond to click events.").
		RequiredFile("src/shared/ui/tabs/tabs.rs").
		Build()
}

// Builtin returns every built-in component contract.
func Builtin() []*Contract {
	return []*Contract{Dialog(), Select(), Tabs()}
}
