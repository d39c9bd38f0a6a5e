package tokens

// OneDark returns the frozen One Dark token set, extracted from Zed's
// one.json.
func OneDark() *Set {
	return &Set{
		Name:       "One Dark",
		Appearance: Dark,
		Border: BorderTokens{
			Default:     MustColor("#464b57ff"),
			Variant:     MustColor("#363c46ff"),
			Focused:     MustColor("#47679eff"),
			Selected:    MustColor("#293b5bff"),
			Transparent: MustColor("#00000000"),
			Disabled:    MustColor("#414754ff"),
		},
		Surface: SurfaceTokens{
			Background:      MustColor("#3b414dff"),
			Surface:         MustColor("#2f343eff"),
			ElevatedSurface: MustColor("#2f343eff"),
		},
		Element: ElementTokens{
			Background: MustColor("#2e343eff"),
			Hover:      MustColor("#363c46ff"),
			Active:     MustColor("#454a56ff"),
			Selected:   MustColor("#454a56ff"),
			Disabled:   MustColor("#2e343eff"),
		},
		GhostElement: GhostElementTokens{
			Background: MustColor("#00000000"),
			Hover:      MustColor("#363c46ff"),
			Active:     MustColor("#454a56ff"),
			Selected:   MustColor("#454a56ff"),
			Disabled:   MustColor("#2e343eff"),
		},
		Text: TextTokens{
			Default:     MustColor("#dce0e5ff"),
			Muted:       MustColor("#a9afbcff"),
			Placeholder: MustColor("#878a98ff"),
			Disabled:    MustColor("#878a98ff"),
			Accent:      MustColor("#74ade8ff"),
		},
		Icon: IconTokens{
			Default:     MustColor("#dce0e5ff"),
			Muted:       MustColor("#a9afbcff"),
			Disabled:    MustColor("#878a98ff"),
			Placeholder: MustColor("#a9afbcff"),
			Accent:      MustColor("#74ade8ff"),
		},
		Status: StatusTokens{
			Error: StatusTriplet{
				Foreground: MustColor("#d07277ff"),
				Background: MustColor("#d072771a"),
				Border:     MustColor("#4c2b2cff"),
			},
			Warning: StatusTriplet{
				Foreground: MustColor("#dec184ff"),
				Background: MustColor("#dec1841a"),
				Border:     MustColor("#5d4c2fff"),
			},
			Info: StatusTriplet{
				Foreground: MustColor("#74ade8ff"),
				Background: MustColor("#74ade81a"),
				Border:     MustColor("#293b5bff"),
			},
			Success: StatusTriplet{
				Foreground: MustColor("#a1c181ff"),
				Background: MustColor("#a1c1811a"),
				Border:     MustColor("#38482fff"),
			},
			Hint: StatusTriplet{
				Foreground: MustColor("#788ca6ff"),
				Background: MustColor("#5a6f891a"),
				Border:     MustColor("#293b5bff"),
			},
		},
		Tab: TabTokens{
			BarBackground:      MustColor("#2f343eff"),
			InactiveBackground: MustColor("#2f343eff"),
			ActiveBackground:   MustColor("#282c33ff"),
		},
		Panel: PanelTokens{
			Background:    MustColor("#2f343eff"),
			FocusedBorder: nil,
		},
		Chrome: ChromeTokens{
			TitleBarBackground:  MustColor("#3b414dff"),
			StatusBarBackground: MustColor("#3b414dff"),
			ToolbarBackground:   MustColor("#282c33ff"),
		},
		Scrollbar: ScrollbarTokens{
			ThumbBackground:      MustColor("#c8ccd44c"),
			ThumbHoverBackground: MustColor("#363c46ff"),
			ThumbBorder:          MustColor("#363c46ff"),
			TrackBackground:      MustColor("#00000000"),
			TrackBorder:          MustColor("#2e333cff"),
		},
		Player: PlayerTokens{
			Cursor:     MustColor("#74ade8ff"),
			Background: MustColor("#74ade8ff"),
			Selection:  MustColor("#74ade83d"),
		},
		Link: LinkTokens{
			Hover: MustColor("#74ade8ff"),
		},
	}
}

// OneLight returns the frozen One Light token set, extracted from Zed's
// one.json.
func OneLight() *Set {
	return &Set{
		Name:       "One Light",
		Appearance: Light,
		Border: BorderTokens{
			Default:     MustColor("#c9c9caff"),
			Variant:     MustColor("#dfdfe0ff"),
			Focused:     MustColor("#7d82e8ff"),
			Selected:    MustColor("#cbcdf6ff"),
			Transparent: MustColor("#00000000"),
			Disabled:    MustColor("#d3d3d4ff"),
		},
		Surface: SurfaceTokens{
			Background:      MustColor("#dcdcddff"),
			Surface:         MustColor("#ebebecff"),
			ElevatedSurface: MustColor("#ebebecff"),
		},
		Element: ElementTokens{
			Background: MustColor("#ebebecff"),
			Hover:      MustColor("#dfdfe0ff"),
			Active:     MustColor("#cacacaff"),
			Selected:   MustColor("#cacacaff"),
			Disabled:   MustColor("#ebebecff"),
		},
		GhostElement: GhostElementTokens{
			Background: MustColor("#00000000"),
			Hover:      MustColor("#dfdfe0ff"),
			Active:     MustColor("#cacacaff"),
			Selected:   MustColor("#cacacaff"),
			Disabled:   MustColor("#ebebecff"),
		},
		Text: TextTokens{
			Default:     MustColor("#242529ff"),
			Muted:       MustColor("#58585aff"),
			Placeholder: MustColor("#7e8086ff"),
			Disabled:    MustColor("#7e8086ff"),
			Accent:      MustColor("#5c78e2ff"),
		},
		Icon: IconTokens{
			Default:     MustColor("#242529ff"),
			Muted:       MustColor("#58585aff"),
			Disabled:    MustColor("#7e8086ff"),
			Placeholder: MustColor("#58585aff"),
			Accent:      MustColor("#5c78e2ff"),
		},
		Status: StatusTokens{
			Error: StatusTriplet{
				Foreground: MustColor("#d36151ff"),
				Background: MustColor("#fbdfd9ff"),
				Border:     MustColor("#f6c6bdff"),
			},
			Warning: StatusTriplet{
				Foreground: MustColor("#a48819ff"),
				Background: MustColor("#faf2e6ff"),
				Border:     MustColor("#f4e7d1ff"),
			},
			Info: StatusTriplet{
				Foreground: MustColor("#5c78e2ff"),
				Background: MustColor("#e2e2faff"),
				Border:     MustColor("#cbcdf6ff"),
			},
			Success: StatusTriplet{
				Foreground: MustColor("#669f59ff"),
				Background: MustColor("#dfeadbff"),
				Border:     MustColor("#c8dcc1ff"),
			},
			Hint: StatusTriplet{
				Foreground: MustColor("#7274a7ff"),
				Background: MustColor("#e2e2faff"),
				Border:     MustColor("#cbcdf6ff"),
			},
		},
		Tab: TabTokens{
			BarBackground:      MustColor("#ebebecff"),
			InactiveBackground: MustColor("#ebebecff"),
			ActiveBackground:   MustColor("#fafafaff"),
		},
		Panel: PanelTokens{
			Background:    MustColor("#ebebecff"),
			FocusedBorder: nil,
		},
		Chrome: ChromeTokens{
			TitleBarBackground:  MustColor("#dcdcddff"),
			StatusBarBackground: MustColor("#dcdcddff"),
			ToolbarBackground:   MustColor("#fafafaff"),
		},
		Scrollbar: ScrollbarTokens{
			ThumbBackground:      MustColor("#383a414c"),
			ThumbHoverBackground: MustColor("#dfdfe0ff"),
			ThumbBorder:          MustColor("#dfdfe0ff"),
			TrackBackground:      MustColor("#00000000"),
			TrackBorder:          MustColor("#eeeeeeff"),
		},
		Player: PlayerTokens{
			Cursor:     MustColor("#5c78e2ff"),
			Background: MustColor("#5c78e2ff"),
			Selection:  MustColor("#5c78e23d"),
		},
		Link: LinkTokens{
			Hover: MustColor("#5c78e2ff"),
		},
	}
}
