package theme

func GetPredefinedThemes() map[string]*Theme {
	return map[string]*Theme{
		"default": DefaultTheme(),
		"dark":    DarkTheme(),
		"light":   LightTheme(),
		"dracula": DraculaTheme(),
	}
}

func GetThemeNames() []string {
	return []string{
		"default",
		"dark",
		"light",
		"dracula",
	}
}

func DefaultTheme() *Theme {
	return &Theme{
		Name: "default",

		// semantic
		Primary:   "#7D56F4",
		Secondary: "#8aa4eb",
		Success:   "#04B575",
		Error:     "#FF0000",
		Warning:   "#FF8800",

		// text
		TextPrimary:   "#FAFAFA",
		TextSecondary: "#888888",
		TextMuted:     "#6C6C6C",

		// background
		BgPrimary:   "#000000",
		BgSecondary: "#1a1a1a",

		// category indicator
		CategoryInbox:    "#888888",
		CategoryWork:     "#0088FF",
		CategoryPersonal: "#04B575",
		CategoryErrand:   "#FF8800",

		// completion
		Completed: "#04B575",
		Open:      "#888888",

		// UI element
		BorderColor:  "#7D56F4",
		SelectedBg:   "#7D56F4",
		SelectedFg:   "#FAFAFA",
		HeaderBg:     "#7D56F4",
		HeaderFg:     "#FAFAFA",
		Separator:    "#444444",
		HelpText:     "#888888",
		SubtitleText: "#6C6C6C",
		Backdrop:     "#3A3A3A",
	}
}

func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",

		// semantic
		Primary:   "#BB9AF7",
		Secondary: "#7AA2F7",
		Success:   "#9ECE6A",
		Error:     "#F7768E",
		Warning:   "#E0AF68",

		// text
		TextPrimary:   "#C0CAF5",
		TextSecondary: "#9AA5CE",
		TextMuted:     "#565F89",

		// background
		BgPrimary:   "#1A1B26",
		BgSecondary: "#24283B",

		// category indicator
		CategoryInbox:    "#565F89",
		CategoryWork:     "#7AA2F7",
		CategoryPersonal: "#9ECE6A",
		CategoryErrand:   "#FF9E64",

		// completion
		Completed: "#9ECE6A",
		Open:      "#565F89",

		// UI element
		BorderColor:  "#BB9AF7",
		SelectedBg:   "#BB9AF7",
		SelectedFg:   "#1A1B26",
		HeaderBg:     "#BB9AF7",
		HeaderFg:     "#1A1B26",
		Separator:    "#3B4261",
		HelpText:     "#565F89",
		SubtitleText: "#565F89",
		Backdrop:     "#2F334D",
	}
}

func LightTheme() *Theme {
	return &Theme{
		Name: "light",

		// semantic
		Primary:   "#5B3CC4",
		Secondary: "#2563EB",
		Success:   "#059669",
		Error:     "#DC2626",
		Warning:   "#D97706",

		// text
		TextPrimary:   "#1F2937",
		TextSecondary: "#6B7280",
		TextMuted:     "#9CA3AF",

		// background
		BgPrimary:   "#FFFFFF",
		BgSecondary: "#F3F4F6",

		// category indicator
		CategoryInbox:    "#6B7280",
		CategoryWork:     "#2563EB",
		CategoryPersonal: "#059669",
		CategoryErrand:   "#EA580C",

		// completion
		Completed: "#059669",
		Open:      "#6B7280",

		// UI element
		BorderColor:  "#5B3CC4",
		SelectedBg:   "#5B3CC4",
		SelectedFg:   "#FFFFFF",
		HeaderBg:     "#5B3CC4",
		HeaderFg:     "#FFFFFF",
		Separator:    "#D1D5DB",
		HelpText:     "#6B7280",
		SubtitleText: "#9CA3AF",
		Backdrop:     "#D1D5DB",
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name: "dracula",

		// semantic
		Primary:   "#BD93F9",
		Secondary: "#8BE9FD",
		Success:   "#50FA7B",
		Error:     "#FF5555",
		Warning:   "#FFB86C",

		// text
		TextPrimary:   "#F8F8F2",
		TextSecondary: "#6272A4",
		TextMuted:     "#44475A",

		// background
		BgPrimary:   "#282A36",
		BgSecondary: "#44475A",

		// category indicator
		CategoryInbox:    "#6272A4",
		CategoryWork:     "#8BE9FD",
		CategoryPersonal: "#50FA7B",
		CategoryErrand:   "#FFB86C",

		// completion
		Completed: "#50FA7B",
		Open:      "#6272A4",

		// UI element
		BorderColor:  "#BD93F9",
		SelectedBg:   "#BD93F9",
		SelectedFg:   "#282A36",
		HeaderBg:     "#BD93F9",
		HeaderFg:     "#282A36",
		Separator:    "#44475A",
		HelpText:     "#6272A4",
		SubtitleText: "#6272A4",
		Backdrop:     "#44475A",
	}
}
