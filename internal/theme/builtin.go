package theme

import "github.com/charmbracelet/lipgloss"

// CatppuccinMocha returns the Catppuccin Mocha theme (default)
func CatppuccinMocha() *Theme {
	return &Theme{
		Name:        "catppuccin-mocha",
		Description: "Soothing pastel theme (dark)",
		Type:        "dark",

		Primary:   lipgloss.Color("#CBA6F7"), // Mauve
		Secondary: lipgloss.Color("#89B4FA"), // Blue
		Accent:    lipgloss.Color("#F5C2E7"), // Pink
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
		Info:      lipgloss.Color("#89DCEB"), // Sky

		Text:      lipgloss.Color("#CDD6F4"),
		TextMuted: lipgloss.Color("#A6ADC8"),
		TextDim:   lipgloss.Color("#6C7086"),
	}
}

// Dracula returns the Dracula theme
func Dracula() *Theme {
	return &Theme{
		Name:        "dracula",
		Description: "Dark theme with vibrant colors",
		Type:        "dark",

		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#8BE9FD"), // Cyan
		Accent:    lipgloss.Color("#FF79C6"), // Pink
		Success:   lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#F1FA8C"), // Yellow
		Error:     lipgloss.Color("#FF5555"), // Red
		Info:      lipgloss.Color("#8BE9FD"), // Cyan

		Text:      lipgloss.Color("#F8F8F2"),
		TextMuted: lipgloss.Color("#6272A4"),
		TextDim:   lipgloss.Color("#44475A"),
	}
}

// Nord returns the Nord theme
func Nord() *Theme {
	return &Theme{
		Name:        "nord",
		Description: "Arctic, north-bluish color palette",
		Type:        "dark",

		Primary:   lipgloss.Color("#88C0D0"), // Frost 2
		Secondary: lipgloss.Color("#81A1C1"), // Frost 3
		Accent:    lipgloss.Color("#B48EAD"), // Aurora 4
		Success:   lipgloss.Color("#A3BE8C"), // Aurora 2
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora 1
		Error:     lipgloss.Color("#BF616A"), // Aurora 0
		Info:      lipgloss.Color("#8FBCBB"), // Frost 1

		Text:      lipgloss.Color("#ECEFF4"),
		TextMuted: lipgloss.Color("#D8DEE9"),
		TextDim:   lipgloss.Color("#4C566A"),
	}
}

// GithubLight returns the GitHub Light theme
func GithubLight() *Theme {
	return &Theme{
		Name:        "github-light",
		Description: "GitHub's light color scheme",
		Type:        "light",

		Primary:   lipgloss.Color("#6F42C1"), // Purple
		Secondary: lipgloss.Color("#0366D6"), // Blue
		Accent:    lipgloss.Color("#E36209"), // Orange
		Success:   lipgloss.Color("#22863A"), // Green
		Warning:   lipgloss.Color("#B08800"), // Yellow
		Error:     lipgloss.Color("#D73A49"), // Red
		Info:      lipgloss.Color("#0366D6"), // Blue

		Text:      lipgloss.Color("#24292E"),
		TextMuted: lipgloss.Color("#6A737D"),
		TextDim:   lipgloss.Color("#D1D5DA"),
	}
}
