package theme

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "catppuccin-mocha"

// Theme represents a color scheme for console output
type Theme struct {
	Name        string
	Description string
	Type        string // "dark" or "light"

	// Core colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	TextMuted lipgloss.Color
	TextDim   lipgloss.Color
}

// Registry holds all available themes
type Registry struct {
	themes map[string]*Theme
}

// NewRegistry creates a new theme registry with builtin themes
func NewRegistry() *Registry {
	r := &Registry{
		themes: make(map[string]*Theme),
	}
	r.registerBuiltinThemes()
	return r
}

// Get returns a theme by name
func (r *Registry) Get(name string) (*Theme, error) {
	theme, ok := r.themes[name]
	if !ok {
		return nil, fmt.Errorf("theme not found: %s", name)
	}
	return theme, nil
}

// List returns all available theme names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register registers a custom theme
func (r *Registry) Register(theme *Theme) {
	r.themes[theme.Name] = theme
}

func (r *Registry) registerBuiltinThemes() {
	// Dark themes
	r.Register(CatppuccinMocha())
	r.Register(Dracula())
	r.Register(Nord())

	// Light themes
	r.Register(GithubLight())
}

// Default returns the default theme (Catppuccin Mocha)
func Default() *Theme {
	return CatppuccinMocha()
}

// Resolve returns the named theme, or the default when name is empty or
// unknown.
func Resolve(name string) *Theme {
	if name == "" {
		return Default()
	}
	t, err := NewRegistry().Get(name)
	if err != nil {
		return Default()
	}
	return t
}
