package theme

import (
	"errors"
	"fmt"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
)

// Manager looks themes up by name.
type Manager struct {
	themes       map[string]*Theme
	defaultTheme string
}

func NewManager() *Manager {
	return &Manager{
		themes:       GetPredefinedThemes(),
		defaultTheme: "default",
	}
}

func (m *Manager) GetTheme(name string) (*Theme, error) {
	theme, exists := m.themes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return theme, nil
}

// Resolve returns the named theme. An empty or unknown name gives the
// default theme; ok reports whether name was found.
func (m *Manager) Resolve(name string) (theme *Theme, ok bool) {
	if name == "" {
		return m.GetDefaultTheme(), true
	}
	if t, err := m.GetTheme(name); err == nil {
		return t, true
	}
	return m.GetDefaultTheme(), false
}

// returns all available theme names
func (m *Manager) ListThemes() []string {
	return GetThemeNames()
}

func (m *Manager) ThemeExists(name string) bool {
	_, exists := m.themes[name]
	return exists
}

func (m *Manager) GetDefaultTheme() *Theme {
	return m.themes[m.defaultTheme]
}

var globalManager = NewManager()

func GetTheme(name string) (*Theme, error) {
	return globalManager.GetTheme(name)
}

func Resolve(name string) (*Theme, bool) {
	return globalManager.Resolve(name)
}

func ListThemes() []string {
	return globalManager.ListThemes()
}

func ThemeExists(name string) bool {
	return globalManager.ThemeExists(name)
}

func GetDefaultTheme() *Theme {
	return globalManager.GetDefaultTheme()
}
