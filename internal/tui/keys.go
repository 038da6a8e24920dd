package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// shortcuts are the keys the screen handles itself rather than passing to
// the calculator. Calculator keys come from keymap.
type shortcuts struct {
	Settings key.Binding
	Back     key.Binding
	Theme    key.Binding
	Quit     key.Binding
}

func newShortcuts() shortcuts {
	return shortcuts{
		Settings: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "settings")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// footer renders the help line for bindings.
func (a *App) footer(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, a.styles.helpKey.Render(h.Key)+" "+a.styles.help.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
