package tui

import (
	"runtime"

	"github.com/charmbracelet/lipgloss"
)

// palette is the set of colors for one theme.
type palette struct {
	background lipgloss.Color
	text       lipgloss.Color
	subtle     lipgloss.Color
	accent     lipgloss.Color
	success    lipgloss.Color
	error      lipgloss.Color
	surface    lipgloss.Color
}

var (
	darkPalette = palette{
		background: "#262626",
		text:       "#ebebeb",
		subtle:     "#6c7086",
		accent:     "#f5c2e7",
		success:    "#a6e3a1",
		error:      "#f38ba8",
		surface:    "#313244",
	}
	lightPalette = palette{
		background: "#ffffff",
		text:       "#000000",
		subtle:     "#9ca0b0",
		accent:     "#ea76cb",
		success:    "#40a02b",
		error:      "#d20f39",
		surface:    "#e6e9ef",
	}
)

// styles holds the lipgloss styles the view renders with.
type styles struct {
	frame      lipgloss.Style
	expression lipgloss.Style
	result     lipgloss.Style
	errResult  lipgloss.Style
	digit      lipgloss.Style
	operator   lipgloss.Style
	equals     lipgloss.Style
	function   lipgloss.Style
	status     lipgloss.Style
	help       lipgloss.Style
	helpKey    lipgloss.Style
	title      lipgloss.Style
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}
	button := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Background(p.surface).
		Foreground(p.text)
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.subtle).
			Background(p.background).
			Padding(0, 1),
		expression: lipgloss.NewStyle().Width(displayWidth).Align(lipgloss.Right).Foreground(p.subtle),
		result:     lipgloss.NewStyle().Width(displayWidth).Align(lipgloss.Right).Foreground(p.text).Bold(true),
		errResult:  lipgloss.NewStyle().Width(displayWidth).Align(lipgloss.Right).Foreground(p.error).Bold(true),
		digit:      button,
		operator:   button.Foreground(p.accent).Bold(true),
		equals:     button.Foreground(p.background).Background(p.success).Bold(true),
		function:   button.Foreground(p.subtle),
		status:     lipgloss.NewStyle().Foreground(p.error),
		help:       lipgloss.NewStyle().Foreground(p.subtle),
		helpKey:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		title:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
	}
}

// resolveTheme turns a configured theme into "dark" or "light". For "auto",
// dark reports whether the terminal background is dark.
func resolveTheme(setting string, dark func() bool) string {
	switch setting {
	case "dark", "light":
		return setting
	}
	if dark == nil {
		dark = lipgloss.HasDarkBackground
	}
	if dark() {
		return "dark"
	}
	return "light"
}

// nextTheme cycles through the configurable themes.
func nextTheme(setting string) string {
	switch setting {
	case "auto":
		return "dark"
	case "dark":
		return "light"
	default:
		return "auto"
	}
}

// Platform names the operating system the program runs on.
func Platform() string {
	return platformName(runtime.GOOS)
}

func platformName(goos string) string {
	switch goos {
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "android":
		return "Android"
	case "ios":
		return "iOS"
	default:
		return "Unknown"
	}
}
