package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	urbancalc "github.com/Egor-Urban/UrbanCalc"
	"github.com/Egor-Urban/UrbanCalc/internal/config"
	"github.com/Egor-Urban/UrbanCalc/internal/keymap"
)

// App is the calculator screen. It owns the session; every key press is
// translated to a command and applied before the next message is handled.
type App struct {
	session  *urbancalc.Session
	keys     *keymap.Map
	bind     shortcuts
	log      *slog.Logger
	cfg      config.Config
	cfgPath  string
	save     func(string, config.Config) error
	dark     func() bool
	theme    string
	platform string
	styles   styles
	state    appState
	status   string
	width    int
}

type appState string

const (
	viewCalculator appState = "calculator"
	viewSettings   appState = "settings"
)

// New creates the calculator screen. cfgPath is where theme changes are
// saved; it may be empty to use the default location.
func New(cfg config.Config, cfgPath string, session *urbancalc.Session, keys *keymap.Map, l *slog.Logger) *App {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	a := &App{
		session:  session,
		keys:     keys,
		bind:     newShortcuts(),
		log:      l,
		cfg:      cfg,
		cfgPath:  cfgPath,
		save:     config.Save,
		platform: Platform(),
		state:    viewCalculator,
	}
	a.applyTheme()
	return a
}

func (a *App) applyTheme() {
	a.theme = resolveTheme(a.cfg.UI.Theme, a.dark)
	a.styles = newStyles(a.theme)
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.log.Info("calculator ready", slog.String("platform", a.platform), slog.String("theme", a.theme))
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var k tea.KeyMsg
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil
	case tea.KeyMsg:
		k = msg
	default:
		return a, nil
	}
	if k.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	if a.state == viewSettings {
		return a.updateSettings(k)
	}
	for _, name := range keyNames(k) {
		b, ok := a.keys.Lookup(name)
		if !ok {
			if len(k.Runes) <= 1 && key.Matches(k, a.bind.Quit) {
				return a, tea.Quit
			}
			continue
		}
		a.session.Apply(b.Command)
		if b.Command == urbancalc.CmdSettings {
			a.state = viewSettings
			a.status = ""
			return a, nil
		}
		a.log.Info("calculator button pressed", slog.String("kind", string(b.Kind)), slog.String("command", b.Command))
	}
	a.status = ""
	if err := a.session.Err(); err != nil {
		a.status = err.Error()
	}
	return a, nil
}

func (a *App) updateSettings(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(k, a.bind.Back):
		a.state = viewCalculator
		a.status = ""
	case key.Matches(k, a.bind.Quit):
		return a, tea.Quit
	case key.Matches(k, a.bind.Theme):
		a.cfg.UI.Theme = nextTheme(a.cfg.UI.Theme)
		a.applyTheme()
		if err := a.save(a.cfgPath, a.cfg); err != nil {
			a.log.Error("saving theme", slog.Any("err", err))
			a.status = "theme not saved: " + err.Error()
		} else {
			a.status = "theme: " + a.cfg.UI.Theme
		}
	}
	return a, nil
}

// keyName translates a key event into the names used by keymap.
func keyName(k tea.KeyMsg) string {
	switch k.Type {
	case tea.KeyEnter:
		return "Enter"
	case tea.KeyBackspace:
		return "Backspace"
	case tea.KeyDelete:
		return "Delete"
	case tea.KeyEsc:
		return "Escape"
	case tea.KeySpace:
		return " "
	case tea.KeyRunes:
		if len(k.Runes) == 1 {
			return string(k.Runes)
		}
	}
	return k.String()
}

// keyNames is like keyName, but splits pasted text into one key per rune.
func keyNames(k tea.KeyMsg) []string {
	if k.Type == tea.KeyRunes && len(k.Runes) > 1 {
		v := make([]string, len(k.Runes))
		for i, r := range k.Runes {
			v[i] = string(r)
		}
		return v
	}
	return []string{keyName(k)}
}
