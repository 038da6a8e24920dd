package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	urbancalc "github.com/Egor-Urban/UrbanCalc"
	"github.com/Egor-Urban/UrbanCalc/internal/keymap"
)

const (
	buttonWidth  = 5
	displayWidth = 4*buttonWidth + 3
)

// button is one cell of the on-screen keypad.
type button struct {
	label   string
	command string
}

var keypad = [][]button{
	{{"C", urbancalc.CmdClear}, {"⌫", urbancalc.CmdBackspace}, {"(", urbancalc.CmdOpenParen}, {")", urbancalc.CmdCloseParen}},
	{{"7", "7"}, {"8", "8"}, {"9", "9"}, {"÷", urbancalc.CmdDivide}},
	{{"4", "4"}, {"5", "5"}, {"6", "6"}, {"×", urbancalc.CmdMultiply}},
	{{"1", "1"}, {"2", "2"}, {"3", "3"}, {"-", urbancalc.CmdMinus}},
	{{"0", "0"}, {".", urbancalc.CmdDecimal}, {"=", urbancalc.CmdEquals}, {"+", urbancalc.CmdPlus}},
}

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.state {
	case viewSettings:
		body = a.settingsView()
	default:
		body = a.calculatorView()
	}
	return a.styles.frame.Render(body) + "\n"
}

func (a *App) calculatorView() string {
	var b strings.Builder
	b.WriteString(a.styles.expression.Render(tail(a.session.Expression(), displayWidth)))
	b.WriteByte('\n')
	result := a.styles.result
	if a.session.Err() != nil {
		result = a.styles.errResult
	}
	b.WriteString(result.Render(tail(a.session.Display(), displayWidth)))
	b.WriteString("\n\n")

	rows := make([]string, len(keypad))
	for i, row := range keypad {
		cells := make([]string, 0, 2*len(row))
		for j, k := range row {
			if j > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, a.buttonStyle(k.command).Render(k.label))
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteByte('\n')
	if a.session.OpenParens() > 0 {
		b.WriteString(a.styles.help.Render(fmt.Sprintf("open ( %d", a.session.OpenParens())))
		b.WriteByte('\n')
	}
	a.writeStatus(&b)
	b.WriteString(a.footer(a.bind.Settings, a.bind.Quit))
	return b.String()
}

func (a *App) buttonStyle(command string) lipgloss.Style {
	switch keymap.KindOf(command) {
	case keymap.KindOperator, keymap.KindParen:
		return a.styles.operator
	case keymap.KindEquals:
		return a.styles.equals
	case keymap.KindFunction, keymap.KindClear:
		return a.styles.function
	default:
		return a.styles.digit
	}
}

func (a *App) settingsView() string {
	var b strings.Builder
	b.WriteString(a.styles.title.Render("Settings"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "platform  %s\n", a.platform)
	fmt.Fprintf(&b, "theme     %s (%s)\n\n", a.cfg.UI.Theme, a.theme)
	b.WriteString(a.styles.title.Render("Keys"))
	b.WriteByte('\n')
	for _, k := range a.keys.Bindings() {
		fmt.Fprintf(&b, "%-10s %s\n", k.Key, k.Command)
	}
	b.WriteByte('\n')
	a.writeStatus(&b)
	b.WriteString(a.footer(a.bind.Theme, a.bind.Back, a.bind.Quit))
	return b.String()
}

// writeStatus writes the status line, if any, cut to the terminal width.
func (a *App) writeStatus(b *strings.Builder) {
	if a.status == "" {
		return
	}
	line := a.status
	if a.width > 4 {
		line = ansi.Truncate(line, a.width-4, "…")
	}
	b.WriteString(a.styles.status.Render(line))
	b.WriteByte('\n')
}

// tail returns the last n cells of s, marking truncation with an ellipsis.
func tail(s string, n int) string {
	if ansi.StringWidth(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && ansi.StringWidth(string(r))+1 > n {
		r = r[1:]
	}
	return "…" + string(r)
}
