// Package keymap translates physical key names into calculator commands.
package keymap

import (
	"fmt"
	"log/slog"
	"sort"

	urbancalc "github.com/Egor-Urban/UrbanCalc"
)

// Kind is the button group a command belongs to.
type Kind string

const (
	KindNumber   Kind = "NUMBER"
	KindOperator Kind = "OPERATOR"
	KindEquals   Kind = "EQUALS"
	KindDecimal  Kind = "DECIMAL"
	KindParen    Kind = "PARENTHESIS"
	KindFunction Kind = "FUNCTION"
	KindClear    Kind = "CLEAR"
)

// Binding maps one key to one command.
type Binding struct {
	Key     string
	Kind    Kind
	Command string
}

// Map holds key bindings. The zero value has no bindings and logs nothing.
type Map struct {
	bindings map[string]Binding
	log      *slog.Logger
}

// New returns a map holding the default bindings. Lookups are reported to l,
// which may be nil.
func New(l *slog.Logger) *Map {
	m := &Map{log: l}
	for d := '0'; d <= '9'; d++ {
		m.bind(string(d), string(d))
	}
	m.bind("+", urbancalc.CmdPlus)
	m.bind("-", urbancalc.CmdMinus)
	m.bind("*", urbancalc.CmdMultiply)
	m.bind("/", urbancalc.CmdDivide)
	m.bind("=", urbancalc.CmdEquals)
	m.bind("Enter", urbancalc.CmdEquals)
	m.bind(".", urbancalc.CmdDecimal)
	m.bind(",", urbancalc.CmdDecimal)
	m.bind("(", urbancalc.CmdOpenParen)
	m.bind(")", urbancalc.CmdCloseParen)
	m.bind("Backspace", urbancalc.CmdBackspace)
	m.bind("Delete", urbancalc.CmdClear)
	m.bind("c", urbancalc.CmdClear)
	m.bind("C", urbancalc.CmdClear)
	m.bind("Escape", urbancalc.CmdSettings)
	return m
}

// KindOf returns the button group of a command, or the empty string if the
// command is unknown.
func KindOf(command string) Kind {
	switch command {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return KindNumber
	case urbancalc.CmdPlus, urbancalc.CmdMinus, urbancalc.CmdMultiply, urbancalc.CmdDivide:
		return KindOperator
	case urbancalc.CmdEquals:
		return KindEquals
	case urbancalc.CmdDecimal:
		return KindDecimal
	case urbancalc.CmdOpenParen, urbancalc.CmdCloseParen:
		return KindParen
	case urbancalc.CmdBackspace, urbancalc.CmdSettings:
		return KindFunction
	case urbancalc.CmdClear:
		return KindClear
	default:
		return ""
	}
}

// Add binds a key to a command, replacing any existing binding for the key.
func (m *Map) Add(key, command string) error {
	if key == "" {
		return fmt.Errorf("empty key for command %q", command)
	}
	if KindOf(command) == "" {
		return fmt.Errorf("key %q: unknown command %q", key, command)
	}
	m.bind(key, command)
	return nil
}

func (m *Map) bind(key, command string) {
	if m.bindings == nil {
		m.bindings = make(map[string]Binding)
	}
	m.bindings[key] = Binding{Key: key, Kind: KindOf(command), Command: command}
}

// Lookup returns the binding for a key. Unmapped keys are not an error; they
// are noted in the log and reported as not found.
func (m *Map) Lookup(key string) (Binding, bool) {
	b, ok := m.bindings[key]
	if m.log != nil {
		if ok {
			m.log.Debug("keyboard input", slog.String("key", key), slog.String("kind", string(b.Kind)), slog.String("command", b.Command))
		} else {
			m.log.Info("unknown keyboard input", slog.String("key", key))
		}
	}
	return b, ok
}

// Keys returns the bound keys in sorted order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.bindings))
	for k := range m.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bindings returns every binding, ordered by key.
func (m *Map) Bindings() []Binding {
	keys := m.Keys()
	r := make([]Binding, len(keys))
	for i, k := range keys {
		r[i] = m.bindings[k]
	}
	return r
}
