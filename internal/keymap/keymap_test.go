package keymap

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	urbancalc "github.com/Egor-Urban/UrbanCalc"
)

func TestDefaultBindings(t *testing.T) {
	cases := []struct {
		key     string
		kind    Kind
		command string
	}{
		{"0", KindNumber, "0"},
		{"7", KindNumber, "7"},
		{"+", KindOperator, urbancalc.CmdPlus},
		{"-", KindOperator, urbancalc.CmdMinus},
		{"*", KindOperator, urbancalc.CmdMultiply},
		{"/", KindOperator, urbancalc.CmdDivide},
		{"=", KindEquals, urbancalc.CmdEquals},
		{"Enter", KindEquals, urbancalc.CmdEquals},
		{".", KindDecimal, urbancalc.CmdDecimal},
		{",", KindDecimal, urbancalc.CmdDecimal},
		{"(", KindParen, urbancalc.CmdOpenParen},
		{")", KindParen, urbancalc.CmdCloseParen},
		{"Backspace", KindFunction, urbancalc.CmdBackspace},
		{"Delete", KindClear, urbancalc.CmdClear},
		{"c", KindClear, urbancalc.CmdClear},
		{"C", KindClear, urbancalc.CmdClear},
		{"Escape", KindFunction, urbancalc.CmdSettings},
	}
	m := New(nil)
	for _, c := range cases {
		b, ok := m.Lookup(c.key)
		require.True(t, ok, "key %q", c.key)
		require.Equal(t, Binding{Key: c.key, Kind: c.kind, Command: c.command}, b)
	}
	require.Len(t, m.Keys(), len(cases)+8, "digits 1-6, 8 and 9 are bound too")
}

func TestUnmappedKeyIsLogged(t *testing.T) {
	var buf bytes.Buffer
	m := New(slog.New(slog.NewTextHandler(&buf, nil)))
	_, ok := m.Lookup("x")
	require.False(t, ok)
	require.Contains(t, buf.String(), "unknown keyboard input")
	require.Contains(t, buf.String(), "key=x")
}

func TestAdd(t *testing.T) {
	m := New(nil)
	require.NoError(t, m.Add("x", urbancalc.CmdMultiply))
	b, ok := m.Lookup("x")
	require.True(t, ok)
	require.Equal(t, KindOperator, b.Kind)
	require.Equal(t, urbancalc.CmdMultiply, b.Command)

	require.NoError(t, m.Add("c", urbancalc.CmdBackspace), "rebinding replaces")
	b, _ = m.Lookup("c")
	require.Equal(t, urbancalc.CmdBackspace, b.Command)

	require.Error(t, m.Add("y", "sqrt"))
	require.Error(t, m.Add("", urbancalc.CmdPlus))
	_, ok = m.Lookup("y")
	require.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	var m Map
	require.Empty(t, m.Keys())
	require.NoError(t, m.Add("b", "1"))
	require.NoError(t, m.Add("a", "2"))
	require.Equal(t, []string{"a", "b"}, m.Keys())
	bs := m.Bindings()
	require.Equal(t, "a", bs[0].Key)
	require.Equal(t, "2", bs[0].Command)
}

func TestEveryCommandHasKind(t *testing.T) {
	for _, c := range urbancalc.Commands() {
		require.NotEmpty(t, KindOf(c), "command %q", c)
	}
}

func TestDrivesSession(t *testing.T) {
	m := New(nil)
	s := urbancalc.NewSession()
	for _, k := range []string{"(", "2", "+", "3", ")", "*", "4", "Enter"} {
		b, ok := m.Lookup(k)
		require.True(t, ok)
		s.Apply(b.Command)
	}
	require.Equal(t, "(2+3)×4", s.Expression())
	require.Equal(t, "20", s.Display())
}
