package urbancalc

import "log/slog"

// Command identifiers accepted by Session.Apply. The digits "0" through "9"
// are also commands.
const (
	CmdDecimal    = "decimal"
	CmdPlus       = "plus"
	CmdMinus      = "minus"
	CmdMultiply   = "multiply"
	CmdDivide     = "divide"
	CmdOpenParen  = "open-paren"
	CmdCloseParen = "close-paren"
	CmdEquals     = "equals"
	CmdBackspace  = "backspace"
	CmdClear      = "clear"
	// CmdSettings is reserved for the user interface. Sessions accept it
	// without changing state.
	CmdSettings = "settings"
)

// Commands returns every command identifier Apply understands.
func Commands() []string {
	return []string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
		CmdDecimal,
		CmdPlus, CmdMinus, CmdMultiply, CmdDivide,
		CmdOpenParen, CmdCloseParen,
		CmdEquals, CmdBackspace, CmdClear,
		CmdSettings,
	}
}

// Apply performs the edit named by a command identifier. Unknown identifiers
// are ignored.
func (s *Session) Apply(id string) {
	switch id {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		s.AddDigit(rune(id[0]))
	case CmdDecimal:
		s.AddDecimal()
	case CmdPlus:
		s.AddOperator(OpPlus)
	case CmdMinus:
		s.AddOperator(OpMinus)
	case CmdMultiply:
		s.AddOperator(OpMultiply)
	case CmdDivide:
		s.AddOperator(OpDivide)
	case CmdOpenParen:
		s.AddParen(ParenOpen)
	case CmdCloseParen:
		s.AddParen(ParenClose)
	case CmdEquals:
		s.Calculate()
	case CmdBackspace:
		s.Backspace()
	case CmdClear:
		s.Clear()
	case CmdSettings:
		s.logger().Info("settings requested")
		return
	default:
		s.logger().Debug("ignoring unknown command", slog.String("command", id))
		return
	}
	s.logger().Debug("applied", slog.String("command", id), slog.String("expression", s.expr), slog.String("display", s.display))
}
