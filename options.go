package urbancalc

import "log/slog"

// SessionOption is an option used when creating a session.
type SessionOption interface {
	sessionOption()
}

type (
	logopt  struct{ l *slog.Logger }
	dispopt string
)

func (logopt) sessionOption()  {}
func (dispopt) sessionOption() {}

// WithLogger sets the logger a session reports edits and failed calculations
// to. By default, sessions log nothing.
func WithLogger(l *slog.Logger) SessionOption {
	return logopt{l}
}

// WithErrorToken sets the text a session displays when a calculation fails.
// The default is ErrorToken.
func WithErrorToken(tok string) SessionOption {
	return dispopt(tok)
}

// NewSession creates a session with an empty expression. Options are applied
// in order.
func NewSession(opts ...SessionOption) *Session {
	s := Session{
		display: "0",
		errtok:  ErrorToken,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case logopt:
			if opt.l != nil {
				s.log = opt.l
			}
		case dispopt:
			if opt != "" {
				s.errtok = string(opt)
			}
		default:
			panic("urbancalc: unknown option type")
		}
	}
	return &s
}
