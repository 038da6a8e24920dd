package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	urbancalc "github.com/Egor-Urban/UrbanCalc"
	"github.com/Egor-Urban/UrbanCalc/internal/config"
	"github.com/Egor-Urban/UrbanCalc/internal/keymap"
	"github.com/Egor-Urban/UrbanCalc/internal/logging"
	"github.com/Egor-Urban/UrbanCalc/internal/tui"
)

func main() {
	log.SetFlags(0)
	var (
		cfgname, inname, verb string
		nl                    bool
	)
	flag.StringVar(&cfgname, "config", "", "config file (default $URBANCALC_CONFIG or ~/.config/urbancalc/config.toml)")
	flag.StringVar(&inname, "in", "", "input file of expressions; - for stdin")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default calculator display format)")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.Parse()

	if inname == "" && flag.NArg() == 0 {
		if err := interactive(cfgname); err != nil {
			log.Fatal(err)
		}
		return
	}

	var srcs []string
	if inname != "" {
		v, err := readExprs(inname, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, v...)
	}
	srcs = append(srcs, flag.Args()...)

	failed := false
	for _, src := range srcs {
		r, err := urbancalc.EvalString(src)
		if err != nil {
			fmt.Println(err)
			failed = true
			continue
		}
		if verb == "" {
			fmt.Println(urbancalc.FormatNumber(r))
		} else {
			fmt.Printf(verb+"\n", r)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// interactive runs the calculator screen until the user quits.
func interactive(cfgname string) error {
	cfg, err := config.Load(cfgname)
	if err != nil {
		return err
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	h, err := logging.New(cfg.Log.Dir, level, nil)
	if err != nil {
		return err
	}
	defer h.Close()
	l := slog.New(h).With("platform", tui.Platform())
	l.Info("App started")
	defer l.Info("App closed")

	keys := keymap.New(l)
	for _, b := range cfg.Bindings {
		if err := keys.Add(b.Key, b.Command); err != nil {
			return fmt.Errorf("config bindings: %w", err)
		}
	}
	s := urbancalc.NewSession(urbancalc.WithLogger(l), urbancalc.WithErrorToken(cfg.UI.ErrorToken))
	p := tea.NewProgram(tui.New(cfg, cfgname, s, keys, l), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		l.Error("terminal ui failed", slog.Any("err", err))
		return err
	}
	return nil
}

// readExprs reads expressions from a file, or stdin if inname is "-". Without
// lines, the whole input is one expression.
func readExprs(inname string, lines bool) ([]string, error) {
	var f io.Reader = os.Stdin
	if inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	if !lines {
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var r []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}
		r = append(r, sc.Text())
	}
	return r, sc.Err()
}
