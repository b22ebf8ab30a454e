// eddy-demo is the full walkthrough binary: a persisted, logged text field
// driven through the store and rendered by connected Bubble Tea components.
//
// Usage:
//
//	eddy-demo [-config eddy.toml]
//
// The TOML config selects the initial text, an optional bbolt snapshot
// database (the session resumes from it), an optional dispatch log file, and
// the accent color.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/eddy/connect"
	"github.com/iw2rmb/eddy/devlog"
	"github.com/iw2rmb/eddy/internal/grapheme"
	"github.com/iw2rmb/eddy/persist"
	"github.com/iw2rmb/eddy/store"
	"github.com/iw2rmb/eddy/textfield"
)

type fieldProps struct {
	Text string
}

type statusProps struct {
	Chars int
	Cells int
}

type app struct {
	keys   keyMap
	styles styles

	provider *connect.Provider[string]
	field    connect.Model[string, fieldProps]
	status   connect.Model[string, statusProps]

	insert func(string)
	remove func()

	showHelp bool
}

func newApp(cfg config, st *store.Store[string]) app {
	sty := defaultStyles(cfg.Accent)
	p := connect.NewProvider(st)

	field := connect.Connect(p,
		func(s string) fieldProps { return fieldProps{Text: s} },
		func(pr fieldProps, _ connect.Dispatch) string {
			return sty.Field.Render(pr.Text + sty.Cursor.Render("█"))
		})
	status := connect.Connect(p,
		func(s string) statusProps {
			return statusProps{Chars: textfield.Length(s), Cells: grapheme.Width(s)}
		},
		func(pr statusProps, _ connect.Dispatch) string {
			return sty.Status.Render(
				fmt.Sprintf("%d characters · %d cells · ctrl+g help", pr.Chars, pr.Cells))
		})

	return app{
		keys:     defaultKeyMap(),
		styles:   sty,
		provider: p,
		field:    field,
		status:   status,
		insert:   connect.Bind(st.Dispatch, textfield.InsertCharacter),
		remove:   connect.Bind0(st.Dispatch, textfield.RemoveCharacter),
	}
}

func (a app) Init() tea.Cmd {
	return tea.Batch(a.field.Init(), a.status.Init())
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, a.keys.Quit):
			a.provider.Shutdown()
			return a, tea.Quit
		case key.Matches(k, a.keys.Help):
			a.showHelp = !a.showHelp
			return a, nil
		case key.Matches(k, a.keys.Backspace):
			a.remove()
		case k.Type == tea.KeySpace:
			a.insert(" ")
		case k.Type == tea.KeyRunes && !k.Paste:
			// The keyboard contract: single characters dispatch, chords and
			// multi-rune input are ignored.
			if ch := string(k.Runes); textfield.IsCharacter(ch) {
				a.insert(ch)
			}
		}
	}

	var fieldCmd, statusCmd tea.Cmd
	a.field, fieldCmd = a.field.Update(msg)
	a.status, statusCmd = a.status.Update(msg)
	return a, tea.Batch(fieldCmd, statusCmd)
}

func (a app) View() string {
	base := a.field.View() + "\n" + a.status.View()
	if !a.showHelp {
		return base
	}
	return overlay.Composite(a.helpView(), base, overlay.Center, overlay.Center, 0, 0)
}

func (a app) helpView() string {
	var b strings.Builder
	b.WriteString("Keys\n\n")
	for _, kb := range a.keys.helpEntries() {
		h := kb.Help()
		fmt.Fprintf(&b, "%-12s %s\n", h.Key, h.Desc)
	}
	b.WriteString("\nany character: insert it")
	return a.styles.Help.Render(b.String())
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			fatal(err)
		}
	}

	log := zerolog.Nop()
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal(fmt.Errorf("open log file: %w", err))
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	initial := cfg.InitialText
	var db *persist.DB
	if cfg.SnapshotDB != "" {
		var err error
		if db, err = persist.Open(cfg.SnapshotDB); err != nil {
			fatal(err)
		}
		defer db.Close()

		text, ok, err := db.Load()
		if err != nil {
			fatal(err)
		}
		if ok {
			initial = text
		}
	}

	st := store.New(devlog.WrapReducer(log, textfield.Reduce), initial)
	if db != nil {
		cancel := persist.Attach(st, db, func(err error) {
			log.Error().Err(err).Msg("snapshot save")
		})
		defer cancel()
	}

	a := newApp(cfg, st)
	defer a.provider.Shutdown()

	if _, err := tea.NewProgram(a, tea.WithAltScreen()).Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "eddy-demo:", err)
	os.Exit(1)
}
