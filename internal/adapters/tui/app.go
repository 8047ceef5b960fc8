package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"svw.info/minesweeper/internal/domain"
	"svw.info/minesweeper/internal/engine"
	"svw.info/minesweeper/internal/i18n"
	"svw.info/minesweeper/internal/usecase"
	"svw.info/minesweeper/internal/view"
)

type Deps struct {
	UC     *usecase.Service
	Logger *slog.Logger
	Lang   language.Tag
}

type model struct {
	deps    Deps
	theme   Theme
	keys    keyMap
	help    help.Model
	printer *message.Printer

	game   *engine.Session
	cursor domain.Coord
	mode   domain.InputMode
	err    error
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		deps:    deps,
		theme:   DefaultTheme(),
		keys:    defaultKeys(),
		help:    help.New(),
		printer: i18n.Printer(deps.Lang),
	}
	m.newGame()
	return m
}

func (m *model) newGame() {
	g, err := m.deps.UC.NewGame(context.Background(), 0)
	if err != nil {
		m.logger().Error("tui.new_game", "err", err)
		m.err = err
		return
	}
	if m.game != nil {
		_ = m.deps.UC.Abandon(context.Background(), m.game.ID)
	}
	m.game, m.err = g, nil
	m.cursor = domain.Coord{}
}

func (m *model) logger() *slog.Logger {
	if m.deps.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m.deps.Logger
}

func (m *model) act(kind domain.ActionKind) {
	if m.game == nil {
		return
	}
	a := domain.Action{Kind: kind, Coord: m.cursor, Mode: m.mode}
	g, err := m.deps.UC.Act(context.Background(), m.game.ID, a)
	if err != nil {
		m.logger().Error("tui.act", "id", m.game.ID, "err", err)
		m.err = err
		return
	}
	m.game, m.err = g, nil
}

func (m *model) move(dr, dc int) {
	if m.game == nil {
		return
	}
	r, c := m.cursor.Row+dr, m.cursor.Col+dc
	if m.game.Board.InBounds(r, c) {
		m.cursor = domain.Coord{Row: r, Col: c}
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.move(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.move(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.move(0, 1)
		case key.Matches(msg, m.keys.Reveal):
			m.act(domain.Primary)
		case key.Matches(msg, m.keys.Flag):
			m.act(domain.Secondary)
		case key.Matches(msg, m.keys.Mode):
			if m.mode == domain.ModeFlag {
				m.mode = domain.ModeReveal
			} else {
				m.mode = domain.ModeFlag
			}
		case key.Matches(msg, m.keys.New):
			m.newGame()
		}
	}
	return m, nil
}

func (m model) renderCell(c view.Cell, selected bool) string {
	var st lipgloss.Style
	glyph := c.Glyph
	switch {
	case c.Class == "mine":
		st = m.theme.Mine
	case c.Count > 0:
		st = m.theme.Counts[c.Count]
	case c.State == view.StateRevealed:
		st = m.theme.Revealed
	case c.State == view.StateFlagged:
		st = m.theme.Flag
	default:
		st = m.theme.Hidden
		glyph = "·"
	}
	if selected {
		st = st.Inherit(m.theme.Cursor)
	}
	return st.Render(glyph)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Minesweeper") + "\n"

	if m.game == nil {
		msg := "no game"
		if m.err != nil {
			msg = m.err.Error()
		}
		return wrap.Render(header + "\n" + m.theme.Error.Render(msg) + "\n")
	}

	g := view.Build(m.game, m.printer)
	var rows []string
	for r, row := range g.Cells {
		cells := make([]string, len(row))
		for c, cell := range row {
			selected := r == m.cursor.Row && c == m.cursor.Col
			cells[c] = m.renderCell(cell, selected)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	board := m.theme.Card.Render(strings.Join(rows, "\n"))

	info := m.theme.Subtitle.Render(fmt.Sprintf("%s   %s   seed %d",
		g.MinesText, i18n.ModeText(m.printer, m.mode), g.Seed))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(info + "\n\n")
	b.WriteString(board + "\n")
	if g.StatusText != "" {
		b.WriteString(m.theme.Status.Render(g.StatusText) + "\n")
	}
	if m.err != nil {
		b.WriteString(m.theme.Error.Render(m.err.Error()) + "\n")
	}
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return wrap.Render(b.String())
}
