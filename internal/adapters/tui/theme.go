package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style

	Hidden   lipgloss.Style
	Revealed lipgloss.Style
	Mine     lipgloss.Style
	Flag     lipgloss.Style
	Cursor   lipgloss.Style
	// Counts is indexed by adjacent mine count (1..8).
	Counts [9]lipgloss.Style
}

func DefaultTheme() Theme {
	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	t := Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Status: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		Hidden:   cell.Background(lipgloss.Color("245")),
		Revealed: cell.Background(lipgloss.Color("254")),
		Mine:     cell.Background(lipgloss.Color("203")),
		Flag:     cell.Background(lipgloss.Color("245")),
		Cursor:   lipgloss.NewStyle().Reverse(true),
	}
	colors := []string{"", "27", "28", "160", "91", "208", "37", "236", "244"}
	for n := 1; n <= 8; n++ {
		t.Counts[n] = t.Revealed.Foreground(lipgloss.Color(colors[n])).Bold(true)
	}
	return t
}
