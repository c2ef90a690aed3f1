package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kir-gadjello/shellcore/cmdline"
)

type historyItem struct {
	index int
	entry cmdline.HistoryEntry
}

func (h historyItem) Title() string       { return fmt.Sprintf("[%d] %s", h.index, h.entry.Text) }
func (h historyItem) Description() string { return h.entry.Text }
func (h historyItem) FilterValue() string { return h.entry.Text }

type historyModel struct {
	list     list.Model
	selected *cmdline.HistoryEntry
	quitting bool
}

func newHistoryModel(entries []cmdline.HistoryEntry) historyModel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = historyItem{index: i, entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Command History"
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFF")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1)

	return historyModel{list: l}
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			if i, ok := m.list.SelectedItem().(historyItem); ok {
				m.selected = &i.entry
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		h, v := lipgloss.NewStyle().Margin(1, 2).GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m historyModel) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.NewStyle().Margin(1, 2).Render(m.list.View())
}

// runHistoryBrowser launches the bubbletea history list over a snapshot
// of interp's history ring and returns the entry the user selected, if
// any.
func runHistoryBrowser(interp *cmdline.Interpreter) (*cmdline.HistoryEntry, error) {
	entries := interp.History().Entries()
	m := newHistoryModel(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return nil, err
	}
	final := result.(historyModel)
	return final.selected, nil
}
