// Package picker is the interactive surface: a terminal deck selector and
// destination prompt in front of the export pipeline. It only gathers input;
// the pipeline itself runs after the program exits the alternate screen.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

const visibleDecks = 15

type phase int

const (
	phaseDecks phase = iota
	phaseDest
	phaseDone
)

// Model is the bubbletea model for the deck picker. All decks start
// selected, mirroring the export-everything default of the batch surface.
type Model struct {
	decks    []string
	selected []bool
	cursor   int
	top      int

	phase     phase
	dest      textinput.Model
	cancelled bool
	err       string
}

func New(decks []string) Model {
	selected := make([]bool, len(decks))
	for i := range selected {
		selected[i] = true
	}

	dest := textinput.New()
	dest.Placeholder = "export destination directory"
	dest.CharLimit = 512
	dest.Width = 48

	return Model{decks: decks, selected: selected, dest: dest}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.phase = phaseDone
		return m, tea.Quit
	}

	switch m.phase {
	case phaseDecks:
		return m.updateDecks(key)
	case phaseDest:
		return m.updateDest(key)
	}
	return m, nil
}

func (m Model) updateDecks(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		m.cancelled = true
		m.phase = phaseDone
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.decks)-1 {
			m.cursor++
		}
	case " ":
		if len(m.decks) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "a":
		for i := range m.selected {
			m.selected[i] = true
		}
	case "n":
		for i := range m.selected {
			m.selected[i] = false
		}
	case "enter":
		if len(m.Decks()) == 0 {
			m.err = "select at least one deck"
			return m, nil
		}
		m.err = ""
		m.phase = phaseDest
		m.dest.Focus()
		return m, textinput.Blink
	}

	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+visibleDecks {
		m.top = m.cursor - visibleDecks + 1
	}
	return m, nil
}

func (m Model) updateDest(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		if strings.TrimSpace(m.dest.Value()) == "" {
			m.err = "destination is required"
			return m, nil
		}
		m.err = ""
		m.phase = phaseDone
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.dest, cmd = m.dest.Update(key)
	return m, cmd
}

func (m Model) View() string {
	if m.phase == phaseDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Anki Companion"))
	b.WriteString("\n")

	switch m.phase {
	case phaseDecks:
		end := m.top + visibleDecks
		if end > len(m.decks) {
			end = len(m.decks)
		}
		for i := m.top; i < end; i++ {
			cursor := "  "
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			mark, style := "[ ]", dimStyle
			if m.selected[i] {
				mark, style = "[x]", selectedStyle
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, style.Render(mark), m.decks[i])
		}
		if end < len(m.decks) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more\n", len(m.decks)-end)))
		}
		b.WriteString(helpStyle.Render("space toggle · a all · n none · enter continue · q quit"))
	case phaseDest:
		fmt.Fprintf(&b, "Exporting %d deck(s). Where to?\n\n", len(m.Decks()))
		b.WriteString(m.dest.View())
		b.WriteString(helpStyle.Render("\nenter confirm · esc cancel"))
	}

	if m.err != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err))
	}
	return b.String()
}

// Decks returns the currently selected deck names in list order.
func (m Model) Decks() []string {
	var out []string
	for i, on := range m.selected {
		if on {
			out = append(out, m.decks[i])
		}
	}
	return out
}

// Dest returns the destination directory the user typed.
func (m Model) Dest() string {
	return strings.TrimSpace(m.dest.Value())
}

// Cancelled reports whether the user backed out.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Run shows the picker and returns the chosen decks and destination. ok is
// false when the user cancelled.
func Run(decks []string) (chosen []string, dest string, ok bool, err error) {
	final, err := tea.NewProgram(New(decks)).Run()
	if err != nil {
		return nil, "", false, fmt.Errorf("run deck picker: %w", err)
	}
	m := final.(Model)
	if m.Cancelled() {
		return nil, "", false, nil
	}
	return m.Decks(), m.Dest(), true, nil
}
