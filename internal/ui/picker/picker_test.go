package picker

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T", next)
	}
	return out
}

func TestAllDecksStartSelected(t *testing.T) {
	m := New([]string{"A", "B", "C"})
	if got := m.Decks(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("initial selection: got %v", got)
	}
}

func TestToggleAndBulkSelection(t *testing.T) {
	m := New([]string{"A", "B", "C"})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.Decks(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Fatalf("after toggle: got %v", got)
	}

	m = step(t, m, keyRune('n'))
	if got := m.Decks(); got != nil {
		t.Fatalf("after none: got %v", got)
	}

	m = step(t, m, keyRune('a'))
	if got := m.Decks(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("after all: got %v", got)
	}
}

func TestEnterWithoutSelectionStaysOnDecks(t *testing.T) {
	m := New([]string{"A"})
	m = step(t, m, keyRune('n'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseDecks {
		t.Fatal("should stay on deck phase without a selection")
	}
	if !strings.Contains(m.View(), "at least one deck") {
		t.Fatal("expected a validation message")
	}
}

func TestConfirmFlowCollectsDestination(t *testing.T) {
	m := New([]string{"A", "B"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseDest {
		t.Fatal("enter should move to destination phase")
	}

	for _, r := range "/tmp/out" {
		m = step(t, m, keyRune(r))
	}
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != phaseDone || m.Cancelled() {
		t.Fatalf("expected completed model, got phase %d cancelled %v", m.phase, m.Cancelled())
	}
	if m.Dest() != "/tmp/out" {
		t.Fatalf("dest: got %q", m.Dest())
	}
	if got := m.Decks(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("decks: got %v", got)
	}
}

func TestEmptyDestinationRejected(t *testing.T) {
	m := New([]string{"A"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseDest {
		t.Fatal("empty destination should not confirm")
	}
}

func TestEscapeCancels(t *testing.T) {
	m := New([]string{"A"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Cancelled() {
		t.Fatal("esc should cancel")
	}

	m = New([]string{"A"})
	m = step(t, m, keyRune('q'))
	if !m.Cancelled() {
		t.Fatal("q should cancel on the deck phase")
	}
}

func TestViewListsDecksAndMarks(t *testing.T) {
	m := New([]string{"Math::Algebra", "Vocabulary"})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	if !strings.Contains(view, "Math::Algebra") || !strings.Contains(view, "Vocabulary") {
		t.Fatalf("view missing decks:\n%s", view)
	}
	if !strings.Contains(view, "[x]") || !strings.Contains(view, "[ ]") {
		t.Fatalf("view missing selection marks:\n%s", view)
	}
}
