package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPauseModelQuitsOnAnyKey(t *testing.T) {
	m := newPauseModel(pausePrompt)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatal("expected a quit command after a key press")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	pm := next.(Model)
	if !pm.done || pm.interrupted {
		t.Errorf("after 'x': done=%v interrupted=%v", pm.done, pm.interrupted)
	}
}

func TestPauseModelCtrlCInterrupts(t *testing.T) {
	m := newPauseModel(pausePrompt)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command after ctrl+c")
	}
	if pm := next.(Model); !pm.interrupted {
		t.Error("ctrl+c should mark the pause as interrupted")
	}
}

func TestPauseModelIgnoresOtherMessages(t *testing.T) {
	m := newPauseModel(pausePrompt)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil {
		t.Error("window resize should not quit")
	}
	if next.(Model).done {
		t.Error("window resize should not finish the pause")
	}
	if !strings.Contains(m.View(), pausePrompt) {
		t.Errorf("View() = %q, want prompt", m.View())
	}
}
