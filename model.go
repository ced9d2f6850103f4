package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const pausePrompt = "Press any key to continue..."

// errInterrupted is returned when the pause is left with ctrl+c or a
// cancelled context.
var errInterrupted = errors.New("interrupted")

type pauseKeyMap struct {
	Interrupt key.Binding
}

var pauseKeys = pauseKeyMap{
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "interrupt"),
	),
}

// Model is the bubbletea model that holds the terminal until a key is
// pressed.
type Model struct {
	prompt      string
	done        bool
	interrupted bool
}

func newPauseModel(prompt string) Model {
	return Model{prompt: prompt}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		if key.Matches(msg, pauseKeys.Interrupt) {
			m.interrupted = true
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the prompt. It stays on screen after the key press.
func (m Model) View() string {
	return dimStyle.Render(m.prompt) + "\n"
}

// waitForKey runs the pause model on a terminal until any key is pressed.
func waitForKey(ctx context.Context, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newPauseModel(pausePrompt),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return errInterrupted
	}
	if err != nil {
		return fmt.Errorf("wait for key: %w", err)
	}
	if m, ok := final.(Model); ok && m.interrupted {
		return errInterrupted
	}
	return nil
}
