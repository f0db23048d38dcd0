package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"mulbench/internal/benchmark"
)

// ProgressDone signals that the run finished and the UI should exit.
type ProgressDone struct {
	Err error
}

// NewProgressProgram builds a bubbletea program showing live benchmark
// progress. Feed it benchmark.Progress values via Send and finish with
// a ProgressDone message.
func NewProgressProgram(opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(newProgressModel(), opts...)
}

type progressModel struct {
	bar     progress.Model
	current benchmark.Progress
	started bool
	err     error
}

func newProgressModel() progressModel {
	return progressModel{
		bar: progress.New(progress.WithDefaultGradient()),
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case benchmark.Progress:
		m.current = msg
		m.started = true
		return m, m.bar.SetPercent(float64(msg.Step) / float64(msg.Total))

	case ProgressDone:
		m.err = msg.Err
		return m, tea.Quit

	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if !m.started {
		return maybe(mutedStyle, "warming up...") + "\n"
	}
	line := fmt.Sprintf("%s  %d digits  (%d/%d)",
		m.current.Algorithm, m.current.Digits, m.current.Step, m.current.Total)
	return maybe(titleStyle, "mulbench") + "\n\n" +
		m.bar.View() + "\n\n" +
		maybe(mutedStyle, line) + "\n"
}
