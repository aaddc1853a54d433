package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SeedInteractive runs the seed with a progress view.
func (c *Context) SeedInteractive(ctx context.Context, file SeedFile) (SeedSummary, error) {
	steps := c.SeedSteps(file)
	if len(steps) == 0 {
		fmt.Println("Nothing to seed.")
		return SeedSummary{}, nil
	}

	model := newSeedModel(ctx, steps)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return model.summary, fmt.Errorf("run TUI: %w", err)
	}

	return model.summary, nil
}

// seedModel is the Bubble Tea model for the seed progress UI
type seedModel struct {
	ctx          context.Context
	steps        []SeedStep
	currentIndex int
	summary      SeedSummary
	progress     progress.Model
	spinner      spinner.Model
	status       string
	done         bool
	mu           sync.Mutex
}

func newSeedModel(ctx context.Context, steps []SeedStep) *seedModel {
	prog := progress.New(progress.WithScaledGradient("#FF7CCB", "#FDFF8C"))
	prog.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &seedModel{
		ctx:      ctx,
		steps:    steps,
		progress: prog,
		spinner:  s,
		status:   "Initializing...",
	}
}

func (m *seedModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.processNext(),
	)
}

func (m *seedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case seedProgressMsg:
		m.mu.Lock()
		m.summary.add(msg.Label, msg.Outcome, msg.Err)
		m.currentIndex++
		m.status = msg.Status
		m.done = m.currentIndex >= len(m.steps)
		m.mu.Unlock()

		if m.done {
			return m, tea.Quit
		}

		return m, m.processNext()

	default:
		return m, nil
	}
}

func (m *seedModel) View() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		var result string
		result += "\n"
		result += lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")).
			Render("✅ Seed Complete!") + "\n\n"
		result += m.statsView() + "\n"
		return result
	}

	var s string
	s += "\n"
	s += lipgloss.NewStyle().Bold(true).Render("🌱 Seeding") + "\n\n"

	percent := float64(m.currentIndex) / float64(len(m.steps))
	s += fmt.Sprintf("Progress: %s %.1f%%\n", m.progress.ViewAs(percent), percent*100)
	s += "\n"

	s += m.spinner.View() + " " + m.status + "\n"
	s += "\n"
	s += m.statsView() + "\n\n"

	if m.currentIndex < len(m.steps) {
		s += fmt.Sprintf("Processing: %s\n", m.steps[m.currentIndex].Label)
	}

	s += "\nPress 'q' to quit.\n"

	return s
}

func (m *seedModel) statsView() string {
	s := fmt.Sprintf("Total: %d | ", len(m.steps))
	s += lipgloss.NewStyle().Foreground(lipgloss.Color("2")).
		Render(fmt.Sprintf("Created: %d", m.summary.Created))
	s += " | " + lipgloss.NewStyle().Foreground(lipgloss.Color("3")).
		Render(fmt.Sprintf("Skipped: %d", m.summary.Skipped))
	if m.summary.Failed > 0 {
		s += " | " + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).
			Render(fmt.Sprintf("Failed: %d", m.summary.Failed))
	}
	return s
}

type seedProgressMsg struct {
	Label   string
	Outcome SeedOutcome
	Err     error
	Status  string
}

func (m *seedModel) processNext() tea.Cmd {
	m.mu.Lock()
	index := m.currentIndex
	m.mu.Unlock()

	step := m.steps[index]

	return func() tea.Msg {
		outcome, err := RunSeedStep(m.ctx, step)

		status := fmt.Sprintf("Created %s", step.Label)
		switch outcome {
		case SeedSkipped:
			status = fmt.Sprintf("Skipped %s (already exists)", step.Label)
		case SeedFailed:
			status = fmt.Sprintf("Failed %s: %v", step.Label, err)
		}

		return seedProgressMsg{
			Label:   step.Label,
			Outcome: outcome,
			Err:     err,
			Status:  status,
		}
	}
}
