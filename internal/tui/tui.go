// Package tui provides a Bubble Tea terminal user interface for
// yt2hoi4.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NoNameLmao/yt2hoi4/internal/config"
	"github.com/NoNameLmao/yt2hoi4/internal/fsys"
	"github.com/NoNameLmao/yt2hoi4/internal/generator"
	"github.com/NoNameLmao/yt2hoi4/internal/library"
	"github.com/NoNameLmao/yt2hoi4/internal/tracker"
	"github.com/spf13/afero"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateGenerating
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings

	logs    []string
	tracks  int
	current tracker.Step
	err     error

	ctx    context.Context
	cancel context.CancelFunc

	broadcast *tracker.Broadcast
	events    <-chan tracker.StepEvent

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "my_radio_station"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8B500"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// StepMsg is sent for every pipeline step transition.
	StepMsg struct {
		Event tracker.StepEvent
	}

	// StepsClosedMsg is sent when the step stream ends.
	StepsClosedMsg struct{}

	// GenDoneMsg is sent when generation finishes.
	GenDoneMsg struct {
		Tracks int
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateGenerating {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateGenerating
				cmd := m.startGeneration(m.textInput.Value())
				return m, tea.Batch(cmd, m.waitForStep(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				next := NewModel(m.settings)
				return next, next.Init()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case StepMsg:
		m.current = msg.Event.Step
		m.logs = append(m.logs, fmt.Sprintf("step %d/%d: %s", msg.Event.Index+1, msg.Event.Total, msg.Event.Step))
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}
		percent := float64(msg.Event.Index+1) / float64(msg.Event.Total)
		cmds = append(cmds, m.progress.SetPercent(percent), m.waitForStep())

	case StepsClosedMsg:
		// Stream ended; GenDoneMsg carries the outcome.

	case GenDoneMsg:
		m.tracks = msg.Tracks
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startGeneration scans the downloads directory and launches the
// pipeline with a broadcast tracker this model subscribes to.
func (m *Model) startGeneration(modName string) tea.Cmd {
	m.broadcast = tracker.NewBroadcast(modName)

	events, err := m.broadcast.Subscribe(m.ctx)
	if err != nil {
		return func() tea.Msg { return GenDoneMsg{Err: err} }
	}
	m.events = events

	ctx := m.ctx
	settings := m.settings
	broadcast := m.broadcast

	return func() tea.Msg {
		defer broadcast.Close()

		scanner := library.NewScanner(afero.NewOsFs())
		entries, err := scanner.Scan(ctx, settings.DownloadsPath)
		if err != nil {
			return GenDoneMsg{Err: fmt.Errorf("scan downloads: %w", err)}
		}

		trackFiles := make([]string, len(entries))
		for i, entry := range entries {
			trackFiles[i] = entry.Track.BaseName
		}

		gen := generator.New(settings, fsys.NewOS(), broadcast,
			generator.WithTitler(library.NewID3Titler()))
		if err := gen.Generate(ctx, modName, trackFiles); err != nil {
			return GenDoneMsg{Tracks: len(trackFiles), Err: err}
		}
		return GenDoneMsg{Tracks: len(trackFiles)}
	}
}

// waitForStep returns a command that delivers the next step event.
func (m Model) waitForStep() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return StepsClosedMsg{}
		}
		return StepMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ yt2hoi4"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build a Hearts of Iron IV music mod from your downloads"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Mod name:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Downloads: %s", m.settings.DownloadsPath)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output:    %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Generating... (%s)", m.current)))
	b.WriteString("\n\n")
	b.WriteString(m.progress.View())
	b.WriteString("\n\n")

	for _, line := range m.logs {
		b.WriteString(infoStyle.Render("› " + line))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewComplete() string {
	return boxStyle.Render(fmt.Sprintf(
		"✓ Mod package generated!\n\n"+
			"Name:   %s\n"+
			"Tracks: %d\n"+
			"Output: %s",
		m.textInput.Value(),
		m.tracks,
		m.settings.OutputPath,
	)) + "\n"
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Generation failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: generate • esc: quit"
	case StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new mod • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
