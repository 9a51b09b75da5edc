package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrSetupAborted is returned when the user quits the setup prompt.
var ErrSetupAborted = errors.New("setup aborted")

var (
	promptColor  = lipgloss.Color("205")
	mutedColor   = lipgloss.Color("240")
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(promptColor)
	promptStyle  = lipgloss.NewStyle().Foreground(promptColor)
	helpStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	setupPadding = lipgloss.NewStyle().Padding(1, 2)
)

const (
	stepLevel = iota
	stepCyclic
	stepDone
)

// SetupModel asks for the level file and whether the map wraps.
type SetupModel struct {
	level   textinput.Model
	cyclic  textinput.Model
	step    int
	aborted bool
	problem string
}

// NewSetupModel returns a prompt prefilled from cfg.
func NewSetupModel(cfg *Config) SetupModel {
	level := textinput.New()
	level.Placeholder = "level1.txt"
	level.CharLimit = 128
	level.Prompt = "Level file: "
	level.PromptStyle = promptStyle
	level.SetValue(cfg.Level)
	level.Focus()

	cyclic := textinput.New()
	cyclic.Placeholder = "no"
	cyclic.CharLimit = 8
	cyclic.Prompt = "Cyclic map? (yes/no): "
	cyclic.PromptStyle = promptStyle
	if cfg.Cyclic {
		cyclic.SetValue("yes")
	}

	return SetupModel{level: level, cyclic: cyclic}
}

// Init starts the cursor blinking.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		switch m.step {
		case stepLevel:
			if strings.TrimSpace(m.level.Value()) == "" {
				m.problem = "enter a level file name"
				return m, nil
			}
			m.problem = ""
			m.step = stepCyclic
			m.level.Blur()
			return m, m.cyclic.Focus()
		case stepCyclic:
			m.step = stepDone
			m.cyclic.Blur()
			return m, tea.Quit
		}
	}
	return m.updateFocused(msg)
}

func (m SetupModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case stepLevel:
		m.level, cmd = m.level.Update(msg)
	case stepCyclic:
		m.cyclic, cmd = m.cyclic.Update(msg)
	}
	return m, cmd
}

// View renders the prompt.
func (m SetupModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("flux"))
	b.WriteString("\n\n")
	if m.step == stepLevel {
		b.WriteString(m.level.View())
	} else {
		b.WriteString(promptStyle.Render(m.level.Prompt) + answerStyle.Render(m.Level()))
		b.WriteString("\n")
		b.WriteString(m.cyclic.View())
	}
	if m.problem != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.problem))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter to confirm, esc to quit"))
	return setupPadding.Render(b.String())
}

// Level returns the entered level name.
func (m SetupModel) Level() string { return strings.TrimSpace(m.level.Value()) }

// Cyclic reports whether the cyclic answer was affirmative.
func (m SetupModel) Cyclic() bool { return ParseYes(m.cyclic.Value()) }

// Done reports whether both answers were confirmed.
func (m SetupModel) Done() bool { return m.step == stepDone }

// Aborted reports whether the user quit the prompt.
func (m SetupModel) Aborted() bool { return m.aborted }

// Apply copies the answers into cfg.
func (m SetupModel) Apply(cfg *Config) {
	cfg.Level = m.Level()
	cfg.Cyclic = m.Cyclic()
}

// ParseYes accepts English and Russian affirmatives, case-insensitively.
func ParseYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "да", "д":
		return true
	default:
		return false
	}
}

// RunSetup prompts for any values the flags left unset. It is a no-op when a
// level was given on the command line.
func RunSetup(cfg *Config, opts ...tea.ProgramOption) error {
	if strings.TrimSpace(cfg.Level) != "" {
		return nil
	}
	final, err := tea.NewProgram(NewSetupModel(cfg), opts...).Run()
	if err != nil {
		return fmt.Errorf("setup prompt: %w", err)
	}
	m, ok := final.(SetupModel)
	if !ok || m.Aborted() || !m.Done() {
		return ErrSetupAborted
	}
	m.Apply(cfg)
	return nil
}
