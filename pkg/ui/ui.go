package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.design/x/clipboard"

	"github.com/jbdamask/deskmate/pkg/command"
	"github.com/jbdamask/deskmate/pkg/logger"
	"github.com/jbdamask/deskmate/pkg/processor"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// commandItem adapts a registered command for the picker list.
type commandItem struct {
	cmd command.Command
}

func (i commandItem) Title() string       { return i.cmd.Triggers[0] }
func (i commandItem) Description() string { return i.cmd.Description }
func (i commandItem) FilterValue() string { return strings.Join(i.cmd.Triggers, " ") }

type model struct {
	textInput  textinput.Model
	results    viewport.Model
	picker     list.Model
	showPicker bool

	proc       *processor.Processor
	registry   *command.Registry
	log        *logger.Logger
	transcript []string
	lastResult string
	status     string

	width  int
	height int
	ready  bool
}

func newModel(proc *processor.Processor, registry *command.Registry, log *logger.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "Type a command (e.g. 'open downloads' or '크롬 켜줘')..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Prompt = promptStyle.Render("> ")

	items := []list.Item{}
	for _, cmd := range registry.Commands() {
		items = append(items, commandItem{cmd: cmd})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("62")).
		Foreground(lipgloss.Color("170")).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("62")).
		Foreground(lipgloss.Color("240")).
		Padding(0, 0, 0, 1)

	picker := list.New(items, delegate, 40, 10)
	picker.Title = "Commands"
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(true)
	picker.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true).
		Padding(0, 1)

	return model{
		textInput: ti,
		picker:    picker,
		proc:      proc,
		registry:  registry,
		log:       log,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		resultsHeight := msg.Height - 6
		if resultsHeight < 3 {
			resultsHeight = 3
		}
		if !m.ready {
			m.results = viewport.New(msg.Width-2, resultsHeight)
			m.ready = true
		} else {
			m.results.Width = msg.Width - 2
			m.results.Height = resultsHeight
		}
		m.textInput.Width = msg.Width - 4
		m.picker.SetSize(msg.Width-2, resultsHeight)
		return m, nil

	case tea.KeyMsg:
		if m.showPicker {
			return m.updatePicker(msg)
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.execute()
		case tea.KeyCtrlL:
			m.transcript = nil
			m.results.SetContent("")
			m.status = "Cleared."
			return m, nil
		case tea.KeyCtrlY:
			m.copyLastResult()
			return m, nil
		case tea.KeyRunes:
			// "/" on an empty line opens the command picker
			if len(msg.Runes) == 1 && msg.Runes[0] == '/' && m.textInput.Value() == "" {
				m.showPicker = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if item, ok := m.picker.SelectedItem().(commandItem); ok {
			m.textInput.SetValue(item.cmd.Triggers[0])
			m.textInput.SetCursor(len(m.textInput.Value()))
		}
		m.showPicker = false
		return m, nil
	case tea.KeyCtrlC, tea.KeyEsc:
		m.showPicker = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m model) execute() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textInput.Value())
	m.textInput.SetValue("")

	result := m.proc.Process(context.Background(), input)
	m.lastResult = result
	m.log.Info("processed command", map[string]any{"input": input, "result": result})

	entry := promptStyle.Render("> ") + inputStyle.Render(input) + "\n" + resultStyle.Render(result)
	m.transcript = append(m.transcript, entry)
	m.results.SetContent(strings.Join(m.transcript, "\n\n"))
	m.results.GotoBottom()
	m.status = ""
	return m, nil
}

func (m *model) copyLastResult() {
	if m.lastResult == "" {
		m.status = "Nothing to copy yet."
		return
	}
	if err := clipboard.Init(); err != nil {
		m.status = fmt.Sprintf("Clipboard unavailable: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(m.lastResult))
	m.status = "Copied last result to clipboard."
}

func (m model) View() string {
	if !m.ready {
		return "Starting deskmate..."
	}
	if m.showPicker {
		return m.picker.View()
	}

	hint := hintStyle.Render("enter: run  /: commands  ctrl+y: copy result  ctrl+l: clear  esc: quit")
	if m.status != "" {
		hint = hintStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.results.View(),
		"",
		m.textInput.View(),
		hint,
	)
}

// Run starts the interactive assistant and blocks until the user quits.
func Run(proc *processor.Processor, registry *command.Registry, log *logger.Logger, version string) error {
	DrawBanner(version, registry.Len())

	p := tea.NewProgram(newModel(proc, registry, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
