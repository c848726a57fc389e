// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
)

// Doc identifies one browsable diff document on disk.
type Doc struct {
	Title string
	Path  string
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// Browse runs the interactive browser over the given documents. It returns
// when the user quits.
func Browse(docs []Doc) error {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width, height = 80, 24
	}

	m := model{
		docs:   docs,
		vp:     viewport.New(width, height-2),
		width:  width,
		height: height,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type model struct {
	docs    []Doc
	cursor  int
	reading bool
	vp      viewport.Model
	width   int
	height  int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 2
		return m, nil
	case tea.KeyMsg:
		if m.reading {
			return m.updateReading(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.docs)-1 {
			m.cursor++
		}
	case "enter":
		raw, err := os.ReadFile(m.docs[m.cursor].Path)
		if err != nil {
			raw = []byte(fmt.Sprintf("failed to read %s: %v", m.docs[m.cursor].Path, err))
		}
		m.vp.SetContent(string(raw))
		m.vp.GotoTop()
		m.reading = true
	}
	return m, nil
}

func (m model) updateReading(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.reading = false
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(key)
	return m, cmd
}

func (m model) View() string {
	if m.reading {
		header := titleStyle.Render(m.docs[m.cursor].Title)
		help := helpStyle.Render("UP/DOWN: scroll, ESC: back, Q: quit")
		return header + "\n" + m.vp.View() + "\n" + help
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Select a diff to view:"))
	b.WriteString("\n\n")
	for i, d := range m.docs {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		fmt.Fprintf(&b, "%s %s\n", cursor, d.Title)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ENTER: view, Q/ESCAPE: quit"))
	b.WriteString("\n")
	return b.String()
}
