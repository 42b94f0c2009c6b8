package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// menuStage tracks which screen of the interactive flow is showing.
type menuStage int

const (
	stageMenu  menuStage = iota // pick an operation (or exit)
	stageFileA                  // type the first operand file name
	stageFileB                  // type the second operand file name
)

// menuChoice is what the interactive session settled on after one pass
// through the menu. A nil op means the user chose to exit.
type menuChoice struct {
	op    *operation
	fileA string
	fileB string
}

// menuModel is the bubbletea model for the interactive operation picker.
// It walks three stages: operation selection, then one text prompt per
// operand file.
type menuModel struct {
	stage  menuStage
	cursor int
	input  string
	choice menuChoice
	done   bool
}

func newMenuModel() menuModel {
	return menuModel{}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.choice = menuChoice{}
		return m, tea.Quit
	case "esc":
		if m.stage == stageMenu {
			m.choice = menuChoice{}
			return m, tea.Quit
		}
		// Back out of the file prompts to the menu.
		m.stage = stageMenu
		m.input = ""
		return m, nil
	case "q":
		// Only a quit key at the menu; in the prompts it is a plain rune.
		if m.stage == stageMenu {
			m.choice = menuChoice{}
			return m, tea.Quit
		}
	}

	if m.stage == stageMenu {
		return m.updateMenu(key)
	}
	return m.updateFilePrompt(key)
}

func (m menuModel) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The last row is Exit.
	last := len(operations)

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < last {
			m.cursor++
		}
	case "enter":
		if m.cursor == last {
			m.choice = menuChoice{}
			return m, tea.Quit
		}
		m.choice = menuChoice{op: &operations[m.cursor]}
		m.stage = stageFileA
		m.input = ""
	}
	return m, nil
}

func (m menuModel) updateFilePrompt(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		name := strings.TrimSpace(m.input)
		if name == "" {
			return m, nil
		}
		m.input = ""
		if m.stage == stageFileA {
			m.choice.fileA = name
			m.stage = stageFileB
			return m, nil
		}
		m.choice.fileB = name
		m.done = true
		return m, tea.Quit
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	default:
		if key.Type == tea.KeyRunes {
			m.input += string(key.Runes)
		} else if key.Type == tea.KeySpace {
			m.input += " "
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Sparse Matrix Operations"))
	b.WriteString("\n")

	switch m.stage {
	case stageMenu:
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
		b.WriteString("\n\n")
		for i, op := range operations {
			b.WriteString(m.menuRow(i, title(op.noun)))
		}
		b.WriteString(m.menuRow(len(operations), "Exit"))
	case stageFileA, stageFileB:
		which := "first"
		if m.stage == stageFileB {
			which = "second"
		}
		b.WriteString(listDimStyle.Render("type a file name  ⏎ confirm  esc back"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %s %s\n\n",
			listDimStyle.Render("operation:"),
			listNormalStyle.Render(m.choice.op.noun)))
		b.WriteString(fmt.Sprintf("  Enter the %s matrix file: %s█\n",
			which, listSelectedStyle.Render(m.input)))
	}

	return b.String()
}

// title upper-cases the first letter of an operation noun for display.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m menuModel) menuRow(i int, label string) string {
	cursor := "  "
	style := listNormalStyle
	if i == m.cursor {
		cursor = "> "
		style = listSelectedStyle
	}
	return style.Render(cursor+label) + "\n"
}
