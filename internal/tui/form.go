// internal/tui/form.go
//
// Brief form: five fields matching the submission contract. Goal and users
// are required, so submission validates locally before any service call.
// Field contents survive a round trip into the result view; only ctrl+r
// clears them.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

type briefField int

const (
	fieldGoal briefField = iota
	fieldUsers
	fieldConstraints
	fieldTemplate
	fieldRisks
	fieldCount
)

var fieldNames = map[string]briefField{
	"goal":     fieldGoal,
	"users":    fieldUsers,
	"template": fieldTemplate,
}

type briefForm struct {
	goal        textinput.Model
	users       textinput.Model
	constraints textinput.Model
	template    int // index into spec.Templates()
	risks       textarea.Model
	focused     briefField
}

func newBriefForm() briefForm {
	goal := textinput.New()
	goal.Placeholder = "What do you want to build?"
	goal.CharLimit = 200

	users := textinput.New()
	users.Placeholder = "Who is it for?"
	users.CharLimit = 200

	constraints := textinput.New()
	constraints.Placeholder = "Deadlines, stack, compliance… (optional)"
	constraints.CharLimit = 200

	risks := textarea.New()
	risks.Placeholder = "Known risks or unknowns (optional)"
	risks.SetHeight(3)
	risks.ShowLineNumbers = false

	return briefForm{
		goal:        goal,
		users:       users,
		constraints: constraints,
		risks:       risks,
		focused:     fieldGoal,
	}
}

// Brief assembles the current field values. Validation happens at submit.
func (f *briefForm) Brief() spec.Brief {
	return spec.Brief{
		Goal:        f.goal.Value(),
		Users:       f.users.Value(),
		Constraints: f.constraints.Value(),
		Template:    spec.Templates()[f.template],
		Risks:       f.risks.Value(),
	}
}

// SetBrief loads field values, e.g. when recalling a history entry.
func (f *briefForm) SetBrief(b spec.Brief) {
	f.goal.SetValue(b.Goal)
	f.users.SetValue(b.Users)
	f.constraints.SetValue(b.Constraints)
	f.risks.SetValue(b.Risks)
	f.template = 0
	for i, t := range spec.Templates() {
		if t == b.Template {
			f.template = i
		}
	}
}

// Focus gives input focus to the current field.
func (f *briefForm) Focus() tea.Cmd {
	f.Blur()
	switch f.focused {
	case fieldGoal:
		return f.goal.Focus()
	case fieldUsers:
		return f.users.Focus()
	case fieldConstraints:
		return f.constraints.Focus()
	case fieldRisks:
		return f.risks.Focus()
	}
	return textinput.Blink
}

// Blur removes focus from every field.
func (f *briefForm) Blur() {
	f.goal.Blur()
	f.users.Blur()
	f.constraints.Blur()
	f.risks.Blur()
}

// FocusField moves focus to the named field, used to highlight the input a
// validation error complains about.
func (f *briefForm) FocusField(name string) {
	if field, ok := fieldNames[name]; ok {
		f.focused = field
		f.Focus()
	}
}

func (f *briefForm) next() tea.Cmd {
	f.focused = (f.focused + 1) % fieldCount
	return f.Focus()
}

func (f *briefForm) prev() tea.Cmd {
	f.focused = (f.focused + fieldCount - 1) % fieldCount
	return f.Focus()
}

func (f *briefForm) cycleTemplate(delta int) {
	n := len(spec.Templates())
	f.template = (f.template + delta + n) % n
}

// Update routes a message to the focused input component.
func (f *briefForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focused {
	case fieldGoal:
		f.goal, cmd = f.goal.Update(msg)
	case fieldUsers:
		f.users, cmd = f.users.Update(msg)
	case fieldConstraints:
		f.constraints, cmd = f.constraints.Update(msg)
	case fieldRisks:
		f.risks, cmd = f.risks.Update(msg)
	}
	return cmd
}

// handleFormKey processes key presses while the brief form has focus.
func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return a.submitBrief()
	case "ctrl+r":
		return a.resetBrief()
	case "shift+tab", "up":
		// The risks textarea keeps arrow keys for cursor movement.
		if a.form.focused == fieldRisks && msg.String() == "up" {
			break
		}
		return a, a.form.prev()
	case "down":
		if a.form.focused == fieldRisks {
			break
		}
		return a, a.form.next()
	case "enter":
		if a.form.focused == fieldRisks {
			break // newline inside the textarea
		}
		return a, a.form.next()
	case "left", "h":
		if a.form.focused == fieldTemplate {
			a.form.cycleTemplate(-1)
			return a, nil
		}
	case "right", "l":
		if a.form.focused == fieldTemplate {
			a.form.cycleTemplate(1)
			return a, nil
		}
	}
	return a, a.form.Update(msg)
}

var (
	formLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	formFocusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#23A6D5"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func (f *briefForm) label(field briefField, text string) string {
	if f.focused == field {
		return formFocusStyle.Render("▸ " + text)
	}
	return formLabelStyle.Render("  " + text)
}

func (f *briefForm) templateView() string {
	parts := make([]string, 0, len(spec.Templates()))
	for i, t := range spec.Templates() {
		label := string(t)
		if i == f.template {
			label = formFocusStyle.Render("[" + label + "]")
		} else {
			label = formHintStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

// View renders the brief form.
func (f *briefForm) View(width int) string {
	f.goal.Width = max(20, width-4)
	f.users.Width = max(20, width-4)
	f.constraints.Width = max(20, width-4)
	f.risks.SetWidth(max(20, width-4))

	sections := []string{
		f.label(fieldGoal, "Goal *"),
		f.goal.View(),
		"",
		f.label(fieldUsers, "Users *"),
		f.users.View(),
		"",
		f.label(fieldConstraints, "Constraints"),
		f.constraints.View(),
		"",
		f.label(fieldTemplate, fmt.Sprintf("Template  %s", f.templateView())),
		"",
		f.label(fieldRisks, "Risks / Unknowns"),
		f.risks.View(),
		"",
		formHintStyle.Render("enter/↑↓ fields · ←/→ template · ctrl+s generate · ctrl+r clear · ctrl+c quit"),
	}
	return strings.Join(sections, "\n")
}
