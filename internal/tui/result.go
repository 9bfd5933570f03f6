// internal/tui/result.go
//
// Result view: the generated specification with a cursor over the flat task
// order. Tasks render in their derived group blocks; the cursor, renames and
// moves all address the underlying task list, so a move across a group
// boundary re-homes the task in the next render.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

type resultView struct {
	cursor    int
	editing   bool
	editInput textinput.Model
}

func newResultView() resultView {
	input := textinput.New()
	input.CharLimit = 300
	return resultView{editInput: input}
}

// selectedTask returns the task under the cursor, or false when the
// specification has no tasks.
func (a *App) selectedTask() (spec.Task, bool) {
	if a.current == nil || len(a.current.Tasks) == 0 {
		return spec.Task{}, false
	}
	if a.result.cursor >= len(a.current.Tasks) {
		a.result.cursor = len(a.current.Tasks) - 1
	}
	if a.result.cursor < 0 {
		a.result.cursor = 0
	}
	return a.current.Tasks[a.result.cursor], true
}

func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.result.editing {
		return a.handleRenameKey(msg)
	}

	switch msg.String() {
	case "esc":
		return a.backToBrief()
	case "ctrl+r":
		return a.resetBrief()
	case "up", "k":
		if a.result.cursor > 0 {
			a.result.cursor--
		}
		return a, nil
	case "down", "j":
		if a.current != nil && a.result.cursor < len(a.current.Tasks)-1 {
			a.result.cursor++
		}
		return a, nil
	case "K", "shift+up":
		return a, a.moveSelected(spec.Up)
	case "J", "shift+down":
		return a, a.moveSelected(spec.Down)
	case "e", "enter":
		task, ok := a.selectedTask()
		if !ok {
			return a, nil
		}
		a.result.editing = true
		a.result.editInput.SetValue(task.Text)
		a.result.editInput.CursorEnd()
		return a, a.result.editInput.Focus()
	case "m":
		a.statusMsg = "Writing markdown…"
		return a, a.exportMarkdown()
	case "p":
		a.statusMsg = "Writing PDF…"
		return a, a.exportPDF()
	case "c":
		a.statusMsg = "Copying markdown…"
		return a, a.copyMarkdown()
	}
	return a, nil
}

func (a *App) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.result.editing = false
		a.result.editInput.Blur()
		return a, nil
	case "enter":
		task, ok := a.selectedTask()
		a.result.editing = false
		a.result.editInput.Blur()
		if !ok {
			return a, nil
		}
		text := strings.TrimSpace(a.result.editInput.Value())
		if text == "" || text == task.Text {
			return a, nil
		}
		if err := a.current.Rename(task.ID, text); err != nil {
			// A missing id means the task list was replaced under the
			// edit; drop it quietly.
			a.logWarn("Rename dropped: %v", err)
			return a, nil
		}
		a.statusMsg = "Task renamed"
		a.logInfo("Task %s renamed", task.ID)
		return a, nil
	}
	var cmd tea.Cmd
	a.result.editInput, cmd = a.result.editInput.Update(msg)
	return a, cmd
}

// moveSelected swaps the selected task with its neighbor and keeps the
// cursor on the moved task. Boundary moves are no-ops.
func (a *App) moveSelected(dir spec.Direction) tea.Cmd {
	task, ok := a.selectedTask()
	if !ok {
		return nil
	}
	before := a.result.cursor
	if err := a.current.Move(task.ID, dir); err != nil {
		a.logWarn("Move dropped: %v", err)
		return nil
	}
	switch dir {
	case spec.Up:
		if before > 0 {
			a.result.cursor = before - 1
		}
	case spec.Down:
		if before < len(a.current.Tasks)-1 {
			a.result.cursor = before + 1
		}
	}
	return nil
}

var (
	resultTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#23A6D5"))
	resultGroupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	resultCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#23A6D5"))
	resultDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// renderResult renders the specification with the cursor and any inline
// rename editor applied.
func (a *App) renderResult(width int) string {
	if a.current == nil {
		return resultDimStyle.Render("Nothing generated yet.")
	}
	var b strings.Builder
	b.WriteString(resultTitleStyle.Render("Feature: " + a.currentBrief.Goal))
	b.WriteString("\n\n")

	b.WriteString(resultGroupStyle.Render("User Stories"))
	b.WriteString("\n")
	for _, story := range a.current.UserStories {
		b.WriteString("  • " + story + "\n")
	}
	b.WriteString("\n")

	b.WriteString(resultGroupStyle.Render("Tasks"))
	b.WriteString("\n")
	selected, hasSelection := a.selectedTask()
	for _, group := range a.current.Groups() {
		b.WriteString("  " + resultGroupStyle.Render(group.Label) + "\n")
		for _, task := range group.Tasks {
			line := "    ☐ " + task.Text
			if hasSelection && task.ID == selected.ID {
				if a.result.editing {
					a.result.editInput.Width = max(20, width-10)
					line = "    ☐ " + a.result.editInput.View()
				} else {
					line = resultCursorStyle.Render(line)
				}
			}
			b.WriteString(line + "\n")
		}
	}

	if strings.TrimSpace(a.current.Risks) != "" {
		b.WriteString("\n")
		b.WriteString(resultGroupStyle.Render("Risks / Unknowns"))
		b.WriteString("\n  " + a.current.Risks + "\n")
	}

	b.WriteString("\n")
	hint := "↑/↓ select · e rename · K/J move · m markdown · p pdf · c copy · esc back · ctrl+r new"
	if a.result.editing {
		hint = "enter save · esc cancel"
	}
	b.WriteString(resultDimStyle.Render(hint))
	return b.String()
}
