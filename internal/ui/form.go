package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todoapp-go/internal/todo"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCount
)

// taskForm is the modal "New Task" form. A new form is built every time it
// opens, so cancelling discards whatever was typed.
type taskForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newTaskForm() *taskForm {
	f := &taskForm{}

	title := textinput.New()
	title.Placeholder = "Task Title"
	title.Prompt = ""
	title.CharLimit = 200

	desc := textinput.New()
	desc.Placeholder = "Task Description"
	desc.Prompt = ""
	desc.CharLimit = 500

	f.inputs[fieldTitle] = title
	f.inputs[fieldDescription] = desc
	return f
}

// open focuses the title field.
func (f *taskForm) open() tea.Cmd {
	f.focus = fieldTitle
	return tea.Batch(f.inputs[fieldTitle].Focus(), textinput.Blink)
}

func (f *taskForm) title() string       { return f.inputs[fieldTitle].Value() }
func (f *taskForm) description() string { return f.inputs[fieldDescription].Value() }

// canSubmit reports whether the confirm action is enabled.
func (f *taskForm) canSubmit() bool {
	return todo.ValidateTitle(f.title()) == nil
}

// move shifts focus by delta fields, wrapping around.
func (f *taskForm) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *taskForm) view() string {
	var b strings.Builder
	b.WriteString(formHeading.Render("New Task"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Title") + "\n")
	b.WriteString(f.inputs[fieldTitle].View() + "\n\n")
	b.WriteString(labelStyle.Render("Description") + "\n")
	b.WriteString(f.inputs[fieldDescription].View() + "\n\n")

	confirm := disabledStyle.Render("enter Add")
	if f.canSubmit() {
		confirm = confirmStyle.Render("enter Add")
	}
	b.WriteString(cancelStyle.Render("esc Cancel") + "   " + confirm)
	return formBox.Render(b.String())
}
