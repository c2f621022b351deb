// Package tui renders the notes UI in a terminal. All note state lives in
// ui.Controller; this package only maps keys to controller actions and
// draws controller snapshots.
package tui

import (
	"context"
	"fmt"
	"strings"

	"notes-app-be/internal/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusTitle focus = iota
	focusContent
	focusList
	focusCount
)

// settledMsg is delivered when a controller action finishes, successfully or not.
type settledMsg struct {
	err error
}

type Model struct {
	ctrl *ui.Controller
	ctx  context.Context

	title   textinput.Model
	content textinput.Model
	focus   focus
	cursor  int
	theme   Theme

	// pending is set when an action is dispatched and cleared when it settles,
	// so the frame rendered right after the key press already shows it.
	pending bool
}

func New(ctx context.Context, ctrl *ui.Controller) Model {
	title := textinput.New()
	title.Placeholder = "Note Title"
	title.CharLimit = 255
	title.Focus()

	content := textinput.New()
	content.Placeholder = "Note Content"

	return Model{
		ctrl:    ctrl,
		ctx:     ctx,
		title:   title,
		content: content,
		focus:   focusTitle,
		theme:   DefaultTheme(),
		pending: true, // Init starts the first load
	}
}

func (model Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, model.run(model.ctrl.Load))
}

// start marks the model pending and returns the action as a command.
func (model Model) start(action func(context.Context) error) (Model, tea.Cmd) {
	model.pending = true
	return model, model.run(action)
}

func (model Model) busy() bool {
	return model.pending || model.ctrl.State().Busy
}

func (model Model) canMutate() bool {
	return !model.busy()
}

// run wraps a controller action as a command. The controller owns the busy
// flag, so a second action started before this one settles returns ui.ErrBusy.
func (model Model) run(action func(context.Context) error) tea.Cmd {
	ctx := model.ctx
	return func() tea.Msg {
		return settledMsg{err: action(ctx)}
	}
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case settledMsg:
		model.pending = false
		state := model.ctrl.State()
		// Inputs are cleared by the controller after a successful add.
		model.title.SetValue(state.Title)
		model.content.SetValue(state.Content)
		model.clampCursor(len(state.Notes))
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(message)
	}

	return model.updateFocusedInput(message)
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.String() {
	case "ctrl+c":
		return model, tea.Quit
	case "tab":
		return model.setFocus((model.focus + 1) % focusCount)
	case "shift+tab":
		return model.setFocus((model.focus + focusCount - 1) % focusCount)
	}

	if model.focus == focusList {
		return model.handleListKey(message)
	}

	// inputs are locked until the pending action settles
	if !model.canMutate() {
		return model, nil
	}

	if message.String() == "enter" {
		return model.start(model.ctrl.Add)
	}

	return model.updateFocusedInput(message)
}

func (model Model) handleListKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := model.ctrl.State()

	switch message.String() {
	case "q":
		return model, tea.Quit
	case "up", "k":
		if model.cursor > 0 {
			model.cursor--
		}
	case "down", "j":
		if model.cursor < len(state.Notes)-1 {
			model.cursor++
		}
	case "r":
		if model.canMutate() {
			return model.start(model.ctrl.Load)
		}
	case "d", "delete":
		if !model.canMutate() || len(state.Notes) == 0 {
			return model, nil
		}
		id := state.Notes[model.cursor].Id
		return model.start(func(ctx context.Context) error {
			return model.ctrl.Delete(ctx, id)
		})
	}

	return model, nil
}

func (model Model) setFocus(next focus) (tea.Model, tea.Cmd) {
	model.focus = next
	model.title.Blur()
	model.content.Blur()

	switch next {
	case focusTitle:
		return model, model.title.Focus()
	case focusContent:
		return model, model.content.Focus()
	}
	return model, nil
}

func (model Model) updateFocusedInput(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch model.focus {
	case focusTitle:
		model.title, cmd = model.title.Update(message)
		model.ctrl.SetTitle(model.title.Value())
	case focusContent:
		model.content, cmd = model.content.Update(message)
		model.ctrl.SetContent(model.content.Value())
	}
	return model, cmd
}

func (model *Model) clampCursor(count int) {
	if model.cursor >= count {
		model.cursor = count - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

func (model Model) View() string {
	state := model.ctrl.State()
	theme := model.theme

	var b strings.Builder
	b.WriteString(theme.Title.Render("📝 Notes App"))
	b.WriteString("\n\n")

	if state.Error != "" {
		b.WriteString(theme.Error.Render(state.Error))
		b.WriteString("\n\n")
	}

	b.WriteString(model.title.View())
	b.WriteString("\n")
	b.WriteString(model.content.View())
	b.WriteString("\n")
	b.WriteString(button("+ Add Note", model.canMutate(), theme))
	b.WriteString("\n\n")

	if model.busy() {
		b.WriteString(theme.Muted.Render("Loading notes..."))
		b.WriteString("\n")
	}

	for i, note := range state.Notes {
		marker := "  "
		if model.focus == focusList && i == model.cursor {
			marker = "> "
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			marker,
			theme.NoteTitle.Render(note.Title),
			"  ",
			theme.NoteBody.Render(note.Content),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(state.Notes) == 0 && !model.busy() {
		b.WriteString(theme.Muted.Render("No notes yet. Add one!"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Muted.Render(fmt.Sprintf("tab: focus • enter: add • d: %s • r: reload • q: quit",
		enabledLabel("delete", model.canMutate()))))

	return b.String()
}

func button(label string, enabled bool, theme Theme) string {
	if !enabled {
		return theme.Disabled.Render("[" + label + "]")
	}
	return theme.Button.Render("[" + label + "]")
}

func enabledLabel(label string, enabled bool) string {
	if enabled {
		return label
	}
	return label + " (disabled)"
}
