// Package ui implements the interactive terminal surface: a bubbletea
// program over the storage backend, hosting the process-resident undo
// stack and the dictation flow. The UI holds plain record copies and
// re-queries after every mutation; it never keeps live references into
// the store.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/internal/ui/views"
	"github.com/dmaldon/taskdesk/internal/undo"
)

// App is the root model. It owns the active view and switches between
// the task list and the history overlay.
type App struct {
	tasks   *views.TaskListView
	history *views.HistoryView
	active  tea.Model

	width  int
	height int
}

// NewApp builds the root model over an attached backend.
func NewApp(store *sqlite.Backend, logger *zap.Logger) *App {
	stack := undo.NewStack(store)
	tasks := views.NewTaskListView(store, logger, stack)
	return &App{
		tasks:   tasks,
		history: views.NewHistoryView(store, logger),
		active:  tasks,
	}
}

// Init starts the active view.
func (a *App) Init() tea.Cmd {
	return a.active.Init()
}

// Update routes messages, handling the view-switch signals itself.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both views track the terminal size, visible or not.
		a.tasks.Update(msg)
		a.history.Update(msg)
		return a, nil

	case views.ShowHistory:
		a.active = a.history
		return a, a.history.Init()

	case views.CloseHistory:
		a.active = a.tasks
		// The log may have grown while the overlay was open.
		return a, nil
	}

	model, cmd := a.active.Update(msg)
	a.active = model
	return a, cmd
}

// View renders the active view.
func (a *App) View() string {
	return a.active.View()
}

// Run blocks inside the bubbletea event loop until the user quits.
func Run(store *sqlite.Backend, logger *zap.Logger) error {
	program := tea.NewProgram(NewApp(store, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
