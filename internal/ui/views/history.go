package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/internal/ui/keys"
	"github.com/dmaldon/taskdesk/internal/ui/styles"
	"github.com/dmaldon/taskdesk/pkg/types"
)

// historyPageSize is how many entries one load pulls from the store.
const historyPageSize = 50

// CloseHistory signals to return to the task list
type CloseHistory struct{}

// HistoryView shows the activity log, newest entries first
type HistoryView struct {
	store  *sqlite.Backend
	logger *zap.Logger
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	entries []types.LogEntry
	scrollY int
}

// NewHistoryView creates the activity log view
func NewHistoryView(store *sqlite.Backend, logger *zap.Logger) *HistoryView {
	return &HistoryView{
		store:  store,
		logger: logger,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
	}
}

type historyLoadedMsg struct {
	entries []types.LogEntry
}

// Init initializes the view
func (v *HistoryView) Init() tea.Cmd {
	return v.loadEntries
}

func (v *HistoryView) loadEntries() tea.Msg {
	entries, err := v.store.RecentLog(historyPageSize)
	if err != nil {
		return err
	}
	return historyLoadedMsg{entries: entries}
}

// Update handles messages
func (v *HistoryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case historyLoadedMsg:
		v.entries = msg.entries
		v.scrollY = 0
		return v, nil

	case error:
		v.logger.Error("history load failed", zap.Error(msg))
		return v, func() tea.Msg { return CloseHistory{} }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.History):
			return v, func() tea.Msg { return CloseHistory{} }

		case key.Matches(msg, v.keys.Up):
			if v.scrollY > 0 {
				v.scrollY--
			}
			return v, nil

		case key.Matches(msg, v.keys.Down):
			if v.scrollY < max(0, len(v.entries)-v.visibleLines()) {
				v.scrollY++
			}
			return v, nil
		}
	}

	return v, nil
}

func (v *HistoryView) visibleLines() int {
	lines := v.height - 7
	if lines < 1 {
		lines = 1
	}
	return lines
}

// actionGlyph renders the action column with a color per action kind.
func (v *HistoryView) actionGlyph(action string) string {
	s := v.styles
	switch action {
	case types.ActionCreate:
		return s.Completed.Render("+ create ")
	case types.ActionDelete:
		return s.Overdue.Render("- delete ")
	case types.ActionComplete:
		return s.Pending.Render("✓ complete")
	default:
		return s.Medium.Render("~ edit   ")
	}
}

// View renders the view
func (v *HistoryView) View() string {
	s := v.styles

	header := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Activity History"),
		s.TitleMuted.Render(fmt.Sprintf("%d recent action(s)", len(v.entries))),
	)

	body := s.TitleMuted.Render("No activity recorded yet.")
	if len(v.entries) > 0 {
		var lines []string
		endIdx := min(v.scrollY+v.visibleLines(), len(v.entries))
		for i := v.scrollY; i < endIdx; i++ {
			e := v.entries[i]
			line := fmt.Sprintf("%s  %s  %s",
				s.TitleMuted.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")),
				v.actionGlyph(e.Action),
				e.TaskTitle)
			if e.Detail != "" {
				line += "  " + s.TitleMuted.Render(e.Detail)
			}
			lines = append(lines, s.ListItem.Render(line))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	help := s.Help.Render(fmt.Sprintf("%s scroll • %s back • %s quit",
		s.HelpKey.Render("↑↓"),
		s.HelpKey.Render("esc"),
		s.HelpKey.Render("q"),
	))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(help)

	return styles.CenterView(b.String(), v.width, v.height)
}
