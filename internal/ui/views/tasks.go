package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dmaldon/taskdesk/internal/sqlite"
	"github.com/dmaldon/taskdesk/internal/ui/keys"
	"github.com/dmaldon/taskdesk/internal/ui/styles"
	"github.com/dmaldon/taskdesk/internal/undo"
	"github.com/dmaldon/taskdesk/internal/voice"
	"github.com/dmaldon/taskdesk/pkg/types"
)

// dictateTimeout bounds a capture session started from the dictation prompt.
const dictateTimeout = 5 * time.Second

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// TaskListView shows all tasks with filtering, editing, and undo
type TaskListView struct {
	store  *sqlite.Backend
	logger *zap.Logger
	stack  *undo.Stack
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	tasks      []types.Task
	categories []types.Category
	stats      types.Statistics

	cursor  int
	scrollY int

	// Category filter dropdown
	filterOpen     bool
	filterCursor   int
	selectedFilter string // empty = all categories

	// Create/edit form
	editing       bool
	editingNew    bool
	editingID     int64
	editTitle     textinput.Model
	editDesc      textarea.Model
	editDue       textinput.Model
	editPriority  textinput.Model
	editCatChoice int // 0 = none, i+1 = categories[i]
	editFocusIdx  int // 0=title, 1=desc, 2=due, 3=priority, 4=category, 5=save
	formErr       string

	// Delete confirmation
	confirmingDelete bool
	deleteTarget     types.Task

	// Dictation prompt
	dictating    bool
	dictateInput textinput.Model

	// Status line feedback
	statusMsg string
	statusErr bool

	// Startup reminder banner, shown once both tasks and stats are in
	noticeShown bool
}

// NewTaskListView creates the main task view
func NewTaskListView(store *sqlite.Backend, logger *zap.Logger, stack *undo.Stack) *TaskListView {
	s := styles.NewStyles()

	editTitle := textinput.New()
	editTitle.Placeholder = "Task title"
	editTitle.CharLimit = 200

	editDesc := textarea.New()
	editDesc.Placeholder = "Description"
	editDesc.CharLimit = 1000
	editDesc.SetWidth(50)
	editDesc.SetHeight(3)
	editDesc.ShowLineNumbers = false

	editDue := textinput.New()
	editDue.Placeholder = "YYYY-MM-DD"
	editDue.CharLimit = 10

	editPriority := textinput.New()
	editPriority.Placeholder = "high, medium, or low"
	editPriority.CharLimit = 6

	dictateInput := textinput.New()
	dictateInput.Placeholder = `e.g. "buy milk date twelve june priority high finish"`
	dictateInput.CharLimit = 300

	return &TaskListView{
		store:        store,
		logger:       logger,
		stack:        stack,
		styles:       s,
		keys:         keys.DefaultKeyMap(),
		editTitle:    editTitle,
		editDesc:     editDesc,
		editDue:      editDue,
		editPriority: editPriority,
		dictateInput: dictateInput,
	}
}

// ShowHistory signals to open the history view
type ShowHistory struct{}

// Init initializes the view
func (v *TaskListView) Init() tea.Cmd {
	return tea.Batch(v.loadTasks, v.loadCategories, v.loadStats)
}

type tasksLoadedMsg struct {
	tasks []types.Task
}

type categoriesLoadedMsg struct {
	categories []types.Category
}

type statsLoadedMsg struct {
	stats types.Statistics
}

type dictationMsg struct {
	session string
	result  voice.Result
}

func (v *TaskListView) loadTasks() tea.Msg {
	tasks, err := v.store.ListTasks(v.selectedFilter)
	if err != nil {
		return err
	}
	return tasksLoadedMsg{tasks: tasks}
}

func (v *TaskListView) loadCategories() tea.Msg {
	cats, err := v.store.ListCategories()
	if err != nil {
		return err
	}
	return categoriesLoadedMsg{categories: cats}
}

func (v *TaskListView) loadStats() tea.Msg {
	stats, err := v.store.Statistics()
	if err != nil {
		return err
	}
	return statsLoadedMsg{stats: stats}
}

// reload refreshes everything the screen shows after a mutation
func (v *TaskListView) reload() tea.Cmd {
	return tea.Batch(v.loadTasks, v.loadStats)
}

// Update handles messages
func (v *TaskListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(v.width)
		v.editDesc.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case tasksLoadedMsg:
		v.tasks = msg.tasks
		if v.cursor >= len(v.tasks) {
			v.cursor = max(0, len(v.tasks)-1)
		}
		v.maybeShowReminder()
		return v, nil

	case categoriesLoadedMsg:
		v.categories = msg.categories
		return v, nil

	case statsLoadedMsg:
		v.stats = msg.stats
		v.maybeShowReminder()
		return v, nil

	case dictationMsg:
		return v.handleDictation(msg)

	case error:
		v.setStatus(msg.Error(), true)
		v.logger.Error("ui operation failed", zap.Error(msg))
		return v, nil

	case tea.KeyMsg:
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.editing {
			return v.updateEditing(msg)
		}
		if v.dictating {
			return v.updateDictating(msg)
		}
		if v.filterOpen {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *TaskListView) setStatus(msg string, isErr bool) {
	v.statusMsg = msg
	v.statusErr = isErr
}

// maybeShowReminder puts the startup due-date summary on the status line
// once tasks and statistics have both arrived.
func (v *TaskListView) maybeShowReminder() {
	if v.noticeShown || v.tasks == nil || v.stats.Total == 0 {
		return
	}
	v.noticeShown = true

	today := types.Today()
	var dueToday int
	for _, t := range v.tasks {
		if t.Status == types.StatusPending && t.DueDate == today {
			dueToday++
		}
	}

	var parts []string
	if v.stats.Overdue > 0 {
		parts = append(parts, fmt.Sprintf("You have %d overdue task(s)", v.stats.Overdue))
	}
	if dueToday > 0 {
		parts = append(parts, fmt.Sprintf("%d task(s) due today", dueToday))
	}
	if len(parts) > 0 {
		v.setStatus(strings.Join(parts, " and "), false)
	}
}

func (v *TaskListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.startNewTask()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Enter), key.Matches(msg, v.keys.Edit):
		if len(v.tasks) > 0 {
			v.startEditTask(v.tasks[v.cursor])
			return v, textinput.Blink
		}
		return v, nil

	case key.Matches(msg, v.keys.Delete):
		if len(v.tasks) > 0 {
			v.confirmingDelete = true
			v.deleteTarget = v.tasks[v.cursor]
		}
		return v, nil

	case key.Matches(msg, v.keys.Complete):
		return v.completeCurrent()

	case key.Matches(msg, v.keys.Undo):
		return v.undoLast()

	case key.Matches(msg, v.keys.Filter):
		v.filterOpen = true
		v.filterCursor = 0
		return v, nil

	case key.Matches(msg, v.keys.Dictate):
		v.dictating = true
		v.dictateInput.Reset()
		v.dictateInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.History):
		return v, func() tea.Msg { return ShowHistory{} }
	}

	return v, nil
}

func (v *TaskListView) completeCurrent() (tea.Model, tea.Cmd) {
	if len(v.tasks) == 0 {
		return v, nil
	}
	task := v.tasks[v.cursor]
	if task.Status == types.StatusCompleted {
		v.setStatus(fmt.Sprintf("%q is already completed", task.Title), false)
		return v, nil
	}

	ok, err := v.store.CompleteTask(task.ID)
	if err != nil {
		v.setStatus(err.Error(), true)
		v.logger.Error("complete failed", zap.Int64("id", task.ID), zap.Error(err))
		return v, nil
	}
	if !ok {
		return v, v.reload()
	}

	entry := v.stack.Record(undo.Complete, task.ID)
	v.logger.Info("task completed",
		zap.Int64("id", task.ID), zap.String("undo_entry", entry))
	v.setStatus(fmt.Sprintf("Completed %q (u to undo)", task.Title), false)
	return v, v.reload()
}

func (v *TaskListView) undoLast() (tea.Model, tea.Cmd) {
	label, undone, err := v.stack.Undo()
	if err != nil {
		v.setStatus("Undo failed: "+err.Error(), true)
		v.logger.Error("undo failed", zap.Error(err))
		return v, v.reload()
	}
	if !undone {
		v.setStatus("Nothing to undo", false)
		return v, nil
	}
	v.setStatus("Undid last action: "+label, false)
	v.logger.Info("undo applied", zap.String("label", label))
	return v, v.reload()
}

func (v *TaskListView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.filterOpen = false
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.filterCursor > 0 {
			v.filterCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.filterCursor < len(v.categories) { // +1 for "All" option
			v.filterCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.filterCursor == 0 {
			v.selectedFilter = ""
		} else {
			v.selectedFilter = v.categories[v.filterCursor-1].Name
		}
		v.filterOpen = false
		v.cursor = 0
		v.scrollY = 0
		return v, v.loadTasks
	}

	return v, nil
}

func (v *TaskListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		target := v.deleteTarget

		ok, err := v.store.DeleteTask(target.ID)
		if err != nil {
			v.setStatus(err.Error(), true)
			v.logger.Error("delete failed", zap.Int64("id", target.ID), zap.Error(err))
			return v, nil
		}
		if !ok {
			return v, v.reload()
		}

		entry := v.stack.Record(undo.Delete, undo.Snapshot(&target))
		v.logger.Info("task deleted",
			zap.Int64("id", target.ID), zap.String("undo_entry", entry))
		v.setStatus(fmt.Sprintf("Deleted %q (u to undo)", target.Title), false)
		return v, v.reload()

	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func (v *TaskListView) updateDictating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.dictating = false
		v.dictateInput.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		transcript := strings.TrimSpace(v.dictateInput.Value())
		v.dictating = false
		v.dictateInput.Blur()
		if transcript == "" {
			return v, nil
		}
		return v, v.captureDictation(transcript)

	default:
		var cmd tea.Cmd
		v.dictateInput, cmd = v.dictateInput.Update(msg)
		return v, cmd
	}
}

// captureDictation runs a one-shot capture session over the transcript and
// delivers the parsed draft as a message.
func (v *TaskListView) captureDictation(transcript string) tea.Cmd {
	vocabulary := make([]string, 0, len(v.categories))
	for _, c := range v.categories {
		vocabulary = append(vocabulary, c.Name)
	}
	session := uuid.NewString()
	v.logger.Info("dictation session started", zap.String("session", session))

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dictateTimeout)
		defer cancel()
		result := <-voice.Capture(ctx, voice.Static(transcript), vocabulary)
		return dictationMsg{session: session, result: result}
	}
}

func (v *TaskListView) handleDictation(msg dictationMsg) (tea.Model, tea.Cmd) {
	if msg.result.Err != nil {
		v.setStatus("Dictation failed: "+msg.result.Err.Error(), true)
		v.logger.Error("dictation failed",
			zap.String("session", msg.session), zap.Error(msg.result.Err))
		return v, nil
	}

	draft := msg.result.Draft
	v.logger.Info("dictation parsed",
		zap.String("session", msg.session),
		zap.String("title", draft.Title),
		zap.Bool("auto_submit", draft.AutoSubmit))

	v.startNewTask()
	v.editTitle.SetValue(draft.Title)
	v.editDesc.SetValue(draft.Description)
	v.editDue.SetValue(draft.DueDateText)
	v.editPriority.SetValue(draft.Priority)
	v.editCatChoice = 0
	for i, c := range v.categories {
		if c.Name == draft.Category {
			v.editCatChoice = i + 1
			break
		}
	}

	if draft.AutoSubmit {
		return v, v.submitForm()
	}
	return v, textinput.Blink
}

func (v *TaskListView) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.editing = false
		return v, nil

	case msg.String() == "ctrl+s":
		return v, v.submitForm()

	case key.Matches(msg, v.keys.Tab):
		v.editFocusIdx = (v.editFocusIdx + 1) % 6
		v.updateEditFocus()
		return v, nil

	case msg.String() == "shift+tab":
		v.editFocusIdx = (v.editFocusIdx + 5) % 6
		v.updateEditFocus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		// Enter on single-line inputs moves to the next field; on the save
		// button it submits. The description textarea keeps enter for
		// newlines.
		switch v.editFocusIdx {
		case 0, 2, 3:
			v.editFocusIdx++
			v.updateEditFocus()
			return v, nil
		case 4:
			return v, nil
		case 5:
			return v, v.submitForm()
		}

	case key.Matches(msg, v.keys.Up):
		if v.editFocusIdx == 4 && v.editCatChoice > 0 {
			v.editCatChoice--
			return v, nil
		}

	case key.Matches(msg, v.keys.Down):
		if v.editFocusIdx == 4 && v.editCatChoice < len(v.categories) {
			v.editCatChoice++
			return v, nil
		}
	}

	var cmd tea.Cmd
	switch v.editFocusIdx {
	case 0:
		v.editTitle, cmd = v.editTitle.Update(msg)
	case 1:
		v.editDesc, cmd = v.editDesc.Update(msg)
	case 2:
		v.editDue, cmd = v.editDue.Update(msg)
	case 3:
		v.editPriority, cmd = v.editPriority.Update(msg)
	}
	return v, cmd
}

func (v *TaskListView) startNewTask() {
	v.editing = true
	v.editingNew = true
	v.editingID = 0
	v.editFocusIdx = 0
	v.editCatChoice = 0
	v.formErr = ""
	v.editTitle.Reset()
	v.editDesc.Reset()
	v.editDue.Reset()
	v.editPriority.Reset()
	v.updateEditFocus()
}

func (v *TaskListView) startEditTask(task types.Task) {
	v.editing = true
	v.editingNew = false
	v.editingID = task.ID
	v.editFocusIdx = 0
	v.formErr = ""
	v.editTitle.SetValue(task.Title)
	v.editDesc.SetValue(task.Description)
	v.editDue.SetValue(task.DueDate)
	v.editPriority.SetValue(task.Priority)
	v.editCatChoice = 0
	for i, c := range v.categories {
		if task.CategoryID != nil && c.ID == *task.CategoryID {
			v.editCatChoice = i + 1
			break
		}
	}
	v.updateEditFocus()
}

func (v *TaskListView) updateEditFocus() {
	v.editTitle.Blur()
	v.editDesc.Blur()
	v.editDue.Blur()
	v.editPriority.Blur()

	switch v.editFocusIdx {
	case 0:
		v.editTitle.Focus()
	case 1:
		v.editDesc.Focus()
	case 2:
		v.editDue.Focus()
	case 3:
		v.editPriority.Focus()
	}
}

// submitForm validates and persists the form, creating or updating. The
// form stays open with an inline error when the input is rejected.
func (v *TaskListView) submitForm() tea.Cmd {
	title := strings.TrimSpace(v.editTitle.Value())
	if title == "" {
		v.formErr = "title is required"
		return nil
	}

	due := strings.TrimSpace(v.editDue.Value())
	if due != "" && due < types.Today() {
		v.formErr = "due date is in the past"
		return nil
	}

	description := strings.TrimSpace(v.editDesc.Value())
	priority := strings.ToLower(strings.TrimSpace(v.editPriority.Value()))

	var categoryID *int64
	if v.editCatChoice > 0 && v.editCatChoice <= len(v.categories) {
		id := v.categories[v.editCatChoice-1].ID
		categoryID = &id
	}

	if v.editingNew {
		task, err := v.store.CreateTask(types.TaskParams{
			Title:       title,
			Description: description,
			DueDate:     due,
			Priority:    priority,
			CategoryID:  categoryID,
		})
		if err != nil {
			v.formErr = err.Error()
			return nil
		}
		v.editing = false
		v.setStatus(fmt.Sprintf("Created %q", task.Title), false)
		v.logger.Info("task created", zap.Int64("id", task.ID))
		return v.reload()
	}

	if priority == "" {
		priority = types.PriorityMedium
	}
	var cleared int64
	if categoryID == nil {
		categoryID = &cleared
	}
	patch := types.TaskPatch{
		Title:       &title,
		Description: &description,
		DueDate:     &due,
		Priority:    &priority,
		CategoryID:  categoryID,
	}
	ok, err := v.store.UpdateTask(v.editingID, patch)
	if err != nil {
		v.formErr = err.Error()
		return nil
	}
	v.editing = false
	if !ok {
		v.setStatus("Task no longer exists", true)
	} else {
		v.setStatus(fmt.Sprintf("Updated %q", title), false)
		v.logger.Info("task updated", zap.Int64("id", v.editingID))
	}
	return v.reload()
}

func (v *TaskListView) ensureVisible() {
	availableHeight := v.height - 10
	if availableHeight < 1 {
		availableHeight = 1
	}
	visibleItems := availableHeight
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

// View renders the view
func (v *TaskListView) View() string {
	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}
	if v.editing {
		return v.renderEditForm()
	}
	if v.dictating {
		return v.renderDictatePrompt()
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderTaskList())
	b.WriteString("\n")
	b.WriteString(v.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TaskListView) renderHeader() string {
	s := v.styles

	title := s.Title.Render("taskdesk")

	statsLine := s.TitleMuted.Render(fmt.Sprintf(
		"%d total · %d pending · %d overdue · %d done",
		v.stats.Total, v.stats.Pending, v.stats.Overdue, v.stats.Completed))

	filterLabel := "All"
	if v.selectedFilter != "" {
		filterLabel = v.selectedFilter
	}
	filterBtn := s.Button.Render("Category: " + filterLabel + " ▼")
	if v.filterOpen {
		filterBtn += "\n" + v.renderFilterDropdown()
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, statsLine, filterBtn)
}

func (v *TaskListView) renderFilterDropdown() string {
	s := v.styles
	var items []string

	allStyle := s.ListItem
	if v.filterCursor == 0 {
		allStyle = s.ListSelected
	}
	items = append(items, allStyle.Render("All"))

	for i, c := range v.categories {
		itemStyle := s.ListItem
		if v.filterCursor == i+1 {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(c.Name))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return s.Popup.Render(content)
}

func (v *TaskListView) renderTaskList() string {
	s := v.styles

	if len(v.tasks) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to create one, or 'v' to dictate.")
	}

	availableHeight := v.height - 10
	if availableHeight < 1 {
		availableHeight = 1
	}
	visibleItems := availableHeight

	var items []string
	endIdx := min(v.scrollY+visibleItems, len(v.tasks))
	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderTaskItem(v.tasks[i], i == v.cursor))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *TaskListView) statusGlyph(status string) string {
	s := v.styles
	switch status {
	case types.StatusCompleted:
		return s.Completed.Render("✓")
	case types.StatusOverdue:
		return s.Overdue.Render("!")
	default:
		return s.Pending.Render("○")
	}
}

func (v *TaskListView) priorityMark(priority string) string {
	s := v.styles
	switch priority {
	case types.PriorityHigh:
		return s.High.Render("▲")
	case types.PriorityLow:
		return s.Low.Render("▽")
	default:
		return s.Medium.Render("•")
	}
}

func (v *TaskListView) renderTaskItem(task types.Task, selected bool) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	due := "          "
	if task.DueDate != "" {
		due = task.DueDate
		if task.Status == types.StatusOverdue {
			due = s.Overdue.Render(due)
		}
	}

	line := fmt.Sprintf("%s %s  %s  %s",
		v.statusGlyph(task.Status), v.priorityMark(task.Priority), due, task.Title)
	if task.CategoryName != "" {
		line += "  " + s.TitleMuted.Render("["+task.CategoryName+"]")
	}

	itemStyle := s.ListItem
	if selected {
		itemStyle = s.ListSelected
	}
	return itemStyle.Width(width).Render(line)
}

func (v *TaskListView) renderStatusBar() string {
	if v.statusMsg == "" {
		return ""
	}
	if v.statusErr {
		return v.styles.StatusErr.Render(v.statusMsg)
	}
	return v.styles.StatusBar.Render(v.statusMsg)
}

func (v *TaskListView) renderHelp() string {
	s := v.styles
	return s.Help.Render(
		fmt.Sprintf("%s edit • %s new • %s done • %s del • %s undo • %s filter • %s dictate • %s history • %s quit",
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("n"),
			s.HelpKey.Render("c"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("u"),
			s.HelpKey.Render("f"),
			s.HelpKey.Render("v"),
			s.HelpKey.Render("h"),
			s.HelpKey.Render("q"),
		),
	)
}

func (v *TaskListView) renderEditForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Task"
	if !v.editingNew {
		formTitle = "Edit Task"
	}

	titleStyle := s.Input
	descStyle := s.Input
	dueStyle := s.Input
	priorityStyle := s.Input
	catStyle := s.Input
	btnStyle := s.Button

	switch v.editFocusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		descStyle = s.InputFocused
	case 2:
		dueStyle = s.InputFocused
	case 3:
		priorityStyle = s.InputFocused
	case 4:
		catStyle = s.InputFocused
	case 5:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	errLine := ""
	if v.formErr != "" {
		errLine = s.StatusErr.Render(v.formErr)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.editTitle.View()),
		"",
		"Description:",
		descStyle.Render(v.editDesc.View()),
		"",
		"Due date:",
		dueStyle.Width(14).Render(v.editDue.View()),
		"",
		"Priority:",
		priorityStyle.Width(22).Render(v.editPriority.View()),
		"",
		"Category:",
		v.renderCategoryChoice(catStyle, inputWidth),
		"",
		btnStyle.Render(" Save "),
		errLine,
		s.TitleMuted.Render("Tab: next • ↑↓: pick category • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

// renderCategoryChoice renders the single-choice category radio list
func (v *TaskListView) renderCategoryChoice(containerStyle lipgloss.Style, width int) string {
	s := v.styles

	var items []string
	for i := 0; i <= len(v.categories); i++ {
		label := "None"
		if i > 0 {
			label = v.categories[i-1].Name
		}

		radio := "( )"
		if v.editCatChoice == i {
			radio = "(•)"
		}

		itemText := radio + " " + label
		if v.editFocusIdx == 4 && v.editCatChoice == i {
			items = append(items, s.ListSelected.Render(itemText))
		} else {
			items = append(items, s.ListItem.Render(itemText))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, items...)
	return containerStyle.Width(width).Render(content)
}

func (v *TaskListView) renderDictatePrompt() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 30, 60)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Dictate a Task"),
		"",
		s.TitleMuted.Render("Markers: detail, date, priority, category. Say finish to submit."),
		"",
		s.InputFocused.Width(inputWidth).Render(v.dictateInput.View()),
		"",
		s.TitleMuted.Render("Enter: parse • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *TaskListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("%q will be removed permanently.", v.deleteTarget.Title)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
