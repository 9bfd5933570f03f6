// internal/tui/app.go
//
// Main TUI for the task generator, following The Elm Architecture via
// bubbletea:
//
// 1. Model: the App struct holds all session state
// 2. Update: state transitions driven by messages
// 3. View: renders state to a string
//
// The session is a small state machine: editing the brief, waiting on the
// generation service, or viewing and editing the generated specification.
// Exactly one Specification is owned at a time; a generation result or a
// history selection replaces it wholesale, never merges into it.

package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghanshambordekar3/Task-Generator/internal/client"
	"github.com/ghanshambordekar3/Task-Generator/internal/config"
	"github.com/ghanshambordekar3/Task-Generator/internal/export"
	"github.com/ghanshambordekar3/Task-Generator/internal/logbook"
	"github.com/ghanshambordekar3/Task-Generator/internal/spec"
)

// sessionState represents which "screen" we're on.
type sessionState int

const (
	stateBrief      sessionState = iota // Editing the brief form
	stateSubmitting                     // Waiting on the generation service
	stateResult                         // Viewing/editing the specification
)

type panelFocus int

const (
	focusForm panelFocus = iota
	focusHistory
)

// Service is the generation-service surface the controller depends on.
// *client.Client satisfies it; tests substitute a stub.
type Service interface {
	Generate(ctx context.Context, brief spec.Brief) (*spec.Specification, error)
	History(ctx context.Context) ([]spec.HistoryEntry, error)
	Health(ctx context.Context) (*client.Health, error)
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithService overrides the HTTP client with a custom service.
func WithService(svc Service) AppOption {
	return func(a *App) {
		if svc != nil {
			a.service = svc
		}
	}
}

// WithExporter overrides the export destination.
func WithExporter(ex *export.Exporter) AppOption {
	return func(a *App) {
		if ex != nil {
			a.exporter = ex
		}
	}
}

// Messages produced by asynchronous commands.

type generateResultMsg struct {
	seq   uint64
	brief spec.Brief
	spec  *spec.Specification
	err   error
}

type historyMsg struct {
	entries []spec.HistoryEntry
	err     error
}

type healthMsg struct {
	health *client.Health
	err    error
}

type exportDoneMsg struct {
	path string
	kind string
	err  error
}

// historyItem implements list.Item for the recall panel.
type historyItem struct {
	entry spec.HistoryEntry
}

func (i historyItem) Title() string { return i.entry.Input.Goal }
func (i historyItem) Description() string {
	return i.entry.Timestamp.Local().Format("2006-01-02 15:04")
}
func (i historyItem) FilterValue() string { return i.entry.Input.Goal }

// App is the main application model. In bubbletea, this holds ALL state.
type App struct {
	state   sessionState
	config  *config.Config
	service Service
	logbook *logbook.Logbook

	form     briefForm
	result   resultView
	exporter *export.Exporter

	// Supersession token: a response is applied only when its sequence
	// matches the most recent submission.
	submitSeq uint64

	// Current specification and the brief that produced it. The goal
	// doubles as the export title.
	current      *spec.Specification
	currentBrief spec.Brief

	historyList    list.Model
	historyEntries []spec.HistoryEntry
	historyErr     string
	health         *client.Health
	healthErr      string

	focus     panelFocus
	spin      spinner.Model
	statusMsg string
	errMsg    string

	width  int
	height int
}

// NewApp creates the App for a project directory.
func NewApp(projectDir string, opts ...AppOption) (*App, error) {
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	logPath := filepath.Join(cfg.LogsDir(), "session.log")
	lb, err := logbook.New(logPath)
	if err != nil {
		lb = nil
	}

	historyList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	historyList.Title = "Last 5 Specs"
	historyList.SetShowStatusBar(false)
	historyList.SetFilteringEnabled(false)
	historyList.SetShowHelp(false)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	app := &App{
		state:       stateBrief,
		config:      cfg,
		service:     client.New(cfg.ServiceBaseURL(), cfg.ClientTimeout()),
		logbook:     lb,
		form:        newBriefForm(),
		exporter:    export.NewExporter(cfg.ExportDir(), nil),
		historyList: historyList,
		spin:        spin,
		statusMsg:   "Fill in the brief and press ctrl+s to generate",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.logInfo("Session opened · service %s", cfg.ServiceBaseURL())
	return app, nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Info(format, args...)
	}
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Warn(format, args...)
	}
}

func (a *App) logError(format string, args ...any) {
	if a.logbook != nil {
		a.logbook.Error(format, args...)
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchHistory(), a.fetchHealth(), a.form.Focus())
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.historyList.SetSize(max(0, msg.Width/3-4), max(0, msg.Height-12))
		return a, nil

	case spinner.TickMsg:
		if a.state != stateSubmitting {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case generateResultMsg:
		return a.handleGenerateResult(msg)

	case historyMsg:
		if msg.err != nil {
			a.historyErr = "history unavailable"
			a.logWarn("History fetch failed: %v", msg.err)
			return a, nil
		}
		a.historyErr = ""
		a.historyEntries = msg.entries
		items := make([]list.Item, len(msg.entries))
		for i, e := range msg.entries {
			items[i] = historyItem{entry: e}
		}
		a.historyList.SetItems(items)
		return a, nil

	case healthMsg:
		if msg.err != nil {
			a.health = nil
			a.healthErr = "status unavailable"
			a.logWarn("Health probe failed: %v", msg.err)
			return a, nil
		}
		a.healthErr = ""
		a.health = msg.health
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Export failed: %v", msg.err)
			a.logError("Export failed: %v", msg.err)
			return a, nil
		}
		if msg.path != "" {
			a.statusMsg = fmt.Sprintf("Wrote %s", msg.path)
		} else {
			a.statusMsg = "Markdown copied to clipboard"
		}
		a.logInfo("Exported %s", msg.kind)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateActivePanel(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		a.logInfo("Session closed")
		return a, tea.Quit
	case "tab":
		if a.state == stateBrief && len(a.historyEntries) > 0 {
			if a.focus == focusForm {
				a.focus = focusHistory
				a.form.Blur()
			} else {
				a.focus = focusForm
				return a, a.form.Focus()
			}
			return a, nil
		}
	}

	switch a.state {
	case stateBrief:
		if a.focus == focusHistory {
			return a.handleHistoryKey(msg)
		}
		return a.handleFormKey(msg)
	case stateSubmitting:
		// Serialized: edits and further submissions wait for the
		// in-flight response (or its supersession by a new submit).
		if msg.String() == "esc" {
			a.state = stateBrief
			a.statusMsg = "Submission abandoned; response will be discarded"
			a.submitSeq++ // any in-flight response is now stale
			return a, a.form.Focus()
		}
		return a, nil
	case stateResult:
		return a.handleResultKey(msg)
	}
	return a, nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		item, ok := a.historyList.SelectedItem().(historyItem)
		if !ok {
			return a, nil
		}
		return a.loadHistoryEntry(item.entry)
	}
	var cmd tea.Cmd
	a.historyList, cmd = a.historyList.Update(msg)
	return a, cmd
}

// loadHistoryEntry replaces the brief and the current specification
// wholesale. Edits made to the previous specification are discarded, not
// merged.
func (a *App) loadHistoryEntry(entry spec.HistoryEntry) (tea.Model, tea.Cmd) {
	a.currentBrief = entry.Input
	a.current = entry.Output.Clone()
	a.form.SetBrief(entry.Input)
	a.result = newResultView()
	a.state = stateResult
	a.focus = focusForm
	a.errMsg = ""
	a.statusMsg = fmt.Sprintf("Loaded %q from history", entry.Input.Goal)
	a.logInfo("History · loaded entry %s (%s)", entry.ID, entry.Input.Goal)
	return a, a.refreshPanels()
}

func (a *App) updateActivePanel(msg tea.Msg) tea.Cmd {
	if a.state == stateBrief && a.focus == focusForm {
		return a.form.Update(msg)
	}
	return nil
}

// submitBrief validates locally and, only when valid, calls the service.
// An invalid brief never produces a network call.
func (a *App) submitBrief() (tea.Model, tea.Cmd) {
	brief := a.form.Brief()
	if err := brief.Validate(); err != nil {
		var verr *spec.ValidationError
		if errors.As(err, &verr) {
			a.errMsg = verr.Message
			a.form.FocusField(verr.Field)
		} else {
			a.errMsg = err.Error()
		}
		a.logWarn("Brief rejected: %v", err)
		return a, nil
	}
	a.errMsg = ""
	a.state = stateSubmitting
	a.submitSeq++
	a.statusMsg = fmt.Sprintf("Generating tasks for %q…", brief.Goal)
	a.logInfo("Brief submitted · goal: %s", brief.Goal)
	return a, tea.Batch(a.spin.Tick, a.generate(a.submitSeq, brief))
}

func (a *App) generate(seq uint64, brief spec.Brief) tea.Cmd {
	svc := a.service
	return func() tea.Msg {
		result, err := svc.Generate(context.Background(), brief)
		return generateResultMsg{seq: seq, brief: brief, spec: result, err: err}
	}
}

func (a *App) handleGenerateResult(msg generateResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.submitSeq {
		// A newer submission superseded this response.
		a.logWarn("Discarded stale generation response (seq %d, current %d)", msg.seq, a.submitSeq)
		return a, nil
	}
	if a.state != stateSubmitting {
		a.logWarn("Discarded generation response outside submission (state %d)", a.state)
		return a, nil
	}
	if msg.err != nil {
		a.state = stateBrief
		a.errMsg = describeGenerateError(msg.err)
		a.logError("Generation failed: %v", msg.err)
		return a, a.form.Focus()
	}
	// Atomic swap: the new specification replaces the old one wholesale.
	a.current = msg.spec
	a.currentBrief = msg.brief
	a.result = newResultView()
	a.state = stateResult
	a.errMsg = ""
	a.statusMsg = "Tasks generated · e rename · J/K move · m/p/c export · esc back"
	a.logInfo("Specification received · %d stories, %d tasks", len(msg.spec.UserStories), len(msg.spec.Tasks))
	return a, a.refreshPanels()
}

// describeGenerateError maps the failure taxonomy onto user-facing text.
// Server-provided messages surface verbatim; transport failures collapse to
// a generic connectivity notice.
func describeGenerateError(err error) string {
	var serr *client.ServiceError
	if errors.As(err, &serr) {
		return serr.Message
	}
	var cerr *client.ConnectivityError
	if errors.As(err, &cerr) {
		return "Failed to connect to the generation service. Please ensure the server is running."
	}
	if errors.Is(err, spec.ErrMalformedResponse) {
		return "The generation service returned an invalid specification."
	}
	return err.Error()
}

// refreshPanels re-fetches history and health. Called whenever the current
// specification reference changes so the panels stay eventually consistent
// with the external stores.
func (a *App) refreshPanels() tea.Cmd {
	return tea.Batch(a.fetchHistory(), a.fetchHealth())
}

func (a *App) fetchHistory() tea.Cmd {
	svc := a.service
	return func() tea.Msg {
		entries, err := svc.History(context.Background())
		return historyMsg{entries: entries, err: err}
	}
}

func (a *App) fetchHealth() tea.Cmd {
	svc := a.service
	return func() tea.Msg {
		health, err := svc.Health(context.Background())
		return healthMsg{health: health, err: err}
	}
}

// backToBrief returns to the form, preserving the entered fields.
func (a *App) backToBrief() (tea.Model, tea.Cmd) {
	a.state = stateBrief
	a.focus = focusForm
	a.statusMsg = "Back to the brief · fields preserved"
	a.logInfo("Returned to brief form")
	return a, a.form.Focus()
}

// resetBrief clears the form.
func (a *App) resetBrief() (tea.Model, tea.Cmd) {
	a.form = newBriefForm()
	a.state = stateBrief
	a.focus = focusForm
	a.errMsg = ""
	a.statusMsg = "Brief cleared"
	a.logInfo("Brief reset")
	return a, a.form.Focus()
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(30, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
		rightWidth = 0
	}

	var content string
	switch a.state {
	case stateBrief:
		content = a.form.View(leftWidth - 4)
	case stateSubmitting:
		content = fmt.Sprintf("%s %s", a.spin.View(), a.statusMsg)
	case stateResult:
		content = a.renderResult(leftWidth - 4)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#23A6D5")).
		MarginBottom(1).
		Render("⬡ TASKS GENERATOR")
	leftBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Width(max(20, leftWidth)).
		Render(content)

	var body string
	if rightWidth > 0 {
		right := lipgloss.JoinVertical(lipgloss.Left,
			a.renderHistoryPanel(rightWidth-4),
			"",
			a.renderHealthPanel(),
		)
		rightBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(max(20, rightWidth)).
			Render(right)
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
	} else {
		body = leftBox
	}

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := a.statusMsg
	if a.errMsg != "" {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")).Render("⚠ " + a.errMsg)
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(footer))
	return strings.Join(sections, "\n")
}

func (a *App) renderHistoryPanel(width int) string {
	if a.historyErr != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).
			Render("Last 5 Specs\n" + a.historyErr)
	}
	if len(a.historyEntries) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).
			Render("Last 5 Specs\nNothing generated yet.")
	}
	view := a.historyList.View()
	hint := "tab → focus history · enter → load"
	if a.focus == focusHistory {
		hint = "enter → load spec · tab → back to form"
	}
	return lipgloss.JoinVertical(lipgloss.Left, view,
		lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Render(hint))
}

func (a *App) renderHealthPanel() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Render("System Status")
	if a.healthErr != "" {
		return title + "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")).Render(a.healthErr)
	}
	if a.health == nil {
		return title + "\nProbing…"
	}
	mark := func(value string) string {
		if client.Healthy(value) {
			return lipgloss.NewStyle().Foreground(lipgloss.Color("#28A745")).Render("✓")
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")).Render("✗")
	}
	lines := []string{
		title,
		fmt.Sprintf("Backend:   %s", mark(a.health.Backend)),
		fmt.Sprintf("Database:  %s", mark(a.health.Database)),
		fmt.Sprintf("Generator: %s", mark(a.health.Generator)),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG · " + filepath.Base(a.logbook.Path()))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + body)
}

// exportMarkdown, exportPDF and copyMarkdown run off the update loop; the
// renderers are pure, so the specification is safe to read concurrently
// only because no further edit is applied until the command returns a
// message.
func (a *App) exportMarkdown() tea.Cmd {
	title, snapshot, ex := a.currentBrief.Goal, a.current.Clone(), a.exporter
	return func() tea.Msg {
		path, err := ex.WriteMarkdown(title, snapshot)
		return exportDoneMsg{path: path, kind: "markdown", err: err}
	}
}

func (a *App) exportPDF() tea.Cmd {
	title, snapshot, ex := a.currentBrief.Goal, a.current.Clone(), a.exporter
	return func() tea.Msg {
		path, err := ex.WritePDF(title, snapshot)
		return exportDoneMsg{path: path, kind: "pdf", err: err}
	}
}

func (a *App) copyMarkdown() tea.Cmd {
	title, snapshot := a.currentBrief.Goal, a.current.Clone()
	return func() tea.Msg {
		err := export.CopyMarkdown(title, snapshot)
		return exportDoneMsg{kind: "clipboard", err: err}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
