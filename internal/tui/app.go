// Package tui is the interactive admissions dashboard.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/admissions/internal/export"
	"github.com/jask/admissions/internal/roster"
	"github.com/jask/admissions/internal/selection"
	"github.com/jask/admissions/internal/table"
)

const (
	defaultWidth  = 120
	defaultHeight = 36
)

// Options configures a new App.
type Options struct {
	Title     string
	SortField table.Field
	SortDir   table.Direction
	ExportDir string
	Logger    *zap.Logger
}

// App is the bubbletea model for the dashboard. The candidate slice is never
// modified; the visible rows are derived from it on demand.
type App struct {
	cands     []roster.Candidate
	counts    map[roster.Status]int
	state     table.State
	sel       selection.Controller
	cursor    int
	offset    int
	searching bool
	search    textinput.Model
	detail    viewport.Model
	help      help.Model
	keys      tableKeys
	skeys     searchKeys
	mkeys     modalKeys
	width     int
	height    int
	title     string
	exportDir string
	status    string
	statusErr bool
	logger    *zap.Logger
}

type errMsg struct{ err error }

type exportedMsg struct{ path string }

// New builds the dashboard over cands.
func New(cands []roster.Candidate, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	title := opts.Title
	if title == "" {
		title = "Admissions Dashboard"
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search candidates..."
	ti.CharLimit = 64
	ti.Width = 30

	return &App{
		cands:     cands,
		counts:    roster.CountByStatus(cands),
		state:     table.NewState(opts.SortField, opts.SortDir),
		search:    ti,
		detail:    viewport.New(0, 0),
		help:      help.New(),
		keys:      newTableKeys(),
		skeys:     newSearchKeys(),
		mkeys:     newModalKeys(),
		title:     title,
		exportDir: opts.ExportDir,
		logger:    logger,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// rows is the filtered and sorted view of the dataset.
func (a *App) rows() []roster.Candidate {
	return a.state.Apply(a.cands)
}

// Selected returns the candidate shown in the detail modal, if any.
func (a *App) Selected() (roster.Candidate, bool) {
	return a.sel.Current()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = a.innerWidth()
		if a.sel.IsOpen() {
			a.layoutDetail()
		}
		a.clamp(len(a.rows()))
		return a, nil
	case tea.KeyMsg:
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.sel.IsOpen() {
			return a.handleModalKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleTableKey(m)
	case tea.MouseMsg:
		return a.handleMouse(m)
	case exportedMsg:
		a.setStatus("Saved application to "+m.path, false)
		a.logger.Info("application exported", zap.String("path", m.path))
		return a, nil
	case errMsg:
		a.setStatus(m.err.Error(), true)
		a.logger.Error("command failed", zap.Error(m.err))
		return a, nil
	}
	return a, nil
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

func (a *App) handleTableKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.rows()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Search):
		a.searching = true
		return a, a.search.Focus()
	case key.Matches(m, a.keys.Clear):
		if a.state.Search != "" {
			a.search.SetValue("")
			a.state.Search = ""
			a.clamp(len(a.rows()))
		}
	case key.Matches(m, a.keys.Up):
		a.cursor--
		a.clamp(len(rows))
	case key.Matches(m, a.keys.Down):
		a.cursor++
		a.clamp(len(rows))
	case key.Matches(m, a.keys.Top):
		a.cursor = 0
		a.clamp(len(rows))
	case key.Matches(m, a.keys.Bottom):
		a.cursor = len(rows) - 1
		a.clamp(len(rows))
	case key.Matches(m, a.keys.SortName):
		a.toggleSort(table.FieldName)
	case key.Matches(m, a.keys.SortProg):
		a.toggleSort(table.FieldProgram)
	case key.Matches(m, a.keys.SortGPA):
		a.toggleSort(table.FieldGPA)
	case key.Matches(m, a.keys.SortDate):
		a.toggleSort(table.FieldAppliedDate)
	case key.Matches(m, a.keys.View):
		if a.cursor < len(rows) {
			a.open(rows[a.cursor])
		}
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.skeys.Done), key.Matches(m, a.skeys.Cancel):
		a.searching = false
		a.search.Blur()
		a.logger.Debug("search", zap.String("query", a.state.Search), zap.Int("results", len(a.rows())))
		return a, nil
	case key.Matches(m, a.skeys.Up):
		a.cursor--
		a.clamp(len(a.rows()))
		return a, nil
	case key.Matches(m, a.skeys.Down):
		a.cursor++
		a.clamp(len(a.rows()))
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.state.Search = a.search.Value()
	a.clamp(len(a.rows()))
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.mkeys.Close):
		a.close()
		return a, nil
	case key.Matches(m, a.mkeys.Download):
		return a, a.exportCmd()
	}
	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(m)
	return a, cmd
}

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.sel.IsOpen() {
		if m.Button == tea.MouseButtonWheelUp || m.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			a.detail, cmd = a.detail.Update(m)
			return a, cmd
		}
		if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		switch a.modalHit(m.X, m.Y) {
		case hitBackdrop, hitClose:
			a.close()
		case hitDownload:
			return a, a.exportCmd()
		}
		return a, nil
	}

	rows := a.rows()
	switch m.Button {
	case tea.MouseButtonWheelUp:
		a.cursor--
		a.clamp(len(rows))
		return a, nil
	case tea.MouseButtonWheelDown:
		a.cursor++
		a.clamp(len(rows))
		return a, nil
	}
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return a, nil
	}
	g := a.geometry(len(rows))
	if m.Y == g.headerY() {
		if col, ok := g.column(m.X); ok && columns[col].field != table.FieldNone {
			a.toggleSort(columns[col].field)
		}
		return a, nil
	}
	if i, ok := g.rowAt(m.X, m.Y); ok {
		a.cursor = i
		a.clamp(len(rows))
		a.open(rows[i])
	}
	return a, nil
}

// toggleSort applies the header policy and keeps the cursor on the same
// candidate when it is still visible.
func (a *App) toggleSort(f table.Field) {
	rows := a.rows()
	keep := -1
	if a.cursor < len(rows) {
		keep = rows[a.cursor].ID
	}
	a.state.Toggle(f)
	rows = a.rows()
	for i, c := range rows {
		if c.ID == keep {
			a.cursor = i
			break
		}
	}
	a.clamp(len(rows))
	a.logger.Debug("sort changed", zap.String("field", a.state.Field.Name()), zap.String("dir", a.state.Dir.String()))
}

func (a *App) open(c roster.Candidate) {
	a.sel.Open(c)
	a.layoutDetail()
	a.detail.GotoTop()
	a.logger.Info("candidate opened", zap.Int("id", c.ID))
}

func (a *App) close() {
	if c, ok := a.sel.Current(); ok {
		a.logger.Debug("candidate closed", zap.Int("id", c.ID))
	}
	a.sel.Close()
}

func (a *App) exportCmd() tea.Cmd {
	c, ok := a.sel.Current()
	if !ok {
		return nil
	}
	dir := a.exportDir
	return func() tea.Msg {
		path, err := export.Write(dir, c)
		if err != nil {
			return errMsg{err}
		}
		return exportedMsg{path}
	}
}

// clamp keeps the cursor inside the derived rows and the scroll window
// around the cursor.
func (a *App) clamp(n int) {
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	visible := a.visibleRows()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+visible {
		a.offset = a.cursor - visible + 1
	}
	if a.offset > max(0, n-visible) {
		a.offset = max(0, n-visible)
	}
}

func (a *App) screenWidth() int {
	if a.width <= 0 {
		return defaultWidth
	}
	return a.width
}

func (a *App) screenHeight() int {
	if a.height <= 0 {
		return defaultHeight
	}
	return a.height
}
