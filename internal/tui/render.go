package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/admissions/internal/format"
	"github.com/jask/admissions/internal/roster"
	"github.com/jask/admissions/internal/table"
)

const (
	sidebarWidth = 26
	mainPadLeft  = 2
	mainPadRight = 1
	minColWidth  = 10
)

var navItems = []string{"Dashboard", "Applications", "Candidates", "Reports", "Messages", "Calendar", "Settings"}

const emptyMessage = "No candidates match your search."

type column struct {
	title string
	field table.Field
	width int
}

var columns = []column{
	{"Name", table.FieldName, 22},
	{"Program", table.FieldProgram, 22},
	{"GPA", table.FieldGPA, 8},
	{"Status", table.FieldNone, 14},
	{"Applied Date", table.FieldAppliedDate, 17},
	{"Actions", table.FieldNone, 10},
}

func (a *App) View() string {
	base := a.renderDashboard()
	if !a.sel.IsOpen() {
		return base
	}
	card, r := a.modalCard()
	return overlayAt(dim(base), card, r.x, r.y, a.screenWidth(), a.screenHeight())
}

func (a *App) renderDashboard() string {
	rows := a.rows()
	above := a.renderAbove(len(rows))
	g := a.geometry(len(rows))
	body := lipgloss.JoinVertical(lipgloss.Left, above, a.renderTable(rows, g))

	footer := a.renderFooter(len(rows))
	bodyHeight := max(1, a.screenHeight()-lipgloss.Height(footer))
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	main := lipgloss.NewStyle().
		PaddingLeft(mainPadLeft).
		PaddingRight(mainPadRight).
		Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
	return lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), main)
}

func (a *App) innerWidth() int {
	return max(40, a.screenWidth()-sidebarWidth-mainPadLeft-mainPadRight)
}

func (a *App) renderSidebar() string {
	inner := sidebarWidth - 2
	lines := []string{brandStyle.Width(inner).Render(a.title), ""}
	for i, item := range navItems {
		style := navStyle
		if i == 0 {
			style = navActiveStyle
		}
		lines = append(lines, style.Width(inner).Render(item))
	}
	return sidebarStyle.
		Width(sidebarWidth).
		Height(a.screenHeight()).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderHeader() string {
	w := a.innerWidth()
	left := titleStyle.Render(navItems[0])
	right := labelStyle.Render("✉ Mail") + dotStyle.Render("•") + "  " +
		labelStyle.Render("◉ Alerts") + dotStyle.Render("•")
	gap := max(1, w-lipgloss.Width(left)-lipgloss.Width(right))
	return headerStyle.Width(w).Render(left + strings.Repeat(" ", gap) + right)
}

func (a *App) renderCards() string {
	metrics := []struct {
		label string
		value int
	}{
		{"New Applications", a.counts[roster.StatusPending]},
		{"In Review", a.counts[roster.StatusInReview]},
		{"Accepted", a.counts[roster.StatusAccepted]},
	}
	const gap = 2
	w := (a.innerWidth() - gap*(len(metrics)-1)) / len(metrics)
	cards := make([]string, 0, len(metrics)*2)
	for i, m := range metrics {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", gap))
		}
		content := labelStyle.Render(m.label) + "\n" + cardValueStyle.Render(fmt.Sprint(m.value))
		cards = append(cards, cardStyle.Width(w-2).Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (a *App) renderPanelHead(results int) string {
	w := a.innerWidth()
	count := subtleStyle.Render(format.Results(results))
	search := a.search.View()
	gap := max(1, w-lipgloss.Width(search)-lipgloss.Width(count))
	return lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("My Candidates"),
		ansi.Truncate(search+strings.Repeat(" ", gap)+count, w, ""),
	)
}

// renderAbove is everything stacked over the candidate table.
func (a *App) renderAbove(results int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(), "", a.renderCards(), "", a.renderPanelHead(results), "")
}

// tableGeometry locates the candidate table on screen for mouse hits.
type tableGeometry struct {
	x, y    int
	widths  []int
	offset  int
	visible int
	total   int
}

func (g tableGeometry) headerY() int { return g.y + 1 }

func (g tableGeometry) column(x int) (int, bool) {
	left := g.x + 1
	for i, w := range g.widths {
		if x >= left && x < left+w {
			return i, true
		}
		left += w + 1
	}
	return 0, false
}

func (g tableGeometry) width() int {
	w := 1
	for _, cw := range g.widths {
		w += cw + 1
	}
	return w
}

// rowAt maps a screen cell to an index into the derived rows.
func (g tableGeometry) rowAt(x, y int) (int, bool) {
	if x <= g.x || x >= g.x+g.width()-1 {
		return 0, false
	}
	i := y - (g.y + 3)
	shown := min(g.visible, g.total-g.offset)
	if i < 0 || i >= shown {
		return 0, false
	}
	return g.offset + i, true
}

func (a *App) geometry(total int) tableGeometry {
	return tableGeometry{
		x:       sidebarWidth + mainPadLeft,
		y:       lipgloss.Height(a.renderAbove(total)),
		widths:  columnWidths(a.innerWidth()),
		offset:  a.offset,
		visible: a.visibleRows(),
		total:   total,
	}
}

// visibleRows is how many data rows fit under the table header.
func (a *App) visibleRows() int {
	used := lipgloss.Height(a.renderAbove(0)) + 4 + lipgloss.Height(a.renderFooter(0))
	return max(3, a.screenHeight()-used)
}

// columnWidths shrinks the name and program columns to fit avail cells.
func columnWidths(avail int) []int {
	widths := make([]int, len(columns))
	total := len(columns) + 1
	for i, c := range columns {
		widths[i] = c.width
		total += c.width
	}
	for total > avail {
		shrunk := false
		for _, i := range []int{0, 1} {
			if widths[i] > minColWidth && total > avail {
				widths[i]--
				total--
				shrunk = true
			}
		}
		if !shrunk {
			break
		}
	}
	return widths
}

func (a *App) headerLabel(c column) string {
	if c.field == table.FieldNone {
		return c.title
	}
	if c.field != a.state.Field {
		return c.title + " ⇅"
	}
	if a.state.Dir == table.Descending {
		return c.title + " ▼"
	}
	return c.title + " ▲"
}

// pad renders s in a cell of exactly width cells with one space either side.
func pad(s string, width int) string {
	return " " + fit(s, width-2) + " "
}

func (a *App) renderTable(rows []roster.Candidate, g tableGeometry) string {
	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = pad(a.headerLabel(c), g.widths[i])
	}

	end := min(len(rows), g.offset+g.visible)
	data := make([][]string, 0, max(0, end-g.offset))
	for i := g.offset; i < end; i++ {
		c := rows[i]
		action := "  View"
		if i == a.cursor {
			action = "▸ View"
		}
		gpa := lipgloss.NewStyle().Foreground(gpaTone(c.GPA)).Render(fit(format.GPAShort(c.GPA), g.widths[2]-2))
		status := lipgloss.NewStyle().Foreground(statusTone(c.Status)).Render(fit("● "+string(c.Status), g.widths[3]-2))
		data = append(data, []string{
			pad(c.Name, g.widths[0]),
			pad(c.Program, g.widths[1]),
			" " + gpa + " ",
			" " + status + " ",
			pad(format.Date(c.AppliedDate), g.widths[4]),
			pad(action, g.widths[5]),
		})
	}

	cursorRow := a.cursor - g.offset
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Width(g.width()).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				if columns[col].field != table.FieldNone && columns[col].field == a.state.Field {
					return activeHeadStyle
				}
				return headerCellStyle
			}
			if row == cursorRow {
				return cursorRowStyle
			}
			return lipgloss.NewStyle()
		})
	out := t.Render()
	if len(rows) == 0 {
		out = lipgloss.JoinVertical(lipgloss.Left, out, emptyStyle.Width(g.width()).Render(emptyMessage))
	}
	return out
}

func (a *App) renderFooter(results int) string {
	status := a.status
	style := statusOKStyle
	if a.statusErr {
		style = statusErrStyle
	}
	if status == "" {
		status = fmt.Sprintf("Showing %d of %d candidates", results, len(a.cands))
		style = subtleStyle
	}
	var h string
	switch {
	case a.sel.IsOpen():
		h = a.help.View(a.mkeys)
	case a.searching:
		h = a.help.View(a.skeys)
	default:
		h = a.help.View(a.keys)
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(ansi.Truncate(status, a.innerWidth(), "…")), h)
}
