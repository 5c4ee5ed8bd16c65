package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/admissions/internal/format"
	"github.com/jask/admissions/internal/roster"
)

const (
	maxModalWidth  = 100
	stampsPerRow   = 5
	modalChrome    = 2 + 2 + 2 // border, dividers, screen margin
	modalMinBodyLn = 3
)

type modalHitKind int

const (
	hitBackdrop modalHitKind = iota
	hitCard
	hitClose
	hitDownload
)

// modalWidth is the outer width of the detail card.
func (a *App) modalWidth() int {
	return max(40, min(maxModalWidth, a.screenWidth()-4))
}

// modalContentWidth is the width available inside border and padding.
func (a *App) modalContentWidth() int {
	return a.modalWidth() - 2 - 4
}

// layoutDetail sizes the viewport to the screen and fills it with the
// selected candidate's detail body.
func (a *App) layoutDetail() {
	c, ok := a.sel.Current()
	if !ok {
		return
	}
	cw := a.modalContentWidth()
	body := detailBody(c, cw)
	fixed := lipgloss.Height(modalHead(c, cw)) + 1 + modalChrome
	h := min(lipgloss.Height(body), max(modalMinBodyLn, a.screenHeight()-fixed))
	a.detail.Width = cw
	a.detail.Height = h
	a.detail.SetContent(body)
}

func modalHead(c roster.Candidate, width int) string {
	badge := statusBadge(c.Status)
	name := titleStyle.Render(ansi.Truncate(c.Name, max(1, width-lipgloss.Width(badge)-1), "…"))
	gap := max(1, width-lipgloss.Width(name)-lipgloss.Width(badge))
	return lipgloss.JoinVertical(lipgloss.Left,
		name+strings.Repeat(" ", gap)+badge,
		subtleStyle.Render(fit(c.Program+" · Applied "+format.Date(c.AppliedDate), width)),
	)
}

func modalButtons() (closeBtn, downloadBtn string) {
	return buttonStyle.Render("Close"), primaryBtnStyle.Render("Download Application")
}

func modalFooter() string {
	closeBtn, downloadBtn := modalButtons()
	return closeBtn + "  " + downloadBtn
}

// modalCard renders the detail card and where it sits on screen.
func (a *App) modalCard() (string, rect) {
	c, _ := a.sel.Current()
	cw := a.modalContentWidth()
	divider := lipgloss.NewStyle().Foreground(colorBorder).Render(strings.Repeat("─", cw))
	content := lipgloss.JoinVertical(lipgloss.Left,
		modalHead(c, cw),
		divider,
		a.detail.View(),
		divider,
		modalFooter(),
	)
	card := modalStyle.Width(a.modalWidth() - 2).Render(content)
	return card, centered(lipgloss.Width(card), lipgloss.Height(card), a.screenWidth(), a.screenHeight())
}

// modalHit classifies a click while the modal is open.
func (a *App) modalHit(x, y int) modalHitKind {
	_, r := a.modalCard()
	if !r.contains(x, y) {
		return hitBackdrop
	}
	// footer sits just above the bottom border
	if y != r.y+r.h-2 {
		return hitCard
	}
	closeBtn, downloadBtn := modalButtons()
	left := r.x + 1 + 2
	closeEnd := left + lipgloss.Width(closeBtn)
	switch {
	case x >= left && x < closeEnd:
		return hitClose
	case x >= closeEnd+2 && x < closeEnd+2+lipgloss.Width(downloadBtn):
		return hitDownload
	}
	return hitCard
}

// detailBody is the scrollable part of the modal.
func detailBody(c roster.Candidate, width int) string {
	parts := []string{
		sectionStyle.Render("Basic Information"),
		infoGrid(c, width),
		"",
		sectionStyle.Render(fmt.Sprintf("Passport Stamps (%d)", len(c.Stamps))),
	}
	if len(c.Stamps) == 0 {
		parts = append(parts, subtleStyle.Render("No stamps earned yet."))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	parts = append(parts,
		stampGrid(c.Stamps, width),
		"",
		sectionStyle.Render("Stamp Details"),
		stampTable(c.Stamps, width),
	)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func infoGrid(c roster.Candidate, width int) string {
	fields := [][2]string{
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Address", c.Address},
		{"Birth Date", format.Date(c.BirthDate)},
		{"Expected Graduation", c.ExpectedGraduation},
		{"GPA", format.GPALong(c.GPA)},
	}
	colW := width / 2
	var rows []string
	for i := 0; i < len(fields); i += 2 {
		cells := make([]string, 0, 2)
		for _, f := range fields[i:min(i+2, len(fields))] {
			value := f[1]
			if value == "" {
				value = "-"
			}
			style := lipgloss.NewStyle()
			if f[0] == "GPA" {
				style = style.Foreground(gpaTone(c.GPA)).Bold(true)
			}
			cells = append(cells, labelStyle.Render(fit(f[0], colW-1))+"\n"+style.Render(fit(value, colW-1)))
		}
		if len(cells) == 1 {
			rows = append(rows, cells[0])
			continue
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[0], " ", cells[1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func stampBadge(s roster.Stamp, width int) string {
	tone := categoryTone(s.Category)
	inner := max(1, width-2)
	content := lipgloss.NewStyle().Foreground(tone).Render("★") + "\n" +
		ansi.Truncate(s.Name, inner, "…") + "\n" +
		lipgloss.NewStyle().Foreground(tone).Render(ansi.Truncate(string(s.Category), inner, "…"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tone).
		Width(inner).
		Align(lipgloss.Center).
		Render(content)
}

func stampGrid(stamps []roster.Stamp, width int) string {
	badgeW := (width - (stampsPerRow - 1)) / stampsPerRow
	var rows []string
	for i := 0; i < len(stamps); i += stampsPerRow {
		var row []string
		for j, s := range stamps[i:min(i+stampsPerRow, len(stamps))] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, stampBadge(s, badgeW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func stampTable(stamps []roster.Stamp, width int) string {
	const nameW, catW, dateW = 20, 15, 14
	// description takes the larger share of what is left
	rest := width - nameW - catW - dateW - 6
	descW := max(minColWidth, rest*3/5)
	evidenceW := max(minColWidth, rest-descW)
	widths := []int{nameW, catW, dateW, descW, evidenceW}
	headers := []string{"Stamp Name", "Category", "Date Earned", "Description", "Evidence"}
	for i := range headers {
		headers[i] = pad(headers[i], widths[i])
	}
	rows := make([][]string, 0, len(stamps))
	for _, s := range stamps {
		cat := lipgloss.NewStyle().Foreground(categoryTone(s.Category)).Render(fit(string(s.Category), catW-2))
		rows = append(rows, []string{
			pad(s.Name, nameW),
			" " + cat + " ",
			pad(format.Date(s.EarnedDate), dateW),
			pad(s.Description, descW),
			pad(s.Evidence, evidenceW),
		})
	}
	total := 1
	for _, w := range widths {
		total += w + 1
	}
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Width(total).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerCellStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
