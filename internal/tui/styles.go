package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/admissions/internal/format"
	"github.com/jask/admissions/internal/roster"
)

// Catppuccin Mocha palette.
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSapphire lipgloss.Color = "#74c7ec"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorLavender
	colorMuted   = colorOverlay0
	colorBorder  = colorSurface2
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorBlue
)

var (
	brandStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	titleStyle      = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	subtleStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	labelStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
	navStyle        = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 1)
	navActiveStyle  = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 1)
	sidebarStyle    = lipgloss.NewStyle().Background(colorMantle).Padding(1, 1)
	headerStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(colorBorder)
	dotStyle        = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	cardStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 2)
	cardValueStyle  = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	cursorRowStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerCellStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	activeHeadStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	emptyStyle      = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Align(lipgloss.Center)
	statusOKStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	statusErrStyle  = lipgloss.NewStyle().Foreground(colorError)
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 2)
	sectionStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	buttonStyle     = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	primaryBtnStyle = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Bold(true).Padding(0, 2)
	backdropStyle   = lipgloss.NewStyle().Foreground(colorSurface2)
	tableBorder     = lipgloss.NewStyle().Foreground(colorBorder)
)

// pendingTone is shared by Pending and any status outside the known set.
var pendingTone = colorWarning

// statusTone maps every status to its badge colour.
func statusTone(s roster.Status) lipgloss.Color {
	switch s {
	case roster.StatusAccepted:
		return colorSuccess
	case roster.StatusRejected:
		return colorError
	case roster.StatusInReview:
		return colorInfo
	case roster.StatusPending:
		return pendingTone
	default:
		return pendingTone
	}
}

func statusBadge(s roster.Status) string {
	return lipgloss.NewStyle().Foreground(statusTone(s)).Bold(true).Render("● " + string(s))
}

func gpaTone(gpa float64) lipgloss.Color {
	switch format.BandOf(gpa) {
	case format.GPAHigh:
		return colorSuccess
	case format.GPAMid:
		return colorText
	default:
		return colorError
	}
}

func categoryTone(c roster.Category) lipgloss.Color {
	switch c {
	case roster.CategoryTechnical:
		return colorSapphire
	case roster.CategoryLeadership:
		return colorMauve
	case roster.CategoryCommunication:
		return colorTeal
	case roster.CategoryResearch:
		return colorPeach
	case roster.CategoryCommunity:
		return colorGreen
	default:
		return colorMuted
	}
}
