// Package export renders a candidate's application summary as markdown, the
// terminal counterpart of the dashboard's "Download Application" button.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"

	"github.com/jask/admissions/internal/format"
	"github.com/jask/admissions/internal/roster"
)

// Markdown returns the application summary for c.
func Markdown(c roster.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", c.Name)
	fmt.Fprintf(&b, "**Program:** %s  \n", c.Program)
	fmt.Fprintf(&b, "**Status:** %s  \n", c.Status)
	fmt.Fprintf(&b, "**Applied:** %s\n\n", format.Date(c.AppliedDate))

	b.WriteString("## Basic Information\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"Address", c.Address},
		{"Birth Date", format.Date(c.BirthDate)},
		{"Expected Graduation", c.ExpectedGraduation},
		{"GPA", format.GPALong(c.GPA)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], cell(r[1]))
	}

	fmt.Fprintf(&b, "\n## Passport Stamps (%d)\n\n", len(c.Stamps))
	if len(c.Stamps) == 0 {
		b.WriteString("No stamps earned yet.\n")
		return b.String()
	}
	b.WriteString("| Stamp | Category | Date Earned | Description | Evidence |\n|---|---|---|---|---|\n")
	for _, s := range c.Stamps {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(s.Name), s.Category, format.Date(s.EarnedDate), cell(s.Description), cell(s.Evidence))
	}
	return b.String()
}

func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// FileName is the export file name for c, e.g. application-5-sophie-chen.md.
func FileName(c roster.Candidate) string {
	return fmt.Sprintf("application-%d-%s.md", c.ID, slug(c.Name))
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Write stores the summary for c under dir and returns the written path.
func Write(dir string, c roster.Candidate) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(c))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(Markdown(c)), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Render formats markdown for the terminal. style is a glamour standard style
// name; "" or "auto" picks one from the terminal background.
func Render(md string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}
