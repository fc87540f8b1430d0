// Package display renders courses and catalog statistics for the console.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gostonefire/coursecatalog"
)

// Renderer holds the styles used for console output.
// Colors are only emitted when the output is a terminal that supports them.
type Renderer struct {
	label lipgloss.Style
	title lipgloss.Style
	muted lipgloss.Style
	alert lipgloss.Style
}

// NewRenderer returns a Renderer for output written to w.
//   - accentColor is a lipgloss color string used for labels
func NewRenderer(w io.Writer, accentColor string) *Renderer {
	r := lipgloss.NewRenderer(w)
	accent := lipgloss.Color(accentColor)

	return &Renderer{
		label: r.NewStyle().Foreground(accent).Bold(true),
		title: r.NewStyle().Bold(true),
		muted: r.NewStyle().Foreground(lipgloss.Color("244")),
		alert: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Course renders one course as Number, Title and Prerequisites lines.
func (R *Renderer) Course(c coursecatalog.Course) string {
	var b strings.Builder
	b.WriteString(R.label.Render("Number:") + " " + c.Number + "\n")
	b.WriteString(R.label.Render("Title:") + " " + R.title.Render(c.Title) + "\n")
	b.WriteString(R.label.Render("Prerequisites:") + " " + strings.Join(c.Prerequisites, ", "))

	return b.String()
}

// CourseList renders courses in the given order, one block per course.
func (R *Renderer) CourseList(courses []coursecatalog.Course) string {
	if len(courses) == 0 {
		return R.muted.Render("No courses loaded.")
	}

	blocks := make([]string, len(courses))
	for i, c := range courses {
		blocks[i] = R.Course(c)
	}

	return strings.Join(blocks, "\n")
}

// NotFound renders the message shown when a course number is unknown.
func (R *Renderer) NotFound(number string) string {
	return R.alert.Render("Could not find course with number: " + number)
}

// Error renders an error message.
func (R *Renderer) Error(err error) string {
	return R.alert.Render("Error: " + err.Error())
}

// Notice renders an informational message.
func (R *Renderer) Notice(msg string) string {
	return R.muted.Render(msg)
}

// Stat renders catalog information and statistics.
func (R *Renderer) Stat(info coursecatalog.CatalogInfo, stat *coursecatalog.CatalogStat) string {
	algorithm := "custom"
	if info.InternalAlgorithm {
		algorithm = "polynomial"
	}

	rows := [][2]string{
		{"Buckets:", fmt.Sprintf("%d (requested %d)", info.NumberOfBuckets, info.RequestedBuckets)},
		{"Hash:", algorithm},
		{"Courses:", fmt.Sprintf("%d", stat.Records)},
		{"In slot heads:", fmt.Sprintf("%d", stat.HeadRecords)},
		{"In overflow:", fmt.Sprintf("%d", stat.OverflowRecords)},
		{"Used buckets:", fmt.Sprintf("%d", stat.UsedBuckets)},
		{"Longest chain:", fmt.Sprintf("%d", stat.LongestChain)},
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = R.label.Render(row[0]) + " " + row[1]
	}

	return strings.Join(lines, "\n")
}
