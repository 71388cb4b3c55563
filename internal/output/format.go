// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"journal/internal/config"
	"journal/internal/service"
)

const (
	// TitleWidth is the display width titles are padded to.
	TitleWidth = 25

	// DateLayout is the layout used for task dates.
	DateLayout = "2006-01-02 15:04"

	// EmptyList is printed instead of an empty listing.
	EmptyList = "No tasks in the list."

	// DoneColor is the ANSI color of completed rows.
	DoneColor = "2"
)

// Style carries the rendering settings for task rows.
type Style struct {
	Done     lipgloss.Style
	Location *time.Location
}

// NewStyle builds a Style for output written to w. ColorAuto defers to
// terminal detection on w.
func NewStyle(w io.Writer, mode config.ColorMode, loc *time.Location) Style {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	if loc == nil {
		loc = time.Local
	}
	return Style{
		Done:     r.NewStyle().Foreground(lipgloss.Color(DoneColor)),
		Location: loc,
	}
}

// FormatTask formats one task line.
// Format: "[N] {TITLE:<25} | YYYY-MM-DD HH:MM\n", completed tasks use
// "[N|Done]" and the done style.
func FormatTask(w io.Writer, num int, task service.Task, st Style) {
	label := fmt.Sprintf("[%d]", num)
	if task.Done {
		label = fmt.Sprintf("[%d|Done]", num)
	}

	title := runewidth.FillRight(normalizeTitle(task.Title), TitleWidth)
	date := task.CreationDate.In(st.Location).Format(DateLayout)
	line := fmt.Sprintf("%s %s | %s", label, title, date)

	if task.Done {
		line = st.Done.Render(line)
	}
	fmt.Fprintln(w, line)
}

// FormatList formats every task, or the empty-list notice when there are
// none and quiet is not set.
func FormatList(w io.Writer, tasks []service.Task, st Style, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, EmptyList)
		}
		return
	}
	for i, task := range tasks {
		FormatTask(w, i+1, task, st)
	}
}

// FormatNotice formats an informational notice.
func FormatNotice(w io.Writer, notice service.Notice) {
	fmt.Fprintf(w, "note: %s\n", notice)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
