package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dmitrijs2005/medikom/internal/filex"
	"github.com/dmitrijs2005/medikom/internal/models"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minColumn    = 24
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	priorityStyle = lipgloss.NewStyle().Background(lipgloss.Color("#CD5C5C"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("#ADD8E6")).Foreground(lipgloss.Color("#000000"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// terminalWidth is a seam for term.GetSize on stdout.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

var weekdays = [...]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"}

// formatDate renders t as "Mo 17.10.2026" in local time.
func formatDate(t time.Time) string {
	t = t.Local()
	return fmt.Sprintf("%s %02d.%02d.%04d", weekdays[t.Weekday()], t.Day(), int(t.Month()), t.Year())
}

// formatStamp is formatDate with the time of day.
func formatStamp(t time.Time) string {
	return formatDate(t) + " " + t.Local().Format("15:04")
}

func formatRow(o models.Overview) string {
	return fmt.Sprintf("%3d  %s | %s", o.ID, formatDate(o.LastModified), o.Title)
}

// renderColumn lays out one kind of entries. Priority highlighting wins over
// the selection.
func renderColumn(header string, list []models.Overview, selected int64, hasSelection bool, width int) string {
	base := lipgloss.NewStyle().Width(width).MaxWidth(width)

	rows := []string{base.Inherit(headerStyle).Render(header)}
	if len(list) == 0 {
		rows = append(rows, base.Inherit(hintStyle).Render("  (empty)"))
	}
	for _, o := range list {
		style := base
		switch {
		case o.IsPriority():
			style = style.Inherit(priorityStyle)
		case hasSelection && o.ID == selected:
			style = style.Inherit(selectedStyle)
		}
		rows = append(rows, style.Render(ansi.Truncate(formatRow(o), width, "…")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderOverview puts tasks and information side by side, splitting width
// between the two columns.
func renderOverview(tasks, infos []models.Overview, selected int64, hasSelection bool, width int) string {
	col := (width - 2) / 2
	if col < minColumn {
		col = minColumn
	}
	left := renderColumn("Tasks", tasks, selected, hasSelection, col)
	right := renderColumn("Information", infos, selected, hasSelection, col)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderDetails shows a single entry. Attachments are numbered from 1 and
// listed by file name.
func renderDetails(d *models.Details) string {
	var b strings.Builder

	title := fmt.Sprintf("#%d %s: %s", d.ID, d.Kind, d.Title)
	if d.IsPriority() {
		title = priorityStyle.Render(title)
	}
	fmt.Fprintln(&b, headerStyle.Render(title))
	fmt.Fprintf(&b, "Last modified: %s\n", formatStamp(d.LastModified))

	if len(d.Attachments) == 0 {
		fmt.Fprintln(&b, "Attachments: none")
	} else {
		fmt.Fprintln(&b, "Attachments:")
		for i, p := range d.Attachments {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, filex.DisplayName(p))
		}
	}

	fmt.Fprintln(&b, "Notes:")
	if d.Notes == "" {
		fmt.Fprintln(&b, hintStyle.Render("  (none)"))
	} else {
		for _, line := range strings.Split(d.Notes, "\n") {
			fmt.Fprintln(&b, "  "+line)
		}
	}
	return b.String()
}
