// Package calendar renders a month grid for the terminal.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/omni/pkg/calendar"
)

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	AdjacentStyle lipgloss.Style
	TaskStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions styles task days bright, adjacent-month days faint and
// today in reverse video.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Italic(true),
		EmptyStyle:    lipgloss.NewStyle().Faint(true),
		AdjacentStyle: lipgloss.NewStyle().Faint(true),
		TaskStyle:     lipgloss.NewStyle().Bold(true),
		TodayStyle:    lipgloss.NewStyle().Reverse(true),
		SelectedStyle: lipgloss.NewStyle().Underline(true),
		ShowHeader:    true,
	}
}

// Render produces a multi-line month view from a padded cell grid. The
// grid always holds whole weeks, so cells are consumed seven at a time.
// selected is the open day key, empty for none.
func Render(month time.Time, cells []calendar.Cell, selected string, opts Options) string {
	if len(cells) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		title := month.Format("January 2006")
		lines = append(lines,
			opts.HeaderStyle.Render(center(title, 20)),
			opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	for week := 0; week < len(cells); week += 7 {
		var row []string
		for _, cell := range cells[week : week+7] {
			row = append(row, renderCell(cell, selected, opts))
		}
		lines = append(lines, strings.Join(row, " "))
	}

	return strings.Join(lines, "\n")
}

func renderCell(cell calendar.Cell, selected string, opts Options) string {
	style := opts.EmptyStyle
	switch {
	case cell.Adjacent:
		style = opts.AdjacentStyle
	case len(cell.Tasks) > 0:
		style = opts.TaskStyle
	}
	if cell.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if selected != "" && cell.Date == selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", cell.Day))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-len(s))
}
