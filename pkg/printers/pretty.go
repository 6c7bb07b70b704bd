package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/omni/pkg/note"
	"tableflip.dev/omni/pkg/profile"
	"tableflip.dev/omni/pkg/todo"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(id)
	_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
}

// Todos prints a task list, one line per task, with deadline and tags
// trailing in faint text.
func (pp *PrettyPrint) Todos(todos ...*todo.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	f := color.New(color.Faint)

	for _, item := range todos {
		if pp.ShowID {
			pp.id(item.ID)
		}
		mark, printer := "·", t
		if item.Completed {
			mark, printer = "x", done
		}
		_, _ = printer.Printf("%s %s", mark, item.Task)
		if item.Deadline != "" {
			_, _ = f.Printf("  due %s", item.Deadline)
		}
		if len(item.Tags) > 0 {
			_, _ = f.Printf("  #%s", strings.Join(item.Tags, " #"))
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Notes prints the note list, newest first, title bold with the content
// below it.
func (pp *PrettyPrint) Notes(notes ...*note.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	t := color.New()
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	for _, n := range notes {
		if pp.ShowID {
			pp.id(n.ID)
		}
		_, _ = b.Print(n.Title)
		_, _ = f.Printf("  %s\n", n.CreatedAt.Local().Format("2006-01-02 15:04"))
		for _, line := range strings.Split(n.Content, "\n") {
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			_, _ = t.Printf("  %s\n", line)
		}
	}
	_, _ = t.Println("")
}

// Profiles prints the account table, marking the active user.
func (pp *PrettyPrint) Profiles(active string, profiles ...profile.Profile) {
	if len(profiles) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Icon"), bold.Sprint("Username"))
	for _, p := range profiles {
		mark := ""
		if p.Username == active {
			mark = "*"
		}
		tbl.AddRow(mark, p.Icon, p.Username)
	}
	fmt.Println(tbl)
	fmt.Println("")
}

// Summary prints the dashboard counters.
func (pp *PrettyPrint) Summary(pending, completed, notes int) {
	f := color.New(color.Faint)
	_, _ = f.Printf("%d pending, %d completed, %d notes\n\n", pending, completed, notes)
}
