package cli

import (
	"fmt"
	"io"
	"strings"

	"argus/internal/config"
	"argus/internal/domain"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const bannerWidth = 40

// Renderer writes tasks and menus to the terminal
type Renderer struct {
	out     io.Writer
	display config.DisplayConfig
	banner  lipgloss.Style
	header  lipgloss.Style
	done    lipgloss.Style
	faint   lipgloss.Style
	warning lipgloss.Style
}

// NewRenderer creates a renderer for out. Styling is dropped when NoColor is
// set; lipgloss also drops colors by itself when out is not a terminal.
func NewRenderer(out io.Writer, display config.DisplayConfig) *Renderer {
	r := lipgloss.NewRenderer(out)
	base := r.NewStyle()

	rd := &Renderer{
		out:     out,
		display: display,
		banner: base.
			Border(lipgloss.DoubleBorder()).
			Width(bannerWidth).
			Align(lipgloss.Center),
		header: base.
			Border(lipgloss.NormalBorder(), true, false).
			Width(bannerWidth).
			Align(lipgloss.Center),
		done:    base,
		faint:   base,
		warning: base,
	}

	if !display.NoColor {
		rd.banner = rd.banner.Bold(true).BorderForeground(lipgloss.Color("12"))
		rd.header = rd.header.Foreground(lipgloss.Color("12"))
		rd.done = rd.done.Strikethrough(true).Foreground(lipgloss.Color("8"))
		rd.faint = rd.faint.Faint(true)
		rd.warning = rd.warning.Foreground(lipgloss.Color("9"))
	}
	return rd
}

// Banner prints the welcome banner
func (r *Renderer) Banner() {
	fmt.Fprintln(r.out, r.banner.Render("Welcome to the Argus task list"))
}

// Menu prints the interactive menu
func (r *Renderer) Menu() {
	fmt.Fprintln(r.out, r.header.Render("Please choose an option"))
	for _, option := range menuOptions {
		fmt.Fprintf(r.out, "%s. %s\n", option.key, option.label)
	}
}

// Tasks prints every visible task with its position in the full list
func (r *Renderer) Tasks(list domain.TaskList) {
	stats := list.Stats()
	if stats.Visible == 0 {
		fmt.Fprintln(r.out, r.faint.Render("No tasks yet."))
		return
	}

	for position, task := range list.Visible() {
		fmt.Fprintln(r.out, r.TaskLine(position, task))
	}
	fmt.Fprintln(r.out, r.faint.Render(fmt.Sprintf("%d of %d done", stats.Done, stats.Visible)))
}

// TaskLine formats one task as "N. [x] :: description"
func (r *Renderer) TaskLine(position int, task domain.Task) string {
	description := task.Description
	if task.Done {
		description = r.done.Render(description)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. [%c] :: %s", position, task.Mark(), description)
	if r.display.ShowAges {
		if age := Age(task); age != "" {
			b.WriteString(" ")
			b.WriteString(r.faint.Render("(" + age + ")"))
		}
	}
	return b.String()
}

// Warning prints a message the user should notice without ending the session
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.out, r.warning.Render(msg))
}

// Age returns how long ago the task was created, or "" when the creation
// date cannot be parsed
func Age(task domain.Task) string {
	created, err := task.Created()
	if err != nil {
		return ""
	}
	return humanize.RelTime(created, timeNow(), "ago", "from now")
}
