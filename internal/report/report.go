package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"csv-adui-converter/internal/common"
	"csv-adui-converter/internal/diagnostic"
	"csv-adui-converter/internal/form"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD93D"))
	detailStyle  = lipgloss.NewStyle().PaddingLeft(2)
)

// Conversion describes a finished conversion for Summary.
type Conversion struct {
	Source   string
	Output   string
	Document *form.Document
}

// Summary renders the project, field count, window id, one line per field
// and a detail block for the first task-list field.
func Summary(c Conversion) string {
	var b strings.Builder

	fmt.Fprintln(&b, successStyle.Render(fmt.Sprintf("Converted %s to %s", c.Source, c.Output)))

	if c.Document == nil {
		return b.String()
	}

	fields := c.Document.Fields()

	fmt.Fprintln(&b, labelStyle.Render("Project:  ")+c.Document.Name)
	fmt.Fprintln(&b, labelStyle.Render("Fields:   ")+fmt.Sprint(len(fields)))
	fmt.Fprintln(&b, labelStyle.Render("Window ID:")+" "+c.Document.WindowID)

	if common.IsEmpty(fields) {
		return b.String()
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, headingStyle.Render("Field summary"))

	var lines []string

	for _, f := range fields {
		lines = append(lines, "• "+f.Name+": "+f.Component.String()+fieldExtra(f))
	}

	fmt.Fprintln(&b, detailStyle.Render(strings.Join(lines, "\n")))

	for _, f := range fields {
		if f.Component != form.KindTaskList || f.Data == nil {
			continue
		}

		fmt.Fprintln(&b)
		fmt.Fprintln(&b, headingStyle.Render(fmt.Sprintf("Task list %q", f.Name)))
		fmt.Fprintln(&b, detailStyle.Render(taskDetails(f.Data)))

		break
	}

	return b.String()
}

func fieldExtra(f form.Field) string {
	switch {
	case f.Reference != nil:
		return fmt.Sprintf(" (%d options)", len(f.Reference.Values))
	case f.Component == form.KindTaskList && f.Data != nil:
		return fmt.Sprintf(" (%d tasks, %d dependencies)", len(f.Data.Tasks), len(f.Data.Dependencies))
	default:
		return ""
	}
}

func taskDetails(data *form.TaskData) string {
	lines := make([]string, 0, 3)

	if first, ok := common.First(data.Tasks); ok {
		lines = append(lines,
			"• Status: "+first.Status,
			"• Priority: "+first.Priority)
	}

	lines = append(lines, fmt.Sprintf("• Dependencies: %d", len(data.Dependencies)))

	return strings.Join(lines, "\n")
}

// Diagnostics renders findings, errors first, one per line.
func Diagnostics(diags diagnostic.Diagnostics) string {
	var b strings.Builder

	for _, d := range diags.Errors {
		fmt.Fprintln(&b, errorStyle.Render("error")+" "+d.String())
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(&b, warnStyle.Render("warning")+" "+d.String())
	}

	for _, d := range diags.Infos {
		fmt.Fprintln(&b, labelStyle.Render("info")+" "+d.String())
	}

	return b.String()
}

// Verified renders the outcome line of a check run.
func Verified(path string, diags diagnostic.Diagnostics) string {
	if diags.HasErrors() {
		return errorStyle.Render(fmt.Sprintf("%s: %d errors, %d warnings", path, len(diags.Errors), len(diags.Warnings)))
	}

	return successStyle.Render(fmt.Sprintf("%s: ok (%d warnings)", path, len(diags.Warnings)))
}
