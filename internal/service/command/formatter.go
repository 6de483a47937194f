package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/roster/internal/core"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Info(title string) string {
	return fmt.Sprintf("**%s**\n", title)
}

func (f *ResponseFormatter) Success(message string) string {
	return fmt.Sprintf("**%s**\n", message)
}

func (f *ResponseFormatter) Error(err error) string {
	return fmt.Sprintf("**Error**: %s\n", escape(err.Error()))
}

func (f *ResponseFormatter) Usage(commands []string) string {
	var sb strings.Builder
	sb.WriteString("**Usage**:\n")
	for _, cmd := range commands {
		sb.WriteString(fmt.Sprintf("- `%s`\n", cmd))
	}
	return sb.String()
}

func (f *ResponseFormatter) List(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", escape(item)))
	}
	return sb.String()
}

func (f *ResponseFormatter) Section(title, content string) string {
	return fmt.Sprintf("**%s**\n\n%s", escape(title), content)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

func (f *ResponseFormatter) Added(employee, department string) string {
	return f.Success(fmt.Sprintf("Employee %s added to department %s", escape(employee), escape(department)))
}

func (f *ResponseFormatter) Department(name string, employees []string) string {
	return f.Section(name, f.List(employees))
}

func (f *ResponseFormatter) NotFound(department string) string {
	return fmt.Sprintf("No employees registered in department %s\n", escape(department))
}

func (f *ResponseFormatter) Registry(departments []core.Department) string {
	if len(departments) == 0 {
		return f.Combine(
			f.Info("All employees"),
			"The registry is empty.\n",
		)
	}

	sections := make([]string, 0, len(departments)+1)
	sections = append(sections, f.Info("All employees"))
	for _, d := range departments {
		sections = append(sections, f.Department(d.Name, d.Employees))
	}
	return f.Combine(sections...)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
	"<", `\<`,
	"&", `\&`,
)

// escape keeps user text from being read as markdown or inline HTML.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}
