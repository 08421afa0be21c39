package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/todoapp-go/internal/todo"
)

// WriteText writes tasks as numbered lines with a completion mark.
// Format: "{N:>4}  [x] {TITLE}\n", followed by an indented description line
// when the description is not empty.
func WriteText(w io.Writer, title string, tasks []todo.Task) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	for i, task := range tasks {
		mark := " "
		if task.IsComplete {
			mark = "x"
		}
		fmt.Fprintf(w, "%4d  [%s] %s\n", i+1, mark, singleLine(task.Title))
		if desc := singleLine(task.Description); strings.TrimSpace(desc) != "" {
			fmt.Fprintf(w, "          %s\n", desc)
		}
	}
}

// singleLine replaces newlines with spaces.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
