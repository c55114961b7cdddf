package todos

import (
	"fmt"
	"strings"

	"github.com/mytheresa/go-todo/models"
)

// Render formats a todo as a single checklist line such as
// "- [x] 1: buy milk (category: groceries)".
func Render(todo models.Todo) string {
	mark := " "
	if todo.Done {
		mark = "x"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "- [%s] %d: %s", mark, todo.ID, todo.Description)
	if name, ok := todo.CategoryName(); ok {
		fmt.Fprintf(&b, " (category: %s)", name)
	}
	return b.String()
}
