package todos

import (
	"context"
	"fmt"
	"io"

	"github.com/mytheresa/go-todo/models"
	"go.uber.org/zap"
)

type TodoProvider interface {
	AddTodo(ctx context.Context, description, category string) (*models.Todo, error)
	CompleteTodo(ctx context.Context, id int64) (*models.Todo, error)
	ListTodos(ctx context.Context, filters models.TodoFilters) ([]models.Todo, error)
	DeleteDoneTodos(ctx context.Context) (int64, error)
}

type TodoHandler struct {
	repo   TodoProvider
	logger *zap.Logger
}

func NewTodoHandler(r TodoProvider, logger *zap.Logger) *TodoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoHandler{
		repo:   r,
		logger: logger,
	}
}

func (h *TodoHandler) HandleAdd(ctx context.Context, out io.Writer, description, category string) error {
	fmt.Fprintf(out, "Adding new todo with description '%s'\n", description)
	h.logger.Debug("adding todo",
		zap.String("description", description),
		zap.String("category", category))

	todo, err := h.repo.AddTodo(ctx, description, category)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Added new todo: %s\n", Render(*todo))
	return nil
}

func (h *TodoHandler) HandleDone(ctx context.Context, out io.Writer, id int64) error {
	fmt.Fprintf(out, "Marking todo %d as done\n", id)
	h.logger.Debug("completing todo", zap.Int64("id", id))

	todo, err := h.repo.CompleteTodo(ctx, id)
	if err != nil {
		return err
	}
	if todo == nil {
		fmt.Fprintf(out, "Invalid id %d\n", id)
		return nil
	}

	fmt.Fprintf(out, "Todo marked as done: %s\n", Render(*todo))
	return nil
}

func (h *TodoHandler) HandleDeleteDone(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, "Deleting all done todos")

	count, err := h.repo.DeleteDoneTodos(ctx)
	if err != nil {
		return err
	}
	h.logger.Debug("deleted done todos", zap.Int64("count", count))

	fmt.Fprintf(out, "Deleted %d todos that were marked as done\n", count)
	return nil
}

// HandleList prints every todo matching filters, one per line. The header
// names the category only when the caller asked for one explicitly.
func (h *TodoHandler) HandleList(ctx context.Context, out io.Writer, filters models.TodoFilters, scoped bool) error {
	if scoped {
		fmt.Fprintf(out, "Printing list of all todos in category '%s'\n", filters.Category)
	} else {
		fmt.Fprintln(out, "Printing list of all todos")
	}

	todos, err := h.repo.ListTodos(ctx, filters)
	if err != nil {
		return err
	}
	h.logger.Debug("listed todos",
		zap.String("category", filters.Category),
		zap.Int("count", len(todos)))

	for _, todo := range todos {
		fmt.Fprintln(out, Render(todo))
	}
	return nil
}
