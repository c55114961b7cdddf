package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mytheresa/go-todo/app/todos"
	"github.com/mytheresa/go-todo/config"
	"github.com/mytheresa/go-todo/database"
	"github.com/mytheresa/go-todo/logging"
	"github.com/mytheresa/go-todo/models"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cli := todos.NewCLI(connect)
	defer func() {
		if err := cli.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing database: %v\n", err)
		}
	}()

	if args == nil {
		args = []string{}
	}
	cmd := cli.Command()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return todos.ExitCode(err)
}

// connect loads configuration, builds the logger and opens the store.
func connect(ctx context.Context, verbose bool) (*todos.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}

	return &todos.Session{
		Repo:   models.NewTodosRepository(db),
		Logger: logger,
		Close: func() error {
			defer func() { _ = logger.Sync() }()
			return database.Close(db)
		},
	}, nil
}
