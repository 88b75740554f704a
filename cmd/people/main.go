// Package main - точка входа для реестра людей: добавить человека,
// посмотреть список, выйти.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/app"
	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/gradebook/internal/interface/console"
	"github.com/alem-hub/gradebook/internal/interface/console/handler"
	"github.com/alem-hub/gradebook/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := logger.DefaultOptions()
	opts.Output = errOut
	opts.Service = cfg.App.Name + "-people"
	rt, err := app.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to start runtime: %w", err)
	}
	defer rt.Close()
	slog.SetDefault(rt.Logger)

	personRepo := memory.NewPersonRepository()
	menu := handler.PersonMenu(
		command.NewCreatePersonHandler(personRepo, rt.Publisher(), rt.Logger),
		query.NewListPersonsHandler(personRepo),
	)

	router := console.NewRouter(menu, console.RouterConfig{
		Logger:   rt.Logger,
		Observer: rt.Observer(),
	})
	return router.Run(ctx, console.NewSession(in, out))
}
