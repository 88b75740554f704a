// Package main - точка входа для журнала студентов.
//
// Программа показывает меню из шести пунктов и работает, пока оператор не
// выберет "Exit" или не закроет ввод. Журнал живёт только в памяти процесса.
//
// Слои:
// - Domain: студент, оценки, средний балл
// - Application: команды и запросы журнала
// - Infrastructure: хранилище в памяти, шина событий, метрики
// - Interface: консольное меню
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
	// ─────────────────────────────────────────────────────────────────────────
	// 1. ЗАГРУЗКА КОНФИГУРАЦИИ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. ЛОГИРОВАНИЕ, ШИНА СОБЫТИЙ, МЕТРИКИ
	// ─────────────────────────────────────────────────────────────────────────
	opts := logger.DefaultOptions()
	opts.Output = errOut
	rt, err := app.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to start runtime: %w", err)
	}
	defer rt.Close()

	log := rt.Logger
	slog.SetDefault(log)
	log.Info("starting gradebook", "env", cfg.App.Environment, "version", cfg.App.Version)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ХРАНИЛИЩЕ И APPLICATION LAYER
	// ─────────────────────────────────────────────────────────────────────────
	studentRepo := memory.NewStudentRepository()

	deps := handler.StudentDeps{
		CreateStudent:  command.NewCreateStudentHandler(studentRepo, rt.Publisher(), log),
		AddGrade:       command.NewAddGradeHandler(studentRepo, rt.Publisher(), log),
		GetStudent:     query.NewGetStudentHandler(studentRepo),
		ListStudents:   query.NewListStudentsHandler(studentRepo),
		CheckApproval:  query.NewCheckApprovalHandler(studentRepo),
		CheckStudentID: query.NewCheckStudentIDHandler(studentRepo),
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. НАЧАЛЬНЫЙ ЖУРНАЛ
	// ─────────────────────────────────────────────────────────────────────────
	if err := rt.SeedStudents(ctx, deps.CreateStudent, studentRepo); err != nil {
		return fmt.Errorf("failed to seed roster: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. МЕНЮ
	// ─────────────────────────────────────────────────────────────────────────
	router := console.NewRouter(handler.StudentMenu(deps), console.RouterConfig{
		Logger:   log,
		Observer: rt.Observer(),
	})

	return router.Run(ctx, console.NewSession(in, out))
}
