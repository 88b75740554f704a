package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sort"
	"time"

	"github.com/alem-hub/gradebook/internal/interface/console/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER INTERFACES
// ══════════════════════════════════════════════════════════════════════════════

// Handler runs one menu option. User-facing outcomes (not found, invalid
// input) are printed by the handler itself; a returned error is unexpected,
// except io.EOF which ends the session.
type Handler interface {
	Handle(ctx context.Context, s *Session) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, s *Session) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, s *Session) error {
	return f(ctx, s)
}

// Observer receives routing measurements. metrics.Recorder implements it.
type Observer interface {
	ObserveCommand(menu string, option int, duration time.Duration, err error)
	ObserveInvalidInput(menu string)
}

// ══════════════════════════════════════════════════════════════════════════════
// MENU
// ══════════════════════════════════════════════════════════════════════════════

// Item is one numbered menu option. An item without a handler ends the loop.
type Item struct {
	Option  int
	Label   string
	Handler Handler
}

// Menu describes what the router renders each iteration.
type Menu struct {
	// Name labels logs and metrics, e.g. "students".
	Name string

	// Header is printed above the options when set.
	Header string

	Items []Item
}

// ══════════════════════════════════════════════════════════════════════════════
// ROUTER
// ══════════════════════════════════════════════════════════════════════════════

// RouterConfig contains configuration for the router.
type RouterConfig struct {
	// Logger for structured logging.
	Logger *slog.Logger

	// Observer is optional.
	Observer Observer
}

// Router runs the menu loop.
type Router struct {
	menu     Menu
	rendered string
	items    map[int]Item
	logger   *slog.Logger
	observer Observer
}

// NewRouter creates a router for menu. Items are rendered in option order.
func NewRouter(menu Menu, config RouterConfig) *Router {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	items := make(map[int]Item, len(menu.Items))
	entries := make([]presenter.MenuEntry, 0, len(menu.Items))
	for _, it := range menu.Items {
		items[it.Option] = it
		entries = append(entries, presenter.MenuEntry{Option: it.Option, Label: it.Label})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Option < entries[j].Option })

	return &Router{
		menu:     menu,
		rendered: presenter.RenderMenu(menu.Header, entries),
		items:    items,
		logger:   config.Logger.With(logger.Component("console"), slog.String("menu", menu.Name)),
		observer: config.Observer,
	}
}

// Run renders the menu and dispatches options until the exit option is
// chosen, the input ends or ctx is canceled. Exit and end of input return nil.
func (r *Router) Run(ctx context.Context, s *Session) error {
	log := r.logger.With(logger.SessionID(s.ID))
	ctx = logger.WithContext(ctx, log)
	log.Info("session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.Print(r.rendered)

		option, err := s.PromptInt(presenter.OptionPrompt)
		switch {
		case errors.Is(err, io.EOF):
			log.Info("input closed, leaving menu")
			return nil
		case errors.Is(err, ErrNotANumber):
			s.Println(presenter.InvalidOption)
			if r.observer != nil {
				r.observer.ObserveInvalidInput(r.menu.Name)
			}
			continue
		case err != nil:
			return err
		}

		item, ok := r.items[option]
		if !ok {
			log.Debug("option out of range ignored", "option", option)
			continue
		}
		if item.Handler == nil {
			log.Info("exit option chosen")
			return nil
		}

		start := time.Now()
		err = r.dispatch(ctx, item, s)
		if r.observer != nil {
			r.observer.ObserveCommand(r.menu.Name, option, time.Since(start), err)
		}

		if errors.Is(err, io.EOF) {
			log.Info("input closed inside a dialog, leaving menu")
			return nil
		}
		if err != nil {
			log.Error("menu option failed",
				"option", option,
				logger.Latency(time.Since(start)),
				logger.Err(err),
			)
		}
	}
}

// dispatch runs the handler and turns a panic into an error so one broken
// option does not end the session.
func (r *Router) dispatch(ctx context.Context, item Item, s *Session) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("panic in menu handler",
				"option", item.Option,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()),
			)
			err = fmt.Errorf("option %d: panic: %v", item.Option, rec)
		}
	}()

	return item.Handler.Handle(ctx, s)
}
