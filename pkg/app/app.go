// Package app wires the ledger services and subscribes the event handlers.
package app

import (
	"io"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/handler/audit"
	"github.com/amirasaad/ledger/pkg/handler/reconcile"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/transaction"
	"github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/amirasaad/ledger/pkg/service/user"
)

// Deps contains the infrastructure the services run on.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Logger   *slog.Logger
	// Closers are released by App.Close, in order.
	Closers []io.Closer
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AuthService        *auth.Service
	UserService        *user.Service
	AccountService     *account.Service
	TransactionService *transaction.Service
	TransferService    *transfer.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	app.AuthService = auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	app.UserService = user.New(deps.Uow, deps.Logger)
	app.AccountService = account.New(deps.Uow, deps.Logger)
	app.TransactionService = transaction.New(deps.Uow, deps.EventBus, deps.Logger)
	app.TransferService = transfer.New(deps.Uow, deps.EventBus, deps.Logger)
	return app
}

// setupEventBus registers the handlers for every ledger event.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	logger := a.Deps.Logger

	for eventType := range events.EventTypes {
		bus.Register(eventType, audit.HandleEvent(logger))
	}
	check := reconcile.HandleTransferWritten(a.Deps.Uow, logger)
	bus.Register(events.EventTypeTransferCreated, check)
	bus.Register(events.EventTypeTransferUpdated, check)
}

// Close releases the closers in Deps.
func (a *App) Close() error {
	var first error
	for _, c := range a.Deps.Closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
