// Package initializer builds the application dependency graph from config.
package initializer

import (
	"log/slog"

	infraeventbus "github.com/shivabank/console/infra/eventbus"
	"github.com/shivabank/console/pkg/config"
	"github.com/shivabank/console/pkg/controller"
	"github.com/shivabank/console/pkg/dashboard"
	"github.com/shivabank/console/pkg/eventbus"
	"github.com/shivabank/console/pkg/ledger"
	"github.com/shivabank/console/pkg/notify"
	"github.com/shivabank/console/pkg/session"
	"github.com/shivabank/console/pkg/view"
)

// Deps bundles everything the console front end needs.
type Deps struct {
	Logger      *slog.Logger
	Bus         eventbus.Bus
	Session     *session.Session
	Notifier    *notify.Notifier
	Ledger      *ledger.Client
	Controllers *controller.Controllers
	Navigator   *view.Navigator
	Aggregator  *dashboard.Aggregator
}

// InitializeDependencies wires the full graph.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	bus := infraeventbus.NewWithMemory(logger)
	sess := session.New(bus)
	notifier := notify.New(cfg.UI.ToastDuration, bus)
	client := ledger.New(cfg.Ledger, logger)

	return &Deps{
		Logger:      logger,
		Bus:         bus,
		Session:     sess,
		Notifier:    notifier,
		Ledger:      client,
		Controllers: controller.New(client, sess, notifier, logger),
		Navigator:   view.NewNavigator(bus),
		Aggregator:  dashboard.New(),
	}, nil
}
