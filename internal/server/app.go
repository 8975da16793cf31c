// Package server initializes and runs the HandsOn API server: it loads
// configuration, connects the storage backend, wires the services, and
// starts the HTTP endpoint with signal-driven shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/logging"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/config"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/repositories/repomanager"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/rest"
	"github.com/shafriki/hands-on-volunteering-platform-server-side/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	rest   *rest.RestServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger, err := logging.NewProductionZapLogger()
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	repos, err := repomanager.NewMongoRepositoryManager(ctx, cfg.DatabaseURI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(repos, cfg)
	es := services.NewEventService(repos)
	hs := services.NewHelpRequestService(repos)
	ts := services.NewTeamService(repos)

	rs := rest.NewRestServer(cfg.EndpointAddr, logger, us, es, hs, ts, cfg.SecretKey)

	return &App{config: cfg, logger: logger, repos: repos, rest: rs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.rest.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
}
