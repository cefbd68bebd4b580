package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/notemart/notemart/internal/config"
	"github.com/notemart/notemart/internal/server/http/handlers"
	"github.com/notemart/notemart/internal/server/http/router"
	"github.com/notemart/notemart/internal/storage/postgres"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStoreFacade,
		newHTTPServer,
		func(f *StoreFacade) handlers.StoreFacade { return f },
		func(s *postgres.Storage) router.HealthChecker { return s },
	),
	fx.Invoke(seedAdmin, registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type seedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Facade    *StoreFacade
	Config    *config.Config
	Logger    *slog.Logger
}

// seedAdmin ensures the configured admin account exists once the app starts.
// A failure is logged, not fatal: the database may still be coming up.
func seedAdmin(p seedParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Facade.SeedAdmin(ctx, p.Config.AdminEmail, p.Config.AdminPassword); err != nil {
				p.Logger.Warn("admin seeding failed", slog.String("error", err.Error()))
			}
			return nil
		},
	})
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting notemart", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("notemart stopped")
			return nil
		},
	})
}
