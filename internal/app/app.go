package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/grubtruck/grubtruck/internal/config"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewPlatformFacade,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
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
			p.Logger.Info("starting grubtruck", slog.String("addr", p.Server.Addr))
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
			p.Logger.Info("grubtruck stopped")
			return nil
		},
	})
}
