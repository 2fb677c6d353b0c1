package di

import (
	"github.com/grubtruck/grubtruck/internal/app"
	"github.com/grubtruck/grubtruck/internal/config"
	"github.com/grubtruck/grubtruck/internal/logger"
	"github.com/grubtruck/grubtruck/internal/pkg/auth"
	"github.com/grubtruck/grubtruck/internal/server/http/router"
	"github.com/grubtruck/grubtruck/internal/storage/postgres"
	"github.com/grubtruck/grubtruck/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
