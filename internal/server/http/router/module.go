package router

import (
	"go.uber.org/fx"

	"github.com/grubtruck/grubtruck/internal/app"
	"github.com/grubtruck/grubtruck/internal/server/http/handlers"
	"github.com/grubtruck/grubtruck/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(f *app.PlatformFacade) handlers.PlatformFacade { return f },
		func(f *app.PlatformFacade) middleware.PrincipalResolver { return f },
		Setup,
	),
)
