package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/domain/model"
	"github.com/grubtruck/grubtruck/internal/server/http/handlers"
	"github.com/grubtruck/grubtruck/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlatformFacade, resolver middleware.PrincipalResolver, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	truckHandler := handlers.NewTruckHandler(facade)
	menuHandler := handlers.NewMenuHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api/v1")
	api.POST("/user", authHandler.Register)
	api.POST("/user/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(resolver))
	authed.GET("/user/me", authHandler.Me)

	customer := authed.Group("")
	customer.Use(middleware.RoleRequired(model.RoleCustomer))
	customer.GET("/trucks/view", truckHandler.Browse)
	customer.GET("/menuItem/truck/:truckId", menuHandler.TruckMenu)
	customer.GET("/menuItem/truck/:truckId/category/:category", menuHandler.TruckMenuByCategory)
	customer.POST("/cart/new", cartHandler.Add)
	customer.GET("/cart/view", cartHandler.View)
	customer.PUT("/cart/edit/:cartId", cartHandler.Edit)
	customer.DELETE("/cart/delete/:cartId", cartHandler.Delete)
	customer.POST("/order/new", orderHandler.Place)
	customer.GET("/order/myOrders", orderHandler.MyOrders)
	customer.GET("/order/details/:orderId", orderHandler.Details)

	owner := authed.Group("")
	owner.Use(middleware.RoleRequired(model.RoleTruckOwner))
	owner.GET("/trucks/myTruck", truckHandler.MyTruck)
	owner.PUT("/trucks/updateOrderStatus", truckHandler.UpdateOrderStatus)
	owner.POST("/menuItem/new", menuHandler.Create)
	owner.GET("/menuItem/view", menuHandler.OwnMenu)
	owner.GET("/menuItem/view/:itemId", menuHandler.Get)
	owner.PUT("/menuItem/edit/:itemId", menuHandler.Update)
	owner.DELETE("/menuItem/delete/:itemId", menuHandler.Delete)
	owner.GET("/order/truckOrders", orderHandler.TruckOrders)
	owner.GET("/order/truckOwner/:orderId", orderHandler.TruckOrderDetails)
	owner.PUT("/order/updateStatus/:orderId", orderHandler.UpdateStatus)

	return engine
}
