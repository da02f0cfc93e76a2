// Package router contains the route table of the HTTP API.
package router

import (
	"develfood/internal/delivery/api/middleware"
	"develfood/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	ProductHandler    *handler.ProductHandler
	PromotionHandler  *handler.PromotionHandler
	OrderHandler      *handler.OrderHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	productHandler    *handler.ProductHandler
	promotionHandler  *handler.PromotionHandler
	orderHandler      *handler.OrderHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		productHandler:    params.ProductHandler,
		promotionHandler:  params.PromotionHandler,
		orderHandler:      params.OrderHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Login sits outside the gate.
	e.POST("/auth/login", r.userHandler.Login)

	// Every resource route passes the gate, which decides per method and path.
	resources := e.Group("", r.authMiddleware.Gate)

	resources.GET("/users", r.userHandler.ListUsers)

	resources.GET("/restaurants", r.restaurantHandler.ListRestaurants)
	resources.POST("/restaurants", r.restaurantHandler.CreateRestaurant)
	resources.PUT("/restaurants/:cnpj", r.restaurantHandler.UpdateRestaurant)

	resources.GET("/products", r.productHandler.ListProducts)
	resources.GET("/products/:id", r.productHandler.GetProduct)
	resources.POST("/products", r.productHandler.CreateProduct)
	resources.PUT("/products/:id", r.productHandler.UpdateProduct)
	resources.DELETE("/products/:id", r.productHandler.DeleteProduct)

	resources.GET("/promotions", r.promotionHandler.ListPromotions)
	resources.GET("/promotions/:id", r.promotionHandler.GetPromotion)
	resources.POST("/promotions", r.promotionHandler.CreatePromotion)
	resources.PUT("/promotions/:id", r.promotionHandler.UpdatePromotion)
	resources.DELETE("/promotions/:id", r.promotionHandler.DeletePromotion)

	resources.GET("/orders", r.orderHandler.ListOrders)
	resources.PATCH("/orders/:id", r.orderHandler.UpdateOrderStatus)
}
