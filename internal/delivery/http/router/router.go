// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitznet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	EncryptionHandler *handler.EncryptionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	encryptionHandler *handler.EncryptionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		encryptionHandler: params.EncryptionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	userGroup := e.Group("/user")
	{
		userGroup.POST("/create", r.accountHandler.Create)
		userGroup.POST("/read", r.accountHandler.Read)
		userGroup.GET("/readAll", r.accountHandler.ReadAll)
		userGroup.DELETE("/delete", r.accountHandler.Delete)
		userGroup.PATCH("/update", r.accountHandler.Update)
		userGroup.POST("/login", r.accountHandler.Login)
	}

	// Symmetric cipher utility routes
	e.POST("/encrypt", r.encryptionHandler.Encrypt)
	e.POST("/decrypt", r.encryptionHandler.Decrypt)
}
