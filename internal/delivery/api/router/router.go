// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agrox/config"
	"agrox/internal/delivery/api/middleware"
	"agrox/internal/delivery/api/router/handler"
	"agrox/internal/domain/entity"
	"agrox/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ListingHandler      *handler.ListingHandler
	WizardHandler       *handler.WizardHandler
	RequestHandler      *handler.RequestHandler
	OfferingHandler     *handler.OfferingHandler
	InquiryHandler      *handler.InquiryHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
	Metrics             *metrics.Metrics
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	listingHandler      *handler.ListingHandler
	wizardHandler       *handler.WizardHandler
	requestHandler      *handler.RequestHandler
	offeringHandler     *handler.OfferingHandler
	inquiryHandler      *handler.InquiryHandler
	messageHandler      *handler.MessageHandler
	notificationHandler *handler.NotificationHandler
	sessionMiddleware   *middleware.SessionMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		listingHandler:      params.ListingHandler,
		wizardHandler:       params.WizardHandler,
		requestHandler:      params.RequestHandler,
		offeringHandler:     params.OfferingHandler,
		inquiryHandler:      params.InquiryHandler,
		messageHandler:      params.MessageHandler,
		notificationHandler: params.NotificationHandler,
		sessionMiddleware:   params.SessionMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/session", r.authHandler.Session)
		authGroup.POST("/password-strength", r.authHandler.PasswordStrength)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Authenticate) // All API v1 routes require a session

	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.Browse)
		listingsGroup.GET("/mine", r.listingHandler.ListMine)
		listingsGroup.GET("/stats", r.listingHandler.Stats)
		listingsGroup.GET("/:id", r.listingHandler.Get)
		listingsGroup.DELETE("/:id", r.listingHandler.Delete)
		listingsGroup.POST("/:id/edit", r.listingHandler.Edit)
	}

	wizardGroup := apiV1.Group("/wizard")
	{
		wizardGroup.GET("", r.wizardHandler.Begin)
		wizardGroup.POST("/validate", r.wizardHandler.Validate)
		wizardGroup.POST("/next", r.wizardHandler.Next)
		wizardGroup.POST("/prev", r.wizardHandler.Prev)
		wizardGroup.POST("/preview", r.wizardHandler.Preview)
		wizardGroup.POST("/submit", r.wizardHandler.Submit)
	}

	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.POST("", r.requestHandler.Create)
		requestsGroup.GET("/incoming", r.requestHandler.ListIncoming)
		requestsGroup.GET("/outgoing", r.requestHandler.ListOutgoing)
		requestsGroup.GET("/:id", r.requestHandler.Get)
		requestsGroup.POST("/:id/approve", r.requestHandler.Approve)
		requestsGroup.POST("/:id/decline", r.requestHandler.Decline)
		requestsGroup.POST("/:id/messages", r.requestHandler.SendMessage)
	}

	facilitiesGroup := apiV1.Group("/facilities")
	{
		facilitiesGroup.GET("", r.offeringHandler.ListFacilities)
		facilitiesGroup.GET("/:id", r.offeringHandler.GetFacility)

		owner := r.sessionMiddleware.RequireRole(entity.RoleStorage)
		facilitiesGroup.GET("/mine", r.offeringHandler.ListMyFacilities, owner)
		facilitiesGroup.POST("", r.offeringHandler.CreateFacility, owner)
		facilitiesGroup.PUT("/:id", r.offeringHandler.UpdateFacility, owner)
		facilitiesGroup.DELETE("/:id", r.offeringHandler.DeleteFacility, owner)
	}

	servicesGroup := apiV1.Group("/services")
	{
		servicesGroup.GET("", r.offeringHandler.ListServices)
		servicesGroup.GET("/:id", r.offeringHandler.GetService)

		owner := r.sessionMiddleware.RequireRole(entity.RoleLogistics)
		servicesGroup.GET("/mine", r.offeringHandler.ListMyServices, owner)
		servicesGroup.POST("", r.offeringHandler.CreateService, owner)
		servicesGroup.PUT("/:id", r.offeringHandler.UpdateService, owner)
		servicesGroup.DELETE("/:id", r.offeringHandler.DeleteService, owner)
	}

	inquiriesGroup := apiV1.Group("/inquiries")
	{
		inquiriesGroup.POST("/services/:id", r.inquiryHandler.InquireService)
		inquiriesGroup.POST("/facilities/:id", r.inquiryHandler.InquireFacility)
		inquiriesGroup.GET("/incoming", r.inquiryHandler.ListIncoming)
	}

	conversationsGroup := apiV1.Group("/conversations")
	{
		conversationsGroup.GET("", r.messageHandler.Conversations)
		conversationsGroup.GET("/unread", r.messageHandler.Unread)
		conversationsGroup.GET("/:email", r.messageHandler.Open)
		conversationsGroup.POST("/:email", r.messageHandler.Send)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.GET("/badge", r.notificationHandler.Badge)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
	}

	apiV1.GET("/bookmarks", r.listingHandler.Bookmarks)
	apiV1.POST("/bookmarks/:id", r.listingHandler.ToggleBookmark)
	apiV1.GET("/analytics/provider", r.listingHandler.Analytics)
}
