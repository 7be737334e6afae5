// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dealspot/internal/delivery/http/middleware"
	"dealspot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	DealHandler         *handler.DealHandler
	VoucherHandler      *handler.VoucherHandler
	BusinessHandler     *handler.BusinessHandler
	SubmissionHandler   *handler.SubmissionHandler
	ReservationHandler  *handler.ReservationHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	dealHandler         *handler.DealHandler
	voucherHandler      *handler.VoucherHandler
	businessHandler     *handler.BusinessHandler
	submissionHandler   *handler.SubmissionHandler
	reservationHandler  *handler.ReservationHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		dealHandler:         params.DealHandler,
		voucherHandler:      params.VoucherHandler,
		businessHandler:     params.BusinessHandler,
		submissionHandler:   params.SubmissionHandler,
		reservationHandler:  params.ReservationHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterCustomer)
		authGroup.POST("/register/business", r.userHandler.RegisterBusinessMember)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public browsing routes
	e.GET("/deals", r.dealHandler.BrowseDeals)
	e.GET("/deals/:id", r.dealHandler.GetDeal)
	e.GET("/categories", r.dealHandler.ListCategories)
	e.GET("/businesses", r.businessHandler.ListBusinesses)
	e.GET("/businesses/:id", r.businessHandler.GetBusiness)
	e.GET("/businesses/:id/reviews", r.businessHandler.GetBusinessReviews)

	// Customer routes that require authentication
	voucherGroup := e.Group("/vouchers")
	voucherGroup.Use(r.authMiddleware.Authenticate)
	{
		voucherGroup.POST("", r.voucherHandler.PurchaseDeal)
		voucherGroup.GET("", r.voucherHandler.GetUserVouchers)
		voucherGroup.GET("/:code/qr", r.voucherHandler.GetVoucherQR)
		// Redemption by voucher ID; the token must belong to a business member.
		voucherGroup.PATCH("/:id/use", r.voucherHandler.RedeemByID)
	}

	reservationGroup := e.Group("/reservations")
	reservationGroup.Use(r.authMiddleware.Authenticate)
	{
		reservationGroup.POST("", r.reservationHandler.CreateReservation)
		reservationGroup.GET("", r.reservationHandler.GetUserReservations)
		reservationGroup.DELETE("/:id", r.reservationHandler.CancelReservation)
	}

	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.GetUserNotifications)
		notificationGroup.GET("/unread-count", r.notificationHandler.CountUnread)
		notificationGroup.PATCH("/:id/read", r.notificationHandler.MarkNotificationRead)
	}

	reviewGroup := e.Group("/businesses/:id/reviews")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("", r.businessHandler.CreateReview)
	}

	// Business routes that require authentication and "business" role
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	businessGroup.Use(r.authMiddleware.RequireRole("business"))
	{
		businessGroup.POST("/vouchers/verify", r.voucherHandler.Verify)
		businessGroup.POST("/vouchers/redeem", r.voucherHandler.Redeem)
		businessGroup.POST("/submissions", r.submissionHandler.SubmitDeal)
		businessGroup.GET("/submissions", r.submissionHandler.GetBusinessSubmissions)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/deals", r.dealHandler.CreateDeal)
		adminGroup.DELETE("/deals/:id", r.dealHandler.DeactivateDeal)
		adminGroup.GET("/submissions", r.submissionHandler.GetPendingSubmissions)
		adminGroup.PATCH("/submissions/:id", r.submissionHandler.DecideSubmission)
	}
}
