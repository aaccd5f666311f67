// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"academy/internal/delivery/api/middleware"
	"academy/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IndexHandler        *handler.IndexHandler
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	PurchaseHandler     *handler.PurchaseHandler
	CatalogHandler      *handler.CatalogHandler
	ContactHandler      *handler.ContactHandler
	UploadHandler       *handler.UploadHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	indexHandler        *handler.IndexHandler
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	purchaseHandler     *handler.PurchaseHandler
	catalogHandler      *handler.CatalogHandler
	contactHandler      *handler.ContactHandler
	uploadHandler       *handler.UploadHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		indexHandler:        params.IndexHandler,
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		purchaseHandler:     params.PurchaseHandler,
		catalogHandler:      params.CatalogHandler,
		contactHandler:      params.ContactHandler,
		uploadHandler:       params.UploadHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authMiddleware.Authenticate
	admin := []echo.MiddlewareFunc{authenticated, r.authMiddleware.RequireAdmin}
	selfOrAdmin := func(param string) []echo.MiddlewareFunc {
		return []echo.MiddlewareFunc{authenticated, r.authMiddleware.SelfOrAdmin(param)}
	}

	// Index
	e.GET("/", r.indexHandler.Index)
	e.GET("/favicon.ico", r.indexHandler.Favicon)
	e.GET("/health", r.indexHandler.Health)
	e.GET("/home-data", r.indexHandler.HomeData)

	// Auth
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)

	// Purchases and invoices
	e.POST("/purchase", r.purchaseHandler.Purchase, authenticated)
	e.GET("/purchases", r.purchaseHandler.ListPurchases, authenticated)

	invoicesGroup := e.Group("/invoices")
	// Invoice numbers are public capabilities. Signed-in callers get their own budget.
	invoicesGroup.Use(r.authMiddleware.Optional, r.rateLimitMiddleware.Handle)
	{
		invoicesGroup.GET("/:invoice_number", r.purchaseHandler.GetInvoice)
		invoicesGroup.GET("/:invoice_number/qr", r.purchaseHandler.GetInvoiceQR)
	}

	// Users
	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers, admin...)
		usersGroup.POST("", r.userHandler.CreateUser, admin...)
		usersGroup.GET("/:id", r.userHandler.GetUser, authenticated)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser, selfOrAdmin("id")...)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, admin...)
		usersGroup.GET("/:id/profile", r.userHandler.GetProfile, selfOrAdmin("id")...)
		usersGroup.GET("/:id/owned-courses", r.userHandler.OwnedCourses, selfOrAdmin("id")...)

		usersGroup.GET("/:id/favourite-courses", r.userHandler.FavouriteCourses, selfOrAdmin("id")...)
		usersGroup.POST("/:id/favourite-courses", r.userHandler.AddFavouriteCourse, selfOrAdmin("id")...)
		usersGroup.DELETE("/:id/favourite-courses/:course_id", r.userHandler.RemoveFavouriteCourse, selfOrAdmin("id")...)

		usersGroup.GET("/:id/saved-blogs", r.userHandler.SavedBlogs, selfOrAdmin("id")...)
		usersGroup.POST("/:id/saved-blogs", r.userHandler.SaveBlog, selfOrAdmin("id")...)
		usersGroup.DELETE("/:id/saved-blogs/:blog_id", r.userHandler.UnsaveBlog, selfOrAdmin("id")...)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(admin...)
	{
		adminGroup.POST("/users/:id/reconcile-owned", r.userHandler.ReconcileOwned)
	}

	// Catalog
	coursesGroup := e.Group("/courses")
	{
		coursesGroup.GET("", r.catalogHandler.ListCourses)
		coursesGroup.GET("/:id", r.catalogHandler.GetCourse)
		coursesGroup.GET("/:id/pdf", r.catalogHandler.ExportCoursePDF)
		coursesGroup.POST("", r.catalogHandler.CreateCourse, admin...)
		coursesGroup.PUT("/:id", r.catalogHandler.UpdateCourse, admin...)
		coursesGroup.DELETE("/:id", r.catalogHandler.DeleteCourse, admin...)
	}

	blogsGroup := e.Group("/blogs")
	{
		blogsGroup.GET("", r.catalogHandler.ListBlogs)
		blogsGroup.GET("/:id", r.catalogHandler.GetBlog)
		blogsGroup.POST("", r.catalogHandler.CreateBlog, admin...)
		blogsGroup.DELETE("/:id", r.catalogHandler.DeleteBlog, admin...)
	}

	// Contacts
	e.POST("/contacts", r.contactHandler.CreateContact)
	e.GET("/contacts", r.contactHandler.ListContacts, admin...)

	// Profile pictures
	uploadGroup := e.Group("/upload/profile-picture")
	{
		uploadGroup.POST("/:user_id", r.uploadHandler.UploadProfilePicture, selfOrAdmin("user_id")...)
		uploadGroup.DELETE("/:user_id", r.uploadHandler.DeleteProfilePicture, selfOrAdmin("user_id")...)
	}
	e.GET("/static/uploads/profile_pictures/:name", r.uploadHandler.ServeProfilePicture)
}
