package web

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/freeboard/board-client/internal/core/service"
	"github.com/freeboard/board-client/internal/web/handler"
	"github.com/freeboard/board-client/internal/web/middleware"
)

// Deps bundles everything the router wires together.
type Deps struct {
	Sessions *service.SessionService
	Posts    *service.PostService
	Comments *service.CommentService
	Admins   *service.AdminService

	Codec   *middleware.CookieCodec
	Redis   *redis.Client
	Backend handler.BackendPinger
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("board"))
	e.Use(middleware.Session(deps.Sessions, deps.Codec))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.Codec)
	homeHandler := handler.NewHomeHandler(deps.Sessions, deps.Posts)
	postHandler := handler.NewPostHandler(deps.Sessions, deps.Posts, deps.Comments)
	commentHandler := handler.NewCommentHandler(deps.Sessions, deps.Comments)
	adminHandler := handler.NewAdminHandler(deps.Sessions, deps.Admins)

	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	// --- Public pages ---
	e.GET("/", homeHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.GET("/post/:id", postHandler.Show)

	// --- Authenticated actions ---
	e.GET("/write", postHandler.WritePage, requireAuth)
	e.POST("/write", postHandler.WriteSubmit, requireAuth)
	e.GET("/edit/:id", postHandler.EditPage, requireAuth)
	e.POST("/edit/:id", postHandler.EditSubmit, requireAuth)
	e.POST("/post/:id/like", postHandler.Like, requireAuth)
	e.POST("/post/:id/delete", postHandler.Delete, requireAuth)
	e.POST("/post/:id/comments", commentHandler.Create, requireAuth)
	e.POST("/post/:id/comments/:cid", commentHandler.Update, requireAuth)
	e.POST("/post/:id/comments/:cid/delete", commentHandler.Delete, requireAuth)
	e.POST("/post/:id/comments/:cid/like", commentHandler.Like, requireAuth)

	// --- Admin console ---
	e.GET("/admin", adminHandler.Console, requireAdmin)
	e.POST("/admin/delete", adminHandler.Delete, requireAdmin)

	// --- Ops surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Backend)

	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
