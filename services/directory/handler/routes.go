package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adnangitonga/diagnoxis/internal/pkg/middleware"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
	"github.com/adnangitonga/diagnoxis/services/directory/handler/http"
)

// Handler coordinates the HTTP handlers of the directory service
type Handler struct {
	authHandler      *http.AuthHandler
	directoryHandler *http.DirectoryHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	directoryHandler *http.DirectoryHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:      authHandler,
		directoryHandler: directoryHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	userGroup := e.Group("/users")

	// OTP authentication flow (public)
	userGroup.POST("/login/", h.authHandler.Login)
	userGroup.POST("/verify-otp/", h.authHandler.VerifyOTP)
	userGroup.POST("/resend-otp/", h.authHandler.ResendOTP)

	// Directory reads (public)
	userGroup.GET("/", h.directoryHandler.ListUsers)
	e.GET("/hospital/", h.directoryHandler.ListHospitals)

	// Chat reads require a bearer access token
	userGroup.GET("/chats", h.directoryHandler.ListChats, middleware.JWTAuthMiddleware(h.cfg.JWT))
}
