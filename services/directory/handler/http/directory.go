package http

import (
	"fmt"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/adnangitonga/diagnoxis/internal/pkg/logger"
	"github.com/adnangitonga/diagnoxis/internal/utils"
	"github.com/adnangitonga/diagnoxis/services/directory"
)

// DirectoryHandler handles the directory and chat read endpoints
type DirectoryHandler struct {
	directoryUC directory.DirectoryUC
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryUC directory.DirectoryUC) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: directoryUC,
	}
}

// ListUsers handles GET /users/
func (h *DirectoryHandler) ListUsers(c echo.Context) error {
	users, err := h.directoryUC.ListUsers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list users", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Users retrieved successfully", users)
}

// ListHospitals handles GET /hospital/
func (h *DirectoryHandler) ListHospitals(c echo.Context) error {
	hospitals, err := h.directoryUC.ListHospitals(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list hospitals", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// ListChats handles GET /users/chats for the authenticated caller
func (h *DirectoryHandler) ListChats(c echo.Context) error {
	email := fmt.Sprintf("%v", c.Get("email"))
	if email == "" || email == "<nil>" {
		return utils.UnauthorizedResponse(c, "")
	}

	chats, err := h.directoryUC.ListChats(c.Request().Context(), email)
	if err != nil {
		logger.Error("Failed to list chats",
			logger.Err(err),
			logger.String("email", email))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Chats retrieved successfully", chats)
}
