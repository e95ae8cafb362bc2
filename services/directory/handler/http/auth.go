package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/adnangitonga/diagnoxis/internal/pkg/logger"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
	"github.com/adnangitonga/diagnoxis/internal/utils"
	"github.com/adnangitonga/diagnoxis/services/directory"
)

// AuthHandler handles the OTP authentication endpoints
type AuthHandler struct {
	directoryUC directory.DirectoryUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(directoryUC directory.DirectoryUC) *AuthHandler {
	return &AuthHandler{
		directoryUC: directoryUC,
	}
}

// Login handles POST /users/login/
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "No data was provided")
	}
	if req.WorkID == "" || req.Email == "" || req.HospitalID == "" {
		return utils.BadRequestResponse(c, "No data was provided")
	}

	if err := h.directoryUC.Login(c.Request().Context(), &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles POST /users/verify-otp/
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "No info was provided")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "No info was provided")
	}

	authResp, err := h.directoryUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP verified successfully", authResp)
}

// ResendOTP handles POST /users/resend-otp/
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req models.ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "No email was provided")
	}
	if req.Email == "" {
		logger.Warn("No email was provided for resend OTP")
		return utils.BadRequestResponse(c, "No email was provided")
	}

	if err := h.directoryUC.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "OTP sent successfully", nil)
}
