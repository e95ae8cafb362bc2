package usecase

import (
	"context"
	"errors"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	jwtpkg "github.com/adnangitonga/diagnoxis/internal/pkg/jwt"
	"github.com/adnangitonga/diagnoxis/internal/pkg/logger"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
	"github.com/adnangitonga/diagnoxis/internal/utils"
)

// Login validates the (work_id, email, hospital_id) triple, caches a fresh
// one-time code for the email and mails it. Any previously cached code for
// the email is overwritten.
func (u *DirectoryUC) Login(ctx context.Context, req *models.LoginRequest) error {
	user, err := u.repo.GetUserByCredentials(ctx, req.WorkID, req.Email)
	if err != nil {
		logger.Warn("Login attempt for unknown user",
			logger.String("email", req.Email))
		return err
	}

	hospital, err := u.repo.GetHospitalByPublicID(ctx, req.HospitalID)
	if err != nil {
		logger.Warn("Login attempt for unknown hospital",
			logger.String("email", req.Email),
			logger.String("hospital_id", req.HospitalID))
		return err
	}

	if user.HospitalRef != hospital.ID {
		logger.Warn("Login attempt across hospitals",
			logger.String("email", req.Email),
			logger.String("hospital_id", req.HospitalID))
		return apperror.ErrHospitalMismatch
	}

	return u.issueOTP(ctx, req.Email)
}

// VerifyOTP checks the submitted code against the cached one, consuming it
// on match, and issues both session tokens. A code verifies at most once.
func (u *DirectoryUC) VerifyOTP(ctx context.Context, email, otp string) (*models.AuthResponse, error) {
	attempts, err := u.repo.GetOTPAttempts(ctx, email)
	if err != nil {
		return nil, err
	}
	if attempts >= int64(u.cfg.OTP.MaxAttempts) {
		logger.Warn("OTP verification blocked after repeated failures",
			logger.String("email", email))
		return nil, apperror.ErrTooManyAttempts
	}

	if err := u.repo.ConsumeOTP(ctx, email, otp); err != nil {
		if errors.Is(err, apperror.ErrOTPInvalid) {
			if _, countErr := u.repo.IncrementOTPAttempts(ctx, email); countErr != nil {
				logger.Error("Failed to record OTP attempt",
					logger.Err(countErr),
					logger.String("email", email))
			}
		}
		return nil, err
	}

	if err := u.repo.ClearOTPAttempts(ctx, email); err != nil {
		logger.Error("Failed to clear OTP attempts",
			logger.Err(err),
			logger.String("email", email))
	}

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	hospital, err := u.repo.GetHospitalByID(ctx, user.HospitalRef)
	if err != nil {
		return nil, err
	}

	details := models.UserProfile{
		WorkID:     user.WorkID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Occupation: user.Occupation,
		Department: user.Department,
		HospitalID: hospital.HospitalID,
	}

	accessToken, err := jwtpkg.Generate(details, jwtpkg.TokenTypeAccess, u.cfg.JWT)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to issue access token")
	}

	refreshToken, err := jwtpkg.Generate(details, jwtpkg.TokenTypeRefresh, u.cfg.JWT)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to issue refresh token")
	}

	logger.Info("User verified OTP",
		logger.String("work_id", user.WorkID),
		logger.String("hospital_id", hospital.HospitalID))

	return &models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserDetails:  details,
	}, nil
}

// ResendOTP invalidates any outstanding code for the email and issues a
// fresh one. The old code can no longer verify after a resend.
func (u *DirectoryUC) ResendOTP(ctx context.Context, email string) error {
	if err := u.repo.DeleteOTP(ctx, email); err != nil {
		return err
	}

	return u.issueOTP(ctx, email)
}

// issueOTP generates a fresh 6-digit code, caches it under the email and
// attempts delivery. The code is cached before the send so a delivered code
// is always verifiable; on send failure it ages out with the TTL.
func (u *DirectoryUC) issueOTP(ctx context.Context, email string) error {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "failed to generate OTP")
	}

	if err := u.repo.StoreOTP(ctx, email, code); err != nil {
		return err
	}

	if err := u.mailGW.SendOTPEmail(ctx, email, code); err != nil {
		logger.Error("Failed to deliver OTP email",
			logger.Err(err),
			logger.String("email", email))
		return apperror.Wrap(err, apperror.ErrCodeDeliveryFailed, "Failed to send OTP. Please try again.")
	}

	logger.Info("OTP sent", logger.String("email", email))
	return nil
}
