package directory

import (
	"context"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/adnangitonga/diagnoxis/services/directory DirectoryUC

// DirectoryUC is the directory service usecase interface
type DirectoryUC interface {
	// OTP authentication flow
	Login(ctx context.Context, req *models.LoginRequest) error
	VerifyOTP(ctx context.Context, email, otp string) (*models.AuthResponse, error)
	ResendOTP(ctx context.Context, email string) error

	// Directory reads
	ListUsers(ctx context.Context) ([]models.UserProfile, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)

	// Chat reads for the authenticated caller
	ListChats(ctx context.Context, email string) ([]models.ChatSummary, error)
}
