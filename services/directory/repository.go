package directory

import (
	"context"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adnangitonga/diagnoxis/services/directory DirectoryRepo

// DirectoryRepo is the persistence interface of the directory service:
// relational lookups plus the ephemeral OTP cache.
type DirectoryRepo interface {
	// Users
	GetUserByCredentials(ctx context.Context, workID, email string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.UserProfile, error)

	// Hospitals
	GetHospitalByPublicID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	GetHospitalByID(ctx context.Context, id int) (*models.Hospital, error)
	ListHospitals(ctx context.Context) ([]models.Hospital, error)

	// OTP cache
	StoreOTP(ctx context.Context, email, code string) error
	DeleteOTP(ctx context.Context, email string) error
	ConsumeOTP(ctx context.Context, email, code string) error
	IncrementOTPAttempts(ctx context.Context, email string) (int64, error)
	GetOTPAttempts(ctx context.Context, email string) (int64, error)
	ClearOTPAttempts(ctx context.Context, email string) error

	// Chats
	ListChatsForParticipant(ctx context.Context, participantType string, participantID int) ([]models.ChatSummary, error)
}
