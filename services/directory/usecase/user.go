package usecase

import (
	"context"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// ListUsers returns all staff projections
func (u *DirectoryUC) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return u.repo.ListUsers(ctx)
}

// ListHospitals returns all hospitals
func (u *DirectoryUC) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	return u.repo.ListHospitals(ctx)
}
