package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// GetUserByCredentials retrieves a user by (work_id, email)
func (r *DirectoryRepo) GetUserByCredentials(ctx context.Context, workID, email string) (*models.User, error) {
	query := `
		SELECT id, work_id, first_name, last_name, email, occupation, department, hospital_id
		FROM users
		WHERE work_id = $1 AND email = $2
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, workID, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get user")
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *DirectoryRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, work_id, first_name, last_name, email, occupation, department, hospital_id
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get user")
	}

	return &user, nil
}

// ListUsers returns all users projected with their hospital's public
// identifier in place of the internal foreign key.
func (r *DirectoryRepo) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	query := `
		SELECT u.work_id, u.first_name, u.last_name, u.email, u.occupation, u.department,
			h.hospital_id AS hospital_id
		FROM users u
		JOIN hospitals h ON h.id = u.hospital_id
		ORDER BY u.id
	`

	users := []models.UserProfile{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to list users")
	}

	return users, nil
}

// getUserProfileByID resolves a user's internal id to the outward projection
func (r *DirectoryRepo) getUserProfileByID(ctx context.Context, id int) (*models.UserProfile, error) {
	query := `
		SELECT u.work_id, u.first_name, u.last_name, u.email, u.occupation, u.department,
			h.hospital_id AS hospital_id
		FROM users u
		JOIN hospitals h ON h.id = u.hospital_id
		WHERE u.id = $1
	`

	var profile models.UserProfile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get user")
	}

	return &profile, nil
}
