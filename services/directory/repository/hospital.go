package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// GetHospitalByPublicID retrieves a hospital by its public identifier
func (r *DirectoryRepo) GetHospitalByPublicID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	query := `
		SELECT id, hospital_id, name, email, phone_number, location
		FROM hospitals
		WHERE hospital_id = $1
	`

	var hospital models.Hospital
	err := r.db.GetContext(ctx, &hospital, query, hospitalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrHospitalNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get hospital")
	}

	return &hospital, nil
}

// GetHospitalByID retrieves a hospital by its internal surrogate key
func (r *DirectoryRepo) GetHospitalByID(ctx context.Context, id int) (*models.Hospital, error) {
	query := `
		SELECT id, hospital_id, name, email, phone_number, location
		FROM hospitals
		WHERE id = $1
	`

	var hospital models.Hospital
	err := r.db.GetContext(ctx, &hospital, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrHospitalNotFound
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get hospital")
	}

	return &hospital, nil
}

// ListHospitals returns all hospitals
func (r *DirectoryRepo) ListHospitals(ctx context.Context) ([]models.Hospital, error) {
	query := `
		SELECT id, hospital_id, name, email, phone_number, location
		FROM hospitals
		ORDER BY id
	`

	hospitals := []models.Hospital{}
	if err := r.db.SelectContext(ctx, &hospitals, query); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to list hospitals")
	}

	return hospitals, nil
}

// getAdminByID retrieves an admin by its internal surrogate key
func (r *DirectoryRepo) getAdminByID(ctx context.Context, id int) (*models.Admin, error) {
	query := `
		SELECT id, admin_id, username, email
		FROM admins
		WHERE id = $1
	`

	var admin models.Admin
	err := r.db.GetContext(ctx, &admin, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.ErrCodeNotFound, "Admin not found")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to get admin")
	}

	return &admin, nil
}
