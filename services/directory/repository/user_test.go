package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/database"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

func setupDirectoryRepoTest(t *testing.T) (*DirectoryRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &DirectoryRepo{
		cfg:         &models.Config{},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestGetUserByCredentials(t *testing.T) {
	testCases := []struct {
		name       string
		workID     string
		email      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:   "Success",
			workID: "WRK-1001",
			email:  "jane.doe@hospital.test",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"}).
					AddRow(7, "WRK-1001", "Jane", "Doe", "jane.doe@hospital.test", "Nurse", "Oncology", 3)
				mock.ExpectQuery("FROM users").
					WithArgs("WRK-1001", "jane.doe@hospital.test").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, 7, user.ID)
				assert.Equal(t, "WRK-1001", user.WorkID)
				assert.Equal(t, "Jane", user.FirstName)
				assert.Equal(t, 3, user.HospitalRef)
			},
		},
		{
			name:   "User Not Found",
			workID: "WRK-9999",
			email:  "ghost@hospital.test",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users").
					WithArgs("WRK-9999", "ghost@hospital.test").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, apperror.ErrUserNotFound)
			},
		},
		{
			name:   "Database Error",
			workID: "WRK-1001",
			email:  "jane.doe@hospital.test",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM users").
					WithArgs("WRK-1001", "jane.doe@hospital.test").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get user")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupDirectoryRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByCredentials(context.Background(), tc.workID, tc.email)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"}).
		AddRow(7, "WRK-1001", "Jane", "Doe", "jane.doe@hospital.test", "Nurse", "Oncology", 3)
	mock.ExpectQuery("FROM users").
		WithArgs("jane.doe@hospital.test").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "jane.doe@hospital.test")

	assert.NoError(t, err)
	assert.Equal(t, "WRK-1001", user.WorkID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("FROM users").
		WithArgs("ghost@hospital.test").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), "ghost@hospital.test")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	// Users are projected with the hospital's public identifier
	rows := sqlmock.NewRows([]string{"work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"}).
		AddRow("WRK-1001", "Jane", "Doe", "jane.doe@hospital.test", "Nurse", "Oncology", "HOSP-1A2B3C4D").
		AddRow("WRK-1002", "John", "Smith", "john.smith@hospital.test", "Surgeon", "Cardiology", "HOSP-1A2B3C4D")
	mock.ExpectQuery("JOIN hospitals h").WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	assert.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "HOSP-1A2B3C4D", users[0].HospitalID)
	assert.Equal(t, "WRK-1002", users[1].WorkID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock, cleanup := setupDirectoryRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"work_id", "first_name", "last_name", "email", "occupation", "department", "hospital_id"})
	mock.ExpectQuery("JOIN hospitals h").WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}
