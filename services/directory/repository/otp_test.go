package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/constants"
	"github.com/adnangitonga/diagnoxis/internal/pkg/database"
	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupOTPRepoTest(t *testing.T) (*DirectoryRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	redisClient := &database.RedisClient{
		Client: client,
	}

	cfg := &models.Config{}
	cfg.OTP.TTLSeconds = 600
	cfg.OTP.MaxAttempts = 5
	cfg.OTP.AttemptWindow = 600

	repo := &DirectoryRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}

	return repo, mr
}

func TestStoreOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	email := "nurse@hospital.test"
	err := repo.StoreOTP(context.Background(), email, "123456")
	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyUserOTP, email)
	val, err := mr.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, "123456", val)

	// TTL follows the configured window
	ttl := mr.TTL(key)
	assert.True(t, ttl > 0)
}

func TestStoreOTP_Overwrites(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	email := "nurse@hospital.test"
	require.NoError(t, repo.StoreOTP(context.Background(), email, "111111"))
	require.NoError(t, repo.StoreOTP(context.Background(), email, "222222"))

	key := fmt.Sprintf(constants.KeyUserOTP, email)
	val, err := mr.Get(key)
	assert.NoError(t, err)
	assert.Equal(t, "222222", val)
}

func TestConsumeOTP(t *testing.T) {
	testCases := []struct {
		name      string
		email     string
		code      string
		setupFunc func(mr *miniredis.Miniredis)
		wantErr   error
		wantKept  bool
	}{
		{
			name:  "Success",
			email: "nurse@hospital.test",
			code:  "123456",
			setupFunc: func(mr *miniredis.Miniredis) {
				key := fmt.Sprintf(constants.KeyUserOTP, "nurse@hospital.test")
				mr.Set(key, "123456")
			},
			wantErr: nil,
		},
		{
			name:  "Wrong Code Keeps Cached Value",
			email: "nurse@hospital.test",
			code:  "000000",
			setupFunc: func(mr *miniredis.Miniredis) {
				key := fmt.Sprintf(constants.KeyUserOTP, "nurse@hospital.test")
				mr.Set(key, "123456")
			},
			wantErr:  apperror.ErrOTPInvalid,
			wantKept: true,
		},
		{
			name:      "Expired Or Never Issued",
			email:     "nurse@hospital.test",
			code:      "123456",
			setupFunc: func(mr *miniredis.Miniredis) {},
			wantErr:   apperror.ErrOTPExpired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mr := setupOTPRepoTest(t)
			defer mr.Close()

			tc.setupFunc(mr)

			err := repo.ConsumeOTP(context.Background(), tc.email, tc.code)

			key := fmt.Sprintf(constants.KeyUserOTP, tc.email)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.wantKept, mr.Exists(key))
			} else {
				assert.NoError(t, err)
				assert.False(t, mr.Exists(key))
			}
		})
	}
}

func TestConsumeOTP_OnlyOnce(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	email := "nurse@hospital.test"
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	mr.Set(key, "123456")

	assert.NoError(t, repo.ConsumeOTP(context.Background(), email, "123456"))

	// The code is gone after the first successful verification
	err := repo.ConsumeOTP(context.Background(), email, "123456")
	assert.ErrorIs(t, err, apperror.ErrOTPExpired)
}

func TestDeleteOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	email := "nurse@hospital.test"
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	mr.Set(key, "123456")

	assert.NoError(t, repo.DeleteOTP(context.Background(), email))
	assert.False(t, mr.Exists(key))

	// Deleting an absent code is not an error
	assert.NoError(t, repo.DeleteOTP(context.Background(), email))
}

func TestOTPAttempts(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	email := "nurse@hospital.test"
	ctx := context.Background()

	count, err := repo.GetOTPAttempts(ctx, email)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	for i := int64(1); i <= 3; i++ {
		count, err = repo.IncrementOTPAttempts(ctx, email)
		assert.NoError(t, err)
		assert.Equal(t, i, count)
	}

	count, err = repo.GetOTPAttempts(ctx, email)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// The window starts on the first failure
	key := fmt.Sprintf(constants.KeyOTPAttempts, email)
	assert.True(t, mr.TTL(key) > 0)

	assert.NoError(t, repo.ClearOTPAttempts(ctx, email))
	count, err = repo.GetOTPAttempts(ctx, email)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestStoreOTP_RedisError(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	mr.Close()

	err := repo.StoreOTP(context.Background(), "nurse@hospital.test", "123456")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store OTP")
}
