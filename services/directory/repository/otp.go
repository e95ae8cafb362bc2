package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/adnangitonga/diagnoxis/internal/pkg/apperror"
	"github.com/adnangitonga/diagnoxis/internal/pkg/constants"
)

// StoreOTP caches a code for the email with the configured TTL,
// unconditionally overwriting any prior code for that email.
func (r *DirectoryRepo) StoreOTP(ctx context.Context, email, code string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)
	ttl := time.Duration(r.cfg.OTP.TTLSeconds) * time.Second

	if err := r.redisClient.Set(ctx, key, code, ttl); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to store OTP")
	}
	return nil
}

// DeleteOTP removes any cached code for the email, idempotently
func (r *DirectoryRepo) DeleteOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to delete OTP")
	}
	return nil
}

// ConsumeOTP atomically compares the cached code for the email against the
// submitted one and deletes it on match, so a code verifies at most once
// even under concurrent attempts. A wrong guess leaves the code in place.
func (r *DirectoryRepo) ConsumeOTP(ctx context.Context, email, code string) error {
	key := fmt.Sprintf(constants.KeyUserOTP, email)

	found, matched, err := r.redisClient.CompareAndDelete(ctx, key, code)
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to consume OTP")
	}
	if !found {
		return apperror.ErrOTPExpired
	}
	if !matched {
		return apperror.ErrOTPInvalid
	}
	return nil
}

// IncrementOTPAttempts bumps the failed-verification counter for the email,
// starting its window on the first failure, and returns the new count.
func (r *DirectoryRepo) IncrementOTPAttempts(ctx context.Context, email string) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPAttempts, email)
	window := time.Duration(r.cfg.OTP.AttemptWindow) * time.Second

	count, err := r.redisClient.IncrWithWindow(ctx, key, window)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to count OTP attempts")
	}
	return count, nil
}

// GetOTPAttempts returns the current failed-verification count for the email
func (r *DirectoryRepo) GetOTPAttempts(ctx context.Context, email string) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPAttempts, email)

	val, err := r.redisClient.Client.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to read OTP attempts")
	}
	return val, nil
}

// ClearOTPAttempts resets the failed-verification counter for the email
func (r *DirectoryRepo) ClearOTPAttempts(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyOTPAttempts, email)

	if err := r.redisClient.Delete(ctx, key); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeStoreUnavailable, "failed to clear OTP attempts")
	}
	return nil
}
