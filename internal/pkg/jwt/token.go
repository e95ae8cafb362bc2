package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/adnangitonga/diagnoxis/internal/pkg/models"
)

// Token kinds. Access and refresh tokens are never interchangeable: each is
// signed with its own secret and carries its kind in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 24 * time.Hour
)

// ErrInvalidToken is the single error returned for any verification
// failure. Callers cannot distinguish a bad signature from an expired or
// mistyped token.
var ErrInvalidToken = errors.New("invalid token")

// HospitalClaims is the identity claim signed into session tokens
type HospitalClaims struct {
	WorkID     string `json:"work_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Occupation string `json:"occupation"`
	Department string `json:"department"`
	HospitalID string `json:"hospital_id"`
	TokenType  string `json:"token_type"`
	jwt.RegisteredClaims
}

// UserDetails converts the claim back to the user projection it was built from
func (c *HospitalClaims) UserDetails() models.UserProfile {
	return models.UserProfile{
		WorkID:     c.WorkID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Occupation: c.Occupation,
		Department: c.Department,
		HospitalID: c.HospitalID,
	}
}

// Generate signs the given user projection into a token of the given kind.
// Access tokens expire 15 minutes after issuance, refresh tokens 1 day.
func Generate(user models.UserProfile, tokenType string, cfg models.JWTConfig) (string, error) {
	secret, ttl, err := kindParams(tokenType, cfg)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := HospitalClaims{
		WorkID:     user.WorkID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		Occupation: user.Occupation,
		Department: user.Department,
		HospitalID: user.HospitalID,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate verifies a token against the secret for the expected kind and
// returns its claims. Signature failure, expiry, a missing expiry field and
// a token_type mismatch all surface as ErrInvalidToken.
func Validate(tokenString, tokenType string, cfg models.JWTConfig) (*HospitalClaims, error) {
	secret, _, err := kindParams(tokenType, cfg)
	if err != nil {
		return nil, err
	}

	claims := &HospitalClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}
	if time.Now().After(claims.ExpiresAt.Time) {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func kindParams(tokenType string, cfg models.JWTConfig) (string, time.Duration, error) {
	switch tokenType {
	case TokenTypeAccess:
		return cfg.AccessSecret, accessTokenTTL, nil
	case TokenTypeRefresh:
		return cfg.RefreshSecret, refreshTokenTTL, nil
	default:
		return "", 0, ErrInvalidToken
	}
}
