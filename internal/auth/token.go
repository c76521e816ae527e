package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the signed session tokens handed to
// dashboard clients at login/register. The token replaces the bare vendor
// record as the thing a client can present to prove who it is.
type TokenService struct {
	secret      []byte
	tokenExpiry time.Duration
}

func NewTokenService(secret string, tokenExpiryInSecs int64) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		tokenExpiry: time.Duration(tokenExpiryInSecs) * time.Second,
	}
}

// IssueSessionToken signs a token whose subject is the vendor id.
func (s *TokenService) IssueSessionToken(vendorID int64) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(vendorID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken checks signature and expiry and returns the vendor id
// the token was issued for.
func (s *TokenService) ValidateSessionToken(tokenStr string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return s.secret, nil
		},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to parse session token: %w", err)
	}

	if !token.Valid {
		return 0, fmt.Errorf("session token is not valid")
	}

	vendorID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session token has a malformed subject: %w", err)
	}

	return vendorID, nil
}
