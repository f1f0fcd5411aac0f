package service

import (
	"time"

	"secondchance/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by Verify for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload embedded in a session token.
// The user ID travels as "uid" and as the registered "sub" claim; issue time as "iat".
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// NewClaims builds the session payload for userID issued at issuedAt.
func NewClaims(userID uuid.UUID, issuedAt time.Time) Claims {
	return Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
}

// TokenService signs and verifies session tokens with the process-wide secret.
type TokenService interface {
	// Sign returns the signed bearer token for claims.
	Sign(claims Claims) (string, error)

	// Verify parses a token and returns its claims, or an error matching ErrInvalidToken.
	Verify(token string) (*Claims, error)
}
