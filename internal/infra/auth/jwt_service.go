package auth

import (
	"time"

	"secondchance/config"
	"secondchance/internal/domain/service"
	"secondchance/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte        // Process-wide signing secret, read-only after construction.
	ttl    time.Duration // Zero issues tokens without an exp claim.
}

// NewJWTService is the constructor for jwtService.
// It fails when no signing secret is configured so the process never serves requests without one.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	var ttl time.Duration
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    ttl,
	}, nil
}

// Sign signs claims with HS256. When a TTL is configured and claims carry no
// expiry, exp is derived from iat.
func (s *jwtService) Sign(claims service.Claims) (string, error) {
	if claims.UserID == uuid.Nil {
		return "", errors.New("claims must carry a user id")
	}
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(time.Now())
	}
	if claims.Subject == "" {
		claims.Subject = claims.UserID.String()
	}
	if s.ttl > 0 && claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(claims.IssuedAt.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks the signature and registered claims and returns the payload.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuedAt())
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidToken, "parse token: %v", err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	return claims, nil
}
