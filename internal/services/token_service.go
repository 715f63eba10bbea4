package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("invalid or expired token")

// TokenConfig carries the signing material for both token families. Access
// and refresh tokens use independent secrets so compromising one does not
// forge the other.
type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
}

// TokenService issues and verifies signed bearer tokens. It holds no state
// beyond its configuration; refresh-token revocation lives in the store.
type TokenService struct {
	cfg TokenConfig
}

func NewTokenService(cfg TokenConfig) *TokenService {
	return &TokenService{cfg: cfg}
}

// IssueAccessToken signs a short-lived access token carrying the user's UUID
// as subject.
func (s *TokenService) IssueAccessToken(userUUID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userUUID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.AccessSecret)
}

// IssueRefreshToken signs a refresh token with the refresh secret. It carries
// no expiry claim; lifetime and revocation are enforced against the stored
// row, not the token itself.
func (s *TokenService) IssueRefreshToken(userUUID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  userUUID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.RefreshSecret)
}

// VerifyAccessToken checks signature and expiry and returns the subject UUID.
func (s *TokenService) VerifyAccessToken(token string) (string, error) {
	return verify(token, s.cfg.AccessSecret)
}

// VerifyRefreshToken checks signature and shape only. Whether the token is
// still honored (present in the store, not revoked or expired) is the
// caller's concern.
func (s *TokenService) VerifyRefreshToken(token string) (string, error) {
	return verify(token, s.cfg.RefreshSecret)
}

func verify(token string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
