package services

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/mail"
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService orchestrates the credential store and the token service.
type AuthService struct {
	db         *gorm.DB
	tokens     *TokenService
	mailer     mail.Mailer
	refreshTTL time.Duration
}

func NewAuthService(db *gorm.DB, tokens *TokenService, mailer mail.Mailer, refreshTTL time.Duration) *AuthService {
	return &AuthService{db: db, tokens: tokens, mailer: mailer, refreshTTL: refreshTTL}
}

// Signup registers a new user. The welcome mail is fire-and-forget: a mail
// failure never rolls back user creation.
func (s *AuthService) Signup(req *dto.SignupRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperrors.New(apperrors.Conflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to hash password", err)
	}

	user := models.User{Email: req.Email, PasswordHash: string(hash)}
	if err := s.db.Create(&user).Error; err != nil {
		// the unique index on email is the arbiter when two signups race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Wrap(apperrors.Conflict, "email already registered", err)
		}
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to create user", err)
	}

	go func() {
		if err := s.mailer.SendWelcome(user.Email); err != nil {
			slog.Error("welcome mail failed", "error", err, "user_uuid", user.UUID.String())
		}
	}()

	return &user, nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// refresh token is persisted (hashed) so it can be revoked later.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, apperrors.New(apperrors.Unauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.New(apperrors.Unauthorized, "invalid email or password")
	}

	access, err := s.tokens.IssueAccessToken(user.UUID.String())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to sign access token", err)
	}
	refresh, err := s.tokens.IssueRefreshToken(user.UUID.String())
	if err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to sign refresh token", err)
	}

	record := models.RefreshToken{
		UserUUID:  user.UUID,
		TokenHash: hashToken(refresh),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to store refresh token", err)
	}

	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a stored, unrevoked refresh token for a new access token.
// The refresh token itself is not rotated.
func (s *AuthService) Refresh(token string) (string, error) {
	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = ?", hashToken(token), false).First(&stored).Error; err != nil {
		return "", apperrors.New(apperrors.Unauthorized, "invalid refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return "", apperrors.New(apperrors.Unauthorized, "invalid refresh token")
	}

	userUUID, err := s.tokens.VerifyRefreshToken(token)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Unauthorized, "invalid refresh token", err)
	}

	access, err := s.tokens.IssueAccessToken(userUUID)
	if err != nil {
		return "", apperrors.Wrap(apperrors.Upstream, "failed to sign access token", err)
	}
	return access, nil
}

// Revoke withdraws a refresh token; subsequent refreshes with it fail.
func (s *AuthService) Revoke(token string) error {
	err := s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", hashToken(token)).
		Update("revoked", true).Error
	if err != nil {
		return apperrors.Wrap(apperrors.Upstream, "failed to revoke refresh token", err)
	}
	return nil
}

// ListUsers returns every user's public fields.
func (s *AuthService) ListUsers() ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.Upstream, "failed to list users", err)
	}
	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = dto.UserResponse{UUID: u.UUID, Email: u.Email}
	}
	return out, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
