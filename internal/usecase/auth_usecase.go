package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"velvet/internal/entity"
	"velvet/internal/repo/persistent"
	"velvet/internal/repo/token"
	"velvet/pkg/jwt"
	"velvet/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

// AuthResult is a signed-in session: the profile and its bearer token.
type AuthResult struct {
	Profile *entity.Profile `json:"profile"`
	Token   string          `json:"token"`
}

type AuthUseCase interface {
	Register(email, password, username string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	profileRepo persistent.ProfileRepository
	resetStore  token.ResetStore
	jwtService  *jwt.Service
	publisher   TaskPublisher
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	profileRepo persistent.ProfileRepository,
	resetStore token.ResetStore,
	jwtService *jwt.Service,
	publisher TaskPublisher,
	log *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		resetStore:  resetStore,
		jwtService:  jwtService,
		publisher:   publisher,
		logger:      log,
	}
}

func (uc *authUseCase) Register(email, password, username string) (*AuthResult, error) {
	if _, _, err := uc.userRepo.GetCredentials(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("email lookup: %w", err)
	}

	if _, err := uc.profileRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("username lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile, err := uc.userRepo.Register(email, string(hash), username)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(profile.ID, RoleFor(profile))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	uc.logger.Info("Registered user %s (@%s)", profile.ID, username)
	return &AuthResult{Profile: profile, Token: token}, nil
}

func (uc *authUseCase) Login(email, password string) (*AuthResult, error) {
	userID, passwordHash, err := uc.userRepo.GetCredentials(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(profile.ID, RoleFor(profile))
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthResult{Profile: profile, Token: token}, nil
}

// RequestPasswordReset issues a one-time token for the account behind the
// email and hands it to the notification pipeline. An unknown email gets the
// same nil result so the endpoint cannot be used to enumerate registered
// addresses.
func (uc *authUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	userID, _, err := uc.userRepo.GetCredentials(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("email lookup: %w", err)
	}

	resetToken := uuid.New().String()
	if err := uc.resetStore.Save(ctx, resetToken, userID, resetTokenTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if uc.publisher != nil {
		err := uc.publisher.PublishNotificationTask(map[string]interface{}{
			"user_id":  userID,
			"event":    "password_reset",
			"email":    email,
			"token":    resetToken,
			"priority": 8,
		})
		if err != nil {
			uc.logger.Warn("Failed to publish password_reset notification: %v", err)
		}
	}
	return nil
}

// ResetPassword spends the token and replaces the password hash. The token
// is deleted on use, so a second attempt with the same token fails.
func (uc *authUseCase) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	userID, err := uc.resetStore.Consume(ctx, resetToken)
	if err != nil {
		return ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := uc.userRepo.UpdatePasswordHash(userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	uc.logger.Info("Password reset for user %s", userID)
	return nil
}

// RoleFor derives the token role from profile flags. Admin wins over
// creator; everyone else is a viewer.
func RoleFor(p *entity.Profile) string {
	switch {
	case p.IsAdmin:
		return "admin"
	case p.IsCreator:
		return "creator"
	default:
		return "viewer"
	}
}
