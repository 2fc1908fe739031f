package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, profileID uuid.UUID) (*models.ProfileDB, error)
	GetByEmail(ctx context.Context, email string) (*models.ProfileDB, error)
}

// ProfileWriter defines write operations used during registration and
// password changes.
type ProfileWriter interface {
	Save(ctx context.Context, email, passwordHash string, fullName *string) (uuid.UUID, error)
	UpdatePasswordHash(ctx context.Context, profileID uuid.UUID, passwordHash string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration, login and password changes.
type AuthService struct {
	reader ProfileReader
	writer ProfileWriter
	jwt    JWTGenerator
	cache  ProfileCache
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader ProfileReader, writer ProfileWriter, jwt JWTGenerator, cache ProfileCache) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		cache:  cache,
	}
}

// Register creates a new profile and returns its id with a signed token.
func (svc *AuthService) Register(ctx context.Context, email, password string, fullName *string) (uuid.UUID, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check profile exists", "err", err)
		return uuid.Nil, "", err
	}
	if existing != nil {
		logger.Log.Errorw("profile already exists", "email", email)
		return uuid.Nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, "", err
	}

	profileID, err := svc.writer.Save(ctx, email, string(hashedPassword), fullName)
	if err != nil {
		logger.Log.Errorw("failed to save profile", "err", err)
		return uuid.Nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, profileID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return uuid.Nil, "", err
	}

	return profileID, token, nil
}

// Login authenticates a profile and returns its id with a signed token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (uuid.UUID, string, error) {
	profile, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return uuid.Nil, "", err
	}
	if profile == nil {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, profile.ProfileID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return uuid.Nil, "", err
	}

	return profile.ProfileID, token, nil
}

// ChangePassword verifies the current password against the stored hash and
// replaces it with a hash of the new one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	profile, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return err
	}
	if profile == nil {
		return ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePasswordHash(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password hash", "userID", userID, "err", err)
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate profile cache", "userID", userID, "err", err)
		}
	}

	return nil
}
