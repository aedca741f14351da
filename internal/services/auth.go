package services

import (
	"context"
	"errors"

	"github.com/expensio/expense-tracker/internal/jwt"
	"github.com/expensio/expense-tracker/internal/logger"
	"github.com/expensio/expense-tracker/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists   = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (uuid.UUID, error)
}

// TokenIssuer defines an interface for issuing and parsing JWT tokens.
type TokenIssuer interface {
	GenerateAccess(ctx context.Context, userID uuid.UUID) (string, error)
	GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RefreshTokenStore tracks issued refresh tokens.
type RefreshTokenStore interface {
	Save(ctx context.Context, jti string, userID uuid.UUID) error
	Exists(ctx context.Context, jti string) (bool, error)
}

// AuthService handles registration, login, and token refresh.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
	tokens RefreshTokenStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer, tokens RefreshTokenStore) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		tokens: tokens,
	}
}

// Register registers a new user and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login authenticates a user and returns an access/refresh token pair.
// Unknown usernames and wrong passwords are reported identically.
func (svc *AuthService) Login(ctx context.Context, username, password string) (access, refresh string, err error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "username", username)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		return "", "", ErrInvalidCredentials
	}

	access, err = svc.jwt.GenerateAccess(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	refresh, jti, err := svc.jwt.GenerateRefresh(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	if err := svc.tokens.Save(ctx, jti, user.UserID); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := svc.jwt.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Warnw("failed to parse refresh token", "err", err)
		return "", ErrInvalidRefreshToken
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		logger.Log.Warnw("wrong token type on refresh", "token_type", claims.TokenType)
		return "", ErrInvalidRefreshToken
	}

	known, err := svc.tokens.Exists(ctx, claims.TokenID)
	if err != nil {
		logger.Log.Errorw("failed to look up refresh token", "err", err)
		return "", err
	}
	if !known {
		logger.Log.Warnw("refresh token not issued or revoked", "jti", claims.TokenID)
		return "", ErrInvalidRefreshToken
	}

	access, err := svc.jwt.GenerateAccess(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", err
	}

	return access, nil
}
