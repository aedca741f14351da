package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongTokenType   = errors.New("wrong token type")
	ErrNoAuthHeader     = errors.New("authorization header missing")
	ErrBadAuthHeader    = errors.New("invalid authorization header format")
	errUnexpectedMethod = errors.New("unexpected signing method")
)

// Claims are the parsed contents of a token issued by this service.
type Claims struct {
	UserID    uuid.UUID // Owner of the token
	TokenType string    // access or refresh
	TokenID   string    // jti, unique per issued token
}

// JWT issues and parses HS256 access and refresh tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithAccessExpiration sets the access token lifetime.
func WithAccessExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.AccessExp = exp }
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = exp }
}

// New creates a new JWT instance.
func New(opts ...Opt) *JWT {
	j := &JWT{
		SecretKey:  "secret",
		AccessExp:  15 * time.Minute,
		RefreshExp: 7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateAccess creates a short-lived access token for the given user.
func (j *JWT) GenerateAccess(ctx context.Context, userID uuid.UUID) (string, error) {
	token, _, err := j.generate(userID, TokenTypeAccess, j.AccessExp)
	return token, err
}

// GenerateRefresh creates a refresh token for the given user and returns the
// signed token along with its jti, so callers can track issued tokens.
func (j *JWT) GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, string, error) {
	return j.generate(userID, TokenTypeRefresh, j.RefreshExp)
}

func (j *JWT) generate(userID uuid.UUID, tokenType string, exp time.Duration) (string, string, error) {
	jti := uuid.NewString()
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"token_type": tokenType,
		"jti":        jti,
		"exp":        now.Add(exp).Unix(),
		"iat":        now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.SecretKey))
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

// GetClaims parses and verifies a token string, returning its claims.
// Expired or tampered tokens fail verification inside jwt.Parse.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedMethod
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokenType, _ := mapClaims["token_type"].(string)
	jti, _ := mapClaims["jti"].(string)

	return &Claims{
		UserID:    userID,
		TokenType: tokenType,
		TokenID:   jti,
	}, nil
}

// Validate checks that the token is valid and of the expected type.
func (j *JWT) Validate(ctx context.Context, tokenString, tokenType string) error {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return err
	}
	if claims.TokenType != tokenType {
		return ErrWrongTokenType
	}
	return nil
}

// GetTokenFromRequest extracts the bearer token from the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrBadAuthHeader
	}

	return parts[1], nil
}
