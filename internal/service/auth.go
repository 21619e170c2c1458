package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/spicerack/recipe-api/internal/models"
	"github.com/spicerack/recipe-api/internal/types"
)

const tokenLifetime = 24 * time.Hour

// AuthService issues and validates bearer tokens. A token is an HS256
// JWT carrying the user id and a session id; validation requires both
// a good signature and a live session in the store.
type AuthService struct {
	db        *gorm.DB
	sessions  *SessionStore
	jwtSecret string
}

func NewAuthService(db *gorm.DB, sessions *SessionStore, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// Register creates a user account and logs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies the credentials and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(ctx, user.ID)
}

// Logout revokes the session behind a validated token.
func (s *AuthService) Logout(ctx context.Context, claims *types.TokenClaims) error {
	return s.sessions.Delete(ctx, claims.SessionID)
}

func (s *AuthService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"session_id": sessionID,
		"exp":        time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses the token and checks that its session is still
// active. It returns the claims for downstream handlers.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	owner, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrInvalidToken
	}

	return &types.TokenClaims{UserID: userID, SessionID: sessionID}, nil
}
