package services

import (
	"context"
	"errors"
	"time"

	"blogicum/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type Claims struct {
	UserID   uint            `json:"user_id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type TokenService interface {
	Issue(user *models.User) (string, error)
	Parse(ctx context.Context, tokenString string) (*Claims, error)
	Revoke(ctx context.Context, claims *Claims) error
}

type tokenService struct {
	secret     []byte
	expiration time.Duration
	revoked    RevocationStore
	now        func() time.Time
}

func NewTokenService(secret string, expiration time.Duration, revoked RevocationStore) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		expiration: expiration,
		revoked:    revoked,
		now:        time.Now,
	}
}

func (s *tokenService) Issue(user *models.User) (string, error) {
	now := s.now()

	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, models.ErrorUnauthorized{Message: "Invalid token: " + err.Error()}
	}
	if !token.Valid {
		return nil, models.ErrorUnauthorized{Message: "Token is not valid"}
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, models.ErrorUnauthorized{Message: "Token has been revoked"}
	}
	return claims, nil
}

// Revoke blocks the token until it would have expired anyway.
func (s *tokenService) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" {
		return errors.New("token has no id")
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, claims.ID, ttl)
}
