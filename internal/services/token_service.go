package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the bearer tokens carrying a subject id
// and a role claim.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{Secret: []byte(secret), TTL: 24 * time.Hour}
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

func (s *TokenService) Verify(signed string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
