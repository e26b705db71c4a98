package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "adrewards"

type JWTServiceInterface interface {
	GenerateJWT(accountID int64, role string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	AccountID int64  `json:"account_id"`
	Role      string `json:"role"`
	jwt.StandardClaims
}

// JWTService issues stateless session tokens. Revocation is not supported:
// a token stays valid until it expires.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

func (s *JWTService) GenerateJWT(accountID int64, role string, expirationTime time.Time) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AccountID == 0 || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

func (s *JWTService) Issue(_ context.Context, accountID int64, role string) (string, error) {
	return s.GenerateJWT(accountID, role, time.Now().Add(s.ttl))
}

func (s *JWTService) Resolve(_ context.Context, token string) (*Session, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	return &Session{AccountID: claims.AccountID, Role: claims.Role}, nil
}

func (s *JWTService) Revoke(context.Context, string) error {
	return nil
}
