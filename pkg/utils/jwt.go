package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// SessionTokenIssuer signs tokens that grant access to one chat session.
type SessionTokenIssuer struct {
	key []byte
	ttl time.Duration
}

func NewSessionTokenIssuer(secret string, ttl time.Duration) *SessionTokenIssuer {
	return &SessionTokenIssuer{key: []byte(secret), ttl: ttl}
}

func (s *SessionTokenIssuer) CreateToken(sessionId string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionID: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionId,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *SessionTokenIssuer) ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}
