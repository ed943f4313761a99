package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims bind the Steam identity and the internal account id into
// one signed token, so validating a session needs no session table.
type SessionClaims struct {
	SteamID   string `json:"steam_id"`
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

// SessionSigner issues and verifies session tokens with one HMAC secret.
// The constructor refuses an empty secret: HS256 signs and verifies fine
// with an empty key, which would let anyone mint tokens for any account.
type SessionSigner struct {
	key []byte
}

func NewSessionSigner(secret string) (*SessionSigner, error) {
	if secret == "" {
		return nil, errors.New("session token secret must not be empty")
	}
	return &SessionSigner{key: []byte(secret)}, nil
}

func (s *SessionSigner) Create(steamID string, accountID uuid.UUID) (string, error) {
	claims := &SessionClaims{
		SteamID:   steamID,
		AccountID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

func (s *SessionSigner) Parse(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.key, nil
	})

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
