package auth

import (
	"errors"

	jwt "github.com/golang-jwt/jwt/v5"
)

// The cookie never carries session state, only the opaque session id wrapped
// in a signed token so a client cannot mint or alter one. Everything else
// stays server-side. Whoever holds a valid cookie holds the session; the
// secret is all that protects it.

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// EncodeSessionToken wraps a session id in an HS256 token for the session
// cookie.
func EncodeSessionToken(sessionID, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("session secret is empty")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{SessionID: sessionID})
	return token.SignedString([]byte(secret))
}

// DecodeSessionToken validates the cookie token and returns the session id.
func DecodeSessionToken(tokenStr, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("session secret is empty")
	}
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return "", err
	}
	if claims.SessionID == "" {
		return "", errors.New("invalid claims")
	}
	return claims.SessionID, nil
}
