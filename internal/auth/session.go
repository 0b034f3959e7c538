package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionLifetime is how long a login session token stays valid.
const SessionLifetime = 30 * 24 * time.Hour

var (
	// ErrTokenExpired is returned when a session token has expired.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidToken is returned when a session token fails validation
	// for any other reason.
	ErrInvalidToken = errors.New("invalid token")
)

// SessionClaims are the claims carried by a login session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// IssueSessionToken creates the signed ledger-access token returned by the
// login endpoint. HS256 over the server secret, 30-day expiry.
func IssueSessionToken(userID, email, secret string) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UID:   userID,
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken verifies the signature and expiry of a session token
// and returns its claims. Unlike Resolve, this path does check the
// signature: it is used where this service is the issuer.
func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
