// Package auth issues and verifies the API's bearer tokens and hashes admin
// passwords.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the standard "sub" and "exp" claims plus the
// user's role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// UserID returns the numeric user id carried in the subject claim.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrInvalidToken
	}
	return id, nil
}

// TokenManager signs and checks HS256 tokens with a single secret loaded at
// startup. It keeps no per-token state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl, now: time.Now}
}

// Issue returns a token for userID expiring ttl from now.
func (m *TokenManager) Issue(userID int64, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(m.now().Add(m.ttl)),
		},
		Role: role,
	})

	return token.SignedString(m.secret)
}

// Verify checks signature, algorithm and expiry and returns the claims.
// A token is rejected from its expiry instant onwards.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
