package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventrsvp/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// JWTAuthority signs and verifies HS256 session tokens. Claims carry
// identity only; nothing about the token mentions admin or invite status.
type JWTAuthority struct {
	secret []byte
}

// NewJWTAuthority returns a token authority signing with the given secret.
// It implements both domain.TokenIssuer and domain.TokenVerifier.
func NewJWTAuthority(secret string) *JWTAuthority {
	return &JWTAuthority{secret: []byte(secret)}
}

func (a *JWTAuthority) Issue(userID, email, fullName string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email:    email,
		FullName: fullName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token. Any failure (malformed, bad
// signature, expired, wrong algorithm) returns domain.ErrInvalidToken; the
// raw token is never included in the error.
func (a *JWTAuthority) Verify(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, domain.ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return &domain.Claims{
		UserID:   claims.Subject,
		Email:    claims.Email,
		FullName: claims.FullName,
	}, nil
}
