package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tableflip.dev/stepio/pkg/model"
)

// Claims are carried by the mock session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

const issuer = "stepio"

func (s *Store) issueToken(u model.User) (string, error) {
	claims := Claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  u.ID,
			IssuedAt: jwt.NewNumericDate(s.now()),
			ID:       uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("session: sign token: %w", err)
	}
	return token, nil
}

// verify checks that token was issued by this store for user.
func (s *Store) verify(token string, user *model.User) error {
	claims, err := ParseToken(token, string(s.secret))
	if err != nil {
		return err
	}
	if claims.Subject != user.ID {
		return model.WrapError(model.CodeAuthFailure, "session: token subject", fmt.Errorf("token is for %q, user is %q", claims.Subject, user.ID))
	}
	return nil
}

// ParseToken verifies a token issued by a store sharing secret.
func ParseToken(token, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, model.WrapError(model.CodeAuthFailure, "session: parse token", err)
	}
	return claims, nil
}
