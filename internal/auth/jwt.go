package auth

import (
	"time"

	"pcof-site-backend/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the signed-in admin's identity alongside the registered
// claims.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

func GenerateToken(email string, secret []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: email,
		Role:  "ADMIN",
	})

	return token.SignedString(secret)
}

func VerifyToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrUnauthorized, "invalid token", err)
	}
	if !token.Valid {
		return nil, apperr.New(apperr.ErrUnauthorized, "invalid token")
	}

	return claims, nil
}
