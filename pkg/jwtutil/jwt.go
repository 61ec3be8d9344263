package jwtutil

import (
	"time"

	"github.com/JoaquinSangiorgio/proyectoInmoweb/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	signingKey []byte
	expiration time.Duration
)

// OperatorClaims represents the JWT claims for the back-office operator session
type OperatorClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Init configures the signing key and token lifetime
func Init(cfg *config.Config) {
	signingKey = []byte(cfg.JWT.SigningKey)
	expiration = cfg.JWT.ExpirationTime
}

// GenerateToken issues a signed token for the operator
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := OperatorClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// ValidateToken validates and parses the JWT token
func ValidateToken(tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*OperatorClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
