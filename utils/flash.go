package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"productcatalog/models"
)

// FlashTTL bounds how long a flash survives if the redirect is never followed.
const FlashTTL = 5 * time.Minute

// FlashClaims carries a flash message inside a signed token.
type FlashClaims struct {
	models.Flash
	jwt.RegisteredClaims
}

// FlashSigner signs and verifies flash tokens with an HMAC secret.
type FlashSigner struct {
	secret []byte
	now    func() time.Time
}

// NewFlashSigner creates a signer for the given application key.
func NewFlashSigner(appKey string) *FlashSigner {
	return &FlashSigner{secret: []byte(appKey), now: time.Now}
}

// Encode signs f into a compact token.
func (s *FlashSigner) Encode(f models.Flash) (string, error) {
	now := s.now()
	claims := &FlashClaims{
		Flash: f,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(FlashTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode verifies a token produced by Encode and returns its flash.
func (s *FlashSigner) Decode(tokenString string) (models.Flash, error) {
	claims := &FlashClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Flash{}, err
	}
	if !token.Valid {
		return models.Flash{}, errors.New("invalid flash token")
	}

	return claims.Flash, nil
}
