// Package token issues and verifies the HS256 tokens guarding the maze API.
package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken            = errors.New("token: invalid token")
	ErrUnexpectedSigningMethod = errors.New("token: unexpected signing method")
	ErrIssuerMismatch          = errors.New("token: issuer mismatch")
)

// JwtService signs claims with a shared secret.
type JwtService struct {
	secretKey []byte
	issuer    string
}

var _ i.Tokenizer = &JwtService{}

// NewJwtService creates a JwtService stamping tokens with issuer.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate signs claims into a token expiring after expTime.
// The "exp", "iat" and "iss" claims are always set by the service.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := jwt.MapClaims{}
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["exp"] = now.Add(expTime).Unix()
	jwtClaims["iat"] = now.Unix()
	jwtClaims["iss"] = s.issuer

	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims).SignedString(s.secretKey)
}

// Decode verifies the signature, expiry and issuer of a token and returns its claims.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.signingKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrIssuerMismatch
	}

	return claims, nil
}

func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedSigningMethod
	}
	return s.secretKey, nil
}
