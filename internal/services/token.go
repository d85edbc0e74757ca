package service

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/ensaladazo/ensaladazo-backend/internal/config"
	"github.com/ensaladazo/ensaladazo-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenFormatLegacy = "legacy"
	TokenFormatJWT    = "jwt"
)

// TokenIssuer mints the access_token returned by login.
type TokenIssuer interface {
	Issue(user *models.AuthUser) (string, error)
}

// NewTokenIssuer picks the issuer for security.TOKEN_FORMAT.
func NewTokenIssuer(cfg config.Security) (TokenIssuer, error) {
	switch cfg.TokenFormat {
	case "", TokenFormatLegacy:
		return legacyIssuer{now: time.Now}, nil
	case TokenFormatJWT:
		if cfg.JWTKey == "" {
			return nil, fmt.Errorf("jwt token format requires a signing key")
		}

		return jwtIssuer{
			key:    []byte(cfg.JWTKey),
			expiry: time.Duration(cfg.JWTExpiryHours) * time.Hour,
			now:    time.Now,
		}, nil
	default:
		return nil, fmt.Errorf("unknown token format %q", cfg.TokenFormat)
	}
}

// legacyIssuer produces base64("<userID>:<unix millis>"). It is an opaque
// correlation value the storefront keeps in localStorage, not a credential.
type legacyIssuer struct {
	now func() time.Time
}

func (i legacyIssuer) Issue(user *models.AuthUser) (string, error) {
	raw := fmt.Sprintf("%s:%d", user.ID, i.now().UnixMilli())

	return base64.StdEncoding.EncodeToString([]byte(raw)), nil
}

type jwtIssuer struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

func (i jwtIssuer) Issue(user *models.AuthUser) (string, error) {
	now := i.now()

	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}
