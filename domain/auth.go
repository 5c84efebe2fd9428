package domain

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/goauction/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"` // name data for backward compatibility
	jwt.StandardClaims
}

// AuthNonce is the one-time value an address signs to obtain a token
type AuthNonce struct {
	Address   Address   `bson:"_id"`
	Nonce     string    `bson:"nonce"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type AuthNonceRepo interface {
	FindOne(ctx ctx.Ctx, address Address) (*AuthNonce, error)
	Upsert(ctx ctx.Ctx, nonce *AuthNonce) error
}

type AuthUsecase interface {
	// GetNonce returns the pending nonce of address, issuing one if it has none
	GetNonce(ctx ctx.Ctx, address Address) (string, error)
	// SignToken verifies a personal-sign signature over the nonce message and
	// returns a jwt; the nonce is rotated on success
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
