package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
)

const tokenTtl = 24 * time.Hour

var timeNow = time.Now

type impl struct {
	jwtSecret []byte
	template  string
	nonceRepo domain.AuthNonceRepo
}

// New returns the auth usecase. template must contain one %s, replaced by the nonce.
func New(jwtSecret, template string, nonceRepo domain.AuthNonceRepo) domain.AuthUsecase {
	return &impl{
		jwtSecret: []byte(jwtSecret),
		template:  template,
		nonceRepo: nonceRepo,
	}
}

func (im *impl) GetNonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	if !ethereum.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	n, err := im.nonceRepo.FindOne(ctx, address)
	if err == nil {
		return n.Nonce, nil
	} else if err != domain.ErrNotFound {
		ctx.WithField("err", err).Error("nonceRepo.FindOne failed")
		return "", err
	}

	return im.rotate(ctx, address)
}

func (im *impl) rotate(ctx ctx.Ctx, address domain.Address) (string, error) {
	n := &domain.AuthNonce{
		Address:   address.ToLower(),
		Nonce:     uuid.NewString(),
		UpdatedAt: timeNow(),
	}
	if err := im.nonceRepo.Upsert(ctx, n); err != nil {
		ctx.WithField("err", err).Error("nonceRepo.Upsert failed")
		return "", err
	}
	return n.Nonce, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !ethereum.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	n, err := im.nonceRepo.FindOne(ctx, address)
	if err == domain.ErrNotFound {
		return "", domain.ErrInvalidSignature
	} else if err != nil {
		ctx.WithField("err", err).Error("nonceRepo.FindOne failed")
		return "", err
	}

	msg := []byte(fmt.Sprintf(im.template, n.Nonce))
	if ok, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil || !ok {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Info("signature rejected")
		return "", domain.ErrInvalidSignature
	}

	// a signature is good for one token only
	if _, err := im.rotate(ctx, address); err != nil {
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
