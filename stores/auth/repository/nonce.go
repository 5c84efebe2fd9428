package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/query"
)

type nonceRepo struct {
	q query.Mongo
}

func NewNonceRepo(q query.Mongo) domain.AuthNonceRepo {
	return &nonceRepo{q: q}
}

func (r *nonceRepo) FindOne(c ctx.Ctx, address domain.Address) (*domain.AuthNonce, error) {
	res := &domain.AuthNonce{}
	if err := r.q.FindOne(c, domain.TableAuthNonces, bson.M{"_id": address.ToLower()}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *nonceRepo) Upsert(c ctx.Ctx, nonce *domain.AuthNonce) error {
	selector := bson.M{"_id": nonce.Address.ToLower()}
	update := bson.M{
		"nonce":     nonce.Nonce,
		"updatedAt": nonce.UpdatedAt,
	}
	if err := r.q.Upsert(c, domain.TableAuthNonces, selector, update); err != nil {
		c.WithFields(log.Fields{
			"nonce": nonce,
			"err":   err,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
