package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/service/query"
)

var timeNow = time.Now

type repo struct {
	q query.Mongo
}

func NewRepo(q query.Mongo) ledger.Repo {
	return &repo{q: q}
}

func (r *repo) Debit(c ctx.Ctx, id ledger.BalanceId, amount int64) error {
	selector := bson.M{
		"_id":    id.String(),
		"amount": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"amount": -amount},
		"$set": bson.M{"updatedAt": timeNow()},
	}
	if err := r.q.CustomPatch(c, domain.TableLedgerBalances, selector, update, false); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":     id,
			"amount": amount,
			"err":    err,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *repo) Credit(c ctx.Ctx, id ledger.BalanceId, amount int64) error {
	selector := bson.M{"_id": id.String()}
	update := bson.M{
		"$inc": bson.M{"amount": amount},
		"$set": bson.M{"updatedAt": timeNow()},
		"$setOnInsert": bson.M{
			"holder":  id.Holder,
			"kind":    id.Kind,
			"assetId": id.AssetId,
		},
	}
	if err := r.q.CustomPatch(c, domain.TableLedgerBalances, selector, update, true); err != nil {
		c.WithFields(log.Fields{
			"id":     id,
			"amount": amount,
			"err":    err,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (r *repo) FindAll(c ctx.Ctx, holder domain.Holder) ([]*ledger.Balance, error) {
	res := []*ledger.Balance{}
	if err := r.q.Search(c, domain.TableLedgerBalances, 0, 0, "kind", bson.M{"holder": holder}, &res); err != nil {
		c.WithFields(log.Fields{
			"holder": holder,
			"err":    err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *repo) InsertEntry(c ctx.Ctx, entry *ledger.Entry) error {
	if err := r.q.Insert(c, domain.TableLedgerJournal, entry); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"entry": entry,
			"err":   err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
