package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

type activityRepo struct {
	q query.Mongo
}

func NewActivityRepo(q query.Mongo) auction.ActivityRepo {
	return &activityRepo{q: q}
}

func (r *activityRepo) Insert(c ctx.Ctx, a *auction.Activity) error {
	if err := r.q.Insert(c, domain.TableAuctionActivities, toActivityDoc(a)); err != nil {
		c.WithFields(log.Fields{
			"activity": a,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *activityRepo) FindAll(c ctx.Ctx, assetId domain.AssetId, offset, limit int) ([]*auction.Activity, error) {
	docs := []*activityDoc{}
	qry := bson.M{"assetId": assetId}
	if err := r.q.Search(c, domain.TableAuctionActivities, offset, limit, "-time", qry, &docs); err != nil {
		c.WithFields(log.Fields{
			"assetId": assetId,
			"err":     err,
		}).Error("q.Search failed")
		return nil, err
	}

	res := make([]*auction.Activity, 0, len(docs))
	for _, doc := range docs {
		a, err := doc.toActivity()
		if err != nil {
			c.WithFields(log.Fields{
				"id":  doc.Id,
				"err": err,
			}).Error("doc.toActivity failed")
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}
