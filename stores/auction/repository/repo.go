package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
)

func makeFindQuery(opts auction.FindAllOptions) bson.M {
	qry := bson.M{}

	if opts.Name != nil {
		qry["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(*opts.Name), Options: "i"}
	}

	if opts.State != nil {
		qry["state"] = int32(*opts.State)
	}

	if opts.Owner != nil {
		qry["owner"] = *opts.Owner
	}

	if opts.StartedBefore != nil {
		qry["startTime"] = bson.M{"$lte": *opts.StartedBefore}
	}

	return qry
}

type repo struct {
	q query.Mongo
}

func NewRepo(q query.Mongo) auction.Repo {
	return &repo{q: q}
}

func (r *repo) FindOne(c ctx.Ctx, assetId domain.AssetId) (*auction.Auction, error) {
	doc := &auctionDoc{}
	if err := r.q.FindOne(c, domain.TableAuctions, bson.M{"_id": assetId}, doc); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetId": assetId,
			"err":     err,
		}).Error("q.FindOne failed")
		return nil, err
	}

	a, err := doc.toAuction()
	if err != nil {
		c.WithFields(log.Fields{
			"assetId": assetId,
			"err":     err,
		}).Error("doc.toAuction failed")
		return nil, err
	}
	return a, nil
}

func (r *repo) FindAll(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) ([]*auction.Auction, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return nil, err
	}

	offset, limit := 0, auction.DefaultPageSize
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	if opts.Limit != nil {
		limit = *opts.Limit
	}

	qry := makeFindQuery(opts)
	docs := []*auctionDoc{}
	if err := r.q.Search(c, domain.TableAuctions, offset, limit, "-startTime", qry, &docs); err != nil {
		c.WithFields(log.Fields{
			"query": qry,
			"err":   err,
		}).Error("q.Search failed")
		return nil, err
	}

	res := make([]*auction.Auction, 0, len(docs))
	for _, doc := range docs {
		a, err := doc.toAuction()
		if err != nil {
			c.WithFields(log.Fields{
				"assetId": doc.AssetId,
				"err":     err,
			}).Error("doc.toAuction failed")
			return nil, err
		}
		res = append(res, a)
	}
	return res, nil
}

func (r *repo) Count(c ctx.Ctx, optFns ...auction.FindAllOptionsFunc) (int, error) {
	opts, err := auction.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("auction.GetFindAllOptions failed")
		return 0, err
	}

	qry := makeFindQuery(opts)
	count, err := r.q.Count(c, domain.TableAuctions, qry)
	if err != nil {
		c.WithFields(log.Fields{
			"query": qry,
			"err":   err,
		}).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}

func (r *repo) Create(c ctx.Ctx, a *auction.Auction) error {
	if err := r.q.Insert(c, domain.TableAuctions, toDoc(a)); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"auction": a,
			"err":     err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *repo) Commit(c ctx.Ctx, t *auction.Transition) error {
	next := t.Next()
	doc := toDoc(&next)
	selector := bson.M{
		"_id":   doc.AssetId,
		"state": int32(t.From()),
	}
	update := bson.M{"$set": doc.setFields()}

	if err := r.q.CustomPatch(c, domain.TableAuctions, selector, update, false); err == query.ErrNotFound {
		// another transition moved the record first
		return auction.ErrInvalidAuctionState
	} else if err != nil {
		c.WithFields(log.Fields{
			"assetId": doc.AssetId,
			"kind":    t.Kind(),
			"err":     err,
		}).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
