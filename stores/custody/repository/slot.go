package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/custody"
	"github.com/x-xyz/goauction/service/query"
)

type slotRepo struct {
	q query.Mongo
}

func NewSlotRepo(q query.Mongo) custody.SlotRepo {
	return &slotRepo{q: q}
}

func (r *slotRepo) FindOne(c ctx.Ctx, id string) (*custody.Slot, error) {
	res := &custody.Slot{}
	if err := r.q.FindOne(c, domain.TableCustodySlots, bson.M{"_id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (r *slotRepo) Create(c ctx.Ctx, slot *custody.Slot) error {
	if err := r.q.Insert(c, domain.TableCustodySlots, slot); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"slot": slot,
			"err":  err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *slotRepo) Update(c ctx.Ctx, id string, patchable *custody.SlotPatchable) error {
	if err := r.q.Patch(c, domain.TableCustodySlots, bson.M{"_id": id}, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":        id,
			"patchable": patchable,
			"err":       err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
