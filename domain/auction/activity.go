package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// Activity is the audit entry of one committed transition.
type Activity struct {
	Id          string           `json:"id"`
	AssetId     domain.AssetId   `json:"assetId"`
	Type        TransitionKind   `json:"type"`
	Account     domain.Address   `json:"account"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	OwnerAmount int64            `json:"ownerAmount,omitempty"`
	FeeAmount   int64            `json:"feeAmount,omitempty"`
	Time        time.Time        `json:"time"`
}

func (t *Transition) Activity(id string) *Activity {
	act := &Activity{
		Id:      id,
		AssetId: t.next.AssetId,
		Type:    t.kind,
		Account: t.account,
		Time:    t.at,
	}
	if t.kind == KindSettle {
		price := t.split.Price
		act.Price = &price
		act.OwnerAmount = t.split.OwnerAmount
		act.FeeAmount = t.split.FeeAmount
	}
	return act
}

type ActivityRepo interface {
	Insert(ctx ctx.Ctx, activity *Activity) error
	FindAll(ctx ctx.Ctx, assetId domain.AssetId, offset, limit int) ([]*Activity, error)
}
