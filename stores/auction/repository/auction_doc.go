package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
)

// decimals are stored as their exact string form
type auctionDoc struct {
	AssetId              domain.AssetId `bson:"_id"`
	Owner                domain.Address `bson:"owner"`
	CustodyRef           string         `bson:"custodyRef"`
	StartTime            int64          `bson:"startTime"`
	StartPrice           string         `bson:"startPrice"`
	FloorPrice           string         `bson:"floorPrice"`
	DecayStep            string         `bson:"decayStep"`
	DecayIntervalMinutes int32          `bson:"decayIntervalMinutes"`
	State                int32          `bson:"state"`
	SettledPrice         *string        `bson:"settledPrice"`
	Buyer                domain.Address `bson:"buyer"`
	FeeRecipient         domain.Address `bson:"feeRecipient"`
	Name                 string         `bson:"name"`
	ImageUrl             string         `bson:"imageUrl"`
	OpenedAt             *time.Time     `bson:"openedAt"`
	ClosedAt             *time.Time     `bson:"closedAt"`
	CreatedAt            time.Time      `bson:"createdAt"`
	UpdatedAt            time.Time      `bson:"updatedAt"`
}

func toDoc(a *auction.Auction) *auctionDoc {
	doc := &auctionDoc{
		AssetId:              a.AssetId,
		Owner:                a.Owner,
		CustodyRef:           a.CustodyRef,
		StartTime:            a.StartTime,
		StartPrice:           a.StartPrice.String(),
		FloorPrice:           a.FloorPrice.String(),
		DecayStep:            a.DecayStep.String(),
		DecayIntervalMinutes: a.DecayIntervalMinutes,
		State:                int32(a.State),
		Buyer:                a.Buyer,
		FeeRecipient:         a.FeeRecipient,
		Name:                 a.Name,
		ImageUrl:             a.ImageUrl,
		OpenedAt:             a.OpenedAt,
		ClosedAt:             a.ClosedAt,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
	if a.SettledPrice != nil {
		p := a.SettledPrice.String()
		doc.SettledPrice = &p
	}
	return doc
}

func (d *auctionDoc) toAuction() (*auction.Auction, error) {
	startPrice, err := decimal.NewFromString(d.StartPrice)
	if err != nil {
		return nil, err
	}
	floorPrice, err := decimal.NewFromString(d.FloorPrice)
	if err != nil {
		return nil, err
	}
	decayStep, err := decimal.NewFromString(d.DecayStep)
	if err != nil {
		return nil, err
	}
	a := &auction.Auction{
		AssetId:    d.AssetId,
		Owner:      d.Owner,
		CustodyRef: d.CustodyRef,
		Terms: auction.Terms{
			StartTime:            d.StartTime,
			StartPrice:           startPrice,
			FloorPrice:           floorPrice,
			DecayStep:            decayStep,
			DecayIntervalMinutes: d.DecayIntervalMinutes,
		},
		State:        auction.State(d.State),
		Buyer:        d.Buyer,
		FeeRecipient: d.FeeRecipient,
		Name:         d.Name,
		ImageUrl:     d.ImageUrl,
		OpenedAt:     d.OpenedAt,
		ClosedAt:     d.ClosedAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.SettledPrice != nil {
		p, err := decimal.NewFromString(*d.SettledPrice)
		if err != nil {
			return nil, err
		}
		a.SettledPrice = &p
	}
	return a, nil
}

// setFields is everything a transition may change; _id and createdAt never move
func (d *auctionDoc) setFields() bson.M {
	return bson.M{
		"owner":                d.Owner,
		"startTime":            d.StartTime,
		"startPrice":           d.StartPrice,
		"floorPrice":           d.FloorPrice,
		"decayStep":            d.DecayStep,
		"decayIntervalMinutes": d.DecayIntervalMinutes,
		"state":                d.State,
		"settledPrice":         d.SettledPrice,
		"buyer":                d.Buyer,
		"feeRecipient":         d.FeeRecipient,
		"name":                 d.Name,
		"imageUrl":             d.ImageUrl,
		"openedAt":             d.OpenedAt,
		"closedAt":             d.ClosedAt,
		"updatedAt":            d.UpdatedAt,
	}
}

type activityDoc struct {
	Id          string                 `bson:"_id"`
	AssetId     domain.AssetId         `bson:"assetId"`
	Type        auction.TransitionKind `bson:"type"`
	Account     domain.Address         `bson:"account"`
	Price       *string                `bson:"price,omitempty"`
	OwnerAmount int64                  `bson:"ownerAmount"`
	FeeAmount   int64                  `bson:"feeAmount"`
	Time        time.Time              `bson:"time"`
}

func toActivityDoc(a *auction.Activity) *activityDoc {
	doc := &activityDoc{
		Id:          a.Id,
		AssetId:     a.AssetId,
		Type:        a.Type,
		Account:     a.Account,
		OwnerAmount: a.OwnerAmount,
		FeeAmount:   a.FeeAmount,
		Time:        a.Time,
	}
	if a.Price != nil {
		p := a.Price.String()
		doc.Price = &p
	}
	return doc
}

func (d *activityDoc) toActivity() (*auction.Activity, error) {
	a := &auction.Activity{
		Id:          d.Id,
		AssetId:     d.AssetId,
		Type:        d.Type,
		Account:     d.Account,
		OwnerAmount: d.OwnerAmount,
		FeeAmount:   d.FeeAmount,
		Time:        d.Time,
	}
	if d.Price != nil {
		p, err := decimal.NewFromString(*d.Price)
		if err != nil {
			return nil, err
		}
		a.Price = &p
	}
	return a, nil
}
