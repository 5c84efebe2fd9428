package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientAsset   = errors.New("insufficient asset units")
)

type Kind string

const (
	KindCurrency Kind = "currency"
	KindAsset    Kind = "asset"
)

// Balance is what one holder owns of one kind. AssetId is empty for currency.
type Balance struct {
	Holder    domain.Holder  `json:"holder" bson:"holder"`
	Kind      Kind           `json:"kind" bson:"kind"`
	AssetId   domain.AssetId `json:"assetId,omitempty" bson:"assetId"`
	Amount    int64          `json:"amount" bson:"amount"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type BalanceId struct {
	Holder  domain.Holder
	Kind    Kind
	AssetId domain.AssetId
}

func (id BalanceId) String() string {
	return fmt.Sprintf("%s/%s/%s", id.Holder, id.Kind, id.AssetId)
}

func CurrencyId(holder domain.Holder) BalanceId {
	return BalanceId{Holder: holder, Kind: KindCurrency}
}

func AssetId(holder domain.Holder, assetId domain.AssetId) BalanceId {
	return BalanceId{Holder: holder, Kind: KindAsset, AssetId: assetId}
}

// Entry is one journaled movement between two holders
type Entry struct {
	Id      string         `json:"id" bson:"_id"`
	From    domain.Holder  `json:"from" bson:"from"`
	To      domain.Holder  `json:"to" bson:"to"`
	Kind    Kind           `json:"kind" bson:"kind"`
	AssetId domain.AssetId `json:"assetId,omitempty" bson:"assetId"`
	Amount  int64          `json:"amount" bson:"amount"`
	Memo    string         `json:"memo" bson:"memo"`
	Time    time.Time      `json:"time" bson:"time"`
}

type Repo interface {
	// Debit fails with domain.ErrNotFound when the balance is missing or below amount
	Debit(ctx ctx.Ctx, id BalanceId, amount int64) error
	Credit(ctx ctx.Ctx, id BalanceId, amount int64) error
	FindAll(ctx ctx.Ctx, holder domain.Holder) ([]*Balance, error)
	InsertEntry(ctx ctx.Ctx, entry *Entry) error
}

// UseCase moves currency and asset units between holders. Callers that need
// several movements to be atomic run them in one transaction.
type UseCase interface {
	TransferCurrency(ctx ctx.Ctx, from, to domain.Holder, amount int64, memo string) error
	TransferAsset(ctx ctx.Ctx, from, to domain.Holder, assetId domain.AssetId, units int64, memo string) error
	Credit(ctx ctx.Ctx, holder domain.Holder, amount int64) error
	Mint(ctx ctx.Ctx, holder domain.Holder, assetId domain.AssetId) error
	Balances(ctx ctx.Ctx, holder domain.Holder) ([]*Balance, error)
}
