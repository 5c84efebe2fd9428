package auction

import (
	"errors"

	"github.com/shopspring/decimal"
)

const DefaultMinorUnitsPerUnit int64 = 1_000_000_000

var (
	OwnerShare = decimal.RequireFromString("0.95")
	FeeShare   = decimal.RequireFromString("0.05")
)

var ErrPriceOutOfRange = errors.New("price out of range")

// Split is how a settlement price is paid out, in minor currency units.
type Split struct {
	Price       decimal.Decimal `json:"price"`
	OwnerAmount int64           `json:"ownerAmount"`
	FeeAmount   int64           `json:"feeAmount"`
}

// ToMinor converts a decimal currency amount to minor units, truncating any
// fraction of a minor unit. Negative amounts and amounts beyond int64 give
// ErrPriceOutOfRange.
func ToMinor(amount decimal.Decimal, minorUnitsPerUnit int64) (int64, error) {
	if amount.IsNegative() {
		return 0, ErrPriceOutOfRange
	}
	scaled := amount.Mul(decimal.NewFromInt(minorUnitsPerUnit)).Truncate(0).BigInt()
	if !scaled.IsInt64() {
		return 0, ErrPriceOutOfRange
	}
	return scaled.Int64(), nil
}

// SplitPrice converts each share on its own, so the two legs may sum to one
// minor unit less than the full price.
func SplitPrice(price decimal.Decimal, minorUnitsPerUnit int64) (Split, error) {
	// the full price bounds both legs
	if _, err := ToMinor(price, minorUnitsPerUnit); err != nil {
		return Split{}, err
	}
	owner, err := ToMinor(price.Mul(OwnerShare), minorUnitsPerUnit)
	if err != nil {
		return Split{}, err
	}
	fee, err := ToMinor(price.Mul(FeeShare), minorUnitsPerUnit)
	if err != nil {
		return Split{}, err
	}
	return Split{Price: price, OwnerAmount: owner, FeeAmount: fee}, nil
}

// CheckPayable rejects terms whose highest price can not be paid in minor units.
func (t Terms) CheckPayable(minorUnitsPerUnit int64) error {
	if t.StartPrice.IsNegative() || t.FloorPrice.IsNegative() || t.DecayStep.IsNegative() {
		return ErrPriceOutOfRange
	}
	_, err := ToMinor(decimal.Max(t.StartPrice, t.FloorPrice), minorUnitsPerUnit)
	return err
}
