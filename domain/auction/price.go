package auction

import (
	"time"

	"github.com/shopspring/decimal"
)

const secondsPerMinute = 60

// Terms are the sale parameters fixed by Open.
type Terms struct {
	// StartTime is unix seconds, the auction is biddable from this instant on
	StartTime            int64           `json:"startTime"`
	StartPrice           decimal.Decimal `json:"startPrice"`
	FloorPrice           decimal.Decimal `json:"floorPrice"`
	DecayStep            decimal.Decimal `json:"decayStep"`
	DecayIntervalMinutes int32           `json:"decayIntervalMinutes"`
}

// CurrentPrice is the price of an auction at unix second `now`.
//
// Elapsed minutes are counted as floor(now/60) - floor(startTime/60), each
// timestamp truncated to its own minute, so a start at 12:00:59 has decayed
// one minute at 12:01:00. The price drops by decayStep once every full
// decayIntervalMinutes and never goes below floorPrice. Callers must ensure
// now >= startTime; earlier instants yield startPrice.
func CurrentPrice(now, startTime int64, startPrice, floorPrice decimal.Decimal, decayIntervalMinutes int32, decayStep decimal.Decimal) decimal.Decimal {
	steps := decaySteps(now, startTime, decayIntervalMinutes)
	price := startPrice.Sub(decayStep.Mul(decimal.NewFromInt(steps)))
	if price.LessThan(floorPrice) {
		return floorPrice
	}
	return price
}

func decaySteps(now, startTime int64, decayIntervalMinutes int32) int64 {
	if decayIntervalMinutes <= 0 {
		return 0
	}
	elapsed := floorDiv(now, secondsPerMinute) - floorDiv(startTime, secondsPerMinute)
	if elapsed <= 0 {
		return 0
	}
	return elapsed / int64(decayIntervalMinutes)
}

// floorDiv rounds toward negative infinity, unlike Go's `/`
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (t Terms) PriceAt(now int64) decimal.Decimal {
	return CurrentPrice(now, t.StartTime, t.StartPrice, t.FloorPrice, t.DecayIntervalMinutes, t.DecayStep)
}

func (t Terms) Started(now int64) bool {
	return now >= t.StartTime
}

// AtFloor reports whether the price at `now` can not decay any further
func (t Terms) AtFloor(now int64) bool {
	return !t.PriceAt(now).GreaterThan(t.FloorPrice)
}

// NextDecayAt returns the unix second of the next price change after `now`,
// and false once the floor is reached or the price never decays.
func (t Terms) NextDecayAt(now int64) (int64, bool) {
	if t.DecayIntervalMinutes <= 0 || !t.DecayStep.IsPositive() || t.AtFloor(now) {
		return 0, false
	}
	startMinute := floorDiv(t.StartTime, secondsPerMinute)
	steps := decaySteps(now, t.StartTime, t.DecayIntervalMinutes)
	next := startMinute + (steps+1)*int64(t.DecayIntervalMinutes)
	return next * secondsPerMinute, true
}

// Quote is a price observation at one instant
type Quote struct {
	Price       decimal.Decimal `json:"price"`
	At          int64           `json:"at"`
	Started     bool            `json:"started"`
	AtFloor     bool            `json:"atFloor"`
	NextDecayAt int64           `json:"nextDecayAt,omitempty"`
}

func (t Terms) QuoteAt(at time.Time) Quote {
	now := at.Unix()
	q := Quote{
		Price:   t.PriceAt(now),
		At:      now,
		Started: t.Started(now),
		AtFloor: t.AtFloor(now),
	}
	if next, ok := t.NextDecayAt(now); ok {
		q.NextDecayAt = next
	}
	return q
}
