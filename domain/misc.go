package domain

import (
	"strings"
)

type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// AssetId identifies the single asset unit an auction sells, e.g. a mint
// address or `collection:tokenId`.
type AssetId string

func (i AssetId) String() string {
	return string(i)
}

func (i AssetId) IsEmpty() bool {
	return len(strings.TrimSpace(string(i))) == 0
}

// Holder is anything able to hold ledger balances: an account address or a
// custody slot id.
type Holder string

func (h Holder) String() string {
	return string(h)
}

// AddressHolder normalizes an address into its ledger holder form
func AddressHolder(a Address) Holder {
	return Holder(a.ToLowerStr())
}
