package ens

import (
	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type ENS interface {
	// ReverseResolve returns the primary ens name of address, "" when it has none
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
	// DisplayName is the ens name when resolvable, the address otherwise
	DisplayName(ctx ctx.Ctx, address domain.Address) string
}

// None resolves no names, used when no ethereum rpc is configured
type None struct{}

func (None) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	return "", nil
}

func (None) DisplayName(ctx ctx.Ctx, address domain.Address) string {
	return address.ToLowerStr()
}
