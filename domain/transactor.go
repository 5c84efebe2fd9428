package domain

import "github.com/x-xyz/goauction/base/ctx"

// Transactor runs fn so that all of its writes commit together or not at all
type Transactor interface {
	RunWithTransaction(ctx ctx.Ctx, fn func(ctx.Ctx) error) error
}
