package auction

import (
	"strings"

	"github.com/x-xyz/goauction/domain"
)

const DefaultPageSize = 20

type FindAllOptions struct {
	Offset *int
	Limit  *int
	Name   *string
	State  *State
	Owner  *domain.Address
	// StartedBefore keeps auctions with startTime <= the given unix second
	StartedBefore *int64
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

// WithName matches auctions whose name contains name, case-insensitively
func WithName(name string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil
		}
		options.Name = &name
		return nil
	}
}

func WithState(state State) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.State = &state
		return nil
	}
}

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

func WithStartedBefore(unix int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.StartedBefore = &unix
		return nil
	}
}
