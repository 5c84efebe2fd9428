package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	down := errors.New("connection refused")
	cases := []struct {
		name     string
		dbErr    error
		cacheErr error
		wantErr  error
	}{
		{name: "healthy"},
		{name: "mongo down", dbErr: down, wantErr: down},
		{name: "redis down", cacheErr: down, wantErr: down},
	}

	for _, c := range cases {
		repo := &mocks.HealthCheckRepo{}
		repo.On("PingDB", mock.Anything).Return(c.dbErr)
		repo.On("PingCache", mock.Anything).Return(c.cacheErr)

		err := New(repo).Check(ctx.Background())
		if c.wantErr == nil {
			assert.NoError(t, err, c.name)
		} else {
			assert.True(t, errors.Is(err, c.wantErr), c.name)
		}
	}
}
