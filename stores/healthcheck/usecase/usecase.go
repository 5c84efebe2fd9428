package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/metrics"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
)

var met = metrics.New("healthcheck")

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	if err := im.repo.PingDB(context); err != nil {
		met.BumpSum("fail", 1, "dep", "mongo")
		return xerrors.Errorf("mongo: %w", err)
	}
	if err := im.repo.PingCache(context); err != nil {
		met.BumpSum("fail", 1, "dep", "redis")
		return xerrors.Errorf("redis: %w", err)
	}
	return nil
}
