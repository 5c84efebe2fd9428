package keeper

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	auctionMocks "github.com/x-xyz/goauction/domain/auction/mocks"
	redisMocks "github.com/x-xyz/goauction/service/redis/mocks"
)

var mockCtx = bCtx.Background()

func view(assetId domain.AssetId, started, atFloor bool) *auction.View {
	return &auction.View{
		Auction: auction.Auction{
			AssetId: assetId,
			State:   auction.StateCreated,
			Terms:   auction.Terms{StartTime: 1650000000, FloorPrice: decimal.NewFromInt(5)},
		},
		Quote: &auction.Quote{Started: started, AtFloor: atFloor},
	}
}

type keeperSuite struct {
	suite.Suite

	auction  *auctionMocks.UseCase
	redis    *redisMocks.Service
	notifier *auctionMocks.Notifier
	k        *Keeper
}

func TestKeeperSuite(t *testing.T) {
	suite.Run(t, new(keeperSuite))
}

func (s *keeperSuite) SetupTest() {
	s.auction = &auctionMocks.UseCase{}
	s.redis = &redisMocks.Service{}
	s.notifier = &auctionMocks.Notifier{}
	s.k = New(&Cfg{
		Auction:     s.auction,
		Redis:       s.redis,
		Notifier:    s.notifier,
		Interval:    time.Minute,
		PageSize:    2,
		Concurrency: 2,
	})
}

func (s *keeperSuite) TearDownTest() {
	s.auction.AssertExpectations(s.T())
	s.redis.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *keeperSuite) TestSweep() {
	a, b, c := view("a", true, false), view("b", true, true), view("c", true, true)
	s.auction.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.View{a, b}, 3, nil).Once()
	s.auction.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.View{c}, 3, nil).Once()
	for _, v := range []*auction.View{a, b, c} {
		s.auction.On("Get", mock.Anything, v.AssetId).Return(v, nil).Once()
	}
	s.redis.On("SetNX", mock.Anything, "floorNotice:b:1650000000", []byte("1"), floorNoticeTtl).Return(true, nil).Once()
	s.redis.On("SetNX", mock.Anything, "floorNotice:c:1650000000", []byte("1"), floorNoticeTtl).Return(false, nil).Once()
	s.notifier.On("FloorReached", mock.Anything, &b.Auction).Return(nil).Once()

	res, err := s.k.sweep(mockCtx)
	s.Require().NoError(err)
	s.Equal(sweepResult{live: 3, reclaimable: 2, announced: 1}, res)
}

func (s *keeperSuite) TestSweepNotStartedIsNotReclaimable() {
	s.auction.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.View{view("a", false, true)}, 1, nil).Once()
	s.auction.On("Get", mock.Anything, domain.AssetId("a")).Return(view("a", false, true), nil).Once()

	res, err := s.k.sweep(mockCtx)
	s.Require().NoError(err)
	s.Equal(sweepResult{live: 1}, res)
}

func (s *keeperSuite) TestSweepSkipsFailedRefresh() {
	s.auction.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.View{view("a", true, true)}, 1, nil).Once()
	s.auction.On("Get", mock.Anything, domain.AssetId("a")).Return(nil, domain.ErrNotFound).Once()

	res, err := s.k.sweep(mockCtx)
	s.Require().NoError(err)
	s.Equal(sweepResult{}, res)
}

func (s *keeperSuite) TestSweepListFailure() {
	s.auction.On("List", mock.Anything, mock.Anything, mock.Anything).Return(nil, 0, errors.New("mongo down")).Once()

	_, err := s.k.sweep(mockCtx)
	s.Error(err)
}

func (s *keeperSuite) TestAnnounceRetriedAfterNotifyFailure() {
	v := view("b", true, true)
	s.redis.On("SetNX", mock.Anything, "floorNotice:b:1650000000", []byte("1"), floorNoticeTtl).Return(true, nil).Once()
	s.notifier.On("FloorReached", mock.Anything, &v.Auction).Return(errors.New("discord down")).Once()
	s.redis.On("Del", mock.Anything, "floorNotice:b:1650000000").Return(1, nil).Once()

	s.False(s.k.announce(mockCtx, v))
}

func (s *keeperSuite) TestStartStopsWithContext() {
	s.auction.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]*auction.View{}, 0, nil)

	c, cancel := bCtx.WithCancel(mockCtx)
	s.k.Start(c)
	time.Sleep(50 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		s.k.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("keeper did not stop")
	}
}
