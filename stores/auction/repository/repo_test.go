package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/custody"
	"github.com/x-xyz/goauction/service/query"
)

const (
	t0    = int64(1650000000)
	owner = domain.Address("0x00000000000000000000000000000000000000aa")
	buyer = domain.Address("0x00000000000000000000000000000000000000bb")
)

type auctionRepoSuite struct {
	suite.Suite

	im       *repo
	activity *activityRepo
	query    query.Mongo
}

func TestAuctionRepoSuite(t *testing.T) {
	suite.Run(t, new(auctionRepoSuite))
}

func (s *auctionRepoSuite) SetupSuite() {
	cfg, ok := mongoclient.TestConfig("test")
	if !ok {
		s.T().Skip("MONGO_TEST_URI not set")
	}
	q := query.New(mongoclient.MustConnectMongoClient(cfg), false)
	s.query = q
	s.im = NewRepo(q).(*repo)
	s.activity = NewActivityRepo(q).(*activityRepo)
}

func (s *auctionRepoSuite) SetupTest() {
	c := ctx.Background()
	s.query.RemoveAll(c, domain.TableAuctions, bson.M{})
	s.query.RemoveAll(c, domain.TableAuctionActivities, bson.M{})
}

func provisioned(assetId domain.AssetId) *auction.Auction {
	now := time.Unix(t0-3600, 0).UTC()
	return &auction.Auction{
		AssetId:    assetId,
		CustodyRef: custody.SlotIdFor(assetId),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func openReq(name string, start int64) auction.OpenRequest {
	return auction.OpenRequest{
		Terms: auction.Terms{
			StartTime:            start,
			StartPrice:           decimal.RequireFromString("10.5"),
			FloorPrice:           decimal.NewFromInt(5),
			DecayStep:            decimal.RequireFromString("0.25"),
			DecayIntervalMinutes: 10,
		},
		Name: name,
	}
}

func (s *auctionRepoSuite) open(assetId domain.AssetId, name string, start int64) *auction.Auction {
	c := ctx.Background()
	a := provisioned(assetId)
	s.Require().NoError(s.im.Create(c, a))
	t, err := a.BeginOpen(owner, openReq(name, start), time.Unix(start, 0).UTC(), auction.DefaultMinorUnitsPerUnit)
	s.Require().NoError(err)
	s.Require().NoError(s.im.Commit(c, t))
	next := t.Next()
	return &next
}

func (s *auctionRepoSuite) TestCreate() {
	c := ctx.Background()
	a := provisioned("nft:1")
	s.Require().NoError(s.im.Create(c, a))
	s.Equal(domain.ErrConflict, s.im.Create(c, a))

	res, err := s.im.FindOne(c, "nft:1")
	s.Require().NoError(err)
	s.Equal(auction.StateNone, res.State)
	s.Equal(a.CustodyRef, res.CustodyRef)

	_, err = s.im.FindOne(c, "nft:missing")
	s.Equal(domain.ErrNotFound, err)
}

func (s *auctionRepoSuite) TestCommitRoundTripsDecimals() {
	c := ctx.Background()
	a := s.open("nft:1", "Genesis", t0)

	t, err := a.BeginSettle(buyer, owner, time.Unix(t0+600, 0).UTC(), auction.DefaultMinorUnitsPerUnit)
	s.Require().NoError(err)
	s.Require().NoError(s.im.Commit(c, t))

	res, err := s.im.FindOne(c, "nft:1")
	s.Require().NoError(err)
	s.Equal(auction.StateClosed, res.State)
	s.True(decimal.RequireFromString("10.25").Equal(*res.SettledPrice))
	s.True(decimal.RequireFromString("0.25").Equal(res.DecayStep))
	s.Equal(buyer, res.Buyer)
	s.Equal(int32(10), res.DecayIntervalMinutes)
}

func (s *auctionRepoSuite) TestCommitLosesRace() {
	c := ctx.Background()
	a := s.open("nft:1", "Genesis", t0)

	settle, err := a.BeginSettle(buyer, owner, time.Unix(t0+600, 0).UTC(), auction.DefaultMinorUnitsPerUnit)
	s.Require().NoError(err)
	a.FloorPrice = decimal.RequireFromString("10.5")
	reclaim, err := a.BeginReclaim(owner, time.Unix(t0+600, 0).UTC())
	s.Require().NoError(err)

	s.Require().NoError(s.im.Commit(c, settle))
	s.Equal(auction.ErrInvalidAuctionState, s.im.Commit(c, reclaim))

	res, err := s.im.FindOne(c, "nft:1")
	s.Require().NoError(err)
	s.Equal(auction.StateClosed, res.State)
}

func (s *auctionRepoSuite) TestFindAll() {
	c := ctx.Background()
	s.open("nft:1", "Genesis Ape", t0)
	s.open("nft:2", "second", t0+100)
	s.open("nft:3", "GENESIS punk", t0+200)
	s.Require().NoError(s.im.Create(c, provisioned("nft:4")))

	res, err := s.im.FindAll(c, auction.WithName("genesis"))
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(domain.AssetId("nft:3"), res[0].AssetId)
	s.Equal(domain.AssetId("nft:1"), res[1].AssetId)

	res, err = s.im.FindAll(c, auction.WithState(auction.StateCreated), auction.WithStartedBefore(t0+100), auction.WithPagination(0, 1))
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(domain.AssetId("nft:2"), res[0].AssetId)

	n, err := s.im.Count(c, auction.WithState(auction.StateCreated))
	s.Require().NoError(err)
	s.Equal(3, n)

	// regex meta characters are matched literally
	n, err = s.im.Count(c, auction.WithName(".*"))
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *auctionRepoSuite) TestActivities() {
	c := ctx.Background()
	a := s.open("nft:1", "Genesis", t0)
	t, err := a.BeginSettle(buyer, owner, time.Unix(t0+600, 0).UTC(), auction.DefaultMinorUnitsPerUnit)
	s.Require().NoError(err)

	s.Require().NoError(s.activity.Insert(c, t.Activity("a1")))
	s.Require().NoError(s.activity.Insert(c, &auction.Activity{Id: "a0", AssetId: "nft:1", Type: auction.KindOpen, Account: owner, Time: time.Unix(t0, 0)}))

	res, err := s.activity.FindAll(c, "nft:1", 0, 10)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(auction.KindSettle, res[0].Type)
	s.True(decimal.RequireFromString("10.25").Equal(*res[0].Price))
	s.Equal(int64(9_737_500_000), res[0].OwnerAmount)
	s.Equal(int64(512_500_000), res[0].FeeAmount)
	s.Nil(res[1].Price)
}
