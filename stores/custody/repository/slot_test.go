package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/ptr"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/custody"
	"github.com/x-xyz/goauction/service/query"
)

type slotRepoSuite struct {
	suite.Suite

	im    *slotRepo
	query query.Mongo
}

func TestSlotRepoSuite(t *testing.T) {
	suite.Run(t, new(slotRepoSuite))
}

func (s *slotRepoSuite) SetupSuite() {
	cfg, ok := mongoclient.TestConfig("test")
	if !ok {
		s.T().Skip("MONGO_TEST_URI not set")
	}
	q := query.New(mongoclient.MustConnectMongoClient(cfg), false)
	s.query = q
	s.im = NewSlotRepo(q).(*slotRepo)
}

func (s *slotRepoSuite) SetupTest() {
	s.query.RemoveAll(ctx.Background(), domain.TableCustodySlots, bson.M{})
}

func (s *slotRepoSuite) TestCreateFindUpdate() {
	c := ctx.Background()
	now := time.Unix(1650000000, 0).UTC()
	slot := &custody.Slot{
		Id:        custody.SlotIdFor("nft:1"),
		AssetId:   "nft:1",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.im.Create(c, slot))
	s.Equal(domain.ErrConflict, s.im.Create(c, slot))

	owner := domain.Address("0xowner")
	s.Require().NoError(s.im.Update(c, slot.Id, &custody.SlotPatchable{
		Owner:   &owner,
		Deposit: ptr.Int64(20),
		Units:   ptr.Int64(1),
	}))

	res, err := s.im.FindOne(c, slot.Id)
	s.Require().NoError(err)
	s.Equal(owner, res.Owner)
	s.Equal(int64(20), res.Deposit)
	s.Equal(int64(1), res.Units)
	s.False(res.Closed)
	s.Equal(now, res.CreatedAt.UTC())

	// zero values are written, nil fields are left alone
	s.Require().NoError(s.im.Update(c, slot.Id, &custody.SlotPatchable{
		Units:  ptr.Int64(0),
		Closed: ptr.Bool(true),
	}))
	res, err = s.im.FindOne(c, slot.Id)
	s.Require().NoError(err)
	s.Equal(int64(0), res.Units)
	s.Equal(int64(20), res.Deposit)
	s.True(res.Closed)

	_, err = s.im.FindOne(c, "escrow:missing")
	s.Equal(domain.ErrNotFound, err)
	s.Equal(domain.ErrNotFound, s.im.Update(c, "escrow:missing", &custody.SlotPatchable{Closed: ptr.Bool(true)}))
}
