package repository

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/service/query"
)

type ledgerRepoSuite struct {
	suite.Suite

	im    *repo
	query query.Mongo
}

func TestLedgerRepoSuite(t *testing.T) {
	suite.Run(t, new(ledgerRepoSuite))
}

func (s *ledgerRepoSuite) SetupSuite() {
	cfg, ok := mongoclient.TestConfig("test")
	if !ok {
		s.T().Skip("MONGO_TEST_URI not set")
	}
	q := query.New(mongoclient.MustConnectMongoClient(cfg), false)
	s.query = q
	s.im = NewRepo(q).(*repo)
}

func (s *ledgerRepoSuite) SetupTest() {
	c := ctx.Background()
	s.query.RemoveAll(c, domain.TableLedgerBalances, bson.M{})
	s.query.RemoveAll(c, domain.TableLedgerJournal, bson.M{})
}

func (s *ledgerRepoSuite) TestCreditThenDebit() {
	c := ctx.Background()
	id := ledger.CurrencyId("0xabc")

	s.Equal(domain.ErrNotFound, s.im.Debit(c, id, 1))

	s.Require().NoError(s.im.Credit(c, id, 100))
	s.Require().NoError(s.im.Credit(c, id, 50))
	s.Require().NoError(s.im.Debit(c, id, 120))
	s.Equal(domain.ErrNotFound, s.im.Debit(c, id, 31))
	s.Require().NoError(s.im.Debit(c, id, 30))

	res, err := s.im.FindAll(c, "0xabc")
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Equal(int64(0), res[0].Amount)
	s.Equal(ledger.KindCurrency, res[0].Kind)
}

func (s *ledgerRepoSuite) TestFindAllByHolder() {
	c := ctx.Background()
	s.Require().NoError(s.im.Credit(c, ledger.CurrencyId("0xabc"), 10))
	s.Require().NoError(s.im.Credit(c, ledger.AssetId("0xabc", "nft:1"), 1))
	s.Require().NoError(s.im.Credit(c, ledger.AssetId("0xdef", "nft:2"), 1))

	res, err := s.im.FindAll(c, "0xabc")
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(ledger.KindAsset, res[0].Kind)
	s.Equal(domain.AssetId("nft:1"), res[0].AssetId)
	s.Equal(ledger.KindCurrency, res[1].Kind)
}

func (s *ledgerRepoSuite) TestInsertEntry() {
	c := ctx.Background()
	e := &ledger.Entry{Id: "e1", From: "0xabc", To: "0xdef", Kind: ledger.KindCurrency, Amount: 5}
	s.Require().NoError(s.im.InsertEntry(c, e))
	s.Equal(domain.ErrConflict, s.im.InsertEntry(c, e))
}
