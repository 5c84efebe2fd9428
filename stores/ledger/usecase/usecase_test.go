package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/domain/ledger/mocks"
	domainMocks "github.com/x-xyz/goauction/domain/mocks"
)

var mockCtx = ctx.Background()

type ledgerUsecaseSuite struct {
	suite.Suite

	repo *mocks.Repo
	tx   *domainMocks.Transactor
	im   *impl
}

func TestLedgerUsecaseSuite(t *testing.T) {
	suite.Run(t, new(ledgerUsecaseSuite))
}

func (s *ledgerUsecaseSuite) SetupTest() {
	s.repo = &mocks.Repo{}
	s.tx = &domainMocks.Transactor{}
	s.im = New(s.repo, s.tx).(*impl)
}

func (s *ledgerUsecaseSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.tx.AssertExpectations(s.T())
}

func (s *ledgerUsecaseSuite) TestTransferCurrency() {
	s.repo.On("Debit", mockCtx, ledger.CurrencyId("0xbuyer"), int64(95)).Return(nil).Once()
	s.repo.On("Credit", mockCtx, ledger.CurrencyId("0xowner"), int64(95)).Return(nil).Once()
	s.repo.On("InsertEntry", mockCtx, mock.MatchedBy(func(e *ledger.Entry) bool {
		return e.From == "0xbuyer" && e.To == "0xowner" && e.Amount == 95 &&
			e.Kind == ledger.KindCurrency && e.Memo == "settle" && e.Id != ""
	})).Return(nil).Once()

	s.NoError(s.im.TransferCurrency(mockCtx, "0xbuyer", "0xowner", 95, "settle"))
}

func (s *ledgerUsecaseSuite) TestTransferInsufficient() {
	s.repo.On("Debit", mockCtx, ledger.CurrencyId("0xbuyer"), int64(10)).Return(domain.ErrNotFound).Once()
	s.Equal(ledger.ErrInsufficientBalance, s.im.TransferCurrency(mockCtx, "0xbuyer", "0xowner", 10, "settle"))

	s.repo.On("Debit", mockCtx, ledger.AssetId("0xa", "nft:1"), int64(1)).Return(domain.ErrNotFound).Once()
	s.Equal(ledger.ErrInsufficientAsset, s.im.TransferAsset(mockCtx, "0xa", "escrow:nft:1", "nft:1", 1, "open"))
}

func (s *ledgerUsecaseSuite) TestTransferAmountGuards() {
	s.NoError(s.im.TransferCurrency(mockCtx, "0xa", "0xb", 0, "noop"))
	s.Equal(domain.ErrBadParamInput, s.im.TransferCurrency(mockCtx, "0xa", "0xb", -1, "neg"))
	s.Equal(domain.ErrBadParamInput, s.im.TransferAsset(mockCtx, "0xa", "0xb", " ", 1, "empty"))
}

func (s *ledgerUsecaseSuite) TestTransferCreditFails() {
	boom := errors.New("boom")
	s.repo.On("Debit", mockCtx, ledger.AssetId("escrow:nft:1", "nft:1"), int64(1)).Return(nil).Once()
	s.repo.On("Credit", mockCtx, ledger.AssetId("0xb", "nft:1"), int64(1)).Return(boom).Once()

	err := s.im.TransferAsset(mockCtx, "escrow:nft:1", "0xb", "nft:1", 1, "settle")
	s.True(errors.Is(err, boom))
}

func (s *ledgerUsecaseSuite) TestMint() {
	s.tx.PassThrough().Once()
	s.repo.On("Credit", mockCtx, ledger.AssetId("0xa", "nft:1"), int64(1)).Return(nil).Once()
	s.repo.On("InsertEntry", mockCtx, mock.MatchedBy(func(e *ledger.Entry) bool {
		return e.From == MintHolder && e.To == "0xa" && e.AssetId == "nft:1" && e.Kind == ledger.KindAsset
	})).Return(nil).Once()

	s.NoError(s.im.Mint(mockCtx, "0xa", "nft:1"))
	s.Equal(domain.ErrBadParamInput, s.im.Mint(mockCtx, "0xa", ""))
}

func (s *ledgerUsecaseSuite) TestCredit() {
	s.tx.PassThrough().Once()
	s.repo.On("Credit", mockCtx, ledger.CurrencyId("0xa"), int64(500)).Return(nil).Once()
	s.repo.On("InsertEntry", mockCtx, mock.Anything).Return(nil).Once()

	s.NoError(s.im.Credit(mockCtx, "0xa", 500))
	s.Equal(domain.ErrBadParamInput, s.im.Credit(mockCtx, "0xa", 0))
}
