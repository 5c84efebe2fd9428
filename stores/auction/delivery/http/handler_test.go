package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/auction/mocks"
	"github.com/x-xyz/goauction/domain/ledger"
)

const (
	assetId = domain.AssetId("nft:1")
	caller  = domain.Address("0x00000000000000000000000000000000000000aa")
	dev     = "0x00000000000000000000000000000000000000dd"
)

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Status string          `json:"status"`
}

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	uc *mocks.UseCase
	h  *handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(goValidator.New())
	s.uc = &mocks.UseCase{}
	s.h = &handler{s.uc, auction.DefaultPageSize}
}

func (s *handlerSuite) TearDownTest() {
	s.uc.AssertExpectations(s.T())
}

func (s *handlerSuite) call(method, target, body string, h echo.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetParamNames("assetId")
	c.SetParamValues(assetId.String())
	c.Set("ctx", ctx.Background())
	c.Set("address", caller)

	s.Require().NoError(h(c))

	env := envelope{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func (s *handlerSuite) TestOpen() {
	s.uc.On("Open", mock.Anything, assetId, caller, mock.MatchedBy(func(req auction.OpenRequest) bool {
		return req.StartTime == 1650000000 &&
			req.StartPrice.Equal(decimal.RequireFromString("10.5")) &&
			req.FloorPrice.Equal(decimal.NewFromInt(5)) &&
			req.DecayIntervalMinutes == 10 &&
			req.Name == "Genesis"
	})).Return(&auction.Auction{AssetId: assetId, State: auction.StateCreated}, nil).Once()

	body := `{"startTime":1650000000,"startPrice":"10.5","floorPrice":"5","decayStep":"1","decayIntervalMinutes":10,"name":"Genesis"}`
	rec, env := s.call(http.MethodPost, "/auctions/nft:1/open", body, s.h.open)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("success", env.Status)

	res := auction.Auction{}
	s.Require().NoError(json.Unmarshal(env.Data, &res))
	s.Equal(auction.StateCreated, res.State)
}

func (s *handlerSuite) TestOpenRejected() {
	rec, _ := s.call(http.MethodPost, "/auctions/nft:1/open", `{"startPrice":"-1","decayIntervalMinutes":10}`, s.h.open)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, _ = s.call(http.MethodPost, "/auctions/nft:1/open", `{"startPrice":"1","imageUrl":"not a url"}`, s.h.open)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.uc.On("Open", mock.Anything, assetId, caller, mock.Anything).Return(nil, auction.ErrInvalidAuctionState).Once()
	rec, env := s.call(http.MethodPost, "/auctions/nft:1/open", `{"startPrice":"1","decayIntervalMinutes":1}`, s.h.open)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("fail", env.Status)
}

func (s *handlerSuite) TestOpenUnpayablePrice() {
	s.uc.On("Open", mock.Anything, assetId, caller, mock.Anything).Return(nil, auction.ErrPriceOutOfRange).Once()
	rec, env := s.call(http.MethodPost, "/auctions/nft:1/open", `{"startPrice":"20000000000","floorPrice":"1","decayIntervalMinutes":1}`, s.h.open)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("fail", env.Status)
}

func (s *handlerSuite) TestSettle() {
	s.uc.On("Settle", mock.Anything, assetId, caller, domain.Address(dev)).Return(&auction.Auction{AssetId: assetId, State: auction.StateClosed}, nil).Once()
	rec, _ := s.call(http.MethodPost, "/auctions/nft:1/settle", `{"feeRecipient":"`+dev+`"}`, s.h.settle)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.call(http.MethodPost, "/auctions/nft:1/settle", `{"feeRecipient":"0x123"}`, s.h.settle)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestSettleErrors() {
	cases := []struct {
		err    error
		status int
	}{
		{auction.ErrAuctionDidNotStart, http.StatusPreconditionFailed},
		{auction.ErrInvalidAuctionState, http.StatusConflict},
		{ledger.ErrInsufficientBalance, http.StatusPaymentRequired},
		{domain.ErrNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		s.uc.On("Settle", mock.Anything, assetId, caller, domain.Address(dev)).Return(nil, tc.err).Once()
		rec, _ := s.call(http.MethodPost, "/auctions/nft:1/settle", `{"feeRecipient":"`+dev+`"}`, s.h.settle)
		s.Equal(tc.status, rec.Code, tc.err.Error())
	}
}

func (s *handlerSuite) TestReclaim() {
	s.uc.On("Reclaim", mock.Anything, assetId, caller).Return(nil, auction.ErrAuctionDidNotReachMinPrice).Once()
	rec, _ := s.call(http.MethodPost, "/auctions/nft:1/reclaim", "", s.h.reclaim)
	s.Equal(http.StatusPreconditionFailed, rec.Code)

	s.uc.On("Reclaim", mock.Anything, assetId, caller).Return(nil, auction.ErrNotAuctionOwner).Once()
	rec, _ = s.call(http.MethodPost, "/auctions/nft:1/reclaim", "", s.h.reclaim)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *handlerSuite) TestPrice() {
	s.uc.On("Quote", mock.Anything, assetId, time.Unix(1650000600, 0)).Return(&auction.Quote{Price: decimal.NewFromInt(9), At: 1650000600}, nil).Once()
	rec, env := s.call(http.MethodGet, "/auctions/nft:1/price?at=1650000600", "", s.h.price)
	s.Equal(http.StatusOK, rec.Code)

	q := auction.Quote{}
	s.Require().NoError(json.Unmarshal(env.Data, &q))
	s.True(decimal.NewFromInt(9).Equal(q.Price))

	s.uc.On("Quote", mock.Anything, assetId, time.Time{}).Return(&auction.Quote{}, nil).Once()
	rec, _ = s.call(http.MethodGet, "/auctions/nft:1/price", "", s.h.price)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.call(http.MethodGet, "/auctions/nft:1/price?at=soon", "", s.h.price)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestList() {
	s.uc.On("List", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]*auction.View{{Auction: auction.Auction{AssetId: assetId}}}, 1, nil).Once()
	rec, env := s.call(http.MethodGet, "/auctions?skip=20&name=gen&state=created", "", s.h.list)
	s.Equal(http.StatusOK, rec.Code)

	res := listResult{}
	s.Require().NoError(json.Unmarshal(env.Data, &res))
	s.Equal(1, res.Count)
	s.Len(res.Items, 1)

	rec, _ = s.call(http.MethodGet, "/auctions?state=pending", "", s.h.list)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, _ = s.call(http.MethodGet, "/auctions?skip=-1", "", s.h.list)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestActivities() {
	s.uc.On("Activities", mock.Anything, assetId, 0, 5).Return([]*auction.Activity{}, nil).Once()
	rec, _ := s.call(http.MethodGet, "/auctions/nft:1/activities?limit=5", "", s.h.getActivities)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestProvision() {
	s.uc.On("Provision", mock.Anything, assetId).Return(&auction.Auction{AssetId: assetId}, nil).Once()
	rec, _ := s.call(http.MethodPost, "/auctions/nft:1/provision", "", s.h.provision)
	s.Equal(http.StatusCreated, rec.Code)

	s.uc.On("Provision", mock.Anything, assetId).Return(nil, domain.ErrConflict).Once()
	rec, _ = s.call(http.MethodPost, "/auctions/nft:1/provision", "", s.h.provision)
	s.Equal(http.StatusConflict, rec.Code)
}
