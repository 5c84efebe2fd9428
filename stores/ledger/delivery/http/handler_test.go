package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/domain/ledger/mocks"
)

const holder = "0x939ae6A4C8dfDBB1f7085189574F0A938013952A"

func serve(t *testing.T, h echo.HandlerFunc, method, body, param string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Validator = validator.NewCustomValidator(goValidator.New())

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("holder")
	c.SetParamValues(param)
	c.Set("ctx", ctx.Background())

	require.NoError(t, h(c))
	return rec
}

func TestGetBalances(t *testing.T) {
	uc := &mocks.UseCase{}
	h := &handler{uc}

	lower := domain.Holder(strings.ToLower(holder))
	uc.On("Balances", mock.Anything, lower).Return([]*ledger.Balance{{Holder: lower, Kind: ledger.KindCurrency, Amount: 5}}, nil).Once()
	rec := serve(t, h.getBalances, http.MethodGet, "", holder)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"amount":5`)

	uc.On("Balances", mock.Anything, domain.Holder("escrow:nft:1")).Return([]*ledger.Balance{}, nil).Once()
	rec = serve(t, h.getBalances, http.MethodGet, "", "escrow:nft:1")
	require.Equal(t, http.StatusOK, rec.Code)

	uc.AssertExpectations(t)
}

func TestCredit(t *testing.T) {
	uc := &mocks.UseCase{}
	h := &handler{uc}

	uc.On("Credit", mock.Anything, domain.Holder(strings.ToLower(holder)), int64(1_000_000_000)).Return(nil).Once()
	rec := serve(t, h.credit, http.MethodPost, `{"holder":"`+holder+`","amount":1000000000}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, h.credit, http.MethodPost, `{"holder":"`+holder+`","amount":0}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	uc.AssertExpectations(t)
}

func TestMint(t *testing.T) {
	uc := &mocks.UseCase{}
	h := &handler{uc}

	uc.On("Mint", mock.Anything, domain.Holder(strings.ToLower(holder)), domain.AssetId("nft:1")).Return(nil).Once()
	rec := serve(t, h.mint, http.MethodPost, `{"holder":"`+holder+`","assetId":"nft:1"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	uc.On("Mint", mock.Anything, domain.Holder(strings.ToLower(holder)), domain.AssetId("nft:1")).Return(domain.ErrConflict).Once()
	rec = serve(t, h.mint, http.MethodPost, `{"holder":"`+holder+`","assetId":"nft:1"}`, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, h.mint, http.MethodPost, `{"holder":"0x12","assetId":"nft:1"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	uc.AssertExpectations(t)
}
