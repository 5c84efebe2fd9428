package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

type stubENS struct {
	names map[domain.Address]string
	err   error
}

func (s stubENS) ReverseResolve(c ctx.Ctx, address domain.Address) (string, error) {
	return s.names[address], s.err
}

func (s stubENS) DisplayName(c ctx.Ctx, address domain.Address) string {
	return s.names[address]
}

func reverseResolve(t *testing.T, h *handler, address string) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("address")
	c.SetParamValues(address)
	c.Set("ctx", ctx.Background())
	require.NoError(t, h.reverseResolve(c))
	return rec
}

func TestReverseResolve(t *testing.T) {
	h := &handler{stubENS{names: map[domain.Address]string{
		"0xd8da6bf26964af9d7eed9e03e53415d37aa96045": "vitalik.eth",
	}}}

	rec := reverseResolve(t, h, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"success","data":{"address":"0xd8da6bf26964af9d7eed9e03e53415d37aa96045","name":"vitalik.eth"}}`, rec.Body.String())
}

func TestReverseResolveFailure(t *testing.T) {
	h := &handler{stubENS{err: errors.New("rpc unavailable")}}

	rec := reverseResolve(t, h, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.Equal(t, http.StatusBadGateway, rec.Code)
}
