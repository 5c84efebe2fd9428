package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/ledger"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{xerrors.Errorf("settle: %w", auction.ErrInvalidAuctionState), http.StatusConflict},
		{auction.ErrAuctionDidNotStart, http.StatusPreconditionFailed},
		{auction.ErrAuctionDidNotReachMinPrice, http.StatusPreconditionFailed},
		{auction.ErrNotAuctionOwner, http.StatusForbidden},
		{xerrors.Errorf("transfer: %w", ledger.ErrInsufficientBalance), http.StatusPaymentRequired},
		{domain.ErrBadParamInput, http.StatusBadRequest},
		{errors.New("unknown"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusOf(c.err, http.StatusInternalServerError), c.err.Error())
	}
}

func TestMakeJsonResp(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, MakeJsonResp(c, http.StatusInternalServerError, auction.ErrAuctionDidNotStart))
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)

	res := JsonResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, JsonResponseStatusFail, res.Status)
	assert.Equal(t, auction.ErrAuctionDidNotStart.Error(), res.Data)
}
