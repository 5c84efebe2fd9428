package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/domain/custody"
	"github.com/x-xyz/goauction/domain/ledger"
	"github.com/x-xyz/goauction/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	errs   []error
	status int
}{
	{[]error{domain.ErrNotFound, query.ErrNotFound}, http.StatusNotFound},
	{[]error{domain.ErrConflict, auction.ErrInvalidAuctionState, custody.ErrSlotOccupied, custody.ErrSlotClosed}, http.StatusConflict},
	{[]error{auction.ErrAuctionDidNotStart, auction.ErrAuctionDidNotReachMinPrice}, http.StatusPreconditionFailed},
	{[]error{auction.ErrNotAuctionOwner, domain.ErrForbidden, custody.ErrInvalidGrant}, http.StatusForbidden},
	{[]error{ledger.ErrInsufficientBalance, ledger.ErrInsufficientAsset}, http.StatusPaymentRequired},
	{[]error{domain.ErrBadParamInput, domain.ErrInvalidAddress, domain.ErrInvalidNumberFormat, auction.ErrInvalidDecayInterval, auction.ErrPriceOutOfRange}, http.StatusBadRequest},
	{[]error{domain.ErrInvalidSignature}, http.StatusUnauthorized},
}

// StatusOf maps a domain error onto its http status, falling back to def
func StatusOf(err error, def int) int {
	for _, e := range errStatus {
		for _, target := range e.errs {
			if errors.Is(err, target) {
				return e.status
			}
		}
	}
	return def
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
