package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/middleware"
	"github.com/x-xyz/goauction/service/ens"
)

type handler struct {
	ens ens.ENS
}

type nameResult struct {
	Address domain.Address `json:"address"`
	Name    string         `json:"name"`
}

func New(e *echo.Echo, ens ens.ENS, httpCache *middleware.HttpCache) {
	h := &handler{
		ens,
	}

	g := e.Group("/ens")

	g.GET("/reverse-resolve/:address", h.reverseResolve, middleware.IsValidAddress("address"), httpCache.CacheHttp(time.Minute))
}

// reverseResolve
//
//	@Summary		Reverse resolve ENS name
//	@Tags			ens
//	@Produce		json
//	@Param			address	path		string	true	"account address"	example(0xce4468e7ce84aceb74363f4ea64e5a038176f369)
//	@Success		200		{object}	object{data=nameResult}
//	@Failure		400
//	@Failure		502
//	@Router			/ens/reverse-resolve/{address} [get]
func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address")).ToLower()
	name, err := h.ens.ReverseResolve(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Warn("ens.ReverseResolve failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, nameResult{address, name})
}
