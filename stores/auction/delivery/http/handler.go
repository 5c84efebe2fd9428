package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/middleware"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

const listCacheTtl = 5 * time.Second

type handler struct {
	auction  auction.UseCase
	pageSize int
}

type listResult struct {
	Items []*auction.View `json:"items"`
	Count int             `json:"count"`
}

func New(e *echo.Echo, uc auction.UseCase, authMiddleware *authMiddleware.AuthMiddleware, httpCache *middleware.HttpCache, pageSize int) {
	if pageSize <= 0 {
		pageSize = auction.DefaultPageSize
	}
	h := &handler{uc, pageSize}

	gs := e.Group("/auctions")

	gs.GET("", h.list, httpCache.CacheHttp(listCacheTtl))

	g := gs.Group("/:assetId")

	g.GET("", h.get)

	g.GET("/price", h.price)

	g.GET("/activities", h.getActivities)

	g.POST("/provision", h.provision, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.POST("/open", h.open, authMiddleware.Auth())

	g.POST("/settle", h.settle, authMiddleware.Auth())

	g.POST("/reclaim", h.reclaim, authMiddleware.Auth())
}

func assetIdOf(c echo.Context) domain.AssetId {
	return domain.AssetId(c.Param("assetId"))
}

// list
//
//	@Summary		List auctions
//	@Description	Auctions sorted by newest start time first, with the current quote of live ones
//	@Tags			auctions
//	@Produce		json
//	@Param			skip	query		int		false	"paging offset"						example(0)
//	@Param			name	query		string	false	"case-insensitive name contains"	example(ape)
//	@Param			state	query		string	false	"auction state"						enums(None, Created, Closed, Cancelled)
//	@Success		200		{object}	object{data=listResult}
//	@Failure		400
//	@Failure		500
//	@Router			/auctions [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Skip  int    `query:"skip" validate:"gte=0"`
		Name  string `query:"name" validate:"max=128"`
		State string `query:"state"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []auction.FindAllOptionsFunc{
		auction.WithPagination(p.Skip, h.pageSize),
		auction.WithName(p.Name),
	}
	if p.State != "" {
		state, err := auction.ParseState(p.State)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
		}
		opts = append(opts, auction.WithState(state))
	}

	res, count, err := h.auction.List(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("auction.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listResult{res, count})
}

// get
//
//	@Summary		Get auction
//	@Description	Stored record plus the price quoted at request time
//	@Tags			auctions
//	@Produce		json
//	@Param			assetId	path		string	true	"asset id"	example(collection:1)
//	@Success		200		{object}	object{data=auction.View}
//	@Failure		404
//	@Failure		500
//	@Router			/auctions/{assetId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.Get(ctx, assetIdOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// price
//
//	@Summary		Quote auction price
//	@Tags			auctions
//	@Produce		json
//	@Param			assetId	path		string	true	"asset id"					example(collection:1)
//	@Param			at		query		int		false	"unix seconds, now if omitted"	example(1650000600)
//	@Success		200		{object}	object{data=auction.Quote}
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Router			/auctions/{assetId}/price [get]
//
// price quotes the auction at the unix second in `at`, now when omitted
func (h *handler) price(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	var at time.Time
	if raw := c.QueryParam("at"); raw != "" {
		unix, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || unix < 0 {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
		}
		at = time.Unix(unix, 0)
	}

	res, err := h.auction.Quote(ctx, assetIdOf(c), at)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getActivities
//
//	@Summary		List auction activities
//	@Tags			auctions
//	@Produce		json
//	@Param			assetId	path		string	true	"asset id"		example(collection:1)
//	@Param			skip	query		int		false	"paging offset"	example(0)
//	@Param			limit	query		int		false	"paging size"	example(20)
//	@Success		200		{object}	object{data=[]auction.Activity}
//	@Failure		400
//	@Failure		500
//	@Router			/auctions/{assetId}/activities [get]
func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Skip  int `query:"skip" validate:"gte=0"`
		Limit int `query:"limit" validate:"gte=0"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Activities(ctx, assetIdOf(c), p.Skip, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// provision
//
//	@Summary		Provision auction
//	@Description	Create the empty auction record and custody slot of an asset
//	@Tags			auctions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			assetId	path		string	true	"asset id"	example(collection:1)
//	@Success		201		{object}	object{data=auction.Auction}
//	@Failure		401
//	@Failure		403
//	@Failure		409
//	@Router			/auctions/{assetId}/provision [post]
func (h *handler) provision(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.Provision(ctx, assetIdOf(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// open
//
//	@Summary		Open auction
//	@Description	Deposit the asset into custody and start a dutch auction with the given terms
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			assetId	path		string				true	"asset id"	example(collection:1)
//	@Param			params	body		http.open.params	true	"terms"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		402
//	@Failure		409
//	@Router			/auctions/{assetId}/open [post]
func (h *handler) open(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	type params struct {
		StartTime            int64           `json:"startTime" validate:"gte=0"`
		StartPrice           decimal.Decimal `json:"startPrice"`
		FloorPrice           decimal.Decimal `json:"floorPrice"`
		DecayStep            decimal.Decimal `json:"decayStep"`
		DecayIntervalMinutes int32           `json:"decayIntervalMinutes"`
		Name                 string          `json:"name" validate:"max=128"`
		ImageUrl             string          `json:"imageUrl" validate:"omitempty,url"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.StartPrice.IsNegative() || p.FloorPrice.IsNegative() || p.DecayStep.IsNegative() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	req := auction.OpenRequest{
		Terms: auction.Terms{
			StartTime:            p.StartTime,
			StartPrice:           p.StartPrice,
			FloorPrice:           p.FloorPrice,
			DecayStep:            p.DecayStep,
			DecayIntervalMinutes: p.DecayIntervalMinutes,
		},
		Name:     p.Name,
		ImageUrl: p.ImageUrl,
	}

	res, err := h.auction.Open(ctx, assetIdOf(c), caller, req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// settle
//
//	@Summary		Buy at current price
//	@Description	Pay the current price, 95% to the owner and 5% to feeRecipient, and receive the asset
//	@Tags			auctions
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			assetId	path		string				true	"asset id"	example(collection:1)
//	@Param			params	body		http.settle.params	true	"params"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		400
//	@Failure		402
//	@Failure		409
//	@Failure		412
//	@Router			/auctions/{assetId}/settle [post]
func (h *handler) settle(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	buyer := c.Get("address").(domain.Address)

	type params struct {
		FeeRecipient domain.Address `json:"feeRecipient" validate:"required,eth_addr"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Settle(ctx, assetIdOf(c), buyer, p.FeeRecipient)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// reclaim
//
//	@Summary		Reclaim unsold asset
//	@Description	Owner takes the asset back once the price reached the floor
//	@Tags			auctions
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			assetId	path		string	true	"asset id"	example(collection:1)
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		403
//	@Failure		409
//	@Failure		412
//	@Router			/auctions/{assetId}/reclaim [post]
func (h *handler) reclaim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	caller := c.Get("address").(domain.Address)

	res, err := h.auction.Reclaim(ctx, assetIdOf(c), caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
