package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/base/validator"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/ledger"
	authMiddleware "github.com/x-xyz/goauction/stores/auth/delivery/http/middleware"
)

type handler struct {
	ledger ledger.UseCase
}

func New(e *echo.Echo, ledger ledger.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{ledger}

	g := e.Group("/ledger")

	g.GET("/:holder", h.getBalances)

	g.POST("/credit", h.credit, authMiddleware.Auth(), authMiddleware.IsAdmin())

	g.POST("/assets", h.mint, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

// holderOf lowercases account addresses, custody slot ids pass through as is
func holderOf(raw string) domain.Holder {
	if validator.IsValidAddress(raw) {
		return domain.AddressHolder(domain.Address(raw))
	}
	return domain.Holder(raw)
}

// getBalances
//
//	@Summary		Get balances
//	@Description	Currency and asset balances of an account address or custody slot id
//	@Tags			ledger
//	@Produce		json
//	@Param			holder	path		string	true	"account address or slot id"	example(0xce4468e7ce84aceb74363f4ea64e5a038176f369)
//	@Success		200		{object}	object{data=[]ledger.Balance}
//	@Failure		500
//	@Router			/ledger/{holder} [get]
func (h *handler) getBalances(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.ledger.Balances(ctx, holderOf(c.Param("holder")))
	if err != nil {
		ctx.WithField("err", err).Error("ledger.Balances failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// credit
//
//	@Summary		Credit currency
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.credit.params	true	"holder and amount in minor units"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		403
//	@Router			/ledger/credit [post]
func (h *handler) credit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Holder domain.Address `json:"holder" validate:"required,eth_addr"`
		Amount int64          `json:"amount" validate:"gt=0"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.ledger.Credit(ctx, domain.AddressHolder(p.Holder), p.Amount); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

// mint
//
//	@Summary		Mint asset unit
//	@Tags			ledger
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		http.mint.params	true	"holder and asset id"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		403
//	@Router			/ledger/assets [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Holder  domain.Address `json:"holder" validate:"required,eth_addr"`
		AssetId domain.AssetId `json:"assetId" validate:"required,max=256"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.ledger.Mint(ctx, domain.AddressHolder(p.Holder), p.AssetId); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
