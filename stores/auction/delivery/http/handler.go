package http

import (
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/delivery"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/middleware"
)

type handler struct {
	registry   auction.Registry
	snapshots  auction.SnapshotRepo
	bidRecords auction.BidRecordRepo
}

func New(e *echo.Echo, registry auction.Registry, snapshots auction.SnapshotRepo, bidRecords auction.BidRecordRepo) {
	h := &handler{registry, snapshots, bidRecords}

	e.POST("/auctions", h.createAuction)
	e.GET("/auctions", h.getAuctions, middleware.CacheHttp(30*time.Second))
	e.GET("/auctions/count", h.getAuctionsCount)
	e.GET("/auction/:instance", h.getSnapshot)
	e.GET("/auction/:instance/info", h.getAuctionInfo)
	e.GET("/auction/:instance/bids", h.getBidRecords)
	e.GET("/auction/:instance/bid/:bidder", h.getBid)
	e.POST("/auction/:instance/bid", h.placeBid)
	e.POST("/auction/:instance/bidWithToken", h.placeBidWithToken)
	e.POST("/auction/:instance/end", h.endAuction)
	e.GET("/account/:account/auctions", h.getUserAuctions)
}

// statusOf maps domain errors onto http statuses, precondition violations are
// the caller's fault
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAlreadyInitialized),
		errors.Is(err, domain.ErrEmptySeller),
		errors.Is(err, domain.ErrEmptyAssetRegistry),
		errors.Is(err, domain.ErrZeroDuration),
		errors.Is(err, domain.ErrAuctionNotActive),
		errors.Is(err, domain.ErrOutsideBidWindow),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrWrongPaymentMethod),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReentrantCall):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func parseAmount(raw string) (*big.Int, bool) {
	if raw == "" {
		return nil, false
	}
	return new(big.Int).SetString(raw, 10)
}

func (h *handler) createAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type payload struct {
		Seller        domain.Address `json:"seller" validate:"required"`
		AssetRegistry domain.Address `json:"assetRegistry" validate:"required"`
		AssetId       domain.TokenId `json:"assetId" validate:"required"`
		PayToken      domain.Address `json:"payToken"`
		StartPrice    string         `json:"startPrice" validate:"required"`
		StartTime     time.Time      `json:"startTime"`
		Duration      int64          `json:"durationSec" validate:"required"`
	}

	p := &payload{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	startPrice, ok := parseAmount(p.StartPrice)
	if !ok {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid startPrice")
	}

	address, err := h.registry.CreateAuction(ctx, p.Seller, &auction.CreateAuctionParams{
		AssetRegistry: p.AssetRegistry,
		AssetId:       p.AssetId,
		PayToken:      p.PayToken,
		StartPrice:    startPrice,
		StartTime:     p.StartTime,
		Duration:      time.Duration(p.Duration) * time.Second,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, address)
}

func (h *handler) getAuctions(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId *domain.ChainId `query:"chainId"`
		Seller  *domain.Address `query:"seller"`
		Status  *auction.Status `query:"status"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
		Sort    *string         `query:"sort"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []auction.SnapshotFindAllOptionsFunc{
		auction.WithPagination(p.Offset, p.Limit),
	}
	if p.ChainId != nil {
		opts = append(opts, auction.WithChainId(*p.ChainId))
	}
	if p.Seller != nil {
		opts = append(opts, auction.WithSeller(*p.Seller))
	}
	if p.Status != nil {
		opts = append(opts, auction.WithStatus(*p.Status))
	}
	if p.Sort != nil {
		opts = append(opts, auction.WithSort(*p.Sort))
	}

	res, err := h.snapshots.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getAuctionsCount(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	return delivery.MakeJsonResp(_ctx, http.StatusOK, h.registry.AllAuctionsLength(ctx))
}

func (h *handler) getSnapshot(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	instance := domain.Address(_ctx.Param("instance"))

	res, err := h.registry.GetSnapshot(ctx, instance)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getAuctionInfo(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	instance := domain.Address(_ctx.Param("instance"))

	inst, err := h.registry.GetInstance(ctx, instance)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, inst.GetAuctionInfo(ctx))
}

func (h *handler) getBidRecords(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId *domain.ChainId `query:"chainId"`
		Bidder  *domain.Address `query:"bidder"`
		Offset  int32           `query:"offset"`
		Limit   int32           `query:"limit"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := []auction.BidFindAllOptionsFunc{
		auction.BidWithInstance(domain.Address(_ctx.Param("instance"))),
		auction.BidWithPagination(p.Offset, p.Limit),
	}
	if p.ChainId != nil {
		opts = append(opts, auction.BidWithChainId(*p.ChainId))
	}
	if p.Bidder != nil {
		opts = append(opts, auction.BidWithBidder(*p.Bidder))
	}

	res, err := h.bidRecords.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	inst, err := h.registry.GetInstance(ctx, domain.Address(_ctx.Param("instance")))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}

	amount := inst.GetBid(ctx, domain.Address(_ctx.Param("bidder")))
	if amount == nil {
		return delivery.MakeJsonResp(_ctx, http.StatusNotFound, domain.ErrNotFound)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, amount.String())
}

func (h *handler) placeBid(_ctx echo.Context) error {
	return h.bid(_ctx, true)
}

func (h *handler) placeBidWithToken(_ctx echo.Context) error {
	return h.bid(_ctx, false)
}

func (h *handler) bid(_ctx echo.Context, native bool) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type payload struct {
		Bidder domain.Address `json:"bidder" validate:"required"`
		Amount string         `json:"amount" validate:"required"`
	}

	p := &payload{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	amount, ok := parseAmount(p.Amount)
	if !ok {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid amount")
	}

	inst, err := h.registry.GetInstance(ctx, domain.Address(_ctx.Param("instance")))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}

	if native {
		err = inst.Bid(ctx, p.Bidder, amount)
	} else {
		err = inst.BidWithToken(ctx, p.Bidder, amount)
	}
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) endAuction(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type payload struct {
		Caller domain.Address `json:"caller" validate:"required"`
	}

	p := &payload{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	inst, err := h.registry.GetInstance(ctx, domain.Address(_ctx.Param("instance")))
	if err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}

	if err := inst.EndAuction(ctx, p.Caller); err != nil {
		return delivery.MakeJsonResp(_ctx, statusOf(err), err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) getUserAuctions(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	account := domain.Address(_ctx.Param("account"))
	return delivery.MakeJsonResp(_ctx, http.StatusOK, h.registry.GetUserAuctions(ctx, account))
}
