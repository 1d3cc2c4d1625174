package repository

import (
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type bidRecordMongoRepo struct {
	q query.Mongo
}

func NewBidRecordRepo(q query.Mongo) auction.BidRecordRepo {
	return &bidRecordMongoRepo{q: q}
}

func (r *bidRecordMongoRepo) Insert(ctx bCtx.Ctx, record *auction.BidRecord) error {
	if err := r.q.Insert(ctx, domain.TableBids, record); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *bidRecordMongoRepo) FindAll(ctx bCtx.Ctx, optsFns ...auction.BidFindAllOptionsFunc) ([]*auction.BidRecord, error) {
	opts, err := auction.GetBidFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithField("err", err).Error("GetBidFindAllOptions failed")
		return nil, err
	}

	var (
		offset = 0
		limit  = 0
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	qry := makeBidQuery(&opts)
	res := []*auction.BidRecord{}
	if err := r.q.Search(ctx, domain.TableBids, offset, limit, "-placedAt", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *bidRecordMongoRepo) Count(ctx bCtx.Ctx, optsFns ...auction.BidFindAllOptionsFunc) (int, error) {
	opts, err := auction.GetBidFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithField("err", err).Error("GetBidFindAllOptions failed")
		return 0, err
	}

	count, err := r.q.Count(ctx, domain.TableBids, makeBidQuery(&opts))
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}

func makeBidQuery(opts *auction.BidFindAllOptions) bson.M {
	qry := bson.M{}
	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}
	if opts.Instance != nil {
		qry["instance"] = *opts.Instance
	}
	if opts.Bidder != nil {
		qry["bidder"] = *opts.Bidder
	}
	return qry
}
