package repository

import (
	bCtx "github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/database/mongoclient"
	"github.com/x-xyz/goauction/base/log"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/auction"
	"github.com/x-xyz/goauction/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type snapshotMongoRepo struct {
	q query.Mongo
}

func NewSnapshotRepo(q query.Mongo) auction.SnapshotRepo {
	return &snapshotMongoRepo{q: q}
}

func (r *snapshotMongoRepo) FindOne(ctx bCtx.Ctx, id auction.SnapshotId) (*auction.Snapshot, error) {
	snapshot := &auction.Snapshot{}
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TableAuctions, selector, snapshot); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return snapshot, nil
}

func (r *snapshotMongoRepo) FindAll(ctx bCtx.Ctx, optsFns ...auction.SnapshotFindAllOptionsFunc) ([]*auction.Snapshot, error) {
	opts, err := auction.GetSnapshotFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithField("err", err).Error("GetSnapshotFindAllOptions failed")
		return nil, err
	}

	var (
		offset = 0
		limit  = 0
		sort   = "_id"
	)
	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}
	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}
	if opts.Sort != nil {
		sort = *opts.Sort
	}

	qry := makeSnapshotQuery(&opts)
	res := []*auction.Snapshot{}
	if err := r.q.Search(ctx, domain.TableAuctions, offset, limit, sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (r *snapshotMongoRepo) Count(ctx bCtx.Ctx, optsFns ...auction.SnapshotFindAllOptionsFunc) (int, error) {
	opts, err := auction.GetSnapshotFindAllOptions(optsFns...)
	if err != nil {
		ctx.WithField("err", err).Error("GetSnapshotFindAllOptions failed")
		return 0, err
	}

	count, err := r.q.Count(ctx, domain.TableAuctions, makeSnapshotQuery(&opts))
	if err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}

func (r *snapshotMongoRepo) Upsert(ctx bCtx.Ctx, snapshot *auction.Snapshot) error {
	selector, err := mongoclient.MakeBsonM(snapshot.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TableAuctions, selector, snapshot); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  snapshot.ToId(),
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (r *snapshotMongoRepo) Update(ctx bCtx.Ctx, id auction.SnapshotId, payload *auction.UpdatePayload) error {
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := r.q.Patch(ctx, domain.TableAuctions, selector, payload); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func makeSnapshotQuery(opts *auction.SnapshotFindAllOptions) bson.M {
	qry := bson.M{}
	if opts.ChainId != nil {
		qry["chainId"] = *opts.ChainId
	}
	if opts.Seller != nil {
		qry["seller"] = *opts.Seller
	}
	if opts.Status != nil {
		qry["status"] = *opts.Status
	}
	if opts.EndTimeLT != nil {
		qry["endTime"] = bson.M{"$lt": *opts.EndTimeLT}
	}
	return qry
}
