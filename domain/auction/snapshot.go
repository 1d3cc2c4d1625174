package auction

import (
	"time"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
)

// Snapshot is the registry-owned, eventually-consistent mirror of one
// instance's listing, updated via authenticated pushes from the instance.
// Never authoritative, used purely for low-cost enumeration.
type Snapshot struct {
	ChainId       domain.ChainId `json:"chainId" bson:"chainId"`
	Instance      domain.Address `json:"instance" bson:"instance"`
	Seller        domain.Address `json:"seller" bson:"seller"`
	AssetRegistry domain.Address `json:"assetRegistry" bson:"assetRegistry"`
	AssetId       domain.TokenId `json:"assetId" bson:"assetId"`
	PayToken      domain.Address `json:"payToken" bson:"payToken"`
	StartPrice    string         `json:"startPrice" bson:"startPrice"`
	StartTime     time.Time      `json:"startTime" bson:"startTime"`
	EndTime       time.Time      `json:"endTime" bson:"endTime"`
	HighestBidder domain.Address `json:"highestBidder" bson:"highestBidder"`
	HighestBid    string         `json:"highestBid" bson:"highestBid"`
	Status        Status         `json:"status" bson:"status"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

func (s *Snapshot) ToId() *SnapshotId {
	return &SnapshotId{
		ChainId:  s.ChainId,
		Instance: s.Instance,
	}
}

type SnapshotId struct {
	ChainId  domain.ChainId `bson:"chainId"`
	Instance domain.Address `bson:"instance"`
}

type SnapshotFindAllOptions struct {
	ChainId   *domain.ChainId
	Seller    *domain.Address
	Status    *Status
	EndTimeLT *time.Time
	Offset    *int32
	Limit     *int32
	Sort      *string
}

type SnapshotFindAllOptionsFunc func(*SnapshotFindAllOptions) error

func GetSnapshotFindAllOptions(opts ...SnapshotFindAllOptionsFunc) (SnapshotFindAllOptions, error) {
	res := SnapshotFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithChainId(chainId domain.ChainId) SnapshotFindAllOptionsFunc {
	return func(options *SnapshotFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithSeller(seller domain.Address) SnapshotFindAllOptionsFunc {
	return func(options *SnapshotFindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithStatus(status Status) SnapshotFindAllOptionsFunc {
	return func(options *SnapshotFindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithEndTimeLT(t time.Time) SnapshotFindAllOptionsFunc {
	return func(options *SnapshotFindAllOptions) error {
		options.EndTimeLT = &t
		return nil
	}
}

func WithPagination(offset, limit int32) SnapshotFindAllOptionsFunc {
	return func(options *SnapshotFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) SnapshotFindAllOptionsFunc {
	return func(options *SnapshotFindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}

// UpdatePayload patches the mutable fields of a snapshot, nil fields are
// left untouched
type UpdatePayload struct {
	HighestBidder *domain.Address `bson:"highestBidder,omitempty"`
	HighestBid    *string         `bson:"highestBid,omitempty"`
	Status        *Status         `bson:"status,omitempty"`
	UpdatedAt     *time.Time      `bson:"updatedAt,omitempty"`
}

type SnapshotRepo interface {
	FindOne(c ctx.Ctx, id SnapshotId) (*Snapshot, error)
	FindAll(c ctx.Ctx, opts ...SnapshotFindAllOptionsFunc) ([]*Snapshot, error)
	Count(c ctx.Ctx, opts ...SnapshotFindAllOptionsFunc) (int, error)
	Upsert(c ctx.Ctx, snapshot *Snapshot) error
	Update(c ctx.Ctx, id SnapshotId, payload *UpdatePayload) error
}
