package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// lifecycle precondition errors
	ErrAlreadyInitialized = errors.New("auction already initialized")
	ErrEmptySeller        = errors.New("empty seller")
	ErrEmptyAssetRegistry = errors.New("empty asset registry")
	ErrZeroDuration       = errors.New("zero duration")
	ErrAuctionNotActive   = errors.New("auction not active")
	ErrOutsideBidWindow   = errors.New("outside bid window")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrWrongPaymentMethod = errors.New("wrong payment method for this auction")
	ErrNotAuthorized      = errors.New("caller not authorized")
	ErrReentrantCall      = errors.New("reentrant call rejected")
	ErrInvalidRange       = errors.New("invalid range")

	// oracle errors, confined to advisory code paths
	ErrNoPriceFeed      = errors.New("no price feed")
	ErrInvalidFeedPrice = errors.New("feed reported non-positive price")

	ErrInvalidAddress = errors.New("Invalid address")
)
