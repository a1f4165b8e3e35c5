// Package builder is a client for a blockspace auction service. Searchers use
// it to look up the auction for a chain height and to bid for inclusion at it.
package builder

import (
	"context"
	"time"
)

const (
	Name    = "builder-client"
	Version = "0.1.0"

	// UserAgent is sent with every request.
	UserAgent = Name + "/" + Version
)

// Endpoints relative to the configured base URL.
const (
	BidPath     = "v0/bid"
	AuctionPath = "v0/auction"
)

// Builder is the capability set of the remote auction service.
type Builder interface {
	// SubmitBid sends txs, in order, as a bid of the given kind for height.
	SubmitBid(ctx context.Context, chainID string, height uint64, kind BidKind, txs [][]byte) (*BidResult, error)
	// QueryAuction returns the auction at height, if one is running.
	QueryAuction(ctx context.Context, chainID string, height uint64) (*AuctionResult, error)
}

// Observer is notified once per completed operation.
type Observer interface {
	Observe(operation string, err error, started time.Time)
}

// Operation names passed to an Observer.
const (
	OperationBid     = "bid"
	OperationAuction = "auction"
)
