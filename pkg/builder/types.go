package builder

import (
	"encoding/json"
	"fmt"
)

// BidKind selects where a bid's transactions land in the block.
type BidKind uint8

const (
	// BidKindTop targets the first transaction slot of the block.
	BidKindTop BidKind = iota + 1
	// BidKindBlock accepts any position in the block.
	BidKindBlock
)

const (
	bidKindTopName   = "top"
	bidKindBlockName = "block"
)

func (k BidKind) String() string {
	switch k {
	case BidKindTop:
		return bidKindTopName
	case BidKindBlock:
		return bidKindBlockName
	default:
		return fmt.Sprintf("BidKind(%d)", uint8(k))
	}
}

// ParseBidKind maps a wire name to its BidKind.
func ParseBidKind(s string) (BidKind, error) {
	switch s {
	case bidKindTopName:
		return BidKindTop, nil
	case bidKindBlockName:
		return BidKindBlock, nil
	default:
		return 0, fmt.Errorf("unknown bid kind %q", s)
	}
}

func (k BidKind) MarshalJSON() ([]byte, error) {
	switch k {
	case BidKindTop, BidKindBlock:
		return json.Marshal(k.String())
	default:
		return nil, fmt.Errorf("invalid bid kind %d", uint8(k))
	}
}

func (k *BidKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode bid kind: %w", err)
	}
	kind, err := ParseBidKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// AuctionQuery identifies the slot to check for an active auction.
type AuctionQuery struct {
	ChainID string `json:"chain_id"`
	Height  uint64 `json:"height"`
}

// AuctionResult is returned only when an auction exists for the queried
// height. Any bid for that slot must include these payments.
type AuctionResult struct {
	ChainID  string    `json:"chain_id"`
	Height   uint64    `json:"height"`
	Payments []Payment `json:"payments"`
}

// Payment is the fraction of a bid's value owed to Address in Denom.
// Allocations are not validated client-side.
type Payment struct {
	Address    string  `json:"address"`
	Allocation float64 `json:"allocation"`
	Denom      string  `json:"denom"`
}

// Bid is the request body of POST v0/bid. Txs marshal as base64 strings.
type Bid struct {
	ChainID string   `json:"chain_id"`
	Height  uint64   `json:"height"`
	Kind    BidKind  `json:"kind"`
	Txs     [][]byte `json:"txs"`
}

// MarshalJSON keeps txs an array even when no transactions are given.
func (b Bid) MarshalJSON() ([]byte, error) {
	type bid Bid
	out := bid(b)
	if out.Txs == nil {
		out.Txs = [][]byte{}
	}
	return json.Marshal(out)
}

// BidResult acknowledges a bid. It does not guarantee on-chain inclusion.
type BidResult struct {
	ChainID  string   `json:"chain_id"`
	Height   uint64   `json:"height"`
	Kind     BidKind  `json:"kind"`
	TxHashes []string `json:"tx_hashes"`
}
