package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBidKind_JSON(t *testing.T) {
	for _, tc := range []struct {
		kind BidKind
		wire string
	}{
		{BidKindTop, `"top"`},
		{BidKindBlock, `"block"`},
	} {
		t.Run(tc.kind.String(), func(t *testing.T) {
			raw, err := json.Marshal(tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.wire, string(raw))

			var got BidKind
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, tc.kind, got)
		})
	}
}

func TestBidKind_RejectsUnknown(t *testing.T) {
	var k BidKind
	require.Error(t, json.Unmarshal([]byte(`"TOP"`), &k))
	require.Error(t, json.Unmarshal([]byte(`1`), &k))

	_, err := json.Marshal(BidKind(0))
	require.Error(t, err)

	_, err = ParseBidKind("middle")
	require.Error(t, err)
}

func TestBid_MarshalEmptyTxs(t *testing.T) {
	raw, err := json.Marshal(Bid{ChainID: "osmosis-1", Height: 7, Kind: BidKindBlock})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chain_id":"osmosis-1","height":7,"kind":"block","txs":[]}`, string(raw))
}

func TestBid_MarshalTxsAsBase64InOrder(t *testing.T) {
	bid := Bid{
		ChainID: "osmosis-1",
		Height:  5994269,
		Kind:    BidKindTop,
		Txs:     [][]byte{[]byte("tx-one"), []byte("tx-two")},
	}
	raw, err := json.Marshal(bid)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"chain_id":"osmosis-1","height":5994269,"kind":"top","txs":["dHgtb25l","dHgtdHdv"]}`,
		string(raw),
	)

	var back Bid
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, bid, back)
}
