package main

import (
	"encoding/base64"
	"fmt"

	"github.com/fystack/builder-client/pkg/builder"
	"github.com/fystack/builder-client/pkg/common/logger"
	"github.com/fystack/builder-client/pkg/store/bidstore"
	"github.com/spf13/cobra"
)

func newBidCmd(root *rootOptions) *cobra.Command {
	var (
		height uint64
		kind   string
		rawTxs []string
	)

	cmd := &cobra.Command{
		Use:   "bid",
		Short: "Submit a bid of base64 encoded transactions for a height.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bidKind, err := builder.ParseBidKind(kind)
			if err != nil {
				return err
			}
			txs := make([][]byte, 0, len(rawTxs))
			for i, raw := range rawTxs {
				tx, err := base64.StdEncoding.DecodeString(raw)
				if err != nil {
					return fmt.Errorf("tx %d is not base64: %w", i, err)
				}
				txs = append(txs, tx)
			}

			a, err := newApp(root, appParts{journal: true, emitter: true})
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.client.SubmitBid(cmd.Context(), a.chainID, height, bidKind, txs)

			if a.journal != nil {
				entry := bidstore.Entry{ChainID: a.chainID, Height: height, Kind: bidKind, Txs: txs}
				if res != nil {
					entry.TxHashes = res.TxHashes
				}
				if err != nil {
					entry.Error = err.Error()
				}
				if jErr := a.journal.Put(entry); jErr != nil {
					logger.Warn("Record bid in journal failed", "err", jErr)
				}
			}
			if a.emitter != nil {
				if emitErr := a.emitter.EmitBid(a.chainID, height, res, err); emitErr != nil {
					logger.Warn("Publish bid event failed", "err", emitErr)
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bid accepted %s height %d kind %s\n", res.ChainID, res.Height, res.Kind)
			for _, h := range res.TxHashes {
				fmt.Fprintf(out, "  %s\n", h)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&height, "height", 0, "Block height to bid for.")
	cmd.Flags().StringVar(&kind, "kind", "block", "Bid kind: top or block.")
	cmd.Flags().StringArrayVar(&rawTxs, "tx", nil, "Base64 encoded transaction; repeat in block order.")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
