package main

import (
	"fmt"

	"github.com/fystack/builder-client/pkg/builder"
	"github.com/fystack/builder-client/pkg/common/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAuctionCmd(root *rootOptions) *cobra.Command {
	var (
		height uint64
		value  string
		denom  string
	)

	cmd := &cobra.Command{
		Use:   "auction",
		Short: "Show the auction and required payments at a height.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bidValue decimal.Decimal
			if value != "" {
				v, err := decimal.NewFromString(value)
				if err != nil {
					return fmt.Errorf("invalid --value: %w", err)
				}
				if denom == "" {
					return fmt.Errorf("--denom is required with --value")
				}
				bidValue = v
			}

			a, err := newApp(root, appParts{emitter: true})
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.client.QueryAuction(cmd.Context(), a.chainID, height)
			if a.emitter != nil {
				if emitErr := a.emitter.EmitAuction(a.chainID, height, res, err); emitErr != nil {
					logger.Warn("Publish auction event failed", "err", emitErr)
				}
			}
			if builder.IsGone(err) {
				return &exitError{code: exitNoAuction, err: fmt.Errorf("no auction for %s at height %d", a.chainID, height)}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "auction %s height %d\n", res.ChainID, res.Height)
			for _, p := range res.Payments {
				fmt.Fprintf(out, "  %s %s %g\n", p.Address, p.Denom, p.Allocation)
			}

			if value != "" {
				fmt.Fprintf(out, "owed from %s%s:\n", bidValue.String(), denom)
				for _, due := range res.Split(bidValue, denom) {
					fmt.Fprintf(out, "  %s %s%s\n", due.Address, due.Amount.String(), due.Denom)
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&height, "height", 0, "Block height to query.")
	cmd.Flags().StringVar(&value, "value", "", "Bid value in base units; prints the amount owed per payment.")
	cmd.Flags().StringVar(&denom, "denom", "", "Denom of --value.")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
