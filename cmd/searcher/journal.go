package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newJournalCmd(root *rootOptions) *cobra.Command {
	var height uint64

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List bids recorded for a height.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(root, appParts{journal: true})
			if err != nil {
				return err
			}
			defer a.Close()

			if a.journal == nil {
				return errors.New("journal is disabled: set journal.directory in config")
			}

			entries, err := a.journal.List(a.chainID, height)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				status := "ok"
				if e.Error != "" {
					status = e.Error
				}
				fmt.Fprintf(out, "%s %s txs=%d hashes=%v %s\n",
					e.SubmittedAt.Format(time.RFC3339), e.Kind, len(e.Txs), e.TxHashes, status)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&height, "height", 0, "Block height to list.")
	_ = cmd.MarkFlagRequired("height")
	return cmd
}
