package main

import (
	"errors"
	"fmt"

	"github.com/fystack/builder-client/pkg/common/config"
	"github.com/fystack/builder-client/pkg/common/logger"
	"github.com/fystack/builder-client/pkg/infra"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print builder events published on NATS until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if !cfg.NATS.Enabled() {
				return errors.New("nats is disabled: set nats.url in config")
			}

			nc, err := infra.GetNATSConnection(cfg.NATS)
			if err != nil {
				return err
			}
			defer nc.Close()

			subject := cfg.NATS.SubjectPrefix + ".>"
			out := cmd.OutOrStdout()
			sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
				fmt.Fprintf(out, "[%s] %s\n", msg.Subject, string(msg.Data))
			})
			if err != nil {
				return err
			}
			defer func() { _ = sub.Unsubscribe() }()

			logger.Info("Subscribed", "subject", subject)
			<-cmd.Context().Done()
			return nil
		},
	}
}
