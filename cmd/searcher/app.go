package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/fystack/builder-client/internal/metrics"
	"github.com/fystack/builder-client/pkg/builder"
	"github.com/fystack/builder-client/pkg/common/config"
	"github.com/fystack/builder-client/pkg/common/logger"
	"github.com/fystack/builder-client/pkg/events"
	"github.com/fystack/builder-client/pkg/infra"
	"github.com/fystack/builder-client/pkg/store/bidstore"
	"github.com/nats-io/nats.go"
)

const natsFlushTimeout = 2 * time.Second

// app holds what a command needs. journal and emitter are nil when the config
// leaves them disabled.
type app struct {
	cfg     *config.Config
	chainID string
	client  *builder.Client
	journal *bidstore.Store
	emitter events.Emitter
	nc      *nats.Conn
}

type appParts struct {
	journal bool
	emitter bool
}

func newApp(opts *rootOptions, parts appParts) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	chainID := opts.chainID
	if chainID == "" {
		chainID = cfg.ChainID
	}
	if chainID == "" {
		return nil, errors.New("no chain id: pass --chain-id or set chain_id in config")
	}

	clientOpts := []builder.Option{
		builder.WithHTTPClient(&http.Client{Timeout: cfg.Builder.Timeout}),
		builder.WithLogger(logger.L()),
		builder.WithObserver(metrics.NewBuilderClient(chainID)),
	}
	if cfg.Builder.UserAgent != "" {
		clientOpts = append(clientOpts, builder.WithUserAgent(cfg.Builder.UserAgent))
	}
	client, err := builder.New(cfg.Builder.BaseURL, clientOpts...)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, chainID: chainID, client: client}

	if parts.journal && cfg.Journal.Enabled() {
		a.journal, err = bidstore.Open(bidstore.Options{
			Directory: cfg.Journal.Directory,
			Prefix:    cfg.Journal.Prefix,
		})
		if err != nil {
			return nil, err
		}
	}

	if parts.emitter && cfg.NATS.Enabled() {
		a.nc, err = infra.GetNATSConnection(cfg.NATS)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.emitter = events.NewEmitter(a.nc, cfg.NATS.SubjectPrefix)
	}

	return a, nil
}

func (a *app) Close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			logger.Warn("Close bid journal failed", "err", err)
		}
	}
	if a.nc != nil {
		if err := a.nc.FlushTimeout(natsFlushTimeout); err != nil {
			logger.Warn("Flush NATS failed", "err", err)
		}
		a.nc.Close()
	}
}
