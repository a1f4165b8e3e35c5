package infra

import (
	"errors"
	"time"

	"github.com/fystack/builder-client/pkg/common/config"
	"github.com/fystack/builder-client/pkg/common/logger"
	"github.com/nats-io/nats.go"
)

func GetNATSConnection(natsConfig config.NATSConfig) (*nats.Conn, error) {
	if natsConfig.URL == "" {
		return nil, errors.New("nats url is empty")
	}

	opts := []nats.Option{
		nats.Name("builder-client"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("Disconnected from NATS", "err", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(natsErrHandler),
	}
	if natsConfig.Username != "" {
		opts = append(opts, nats.UserInfo(natsConfig.Username, natsConfig.Password))
	}

	return nats.Connect(natsConfig.URL, opts...)
}

func natsErrHandler(nc *nats.Conn, sub *nats.Subscription, natsErr error) {
	if sub == nil {
		logger.Error("NATS error", "err", natsErr)
		return
	}
	logger.Error("NATS error", "subject", sub.Subject, "err", natsErr)
}
