package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/cattery/app"
	"github.com/iov-one/cattery/errors"
	"github.com/tendermint/tendermint/abci/server"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// AppGenerator lets us lazily initialize app, using the loaded
// configuration and the event sink, which is nil when publishing is
// disabled.
type AppGenerator func(cfg *Config, logger log.Logger, sink app.EventSink) (abci.Application, error)

// StartCmd runs the ABCI server until the process receives an interrupt or
// a termination signal.
func StartCmd(gen AppGenerator, logger log.Logger, cfg *Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Serve(ctx, gen, logger, cfg)
}

// Serve runs the ABCI server until given context is cancelled.
func Serve(ctx context.Context, gen AppGenerator, logger log.Logger, cfg *Config) error {
	var sink app.EventSink
	if cfg.NATS.URL != "" {
		nsink, err := DialNATS(cfg.NATS, logger.With("module", "nats"))
		if err != nil {
			return err
		}
		defer nsink.Close()
		sink = nsink
		logger.Info("Publishing events", "url", cfg.NATS.URL, "subject", cfg.NATS.Subject)
	}

	application, err := gen(cfg, logger, sink)
	if err != nil {
		return err
	}

	logger.Info("Starting ABCI app", "bind", cfg.Bind)

	svr, err := server.NewServer(cfg.Bind, "socket", application)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot start server: %s", err)
	}

	<-ctx.Done()
	logger.Info("Stopping ABCI app")
	return svr.Stop()
}
