package utils

import (
	"time"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one log entry for every processed transaction. Checked
// transactions are logged at debug level, delivered ones at info level.
// Failures are always logged as errors, with their ABCI code.
type Logging struct{}

var _ cattery.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Checker) (*cattery.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	if err != nil {
		logFailure(logger, "check failed", err)
		return nil, err
	}
	logger.Debug("transaction checked", "gas", res.GasAllocated, "log", res.Log)
	return res, nil
}

func (Logging) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx, next cattery.Deliverer) (*cattery.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	if err != nil {
		logFailure(logger, "deliver failed", err)
		return nil, err
	}
	logger.Info("transaction delivered", "events", len(res.Events), "log", res.Log)
	return res, nil
}

func txLogger(ctx cattery.Context, tx cattery.Tx, start time.Time) log.Logger {
	index, _ := cattery.GetTxIndex(ctx)
	return cattery.GetLogger(ctx).With(
		"path", cattery.GetPath(tx),
		"index", index,
		"duration", time.Since(start)/time.Microsecond,
	)
}

func logFailure(logger log.Logger, msg string, err error) {
	code, _ := errors.ABCIInfo(err, false)
	logger.Error(msg, "code", code, "err", err)
}
