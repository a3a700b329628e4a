package app

import (
	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// EventSink receives the events of every committed block, in the order
// they were emitted. It is called after the state is persisted and its
// failure never affects the state.
type EventSink interface {
	Publish(height int64, events []cattery.Event) error
}

// BaseApp adds DeliverTx, CheckTx, and BeginBlock
// handlers to the storage and query functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder cattery.TxDecoder
	handler cattery.Handler
	sink    EventSink
	debug   bool

	block *blockState
	check *checkState
}

// blockState is reset at the beginning of every block.
type blockState struct {
	txIndex uint32
	events  cattery.Events
}

// checkState numbers the transactions checked against the check cache.
// The numbering resumes after the transactions delivered in the last
// committed block, so that a checked transaction never shares its
// position with a delivered one of the same height.
type checkState struct {
	txIndex uint32
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(
	store *StoreApp,
	decoder cattery.TxDecoder,
	handler cattery.Handler,
	sink EventSink,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		sink:     sink,
		debug:    debug,
		block:    &blockState{},
		check:    &checkState{},
	}
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	index := b.block.txIndex
	b.block.txIndex++

	tx, err := b.loadTx(txBytes)
	if err != nil {
		return cattery.DeliverTxError(err, b.debug)
	}

	ctx := cattery.WithTxIndex(b.BlockContext(), index)
	ctx = cattery.WithLogInfo(ctx,
		"call", "deliver_tx",
		"path", cattery.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	if err == nil {
		b.block.events = append(b.block.events, res.Events...)
	}
	return cattery.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	index := b.check.txIndex
	b.check.txIndex++

	tx, err := b.loadTx(txBytes)
	if err != nil {
		return cattery.CheckTxError(err, b.debug)
	}

	ctx := cattery.WithTxIndex(b.BlockContext(), index)
	ctx = cattery.WithLogInfo(ctx,
		"call", "check_tx",
		"path", cattery.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return cattery.CheckOrError(res, err, b.debug)
}

// BeginBlock - ABCI
func (b BaseApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	*b.block = blockState{}
	return b.StoreApp.BeginBlock(req)
}

// Commit - ABCI - persists the state and hands the events of the block
// to the sink. The check cache is discarded, and check numbering starts
// again after the delivered transactions.
func (b BaseApp) Commit() abci.ResponseCommit {
	res := b.StoreApp.Commit()
	b.check.txIndex = b.block.txIndex

	events := b.block.events
	b.block.events = nil
	if b.sink != nil && len(events) > 0 {
		height, _ := cattery.GetHeight(b.BlockContext())
		if err := b.sink.Publish(height, events); err != nil {
			b.Logger().Error("cannot publish events", "height", height, "err", err)
		}
	}
	return res
}

// loadTx calls the decoder, and capture any panics
func (b BaseApp) loadTx(txBytes []byte) (tx cattery.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
