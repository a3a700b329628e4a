package app

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state side of abci.Application: genesis,
// blocks boundaries, commits and queries. BaseApp embeds it and adds the
// transaction processing.
//
// A failure of InitChain or Commit cannot be reported to tendermint and
// panics.
type StoreApp struct {
	logger log.Logger
	// name is reported by Info.
	name        string
	store       *CommitStore
	initializer cattery.Initializer
	queryRouter cattery.QueryRouter

	// baseContext lives as long as the application and carries the chain
	// ID once known.
	baseContext cattery.Context
	// blockContext adds the header of the current block. It is replaced
	// on every BeginBlock.
	blockContext cattery.Context
}

// NewStoreApp opens the latest committed state of store. It panics when
// the state cannot be loaded.
func NewStoreApp(name string, store cattery.CommitKVStore, queryRouter cattery.QueryRouter, baseContext cattery.Context) *StoreApp {
	cs, err := NewCommitStore(store)
	if err != nil {
		panic(err)
	}
	if chainID := cs.ChainID(); chainID != "" {
		baseContext = cattery.WithChainID(baseContext, chainID)
	}
	s := &StoreApp{
		name:        name,
		store:       cs,
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	last := s.lastCommit()
	s.blockContext = cattery.WithHeight(s.baseContext, last.Version)
	return s
}

func (s *StoreApp) lastCommit() cattery.CommitID {
	id, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	return id
}

// GetChainID returns the chain ID of the genesis, or an empty string
// before InitChain.
func (s *StoreApp) GetChainID() string {
	return s.store.ChainID()
}

// WithInit sets the initializer InitChain runs on the genesis app state.
func (s *StoreApp) WithInit(init cattery.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithLogger sets the logger of the application and of every context it
// creates.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.baseContext = cattery.WithLogger(s.baseContext, logger)
	s.logger = logger
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() cattery.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() cattery.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() cattery.CacheableKVStore {
	return s.store.CheckStore()
}

// Info reports the last committed height and app hash, so tendermint
// can replay the blocks the application is missing.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	last := s.lastCommit()
	s.logger.Info("info synced", "height", last.Version, "hash", fmt.Sprintf("%X", last.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          cattery.Version(),
		LastBlockHeight:  last.Version,
		LastBlockAppHash: last.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not implemented"}
}

// InitChain writes the chain ID and runs the initializer on the app
// state of the genesis file. A chain can only be initialized once.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	s.logger.Info("genesis loaded", "chain", req.ChainId)
	return abci.ResponseInitChain{}
}

func (s *StoreApp) loadGenesis(chainID string, appState []byte) error {
	if loaded := s.store.ChainID(); loaded != "" {
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", loaded)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrState, "app_state missing in genesis")
	}
	var opts cattery.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := s.store.SetChainID(chainID); err != nil {
		return err
	}
	s.baseContext = cattery.WithChainID(s.baseContext, chainID)
	if s.initializer == nil {
		return nil
	}
	return s.initializer.FromGenesis(opts, s.DeliverStore())
}

// BeginBlock starts a new block context from the header.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := cattery.WithHeader(s.baseContext, req.Header)
	s.blockContext = cattery.WithHeight(ctx, req.Header.GetHeight())
	return abci.ResponseBeginBlock{}
}

func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

// Commit persists the delivered state and returns the new app hash.
func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// Query reads the last committed state. The request path selects a
// registered query handler, "/" for raw keys or "/<bucket>" for a model,
// optionally followed by "?prefix" or another modifier. The height of
// the request is ignored.
//
// Key and Value of the response are encoded ResultSets of the same
// length, holding zero or more models.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod, _ := strings.Cut(req.Path, "?")
	h := s.queryRouter.Handler(path)
	if h == nil {
		err := errors.Wrapf(errors.ErrNotFound, "unknown query path %q, known paths: %s",
			path, strings.Join(s.queryRouter.Paths(), ", "))
		return queryError(err)
	}

	last := s.lastCommit()
	db := s.store.committed.CacheWrap()
	defer db.Discard()

	models, err := h.Query(db, mod, req.Data)
	if err != nil {
		return queryError(err)
	}
	res := abci.ResponseQuery{Height: last.Version}
	if res.Key, err = cattery.Marshal(ResultsFromKeys(models)); err != nil {
		return queryError(err)
	}
	if res.Value, err = cattery.Marshal(ResultsFromValues(models)); err != nil {
		return queryError(err)
	}
	return res
}

func queryError(err error) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, false)
	return abci.ResponseQuery{Code: code, Log: log, Codespace: cattery.Codespace}
}
