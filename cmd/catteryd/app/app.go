/*
Package app links together all the various components
to construct the catteryd app.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/cattery"
	"github.com/iov-one/cattery/app"
	"github.com/iov-one/cattery/commands/server"
	"github.com/iov-one/cattery/errors"
	"github.com/iov-one/cattery/orm"
	"github.com/iov-one/cattery/store/iavl"
	"github.com/iov-one/cattery/x"
	"github.com/iov-one/cattery/x/cash"
	"github.com/iov-one/cattery/x/greeter"
	"github.com/iov-one/cattery/x/kitty"
	"github.com/iov-one/cattery/x/sigs"
	"github.com/iov-one/cattery/x/utils"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported in the ABCI info response.
const Name = "catteryd"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the ledger, the kitty registry
// and the greeter. The registry settles purchases through the ledger.
func Router(authFn x.Authenticator, entropy kitty.EntropySource) *app.Router {
	r := app.NewRouter()
	ledger := cash.NewController()
	cash.RegisterRoutes(r, authFn, ledger)
	kitty.RegisterRoutes(r, authFn, kitty.NewController(ledger, entropy))
	greeter.RegisterRoutes(r, authFn, greeter.NewController())
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/", "/wallets", "/auth", "/kitties", "/kittyowners"
// and "/members"
func QueryRouter() cattery.QueryRouter {
	r := cattery.NewQueryRouter()
	r.RegisterAll(
		orm.RegisterQuery,
		cash.RegisterQuery,
		sigs.RegisterQuery,
		kitty.RegisterQuery,
		greeter.RegisterQuery,
	)
	return r
}

// Initializers loads the genesis state of every extension.
func Initializers() cattery.Initializer {
	return cattery.ChainInitializers(
		cash.Initializer{},
		kitty.Initializer{},
		greeter.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(entropy kitty.EntropySource) cattery.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, entropy))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(h cattery.Handler, tx cattery.TxDecoder, kv cattery.CommitKVStore, sink app.EventSink, debug bool) app.BaseApp {
	store := app.NewStoreApp(Name, kv, QueryRouter(), context.Background()).
		WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, sink, debug)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (cattery.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewCommitStoreFromDB(dbm.NewMemDB()), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

// GenerateApp is used to create the application for the start command.
func GenerateApp(cfg *server.Config, logger log.Logger, sink app.EventSink) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if cfg.Home != "" {
		dbPath = filepath.Join(cfg.Home, "cattery.db")
	}
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}

	application := Application(Stack(kitty.BlockEntropy), TxDecoder, kv, sink, cfg.Debug)
	application.WithLogger(logger)
	return application, nil
}
