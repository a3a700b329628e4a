package cattery

import (
	"github.com/iov-one/cattery/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// Codespace is set on every failed ABCI response. Error codes are only
// meaningful within it.
const Codespace = "cattery"

// DeliverResult is what a handler returns for a successful DeliverTx.
// Failures are reported as errors, never as results.
type DeliverResult struct {
	// Data is returned to the client, for example the DNA of a new kitty.
	Data []byte
	Log  string
	// Events emitted while processing the message, in order. They are
	// published on commit and indexed as tags.
	Events Events
	// Tags are indexed by tendermint before the tags of the events.
	Tags    []common.KVPair
	GasUsed int64
}

func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	var tags []common.KVPair
	tags = append(tags, d.Tags...)
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    append(tags, d.Events.Tags()...),
		GasUsed: d.GasUsed,
	}
}

// CheckResult is what a handler returns for a successful CheckTx.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the most gas the transaction may use on delivery.
	GasAllocated int64
}

func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverOrError returns the response for err if it is not nil, or else
// the response for result.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// CheckOrError returns the response for err if it is not nil, or else
// the response for result.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverTxError converts err into a failed response. Internal details
// are only shown in debug mode.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := errorInfo("deliver", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log, Codespace: codespace(code)}
}

// CheckTxError converts err into a failed response. Internal details are
// only shown in debug mode.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := errorInfo("check", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log, Codespace: codespace(code)}
}

func errorInfo(phase string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, "cannot " + phase + " tx: " + log
}

func codespace(code uint32) string {
	if code == errors.SuccessABCICode {
		return ""
	}
	return Codespace
}
