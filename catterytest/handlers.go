package catterytest

import "github.com/iov-one/cattery"

// Handler records the transactions it processes and returns the
// configured results, or CheckErr and DeliverErr when set.
type Handler struct {
	Calls Calls

	CheckResult cattery.CheckResult
	CheckErr    error

	DeliverResult cattery.DeliverResult
	DeliverErr    error
}

var _ cattery.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	h.Calls.record("check", tx)
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	h.Calls.record("deliver", tx)
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// WriteHandler sets Key to Value in both phases and then returns Err.
type WriteHandler struct {
	Key   []byte
	Value []byte
	Err   error
}

var _ cattery.Handler = (*WriteHandler)(nil)

func (h *WriteHandler) Check(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.CheckResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &cattery.CheckResult{}, h.Err
}

func (h *WriteHandler) Deliver(ctx cattery.Context, db cattery.KVStore, tx cattery.Tx) (*cattery.DeliverResult, error) {
	if err := db.Set(h.Key, h.Value); err != nil {
		return nil, err
	}
	return &cattery.DeliverResult{}, h.Err
}

// PanicHandler panics with Msg on every call.
type PanicHandler struct {
	Msg string
}

var _ cattery.Handler = PanicHandler{}

func (p PanicHandler) Check(cattery.Context, cattery.KVStore, cattery.Tx) (*cattery.CheckResult, error) {
	panic(p.Msg)
}

func (p PanicHandler) Deliver(cattery.Context, cattery.KVStore, cattery.Tx) (*cattery.DeliverResult, error) {
	panic(p.Msg)
}
