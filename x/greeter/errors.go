package greeter

import (
	"github.com/iov-one/cattery/errors"
)

// x/greeter reserves 1120 ~ 1129.
var (
	ErrQuotaExceeded  = errors.Register(1120, "greeting quota exceeded")
	ErrInvalidUpgrade = errors.Register(1121, "invalid membership upgrade")
)
