package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil errors were provided, nil is returned.
//
// If only a single error was provided, it is returned unchanged.
//
// If at least two non nil errors were provided, a multi error instance is
// returned. Multi errors are flattened, so that appending a multi error to
// another one produces a single list.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
			continue
		}
		res = append(res, e)
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is an error that represents a collection of errors. It is ABCI
// compatible as long as the first error provides an ABCI code.
type multiErr []error

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(m), strings.Join(msgs, "; "))
}

// ABCICode returns the code of the first error, consistent with the fail-fast
// order of validation.
func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}
