/*
Package errors gives every failure an ABCI code.

Root errors are declared once with Register and carry a unique code:

	var ErrNotForSale = errors.Register(1105, "kitty is not for sale")

Handlers wrap a root error with the details of the failure. The first
wrap records a stack trace, printed with %+v:

	if k.Price == nil {
		return errors.Wrapf(ErrNotForSale, "kitty %s", dna)
	}

Use Is to test the kind of an error, whatever the wrapping:

	if ErrNotForSale.Is(err) { ... }

ABCIInfo turns an error into the code and log of an ABCI response. Errors
that were never registered, and recovered panics, are reported as
"internal error" unless debug mode is on.
*/
package errors
