package ticket

import "errors"

var (
	ErrNilTransaction      = errors.New("ticket: nil transaction")
	ErrNilConfig           = errors.New("ticket: nil configuration")
	ErrUnknownOutput       = errors.New("ticket: unknown output type")
	ErrTransactionNotFound = errors.New("ticket: transaction not found")
)
