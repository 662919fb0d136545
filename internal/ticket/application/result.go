package application

import (
	"context"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

const (
	ResultOK        = "ok"
	ResultCancelled = "cancelled"
	ResultError     = "error"
)

// ProcessResult pairs the outcome of a transaction-processing flow with an
// optional export payload handed back to the caller.
type ProcessResult struct {
	Status      string
	Transaction *ticket.TransactionSnapshot
	Payload     *ticket.Payload
	Err         error
}

// OKResult reports a successful flow without an export payload.
func OKResult(tx *ticket.TransactionSnapshot) ProcessResult {
	return ProcessResult{Status: ResultOK, Transaction: tx}
}

// OKResultWithPayload reports a successful flow carrying rendered bytes.
func OKResultWithPayload(tx *ticket.TransactionSnapshot, payload ticket.Payload) ProcessResult {
	return ProcessResult{Status: ResultOK, Transaction: tx, Payload: &payload}
}

// CancelResult reports a flow the user abandoned.
func CancelResult() ProcessResult {
	return ProcessResult{Status: ResultCancelled}
}

// ErrorResult reports a failed flow.
func ErrorResult(err error) ProcessResult {
	return ProcessResult{Status: ResultError, Err: err}
}

// ResultFuture is the asynchronous counterpart of ProcessResult.
type ResultFuture struct {
	done   chan struct{}
	result ProcessResult
}

// CompletedResult returns an already-resolved future, for flows that finish
// synchronously but feed an asynchronous caller.
func CompletedResult(result ProcessResult) *ResultFuture {
	f := &ResultFuture{done: make(chan struct{}), result: result}
	close(f.done)
	return f
}

// CompletedError is shorthand for a pre-completed error future.
func CompletedError(err error) *ResultFuture {
	return CompletedResult(ErrorResult(err))
}

// CompletedCancel is shorthand for a pre-completed cancel future.
func CompletedCancel() *ResultFuture {
	return CompletedResult(CancelResult())
}

// Wait blocks until the result is available or ctx is cancelled.
func (f *ResultFuture) Wait(ctx context.Context) (ProcessResult, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return ProcessResult{}, ctx.Err()
	}
}
