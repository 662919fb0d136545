// Package application dispatches ticket export requests onto a
// caller-supplied executor and wraps the asynchronous results.
package application

import (
	"context"
	"fmt"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/render"
)

// Executor runs export tasks. The dispatcher schedules exactly one task per
// export call and imposes no queueing of its own; concurrency limits belong
// to the executor implementation.
type Executor interface {
	Execute(task func())
}

// Exporter selects a renderer per output type and runs it asynchronously.
type Exporter struct {
	exec Executor
}

// NewExporter constructs an exporter on the given executor.
func NewExporter(exec Executor) (*Exporter, error) {
	if exec == nil {
		return nil, fmt.Errorf("exporter: nil executor")
	}
	return &Exporter{exec: exec}, nil
}

type renderFunc func(cfg *ticket.ConfigSnapshot, tx *ticket.TransactionSnapshot) []byte

func rendererFor(output ticket.OutputType) (renderFunc, error) {
	switch output {
	case ticket.OutputPreviewHTML:
		return render.HTML, nil
	case ticket.OutputPDF:
		return render.PDF, nil
	case ticket.OutputPrinterTicket:
		return render.ESCPOS, nil
	}
	return nil, ticket.ErrUnknownOutput
}

// Export validates its arguments, then schedules the matching renderer on
// the executor. Validation failures are returned synchronously, before any
// task is scheduled; renderer execution never happens on the calling
// goroutine.
func (e *Exporter) Export(tx *ticket.TransactionSnapshot, output ticket.OutputType, cfg *ticket.ConfigSnapshot) (*Future, error) {
	if tx == nil {
		return nil, ticket.ErrNilTransaction
	}
	if cfg == nil {
		return nil, ticket.ErrNilConfig
	}
	renderer, err := rendererFor(output)
	if err != nil {
		return nil, err
	}

	future := newFuture()
	e.exec.Execute(func() {
		defer func() {
			if cause := recover(); cause != nil {
				future.fail(fmt.Errorf("exporter: renderer panic: %v", cause))
			}
		}()
		future.complete(ticket.Payload{Type: output, Bytes: renderer(cfg, tx)})
	})
	return future, nil
}

// Future is the pending result of one export call. A task that is no longer
// wanted cannot be cancelled; callers simply stop waiting.
type Future struct {
	done    chan struct{}
	payload ticket.Payload
	err     error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) complete(payload ticket.Payload) {
	f.payload = payload
	close(f.done)
}

func (f *Future) fail(err error) {
	f.err = err
	close(f.done)
}

// Done is closed once the payload or error is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the export finishes or ctx is cancelled.
func (f *Future) Wait(ctx context.Context) (ticket.Payload, error) {
	select {
	case <-f.done:
		return f.payload, f.err
	case <-ctx.Done():
		return ticket.Payload{}, ctx.Err()
	}
}
