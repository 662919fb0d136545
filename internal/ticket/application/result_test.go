package application

import (
	"context"
	"errors"
	"testing"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

func TestResultConstructors(t *testing.T) {
	tx, _ := sampleSnapshots()

	ok := OKResult(tx)
	if ok.Status != ResultOK || ok.Transaction != tx || ok.Payload != nil || ok.Err != nil {
		t.Fatalf("OKResult wrong: %+v", ok)
	}

	payload := ticket.Payload{Type: ticket.OutputPDF, Bytes: []byte("%PDF")}
	withPayload := OKResultWithPayload(tx, payload)
	if withPayload.Payload == nil || withPayload.Payload.Type != ticket.OutputPDF {
		t.Fatalf("OKResultWithPayload wrong: %+v", withPayload)
	}

	if cancel := CancelResult(); cancel.Status != ResultCancelled {
		t.Fatalf("CancelResult wrong: %+v", cancel)
	}

	cause := errors.New("boom")
	failed := ErrorResult(cause)
	if failed.Status != ResultError || !errors.Is(failed.Err, cause) {
		t.Fatalf("ErrorResult wrong: %+v", failed)
	}
}

func TestCompletedResultFutures(t *testing.T) {
	ctx := context.Background()
	tx, _ := sampleSnapshots()

	result, err := CompletedResult(OKResult(tx)).Wait(ctx)
	if err != nil || result.Status != ResultOK {
		t.Fatalf("completed ok future wrong: %+v %v", result, err)
	}

	cause := errors.New("boom")
	result, err = CompletedError(cause).Wait(ctx)
	if err != nil || result.Status != ResultError || !errors.Is(result.Err, cause) {
		t.Fatalf("completed error future wrong: %+v %v", result, err)
	}

	result, err = CompletedCancel().Wait(ctx)
	if err != nil || result.Status != ResultCancelled {
		t.Fatalf("completed cancel future wrong: %+v %v", result, err)
	}
}
