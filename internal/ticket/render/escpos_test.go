package render

import (
	"bytes"
	"testing"

	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/format"
)

func TestESCPOSFraming(t *testing.T) {
	cfg, tx := samplePDFInputs()
	out := ESCPOS(cfg, tx)

	if !bytes.HasPrefix(out, []byte{0x1B, '@'}) {
		t.Fatalf("missing initialize sequence: % x", out[:4])
	}
	if !bytes.HasSuffix(out, []byte{0x1D, 'V', 66, 0x00}) {
		t.Fatalf("missing cut sequence: % x", out[len(out)-4:])
	}
	body := out[2 : len(out)-4]
	if !bytes.HasSuffix(body, []byte("\n")) {
		t.Fatalf("ticket text missing trailing newline")
	}
}

func TestESCPOSFramingDegenerateInputs(t *testing.T) {
	out := ESCPOS(nil, nil)
	if !bytes.HasPrefix(out, []byte{0x1B, '@'}) || !bytes.HasSuffix(out, []byte{0x1D, 'V', 66, 0x00}) {
		t.Fatalf("framing broken for nil snapshots: % x", out)
	}
}

func TestESCPOSSubstitutesNonASCII(t *testing.T) {
	cfg, tx := samplePDFInputs()
	out := ESCPOS(cfg, tx)

	for i, b := range out[2 : len(out)-4] {
		if b > 127 {
			t.Fatalf("non-ASCII byte %#x at %d survived transcoding", b, i)
		}
	}
	// "Transacción" carries one non-ASCII rune, degraded to a single '*'.
	if !bytes.Contains(out, []byte("Transacci*n: 42")) {
		t.Fatalf("expected degraded label in output:\n%q", out)
	}
}

func TestAppendASCIIOneByteOutPerRune(t *testing.T) {
	in := "ñoño S/. 5.00"
	got := appendASCII(nil, in)
	if len(got) != len([]rune(in)) {
		t.Fatalf("expected %d bytes, got %d", len([]rune(in)), len(got))
	}
	if string(got) != "*o*o S/. 5.00" {
		t.Fatalf("unexpected transcoding: %q", got)
	}
}

func TestESCPOSBodyMatchesFormatter(t *testing.T) {
	cfg, tx := samplePDFInputs()
	want := format.Ticket(cfg, tx) + "\n"
	out := ESCPOS(cfg, tx)
	body := string(out[2 : len(out)-4])
	if len(body) != len([]rune(want)) {
		t.Fatalf("body length %d, formatter text has %d chars", len(body), len([]rune(want)))
	}
}
