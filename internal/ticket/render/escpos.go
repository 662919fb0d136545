package render

import (
	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/format"
)

var (
	escposInit = []byte{0x1B, '@'}
	escposCut  = []byte{0x1D, 'V', 66, 0x00}
)

// ESCPOS renders the ticket as a thermal-printer byte stream: initialize,
// ASCII ticket text with a trailing newline, full paper cut. Characters the
// printer charset cannot carry are degraded to '*'; this renderer has no
// failure mode.
func ESCPOS(cfg *ticket.ConfigSnapshot, tx *ticket.TransactionSnapshot) []byte {
	text := format.Ticket(cfg, tx) + "\n"
	out := make([]byte, 0, len(escposInit)+len(text)+len(escposCut))
	out = append(out, escposInit...)
	out = appendASCII(out, text)
	return append(out, escposCut...)
}

// appendASCII transcodes s to 7-bit ASCII, substituting '*' for every rune
// outside the ASCII range. One rune maps to one output byte regardless of
// its UTF-8 width.
func appendASCII(dst []byte, s string) []byte {
	for _, r := range s {
		if r > 127 {
			dst = append(dst, '*')
			continue
		}
		dst = append(dst, byte(r))
	}
	return dst
}
