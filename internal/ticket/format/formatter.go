// Package format turns a configuration snapshot and a transaction snapshot
// into the fixed-width text ticket shared by every export format.
package format

import (
	"strconv"
	"strings"
	"time"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

// Width is the column budget every ticket line must respect. Widths are
// measured in characters, not bytes.
const Width = 32

// Placeholder stands in for monetary values and concept names that cannot be
// resolved.
const Placeholder = ticket.ConceptPlaceholder

const (
	labelTransaction = "Transacción: "
	labelDate        = "Fecha: "
	labelTime        = "Hora : "
	labelConcept     = "Concepto: "
	labelAmount      = "Monto:"
	labelCommission  = "Comisión:"
	labelCashier     = "Usuario: "
)

// Ticket renders the full ticket text for one transaction: lines joined by
// "\n", each at most Width characters. It is a pure function and tolerates
// nil snapshots and absent fields; it never returns an error.
func Ticket(cfg *ticket.ConfigSnapshot, tx *ticket.TransactionSnapshot) string {
	if cfg == nil {
		cfg = &ticket.ConfigSnapshot{}
	}
	if tx == nil {
		tx = &ticket.TransactionSnapshot{}
	}

	var lines []string
	lines = appendHeader(lines, cfg)
	lines = append(lines, labelTransaction+formatID(tx.ID))
	lines = append(lines, labelDate+formatMoment(tx.Moment, "02/01/2006"))
	lines = append(lines, labelTime+formatMoment(tx.Moment, "15:04:05"))
	lines = appendConcept(lines, tx)
	lines = append(lines, labelValue(labelAmount, formatMoney(tx.Amount)))
	lines = append(lines, labelValue(labelCommission, formatMoney(tx.Commission)))
	lines = append(lines, labelCashier+cashierName(tx.Cashier))
	lines = appendAnnouncement(lines, cfg.Announcement)

	// Clamp kept as a silent truncation: unreachable given the wrapping and
	// centering rules, but it guarantees the width invariant outright.
	for i, line := range lines {
		lines[i] = truncate(line, Width)
	}
	return strings.Join(lines, "\n")
}

func appendHeader(lines []string, cfg *ticket.ConfigSnapshot) []string {
	for _, field := range []string{cfg.LegalName, cfg.BusinessName, cfg.Address} {
		if strings.TrimSpace(field) == "" {
			continue
		}
		for _, wrapped := range Wrap(field, Width) {
			lines = append(lines, Center(wrapped, Width))
		}
	}
	return lines
}

func appendConcept(lines []string, tx *ticket.TransactionSnapshot) []string {
	text := tx.ResolvedConceptName()
	if text == "" {
		return append(lines, strings.TrimRight(labelConcept, " "))
	}
	return append(lines, Wrap(labelConcept+text, Width)...)
}

func appendAnnouncement(lines []string, announcement string) []string {
	if strings.TrimSpace(announcement) == "" {
		return lines
	}
	lines = append(lines, "")
	for _, wrapped := range Wrap(announcement, Width) {
		lines = append(lines, Center(wrapped, Width))
	}
	return lines
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func formatMoment(moment *time.Time, layout string) string {
	if moment == nil {
		return ""
	}
	return moment.Format(layout)
}

func cashierName(cashier *ticket.CashierRef) string {
	if cashier == nil {
		return ""
	}
	return strings.TrimSpace(cashier.Username)
}

// labelValue lays out a left-aligned label and a right-aligned value within
// Width characters, separated by the minimum run of spaces. When both parts
// cannot fit, a single space separates them and the clamp rules apply.
func labelValue(label, value string) string {
	gap := Width - runeLen(label) - runeLen(value)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + value
}

// formatMoney renders a monetary value in Peruvian Soles style:
// "S/. 1,234.56". A nil value renders as the placeholder token.
func formatMoney(v *float64) string {
	if v == nil {
		return Placeholder
	}
	raw := strconv.FormatFloat(*v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}
	intPart, fracPart, _ := strings.Cut(raw, ".")
	return "S/. " + sign + groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
