package format

import (
	"strings"
	"testing"
	"time"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

func ptrInt64(v int64) *int64 { return &v }

func ptrFloat(v float64) *float64 { return &v }

func ptrTime(v time.Time) *time.Time { return &v }

func sampleTransaction() *ticket.TransactionSnapshot {
	return &ticket.TransactionSnapshot{
		ID:          ptrInt64(42),
		Moment:      ptrTime(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)),
		ConceptName: "Internet 10MB",
		Amount:      ptrFloat(100.50),
		Commission:  ptrFloat(5.00),
		Cashier:     &ticket.CashierRef{Username: "jdoe"},
	}
}

func TestTicketFullScenario(t *testing.T) {
	cfg := &ticket.ConfigSnapshot{LegalName: "Acme Corp"}
	lines := strings.Split(Ticket(cfg, sampleTransaction()), "\n")

	want := []string{
		"Transacción: 42",
		"Fecha: 15/01/2025",
		"Hora : 10:30:00",
		"Concepto: Internet 10MB",
		"Usuario: jdoe",
	}
	for _, expected := range want {
		if !containsLine(lines, expected) {
			t.Fatalf("missing line %q in:\n%s", expected, strings.Join(lines, "\n"))
		}
	}
	if !containsSuffix(lines, "S/. 100.50") {
		t.Fatalf("no line ends in formatted amount:\n%s", strings.Join(lines, "\n"))
	}
	if !containsSuffix(lines, "S/. 5.00") {
		t.Fatalf("no line ends in formatted commission:\n%s", strings.Join(lines, "\n"))
	}
	header := " Acme Corp "
	found := false
	for _, line := range lines {
		if strings.Contains(line, header) && len([]rune(line)) == Width {
			found = true
		}
	}
	if !found {
		t.Fatalf("legal name not centered to width:\n%s", strings.Join(lines, "\n"))
	}
}

func TestTicketEveryLineWithinWidth(t *testing.T) {
	cfg := &ticket.ConfigSnapshot{
		LegalName:    "Corporación de Servicios Financieros del Perú S.A.C.",
		BusinessName: "La Casita de las Comisiones",
		Address:      "Av. Los Próceres 1234, Urb. Santa Rosa, San Juan de Lurigancho, Lima",
		Announcement: "Gracias por su preferencia.\nConserve su ticket para cualquier reclamo posterior.",
	}
	tx := sampleTransaction()
	tx.ConceptName = "Pago de servicio de internet dedicado empresarial 10MB fibra óptica"

	for i, line := range strings.Split(Ticket(cfg, tx), "\n") {
		if n := len([]rune(line)); n > Width {
			t.Fatalf("line %d exceeds width: %d chars %q", i, n, line)
		}
	}
}

func TestTicketDeterministic(t *testing.T) {
	cfg := &ticket.ConfigSnapshot{LegalName: "Acme Corp", Announcement: "Vuelva pronto"}
	tx := sampleTransaction()
	first := Ticket(cfg, tx)
	for i := 0; i < 5; i++ {
		if got := Ticket(cfg, tx); got != first {
			t.Fatalf("output changed between calls:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestTicketNoAnnouncementBlock(t *testing.T) {
	cfg := &ticket.ConfigSnapshot{LegalName: "Acme Corp"}
	text := Ticket(cfg, sampleTransaction())
	if strings.Contains(text, "\n\n") {
		t.Fatalf("blank separator emitted without announcement:\n%s", text)
	}
}

func TestTicketAnnouncementBlock(t *testing.T) {
	cfg := &ticket.ConfigSnapshot{Announcement: "Vuelva pronto"}
	lines := strings.Split(Ticket(cfg, sampleTransaction()), "\n")
	last := lines[len(lines)-1]
	separator := lines[len(lines)-2]
	if separator != "" {
		t.Fatalf("expected blank separator before announcement, got %q", separator)
	}
	if strings.TrimSpace(last) != "Vuelva pronto" || len([]rune(last)) != Width {
		t.Fatalf("announcement not centered: %q", last)
	}
}

func TestTicketConceptFallbacks(t *testing.T) {
	tx := sampleTransaction()

	tx.ConceptName = "   "
	tx.Concept = &ticket.ConceptRef{Name: " Internet 10MB "}
	if text := Ticket(nil, tx); !strings.Contains(text, "Concepto: Internet 10MB") {
		t.Fatalf("live concept fallback not used:\n%s", text)
	}

	tx.Concept = &ticket.ConceptRef{}
	if text := Ticket(nil, tx); !strings.Contains(text, "Concepto: ------") {
		t.Fatalf("placeholder not used for blank live concept:\n%s", text)
	}

	tx.Concept = nil
	lines := strings.Split(Ticket(nil, tx), "\n")
	if !containsLine(lines, "Concepto:") {
		t.Fatalf("expected bare Concepto: line:\n%s", strings.Join(lines, "\n"))
	}
}

func TestTicketConceptWrapKeepsPrefixOnFirstLineOnly(t *testing.T) {
	tx := sampleTransaction()
	tx.ConceptName = "Pago mensual servicio internet hogar avanzado"
	lines := strings.Split(Ticket(nil, tx), "\n")

	var conceptLines []string
	for i, line := range lines {
		if strings.HasPrefix(line, "Concepto: ") {
			conceptLines = append(conceptLines, line)
			for j := i + 1; j < len(lines) && !strings.HasPrefix(lines[j], "Monto:"); j++ {
				conceptLines = append(conceptLines, lines[j])
			}
			break
		}
	}
	if len(conceptLines) < 2 {
		t.Fatalf("expected wrapped concept, got %q", conceptLines)
	}
	for _, cont := range conceptLines[1:] {
		if strings.HasPrefix(cont, "Concepto:") {
			t.Fatalf("prefix repeated on continuation line %q", cont)
		}
	}
	rejoined := strings.TrimPrefix(strings.Join(conceptLines, " "), "Concepto: ")
	if rejoined != tx.ConceptName {
		t.Fatalf("wrapping lost characters: %q vs %q", rejoined, tx.ConceptName)
	}
}

func TestTicketNullMoneyRendersPlaceholder(t *testing.T) {
	tx := sampleTransaction()
	tx.Amount = nil
	lines := strings.Split(Ticket(nil, tx), "\n")
	found := false
	for _, line := range lines {
		if strings.HasPrefix(line, "Monto:") && strings.HasSuffix(line, Placeholder) {
			found = true
		}
	}
	if !found {
		t.Fatalf("amount placeholder missing:\n%s", strings.Join(lines, "\n"))
	}
}

func TestTicketAbsentMomentKeepsLabels(t *testing.T) {
	tx := sampleTransaction()
	tx.Moment = nil
	lines := strings.Split(Ticket(nil, tx), "\n")
	if !containsLine(lines, "Fecha: ") || !containsLine(lines, "Hora : ") {
		t.Fatalf("date labels missing without moment:\n%s", strings.Join(lines, "\n"))
	}
}

func TestTicketNilInputs(t *testing.T) {
	lines := strings.Split(Ticket(nil, nil), "\n")
	if !containsLine(lines, "Transacción: ") {
		t.Fatalf("empty id line missing:\n%s", strings.Join(lines, "\n"))
	}
	if !containsLine(lines, "Usuario: ") {
		t.Fatalf("empty cashier line missing:\n%s", strings.Join(lines, "\n"))
	}
}

func TestLabelValueAlignment(t *testing.T) {
	line := labelValue("Monto:", "S/. 100.50")
	if len([]rune(line)) != Width {
		t.Fatalf("expected exact width, got %d: %q", len([]rune(line)), line)
	}
	if !strings.HasPrefix(line, "Monto:") || !strings.HasSuffix(line, "S/. 100.50") {
		t.Fatalf("alignment wrong: %q", line)
	}

	long := labelValue("Comisión:", "S/. 123,456,789,012,345.00")
	if !strings.Contains(long, ": S/.") {
		t.Fatalf("expected single-space fallback, got %q", long)
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "S/. 0.00"},
		{5, "S/. 5.00"},
		{100.5, "S/. 100.50"},
		{1234.56, "S/. 1,234.56"},
		{1000000, "S/. 1,000,000.00"},
		{-1234.5, "S/. -1,234.50"},
	}
	for _, tc := range cases {
		if got := formatMoney(&tc.in); got != tc.want {
			t.Fatalf("formatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := formatMoney(nil); got != Placeholder {
		t.Fatalf("formatMoney(nil) = %q, want placeholder", got)
	}
}

func containsLine(lines []string, want string) bool {
	for _, line := range lines {
		if line == want {
			return true
		}
	}
	return false
}

func containsSuffix(lines []string, suffix string) bool {
	for _, line := range lines {
		if strings.HasSuffix(line, suffix) {
			return true
		}
	}
	return false
}
