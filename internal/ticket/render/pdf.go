// Package render serializes the formatted ticket into its three byte-exact
// output formats: HTML preview, single-page PDF, and ESC/POS printer stream.
package render

import (
	"bytes"
	"fmt"
	"strings"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/format"
)

const (
	pdfHeader   = "%PDF-1.4\n"
	pdfFontSize = 10
	pdfLeading  = 12
	pdfOriginX  = 50
	pdfOriginY  = 800
)

// fallbackPDF is the fixed document returned when assembly fails. It is
// syntactically self-contained and starts with %PDF like every other output
// of this renderer.
const fallbackPDF = "%PDF-1.4\n" +
	"1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n" +
	"2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n" +
	"3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >> endobj\n" +
	"trailer << /Size 4 /Root 1 0 R >>\n" +
	"%%EOF\n"

// PDF renders the ticket as a minimal single-page PDF 1.4 document. The
// output always starts with %PDF: any assembly failure degrades to the fixed
// fallback document instead of surfacing an error.
func PDF(cfg *ticket.ConfigSnapshot, tx *ticket.TransactionSnapshot) []byte {
	doc, err := buildTicketPDF(format.Ticket(cfg, tx))
	if err != nil {
		return []byte(fallbackPDF)
	}
	return doc
}

// buildTicketPDF assembles the five-object document: catalog, pages, page,
// contents stream, and the Courier font resource. Object offsets are read
// off the growing buffer immediately before each object is written, then
// checked before the xref table is emitted.
func buildTicketPDF(text string) ([]byte, error) {
	content := buildContentStream(text)

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] " +
			"/Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}

	var buf bytes.Buffer
	buf.WriteString(pdfHeader)

	offsets := make([]int, 0, len(objects))
	for i, body := range objects {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	if err := checkOffsets(offsets); err != nil {
		return nil, err
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart)
	return buf.Bytes(), nil
}

func checkOffsets(offsets []int) error {
	prev := 0
	for _, off := range offsets {
		if off <= prev {
			return fmt.Errorf("render: non-monotonic object offset %d", off)
		}
		if off > 9999999999 {
			return fmt.Errorf("render: object offset %d exceeds xref field", off)
		}
		prev = off
	}
	return nil
}

// buildContentStream emits one text block: select Courier at size 10, place
// the origin at (50, 800), show the first line, and step down 12 units
// before each subsequent line.
func buildContentStream(text string) string {
	var b strings.Builder
	b.WriteString("BT\n")
	fmt.Fprintf(&b, "/F1 %d Tf\n", pdfFontSize)
	fmt.Fprintf(&b, "%d %d Td\n", pdfOriginX, pdfOriginY)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			fmt.Fprintf(&b, "0 -%d Td\n", pdfLeading)
		}
		fmt.Fprintf(&b, "(%s) Tj\n", escapePDFText(line))
	}
	b.WriteString("ET")
	return b.String()
}

// escapePDFText escapes the string-literal delimiters and replaces anything
// outside printable ASCII with '?', keeping the content stream 7-bit clean.
func escapePDFText(line string) string {
	var b strings.Builder
	for _, r := range line {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '(':
			b.WriteString(`\(`)
		case r == ')':
			b.WriteString(`\)`)
		case r < 32 || r > 126:
			b.WriteByte('?')
		default:
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
