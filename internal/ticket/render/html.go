package render

import (
	"strings"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/format"
)

const (
	htmlHead = "<!DOCTYPE html>\n" +
		"<html lang=\"es\">\n" +
		"<head>\n" +
		"<meta charset=\"UTF-8\">\n" +
		"<title>Ticket</title>\n" +
		"</head>\n" +
		"<body>\n" +
		"<pre style=\"font-family:monospace;\">"
	htmlTail = "</pre>\n" +
		"</body>\n" +
		"</html>\n"
)

// HTML renders the ticket as a minimal UTF-8 HTML5 preview document holding
// exactly one preformatted block.
func HTML(cfg *ticket.ConfigSnapshot, tx *ticket.TransactionSnapshot) []byte {
	return []byte(htmlHead + escapeHTMLText(format.Ticket(cfg, tx)) + htmlTail)
}

// escapeHTMLText replaces &, < and > with named entities. The ampersand pass
// runs first so the entities introduced for < and > are never re-escaped.
func escapeHTMLText(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
