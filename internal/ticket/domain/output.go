package ticket

// OutputType identifies one of the three ticket export formats.
type OutputType string

const (
	OutputPreviewHTML   OutputType = "PREVIEW_HTML"
	OutputPDF           OutputType = "PDF"
	OutputPrinterTicket OutputType = "PRINTER_TICKET"
)

// Valid reports whether t is one of the known output types.
func (t OutputType) Valid() bool {
	switch t {
	case OutputPreviewHTML, OutputPDF, OutputPrinterTicket:
		return true
	}
	return false
}

// Payload pairs an output type with the rendered bytes for that type.
type Payload struct {
	Type  OutputType
	Bytes []byte
}
