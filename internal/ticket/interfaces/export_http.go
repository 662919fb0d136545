// Package interfaces exposes the export pipeline over HTTP to the
// back-office clients: ticket exports per transaction and daily reports.
package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/infoyupay/gang-comisiones-sub002/internal/audit"
	"github.com/infoyupay/gang-comisiones-sub002/internal/observability/metrics"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/application"
	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

const exportRoutePrefix = "/api/v1/transactions/"

// ExportHandler serves GET /api/v1/transactions/{id}/export?format=...
type ExportHandler struct {
	repo        ticket.SnapshotRepository
	exporter    *application.Exporter
	auditLogger audit.Logger
	logger      *log.Logger
}

// NewExportHandler constructs a handler.
func NewExportHandler(repo ticket.SnapshotRepository, exporter *application.Exporter, auditLogger audit.Logger, logger *log.Logger) (*ExportHandler, error) {
	if repo == nil {
		return nil, errors.New("export handler: nil repository")
	}
	if exporter == nil {
		return nil, errors.New("export handler: nil exporter")
	}
	return &ExportHandler{repo: repo, exporter: exporter, auditLogger: auditLogger, logger: logger}, nil
}

// ServeHTTP handles export routes under /api/v1/transactions.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, exportRoutePrefix)
	idPart, action, found := strings.Cut(rest, "/")
	if !found || action != "export" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	formatName := r.URL.Query().Get("format")
	output, ok := outputTypeFor(formatName)
	if !ok {
		http.Error(w, "unknown format", http.StatusBadRequest)
		return
	}

	start := time.Now()
	tx, err := h.repo.FindTransaction(r.Context(), id)
	if errors.Is(err, ticket.ErrTransactionNotFound) {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(w, formatName, "snapshot load failed", err)
		return
	}
	cfg, err := h.repo.FindGlobalConfig(r.Context())
	if err != nil {
		h.fail(w, formatName, "config load failed", err)
		return
	}

	future, err := h.exporter.Export(tx, output, cfg)
	if err != nil {
		h.fail(w, formatName, "export rejected", err)
		return
	}
	payload, err := future.Wait(r.Context())
	if err != nil {
		h.fail(w, formatName, "export failed", err)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(output))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload.Bytes)
	metrics.ObserveTicketExport(formatName, "success", time.Since(start))
	h.logAudit(r, id, formatName, len(payload.Bytes))
}

func (h *ExportHandler) fail(w http.ResponseWriter, formatName, msg string, err error) {
	if h.logger != nil {
		h.logger.Printf("export: %s: %v", msg, err)
	}
	metrics.ObserveTicketExport(formatName, "error", 0)
	http.Error(w, msg, http.StatusInternalServerError)
}

func (h *ExportHandler) logAudit(r *http.Request, id int64, formatName string, size int) {
	if h.auditLogger == nil {
		return
	}
	meta, _ := json.Marshal(map[string]any{"format": formatName, "bytes": size})
	entry := audit.Entry{
		Actor:        r.Header.Get("X-User"),
		Action:       "ticket.export",
		ResourceType: "transaction",
		ResourceID:   strconv.FormatInt(id, 10),
		Metadata:     meta,
		IP:           r.RemoteAddr,
		UserAgent:    r.UserAgent(),
	}
	if err := h.auditLogger.Log(r.Context(), entry); err != nil && h.logger != nil {
		h.logger.Printf("export: audit log failed: %v", err)
	}
}

func outputTypeFor(formatName string) (ticket.OutputType, bool) {
	switch formatName {
	case "html":
		return ticket.OutputPreviewHTML, true
	case "pdf":
		return ticket.OutputPDF, true
	case "escpos", "printer":
		return ticket.OutputPrinterTicket, true
	}
	return "", false
}

func contentTypeFor(output ticket.OutputType) string {
	switch output {
	case ticket.OutputPreviewHTML:
		return "text/html; charset=utf-8"
	case ticket.OutputPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
