package interfaces

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/infoyupay/gang-comisiones-sub002/internal/audit"
	"github.com/infoyupay/gang-comisiones-sub002/internal/observability/metrics"
	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
	"github.com/infoyupay/gang-comisiones-sub002/internal/ticket/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves GET /api/v1/reports/daily?date=YYYY-MM-DD&format=...
type ReportHandler struct {
	repo        ticket.SnapshotRepository
	auditLogger audit.Logger
	logger      *log.Logger
}

// NewReportHandler constructs a handler.
func NewReportHandler(repo ticket.SnapshotRepository, auditLogger audit.Logger, logger *log.Logger) (*ReportHandler, error) {
	if repo == nil {
		return nil, errors.New("report handler: nil repository")
	}
	return &ReportHandler{repo: repo, auditLogger: auditLogger, logger: logger}, nil
}

// ServeHTTP handles the daily report route.
func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	day, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	formatName := r.URL.Query().Get("format")
	if formatName != "pdf" && formatName != "xlsx" {
		http.Error(w, "unknown format", http.StatusBadRequest)
		return
	}

	start := time.Now()
	txs, err := h.repo.ListTransactionsByDay(r.Context(), day)
	if err != nil {
		h.fail(w, formatName, "transaction list failed", err)
		return
	}

	var payload []byte
	switch formatName {
	case "pdf":
		payload, err = report.BuildDailyPDF(day, txs)
	case "xlsx":
		payload, err = report.BuildDailyXLSX(day, txs)
	}
	if err != nil {
		h.fail(w, formatName, "report build failed", err)
		return
	}

	if formatName == "pdf" {
		w.Header().Set("Content-Type", "application/pdf")
	} else {
		w.Header().Set("Content-Type", xlsxContentType)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
	metrics.ObserveDailyReport(formatName, "success", time.Since(start))
	h.logAudit(r, day, formatName, len(payload))
}

func (h *ReportHandler) fail(w http.ResponseWriter, formatName, msg string, err error) {
	if h.logger != nil {
		h.logger.Printf("report: %s: %v", msg, err)
	}
	metrics.ObserveDailyReport(formatName, "error", 0)
	http.Error(w, msg, http.StatusInternalServerError)
}

func (h *ReportHandler) logAudit(r *http.Request, day time.Time, formatName string, size int) {
	if h.auditLogger == nil {
		return
	}
	meta, _ := json.Marshal(map[string]any{"format": formatName, "bytes": size})
	entry := audit.Entry{
		Actor:        r.Header.Get("X-User"),
		Action:       "report.daily",
		ResourceType: "report",
		ResourceID:   day.Format("2006-01-02"),
		Metadata:     meta,
		IP:           r.RemoteAddr,
		UserAgent:    r.UserAgent(),
	}
	if err := h.auditLogger.Log(r.Context(), entry); err != nil && h.logger != nil {
		h.logger.Printf("report: audit log failed: %v", err)
	}
}
