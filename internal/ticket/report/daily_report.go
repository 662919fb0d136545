// Package report builds the back-office daily transaction reports. These are
// A4 documents for accounting, separate from the byte-exact ticket exports.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

// BuildDailyPDF renders the day's transactions as a tabular A4 PDF.
func BuildDailyPDF(day time.Time, txs []ticket.TransactionSnapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Reporte diario de transacciones")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Fecha: %s", day.Format("02/01/2006")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Transacciones: %d", len(txs)))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 6, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Hora", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, "Concepto", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Monto", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Comision", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Usuario", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	var totalAmount, totalCommission float64
	for _, tx := range txs {
		pdf.CellFormat(20, 6, idText(tx.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, momentText(tx.Moment), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, tx.ResolvedConceptName(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, moneyText(tx.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, moneyText(tx.Commission), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, cashierText(tx.Cashier), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
		if tx.Amount != nil {
			totalAmount += *tx.Amount
		}
		if tx.Commission != nil {
			totalCommission += *tx.Commission
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(105, 6, "Totales", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", totalAmount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", totalCommission), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "", "1", 0, "L", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildDailyXLSX renders the day's transactions as an XLSX workbook with a
// summary sheet and an items sheet.
func BuildDailyXLSX(day time.Time, txs []ticket.TransactionSnapshot) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "resumen"
	itemsSheet := "transacciones"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}

	var totalAmount, totalCommission float64
	for _, tx := range txs {
		if tx.Amount != nil {
			totalAmount += *tx.Amount
		}
		if tx.Commission != nil {
			totalCommission += *tx.Commission
		}
	}

	_ = f.SetCellValue(summarySheet, "A1", "Reporte diario de transacciones")
	_ = f.SetCellValue(summarySheet, "A3", "Fecha")
	_ = f.SetCellValue(summarySheet, "B3", day.Format("02/01/2006"))
	_ = f.SetCellValue(summarySheet, "A4", "Transacciones")
	_ = f.SetCellValue(summarySheet, "B4", len(txs))
	_ = f.SetCellValue(summarySheet, "A5", "Monto total")
	_ = f.SetCellValue(summarySheet, "B5", totalAmount)
	_ = f.SetCellValue(summarySheet, "A6", "Comision total")
	_ = f.SetCellValue(summarySheet, "B6", totalCommission)

	_ = f.SetCellValue(itemsSheet, "A1", "ID")
	_ = f.SetCellValue(itemsSheet, "B1", "Hora")
	_ = f.SetCellValue(itemsSheet, "C1", "Concepto")
	_ = f.SetCellValue(itemsSheet, "D1", "Monto")
	_ = f.SetCellValue(itemsSheet, "E1", "Comision")
	_ = f.SetCellValue(itemsSheet, "F1", "Usuario")
	for i, tx := range txs {
		row := i + 2
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", row), idText(tx.ID))
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", row), momentText(tx.Moment))
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("C%d", row), tx.ResolvedConceptName())
		if tx.Amount != nil {
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("D%d", row), *tx.Amount)
		}
		if tx.Commission != nil {
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("E%d", row), *tx.Commission)
		}
		_ = f.SetCellValue(itemsSheet, fmt.Sprintf("F%d", row), cashierText(tx.Cashier))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func idText(id *int64) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%d", *id)
}

func momentText(moment *time.Time) string {
	if moment == nil {
		return ""
	}
	return moment.Format("15:04:05")
}

func moneyText(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func cashierText(cashier *ticket.CashierRef) string {
	if cashier == nil {
		return ""
	}
	return cashier.Username
}
