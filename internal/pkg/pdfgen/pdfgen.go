// Package pdfgen renders payment receipts as PDF documents.
package pdfgen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"aw-society/internal/adapters/persistence/models"
)

// ReceiptPDF renders an official payment receipt for one transaction.
func ReceiptPDF(txn *models.Transaction, member *models.Member) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(15, 23, 42)
	pdf.Rect(0, 0, 210, 42, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(15, 14)
	pdf.Cell(100, 10, "AW SOCIETY")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(15, 26)
	pdf.Cell(100, 6, "Official Payment Receipt")

	// Receipt info
	pdf.SetTextColor(51, 65, 85)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(130, 52)
	pdf.Cell(30, 5, "RECEIPT NO:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(45, 5, txn.TransactionID, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(130, 58)
	pdf.Cell(30, 5, "DATE:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(45, 5, time.Now().Format("02/01/2006"), "", 1, "R", false, 0, "")

	// Bill to
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(15, 52)
	pdf.Cell(80, 7, "Bill To:")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(15, 60)
	pdf.Cell(80, 6, member.Name)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(15, 66)
	pdf.Cell(80, 5, fmt.Sprintf("Email: %s", member.Email))
	pdf.SetXY(15, 71)
	pdf.Cell(80, 5, fmt.Sprintf("Mobile: %s", member.Mobile))
	pdf.SetXY(15, 76)
	pdf.Cell(80, 5, fmt.Sprintf("Member ID: %s", member.RegNo))

	// Table header
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(15, 92, 180, 10, "F")
	pdf.SetTextColor(71, 85, 105)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(20, 95)
	pdf.Cell(100, 5, "DESCRIPTION")
	pdf.SetXY(150, 95)
	pdf.CellFormat(40, 5, "AMOUNT", "", 0, "R", false, 0, "")

	// Table content
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(20, 108)
	pdf.Cell(100, 6, txn.Type)
	description := txn.Description
	if description == "" {
		description = "No description provided"
	}
	pdf.SetTextColor(100, 116, 139)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 114)
	pdf.Cell(120, 5, description)
	pdf.SetTextColor(15, 23, 42)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(140, 108)
	pdf.CellFormat(50, 6, fmt.Sprintf("Rs. %.2f", txn.Amount), "", 0, "R", false, 0, "")

	// Separator
	pdf.SetDrawColor(226, 232, 240)
	pdf.Line(15, 128, 195, 128)

	// Total
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(90, 136)
	pdf.Cell(60, 6, "TOTAL AMOUNT PAID")
	pdf.SetTextColor(37, 99, 235)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(140, 144)
	pdf.CellFormat(50, 8, fmt.Sprintf("Rs. %.2f", txn.Amount), "", 0, "R", false, 0, "")

	// Footer
	pdf.SetTextColor(148, 163, 184)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetXY(15, 265)
	pdf.CellFormat(180, 5, "This is a computer generated receipt and does not require a physical signature.", "", 1, "C", false, 0, "")
	pdf.SetX(15)
	pdf.CellFormat(180, 5, "AW SOCIETY Management System", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
