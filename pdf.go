package main

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 210 // A4 width in mm
	pdfMargin     = 10  // margin in mm
	pdfLineHeight = 6   // row height in mm
	pdfFontSize   = 10
)

// generatePDF writes the language report as a table to a PDF file.
func generatePDF(report Report, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", pdfFontSize+2)
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, "Language statistics", "", "L", false)
	pdf.Ln(pdfLineHeight / 2)

	colWidths := []float64{55, 35, 35, 25, 30}
	headers := []string{"Language", "Bytes", "Lines", "Files", "Tokens"}

	hasTokens := false
	for _, lang := range report.Languages {
		if lang.Tokens > 0 {
			hasTokens = true
			break
		}
	}
	cols := len(headers)
	if !hasTokens {
		cols--
	}

	pdf.SetFont("Helvetica", "B", pdfFontSize)
	for i := 0; i < cols; i++ {
		pdf.CellFormat(colWidths[i], pdfLineHeight, headers[i], "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", pdfFontSize)
	var totalFiles, totalBytes, totalLines int64
	for _, lang := range report.Languages {
		row := []string{
			lang.Name,
			fmt.Sprintf("%d", lang.Bytes),
			fmt.Sprintf("%d", lang.Lines),
			fmt.Sprintf("%d", lang.Files),
			fmt.Sprintf("%d", lang.Tokens),
		}
		for i := 0; i < cols; i++ {
			pdf.CellFormat(colWidths[i], pdfLineHeight, row[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		totalFiles += lang.Files
		totalBytes += lang.Bytes
		totalLines += lang.Lines
	}

	pdf.Ln(pdfLineHeight / 2)
	pdf.SetFont("Helvetica", "B", pdfFontSize)
	summary := fmt.Sprintf("Total: %d bytes, %d lines, %d files across %d languages",
		totalBytes, totalLines, totalFiles, len(report.Languages))
	pdf.MultiCell(pdfPageWidth-2*pdfMargin, pdfLineHeight, summary, "", "L", false)

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF to %s: %w", outputPath, err)
	}
	return nil
}
