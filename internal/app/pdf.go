package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WriteReportPDF renders a lookup's context block into a minimal PDF: the
// query as a heading, then the text line by line with bare URLs turned into
// clickable links. Layout is intentionally simple.
func WriteReportPDF(query, contextBlock, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, query, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(3)

	scanner := bufio.NewScanner(strings.NewReader(contextBlock))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			pdf.WriteLinkString(5, line, line)
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outPath)
}
