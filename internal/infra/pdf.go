package infra

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

// truncar cuts s to at most max runes, marking the cut with an ellipsis.
// Byte slicing would split multi-byte characters like the accents in
// "Capacitación".
func truncar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// GenerarReporteVencimientos writes an A4 PDF listing expired documents with
// their company, category, and expiration date.
func GenerarReporteVencimientos(documentos []model.Documento, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Reporte de Documentos Vencidos", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.34 // document name
	col2 := contentW * 0.26 // empresa
	col3 := contentW * 0.22 // categoria
	col4 := contentW * 0.18 // vencimiento

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Documento", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Empresa", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Categoría", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "Vencimiento", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range documentos {
		nombre := truncar(d.Nombre, 40)
		empresa := "-"
		if d.Empresa != nil {
			empresa = d.Empresa.Nombre
		}
		categoria := "-"
		if d.Categoria != nil {
			categoria = d.Categoria.Nombre
		}
		vencimiento := "-"
		if d.FechaVencimiento != nil {
			vencimiento = d.FechaVencimiento.Format("02/01/2006")
		}
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, empresa, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, categoria, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, vencimiento, "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Total: %d documentos vencidos", len(documentos)), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
