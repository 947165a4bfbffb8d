package infra

// pdf.go — factura PDF generation using go-pdf/fpdf. Produces a half-letter
// style invoice: business header, factura/orden numbers, line-item table,
// totals block (subtotal, impuesto, descuento, propina, envio, total) and
// payment method. Output: storagePath/factura_<id>.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateFacturaPDF renders the invoice for a facturada Orden. orden must
// have Detalles (and Productos) preloaded. Returns the written file path.
func GenerateFacturaPDF(negocio string, factura *model.Factura, orden *model.Orden, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%s.pdf", factura.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 140, Ht: 216}, // media carta
	})
	pdf.SetMargins(8, 8, 8)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 16

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, negocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Factura", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Orden N° %d", orden.NumeroOrden), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, factura.Fecha.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	if factura.RTN != "" {
		pdf.CellFormat(contentW, 4, "RTN: "+factura.RTN, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(8, pdf.GetY(), pageW-8, pdf.GetY())
	pdf.Ln(2)

	// ── Detalles ─────────────────────────────────────────────────────────────
	col1 := contentW * 0.50 // producto
	col2 := contentW * 0.14 // cantidad
	col3 := contentW * 0.36 // total

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 5, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, det := range orden.Detalles {
		nombre := ""
		if det.Producto != nil {
			nombre = det.Producto.Nombre
		}
		if len(nombre) > 30 {
			nombre = nombre[:29] + "…"
		}
		pdf.CellFormat(col1, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", det.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "L "+det.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(8, pdf.GetY(), pageW-8, pdf.GetY())
	pdf.Ln(2)

	// ── Totales ──────────────────────────────────────────────────────────────
	totalRow := func(label string, monto decimal.Decimal, negative bool) {
		if monto.IsZero() {
			return
		}
		prefix := "L "
		if negative {
			prefix = "-L "
		}
		pdf.CellFormat(col1+col2, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, prefix+monto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 8)
	totalRow("Subtotal:", factura.Subtotal, false)
	totalRow("Impuesto:", factura.Impuesto, false)
	totalRow("Descuento:", factura.Descuento, true)
	totalRow("Propina:", factura.Propina, false)
	totalRow("Envio:", factura.CostoEnvio, false)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "L "+factura.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 4, "Pago: "+factura.MetodoPago, "", 1, "L", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
