package infra

// pdf.go — invoice generation using go-pdf/fpdf.
// Produces an A4 invoice with business name header, invoice number and date,
// customer block, item table and totals. The output file is saved to
// storagePath/factura_{invoiceNumber}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateFacturaPDF renders the invoice of a Venta (with Cliente and Items
// preloaded) and returns the absolute path of the written file.
func GenerateFacturaPDF(venta *model.Venta, nombreNegocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("factura_%s.pdf", sanitizeFileName(venta.InvoiceNumber))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, nombreNegocio, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Factura de Venta", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Invoice info ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, "Factura "+venta.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, venta.CreatedAt.Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	if venta.Cliente != nil {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, "Cliente: "+venta.Cliente.Name, "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, "Cédula: "+venta.Cliente.Cedula, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit price
	col4 := contentW * 0.20 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range venta.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Name
		}
		if len(nombre) > 40 {
			nombre = nombre[:39] + "…"
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		pdf.CellFormat(col1, 6, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+item.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 7, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(col1+col2+col3, 5, "Abonado:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "$"+venta.AmountPaid.StringFixed(2), "", 1, "R", false, 0, "")

	if venta.PaymentType == model.PagoCredito {
		saldo := venta.Total.Sub(venta.AmountPaid)
		pdf.CellFormat(col1+col2+col3, 5, "Saldo pendiente:", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, "$"+saldo.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	metodo := venta.PaymentMethod
	if venta.Bank != nil && *venta.Bank != "" {
		metodo += " (" + *venta.Bank + ")"
	}
	pdf.CellFormat(contentW, 5, "Forma de pago: "+venta.PaymentType+" / "+metodo, "", 1, "L", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 5, "¡Gracias por su compra!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, s)
}
