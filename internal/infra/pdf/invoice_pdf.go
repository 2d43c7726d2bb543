package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"garageonline/internal/domain/model"
	"garageonline/internal/format"

	"github.com/go-pdf/fpdf"
)

// InvoicePDFRenderer はInvoice値をA4縦のPDFに描画する。
// レイアウトは固定座標（mm）。
type InvoicePDFRenderer struct{}

func NewInvoicePDFRenderer() *InvoicePDFRenderer {
	return &InvoicePDFRenderer{}
}

func (r *InvoicePDFRenderer) Render(inv model.Invoice) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	y := 20.0

	// ヘッダ
	doc.SetFont("Helvetica", "B", 18)
	title := "Factura - GarageOnline"
	doc.Text(105-doc.GetStringWidth(title)/2, y, title)
	y += 15

	doc.SetFont("Helvetica", "", 12)
	doc.Text(20, y, tr(fmt.Sprintf("Fecha: %s", inv.Date.Format("02/01/2006"))))
	doc.Text(20, y+7, tr(fmt.Sprintf("Cliente: %s", inv.CustomerName)))
	y += 20

	// 明細の見出し
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(20, y, tr("Vehículo"))
	doc.Text(120, y, "Cantidad")
	doc.Text(150, y, "Precio Unit.")
	doc.Text(180, y, "Subtotal")
	y += 7
	doc.Line(20, y-2, 190, y-2)

	// 明細行（カートの追加順のまま）
	doc.SetFont("Helvetica", "", 12)
	for _, l := range inv.Lines {
		doc.Text(20, y, tr(l.Description))
		doc.Text(125, y, fmt.Sprintf("%d", l.Quantity))
		doc.Text(150, y, format.Price(l.UnitPrice))
		doc.Text(180, y, format.Price(l.Subtotal))
		y += 7
	}

	// 合計
	y += 5
	doc.Line(120, y, 190, y)
	y += 7
	doc.SetFont("Helvetica", "B", 12)
	doc.Text(150, y, "Total:")
	doc.Text(180, y, format.Price(inv.Total))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ダウンロード時のファイル名
func (r *InvoicePDFRenderer) Filename(inv model.Invoice) string {
	name := strings.ReplaceAll(strings.TrimSpace(inv.CustomerName), " ", "_")
	if name == "" {
		name = "Cliente"
	}
	return fmt.Sprintf("factura_GarageOnline_%s.pdf", name)
}
