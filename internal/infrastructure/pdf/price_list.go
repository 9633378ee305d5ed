// Package pdf genera la lista de precios imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + tasas vigentes                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍA                                                  │
//	│  Ürün | Maliyet | Mağaza | Net | Online | Net               │
//	│  ...                                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota sobre el cálculo de netos                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
	"github.com/jhoicas/fiyatvizyon-api/pkg/money"
)

var _ ports.PDFExporter = (*MarotoPriceList)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const uncategorizedLabel = "Kategorisiz"

// MarotoPriceList implementa ports.PDFExporter usando Maroto v2.
type MarotoPriceList struct {
	format *money.Formatter
}

// NewMarotoPriceList construye el generador con formato TRY.
func NewMarotoPriceList() *MarotoPriceList {
	return &MarotoPriceList{format: money.TRY()}
}

// PriceListPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPriceList) PriceListPDF(t report.Table, title string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, t.Rates, g.format))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, sec := range t.Sections {
		m.AddRows(sectionRow(sec))
		m.AddRows(tableHeaderRow())
		for _, r := range sec.Rows {
			m.AddRows(productRow(r, g.format))
		}
		m.AddRows(line.NewRow(2))
	}
	if t.RowCount() == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Henüz ürün yok.", props.Text{Size: 9, Top: 3, Color: colorGray}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, rates entity.RateConfig, f *money.Formatter) core.Row {
	summary := fmt.Sprintf("KDV %s   |   Platform %s   |   Banka %s",
		f.Percent(rates.KDVRate.Float()),
		f.Percent(rates.PlatformCommissionRate.Float()),
		f.Percent(rates.BankCommissionRate.Float()),
	)
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(5).Add(
			text.New(summary, props.Text{Size: 8, Align: align.Right, Top: 4, Color: colorGray}),
		),
	)
}

func sectionRow(sec report.Section) core.Row {
	label := uncategorizedLabel
	if sec.Category != nil {
		label = sec.Category.Name
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Ürün", 4, align.Left),
		h("Maliyet", 2, align.Right),
		h("Mağaza", 2, align.Right),
		h("Net", 1, align.Right),
		h("Online", 2, align.Right),
		h("Net", 1, align.Right),
	)
}

func productRow(r report.Row, f *money.Formatter) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(6).Add(
		cell(r.Product.Name, 4, align.Left),
		cell(f.Format(r.Cost), 2, align.Right),
		cell(f.Format(r.Store.ListPrice), 2, align.Right),
		cell(f.Format(r.Store.NetSettlement), 1, align.Right),
		cell(f.Format(r.Online.ListPrice), 2, align.Right),
		cell(f.Format(r.Online.NetSettlement), 1, align.Right),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Mağaza neti banka komisyonu KDV dahil fiyattan, online neti platform komisyonu KDV hariç tutardan düşülerek hesaplanır.",
			props.Text{Size: 7, Top: 2, Color: colorGray}),
	))
}
