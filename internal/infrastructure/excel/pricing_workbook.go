// Package excel exporta la tabla de precios a una planilla XLSX con una hoja por canal.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
	"github.com/jhoicas/fiyatvizyon-api/pkg/money"
)

var _ ports.SpreadsheetExporter = (*Exporter)(nil)

// Nombres de hoja por canal.
const (
	SheetStore  = "Mağaza"
	SheetOnline = "Online"
	SheetRates  = "Oranlar"
)

const uncategorizedLabel = "Kategorisiz"

// Exporter implementa ports.SpreadsheetExporter con excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// PricingWorkbook una hoja por canal con una columna de precio y una de diferencia por margen,
// más una hoja con las tasas usadas. Los valores no finitos se escriben como "—".
func (e *Exporter) PricingWorkbook(t report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	numFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo numérico: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	first := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(first, SheetStore); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetOnline); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	sheets := []struct {
		name    string
		margins []entity.Margin
		view    func(report.Row) report.ChannelView
	}{
		{SheetStore, t.StoreMargins, func(r report.Row) report.ChannelView { return r.Store }},
		{SheetOnline, t.OnlineMargins, func(r report.Row) report.ChannelView { return r.Online }},
	}
	for _, s := range sheets {
		if err := writeChannelSheet(f, s.name, t, s.margins, s.view, headerStyle, moneyStyle); err != nil {
			return nil, err
		}
	}
	if err := writeRatesSheet(f, t.Rates, headerStyle); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func writeChannelSheet(
	f *excelize.File,
	sheet string,
	t report.Table,
	margins []entity.Margin,
	view func(report.Row) report.ChannelView,
	headerStyle, moneyStyle int,
) error {
	header := []interface{}{"Kategori", "Ürün", "Maliyet", "Liste Fiyatı", "Net Ele Geçen"}
	for _, m := range margins {
		pct := money.TRY().Percent(m.Value.Float())
		header = append(header, pct+" Fiyat", pct+" Fark")
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: cabecera %s: %w", sheet, err)
	}
	lastCol, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("xlsx: celdas: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	rowIdx := 2
	for _, sec := range t.Sections {
		label := uncategorizedLabel
		if sec.Category != nil {
			label = sec.Category.Name
		}
		for _, r := range sec.Rows {
			v := view(r)
			excelRow := []interface{}{label, r.Product.Name, cellValue(r.Cost), cellValue(v.ListPrice), cellValue(v.NetSettlement)}
			for _, c := range v.Cells {
				excelRow = append(excelRow, cellValue(c.SellingPrice), cellValue(c.Diff))
			}
			cell, err := excelize.CoordinatesToCellName(1, rowIdx)
			if err != nil {
				return fmt.Errorf("xlsx: celdas: %w", err)
			}
			if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
				return fmt.Errorf("xlsx: fila %d: %w", rowIdx, err)
			}
			rowIdx++
		}
	}

	if rowIdx > 2 {
		lastCell, err := excelize.CoordinatesToCellName(len(header), rowIdx-1)
		if err != nil {
			return fmt.Errorf("xlsx: celdas: %w", err)
		}
		if err := f.SetCellStyle(sheet, "C2", lastCell, moneyStyle); err != nil {
			return fmt.Errorf("xlsx: estilo numérico: %w", err)
		}
	}
	_ = f.SetColWidth(sheet, "A", "B", 24)
	return nil
}

func writeRatesSheet(f *excelize.File, rates entity.RateConfig, headerStyle int) error {
	if _, err := f.NewSheet(SheetRates); err != nil {
		return fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	rows := [][]interface{}{
		{"Oran", "%"},
		{"Platform Komisyonu", rates.PlatformCommissionRate.Float()},
		{"KDV", rates.KDVRate.Float()},
		{"Banka Komisyonu", rates.BankCommissionRate.Float()},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: celdas: %w", err)
		}
		if err := f.SetSheetRow(SheetRates, cell, &r); err != nil {
			return fmt.Errorf("xlsx: tasas: %w", err)
		}
	}
	_ = f.SetColWidth(SheetRates, "A", "A", 22)
	return f.SetCellStyle(SheetRates, "A1", "B1", headerStyle)
}

// cellValue número redondeado a 2 decimales o el marcador si no es finito.
func cellValue(v float64) interface{} {
	d, ok := money.Decimal(v, money.DisplayPlaces)
	if !ok {
		return money.Placeholder
	}
	out, _ := d.Float64()
	return out
}
