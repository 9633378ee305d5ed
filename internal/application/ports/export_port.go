package ports

import "github.com/jhoicas/fiyatvizyon-api/internal/domain/report"

// SpreadsheetExporter genera una planilla (XLSX) de la tabla de precios.
type SpreadsheetExporter interface {
	PricingWorkbook(t report.Table) ([]byte, error)
}

// PDFExporter genera la lista de precios imprimible.
type PDFExporter interface {
	PriceListPDF(t report.Table, title string) ([]byte, error)
}
