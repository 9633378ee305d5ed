package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
)

// DefaultPriceListTitle título de la lista de precios impresa.
const DefaultPriceListTitle = "Fiyat Listesi"

// ExportUseCase genera la tabla de precios en XLSX y PDF.
type ExportUseCase struct {
	pricing *PricingUseCase
	xlsx    ports.SpreadsheetExporter
	pdf     ports.PDFExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(pricing *PricingUseCase, xlsx ports.SpreadsheetExporter, pdf ports.PDFExporter) *ExportUseCase {
	return &ExportUseCase{pricing: pricing, xlsx: xlsx, pdf: pdf}
}

// PricingWorkbook planilla de la tabla de precios vigente.
func (uc *ExportUseCase) PricingWorkbook(ctx context.Context) ([]byte, error) {
	t, err := uc.pricing.BuildTable(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.xlsx.PricingWorkbook(t)
	if err != nil {
		return nil, fmt.Errorf("exportar xlsx: %w", err)
	}
	return out, nil
}

// PriceListPDF lista de precios imprimible.
func (uc *ExportUseCase) PriceListPDF(ctx context.Context, title string) ([]byte, error) {
	if title == "" {
		title = DefaultPriceListTitle
	}
	t, err := uc.pricing.BuildTable(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.PriceListPDF(t, title)
	if err != nil {
		return nil, fmt.Errorf("exportar pdf: %w", err)
	}
	return out, nil
}
