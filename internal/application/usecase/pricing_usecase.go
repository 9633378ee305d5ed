package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/pricing"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
)

// PricingUseCase tabla comparativa de márgenes y cotizaciones puntuales.
type PricingUseCase struct {
	ws *WorkspaceUseCase
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(ws *WorkspaceUseCase) *PricingUseCase {
	return &PricingUseCase{ws: ws}
}

// BuildTable arma la tabla del dominio a partir de la instantánea (usada también por las exportaciones).
func (uc *PricingUseCase) BuildTable(ctx context.Context) (report.Table, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return report.Table{}, err
	}
	return report.BuildTable(doc), nil
}

// Table tabla de precios por categoría y canal.
func (uc *PricingUseCase) Table(ctx context.Context) (*dto.PricingTableResponse, error) {
	t, err := uc.BuildTable(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPricingTableResponse(t)
	return &resp, nil
}

// Quote cotiza (costo, margen, canal) con las tasas vigentes.
func (uc *PricingUseCase) Quote(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	ch, err := entity.ParseChannel(in.Channel)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	q, err := pricing.NewQuote(in.Cost.Float(), in.MarginPct.Float(), ch, doc.RateConfig)
	if err != nil {
		return nil, err
	}
	resp := dto.ToQuoteResponse(q)
	return &resp, nil
}
