package usecase

import (
	"context"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// DocumentUseCase lectura y reemplazo del documento completo y de las tasas globales.
type DocumentUseCase struct {
	ws *WorkspaceUseCase
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(ws *WorkspaceUseCase) *DocumentUseCase {
	return &DocumentUseCase{ws: ws}
}

// Get devuelve la instantánea completa en el formato persistido.
func (uc *DocumentUseCase) Get(ctx context.Context) (*entity.Document, error) {
	return uc.ws.Snapshot(ctx)
}

// Replace valida y sobrescribe el documento completo (último en escribir gana).
func (uc *DocumentUseCase) Replace(ctx context.Context, body []byte) (*entity.Document, error) {
	next, err := entity.ParseDocument(body)
	if err != nil {
		return nil, err
	}
	return uc.ws.Mutate(ctx, "document.replace", func(doc *entity.Document) (bool, error) {
		*doc = *next
		return true, nil
	})
}

// Rates tasas vigentes.
func (uc *DocumentUseCase) Rates(ctx context.Context) (*dto.RatesResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.ToRatesResponse(doc.RateConfig)
	return &resp, nil
}

// UpdateRates valida antes de guardar: comisiones en [0, 100) y KDV >= 0.
func (uc *DocumentUseCase) UpdateRates(ctx context.Context, in dto.RatesRequest) (*dto.RatesResponse, error) {
	doc, err := uc.ws.Mutate(ctx, "rates.update", func(doc *entity.Document) (bool, error) {
		next := doc.RateConfig
		if in.PlatformCommissionRate != nil {
			next.PlatformCommissionRate = entity.Number(in.PlatformCommissionRate.Float())
		}
		if in.KDVRate != nil {
			next.KDVRate = entity.Number(in.KDVRate.Float())
		}
		if in.BankCommissionRate != nil {
			next.BankCommissionRate = entity.Number(in.BankCommissionRate.Float())
		}
		if err := next.Validate(); err != nil {
			return false, err
		}
		if next == doc.RateConfig {
			return false, nil
		}
		doc.RateConfig = next
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToRatesResponse(doc.RateConfig)
	return &resp, nil
}
