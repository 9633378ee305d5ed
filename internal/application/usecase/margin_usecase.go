package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/dto"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/report"
)

// MarginUseCase columnas de margen por canal. Un par (valor, canal) repetido es un no-op.
type MarginUseCase struct {
	ws *WorkspaceUseCase
}

// NewMarginUseCase construye el caso de uso.
func NewMarginUseCase(ws *WorkspaceUseCase) *MarginUseCase {
	return &MarginUseCase{ws: ws}
}

// List márgenes de ambos canales ordenados por valor.
func (uc *MarginUseCase) List(ctx context.Context) (*dto.MarginColumnsResponse, error) {
	doc, err := uc.ws.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.MarginColumnsResponse{
		Store:  []dto.MarginResponse{},
		Online: []dto.MarginResponse{},
	}
	for _, m := range report.MarginColumns(doc.Margins, entity.ChannelStore) {
		out.Store = append(out.Store, dto.ToMarginResponse(m))
	}
	for _, m := range report.MarginColumns(doc.Margins, entity.ChannelOnline) {
		out.Online = append(out.Online, dto.ToMarginResponse(m))
	}
	return out, nil
}

// Add crea una columna de margen. Si ya existe el par (valor, canal) no cambia nada.
func (uc *MarginUseCase) Add(ctx context.Context, in dto.MarginRequest) (*dto.MarginMutationResponse, error) {
	value, ch, err := parseMargin(in)
	if err != nil {
		return nil, err
	}
	m := entity.Margin{ID: uuid.New().String(), Value: entity.Number(value), Type: ch}
	changed := false
	_, err = uc.ws.Mutate(ctx, "margin.add", func(doc *entity.Document) (bool, error) {
		for _, existing := range doc.Margins {
			if existing.SameAs(value, ch) {
				return false, nil
			}
		}
		doc.Margins = append(doc.Margins, m)
		changed = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return &dto.MarginMutationResponse{Changed: false}, nil
	}
	resp := dto.ToMarginResponse(m)
	return &dto.MarginMutationResponse{Margin: &resp, Changed: true}, nil
}

// Update cambia valor o canal. Si choca con otra columna existente no cambia nada.
func (uc *MarginUseCase) Update(ctx context.Context, id string, in dto.MarginRequest) (*dto.MarginMutationResponse, error) {
	value, ch, err := parseMargin(in)
	if err != nil {
		return nil, err
	}
	var current entity.Margin
	changed := false
	_, err = uc.ws.Mutate(ctx, "margin.update", func(doc *entity.Document) (bool, error) {
		i := doc.MarginIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		current = doc.Margins[i]
		for j, existing := range doc.Margins {
			if j != i && existing.SameAs(value, ch) {
				return false, nil
			}
		}
		if current.SameAs(value, ch) {
			return false, nil
		}
		doc.Margins[i].Value = entity.Number(value)
		doc.Margins[i].Type = ch
		current = doc.Margins[i]
		changed = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToMarginResponse(current)
	return &dto.MarginMutationResponse{Margin: &resp, Changed: changed}, nil
}

// Delete elimina la columna.
func (uc *MarginUseCase) Delete(ctx context.Context, id string) error {
	_, err := uc.ws.Mutate(ctx, "margin.delete", func(doc *entity.Document) (bool, error) {
		i := doc.MarginIndex(id)
		if i < 0 {
			return false, domain.ErrNotFound
		}
		doc.Margins = append(doc.Margins[:i], doc.Margins[i+1:]...)
		return true, nil
	})
	return err
}

func parseMargin(in dto.MarginRequest) (float64, entity.Channel, error) {
	ch, err := entity.ParseChannel(in.Type)
	if err != nil {
		return 0, "", fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	value := in.Value.Float()
	if value <= 0 {
		return 0, "", fmt.Errorf("el margen debe ser > 0: %w", domain.ErrInvalidInput)
	}
	return value, ch, nil
}
