package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo guarda el documento en una fila JSONB (id = 1). Las tasas se replican en
// columnas NUMERIC para consultas SQL; la fuente de verdad es body.
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Load obtiene el documento; si no hay fila, persiste el documento por defecto.
func (r *DocumentRepo) Load(ctx context.Context) (*entity.Document, error) {
	var body []byte
	err := r.q.QueryRow(ctx, `SELECT body FROM pricing_documents WHERE id = 1`).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			doc := entity.DefaultDocument()
			if err := r.Save(ctx, doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	var doc entity.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Save sobrescribe la fila completa.
func (r *DocumentRepo) Save(ctx context.Context, doc *entity.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	query := `
		INSERT INTO pricing_documents (id, body, platform_commission_rate, kdv_rate, bank_commission_rate, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE SET
			body = EXCLUDED.body,
			platform_commission_rate = EXCLUDED.platform_commission_rate,
			kdv_rate = EXCLUDED.kdv_rate,
			bank_commission_rate = EXCLUDED.bank_commission_rate,
			updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query,
		body,
		decimal.NewFromFloat(doc.PlatformCommissionRate.Float()),
		decimal.NewFromFloat(doc.KDVRate.Float()),
		decimal.NewFromFloat(doc.BankCommissionRate.Float()),
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

// StoredRates tasas espejo tal como están en la fila (NUMERIC -> decimal).
type StoredRates struct {
	PlatformCommissionRate decimal.Decimal
	KDVRate                decimal.Decimal
	BankCommissionRate     decimal.Decimal
}

// LoadRates lee las columnas NUMERIC sin decodificar el documento completo.
func (r *DocumentRepo) LoadRates(ctx context.Context) (*StoredRates, error) {
	var out StoredRates
	err := r.q.QueryRow(ctx,
		`SELECT platform_commission_rate, kdv_rate, bank_commission_rate FROM pricing_documents WHERE id = 1`,
	).Scan(&out.PlatformCommissionRate, &out.KDVRate, &out.BankCommissionRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rates: %w", err)
	}
	return &out, nil
}
