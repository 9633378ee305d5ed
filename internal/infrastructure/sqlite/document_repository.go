package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo adaptador SQLite: fila única id = 1.
type DocumentRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db, now: time.Now}
}

// Load lee la fila; si no existe guarda y devuelve el documento por defecto.
func (r *DocumentRepo) Load(ctx context.Context) (*entity.Document, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE id = 1`).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			doc := entity.DefaultDocument()
			if err := r.Save(ctx, doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	var doc entity.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
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
	const query = `
		INSERT INTO documents (id, body, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, string(body), r.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}
