package repository

import (
	"context"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia del documento completo (DIP).
// No hay actualizaciones parciales: Save sobrescribe todo y el último en escribir gana.
type DocumentRepository interface {
	// Load devuelve el documento guardado; si no existe, persiste y devuelve entity.DefaultDocument().
	Load(ctx context.Context) (*entity.Document, error)
	// Save sobrescribe el documento completo.
	Save(ctx context.Context, doc *entity.Document) error
}
