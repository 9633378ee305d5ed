// Package filestore persiste el documento como un único archivo JSON que se
// reescribe completo en cada cambio.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo adaptador de archivo JSON.
type DocumentRepo struct {
	path string
}

// NewDocumentRepository construye el adaptador sobre la ruta indicada (ej. data/app-data.json).
func NewDocumentRepository(path string) *DocumentRepo {
	return &DocumentRepo{path: path}
}

// Path ruta del archivo de datos.
func (r *DocumentRepo) Path() string { return r.path }

// Load lee el archivo. Si no existe lo crea con el documento por defecto.
func (r *DocumentRepo) Load(ctx context.Context) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc := entity.DefaultDocument()
			if err := r.Save(ctx, doc); err != nil {
				return nil, fmt.Errorf("inicializar archivo de datos: %w", err)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("leer archivo de datos: %w", err)
	}
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decodificar archivo de datos: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

// Save escribe en un temporal y renombra, para no dejar el archivo a medias.
func (r *DocumentRepo) Save(ctx context.Context, doc *entity.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar documento: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".app-data-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("reemplazar archivo de datos: %w", err)
	}
	return nil
}
