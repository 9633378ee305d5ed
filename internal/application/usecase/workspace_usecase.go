package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/entity"
	"github.com/jhoicas/fiyatvizyon-api/internal/domain/repository"
	"github.com/jhoicas/fiyatvizyon-api/pkg/logger"
)

// MutateFunc modifica la copia de trabajo. Devuelve false cuando no hubo cambios (no se guarda).
type MutateFunc func(doc *entity.Document) (bool, error)

// WorkspaceUseCase mantiene la instantánea del documento en memoria y la persiste completa.
// El mutex serializa las mutaciones de este proceso; entre procesos rige el último en escribir.
type WorkspaceUseCase struct {
	repo    repository.DocumentRepository
	metrics ports.Metrics
	log     *logger.Logger

	mu  sync.RWMutex
	doc *entity.Document
}

// NewWorkspaceUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewWorkspaceUseCase(repo repository.DocumentRepository, metrics ports.Metrics, log *logger.Logger) *WorkspaceUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &WorkspaceUseCase{repo: repo, metrics: metrics, log: log.Component("workspace")}
}

// Load lee el documento del repositorio y reemplaza la instantánea.
func (uc *WorkspaceUseCase) Load(ctx context.Context) error {
	doc, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar documento: %w", err)
	}
	doc.Normalize()

	uc.mu.Lock()
	uc.doc = doc
	uc.mu.Unlock()

	uc.publishSize(doc)
	uc.log.Info().
		Int("products", len(doc.Products)).
		Int("ingredients", len(doc.Ingredients)).
		Int("categories", len(doc.Categories)).
		Int("margins", len(doc.Margins)).
		Msg("documento cargado")
	return nil
}

// Snapshot copia profunda de la instantánea vigente. Carga el documento si aún no se hizo.
func (uc *WorkspaceUseCase) Snapshot(ctx context.Context) (*entity.Document, error) {
	uc.mu.RLock()
	doc := uc.doc
	uc.mu.RUnlock()
	if doc == nil {
		if err := uc.Load(ctx); err != nil {
			return nil, err
		}
		uc.mu.RLock()
		doc = uc.doc
		uc.mu.RUnlock()
	}
	return doc.Clone(), nil
}

// Mutate aplica fn sobre una copia, guarda el documento completo y solo entonces lo publica.
// Si fn o Save fallan la instantánea queda intacta.
func (uc *WorkspaceUseCase) Mutate(ctx context.Context, op string, fn MutateFunc) (*entity.Document, error) {
	start := time.Now()
	doc, err := uc.mutate(ctx, fn)
	uc.metrics.ObserveMutation(op, err, time.Since(start))
	if err != nil {
		uc.log.Warn().Err(err).Str("op", op).Msg("mutación rechazada")
		return nil, err
	}
	return doc, nil
}

func (uc *WorkspaceUseCase) mutate(ctx context.Context, fn MutateFunc) (*entity.Document, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.doc == nil {
		doc, err := uc.repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("cargar documento: %w", err)
		}
		doc.Normalize()
		uc.doc = doc
	}

	work := uc.doc.Clone()
	changed, err := fn(work)
	if err != nil {
		return nil, err
	}
	if !changed {
		return work, nil
	}
	work.Normalize()
	if err := uc.repo.Save(ctx, work); err != nil {
		return nil, fmt.Errorf("guardar documento: %w", err)
	}
	uc.doc = work
	uc.publishSize(work)
	return work.Clone(), nil
}

func (uc *WorkspaceUseCase) publishSize(doc *entity.Document) {
	uc.metrics.SetDocumentSize(len(doc.Products), len(doc.Ingredients), len(doc.Categories), len(doc.Margins))
}
