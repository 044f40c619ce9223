package interfaces

import (
	"context"
	"time"

	"loteamentos_api/internal/domain/entities"
)

// ILoteamentoRepository abstracts DynamoDB persistence for Loteamento.

type ILoteamentoRepository interface {
	Create(ctx context.Context, l entities.Loteamento) (entities.Loteamento, error)
	Update(ctx context.Context, l entities.Loteamento) (entities.Loteamento, error)
	GetByID(ctx context.Context, id string) (entities.Loteamento, error)
	GetBySlug(ctx context.Context, slug string) (entities.Loteamento, error)
	// Search returns loteamentos whose nome contains busca (case-insensitive),
	// newest first. Empty busca returns everything.
	Search(ctx context.Context, busca string) ([]entities.Loteamento, error)
	// ListDirtyAtivos returns ATIVO loteamentos whose livemap needs
	// regeneration (livemap_sync = 0).
	ListDirtyAtivos(ctx context.Context) ([]entities.Loteamento, error)
	// UpdateAgregados persists the materialized catalog counters.
	UpdateAgregados(ctx context.Context, id string, quadras, lotes int, valorTotal float64) error
	// ResetLivemapSync flags the loteamento's livemap as stale.
	ResetLivemapSync(ctx context.Context, id string) error
	// UpdateLivemap records a successful publish: URL, timestamp and
	// livemap_sync = 1 in a single write.
	UpdateLivemap(ctx context.Context, id, url string, em time.Time) error
}
