package interfaces

import (
	"context"

	"loteamentos_api/internal/domain/entities"
)

// IMapaRepository abstracts DynamoDB persistence for LoteamentoMapa.

type IMapaRepository interface {
	GetByLoteamentoID(ctx context.Context, loteamentoID string) (entities.LoteamentoMapa, error)
	Upsert(ctx context.Context, m entities.LoteamentoMapa) (entities.LoteamentoMapa, error)
}
