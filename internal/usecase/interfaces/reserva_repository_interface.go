package interfaces

import (
	"context"
	"time"

	"loteamentos_api/internal/domain/entities"
)

// ReservaFiltro narrows reservation searches. Zero values mean "no filter".
type ReservaFiltro struct {
	Busca        string
	Situacoes    []entities.ReservaSituacao
	VendedorID   string
	LoteamentoID string
	DataInicial  time.Time
	DataFinal    time.Time
}

// IReservaRepository abstracts DynamoDB persistence for Reserva.

type IReservaRepository interface {
	// Create persists a new reservation; fails if the id already exists.
	Create(ctx context.Context, r entities.Reserva) (entities.Reserva, error)
	GetByID(ctx context.Context, id string) (entities.Reserva, error)
	GetByCodigo(ctx context.Context, codigo string) (entities.Reserva, error)
	Search(ctx context.Context, filtro ReservaFiltro) ([]entities.Reserva, error)
	// ListVivasPorLoteamento returns the loteamento's ATIVA and CONCLUIDA
	// reservations, the ones whose lot linkage an import must preserve.
	ListVivasPorLoteamento(ctx context.Context, loteamentoID string) ([]entities.Reserva, error)
	Update(ctx context.Context, r entities.Reserva) (entities.Reserva, error)
	// UpsertByCodigo creates or replaces the reservation carrying the given
	// codigo_reserva; used by the sales-history loader, whose codes are
	// deterministic.
	UpsertByCodigo(ctx context.Context, r entities.Reserva) (entities.Reserva, error)
	// NextCodigo atomically increments and returns the global reservation
	// sequence. Issued values are strictly increasing and never reused.
	NextCodigo(ctx context.Context) (int64, error)
}
