package interfaces

import (
	"context"
	"errors"

	"loteamentos_api/internal/domain/entities"
)

// ErrCondicaoViolada is returned (wrapped, with the lot key) when a
// conditional status transition finds the lot no longer in the expected
// pre-state. Callers treat it as a conflict, never as an I/O failure.
var ErrCondicaoViolada = errors.New("condição de situação não atendida")

// ILoteRepository abstracts DynamoDB persistence for Lote. The lot table is
// the single shared mutable resource of the system; every status change goes
// through one of the transition methods below, never through a blind write
// from another component.

type ILoteRepository interface {
	GetByChave(ctx context.Context, chave string) (entities.Lote, error)
	GetByChaves(ctx context.Context, chaves []string) ([]entities.Lote, error)
	ListByLoteamento(ctx context.Context, loteamentoID string, somenteExibiveis bool) ([]entities.Lote, error)

	// Upsert writes the full lot record keyed by its natural key. Used by the
	// catalog import, which holds no expectations about prior state.
	Upsert(ctx context.Context, l entities.Lote) error

	// OcultarTodos soft-hides every lot of the loteamento (exibivel = false)
	// and clears reservation snapshots, the starting point of a full-replace
	// import.
	OcultarTodos(ctx context.Context, loteamentoID string) error

	// Reservar transitions one lot to RESERVADO and attaches the snapshot,
	// conditional on the lot not being RESERVADO or VENDIDO already. A failed
	// condition yields ErrCondicaoViolada.
	Reservar(ctx context.Context, chave string, reserva entities.ReservaResumo) error

	// Liberar transitions the lots to DISPONIVEL and removes the reservation
	// snapshot.
	Liberar(ctx context.Context, chaves []string) error

	// SetSituacaoCondicional moves one lot de -> para, conditional on the
	// current situacao still being de. Used for the RESERVADO<->VENDIDO
	// toggles.
	SetSituacaoCondicional(ctx context.Context, chave string, de, para entities.LoteSituacao) error

	// SetSituacao is the unconditional write reserved for trusted internal
	// callers that already hold exclusivity (bulk block/unblock, import).
	SetSituacao(ctx context.Context, chave string, situacao entities.LoteSituacao) error

	// ForcarReserva stamps situacao plus reservation snapshot regardless of
	// current state; the import reconciler uses it to re-apply live
	// reservations onto freshly imported rows.
	ForcarReserva(ctx context.Context, chave string, situacao entities.LoteSituacao, reserva entities.ReservaResumo) error

	// AtualizarReservaResumo refreshes the denormalized reservation snapshot
	// without touching situacao (vendedor reassignment, status propagation).
	AtualizarReservaResumo(ctx context.Context, chave string, reserva entities.ReservaResumo) error
}
