package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrLoteIndisponivel = errors.New("lote já reservado ou vendido")
	ErrLoteNotFound     = errors.New("lote não encontrado")
)

// LoteLedger owns every lot status transition. The reservation manager and
// the catalog reconciler are its only callers; neither mutates lot records
// directly. Any status-affecting call flags the owning loteamento's livemap
// as stale.
type LoteLedger struct {
	lotes       interfaces.ILoteRepository
	loteamentos interfaces.ILoteamentoRepository
}

func NewLoteLedger(lotes interfaces.ILoteRepository, loteamentos interfaces.ILoteamentoRepository) *LoteLedger {
	return &LoteLedger{lotes: lotes, loteamentos: loteamentos}
}

// Reservar transitions every listed lot to RESERVADO, all-or-nothing. Each
// transition is a storage-level conditional update; when one lot fails its
// condition, the transitions already applied in this batch are rolled back
// and the conflict is reported naming the lot.
func (l *LoteLedger) Reservar(ctx context.Context, loteamentoID string, chaves []string, reserva entities.ReservaResumo) error {
	aplicadas := make([]string, 0, len(chaves))
	for _, chave := range chaves {
		err := l.lotes.Reservar(ctx, chave, reserva)
		if err == nil {
			aplicadas = append(aplicadas, chave)
			continue
		}
		if errors.Is(err, interfaces.ErrCondicaoViolada) {
			l.desfazerReservas(ctx, aplicadas)
			situacao := l.situacaoAtual(ctx, chave)
			return fmt.Errorf("%w: o lote %s já está %s", ErrLoteIndisponivel, chave, situacao)
		}
		l.desfazerReservas(ctx, aplicadas)
		return err
	}
	l.marcarLivemapPendente(ctx, loteamentoID)
	return nil
}

// Liberar moves the lots back to DISPONIVEL and clears their reservation
// snapshots. The writes are issued as an unordered batch; success is only
// reported once every write confirmed.
func (l *LoteLedger) Liberar(ctx context.Context, loteamentoID string, chaves []string) error {
	if err := l.lotes.Liberar(ctx, chaves); err != nil {
		return err
	}
	l.marcarLivemapPendente(ctx, loteamentoID)
	return nil
}

// MarcarVendido moves one lot RESERVADO -> VENDIDO, conditional on it still
// being RESERVADO.
func (l *LoteLedger) MarcarVendido(ctx context.Context, loteamentoID, chave string) error {
	if err := l.lotes.SetSituacaoCondicional(ctx, chave, entities.LoteSituacaoReservado, entities.LoteSituacaoVendido); err != nil {
		return err
	}
	l.marcarLivemapPendente(ctx, loteamentoID)
	return nil
}

// MarcarNaoVendido reverts one lot VENDIDO -> RESERVADO.
func (l *LoteLedger) MarcarNaoVendido(ctx context.Context, loteamentoID, chave string) error {
	if err := l.lotes.SetSituacaoCondicional(ctx, chave, entities.LoteSituacaoVendido, entities.LoteSituacaoReservado); err != nil {
		return err
	}
	l.marcarLivemapPendente(ctx, loteamentoID)
	return nil
}

// DefinirSituacao is the trusted unconditional bulk write used by the block/
// unblock operation; the caller has already verified none of the lots is
// RESERVADO or VENDIDO.
func (l *LoteLedger) DefinirSituacao(ctx context.Context, loteamentoID string, chaves []string, situacao entities.LoteSituacao) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, chave := range chaves {
		chave := chave
		g.Go(func() error {
			return l.lotes.SetSituacao(gctx, chave, situacao)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	l.marcarLivemapPendente(ctx, loteamentoID)
	return nil
}

func (l *LoteLedger) desfazerReservas(ctx context.Context, chaves []string) {
	if len(chaves) == 0 {
		return
	}
	if err := l.lotes.Liberar(ctx, chaves); err != nil {
		// The conflict still wins; the release retries on the caller's side
		// are not possible, so at least leave a trace.
		log.Printf("[ledger] falha ao desfazer reservas parciais chaves=%v err=%v", chaves, err)
	}
}

func (l *LoteLedger) situacaoAtual(ctx context.Context, chave string) entities.LoteSituacao {
	lote, err := l.lotes.GetByChave(ctx, chave)
	if err != nil || lote.LoteamentoQuadraLote == "" {
		return entities.LoteSituacaoReservado
	}
	return lote.Situacao
}

func (l *LoteLedger) marcarLivemapPendente(ctx context.Context, loteamentoID string) {
	if loteamentoID == "" {
		return
	}
	if err := l.loteamentos.ResetLivemapSync(ctx, loteamentoID); err != nil {
		// The flag is advisory; the worst case is a livemap one cycle older.
		log.Printf("[ledger] falha ao marcar livemap pendente loteamento_id=%s err=%v", loteamentoID, err)
	}
}
