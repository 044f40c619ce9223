package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReservaNotFound      = errors.New("reserva não encontrada")
	ErrReservaJaCancelada   = errors.New("reserva já está cancelada")
	ErrClienteNotFound      = errors.New("cliente não encontrado")
	ErrVendedorNotFound     = errors.New("vendedor não encontrado")
	ErrVendedorNaoInformado = errors.New("vendedor não informado")
	ErrLoteForaDaReserva    = errors.New("lote não faz parte desta reserva")
	ErrSituacaoLoteInvalida = errors.New("situação de lote inválida")
	ErrReservaInvalida      = errors.New("dados da reserva inválidos")
)

// CriarReservaCmd carries the reservation request. Chaves are lot natural
// keys; the line-item snapshots are frozen from the current ledger rows.
type CriarReservaCmd struct {
	LoteamentoID string
	Chaves       []string
	ClienteID    string
	VendedorID   string
	DataReserva  time.Time
}

// ReservaLoteDetalhe is a line item joined with the lot's live situacao.
type ReservaLoteDetalhe struct {
	entities.ReservaLote
	Situacao entities.LoteSituacao `json:"situacao"`
}

// ReservaDetalhe is a reservation plus the live status of its member lots.
type ReservaDetalhe struct {
	entities.Reserva
	LotesDetalhe []ReservaLoteDetalhe `json:"lotes_detalhe"`
}

// IReservaUseCase is the reservation lifecycle: states ATIVA, CONCLUIDA and
// CANCELADA. CANCELADA is terminal; CONCLUIDA reverts to ATIVA whenever a
// member lot stops being VENDIDO.

type IReservaUseCase interface {
	Criar(ctx context.Context, cmd CriarReservaCmd, ator entities.UsuarioResumo) (entities.Reserva, error)
	Cancelar(ctx context.Context, reservaID string, ator entities.UsuarioResumo) (entities.Reserva, error)
	AlterarVendedor(ctx context.Context, reservaID, novoVendedorID string, ator entities.UsuarioResumo) (entities.Reserva, error)
	AlterarSituacaoLote(ctx context.Context, reservaID, chave string, nova entities.LoteSituacao, ator entities.UsuarioResumo) (entities.Reserva, error)
	GetByID(ctx context.Context, id string) (ReservaDetalhe, error)
	Search(ctx context.Context, filtro interfaces.ReservaFiltro, page, perpage int) ([]entities.Reserva, int, error)
}

type ReservaUseCase struct {
	reservas    interfaces.IReservaRepository
	lotes       interfaces.ILoteRepository
	loteamentos interfaces.ILoteamentoRepository
	usuarios    interfaces.IUsuarioRepository
	ledger      *LoteLedger
}

var _ IReservaUseCase = (*ReservaUseCase)(nil)

func NewReservaUseCase(
	reservas interfaces.IReservaRepository,
	lotes interfaces.ILoteRepository,
	loteamentos interfaces.ILoteamentoRepository,
	usuarios interfaces.IUsuarioRepository,
	ledger *LoteLedger,
) *ReservaUseCase {
	return &ReservaUseCase{
		reservas:    reservas,
		lotes:       lotes,
		loteamentos: loteamentos,
		usuarios:    usuarios,
		ledger:      ledger,
	}
}

// Criar validates everything before any write: the loteamento must exist and
// not be blocked, every requested lot must resolve, and both cliente and
// vendedor must exist. The sequential code comes from an atomic counter, the
// lot batch is taken through the ledger's conditional reserve, and only then
// is the reservation document persisted. A failed persist releases the lots.
func (u *ReservaUseCase) Criar(ctx context.Context, cmd CriarReservaCmd, ator entities.UsuarioResumo) (entities.Reserva, error) {
	if len(cmd.Chaves) == 0 {
		return entities.Reserva{}, ErrReservaInvalida
	}
	if strings.TrimSpace(cmd.VendedorID) == "" {
		return entities.Reserva{}, ErrVendedorNaoInformado
	}

	loteamento, err := u.loteamentos.GetByID(ctx, strings.TrimSpace(cmd.LoteamentoID))
	if err != nil {
		return entities.Reserva{}, err
	}
	if loteamento.ID == "" {
		return entities.Reserva{}, ErrLoteamentoNotFound
	}
	if loteamento.Status == entities.LoteamentoStatusBloqueado {
		return entities.Reserva{}, ErrLoteamentoBloqueado
	}

	lotes, err := u.lotes.GetByChaves(ctx, cmd.Chaves)
	if err != nil {
		return entities.Reserva{}, err
	}
	if len(lotes) != len(cmd.Chaves) {
		return entities.Reserva{}, ErrLoteNotFound
	}

	cliente, err := u.usuarios.GetByID(ctx, strings.TrimSpace(cmd.ClienteID))
	if err != nil {
		return entities.Reserva{}, err
	}
	if cliente.ID == "" {
		return entities.Reserva{}, ErrClienteNotFound
	}
	vendedor, err := u.usuarios.GetByID(ctx, strings.TrimSpace(cmd.VendedorID))
	if err != nil {
		return entities.Reserva{}, err
	}
	if vendedor.ID == "" {
		return entities.Reserva{}, ErrVendedorNotFound
	}

	seq, err := u.reservas.NextCodigo(ctx)
	if err != nil {
		return entities.Reserva{}, err
	}

	dataReserva := cmd.DataReserva
	if dataReserva.IsZero() {
		dataReserva = time.Now().UTC()
	}

	itens := make([]entities.ReservaLote, 0, len(lotes))
	for _, lote := range lotes {
		itens = append(itens, entities.ReservaLote{
			LoteamentoQuadraLote: lote.LoteamentoQuadraLote,
			Quadra:               lote.Quadra,
			Lote:                 lote.Lote,
			Area:                 lote.Area,
			ValorArea:            lote.ValorArea,
			ValorTotal:           lote.ValorTotal,
			ValorEntrada:         lote.ValorEntrada,
		})
	}

	now := time.Now().UTC()
	reserva := entities.Reserva{
		ID:            uuid.NewString(),
		CodigoReserva: entities.FormatCodigoReserva(seq),
		DataReserva:   dataReserva,
		Loteamento:    loteamento.Resumo(),
		Lotes:         itens,
		Cliente:       cliente.ClienteResumo(),
		Vendedor:      vendedor.Resumo(),
		Situacao:      entities.ReservaSituacaoAtiva,
		CriadoPor:     entities.NovaAuditoria(ator, now),
		AtualizadoPor: entities.NovaAuditoria(ator, now),
	}

	if err := u.ledger.Reservar(ctx, loteamento.ID, cmd.Chaves, reserva.Resumo()); err != nil {
		return entities.Reserva{}, err
	}

	created, err := u.reservas.Create(ctx, reserva)
	if err != nil {
		log.Printf("[reserva][usecase] persistência falhou após reservar lotes codigo=%s err=%v", reserva.CodigoReserva, err)
		if relErr := u.ledger.Liberar(ctx, loteamento.ID, cmd.Chaves); relErr != nil {
			log.Printf("[reserva][usecase] falha ao liberar lotes do rollback codigo=%s err=%v", reserva.CodigoReserva, relErr)
		}
		return entities.Reserva{}, err
	}
	log.Printf("[reserva][usecase] reserva criada codigo=%s loteamento_id=%s lotes=%d", created.CodigoReserva, loteamento.ID, len(itens))
	return created, nil
}

// Cancelar is allowed from ATIVA and also from CONCLUIDA: the business
// accepts undoing a fully sold reservation, releasing sold lots back to
// DISPONIVEL. The transition is stamped with the acting user so it stays
// auditable. Cancelling twice is a conflict.
func (u *ReservaUseCase) Cancelar(ctx context.Context, reservaID string, ator entities.UsuarioResumo) (entities.Reserva, error) {
	reserva, err := u.obterReserva(ctx, reservaID)
	if err != nil {
		return entities.Reserva{}, err
	}
	if reserva.Situacao == entities.ReservaSituacaoCancelada {
		return entities.Reserva{}, ErrReservaJaCancelada
	}

	reserva.Situacao = entities.ReservaSituacaoCancelada
	reserva.AtualizadoPor = entities.NovaAuditoria(ator, time.Now().UTC())
	updated, err := u.reservas.Update(ctx, reserva)
	if err != nil {
		return entities.Reserva{}, err
	}
	if err := u.ledger.Liberar(ctx, reserva.Loteamento.ID, reserva.ChavesLotes()); err != nil {
		return entities.Reserva{}, err
	}
	log.Printf("[reserva][usecase] reserva cancelada codigo=%s lotes_liberados=%d", reserva.CodigoReserva, len(reserva.Lotes))
	return updated, nil
}

// AlterarVendedor swaps the salesperson and refreshes the snapshot cached on
// every member lot, so lot-level views reflect the change without a join.
func (u *ReservaUseCase) AlterarVendedor(ctx context.Context, reservaID, novoVendedorID string, ator entities.UsuarioResumo) (entities.Reserva, error) {
	reserva, err := u.obterReserva(ctx, reservaID)
	if err != nil {
		return entities.Reserva{}, err
	}

	vendedor, err := u.usuarios.GetByID(ctx, strings.TrimSpace(novoVendedorID))
	if err != nil {
		return entities.Reserva{}, err
	}
	if vendedor.ID == "" {
		return entities.Reserva{}, ErrVendedorNotFound
	}

	reserva.Vendedor = vendedor.Resumo()
	reserva.AtualizadoPor = entities.NovaAuditoria(ator, time.Now().UTC())
	updated, err := u.reservas.Update(ctx, reserva)
	if err != nil {
		return entities.Reserva{}, err
	}
	if err := u.propagarResumo(ctx, updated); err != nil {
		return entities.Reserva{}, err
	}
	u.marcarLivemapPendente(ctx, reserva.Loteamento.ID)
	return updated, nil
}

// AlterarSituacaoLote toggles one member lot between RESERVADO and VENDIDO
// and then re-derives the reservation status from scratch: all lots VENDIDO
// makes it CONCLUIDA; a CONCLUIDA reservation that is no longer fully sold
// drops back to ATIVA. The derivation is recomputed on every call, never
// cached.
func (u *ReservaUseCase) AlterarSituacaoLote(ctx context.Context, reservaID, chave string, nova entities.LoteSituacao, ator entities.UsuarioResumo) (entities.Reserva, error) {
	if nova != entities.LoteSituacaoReservado && nova != entities.LoteSituacaoVendido {
		return entities.Reserva{}, ErrSituacaoLoteInvalida
	}

	reserva, err := u.obterReserva(ctx, reservaID)
	if err != nil {
		return entities.Reserva{}, err
	}
	if !reserva.ContemLote(chave) {
		return entities.Reserva{}, ErrLoteForaDaReserva
	}

	lote, err := u.lotes.GetByChave(ctx, chave)
	if err != nil {
		return entities.Reserva{}, err
	}
	if lote.LoteamentoQuadraLote == "" {
		return entities.Reserva{}, ErrLoteNotFound
	}

	if lote.Situacao != nova {
		if nova == entities.LoteSituacaoVendido {
			err = u.ledger.MarcarVendido(ctx, reserva.Loteamento.ID, chave)
		} else {
			err = u.ledger.MarcarNaoVendido(ctx, reserva.Loteamento.ID, chave)
		}
		if err != nil {
			return entities.Reserva{}, err
		}
	}

	membros, err := u.lotes.GetByChaves(ctx, reserva.ChavesLotes())
	if err != nil {
		return entities.Reserva{}, err
	}
	todosVendidos := len(membros) > 0
	for _, m := range membros {
		if m.Situacao != entities.LoteSituacaoVendido {
			todosVendidos = false
			break
		}
	}

	anterior := reserva.Situacao
	if todosVendidos {
		reserva.Situacao = entities.ReservaSituacaoConcluida
	} else if reserva.Situacao == entities.ReservaSituacaoConcluida {
		reserva.Situacao = entities.ReservaSituacaoAtiva
	}
	reserva.AtualizadoPor = entities.NovaAuditoria(ator, time.Now().UTC())

	updated, err := u.reservas.Update(ctx, reserva)
	if err != nil {
		return entities.Reserva{}, err
	}
	if anterior != updated.Situacao {
		if err := u.propagarResumo(ctx, updated); err != nil {
			return entities.Reserva{}, err
		}
		log.Printf("[reserva][usecase] situação derivada codigo=%s %s -> %s", updated.CodigoReserva, anterior, updated.Situacao)
	}
	return updated, nil
}

func (u *ReservaUseCase) GetByID(ctx context.Context, id string) (ReservaDetalhe, error) {
	reserva, err := u.obterReserva(ctx, id)
	if err != nil {
		return ReservaDetalhe{}, err
	}

	membros, err := u.lotes.GetByChaves(ctx, reserva.ChavesLotes())
	if err != nil {
		return ReservaDetalhe{}, err
	}
	porChave := make(map[string]entities.Lote, len(membros))
	for _, m := range membros {
		porChave[m.LoteamentoQuadraLote] = m
	}

	detalhe := ReservaDetalhe{Reserva: reserva}
	for _, item := range reserva.Lotes {
		detalhe.LotesDetalhe = append(detalhe.LotesDetalhe, ReservaLoteDetalhe{
			ReservaLote: item,
			Situacao:    porChave[item.LoteamentoQuadraLote].Situacao,
		})
	}
	return detalhe, nil
}

func (u *ReservaUseCase) Search(ctx context.Context, filtro interfaces.ReservaFiltro, page, perpage int) ([]entities.Reserva, int, error) {
	lista, err := u.reservas.Search(ctx, filtro)
	if err != nil {
		return nil, 0, err
	}
	total := len(lista)
	return paginar(lista, page, perpage), total, nil
}

func (u *ReservaUseCase) obterReserva(ctx context.Context, id string) (entities.Reserva, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Reserva{}, ErrReservaNotFound
	}
	reserva, err := u.reservas.GetByID(ctx, id)
	if err != nil {
		return entities.Reserva{}, err
	}
	if reserva.ID == "" {
		return entities.Reserva{}, ErrReservaNotFound
	}
	return reserva, nil
}

func (u *ReservaUseCase) propagarResumo(ctx context.Context, reserva entities.Reserva) error {
	resumo := reserva.Resumo()
	for _, chave := range reserva.ChavesLotes() {
		if err := u.lotes.AtualizarReservaResumo(ctx, chave, resumo); err != nil {
			return err
		}
	}
	return nil
}

func (u *ReservaUseCase) marcarLivemapPendente(ctx context.Context, loteamentoID string) {
	if err := u.loteamentos.ResetLivemapSync(ctx, loteamentoID); err != nil {
		log.Printf("[reserva][usecase] falha ao marcar livemap pendente loteamento_id=%s err=%v", loteamentoID, err)
	}
}

// paginar applies the 1-based page/perpage slicing used by the listing
// endpoints; page or perpage <= 0 returns the full list.
func paginar[T any](lista []T, page, perpage int) []T {
	if page <= 0 || perpage <= 0 {
		return lista
	}
	inicio := (page - 1) * perpage
	if inicio >= len(lista) {
		return []T{}
	}
	fim := inicio + perpage
	if fim > len(lista) {
		fim = len(lista)
	}
	return lista[inicio:fim]
}
