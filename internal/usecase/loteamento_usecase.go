package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLoteamentoNotFound  = errors.New("loteamento não encontrado")
	ErrLoteamentoBloqueado = errors.New("loteamento bloqueado")
	ErrSlugJaExiste        = errors.New("slug já existe para outro loteamento")
	ErrLoteamentoInvalido  = errors.New("dados do loteamento inválidos")
	ErrSituacaoInvalida    = errors.New("situação inválida")
	ErrLotesNaoEncontrados = errors.New("um ou mais lotes não foram encontrados")
	ErrLotesVinculados     = errors.New("um ou mais lotes estão reservados ou vendidos")
	ErrMapaInvalido        = errors.New("dados do mapa virtual inválidos")
)

// SalvarLoteamentoCmd carries creation/edition fields of a development.
type SalvarLoteamentoCmd struct {
	Slug               string
	Nome               string
	Descricao          string
	Cidade             string
	Estado             string
	MapaEmpreendimento string
}

// LoteamentoComMapa is a development joined with its overlay, when one is
// configured.
type LoteamentoComMapa struct {
	entities.Loteamento
	MapaVirtual *entities.LoteamentoMapa `json:"mapa_virtual,omitempty"`
}

type ILoteamentoUseCase interface {
	Criar(ctx context.Context, cmd SalvarLoteamentoCmd, ator entities.UsuarioResumo) (entities.Loteamento, error)
	Atualizar(ctx context.Context, id string, cmd SalvarLoteamentoCmd, ator entities.UsuarioResumo) (entities.Loteamento, error)
	GetByID(ctx context.Context, id string) (LoteamentoComMapa, error)
	Search(ctx context.Context, busca string, page, perpage int) ([]LoteamentoComMapa, int, error)
	ListDisponiveis(ctx context.Context) ([]entities.Loteamento, int, error)
	ListLotes(ctx context.Context, loteamentoID string) ([]entities.Lote, error)
	AlterarSituacaoLotes(ctx context.Context, chaves []string, situacao entities.LoteSituacao, ator entities.UsuarioResumo) (int, error)
	SalvarMapaVirtual(ctx context.Context, loteamentoID, imagemURL string, lotes []entities.MapaLote) (entities.LoteamentoMapa, error)
}

type LoteamentoUseCase struct {
	loteamentos interfaces.ILoteamentoRepository
	lotes       interfaces.ILoteRepository
	mapas       interfaces.IMapaRepository
	ledger      *LoteLedger
}

var _ ILoteamentoUseCase = (*LoteamentoUseCase)(nil)

func NewLoteamentoUseCase(
	loteamentos interfaces.ILoteamentoRepository,
	lotes interfaces.ILoteRepository,
	mapas interfaces.IMapaRepository,
	ledger *LoteLedger,
) *LoteamentoUseCase {
	return &LoteamentoUseCase{loteamentos: loteamentos, lotes: lotes, mapas: mapas, ledger: ledger}
}

func (u *LoteamentoUseCase) Criar(ctx context.Context, cmd SalvarLoteamentoCmd, ator entities.UsuarioResumo) (entities.Loteamento, error) {
	cmd.Slug = strings.TrimSpace(strings.ToLower(cmd.Slug))
	if cmd.Slug == "" || strings.TrimSpace(cmd.Nome) == "" {
		return entities.Loteamento{}, ErrLoteamentoInvalido
	}

	existente, err := u.loteamentos.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		return entities.Loteamento{}, err
	}
	if existente.ID != "" {
		return entities.Loteamento{}, ErrSlugJaExiste
	}

	now := time.Now().UTC()
	l := entities.Loteamento{
		ID:                 uuid.NewString(),
		Slug:               cmd.Slug,
		Nome:               strings.TrimSpace(cmd.Nome),
		Descricao:          cmd.Descricao,
		Cidade:             cmd.Cidade,
		Estado:             cmd.Estado,
		MapaEmpreendimento: cmd.MapaEmpreendimento,
		Status:             entities.LoteamentoStatusAtivo,
		LivemapSync:        entities.LivemapSyncAtualizado,
		CriadoPor:          entities.NovaAuditoria(ator, now),
		AlteradoPor:        entities.NovaAuditoria(ator, now),
	}
	return u.loteamentos.Create(ctx, l)
}

func (u *LoteamentoUseCase) Atualizar(ctx context.Context, id string, cmd SalvarLoteamentoCmd, ator entities.UsuarioResumo) (entities.Loteamento, error) {
	l, err := u.obterLoteamento(ctx, id)
	if err != nil {
		return entities.Loteamento{}, err
	}

	cmd.Slug = strings.TrimSpace(strings.ToLower(cmd.Slug))
	if cmd.Slug == "" || strings.TrimSpace(cmd.Nome) == "" {
		return entities.Loteamento{}, ErrLoteamentoInvalido
	}
	existente, err := u.loteamentos.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		return entities.Loteamento{}, err
	}
	if existente.ID != "" && existente.ID != l.ID {
		return entities.Loteamento{}, ErrSlugJaExiste
	}

	l.Slug = cmd.Slug
	l.Nome = strings.TrimSpace(cmd.Nome)
	l.Descricao = cmd.Descricao
	l.Cidade = cmd.Cidade
	l.Estado = cmd.Estado
	l.MapaEmpreendimento = cmd.MapaEmpreendimento
	l.AlteradoPor = entities.NovaAuditoria(ator, time.Now().UTC())
	return u.loteamentos.Update(ctx, l)
}

func (u *LoteamentoUseCase) GetByID(ctx context.Context, id string) (LoteamentoComMapa, error) {
	l, err := u.obterLoteamento(ctx, id)
	if err != nil {
		return LoteamentoComMapa{}, err
	}
	return u.anexarMapa(ctx, l)
}

func (u *LoteamentoUseCase) Search(ctx context.Context, busca string, page, perpage int) ([]LoteamentoComMapa, int, error) {
	lista, err := u.loteamentos.Search(ctx, strings.TrimSpace(busca))
	if err != nil {
		return nil, 0, err
	}
	total := len(lista)

	pagina := paginar(lista, page, perpage)
	out := make([]LoteamentoComMapa, 0, len(pagina))
	for _, l := range pagina {
		item, err := u.anexarMapa(ctx, l)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	return out, total, nil
}

func (u *LoteamentoUseCase) ListDisponiveis(ctx context.Context) ([]entities.Loteamento, int, error) {
	lista, err := u.loteamentos.Search(ctx, "")
	if err != nil {
		return nil, 0, err
	}
	return lista, len(lista), nil
}

func (u *LoteamentoUseCase) ListLotes(ctx context.Context, loteamentoID string) ([]entities.Lote, error) {
	l, err := u.obterLoteamento(ctx, loteamentoID)
	if err != nil {
		return nil, err
	}
	return u.lotes.ListByLoteamento(ctx, l.ID, true)
}

// AlterarSituacaoLotes is the bulk block/unblock used by the sales desk.
// Only DISPONIVEL and BLOQUEADO are acceptable targets, and no listed lot
// may currently be RESERVADO or VENDIDO.
func (u *LoteamentoUseCase) AlterarSituacaoLotes(ctx context.Context, chaves []string, situacao entities.LoteSituacao, ator entities.UsuarioResumo) (int, error) {
	if len(chaves) == 0 {
		return 0, ErrLoteamentoInvalido
	}
	if situacao != entities.LoteSituacaoDisponivel && situacao != entities.LoteSituacaoBloqueado {
		return 0, ErrSituacaoInvalida
	}

	lotes, err := u.lotes.GetByChaves(ctx, chaves)
	if err != nil {
		return 0, err
	}
	if len(lotes) != len(chaves) {
		return 0, ErrLotesNaoEncontrados
	}
	for _, lote := range lotes {
		if lote.Situacao == entities.LoteSituacaoReservado || lote.Situacao == entities.LoteSituacaoVendido {
			return 0, ErrLotesVinculados
		}
	}

	if err := u.ledger.DefinirSituacao(ctx, lotes[0].Loteamento.ID, chaves, situacao); err != nil {
		return 0, err
	}
	return len(chaves), nil
}

func (u *LoteamentoUseCase) SalvarMapaVirtual(ctx context.Context, loteamentoID, imagemURL string, lotes []entities.MapaLote) (entities.LoteamentoMapa, error) {
	l, err := u.obterLoteamento(ctx, loteamentoID)
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}
	if strings.TrimSpace(imagemURL) == "" {
		return entities.LoteamentoMapa{}, ErrMapaInvalido
	}

	mapa, err := u.mapas.GetByLoteamentoID(ctx, l.ID)
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}
	if mapa.ID == "" {
		mapa.ID = uuid.NewString()
	}
	mapa.Loteamento = l.Resumo()
	mapa.MapaVirtual = imagemURL
	mapa.Lotes = lotes

	saved, err := u.mapas.Upsert(ctx, mapa)
	if err != nil {
		return entities.LoteamentoMapa{}, err
	}
	// The overlay changed; the published image no longer reflects it.
	if err := u.loteamentos.ResetLivemapSync(ctx, l.ID); err != nil {
		return entities.LoteamentoMapa{}, err
	}
	return saved, nil
}

func (u *LoteamentoUseCase) obterLoteamento(ctx context.Context, id string) (entities.Loteamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Loteamento{}, ErrLoteamentoNotFound
	}
	l, err := u.loteamentos.GetByID(ctx, id)
	if err != nil {
		return entities.Loteamento{}, err
	}
	if l.ID == "" {
		return entities.Loteamento{}, ErrLoteamentoNotFound
	}
	return l, nil
}

func (u *LoteamentoUseCase) anexarMapa(ctx context.Context, l entities.Loteamento) (LoteamentoComMapa, error) {
	out := LoteamentoComMapa{Loteamento: l}
	mapa, err := u.mapas.GetByLoteamentoID(ctx, l.ID)
	if err != nil {
		return LoteamentoComMapa{}, err
	}
	if mapa.ID != "" {
		out.MapaVirtual = &mapa
	}
	return out, nil
}
