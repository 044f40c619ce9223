package importer

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"
)

// Column names of the sales-history spreadsheet.
const (
	colData     = "DATA"
	colNome     = "NOME"
	colCPF      = "CPF"
	colContato  = "CONTATO"
	colVendedor = "VENDEDOR"
	colLote     = "LOTE"
	colQuadra   = "QUADRA"
	colSituacao = "SITUACAO"
)

var usuarioSistema = entities.UsuarioResumo{ID: "SISTEMA", Nome: "SISTEMA"}

// VendasResult summarizes one sales-history load.
type VendasResult struct {
	Processadas int
	Ignoradas   []string
}

// VendasLoader replays a historical sales spreadsheet into the reservation
// engine: clientes upserted by documento, one reservation per lot with the
// deterministic code RES-<chave do lote>, lot status stamped to match.
type VendasLoader struct {
	loteamentos interfaces.ILoteamentoRepository
	lotes       interfaces.ILoteRepository
	reservas    interfaces.IReservaRepository
	usuarios    interfaces.IUsuarioRepository
}

func NewVendasLoader(
	loteamentos interfaces.ILoteamentoRepository,
	lotes interfaces.ILoteRepository,
	reservas interfaces.IReservaRepository,
	usuarios interfaces.IUsuarioRepository,
) *VendasLoader {
	return &VendasLoader{loteamentos: loteamentos, lotes: lotes, reservas: reservas, usuarios: usuarios}
}

func (l *VendasLoader) Processar(ctx context.Context, loteamentoID string, r io.Reader) (VendasResult, error) {
	loteamento, err := l.loteamentos.GetByID(ctx, loteamentoID)
	if err != nil {
		return VendasResult{}, err
	}
	if loteamento.ID == "" {
		return VendasResult{}, fmt.Errorf("loteamento %s não encontrado", loteamentoID)
	}

	registros, ignoradas, err := LerRegistros(r)
	if err != nil {
		return VendasResult{}, err
	}

	result := VendasResult{Ignoradas: ignoradas}
	for i, registro := range registros {
		if err := l.processarRegistro(ctx, loteamento, registro); err != nil {
			result.Ignoradas = append(result.Ignoradas, fmt.Sprintf("registro %d: %v", i+1, err))
			continue
		}
		result.Processadas++
	}

	if result.Processadas > 0 {
		if err := l.loteamentos.ResetLivemapSync(ctx, loteamento.ID); err != nil {
			log.Printf("[x][importer] falha ao marcar livemap pendente: %v", err)
		}
	}
	return result, nil
}

func (l *VendasLoader) processarRegistro(ctx context.Context, loteamento entities.Loteamento, registro map[string]string) error {
	documento := LimpaValor(registro[colCPF])
	if documento == "" {
		return fmt.Errorf("cliente %q sem CPF", registro[colNome])
	}
	if !ValidaCPF(documento) {
		return fmt.Errorf("CPF inválido para o cliente %q", registro[colNome])
	}

	quadra := strings.TrimSpace(registro[colQuadra])
	numeroLote := strings.TrimSpace(registro[colLote])
	if quadra == "" || numeroLote == "" {
		return fmt.Errorf("quadra ou lote não informados para o cliente %q", registro[colNome])
	}
	quadra = entities.Pad3(quadra)
	numeroLote = entities.Pad3(numeroLote)
	chave := entities.LoteamentoQuadraLote(loteamento.Slug, quadra, numeroLote)

	lote, err := l.lotes.GetByChave(ctx, chave)
	if err != nil {
		return err
	}
	if lote.LoteamentoQuadraLote == "" {
		return fmt.Errorf("lote %s não encontrado", chave)
	}

	cliente := entities.Usuario{
		Nome:      registro[colNome],
		Documento: documento,
		Niveis:    []entities.UsuarioNivel{entities.UsuarioNivelCliente},
		Status:    entities.UsuarioStatusAtivo,
	}
	if contato := LimpaValor(registro[colContato]); contato != "" {
		cliente.TelefonePrincipal = entities.Telefone{Tipo: "CEL_WHATSAPP", Valor: contato}
	}
	cliente, err = l.usuarios.UpsertByDocumento(ctx, cliente)
	if err != nil {
		return err
	}

	vendedor := usuarioSistema
	if nome := strings.TrimSpace(registro[colVendedor]); nome != "" {
		u, err := l.usuarios.GetByNome(ctx, nome)
		if err != nil {
			return err
		}
		if u.ID != "" {
			vendedor = u.Resumo()
		} else {
			vendedor = entities.UsuarioResumo{ID: "SISTEMA", Nome: nome}
		}
	}

	situacaoLote := entities.LoteSituacaoReservado
	situacaoReserva := entities.ReservaSituacaoAtiva
	if strings.EqualFold(registro[colSituacao], string(entities.LoteSituacaoVendido)) {
		situacaoLote = entities.LoteSituacaoVendido
		situacaoReserva = entities.ReservaSituacaoConcluida
	}

	reserva := entities.Reserva{
		CodigoReserva: "RES-" + chave,
		DataReserva:   parseDataBR(registro[colData]),
		Loteamento:    loteamento.Resumo(),
		Lotes: []entities.ReservaLote{{
			LoteamentoQuadraLote: chave,
			Quadra:               quadra,
			Lote:                 numeroLote,
			Area:                 lote.Area,
			ValorArea:            lote.ValorArea,
			ValorTotal:           lote.ValorTotal,
			ValorEntrada:         lote.ValorEntrada,
		}},
		Cliente:   cliente.ClienteResumo(),
		Vendedor:  vendedor,
		Situacao:  situacaoReserva,
		CriadoPor: entities.NovaAuditoria(usuarioSistema, time.Now()),
	}
	reserva, err = l.reservas.UpsertByCodigo(ctx, reserva)
	if err != nil {
		return err
	}

	return l.lotes.ForcarReserva(ctx, chave, situacaoLote, reserva.Resumo())
}

// parseDataBR parses the spreadsheet's dd/mm/yyyy date; a blank or malformed
// value yields the zero time.
func parseDataBR(s string) time.Time {
	t, _ := time.Parse("02/01/2006", strings.TrimSpace(s))
	return t
}
