package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// LoteImportRow is one catalog row as delivered by the spreadsheet loader.
// Situacao carries the single-letter status column (D/R/B/V); anything else
// defaults to DISPONIVEL.
type LoteImportRow struct {
	Quadra       string  `json:"quadra"`
	Lote         string  `json:"lote"`
	Area         float64 `json:"area"`
	ValorArea    float64 `json:"valor_area"`
	ValorTotal   float64 `json:"valor_total"`
	ValorEntrada float64 `json:"entrada"`
	Situacao     string  `json:"situacao"`
}

// ImportResult reports what a catalog import did.
type ImportResult struct {
	Importados        int      `json:"importados"`
	Ignorados         int      `json:"ignorados"`
	LinhasIgnoradas   []string `json:"linhas_ignoradas,omitempty"`
	QuantidadeQuadras int      `json:"quantidade_quadras"`
	QuantidadeLotes   int      `json:"quantidade_lotes"`
	ValorTotalLotes   float64  `json:"valor_total_lotes"`
}

var situacaoPorLetra = map[string]entities.LoteSituacao{
	"D": entities.LoteSituacaoDisponivel,
	"R": entities.LoteSituacaoReservado,
	"B": entities.LoteSituacaoBloqueado,
	"V": entities.LoteSituacaoVendido,
}

type IImportacaoUseCase interface {
	ImportarLotes(ctx context.Context, loteamentoID string, rows []LoteImportRow, ator entities.UsuarioResumo) (ImportResult, error)
}

// ImportacaoUseCase is the catalog import reconciler: a full replace of the
// loteamento's lot catalog that must never silently un-reserve or un-sell a
// lot still linked to a live reservation.
type ImportacaoUseCase struct {
	loteamentos interfaces.ILoteamentoRepository
	lotes       interfaces.ILoteRepository
	reservas    interfaces.IReservaRepository
}

var _ IImportacaoUseCase = (*ImportacaoUseCase)(nil)

func NewImportacaoUseCase(
	loteamentos interfaces.ILoteamentoRepository,
	lotes interfaces.ILoteRepository,
	reservas interfaces.IReservaRepository,
) *ImportacaoUseCase {
	return &ImportacaoUseCase{loteamentos: loteamentos, lotes: lotes, reservas: reservas}
}

// ImportarLotes runs the reconciliation contract:
//  1. soft-hide every current lot (full replace, not merge);
//  2. upsert each row under its natural key, preserving the prior situacao
//     of rows that already existed;
//  3. re-apply every ATIVA/CONCLUIDA reservation onto its member lots;
//  4. recompute the loteamento's aggregate counters from the new catalog;
//  5. flag the livemap stale.
//
// Malformed rows are skipped and reported, never fatal to the batch.
func (u *ImportacaoUseCase) ImportarLotes(ctx context.Context, loteamentoID string, rows []LoteImportRow, ator entities.UsuarioResumo) (ImportResult, error) {
	loteamento, err := u.loteamentos.GetByID(ctx, strings.TrimSpace(loteamentoID))
	if err != nil {
		return ImportResult{}, err
	}
	if loteamento.ID == "" {
		return ImportResult{}, ErrLoteamentoNotFound
	}

	anteriores, err := u.lotes.ListByLoteamento(ctx, loteamento.ID, false)
	if err != nil {
		return ImportResult{}, err
	}
	situacaoAnterior := make(map[string]entities.LoteSituacao, len(anteriores))
	for _, lote := range anteriores {
		situacaoAnterior[lote.LoteamentoQuadraLote] = lote.Situacao
	}

	if err := u.lotes.OcultarTodos(ctx, loteamento.ID); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{}
	g, gctx := errgroup.WithContext(ctx)
	for idx, row := range rows {
		if strings.TrimSpace(row.Quadra) == "" || strings.TrimSpace(row.Lote) == "" {
			result.Ignorados++
			result.LinhasIgnoradas = append(result.LinhasIgnoradas, fmt.Sprintf("linha %d: quadra/lote ausente", idx+1))
			continue
		}

		chave := entities.LoteamentoQuadraLote(loteamento.Slug, row.Quadra, row.Lote)
		situacaoCSV, ok := situacaoPorLetra[strings.ToUpper(strings.TrimSpace(row.Situacao))]
		if !ok {
			situacaoCSV = entities.LoteSituacaoDisponivel
		}
		// Rows already known keep their current situacao until step 3
		// decides; brand new rows start from the spreadsheet's letter.
		situacao := situacaoCSV
		if anterior, existia := situacaoAnterior[chave]; existia {
			situacao = anterior
		}

		lote := entities.Lote{
			LoteamentoQuadraLote: chave,
			Quadra:               entities.Pad3(row.Quadra),
			Lote:                 entities.Pad3(row.Lote),
			Area:                 row.Area,
			ValorArea:            row.ValorArea,
			ValorTotal:           row.ValorTotal,
			ValorEntrada:         row.ValorEntrada,
			Situacao:             situacao,
			SituacaoCSV:          situacaoCSV,
			Loteamento:           loteamento.Resumo(),
			Exibivel:             true,
		}
		result.Importados++
		g.Go(func() error {
			return u.lotes.Upsert(gctx, lote)
		})
	}
	if err := g.Wait(); err != nil {
		return ImportResult{}, err
	}

	// Step 3: live reservations always win over whatever the spreadsheet
	// said about their lots.
	reservas, err := u.reservas.ListVivasPorLoteamento(ctx, loteamento.ID)
	if err != nil {
		return ImportResult{}, err
	}
	for _, reserva := range reservas {
		situacao := entities.LoteSituacaoReservado
		if reserva.Situacao == entities.ReservaSituacaoConcluida {
			situacao = entities.LoteSituacaoVendido
		}
		resumo := reserva.Resumo()
		rg, rctx := errgroup.WithContext(ctx)
		for _, chave := range reserva.ChavesLotes() {
			chave := chave
			rg.Go(func() error {
				return u.lotes.ForcarReserva(rctx, chave, situacao, resumo)
			})
		}
		if err := rg.Wait(); err != nil {
			return ImportResult{}, err
		}
	}

	// Step 4: the counters are a materialized view of the catalog that now
	// exists, so derive them from a fresh scan rather than from the input.
	atuais, err := u.lotes.ListByLoteamento(ctx, loteamento.ID, true)
	if err != nil {
		return ImportResult{}, err
	}
	quadras := make(map[string]bool)
	valorTotal := 0.0
	for _, lote := range atuais {
		quadras[lote.Quadra] = true
		valorTotal += lote.ValorTotal
	}
	result.QuantidadeQuadras = len(quadras)
	result.QuantidadeLotes = len(atuais)
	result.ValorTotalLotes = valorTotal

	if err := u.loteamentos.UpdateAgregados(ctx, loteamento.ID, result.QuantidadeQuadras, result.QuantidadeLotes, valorTotal); err != nil {
		return ImportResult{}, err
	}
	if err := u.loteamentos.ResetLivemapSync(ctx, loteamento.ID); err != nil {
		return ImportResult{}, err
	}

	log.Printf("[importacao][usecase] catálogo importado loteamento_id=%s importados=%d ignorados=%d reservas_reaplicadas=%d em=%s",
		loteamento.ID, result.Importados, result.Ignorados, len(reservas), time.Now().UTC().Format(time.RFC3339))
	return result, nil
}
