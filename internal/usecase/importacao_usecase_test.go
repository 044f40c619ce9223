package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"loteamentos_api/internal/domain/entities"
	mock_interfaces "loteamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type importacaoMocks struct {
	loteamentos *mock_interfaces.MockILoteamentoRepository
	lotes       *mock_interfaces.MockILoteRepository
	reservas    *mock_interfaces.MockIReservaRepository
}

func newImportacaoUseCaseTest(ctrl *gomock.Controller) (*ImportacaoUseCase, importacaoMocks) {
	m := importacaoMocks{
		loteamentos: mock_interfaces.NewMockILoteamentoRepository(ctrl),
		lotes:       mock_interfaces.NewMockILoteRepository(ctrl),
		reservas:    mock_interfaces.NewMockIReservaRepository(ctrl),
	}
	return NewImportacaoUseCase(m.loteamentos, m.lotes, m.reservas), m
}

func TestImportacaoUseCase_ImportarLotes(t *testing.T) {
	ator := entities.UsuarioResumo{ID: "u-1", Nome: "Importador"}

	t.Run("loteamento not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportacaoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-x").Return(entities.Loteamento{}, nil)

		_, err := uc.ImportarLotes(context.Background(), "lot-x", nil, ator)
		if !errors.Is(err, ErrLoteamentoNotFound) {
			t.Fatalf("expected ErrLoteamentoNotFound, got %v", err)
		}
	})

	t.Run("full replace preserves situacao, reservations and recomputes aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportacaoUseCaseTest(ctrl)
		loteamento := loteamentoAtivo()

		rows := []LoteImportRow{
			{Quadra: "1", Lote: "1", Area: 200, ValorTotal: 50000, Situacao: "D"},
			{Quadra: "1", Lote: "2", Area: 250, ValorTotal: 60000, Situacao: "D"},
			{Quadra: "2", Lote: "1", Area: 300, ValorTotal: 70000, Situacao: "V"},
			{Quadra: "", Lote: "9"}, // malformed, must be skipped
		}

		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamento, nil)
		// JARDIM-Q001-L001 already exists as BLOQUEADO; the spreadsheet says D
		// but the prior situacao wins.
		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", false).Return([]entities.Lote{
			{LoteamentoQuadraLote: "JARDIM-Q001-L001", Quadra: "001", Lote: "001", Situacao: entities.LoteSituacaoBloqueado},
		}, nil)
		m.lotes.EXPECT().OcultarTodos(gomock.Any(), "lot-1").Return(nil)

		var mu sync.Mutex
		gravados := make(map[string]entities.Lote)
		m.lotes.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Lote) error {
				mu.Lock()
				defer mu.Unlock()
				gravados[l.LoteamentoQuadraLote] = l
				return nil
			},
		).Times(3)

		// A live reservation holds JARDIM-Q001-L002 and must be re-applied.
		reserva := reservaAtiva()
		reserva.Lotes = []entities.ReservaLote{{LoteamentoQuadraLote: "JARDIM-Q001-L002", Quadra: "001", Lote: "002"}}
		m.reservas.EXPECT().ListVivasPorLoteamento(gomock.Any(), "lot-1").Return([]entities.Reserva{reserva}, nil)
		m.lotes.EXPECT().ForcarReserva(gomock.Any(), "JARDIM-Q001-L002", entities.LoteSituacaoReservado, gomock.Any()).Return(nil)

		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", true).Return([]entities.Lote{
			{LoteamentoQuadraLote: "JARDIM-Q001-L001", Quadra: "001", ValorTotal: 50000},
			{LoteamentoQuadraLote: "JARDIM-Q001-L002", Quadra: "001", ValorTotal: 60000},
			{LoteamentoQuadraLote: "JARDIM-Q002-L001", Quadra: "002", ValorTotal: 70000},
		}, nil)
		m.loteamentos.EXPECT().UpdateAgregados(gomock.Any(), "lot-1", 2, 3, 180000.0).Return(nil)
		m.loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		result, err := uc.ImportarLotes(context.Background(), "lot-1", rows, ator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Importados != 3 || result.Ignorados != 1 {
			t.Fatalf("unexpected counters: %+v", result)
		}
		if len(result.LinhasIgnoradas) != 1 {
			t.Fatalf("expected one skipped line report, got %v", result.LinhasIgnoradas)
		}
		if result.QuantidadeQuadras != 2 || result.QuantidadeLotes != 3 || result.ValorTotalLotes != 180000 {
			t.Fatalf("unexpected aggregates: %+v", result)
		}

		existente := gravados["JARDIM-Q001-L001"]
		if existente.Situacao != entities.LoteSituacaoBloqueado {
			t.Fatalf("prior situacao must survive the import, got %s", existente.Situacao)
		}
		if existente.SituacaoCSV != entities.LoteSituacaoDisponivel {
			t.Fatalf("spreadsheet letter must be recorded, got %s", existente.SituacaoCSV)
		}
		novo := gravados["JARDIM-Q002-L001"]
		if novo.Situacao != entities.LoteSituacaoVendido {
			t.Fatalf("new row takes the spreadsheet letter, got %s", novo.Situacao)
		}
		if !novo.Exibivel {
			t.Fatalf("imported rows must be visible")
		}
	})

	t.Run("concluded reservation re-applies as VENDIDO", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportacaoUseCaseTest(ctrl)
		loteamento := loteamentoAtivo()

		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamento, nil)
		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", false).Return(nil, nil)
		m.lotes.EXPECT().OcultarTodos(gomock.Any(), "lot-1").Return(nil)
		m.lotes.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		concluida := reservaAtiva()
		concluida.Situacao = entities.ReservaSituacaoConcluida
		concluida.Lotes = []entities.ReservaLote{{LoteamentoQuadraLote: "JARDIM-Q001-L001"}}
		m.reservas.EXPECT().ListVivasPorLoteamento(gomock.Any(), "lot-1").Return([]entities.Reserva{concluida}, nil)
		m.lotes.EXPECT().ForcarReserva(gomock.Any(), "JARDIM-Q001-L001", entities.LoteSituacaoVendido, gomock.Any()).Return(nil)

		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", true).Return(nil, nil)
		m.loteamentos.EXPECT().UpdateAgregados(gomock.Any(), "lot-1", 0, 0, 0.0).Return(nil)
		m.loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		if _, err := uc.ImportarLotes(context.Background(), "lot-1", []LoteImportRow{{Quadra: "1", Lote: "1"}}, ator); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("upsert failure aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportacaoUseCaseTest(ctrl)

		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamentoAtivo(), nil)
		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", false).Return(nil, nil)
		m.lotes.EXPECT().OcultarTodos(gomock.Any(), "lot-1").Return(nil)
		m.lotes.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.ImportarLotes(context.Background(), "lot-1", []LoteImportRow{{Quadra: "1", Lote: "1"}}, ator)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
