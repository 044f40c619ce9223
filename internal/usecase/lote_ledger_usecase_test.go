package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"
	mock_interfaces "loteamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLoteLedger_Reservar(t *testing.T) {
	resumo := entities.ReservaResumo{ID: "res-1", CodigoReserva: "RES-000001"}

	t.Run("all lots reserved flags livemap stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L001", resumo).Return(nil)
		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L002", resumo).Return(nil)
		loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		if err := ledger.Reservar(context.Background(), "lot-1", []string{"LT-Q001-L001", "LT-Q001-L002"}, resumo); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conflict on second lot rolls back the first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L001", resumo).Return(nil)
		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L002", resumo).
			Return(fmt.Errorf("lote LT-Q001-L002: %w", interfaces.ErrCondicaoViolada))
		lotes.EXPECT().Liberar(gomock.Any(), []string{"LT-Q001-L001"}).Return(nil)
		lotes.EXPECT().GetByChave(gomock.Any(), "LT-Q001-L002").
			Return(entities.Lote{LoteamentoQuadraLote: "LT-Q001-L002", Situacao: entities.LoteSituacaoVendido}, nil)

		err := ledger.Reservar(context.Background(), "lot-1", []string{"LT-Q001-L001", "LT-Q001-L002"}, resumo)
		if !errors.Is(err, ErrLoteIndisponivel) {
			t.Fatalf("expected ErrLoteIndisponivel, got %v", err)
		}
	})

	t.Run("io error rolls back without conflict translation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L001", resumo).Return(nil)
		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L002", resumo).Return(errors.New("db"))
		lotes.EXPECT().Liberar(gomock.Any(), []string{"LT-Q001-L001"}).Return(nil)

		err := ledger.Reservar(context.Background(), "lot-1", []string{"LT-Q001-L001", "LT-Q001-L002"}, resumo)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if errors.Is(err, ErrLoteIndisponivel) {
			t.Fatalf("io error must not read as availability conflict")
		}
	})

	t.Run("stale flag write failure does not fail the reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().Reservar(gomock.Any(), "LT-Q001-L001", resumo).Return(nil)
		loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(errors.New("db"))

		if err := ledger.Reservar(context.Background(), "lot-1", []string{"LT-Q001-L001"}, resumo); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLoteLedger_Transicoes(t *testing.T) {
	t.Run("MarcarVendido moves RESERVADO to VENDIDO", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().SetSituacaoCondicional(gomock.Any(), "LT-Q001-L001", entities.LoteSituacaoReservado, entities.LoteSituacaoVendido).Return(nil)
		loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		if err := ledger.MarcarVendido(context.Background(), "lot-1", "LT-Q001-L001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("MarcarNaoVendido reverts VENDIDO to RESERVADO", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().SetSituacaoCondicional(gomock.Any(), "LT-Q001-L001", entities.LoteSituacaoVendido, entities.LoteSituacaoReservado).Return(nil)
		loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		if err := ledger.MarcarNaoVendido(context.Background(), "lot-1", "LT-Q001-L001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("MarcarVendido propagates lost condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().SetSituacaoCondicional(gomock.Any(), "LT-Q001-L001", entities.LoteSituacaoReservado, entities.LoteSituacaoVendido).
			Return(fmt.Errorf("lote LT-Q001-L001: %w", interfaces.ErrCondicaoViolada))

		err := ledger.MarcarVendido(context.Background(), "lot-1", "LT-Q001-L001")
		if !errors.Is(err, interfaces.ErrCondicaoViolada) {
			t.Fatalf("expected ErrCondicaoViolada, got %v", err)
		}
	})

	t.Run("DefinirSituacao writes every lot then flags livemap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lotes := mock_interfaces.NewMockILoteRepository(ctrl)
		loteamentos := mock_interfaces.NewMockILoteamentoRepository(ctrl)
		ledger := NewLoteLedger(lotes, loteamentos)

		lotes.EXPECT().SetSituacao(gomock.Any(), "LT-Q001-L001", entities.LoteSituacaoBloqueado).Return(nil)
		lotes.EXPECT().SetSituacao(gomock.Any(), "LT-Q001-L002", entities.LoteSituacaoBloqueado).Return(nil)
		loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		if err := ledger.DefinirSituacao(context.Background(), "lot-1", []string{"LT-Q001-L001", "LT-Q001-L002"}, entities.LoteSituacaoBloqueado); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
