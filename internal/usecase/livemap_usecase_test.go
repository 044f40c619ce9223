package usecase

import (
	"context"
	"errors"
	"testing"

	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase/interfaces"
	mock_interfaces "loteamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type livemapMocks struct {
	loteamentos *mock_interfaces.MockILoteamentoRepository
	mapas       *mock_interfaces.MockIMapaRepository
	lotes       *mock_interfaces.MockILoteRepository
	renderer    *mock_interfaces.MockILivemapRenderer
	storage     *mock_interfaces.MockIObjectStorage
}

func newLivemapUseCaseTest(ctrl *gomock.Controller) (*LivemapUseCase, livemapMocks) {
	m := livemapMocks{
		loteamentos: mock_interfaces.NewMockILoteamentoRepository(ctrl),
		mapas:       mock_interfaces.NewMockIMapaRepository(ctrl),
		lotes:       mock_interfaces.NewMockILoteRepository(ctrl),
		renderer:    mock_interfaces.NewMockILivemapRenderer(ctrl),
		storage:     mock_interfaces.NewMockIObjectStorage(ctrl),
	}
	return NewLivemapUseCase(m.loteamentos, m.mapas, m.lotes, m.renderer, m.storage), m
}

func mapaConfigurado() entities.LoteamentoMapa {
	return entities.LoteamentoMapa{
		ID:          "mapa-1",
		Loteamento:  entities.LoteamentoResumo{ID: "lot-1", Nome: "Jardim das Flores"},
		MapaVirtual: "https://cdn.example.com/base.png",
		Lotes: []entities.MapaLote{
			{ID: "r-1", X: 10, Y: 10, Width: 40, Height: 30, Quadra: "1", Numero: "1"},
			{ID: "r-2", X: 60, Y: 10, Width: 40, Height: 30, Quadra: "1", Numero: "2"},
			{ID: "r-3", X: 0, Y: 0, Width: 0, Height: 30, Quadra: "1", Numero: "3"}, // degenerate rect
		},
	}
}

func TestLivemapUseCase_Run(t *testing.T) {
	t.Run("list error aborts the cycle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLivemapUseCaseTest(ctrl)
		m.loteamentos.EXPECT().ListDirtyAtivos(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Run(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("without an overlay the flag stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLivemapUseCaseTest(ctrl)
		m.loteamentos.EXPECT().ListDirtyAtivos(gomock.Any()).Return([]entities.Loteamento{loteamentoAtivo()}, nil)
		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-1").Return(entities.LoteamentoMapa{}, nil)
		// No storage write and no UpdateLivemap may happen.

		publicados, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if publicados != 1 {
			t.Fatalf("a skipped loteamento is still a processed one, got %d", publicados)
		}
	})

	t.Run("publishes the composite and clears the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLivemapUseCaseTest(ctrl)
		m.loteamentos.EXPECT().ListDirtyAtivos(gomock.Any()).Return([]entities.Loteamento{loteamentoAtivo()}, nil)
		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-1").Return(mapaConfigurado(), nil)
		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", false).Return([]entities.Lote{
			{LoteamentoQuadraLote: "JARDIM-Q001-L001", Quadra: "001", Lote: "001", Situacao: entities.LoteSituacaoVendido},
			{LoteamentoQuadraLote: "JARDIM-Q001-L002", Quadra: "001", Lote: "002", Situacao: entities.LoteSituacaoReservado},
		}, nil)
		m.renderer.EXPECT().Compose(gomock.Any(), "https://cdn.example.com/base.png", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, itens []interfaces.RenderLote) ([]byte, error) {
				if len(itens) != 2 {
					t.Fatalf("degenerate rects must be dropped, got %d items", len(itens))
				}
				if itens[0].Cor != corVendido || itens[0].Situacao != "Vendido" {
					t.Fatalf("unexpected first item: %+v", itens[0])
				}
				if itens[1].Cor != corReservado {
					t.Fatalf("unexpected second item: %+v", itens[1])
				}
				if itens[0].Label != "Q001 L001" {
					t.Fatalf("unexpected label: %q", itens[0].Label)
				}
				return []byte("png"), nil
			},
		)
		m.storage.EXPECT().Delete(gomock.Any(), "mapas-virtuais/lot-1.png").Return(nil)
		m.storage.EXPECT().Save(gomock.Any(), "mapas-virtuais/lot-1.png", []byte("png"), "image/png").Return(nil)
		m.storage.EXPECT().MakePublic(gomock.Any(), "mapas-virtuais/lot-1.png").Return("https://bucket.s3.amazonaws.com/mapas-virtuais/lot-1.png", nil)
		m.loteamentos.EXPECT().UpdateLivemap(gomock.Any(), "lot-1", "https://bucket.s3.amazonaws.com/mapas-virtuais/lot-1.png", gomock.Any()).Return(nil)

		publicados, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if publicados != 1 {
			t.Fatalf("expected 1 published, got %d", publicados)
		}
	})

	t.Run("storage failure keeps the flag pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLivemapUseCaseTest(ctrl)
		m.loteamentos.EXPECT().ListDirtyAtivos(gomock.Any()).Return([]entities.Loteamento{loteamentoAtivo()}, nil)
		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-1").Return(mapaConfigurado(), nil)
		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", false).Return(nil, nil)
		m.renderer.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("png"), nil)
		m.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))
		// UpdateLivemap must not be called; the next cycle retries.

		publicados, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("run must not fail the whole cycle: %v", err)
		}
		if publicados != 0 {
			t.Fatalf("expected 0 published, got %d", publicados)
		}
	})

	t.Run("one failing loteamento does not block the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLivemapUseCaseTest(ctrl)
		quebrado := entities.Loteamento{ID: "lot-err", Nome: "Quebrado", Status: entities.LoteamentoStatusAtivo}
		m.loteamentos.EXPECT().ListDirtyAtivos(gomock.Any()).Return([]entities.Loteamento{quebrado, loteamentoAtivo()}, nil)

		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-err").Return(entities.LoteamentoMapa{}, errors.New("db"))

		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-1").Return(mapaConfigurado(), nil)
		m.lotes.EXPECT().ListByLoteamento(gomock.Any(), "lot-1", false).Return(nil, nil)
		m.renderer.EXPECT().Compose(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("png"), nil)
		m.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		m.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.storage.EXPECT().MakePublic(gomock.Any(), gomock.Any()).Return("https://example.com/map.png", nil)
		m.loteamentos.EXPECT().UpdateLivemap(gomock.Any(), "lot-1", gomock.Any(), gomock.Any()).Return(nil)

		publicados, err := uc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if publicados != 1 {
			t.Fatalf("expected 1 published, got %d", publicados)
		}
	})
}
