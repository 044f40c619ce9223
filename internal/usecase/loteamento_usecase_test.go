package usecase

import (
	"context"
	"errors"
	"testing"

	"loteamentos_api/internal/domain/entities"
	mock_interfaces "loteamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type loteamentoMocks struct {
	loteamentos *mock_interfaces.MockILoteamentoRepository
	lotes       *mock_interfaces.MockILoteRepository
	mapas       *mock_interfaces.MockIMapaRepository
}

func newLoteamentoUseCaseTest(ctrl *gomock.Controller) (*LoteamentoUseCase, loteamentoMocks) {
	m := loteamentoMocks{
		loteamentos: mock_interfaces.NewMockILoteamentoRepository(ctrl),
		lotes:       mock_interfaces.NewMockILoteRepository(ctrl),
		mapas:       mock_interfaces.NewMockIMapaRepository(ctrl),
	}
	ledger := NewLoteLedger(m.lotes, m.loteamentos)
	return NewLoteamentoUseCase(m.loteamentos, m.lotes, m.mapas, ledger), m
}

func TestLoteamentoUseCase_Criar(t *testing.T) {
	ator := entities.UsuarioResumo{ID: "u-1", Nome: "Gestor"}

	t.Run("missing slug or nome", func(t *testing.T) {
		uc, _ := newLoteamentoUseCaseTest(gomock.NewController(t))
		_, err := uc.Criar(context.Background(), SalvarLoteamentoCmd{Slug: " ", Nome: "X"}, ator)
		if !errors.Is(err, ErrLoteamentoInvalido) {
			t.Fatalf("expected ErrLoteamentoInvalido, got %v", err)
		}
	})

	t.Run("slug already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetBySlug(gomock.Any(), "jardim").Return(entities.Loteamento{ID: "other"}, nil)

		_, err := uc.Criar(context.Background(), SalvarLoteamentoCmd{Slug: "Jardim", Nome: "Jardim"}, ator)
		if !errors.Is(err, ErrSlugJaExiste) {
			t.Fatalf("expected ErrSlugJaExiste, got %v", err)
		}
	})

	t.Run("success lowercases slug and starts ATIVO", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetBySlug(gomock.Any(), "jardim").Return(entities.Loteamento{}, nil)
		m.loteamentos.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Loteamento{})).DoAndReturn(
			func(_ context.Context, l entities.Loteamento) (entities.Loteamento, error) {
				if l.ID == "" || l.Slug != "jardim" || l.Status != entities.LoteamentoStatusAtivo {
					t.Fatalf("unexpected loteamento: %+v", l)
				}
				if l.LivemapSync != entities.LivemapSyncAtualizado {
					t.Fatalf("new loteamento has nothing to render yet: %+v", l)
				}
				return l, nil
			},
		)

		res, err := uc.Criar(context.Background(), SalvarLoteamentoCmd{Slug: " Jardim ", Nome: " Jardim das Flores "}, ator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Nome != "Jardim das Flores" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestLoteamentoUseCase_Atualizar(t *testing.T) {
	ator := entities.UsuarioResumo{ID: "u-1", Nome: "Gestor"}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.Loteamento{}, nil)

		_, err := uc.Atualizar(context.Background(), "lot-1", SalvarLoteamentoCmd{Slug: "jardim", Nome: "Jardim"}, ator)
		if !errors.Is(err, ErrLoteamentoNotFound) {
			t.Fatalf("expected ErrLoteamentoNotFound, got %v", err)
		}
	})

	t.Run("slug owned by another loteamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamentoAtivo(), nil)
		m.loteamentos.EXPECT().GetBySlug(gomock.Any(), "outro").Return(entities.Loteamento{ID: "lot-2"}, nil)

		_, err := uc.Atualizar(context.Background(), "lot-1", SalvarLoteamentoCmd{Slug: "outro", Nome: "Outro"}, ator)
		if !errors.Is(err, ErrSlugJaExiste) {
			t.Fatalf("expected ErrSlugJaExiste, got %v", err)
		}
	})

	t.Run("keeping its own slug is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamentoAtivo(), nil)
		m.loteamentos.EXPECT().GetBySlug(gomock.Any(), "jardim").Return(loteamentoAtivo(), nil)
		m.loteamentos.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l entities.Loteamento) (entities.Loteamento, error) {
				if l.Nome != "Jardim Renomeado" {
					t.Fatalf("unexpected loteamento: %+v", l)
				}
				return l, nil
			},
		)

		if _, err := uc.Atualizar(context.Background(), "lot-1", SalvarLoteamentoCmd{Slug: "jardim", Nome: "Jardim Renomeado"}, ator); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLoteamentoUseCase_AlterarSituacaoLotes(t *testing.T) {
	ator := entities.UsuarioResumo{ID: "u-1", Nome: "Gestor"}
	chaves := []string{"JARDIM-Q001-L001", "JARDIM-Q001-L002"}

	t.Run("empty batch", func(t *testing.T) {
		uc, _ := newLoteamentoUseCaseTest(gomock.NewController(t))
		_, err := uc.AlterarSituacaoLotes(context.Background(), nil, entities.LoteSituacaoBloqueado, ator)
		if !errors.Is(err, ErrLoteamentoInvalido) {
			t.Fatalf("expected ErrLoteamentoInvalido, got %v", err)
		}
	})

	t.Run("only DISPONIVEL and BLOQUEADO are valid targets", func(t *testing.T) {
		uc, _ := newLoteamentoUseCaseTest(gomock.NewController(t))
		_, err := uc.AlterarSituacaoLotes(context.Background(), chaves, entities.LoteSituacaoVendido, ator)
		if !errors.Is(err, ErrSituacaoInvalida) {
			t.Fatalf("expected ErrSituacaoInvalida, got %v", err)
		}
	})

	t.Run("unknown lots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.lotes.EXPECT().GetByChaves(gomock.Any(), chaves).Return(lotesDisponiveis("JARDIM-Q001-L001"), nil)

		_, err := uc.AlterarSituacaoLotes(context.Background(), chaves, entities.LoteSituacaoBloqueado, ator)
		if !errors.Is(err, ErrLotesNaoEncontrados) {
			t.Fatalf("expected ErrLotesNaoEncontrados, got %v", err)
		}
	})

	t.Run("a reserved lot blocks the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		lotes := lotesDisponiveis(chaves...)
		lotes[1].Situacao = entities.LoteSituacaoReservado
		m.lotes.EXPECT().GetByChaves(gomock.Any(), chaves).Return(lotes, nil)

		_, err := uc.AlterarSituacaoLotes(context.Background(), chaves, entities.LoteSituacaoBloqueado, ator)
		if !errors.Is(err, ErrLotesVinculados) {
			t.Fatalf("expected ErrLotesVinculados, got %v", err)
		}
	})

	t.Run("success blocks every lot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.lotes.EXPECT().GetByChaves(gomock.Any(), chaves).Return(lotesDisponiveis(chaves...), nil)
		m.lotes.EXPECT().SetSituacao(gomock.Any(), "JARDIM-Q001-L001", entities.LoteSituacaoBloqueado).Return(nil)
		m.lotes.EXPECT().SetSituacao(gomock.Any(), "JARDIM-Q001-L002", entities.LoteSituacaoBloqueado).Return(nil)
		m.loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		modificados, err := uc.AlterarSituacaoLotes(context.Background(), chaves, entities.LoteSituacaoBloqueado, ator)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if modificados != 2 {
			t.Fatalf("expected 2 modified, got %d", modificados)
		}
	})
}

func TestLoteamentoUseCase_SalvarMapaVirtual(t *testing.T) {
	t.Run("missing image url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamentoAtivo(), nil)

		_, err := uc.SalvarMapaVirtual(context.Background(), "lot-1", "  ", nil)
		if !errors.Is(err, ErrMapaInvalido) {
			t.Fatalf("expected ErrMapaInvalido, got %v", err)
		}
	})

	t.Run("first save creates the overlay and flags the livemap stale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		rects := []entities.MapaLote{{X: 1, Y: 2, Width: 10, Height: 10, Quadra: "1", Numero: "1"}}
		m.loteamentos.EXPECT().GetByID(gomock.Any(), "lot-1").Return(loteamentoAtivo(), nil)
		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-1").Return(entities.LoteamentoMapa{}, nil)
		m.mapas.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mapa entities.LoteamentoMapa) (entities.LoteamentoMapa, error) {
				if mapa.ID == "" {
					t.Fatalf("expected generated overlay id")
				}
				if mapa.MapaVirtual != "https://cdn.example.com/base.png" || len(mapa.Lotes) != 1 {
					t.Fatalf("unexpected overlay: %+v", mapa)
				}
				return mapa, nil
			},
		)
		m.loteamentos.EXPECT().ResetLivemapSync(gomock.Any(), "lot-1").Return(nil)

		saved, err := uc.SalvarMapaVirtual(context.Background(), "lot-1", "https://cdn.example.com/base.png", rects)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Loteamento.ID != "lot-1" {
			t.Fatalf("unexpected result: %+v", saved)
		}
	})
}

func TestLoteamentoUseCase_Search(t *testing.T) {
	t.Run("joins overlays and paginates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLoteamentoUseCaseTest(ctrl)
		lista := []entities.Loteamento{
			{ID: "lot-1", Nome: "A"},
			{ID: "lot-2", Nome: "B"},
			{ID: "lot-3", Nome: "C"},
		}
		m.loteamentos.EXPECT().Search(gomock.Any(), "jardim").Return(lista, nil)
		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-1").Return(entities.LoteamentoMapa{ID: "m-1"}, nil)
		m.mapas.EXPECT().GetByLoteamentoID(gomock.Any(), "lot-2").Return(entities.LoteamentoMapa{}, nil)

		out, total, err := uc.Search(context.Background(), " jardim ", 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 {
			t.Fatalf("expected total 3, got %d", total)
		}
		if len(out) != 2 {
			t.Fatalf("expected a 2-item page, got %d", len(out))
		}
		if out[0].MapaVirtual == nil || out[0].MapaVirtual.ID != "m-1" {
			t.Fatalf("expected overlay joined on first item: %+v", out[0])
		}
		if out[1].MapaVirtual != nil {
			t.Fatalf("second item has no overlay: %+v", out[1])
		}
	})
}
