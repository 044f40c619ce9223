package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"loteamentos_api/internal/domain/entities"
	mock_interfaces "loteamentos_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFormaPagamentoUseCase_Criar(t *testing.T) {
	t.Run("nome em branco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormaPagamentoRepository(ctrl)
		uc := NewFormaPagamentoUseCase(repo)

		_, err := uc.Criar(context.Background(), entities.FormaPagamento{Nome: "   "})
		if !errors.Is(err, ErrFormaPagamentoInvalida) {
			t.Fatalf("expected ErrFormaPagamentoInvalida, got %v", err)
		}
	})

	t.Run("applies defaults before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormaPagamentoRepository(ctrl)
		uc := NewFormaPagamentoUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error) {
				if f.ID == "" {
					t.Fatalf("expected generated id")
				}
				if f.Status != entities.FormaPagamentoStatusAtivo {
					t.Fatalf("expected default status ATIVO, got %s", f.Status)
				}
				if f.MaxParcelas != 1 {
					t.Fatalf("expected MaxParcelas default 1, got %d", f.MaxParcelas)
				}
				if f.CreatedAt.IsZero() || !f.CreatedAt.Equal(f.UpdatedAt) {
					t.Fatalf("expected matching timestamps, got %v / %v", f.CreatedAt, f.UpdatedAt)
				}
				return f, nil
			},
		)

		forma, err := uc.Criar(context.Background(), entities.FormaPagamento{Nome: "À vista"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if forma.Nome != "À vista" {
			t.Fatalf("unexpected forma: %+v", forma)
		}
	})
}

func TestFormaPagamentoUseCase_Atualizar(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormaPagamentoRepository(ctrl)
		uc := NewFormaPagamentoUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "fp-x").Return(entities.FormaPagamento{}, nil)

		_, err := uc.Atualizar(context.Background(), entities.FormaPagamento{ID: "fp-x", Nome: "Parcelado"})
		if !errors.Is(err, ErrFormaPagamentoNotFound) {
			t.Fatalf("expected ErrFormaPagamentoNotFound, got %v", err)
		}
	})

	t.Run("keeps the original creation timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormaPagamentoRepository(ctrl)
		uc := NewFormaPagamentoUseCase(repo)

		criadoEm := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "fp-1").Return(entities.FormaPagamento{ID: "fp-1", Nome: "Parcelado", CreatedAt: criadoEm}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error) {
				if !f.CreatedAt.Equal(criadoEm) {
					t.Fatalf("CreatedAt must be preserved, got %v", f.CreatedAt)
				}
				if !f.UpdatedAt.After(criadoEm) {
					t.Fatalf("UpdatedAt must advance, got %v", f.UpdatedAt)
				}
				return f, nil
			},
		)

		_, err := uc.Atualizar(context.Background(), entities.FormaPagamento{ID: "fp-1", Nome: "Parcelado 12x", MaxParcelas: 12})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormaPagamentoUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFormaPagamentoRepository(ctrl)
		uc := NewFormaPagamentoUseCase(repo)

		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrFormaPagamentoNotFound) {
			t.Fatalf("expected ErrFormaPagamentoNotFound, got %v", err)
		}
	})
}
