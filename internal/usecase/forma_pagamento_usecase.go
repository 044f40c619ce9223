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
	ErrFormaPagamentoNotFound = errors.New("forma de pagamento não encontrada")
	ErrFormaPagamentoInvalida = errors.New("dados da forma de pagamento inválidos")
)

type IFormaPagamentoUseCase interface {
	Criar(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error)
	Atualizar(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error)
	GetByID(ctx context.Context, id string) (entities.FormaPagamento, error)
	List(ctx context.Context) ([]entities.FormaPagamento, error)
}

// FormaPagamentoUseCase is plain configuration CRUD; no acquirer integration
// exists in this system.
type FormaPagamentoUseCase struct {
	repo interfaces.IFormaPagamentoRepository
}

var _ IFormaPagamentoUseCase = (*FormaPagamentoUseCase)(nil)

func NewFormaPagamentoUseCase(repo interfaces.IFormaPagamentoRepository) *FormaPagamentoUseCase {
	return &FormaPagamentoUseCase{repo: repo}
}

func (u *FormaPagamentoUseCase) Criar(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error) {
	if strings.TrimSpace(f.Nome) == "" {
		return entities.FormaPagamento{}, ErrFormaPagamentoInvalida
	}
	f.ID = uuid.NewString()
	if f.Status == "" {
		f.Status = entities.FormaPagamentoStatusAtivo
	}
	if f.MaxParcelas <= 0 {
		f.MaxParcelas = 1
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	return u.repo.Create(ctx, f)
}

func (u *FormaPagamentoUseCase) Atualizar(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error) {
	existente, err := u.GetByID(ctx, f.ID)
	if err != nil {
		return entities.FormaPagamento{}, err
	}
	if strings.TrimSpace(f.Nome) == "" {
		return entities.FormaPagamento{}, ErrFormaPagamentoInvalida
	}
	f.CreatedAt = existente.CreatedAt
	f.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, f)
}

func (u *FormaPagamentoUseCase) GetByID(ctx context.Context, id string) (entities.FormaPagamento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FormaPagamento{}, ErrFormaPagamentoNotFound
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FormaPagamento{}, err
	}
	if f.ID == "" {
		return entities.FormaPagamento{}, ErrFormaPagamentoNotFound
	}
	return f, nil
}

func (u *FormaPagamentoUseCase) List(ctx context.Context) ([]entities.FormaPagamento, error) {
	return u.repo.List(ctx)
}
