package interfaces

import (
	"context"

	"loteamentos_api/internal/domain/entities"
)

// IFormaPagamentoRepository abstracts DynamoDB persistence for FormaPagamento.

type IFormaPagamentoRepository interface {
	Create(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error)
	Update(ctx context.Context, f entities.FormaPagamento) (entities.FormaPagamento, error)
	GetByID(ctx context.Context, id string) (entities.FormaPagamento, error)
	List(ctx context.Context) ([]entities.FormaPagamento, error)
}
