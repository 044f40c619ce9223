package entities

import "time"

type FormaPagamentoStatus string

const (
	FormaPagamentoStatusAtivo     FormaPagamentoStatus = "ATIVO"
	FormaPagamentoStatusBloqueado FormaPagamentoStatus = "BLOQUEADO"
)

// FormaPagamento is a payment-method configuration record. Pure CRUD; no
// external acquirer is involved.
type FormaPagamento struct {
	ID              string               `json:"id"`
	Nome            string               `json:"nome"`
	SituacaoInicial string               `json:"situacao_inicial"`
	DiasParcelas    int                  `json:"dias_parcelas"`
	MaxParcelas     int                  `json:"max_parcelas"`
	Status          FormaPagamentoStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
