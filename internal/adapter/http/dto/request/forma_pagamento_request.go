package request

// FormaPagamentoRequest is the payment-method configuration payload. A
// filled ID means edition.
type FormaPagamentoRequest struct {
	ID              string `json:"id"`
	Nome            string `json:"nome"`
	SituacaoInicial string `json:"situacao_inicial"`
	DiasParcelas    int    `json:"dias_parcelas"`
	MaxParcelas     int    `json:"max_parcelas"`
	Status          string `json:"status"`
}
