package request

import "time"

// CriarReservaRequest binds one or more lots (by natural key) to a cliente
// and vendedor.
type CriarReservaRequest struct {
	LoteamentoID string    `json:"loteamento_id"`
	Chaves       []string  `json:"chaves"`
	ClienteID    string    `json:"cliente_id"`
	VendedorID   string    `json:"vendedor_id"`
	DataReserva  time.Time `json:"data_reserva"`
}

// Operations accepted by UpdateReservaRequest.
const (
	OperacaoCancelarReserva     = "cancelar-reserva"
	OperacaoAlterarVendedor     = "alterar-vendedor"
	OperacaoAlterarLoteSituacao = "alterar-lote-situacao"
)

// UpdateReservaRequest is the single mutation payload of the reservation
// endpoint, dispatched by Operacao.
type UpdateReservaRequest struct {
	Operacao  string `json:"operacao"`
	ReservaID string `json:"reserva_id"`

	// alterar-vendedor
	NovoVendedorID string `json:"novo_vendedor"`

	// alterar-lote-situacao
	Chave        string `json:"chave"`
	NovaSituacao string `json:"nova_situacao"`
}
