package entities

import (
	"fmt"
	"time"
)

// ReservaSituacao is the reservation lifecycle state. ATIVA is the initial
// state, CANCELADA is absorbing, CONCLUIDA reverts to ATIVA when a member
// lot stops being VENDIDO.
type ReservaSituacao string

const (
	ReservaSituacaoAtiva     ReservaSituacao = "ATIVA"
	ReservaSituacaoConcluida ReservaSituacao = "CONCLUIDA"
	ReservaSituacaoCancelada ReservaSituacao = "CANCELADA"
)

// ReservaLote is a line item: the commercial terms of one lot frozen at
// reservation time. The set of line items never changes after creation.
type ReservaLote struct {
	LoteamentoQuadraLote string  `json:"loteamento_quadra_lote"`
	Quadra               string  `json:"quadra"`
	Lote                 string  `json:"lote"`
	Area                 float64 `json:"area"`
	ValorArea            float64 `json:"valor_area"`
	ValorTotal           float64 `json:"valor_total"`
	ValorEntrada         float64 `json:"valor_entrada"`
}

// Reserva binds one or more lots to a buyer and salesperson.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (loteamento_id-index): loteamento_id
//   - GSI2 (codigo_reserva-index): codigo_reserva
type Reserva struct {
	ID            string           `json:"id"`
	CodigoReserva string           `json:"codigo_reserva"`
	DataReserva   time.Time        `json:"data_reserva"`
	Loteamento    LoteamentoResumo `json:"loteamento"`
	Lotes         []ReservaLote    `json:"lotes"`
	Cliente       ClienteResumo    `json:"cliente"`
	Vendedor      UsuarioResumo    `json:"vendedor"`
	Situacao      ReservaSituacao  `json:"situacao"`

	CriadoPor     Auditoria `json:"criado_por"`
	AtualizadoPor Auditoria `json:"atualizado_por"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservaResumo is the weak back-reference cached on each member lot.
type ReservaResumo struct {
	ID            string          `json:"id"`
	CodigoReserva string          `json:"codigo_reserva"`
	DataReserva   time.Time       `json:"data_reserva"`
	Vendedor      UsuarioResumo   `json:"vendedor"`
	Cliente       ClienteResumo   `json:"cliente"`
	Situacao      ReservaSituacao `json:"situacao"`
}

func (r Reserva) Resumo() ReservaResumo {
	return ReservaResumo{
		ID:            r.ID,
		CodigoReserva: r.CodigoReserva,
		DataReserva:   r.DataReserva,
		Vendedor:      r.Vendedor,
		Cliente:       r.Cliente,
		Situacao:      r.Situacao,
	}
}

func (r Reserva) ContemLote(loteamentoQuadraLote string) bool {
	for _, l := range r.Lotes {
		if l.LoteamentoQuadraLote == loteamentoQuadraLote {
			return true
		}
	}
	return false
}

func (r Reserva) ChavesLotes() []string {
	keys := make([]string, 0, len(r.Lotes))
	for _, l := range r.Lotes {
		keys = append(keys, l.LoteamentoQuadraLote)
	}
	return keys
}

// FormatCodigoReserva renders the sequential human-readable code RES-NNNNNN.
func FormatCodigoReserva(n int64) string {
	return fmt.Sprintf("RES-%06d", n)
}
