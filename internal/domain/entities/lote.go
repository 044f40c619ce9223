package entities

import (
	"fmt"
	"strings"
	"time"
)

// LoteSituacao is the sale status of a single lot.
type LoteSituacao string

const (
	LoteSituacaoDisponivel LoteSituacao = "DISPONIVEL"
	LoteSituacaoBloqueado  LoteSituacao = "BLOQUEADO"
	LoteSituacaoReservado  LoteSituacao = "RESERVADO"
	LoteSituacaoVendido    LoteSituacao = "VENDIDO"
)

func LoteSituacaoValida(s LoteSituacao) bool {
	switch s {
	case LoteSituacaoDisponivel, LoteSituacaoBloqueado, LoteSituacaoReservado, LoteSituacaoVendido:
		return true
	}
	return false
}

// Lote is an individually sellable subdivision unit.
//
// Storage model (DynamoDB):
//   - PK: loteamento_quadra_lote (the natural key; stable across re-imports)
//   - GSI1 (loteamento_id-index): loteamento_id
//
// Invariant: Situacao is RESERVADO/VENDIDO iff Reserva is set and points to
// an ATIVA/CONCLUIDA reservation. The Reserva field is a cache refreshed by
// the reservation manager; the reservation document is the source of truth.
type Lote struct {
	LoteamentoQuadraLote string `json:"loteamento_quadra_lote"`

	Quadra string `json:"quadra"`
	Lote   string `json:"lote"`

	Area         float64 `json:"area"`
	ValorArea    float64 `json:"valor_area"`
	ValorTotal   float64 `json:"valor_total"`
	ValorEntrada float64 `json:"valor_entrada"`

	Situacao LoteSituacao `json:"situacao"`
	// SituacaoCSV keeps the status letter the last import declared, for
	// auditing divergences between the spreadsheet and the system.
	SituacaoCSV LoteSituacao `json:"situacao_csv,omitempty"`

	Loteamento LoteamentoResumo `json:"loteamento"`
	Reserva    *ReservaResumo   `json:"reserva,omitempty"`

	// Exibivel is false for lots hidden by the most recent import; they are
	// excluded from catalog listings but retained for audit.
	Exibivel bool `json:"exibivel"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pad3 normalizes a quadra/lote number to the three-digit form used by the
// natural key ("1" -> "001").
func Pad3(v string) string {
	v = strings.TrimSpace(v)
	for len(v) < 3 {
		v = "0" + v
	}
	return v
}

// LoteamentoQuadraLote builds the natural key <SLUG>-Q<quadra>-L<lote>,
// uppercased. It never changes once assigned to a lot.
func LoteamentoQuadraLote(slug, quadra, lote string) string {
	return strings.ToUpper(fmt.Sprintf("%s-Q%s-L%s", slug, Pad3(quadra), Pad3(lote)))
}
