package entities

import "time"

// MapaLote is one rectangle annotation of the livemap overlay, keyed by
// (quadra, numero) in pixel coordinates over the base site-plan image.
type MapaLote struct {
	ID     string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Quadra string `json:"quadra"`
	Numero string `json:"numero"`
	// Cor is the default fill used when the rectangle does not resolve to a
	// known lot.
	Cor string `json:"cor"`
}

// LoteamentoMapa is the overlay configuration, one per loteamento. It is
// edited infrequently and carries no sale status; status is joined in at
// render time from the lot ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (loteamento_id-index): loteamento_id
type LoteamentoMapa struct {
	ID          string           `json:"id"`
	Loteamento  LoteamentoResumo `json:"loteamento"`
	MapaVirtual string           `json:"mapa_virtual"`
	Lotes       []MapaLote       `json:"lotes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
