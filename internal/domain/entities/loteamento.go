package entities

import "time"

// LoteamentoStatus represents the lifecycle of a development (loteamento).
type LoteamentoStatus string

const (
	LoteamentoStatusAtivo     LoteamentoStatus = "ATIVO"
	LoteamentoStatusBloqueado LoteamentoStatus = "BLOQUEADO"
)

// Livemap sync flag values. 0 means the published image is stale and the
// materializer must regenerate it; 1 means it is up to date.
const (
	LivemapSyncPendente   = 0
	LivemapSyncAtualizado = 1
)

// Loteamento is a subdivided real-estate development.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (slug-index): slug
//
// QuantidadeQuadras/QuantidadeLotes/ValorTotalLotes are a materialized view
// recomputed wholly by the catalog import; nothing else patches them.
type Loteamento struct {
	ID        string           `json:"id"`
	Slug      string           `json:"slug"`
	Nome      string           `json:"nome"`
	Descricao string           `json:"descricao"`
	Cidade    string           `json:"cidade"`
	Estado    string           `json:"estado"`
	Status    LoteamentoStatus `json:"status"`

	// MapaEmpreendimento is the base site-plan image URL the livemap
	// composites over.
	MapaEmpreendimento string `json:"mapa_empreendimento"`

	LivemapURL        string    `json:"livemap_url"`
	LivemapLastUpdate time.Time `json:"livemap_last_update"`
	LivemapSync       int       `json:"livemap_sync"`

	QuantidadeQuadras int     `json:"quantidade_quadras"`
	QuantidadeLotes   int     `json:"quantidade_lotes"`
	ValorTotalLotes   float64 `json:"valor_total_lotes"`

	CriadoPor   Auditoria `json:"criado_por"`
	AlteradoPor Auditoria `json:"alterado_por"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoteamentoResumo is the denormalized snapshot embedded in lots and
// reservations.
type LoteamentoResumo struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}

func (l Loteamento) Resumo() LoteamentoResumo {
	return LoteamentoResumo{ID: l.ID, Nome: l.Nome}
}
