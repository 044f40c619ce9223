package request

import "strings"

// LoteamentoRequest is the creation/edition payload. A filled ID means
// edition.
type LoteamentoRequest struct {
	ID                 string `json:"id"`
	Slug               string `json:"slug"`
	Nome               string `json:"nome"`
	Descricao          string `json:"descricao"`
	Cidade             string `json:"cidade"`
	Estado             string `json:"estado"`
	MapaEmpreendimento string `json:"mapa_empreendimento"`
}

func (r LoteamentoRequest) IsEdicao() bool {
	return strings.TrimSpace(r.ID) != ""
}

// AlterarSituacaoLotesRequest is the bulk block/unblock payload. Chaves are
// lot natural keys.
type AlterarSituacaoLotesRequest struct {
	Chaves   []string `json:"chaves"`
	Situacao string   `json:"situacao"`
}

type MapaLoteRequest struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Quadra string `json:"quadra"`
	Numero string `json:"numero"`
	Cor    string `json:"cor"`
}

// MapaVirtualRequest replaces the loteamento's livemap overlay.
type MapaVirtualRequest struct {
	LoteamentoID string            `json:"loteamento_id"`
	ImagemURL    string            `json:"imagem_url"`
	Lotes        []MapaLoteRequest `json:"lotes"`
}

// LoteImportRequest is one catalog row of a bulk import.
type LoteImportRequest struct {
	Quadra       string  `json:"quadra"`
	Lote         string  `json:"lote"`
	Area         float64 `json:"area"`
	ValorArea    float64 `json:"valor_area"`
	ValorTotal   float64 `json:"valor_total"`
	ValorEntrada float64 `json:"entrada"`
	Situacao     string  `json:"situacao"`
}

// ImportarLotesRequest is the bulk catalog-import payload.
type ImportarLotesRequest struct {
	LoteamentoID string              `json:"loteamento_id"`
	Lotes        []LoteImportRequest `json:"lotes"`
}
