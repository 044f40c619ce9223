package response

// ListaResponse is the paginated listing envelope used across the API.
type ListaResponse[T any] struct {
	Lista []T `json:"lista"`
	Total int `json:"total"`
}

func NovaLista[T any](lista []T, total int) ListaResponse[T] {
	if lista == nil {
		lista = []T{}
	}
	return ListaResponse[T]{Lista: lista, Total: total}
}

// MensagemResponse is the plain acknowledgement body.
type MensagemResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
