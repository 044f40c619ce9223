package auth

// Scopes recognized by the API. The wildcard grants everything.
const (
	ScopeTudo = "*"

	ScopeLoteamentosLeitura = "loteamentos.leitura"
	ScopeLoteamentosEditar  = "loteamentos.editar"
	ScopeReservasLeitura    = "reservas.leitura"
	ScopeReservasEditar     = "reservas.editar"
)

// HasScope reports whether the claim set grants the required scope. An
// "editar" scope implies the matching "leitura".
func HasScope(claims *Claims, required string) bool {
	implied := map[string]string{
		ScopeLoteamentosLeitura: ScopeLoteamentosEditar,
		ScopeReservasLeitura:    ScopeReservasEditar,
	}
	for _, s := range claims.Scopes {
		if s == ScopeTudo || s == required {
			return true
		}
		if editar, ok := implied[required]; ok && s == editar {
			return true
		}
	}
	return false
}
