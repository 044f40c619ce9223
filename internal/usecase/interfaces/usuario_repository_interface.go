package interfaces

import (
	"context"

	"loteamentos_api/internal/domain/entities"
)

// IUsuarioRepository is the lookup surface the engine needs from the user
// base (cliente/vendedor validation and snapshots). Full user management is
// another service's concern.

type IUsuarioRepository interface {
	GetByID(ctx context.Context, id string) (entities.Usuario, error)
	GetByDocumento(ctx context.Context, documento string) (entities.Usuario, error)
	GetByNome(ctx context.Context, nome string) (entities.Usuario, error)
	// UpsertByDocumento creates or updates a usuario keyed by documento; used
	// by the sales-history loader to register clientes on the fly.
	UpsertByDocumento(ctx context.Context, u entities.Usuario) (entities.Usuario, error)
}
