package entities

import "time"

type UsuarioStatus string

const (
	UsuarioStatusAtivo     UsuarioStatus = "ATIVO"
	UsuarioStatusBloqueado UsuarioStatus = "BLOQUEADO"
)

type UsuarioNivel string

const (
	UsuarioNivelAdmin    UsuarioNivel = "ADMIN"
	UsuarioNivelVendedor UsuarioNivel = "VENDEDOR"
	UsuarioNivelCliente  UsuarioNivel = "CLIENTE"
)

type Telefone struct {
	Tipo  string `json:"tipo"`
	Valor string `json:"valor"`
}

type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// Usuario is the user record consumed by the reservation engine.
//
// User management itself lives in another service surface; here we only need
// lookups (cliente/vendedor validation) and the denormalized snapshots below.
type Usuario struct {
	ID                string        `json:"id"`
	Nome              string        `json:"nome"`
	Email             string        `json:"email"`
	Documento         string        `json:"documento"`
	DataNascimento    time.Time     `json:"data_nascimento"`
	Sexo              string        `json:"sexo"`
	TelefonePrincipal Telefone      `json:"telefone_principal"`
	Endereco          Endereco      `json:"endereco"`
	Niveis            []UsuarioNivel `json:"niveis"`
	Scopes            []string      `json:"scopes"`
	Status            UsuarioStatus `json:"status"`
}

// UsuarioResumo is the audit/vendedor snapshot embedded in other entities.
type UsuarioResumo struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Documento string `json:"documento"`
}

// ClienteResumo is the buyer snapshot frozen into a reservation.
type ClienteResumo struct {
	ID                string    `json:"id"`
	Nome              string    `json:"nome"`
	Email             string    `json:"email"`
	DataNascimento    time.Time `json:"data_nascimento"`
	Documento         string    `json:"documento"`
	Sexo              string    `json:"sexo"`
	TelefonePrincipal Telefone  `json:"telefone_principal"`
	Endereco          Endereco  `json:"endereco"`
}

func (u Usuario) Resumo() UsuarioResumo {
	return UsuarioResumo{ID: u.ID, Nome: u.Nome, Documento: u.Documento}
}

func (u Usuario) ClienteResumo() ClienteResumo {
	return ClienteResumo{
		ID:                u.ID,
		Nome:              u.Nome,
		Email:             u.Email,
		DataNascimento:    u.DataNascimento,
		Documento:         u.Documento,
		Sexo:              u.Sexo,
		TelefonePrincipal: u.TelefonePrincipal,
		Endereco:          u.Endereco,
	}
}

func (u Usuario) TemNivel(n UsuarioNivel) bool {
	for _, nivel := range u.Niveis {
		if nivel == n {
			return true
		}
	}
	return false
}

// Auditoria records who performed a mutation and when.
type Auditoria struct {
	DataHora time.Time     `json:"data_hora"`
	Usuario  UsuarioResumo `json:"usuario"`
}

func NovaAuditoria(u UsuarioResumo, em time.Time) Auditoria {
	return Auditoria{DataHora: em.UTC(), Usuario: u}
}
