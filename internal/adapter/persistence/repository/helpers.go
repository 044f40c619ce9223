package repository

import (
	"os"
	"strconv"
	"time"

	"loteamentos_api/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func timeToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Shared item fragments for the denormalized snapshots embedded across
// tables. Times travel as RFC3339Nano strings, like every other item field.

type usuarioResumoItem struct {
	ID        string `dynamodbav:"id"`
	Nome      string `dynamodbav:"nome"`
	Documento string `dynamodbav:"documento,omitempty"`
}

type telefoneItem struct {
	Tipo  string `dynamodbav:"tipo,omitempty"`
	Valor string `dynamodbav:"valor,omitempty"`
}

type enderecoItem struct {
	CEP         string `dynamodbav:"cep,omitempty"`
	Logradouro  string `dynamodbav:"logradouro,omitempty"`
	Numero      string `dynamodbav:"numero,omitempty"`
	Complemento string `dynamodbav:"complemento,omitempty"`
	Bairro      string `dynamodbav:"bairro,omitempty"`
	Cidade      string `dynamodbav:"cidade,omitempty"`
	Estado      string `dynamodbav:"estado,omitempty"`
}

type clienteResumoItem struct {
	ID                string       `dynamodbav:"id"`
	Nome              string       `dynamodbav:"nome"`
	Email             string       `dynamodbav:"email,omitempty"`
	DataNascimento    string       `dynamodbav:"data_nascimento,omitempty"`
	Documento         string       `dynamodbav:"documento,omitempty"`
	Sexo              string       `dynamodbav:"sexo,omitempty"`
	TelefonePrincipal telefoneItem `dynamodbav:"telefone_principal,omitempty"`
	Endereco          enderecoItem `dynamodbav:"endereco,omitempty"`
}

type auditoriaItem struct {
	DataHora string            `dynamodbav:"data_hora,omitempty"`
	Usuario  usuarioResumoItem `dynamodbav:"usuario"`
}

type loteamentoResumoItem struct {
	ID   string `dynamodbav:"id"`
	Nome string `dynamodbav:"nome"`
}

type reservaLoteItem struct {
	LoteamentoQuadraLote string `dynamodbav:"loteamento_quadra_lote"`
	Quadra               string `dynamodbav:"quadra"`
	Lote                 string `dynamodbav:"lote"`
	Area                 string `dynamodbav:"area"`
	ValorArea            string `dynamodbav:"valor_area"`
	ValorTotal           string `dynamodbav:"valor_total"`
	ValorEntrada         string `dynamodbav:"valor_entrada"`
}

type reservaResumoItem struct {
	ID            string            `dynamodbav:"id"`
	CodigoReserva string            `dynamodbav:"codigo_reserva"`
	DataReserva   string            `dynamodbav:"data_reserva,omitempty"`
	Vendedor      usuarioResumoItem `dynamodbav:"vendedor"`
	Cliente       clienteResumoItem `dynamodbav:"cliente"`
	Situacao      string            `dynamodbav:"situacao"`
}

func toUsuarioResumoItem(u entities.UsuarioResumo) usuarioResumoItem {
	return usuarioResumoItem{ID: u.ID, Nome: u.Nome, Documento: u.Documento}
}

func fromUsuarioResumoItem(it usuarioResumoItem) entities.UsuarioResumo {
	return entities.UsuarioResumo{ID: it.ID, Nome: it.Nome, Documento: it.Documento}
}

func toClienteResumoItem(c entities.ClienteResumo) clienteResumoItem {
	return clienteResumoItem{
		ID:                c.ID,
		Nome:              c.Nome,
		Email:             c.Email,
		DataNascimento:    timeToString(c.DataNascimento),
		Documento:         c.Documento,
		Sexo:              c.Sexo,
		TelefonePrincipal: telefoneItem(c.TelefonePrincipal),
		Endereco:          enderecoItem(c.Endereco),
	}
}

func fromClienteResumoItem(it clienteResumoItem) entities.ClienteResumo {
	return entities.ClienteResumo{
		ID:                it.ID,
		Nome:              it.Nome,
		Email:             it.Email,
		DataNascimento:    parseTime(it.DataNascimento),
		Documento:         it.Documento,
		Sexo:              it.Sexo,
		TelefonePrincipal: entities.Telefone(it.TelefonePrincipal),
		Endereco:          entities.Endereco(it.Endereco),
	}
}

func toAuditoriaItem(a entities.Auditoria) auditoriaItem {
	return auditoriaItem{DataHora: timeToString(a.DataHora), Usuario: toUsuarioResumoItem(a.Usuario)}
}

func fromAuditoriaItem(it auditoriaItem) entities.Auditoria {
	return entities.Auditoria{DataHora: parseTime(it.DataHora), Usuario: fromUsuarioResumoItem(it.Usuario)}
}

func toLoteamentoResumoItem(l entities.LoteamentoResumo) loteamentoResumoItem {
	return loteamentoResumoItem{ID: l.ID, Nome: l.Nome}
}

func fromLoteamentoResumoItem(it loteamentoResumoItem) entities.LoteamentoResumo {
	return entities.LoteamentoResumo{ID: it.ID, Nome: it.Nome}
}

func toReservaResumoItem(r entities.ReservaResumo) reservaResumoItem {
	return reservaResumoItem{
		ID:            r.ID,
		CodigoReserva: r.CodigoReserva,
		DataReserva:   timeToString(r.DataReserva),
		Vendedor:      toUsuarioResumoItem(r.Vendedor),
		Cliente:       toClienteResumoItem(r.Cliente),
		Situacao:      string(r.Situacao),
	}
}

func fromReservaResumoItem(it reservaResumoItem) entities.ReservaResumo {
	return entities.ReservaResumo{
		ID:            it.ID,
		CodigoReserva: it.CodigoReserva,
		DataReserva:   parseTime(it.DataReserva),
		Vendedor:      fromUsuarioResumoItem(it.Vendedor),
		Cliente:       fromClienteResumoItem(it.Cliente),
		Situacao:      entities.ReservaSituacao(it.Situacao),
	}
}

func toReservaLoteItem(l entities.ReservaLote) reservaLoteItem {
	return reservaLoteItem{
		LoteamentoQuadraLote: l.LoteamentoQuadraLote,
		Quadra:               l.Quadra,
		Lote:                 l.Lote,
		Area:                 floatToString(l.Area),
		ValorArea:            floatToString(l.ValorArea),
		ValorTotal:           floatToString(l.ValorTotal),
		ValorEntrada:         floatToString(l.ValorEntrada),
	}
}

func fromReservaLoteItem(it reservaLoteItem) entities.ReservaLote {
	area, _ := strconv.ParseFloat(it.Area, 64)
	valorArea, _ := strconv.ParseFloat(it.ValorArea, 64)
	valorTotal, _ := strconv.ParseFloat(it.ValorTotal, 64)
	valorEntrada, _ := strconv.ParseFloat(it.ValorEntrada, 64)
	return entities.ReservaLote{
		LoteamentoQuadraLote: it.LoteamentoQuadraLote,
		Quadra:               it.Quadra,
		Lote:                 it.Lote,
		Area:                 area,
		ValorArea:            valorArea,
		ValorTotal:           valorTotal,
		ValorEntrada:         valorEntrada,
	}
}
