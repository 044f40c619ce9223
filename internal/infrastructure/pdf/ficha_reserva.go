package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"loteamentos_api/internal/domain/entities"

	"github.com/jung-kurt/gofpdf"
)

// FichaReserva renders the printable reservation voucher.
func FichaReserva(r entities.Reserva) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Ficha de Reserva %s", r.CodigoReserva), false)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Ficha de Reserva"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Código: %s", r.CodigoReserva)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	secao := func(titulo string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 8, tr(titulo), "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 11)
	}
	linha := func(rotulo, valor string) {
		pdf.CellFormat(50, 7, tr(rotulo), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(valor), "1", 1, "L", false, 0, "")
	}

	secao("Reserva")
	linha("Data", formatarData(r.DataReserva))
	linha("Situação", string(r.Situacao))
	linha("Loteamento", r.Loteamento.Nome)
	linha("Vendedor", r.Vendedor.Nome)
	pdf.Ln(3)

	secao("Cliente")
	linha("Nome", r.Cliente.Nome)
	linha("Documento", r.Cliente.Documento)
	if r.Cliente.Email != "" {
		linha("E-mail", r.Cliente.Email)
	}
	if r.Cliente.TelefonePrincipal.Valor != "" {
		linha("Telefone", r.Cliente.TelefonePrincipal.Valor)
	}
	if endereco := formatarEndereco(r.Cliente.Endereco); endereco != "" {
		linha("Endereço", endereco)
	}
	pdf.Ln(3)

	secao("Lotes")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(25, 7, "Quadra", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Lote", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, tr("Área (m²)"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, "Valor Total (R$)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Entrada (R$)", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	var total float64
	for _, l := range r.Lotes {
		pdf.CellFormat(25, 7, l.Quadra, "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 7, l.Lote, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, formatarValor(l.Area), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, formatarValor(l.ValorTotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, formatarValor(l.ValorEntrada), "1", 1, "R", false, 0, "")
		total += l.ValorTotal
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(85, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, formatarValor(total), "1", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "", "1", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Emitida em %s", formatarData(time.Now()))), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatarData(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

func formatarValor(v float64) string {
	// pt-BR decimal comma.
	return strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}

func formatarEndereco(e entities.Endereco) string {
	partes := []string{}
	if e.Logradouro != "" {
		p := e.Logradouro
		if e.Numero != "" {
			p += ", " + e.Numero
		}
		partes = append(partes, p)
	}
	if e.Bairro != "" {
		partes = append(partes, e.Bairro)
	}
	if e.Cidade != "" {
		p := e.Cidade
		if e.Estado != "" {
			p += "/" + e.Estado
		}
		partes = append(partes, p)
	}
	if e.CEP != "" {
		partes = append(partes, "CEP "+e.CEP)
	}
	return strings.Join(partes, " - ")
}
