package importer

import (
	"strings"
	"testing"
)

func TestLerRegistros(t *testing.T) {
	csv := strings.Join([]string{
		"DATA,NOME,CPF,QUADRA,LOTE",
		`10/03/2024,"Silva, Maria",529.982.247-25,1,5`,
		"linha,sem,colunas",
		"11/03/2024,João,111.444.777-35,2,10",
	}, "\n")

	registros, ignoradas, err := LerRegistros(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(registros) != 2 {
		t.Fatalf("expected 2 registros, got %d", len(registros))
	}
	if len(ignoradas) != 1 {
		t.Fatalf("expected 1 linha ignorada, got %d: %v", len(ignoradas), ignoradas)
	}
	if registros[0]["NOME"] != "Silva, Maria" {
		t.Fatalf("quoted comma mishandled: %q", registros[0]["NOME"])
	}
	if registros[1]["QUADRA"] != "2" || registros[1]["LOTE"] != "10" {
		t.Fatalf("unexpected registro: %+v", registros[1])
	}
}

func TestLerRegistros_CabecalhoVazio(t *testing.T) {
	if _, _, err := LerRegistros(strings.NewReader("")); err == nil {
		t.Fatalf("expected error on empty input")
	}
}

func TestLimpaValor(t *testing.T) {
	if got := LimpaValor("529.982.247-25"); got != "52998224725" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := LimpaValor("(62) 99999-0000"); got != "62999990000" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestValidaCPF(t *testing.T) {
	casos := []struct {
		cpf   string
		valid bool
	}{
		{"52998224725", true},
		{"11144477735", true},
		{"52998224724", false},
		{"11111111111", false},
		{"123", false},
		{"", false},
	}
	for _, c := range casos {
		if got := ValidaCPF(c.cpf); got != c.valid {
			t.Fatalf("ValidaCPF(%q) = %v, expected %v", c.cpf, got, c.valid)
		}
	}
}
