package importer

import "strings"

// LimpaValor strips everything but digits (CPFs and phone numbers arrive
// formatted in the spreadsheets).
func LimpaValor(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidaCPF checks the two CPF verifier digits. Expects an already cleaned,
// digits-only value.
func ValidaCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	iguais := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			iguais = false
			break
		}
	}
	if iguais {
		return false
	}

	digito := func(limite int) int {
		soma := 0
		for i := 0; i < limite; i++ {
			soma += int(cpf[i]-'0') * (limite + 1 - i)
		}
		resto := (soma * 10) % 11
		if resto == 10 {
			resto = 0
		}
		return resto
	}

	return digito(9) == int(cpf[9]-'0') && digito(10) == int(cpf[10]-'0')
}
