package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// LerRegistros reads a header-first CSV into one map per data line, keyed by
// the trimmed header names. Lines whose column count differs from the header
// are skipped and reported, never fatal.
func LerRegistros(r io.Reader) ([]map[string]string, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("leitura do cabeçalho: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	registros := []map[string]string{}
	ignoradas := []string{}
	for linha := 2; ; linha++ {
		campos, err := reader.Read()
		if err == io.EOF {
			return registros, ignoradas, nil
		}
		if err != nil {
			ignoradas = append(ignoradas, fmt.Sprintf("linha %d: %v", linha, err))
			continue
		}
		if len(campos) != len(header) {
			ignoradas = append(ignoradas, fmt.Sprintf("linha %d: %d colunas, esperadas %d", linha, len(campos), len(header)))
			continue
		}
		registro := make(map[string]string, len(header))
		for i, nome := range header {
			registro[nome] = strings.TrimSpace(campos[i])
		}
		registros = append(registros, registro)
	}
}
