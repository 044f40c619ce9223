package main

import (
	"context"
	"flag"
	"log"
	"os"

	"loteamentos_api/internal/adapter/importer"
	"loteamentos_api/internal/adapter/persistence/repository"
	"loteamentos_api/internal/infrastructure/database"

	_ "github.com/joho/godotenv/autoload"
)

// One-shot loader that replays a historical sales spreadsheet (CSV) into the
// reservation engine. Clientes are upserted by documento and every lot row
// becomes a reservation with a deterministic code, so re-running the same
// file is idempotent.
func main() {
	arquivo := flag.String("arquivo", "", "caminho do CSV de vendas")
	loteamentoID := flag.String("loteamento", "", "id do loteamento")
	flag.Parse()

	if *arquivo == "" || *loteamentoID == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*arquivo)
	if err != nil {
		log.Fatalf("falha ao abrir %s: %v", *arquivo, err)
	}
	defer f.Close()

	ddb := database.ConnectDynamoDB()
	loader := importer.NewVendasLoader(
		repository.NewLoteamentoDynamoRepository(ddb),
		repository.NewLoteDynamoRepository(ddb),
		repository.NewReservaDynamoRepository(ddb),
		repository.NewUsuarioDynamoRepository(ddb),
	)

	result, err := loader.Processar(context.Background(), *loteamentoID, f)
	if err != nil {
		log.Fatalf("processamento falhou: %v", err)
	}

	for _, linha := range result.Ignoradas {
		log.Printf("[x][importador] ignorada: %s", linha)
	}
	log.Printf("[x][importador] processamento concluído: %d registro(s), %d ignorado(s)",
		result.Processadas, len(result.Ignoradas))
}
