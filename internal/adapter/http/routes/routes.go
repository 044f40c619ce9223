package routes

import (
	"log"
	"strconv"

	_ "loteamentos_api/docs" // This will be auto-generated
	"loteamentos_api/internal/adapter/http/handlers"
	"loteamentos_api/internal/adapter/http/middleware"
	repository "loteamentos_api/internal/adapter/persistence/repository"
	"loteamentos_api/internal/infrastructure/database"
	"loteamentos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	loteamentoRepo := repository.NewLoteamentoDynamoRepository(ddb)
	loteRepo := repository.NewLoteDynamoRepository(ddb)
	reservaRepo := repository.NewReservaDynamoRepository(ddb)
	mapaRepo := repository.NewMapaDynamoRepository(ddb)
	usuarioRepo := repository.NewUsuarioDynamoRepository(ddb)
	formaPagamentoRepo := repository.NewFormaPagamentoDynamoRepository(ddb)

	ledger := usecase.NewLoteLedger(loteRepo, loteamentoRepo)
	loteamentoUseCase := usecase.NewLoteamentoUseCase(loteamentoRepo, loteRepo, mapaRepo, ledger)
	reservaUseCase := usecase.NewReservaUseCase(reservaRepo, loteRepo, loteamentoRepo, usuarioRepo, ledger)
	importacaoUseCase := usecase.NewImportacaoUseCase(loteamentoRepo, loteRepo, reservaRepo)
	formaPagamentoUseCase := usecase.NewFormaPagamentoUseCase(formaPagamentoRepo)

	loteamentoHandler := handlers.NewLoteamentoHandler(loteamentoUseCase, importacaoUseCase)
	reservaHandler := handlers.NewReservaHandler(reservaUseCase)
	formaPagamentoHandler := handlers.NewFormaPagamentoHandler(formaPagamentoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	autenticado := v1.Group("", middleware.Autenticar())
	addLoteamentoRoutes(autenticado, loteamentoHandler)
	addReservaRoutes(autenticado, reservaHandler)
	addFormaPagamentoRoutes(autenticado, formaPagamentoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
