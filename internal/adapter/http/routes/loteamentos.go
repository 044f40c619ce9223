package routes

import (
	"loteamentos_api/internal/adapter/http/handlers"
	"loteamentos_api/internal/adapter/http/middleware"
	"loteamentos_api/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

func addLoteamentoRoutes(rg *gin.RouterGroup, h *handlers.LoteamentoHandler) {
	leitura := middleware.ExigirScope(auth.ScopeLoteamentosLeitura)
	editar := middleware.ExigirScope(auth.ScopeLoteamentosEditar)

	rg.GET("/loteamentos", leitura, h.GetLoteamentos)
	rg.GET("/loteamento", leitura, h.GetLoteamento)
	rg.POST("/loteamentos", editar, h.SetLoteamento)

	rg.GET("/loteamentos/lotes", leitura, h.GetLotesPorLoteamento)
	rg.PUT("/lotes/situacao", editar, h.AlterarSituacaoLotes)

	rg.POST("/lotes/importar", editar, h.ImportarLotes)
	rg.POST("/loteamentos/mapa-virtual", editar, h.SalvarMapaVirtual)
}

func addReservaRoutes(rg *gin.RouterGroup, h *handlers.ReservaHandler) {
	leitura := middleware.ExigirScope(auth.ScopeReservasLeitura)
	editar := middleware.ExigirScope(auth.ScopeReservasEditar)

	rg.GET("/reservas", leitura, h.GetReservas)
	rg.GET("/reserva", leitura, h.GetReserva)
	rg.GET("/reservas/ficha", leitura, h.FichaReserva)
	rg.POST("/reservas", editar, h.SetReserva)
	rg.PUT("/reservas", editar, h.UpdateReserva)
}

func addFormaPagamentoRoutes(rg *gin.RouterGroup, h *handlers.FormaPagamentoHandler) {
	admin := rg.Group("/admin/configuracoes")
	{
		admin.GET("/formas-pagamento", h.GetFormasPagamento)
		admin.GET("/formas-pagamento-disponiveis", h.GetFormasPagamentoDisponiveis)
		admin.POST("/formas-pagamento", h.AddFormaPagamento)
	}
}
