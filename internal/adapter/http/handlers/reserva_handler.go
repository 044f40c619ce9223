package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	request "loteamentos_api/internal/adapter/http/dto/request"
	response "loteamentos_api/internal/adapter/http/dto/response"
	"loteamentos_api/internal/adapter/http/middleware"
	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/infrastructure/pdf"
	"loteamentos_api/internal/usecase"
	"loteamentos_api/internal/usecase/interfaces"
	"loteamentos_api/pkg"

	"github.com/gin-gonic/gin"
)

var errOperacaoDesconhecida = pkg.NewDomainErrorSimple("UNKNOWN_OPERATION", "Operação não reconhecida", http.StatusBadRequest)

// ReservaHandler handles the reservation lifecycle endpoints.

type ReservaHandler struct {
	usecase usecase.IReservaUseCase
}

func NewReservaHandler(uc usecase.IReservaUseCase) *ReservaHandler {
	return &ReservaHandler{usecase: uc}
}

// GetReservas lists reservations filtered by ?q=, ?situacao=, ?vendedorId=,
// ?loteamentoId= and ?dataInicial=/&dataFinal=, paginated by ?page=/&perpage=.
func (h *ReservaHandler) GetReservas(c *gin.Context) {
	filtro := interfaces.ReservaFiltro{
		Busca:        c.Query("q"),
		VendedorID:   c.Query("vendedorId"),
		LoteamentoID: c.Query("loteamentoId"),
	}

	switch c.Query("situacao") {
	case "ATIVA":
		filtro.Situacoes = []entities.ReservaSituacao{entities.ReservaSituacaoAtiva}
	case "CONCLUIDA":
		filtro.Situacoes = []entities.ReservaSituacao{entities.ReservaSituacaoConcluida}
	case "CANCELADA":
		filtro.Situacoes = []entities.ReservaSituacao{entities.ReservaSituacaoCancelada}
	case "ATIVA_CONCLUIDA":
		filtro.Situacoes = []entities.ReservaSituacao{entities.ReservaSituacaoAtiva, entities.ReservaSituacaoConcluida}
	}

	if inicial, final := c.Query("dataInicial"), c.Query("dataFinal"); inicial != "" && final != "" {
		filtro.DataInicial, _ = time.Parse("2006-01-02", inicial)
		filtro.DataFinal, _ = time.Parse("2006-01-02", final)
	}

	page, perpage := paginacao(c)
	lista, total, err := h.usecase.Search(c.Request.Context(), filtro, page, perpage)
	if err != nil {
		appErr := mapReservaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NovaLista(lista, total))
}

// GetReserva returns one reservation by ?id= with the live status of its
// member lots.
func (h *ReservaHandler) GetReserva(c *gin.Context) {
	reserva, err := h.usecase.GetByID(c.Request.Context(), c.Query("id"))
	if err != nil {
		appErr := mapReservaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// SetReserva creates a reservation over one or more available lots.
func (h *ReservaHandler) SetReserva(c *gin.Context) {
	var payload request.CriarReservaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	reserva, err := h.usecase.Criar(c.Request.Context(), usecase.CriarReservaCmd{
		LoteamentoID: payload.LoteamentoID,
		Chaves:       payload.Chaves,
		ClienteID:    payload.ClienteID,
		VendedorID:   payload.VendedorID,
		DataReserva:  payload.DataReserva,
	}, middleware.Ator(c))
	if err != nil {
		appErr := mapReservaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, reserva)
}

// UpdateReserva dispatches the mutation payload by operacao: cancel, change
// vendedor or toggle a member lot between RESERVADO and VENDIDO.
func (h *ReservaHandler) UpdateReserva(c *gin.Context) {
	var payload request.UpdateReservaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	ator := middleware.Ator(c)

	switch payload.Operacao {
	case request.OperacaoCancelarReserva:
		if _, err := h.usecase.Cancelar(ctx, payload.ReservaID, ator); err != nil {
			appErr := mapReservaError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.MensagemResponse{Message: "Reserva cancelada e lotes liberados com sucesso."})

	case request.OperacaoAlterarVendedor:
		if _, err := h.usecase.AlterarVendedor(ctx, payload.ReservaID, payload.NovoVendedorID, ator); err != nil {
			appErr := mapReservaError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.MensagemResponse{Message: "Vendedor da reserva alterado com sucesso."})

	case request.OperacaoAlterarLoteSituacao:
		nova := entities.LoteSituacao(payload.NovaSituacao)
		if _, err := h.usecase.AlterarSituacaoLote(ctx, payload.ReservaID, payload.Chave, nova, ator); err != nil {
			appErr := mapReservaError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.MensagemResponse{Message: "Situação do lote alterada com sucesso."})

	default:
		c.JSON(errOperacaoDesconhecida.HTTPStatus, errOperacaoDesconhecida.ToHTTPError())
	}
}

// FichaReserva renders the printable voucher PDF of ?id=.
func (h *ReservaHandler) FichaReserva(c *gin.Context) {
	detalhe, err := h.usecase.GetByID(c.Request.Context(), c.Query("id"))
	if err != nil {
		appErr := mapReservaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ficha, err := pdf.FichaReserva(detalhe.Reserva)
	if err != nil {
		appErr := mapReservaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", detalhe.CodigoReserva))
	c.Data(http.StatusOK, "application/pdf", ficha)
}

func mapReservaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrReservaNotFound):
		return pkg.NewDomainErrorSimple("RESERVA_NOT_FOUND", "Reserva não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReservaJaCancelada):
		return pkg.NewDomainErrorSimple("RESERVA_JA_CANCELADA", "Reserva já está cancelada", http.StatusConflict)
	case errors.Is(err, usecase.ErrLoteIndisponivel):
		return pkg.NewDomainErrorSimple("LOTE_INDISPONIVEL", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrLoteNotFound), errors.Is(err, usecase.ErrLotesNaoEncontrados):
		return pkg.NewDomainErrorSimple("LOTES_NOT_FOUND", "Um ou mais lotes não encontrados", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLoteamentoNotFound):
		return pkg.NewDomainErrorSimple("LOTEAMENTO_NOT_FOUND", "Loteamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLoteamentoBloqueado):
		return pkg.NewDomainErrorSimple("LOTEAMENTO_BLOQUEADO", "Loteamento bloqueado", http.StatusConflict)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendedorNotFound):
		return pkg.NewDomainErrorSimple("VENDEDOR_NOT_FOUND", "Vendedor não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVendedorNaoInformado),
		errors.Is(err, usecase.ErrReservaInvalida),
		errors.Is(err, usecase.ErrSituacaoLoteInvalida):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLoteForaDaReserva):
		return pkg.NewDomainErrorSimple("LOTE_FORA_DA_RESERVA", "Lote não faz parte desta reserva", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
