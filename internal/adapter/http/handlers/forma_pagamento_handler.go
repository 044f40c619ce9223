package handlers

import (
	"errors"
	"net/http"

	request "loteamentos_api/internal/adapter/http/dto/request"
	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase"
	"loteamentos_api/pkg"

	"github.com/gin-gonic/gin"
)

// FormaPagamentoHandler handles payment-method configuration CRUD.

type FormaPagamentoHandler struct {
	usecase usecase.IFormaPagamentoUseCase
}

func NewFormaPagamentoHandler(uc usecase.IFormaPagamentoUseCase) *FormaPagamentoHandler {
	return &FormaPagamentoHandler{usecase: uc}
}

func (h *FormaPagamentoHandler) GetFormasPagamento(c *gin.Context) {
	formas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFormaPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, formas)
}

// GetFormasPagamentoDisponiveis lists only the ATIVO ones, the set offered
// at reservation time.
func (h *FormaPagamentoHandler) GetFormasPagamentoDisponiveis(c *gin.Context) {
	formas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFormaPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	disponiveis := []entities.FormaPagamento{}
	for _, f := range formas {
		if f.Status == entities.FormaPagamentoStatusAtivo {
			disponiveis = append(disponiveis, f)
		}
	}
	c.JSON(http.StatusOK, disponiveis)
}

// AddFormaPagamento creates a payment method, or updates it when the payload
// carries an id.
func (h *FormaPagamentoHandler) AddFormaPagamento(c *gin.Context) {
	var payload request.FormaPagamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	forma := entities.FormaPagamento{
		ID:              payload.ID,
		Nome:            payload.Nome,
		SituacaoInicial: payload.SituacaoInicial,
		DiasParcelas:    payload.DiasParcelas,
		MaxParcelas:     payload.MaxParcelas,
		Status:          entities.FormaPagamentoStatus(payload.Status),
	}

	var err error
	if payload.ID != "" {
		forma, err = h.usecase.Atualizar(c.Request.Context(), forma)
	} else {
		forma, err = h.usecase.Criar(c.Request.Context(), forma)
	}
	if err != nil {
		appErr := mapFormaPagamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, forma)
}

func mapFormaPagamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrFormaPagamentoNotFound):
		return pkg.NewDomainErrorSimple("FORMA_PAGAMENTO_NOT_FOUND", "Forma de pagamento não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFormaPagamentoInvalida):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
