package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "loteamentos_api/internal/adapter/http/dto/request"
	response "loteamentos_api/internal/adapter/http/dto/response"
	"loteamentos_api/internal/adapter/http/middleware"
	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase"
	"loteamentos_api/pkg"

	"github.com/gin-gonic/gin"
)

var errPayloadInvalido = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Payload inválido", http.StatusBadRequest)

// LoteamentoHandler handles the development catalog: CRUD, lot listings,
// bulk status changes, livemap overlay configuration and catalog imports.

type LoteamentoHandler struct {
	usecase    usecase.ILoteamentoUseCase
	importacao usecase.IImportacaoUseCase
}

func NewLoteamentoHandler(uc usecase.ILoteamentoUseCase, importacao usecase.IImportacaoUseCase) *LoteamentoHandler {
	return &LoteamentoHandler{usecase: uc, importacao: importacao}
}

// GetLoteamentos lists developments filtered by ?q= with ?page=/&perpage=
// pagination.
func (h *LoteamentoHandler) GetLoteamentos(c *gin.Context) {
	page, perpage := paginacao(c)
	lista, total, err := h.usecase.Search(c.Request.Context(), c.Query("q"), page, perpage)
	if err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.NovaLista(lista, total))
}

// GetLoteamento returns one development (with its overlay) by ?id=.
func (h *LoteamentoHandler) GetLoteamento(c *gin.Context) {
	loteamento, err := h.usecase.GetByID(c.Request.Context(), c.Query("id"))
	if err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, loteamento)
}

// SetLoteamento creates a development, or updates it when the payload
// carries an id.
func (h *LoteamentoHandler) SetLoteamento(c *gin.Context) {
	var payload request.LoteamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	cmd := usecase.SalvarLoteamentoCmd{
		Slug:               payload.Slug,
		Nome:               payload.Nome,
		Descricao:          payload.Descricao,
		Cidade:             payload.Cidade,
		Estado:             payload.Estado,
		MapaEmpreendimento: payload.MapaEmpreendimento,
	}

	if payload.IsEdicao() {
		if _, err := h.usecase.Atualizar(c.Request.Context(), payload.ID, cmd, middleware.Ator(c)); err != nil {
			appErr := mapLoteamentoError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.MensagemResponse{Message: "Loteamento atualizado com sucesso."})
		return
	}

	loteamento, err := h.usecase.Criar(c.Request.Context(), cmd, middleware.Ator(c))
	if err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.MensagemResponse{Message: "Loteamento criado com sucesso.", ID: loteamento.ID})
}

// GetLotesPorLoteamento lists the visible lots of ?loteamento_id=.
func (h *LoteamentoHandler) GetLotesPorLoteamento(c *gin.Context) {
	lotes, err := h.usecase.ListLotes(c.Request.Context(), c.Query("loteamento_id"))
	if err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, lotes)
}

// AlterarSituacaoLotes bulk-switches lots between DISPONIVEL and BLOQUEADO.
func (h *LoteamentoHandler) AlterarSituacaoLotes(c *gin.Context) {
	var payload request.AlterarSituacaoLotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	modificados, err := h.usecase.AlterarSituacaoLotes(
		c.Request.Context(),
		payload.Chaves,
		entities.LoteSituacao(payload.Situacao),
		middleware.Ator(c),
	)
	if err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("%d lote(s) atualizado(s) com sucesso.", modificados),
		"modificados": modificados,
	})
}

// SalvarMapaVirtual replaces the livemap overlay configuration.
func (h *LoteamentoHandler) SalvarMapaVirtual(c *gin.Context) {
	var payload request.MapaVirtualRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	lotes := make([]entities.MapaLote, 0, len(payload.Lotes))
	for _, l := range payload.Lotes {
		lotes = append(lotes, entities.MapaLote{
			X: l.X, Y: l.Y, Width: l.Width, Height: l.Height,
			Quadra: l.Quadra, Numero: l.Numero, Cor: l.Cor,
		})
	}

	if _, err := h.usecase.SalvarMapaVirtual(c.Request.Context(), payload.LoteamentoID, payload.ImagemURL, lotes); err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.MensagemResponse{Message: "Mapa virtual atualizado com sucesso."})
}

// ImportarLotes runs the full-replace catalog import.
func (h *LoteamentoHandler) ImportarLotes(c *gin.Context) {
	var payload request.ImportarLotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errPayloadInvalido.HTTPStatus, errPayloadInvalido.ToHTTPError())
		return
	}

	rows := make([]usecase.LoteImportRow, 0, len(payload.Lotes))
	for _, l := range payload.Lotes {
		rows = append(rows, usecase.LoteImportRow{
			Quadra:       l.Quadra,
			Lote:         l.Lote,
			Area:         l.Area,
			ValorArea:    l.ValorArea,
			ValorTotal:   l.ValorTotal,
			ValorEntrada: l.ValorEntrada,
			Situacao:     l.Situacao,
		})
	}

	result, err := h.importacao.ImportarLotes(c.Request.Context(), payload.LoteamentoID, rows, middleware.Ator(c))
	if err != nil {
		appErr := mapLoteamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func paginacao(c *gin.Context) (page, perpage int) {
	page, _ = strconv.Atoi(c.Query("page"))
	perpage, _ = strconv.Atoi(c.Query("perpage"))
	return page, perpage
}

func mapLoteamentoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLoteamentoNotFound):
		return pkg.NewDomainErrorSimple("LOTEAMENTO_NOT_FOUND", "Loteamento não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlugJaExiste):
		return pkg.NewDomainErrorSimple("SLUG_ALREADY_EXISTS", "Slug já existe para outro loteamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrLoteamentoInvalido),
		errors.Is(err, usecase.ErrSituacaoInvalida),
		errors.Is(err, usecase.ErrMapaInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLotesNaoEncontrados):
		return pkg.NewDomainErrorSimple("LOTES_NOT_FOUND", "Um ou mais lotes não foram encontrados", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLotesVinculados):
		return pkg.NewDomainErrorSimple("LOTES_VINCULADOS", "Um ou mais lotes estão reservados ou vendidos e não podem ser alterados", http.StatusConflict)
	case errors.Is(err, usecase.ErrLoteamentoBloqueado):
		return pkg.NewDomainErrorSimple("LOTEAMENTO_BLOQUEADO", "Loteamento bloqueado", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
