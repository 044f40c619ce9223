package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loteamentos_api/internal/adapter/http/handlers/mocks"
	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestFormaPagamentoHandler_GetFormasPagamentoDisponiveis(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters out inactive methods", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormaPagamentoUseCase(ctrl)
		h := NewFormaPagamentoHandler(uc)

		r := gin.New()
		r.GET("/v1/formas-pagamento/disponiveis", h.GetFormasPagamentoDisponiveis)

		uc.EXPECT().List(gomock.Any()).Return([]entities.FormaPagamento{
			{ID: "fp-1", Nome: "À vista", Status: entities.FormaPagamentoStatusAtivo},
			{ID: "fp-2", Nome: "Antigo", Status: entities.FormaPagamentoStatusBloqueado},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/formas-pagamento/disponiveis", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []entities.FormaPagamento
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0].ID != "fp-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestFormaPagamentoHandler_AddFormaPagamento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payload with id dispatches to Atualizar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormaPagamentoUseCase(ctrl)
		h := NewFormaPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/formas-pagamento", h.AddFormaPagamento)

		uc.EXPECT().Atualizar(gomock.Any(), gomock.AssignableToTypeOf(entities.FormaPagamento{})).
			Return(entities.FormaPagamento{ID: "fp-1", Nome: "Parcelado 12x"}, nil)

		payload := `{"id":"fp-1","nome":"Parcelado 12x","max_parcelas":12}`
		req := httptest.NewRequest(http.MethodPost, "/v1/formas-pagamento", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid payload maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFormaPagamentoUseCase(ctrl)
		h := NewFormaPagamentoHandler(uc)

		r := gin.New()
		r.POST("/v1/formas-pagamento", h.AddFormaPagamento)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any()).Return(entities.FormaPagamento{}, usecase.ErrFormaPagamentoInvalida)

		req := httptest.NewRequest(http.MethodPost, "/v1/formas-pagamento", bytes.NewBufferString(`{"nome":""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
