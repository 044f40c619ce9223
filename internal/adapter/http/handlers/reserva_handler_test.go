package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loteamentos_api/internal/adapter/http/handlers/mocks"
	"loteamentos_api/internal/domain/entities"
	"loteamentos_api/internal/usecase"
	"loteamentos_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReservaHandler_GetReservas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("translates the situacao filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.GET("/v1/reservas", h.GetReservas)

		uc.EXPECT().Search(gomock.Any(), gomock.Any(), 1, 20).DoAndReturn(
			func(_ context.Context, filtro interfaces.ReservaFiltro, _, _ int) ([]entities.Reserva, int, error) {
				esperado := []entities.ReservaSituacao{entities.ReservaSituacaoAtiva, entities.ReservaSituacaoConcluida}
				if len(filtro.Situacoes) != 2 || filtro.Situacoes[0] != esperado[0] || filtro.Situacoes[1] != esperado[1] {
					t.Fatalf("unexpected situacoes: %+v", filtro.Situacoes)
				}
				if filtro.VendedorID != "ven-1" || filtro.LoteamentoID != "lot-1" {
					t.Fatalf("unexpected filtro: %+v", filtro)
				}
				if filtro.DataInicial.IsZero() || filtro.DataFinal.IsZero() {
					t.Fatalf("expected date range, got %+v", filtro)
				}
				return []entities.Reserva{{ID: "res-1"}}, 1, nil
			},
		)

		url := "/v1/reservas?situacao=ATIVA_CONCLUIDA&vendedorId=ven-1&loteamentoId=lot-1&dataInicial=2025-01-01&dataFinal=2025-12-31&page=1&perpage=20"
		req := httptest.NewRequest(http.MethodGet, url, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Lista []entities.Reserva `json:"lista"`
			Total int                `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Total != 1 || len(body.Lista) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no situacao means no status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.GET("/v1/reservas", h.GetReservas)

		uc.EXPECT().Search(gomock.Any(), gomock.Any(), 0, 0).DoAndReturn(
			func(_ context.Context, filtro interfaces.ReservaFiltro, _, _ int) ([]entities.Reserva, int, error) {
				if len(filtro.Situacoes) != 0 {
					t.Fatalf("unexpected situacoes: %+v", filtro.Situacoes)
				}
				return nil, 0, nil
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/reservas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReservaHandler_SetReserva(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.POST("/v1/reservas", h.SetReserva)

		req := httptest.NewRequest(http.MethodPost, "/v1/reservas", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lot conflict maps to 409 naming the lot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.POST("/v1/reservas", h.SetReserva)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Reserva{},
			fmt.Errorf("%w: o lote JARDIM-Q001-L001 já está RESERVADO", usecase.ErrLoteIndisponivel))

		payload := `{"loteamento_id":"lot-1","chaves":["JARDIM-Q001-L001"],"cliente_id":"cli-1","vendedor_id":"ven-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reservas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("JARDIM-Q001-L001")) {
			t.Fatalf("conflict response must name the lot: %s", w.Body.String())
		}
	})

	t.Run("success returns 201 with the reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.POST("/v1/reservas", h.SetReserva)

		uc.EXPECT().Criar(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.CriarReservaCmd, _ entities.UsuarioResumo) (entities.Reserva, error) {
				if cmd.LoteamentoID != "lot-1" || len(cmd.Chaves) != 2 || cmd.ClienteID != "cli-1" || cmd.VendedorID != "ven-1" {
					t.Fatalf("unexpected cmd: %+v", cmd)
				}
				return entities.Reserva{ID: "res-1", CodigoReserva: "RES-000001", Situacao: entities.ReservaSituacaoAtiva}, nil
			},
		)

		payload := `{"loteamento_id":"lot-1","chaves":["JARDIM-Q001-L001","JARDIM-Q001-L002"],"cliente_id":"cli-1","vendedor_id":"ven-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/reservas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body entities.Reserva
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.CodigoReserva != "RES-000001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReservaHandler_UpdateReserva(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIReservaUseCase) *gin.Engine {
		h := NewReservaHandler(uc)
		r := gin.New()
		r.PUT("/v1/reservas", h.UpdateReserva)
		return r
	}

	t.Run("unknown operacao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPut, "/v1/reservas", bytes.NewBufferString(`{"operacao":"algo-inexistente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cancelar-reserva", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Cancelar(gomock.Any(), "res-1", gomock.Any()).Return(entities.Reserva{ID: "res-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/reservas", bytes.NewBufferString(`{"operacao":"cancelar-reserva","reserva_id":"res-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancelar twice maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Cancelar(gomock.Any(), "res-1", gomock.Any()).Return(entities.Reserva{}, usecase.ErrReservaJaCancelada)

		req := httptest.NewRequest(http.MethodPut, "/v1/reservas", bytes.NewBufferString(`{"operacao":"cancelar-reserva","reserva_id":"res-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("alterar-vendedor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AlterarVendedor(gomock.Any(), "res-1", "ven-2", gomock.Any()).Return(entities.Reserva{ID: "res-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/reservas", bytes.NewBufferString(`{"operacao":"alterar-vendedor","reserva_id":"res-1","novo_vendedor":"ven-2"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("alterar-lote-situacao", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AlterarSituacaoLote(gomock.Any(), "res-1", "JARDIM-Q001-L001", entities.LoteSituacaoVendido, gomock.Any()).
			Return(entities.Reserva{ID: "res-1", Situacao: entities.ReservaSituacaoConcluida}, nil)

		payload := `{"operacao":"alterar-lote-situacao","reserva_id":"res-1","chave":"JARDIM-Q001-L001","nova_situacao":"VENDIDO"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/reservas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("lot outside the reservation maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().AlterarSituacaoLote(gomock.Any(), "res-1", "OUTRO-Q001-L001", entities.LoteSituacaoVendido, gomock.Any()).
			Return(entities.Reserva{}, usecase.ErrLoteForaDaReserva)

		payload := `{"operacao":"alterar-lote-situacao","reserva_id":"res-1","chave":"OUTRO-Q001-L001","nova_situacao":"VENDIDO"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/reservas", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestReservaHandler_GetReserva(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.GET("/v1/reserva", h.GetReserva)

		uc.EXPECT().GetByID(gomock.Any(), "res-x").Return(usecase.ReservaDetalhe{}, usecase.ErrReservaNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/reserva?id=res-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.GET("/v1/reserva", h.GetReserva)

		uc.EXPECT().GetByID(gomock.Any(), "res-1").Return(usecase.ReservaDetalhe{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/reserva?id=res-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReservaHandler_FichaReserva(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns an inline pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservaUseCase(ctrl)
		h := NewReservaHandler(uc)

		r := gin.New()
		r.GET("/v1/reservas/ficha", h.FichaReserva)

		detalhe := usecase.ReservaDetalhe{Reserva: entities.Reserva{
			ID:            "res-1",
			CodigoReserva: "RES-000007",
			DataReserva:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			Cliente:       entities.ClienteResumo{Nome: "Cliente"},
			Vendedor:      entities.UsuarioResumo{Nome: "Vendedor"},
			Lotes:         []entities.ReservaLote{{Quadra: "001", Lote: "001", ValorTotal: 50000}},
			Situacao:      entities.ReservaSituacaoAtiva,
		}}
		uc.EXPECT().GetByID(gomock.Any(), "res-1").Return(detalhe, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/reservas/ficha?id=res-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != "inline; filename=RES-000007.pdf" {
			t.Fatalf("unexpected disposition: %s", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("body is not a pdf")
		}
	})
}
