package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"engenharia_os/internal/adapter/http/handlers/mocks"
	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase"
	"engenharia_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

type failingExporter struct{}

func (failingExporter) ContentType() string   { return "text/plain" }
func (failingExporter) FileExtension() string { return "txt" }
func (failingExporter) Export(io.Writer, []entities.ServiceOrder) error {
	return errors.New("disk full")
}

type csvLikeExporter struct{}

func (csvLikeExporter) ContentType() string   { return "text/csv" }
func (csvLikeExporter) FileExtension() string { return "csv" }
func (csvLikeExporter) Export(w io.Writer, orders []entities.ServiceOrder) error {
	for _, o := range orders {
		if _, err := io.WriteString(w, o.ID+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newServiceOrderRouter(h *ServiceOrderHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/service-orders", h.ListServiceOrders)
	r.GET("/v1/service-orders/:id", h.GetServiceOrder)
	r.GET("/v1/exports/service-orders", h.ExportServiceOrders)
	return r
}

func TestServiceOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderLifecycleUseCase(ctrl)
		h := NewServiceOrderHandler(uc, csvLikeExporter{}, 95, quietLogger())

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OSStatus("bogus")).Return(nil, usecase.ErrInvalidStatus)

		w := doRequest(newServiceOrderRouter(h), http.MethodGet, "/v1/service-orders?status=bogus", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderLifecycleUseCase(ctrl)
		h := NewServiceOrderHandler(uc, csvLikeExporter{}, 95, quietLogger())

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OSStatusEmPlanejamento).
			Return([]entities.ServiceOrder{{ID: "os-1", Status: entities.OSStatusEmPlanejamento}}, nil)

		w := doRequest(newServiceOrderRouter(h), http.MethodGet, "/v1/service-orders?status=em-planejamento", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"os-1"`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderLifecycleUseCase(ctrl)
		h := NewServiceOrderHandler(uc, csvLikeExporter{}, 95, quietLogger())

		uc.EXPECT().GetServiceOrder(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, interfaces.ErrServiceOrderNotFound)

		w := doRequest(newServiceOrderRouter(h), http.MethodGet, "/v1/service-orders/os-x", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderLifecycleUseCase(ctrl)
		h := NewServiceOrderHandler(uc, csvLikeExporter{}, 95, quietLogger())

		uc.EXPECT().GetServiceOrder(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", HHPlanejado: 40}, nil)

		w := doRequest(newServiceOrderRouter(h), http.MethodGet, "/v1/service-orders/os-1", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"valor_estimado":3800`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderLifecycleUseCase(ctrl)
		h := NewServiceOrderHandler(uc, csvLikeExporter{}, 95, quietLogger())

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OSStatusEmExecucao).
			Return([]entities.ServiceOrder{{ID: "os-1"}, {ID: "os-2"}}, nil)

		w := doRequest(newServiceOrderRouter(h), http.MethodGet, "/v1/exports/service-orders?status=em-execucao", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "text/csv" {
			t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "ordens-em-execucao-") {
			t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
		}
		if w.Body.String() != "os-1\nos-2\n" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("exporter failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderLifecycleUseCase(ctrl)
		h := NewServiceOrderHandler(uc, failingExporter{}, 95, quietLogger())

		uc.EXPECT().ListByStatus(gomock.Any(), entities.OSStatusEmExecucao).Return(nil, nil)

		w := doRequest(newServiceOrderRouter(h), http.MethodGet, "/v1/exports/service-orders?status=em-execucao", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
