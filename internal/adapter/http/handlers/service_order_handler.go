package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"engenharia_os/internal/adapter/http/dto/response"
	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase"
	"engenharia_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ServiceOrderHandler serves the read side: stage queues, one OS and the
// spreadsheet export.
type ServiceOrderHandler struct {
	usecase    usecase.IServiceOrderLifecycleUseCase
	exporter   interfaces.IServiceOrderExporter
	hourlyRate float64
	log        *logrus.Entry
}

func NewServiceOrderHandler(uc usecase.IServiceOrderLifecycleUseCase, exporter interfaces.IServiceOrderExporter, hourlyRate float64, logger *logrus.Logger) *ServiceOrderHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ServiceOrderHandler{
		usecase:    uc,
		exporter:   exporter,
		hourlyRate: hourlyRate,
		log:        logger.WithField("component", "http.service_orders"),
	}
}

// ListServiceOrders godoc
// @Summary      List service orders of a stage
// @Tags         service-orders
// @Produce      json
// @Param        status  query     string  true  "em-planejamento | aguardando-aceite | em-execucao | concluida | cancelada"
// @Success      200     {array}   response.ServiceOrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.ListByStatus(c.Request.Context(), statusQuery(c))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders, h.hourlyRate))
}

// GetServiceOrder godoc
// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Param        id   path      string  true  "OS id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetServiceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order, h.hourlyRate))
}

// ExportServiceOrders godoc
// @Summary      Export a stage queue as a spreadsheet
// @Tags         service-orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  true  "OS status"
// @Success      200
// @Failure      400     {object}  pkg.HTTPError
// @Router       /exports/service-orders [get]
func (h *ServiceOrderHandler) ExportServiceOrders(c *gin.Context) {
	status := statusQuery(c)
	orders, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Export(&buf, orders); err != nil {
		h.log.WithError(err).WithField("status", status).Error("export failed")
		appErr := mapLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("ordens-%s-%s.%s", status, time.Now().UTC().Format("20060102"), h.exporter.FileExtension())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, h.exporter.ContentType(), buf.Bytes())
}

func statusQuery(c *gin.Context) entities.OSStatus {
	return entities.OSStatus(strings.TrimSpace(c.Query("status")))
}
