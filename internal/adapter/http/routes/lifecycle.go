package routes

import (
	"engenharia_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathExports       = "/exports"
	PathSessions      = "/sessions"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	serviceOrders := rg.Group(PathServiceOrders)
	{
		serviceOrders.GET("", h.ListServiceOrders)
		serviceOrders.GET("/:id", h.GetServiceOrder)
	}

	exports := rg.Group(PathExports)
	{
		exports.GET("/service-orders", h.ExportServiceOrders)
	}
}

func addLifecycleRoutes(rg *gin.RouterGroup, h *handlers.LifecycleHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.OpenSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.DELETE("/:session_id", h.CloseSession)
		sessions.GET("/:session_id/notifications", h.DrainNotifications)

		// OS em planejamento
		sessions.POST("/:session_id/planning/:os_id", h.BeginPlanning)
		sessions.PUT("/:session_id/planning", h.UpdatePlanningFields)
		sessions.DELETE("/:session_id/planning", h.CancelPlanning)
		sessions.POST("/:session_id/planning/:os_id/finalize", h.FinalizePlanning)

		// OS em execução (replanejamento)
		sessions.POST("/:session_id/replanning/:os_id", h.BeginReplanning)
		sessions.PUT("/:session_id/replanning", h.UpdateReplanningFields)
		sessions.DELETE("/:session_id/replanning", h.CancelReplanning)
		sessions.POST("/:session_id/replanning/:os_id/submit", h.SubmitReplanning)
	}
}
