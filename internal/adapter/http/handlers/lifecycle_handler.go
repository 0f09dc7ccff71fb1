package handlers

import (
	"net/http"

	"engenharia_os/internal/adapter/http/dto/request"
	"engenharia_os/internal/adapter/http/dto/response"
	"engenharia_os/internal/domain/entities"
	"engenharia_os/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationFeed hands out the pending toasts of a session.
type NotificationFeed interface {
	Drain(sessionID string) []entities.Notification
}

// LifecycleHandler exposes edit sessions plus the planning and replanning
// flows of the OS lifecycle.
type LifecycleHandler struct {
	usecase    usecase.IServiceOrderLifecycleUseCase
	feed       NotificationFeed
	hourlyRate float64
}

func NewLifecycleHandler(uc usecase.IServiceOrderLifecycleUseCase, feed NotificationFeed, hourlyRate float64) *LifecycleHandler {
	return &LifecycleHandler{usecase: uc, feed: feed, hourlyRate: hourlyRate}
}

// OpenSession godoc
// @Summary      Open an edit session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  response.EditSessionResponse
// @Router       /sessions [post]
func (h *LifecycleHandler) OpenSession(c *gin.Context) {
	s, err := h.usecase.OpenSession(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEditSession(s))
}

// GetSession godoc
// @Summary      Get an edit session and its pending form
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {object}  response.EditSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [get]
func (h *LifecycleHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEditSession(s))
}

// CloseSession godoc
// @Summary      Close an edit session, discarding any pending edit
// @Tags         sessions
// @Param        session_id  path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{session_id} [delete]
func (h *LifecycleHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.CloseSession(c.Request.Context(), c.Param("session_id")); err != nil {
		h.abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DrainNotifications godoc
// @Summary      Pop the pending notifications of a session
// @Tags         sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {array}   response.NotificationResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/notifications [get]
func (h *LifecycleHandler) DrainNotifications(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(h.feed.Drain(s.ID)))
}

// BeginPlanning godoc
// @Summary      Load an OS em planejamento into the session
// @Tags         planning
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Param        os_id       path      string  true  "OS id"
// @Success      200         {object}  response.EditSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/planning/{os_id} [post]
func (h *LifecycleHandler) BeginPlanning(c *gin.Context) {
	s, err := h.usecase.BeginPlanning(c.Request.Context(), c.Param("session_id"), c.Param("os_id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEditSession(s))
}

// UpdatePlanningFields godoc
// @Summary      Replace the pending planning values
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                         true  "Session id"
// @Param        body        body      request.PlanningFieldsRequest  true  "Planning values"
// @Success      200         {object}  response.EditSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/planning [put]
func (h *LifecycleHandler) UpdatePlanningFields(c *gin.Context) {
	var payload request.PlanningFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	fields, err := payload.ToCandidate()
	if err != nil {
		h.abort(c, err)
		return
	}

	s, err := h.usecase.UpdatePlanningFields(c.Request.Context(), c.Param("session_id"), fields)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEditSession(s))
}

// CancelPlanning godoc
// @Summary      Discard the pending planning values
// @Tags         planning
// @Param        session_id  path  string  true  "Session id"
// @Success      204
// @Router       /sessions/{session_id}/planning [delete]
func (h *LifecycleHandler) CancelPlanning(c *gin.Context) {
	if err := h.usecase.CancelPlanning(c.Request.Context(), c.Param("session_id")); err != nil {
		h.abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FinalizePlanning godoc
// @Summary      Validate, save and move the OS to aguardando-aceite
// @Tags         planning
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Param        os_id       path      string  true  "OS id"
// @Success      200         {object}  response.LifecycleResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/planning/{os_id}/finalize [post]
func (h *LifecycleHandler) FinalizePlanning(c *gin.Context) {
	res, err := h.usecase.FinalizePlanning(c.Request.Context(), c.Param("session_id"), c.Param("os_id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLifecycleResult(res.Order, res.EstimatedCost, h.hourlyRate))
}

// BeginReplanning godoc
// @Summary      Load an OS em execução into the session
// @Tags         replanning
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Param        os_id       path      string  true  "OS id"
// @Success      200         {object}  response.EditSessionResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/replanning/{os_id} [post]
func (h *LifecycleHandler) BeginReplanning(c *gin.Context) {
	s, err := h.usecase.BeginReplanning(c.Request.Context(), c.Param("session_id"), c.Param("os_id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEditSession(s))
}

// UpdateReplanningFields godoc
// @Summary      Replace the pending replanning values
// @Tags         replanning
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                           true  "Session id"
// @Param        body        body      request.ReplanningFieldsRequest  true  "Replanning values"
// @Success      200         {object}  response.EditSessionResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/replanning [put]
func (h *LifecycleHandler) UpdateReplanningFields(c *gin.Context) {
	var payload request.ReplanningFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	fields, err := payload.ToCandidate()
	if err != nil {
		h.abort(c, err)
		return
	}

	s, err := h.usecase.UpdateReplanningFields(c.Request.Context(), c.Param("session_id"), fields)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEditSession(s))
}

// CancelReplanning godoc
// @Summary      Discard the pending replanning values
// @Tags         replanning
// @Param        session_id  path  string  true  "Session id"
// @Success      204
// @Router       /sessions/{session_id}/replanning [delete]
func (h *LifecycleHandler) CancelReplanning(c *gin.Context) {
	if err := h.usecase.CancelReplanning(c.Request.Context(), c.Param("session_id")); err != nil {
		h.abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitReplanning godoc
// @Summary      Validate and save a replanning
// @Tags         replanning
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Param        os_id       path      string  true  "OS id"
// @Success      200         {object}  response.LifecycleResponse
// @Failure      409         {object}  pkg.HTTPError
// @Failure      422         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /sessions/{session_id}/replanning/{os_id}/submit [post]
func (h *LifecycleHandler) SubmitReplanning(c *gin.Context) {
	res, err := h.usecase.SubmitReplanning(c.Request.Context(), c.Param("session_id"), c.Param("os_id"))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLifecycleResult(res.Order, res.EstimatedCost, h.hourlyRate))
}

func (h *LifecycleHandler) abort(c *gin.Context, err error) {
	appErr := mapLifecycleError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
