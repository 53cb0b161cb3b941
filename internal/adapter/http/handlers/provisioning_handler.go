package handlers

import (
	"io"
	"net/http"
	"strings"

	request "github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/dto/request"
	response "github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/dto/response"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const stepsEvent = "steps"

// ProvisioningHandler serves step lists, accepts provisioning events from the
// platform and streams merged step lists to browsers.
type ProvisioningHandler struct {
	reconciler usecase.IProvisioningReconciler
	bus        interfaces.IEventBus
}

func NewProvisioningHandler(reconciler usecase.IProvisioningReconciler, bus interfaces.IEventBus) *ProvisioningHandler {
	return &ProvisioningHandler{reconciler: reconciler, bus: bus}
}

// ListSteps godoc
// @Summary      Merged provisioning steps of an entity
// @Tags         provisioning
// @Produce      json
// @Param        kind  path      string  true  "projects, tenants, users or object-storage"
// @Param        id    path      string  true  "Entity id"
// @Success      200   {object}  response.StepsResponse
// @Router       /provisioning/{kind}/{id}/steps [get]
func (h *ProvisioningHandler) ListSteps(c *gin.Context) {
	ref, ok := entityRef(c)
	if !ok {
		return
	}
	steps, err := h.reconciler.Steps(c.Request.Context(), ref)
	if err != nil {
		abortWithError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSteps(ref, steps, usecase.StepsComplete(steps)))
}

// PublishEvent godoc
// @Summary      Publish a provisioning update for an entity
// @Tags         provisioning
// @Accept       json
// @Param        kind  path  string                            true  "projects, tenants, users or object-storage"
// @Param        id    path  string                            true  "Entity id"
// @Param        body  body  request.ProvisioningEventRequest  true  "Step update"
// @Success      202
// @Failure      503   {object}  pkg.HTTPError
// @Router       /provisioning/{kind}/{id}/events [post]
func (h *ProvisioningHandler) PublishEvent(c *gin.Context) {
	ref, ok := entityRef(c)
	if !ok {
		return
	}
	var payload request.ProvisioningEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	if h.bus == nil {
		abortWithError(c, mapProvisioningError(usecase.ErrEventBusMissing))
		return
	}
	if err := h.bus.Publish(c.Request.Context(), ref.Channel(), payload.ToEvent()); err != nil {
		logging.L().Error("[provisioning][handler] publish failed", zap.String("channel", ref.Channel()), zap.Error(err))
		abortWithError(c, mapProvisioningError(err))
		return
	}
	c.Status(http.StatusAccepted)
}

// StreamSteps godoc
// @Summary      Server-sent stream of step lists
// @Description  Sends the current list first, then one "steps" event per change until the client disconnects.
// @Tags         provisioning
// @Produce      text/event-stream
// @Param        kind  path  string  true  "projects, tenants, users or object-storage"
// @Param        id    path  string  true  "Entity id"
// @Success      200
// @Router       /provisioning/{kind}/{id}/stream [get]
func (h *ProvisioningHandler) StreamSteps(c *gin.Context) {
	ref, ok := entityRef(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	if err := h.reconciler.Track(ctx, ref); err != nil {
		abortWithError(c, mapProvisioningError(err))
		return
	}
	defer h.reconciler.Untrack(ref)

	updates, cancel := h.reconciler.Watch(ref)
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	if steps, err := h.reconciler.Steps(ctx, ref); err == nil {
		c.SSEvent(stepsEvent, response.FromSteps(ref, steps, usecase.StepsComplete(steps)))
		c.Writer.Flush()
	}

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case steps, open := <-updates:
			if !open {
				return false
			}
			c.SSEvent(stepsEvent, response.FromSteps(ref, steps, usecase.StepsComplete(steps)))
			return true
		}
	})
}

func entityRef(c *gin.Context) (entities.EntityRef, bool) {
	kind, ok := entities.ParseEntityKind(c.Param("kind"))
	ref := entities.EntityRef{Kind: kind, ID: strings.TrimSpace(c.Param("id"))}
	if !ok || !ref.Valid() {
		abortWithError(c, errInvalidEntity)
		return entities.EntityRef{}, false
	}
	return ref, true
}
