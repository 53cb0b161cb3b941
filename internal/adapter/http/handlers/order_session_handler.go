package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/dto/request"
	response "github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/dto/response"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderSessionHandler exposes the order wizard over HTTP. Every mutating route
// answers with the full session snapshot.
type OrderSessionHandler struct {
	usecase usecase.IOrderSessionUseCase
}

func NewOrderSessionHandler(uc usecase.IOrderSessionUseCase) *OrderSessionHandler {
	return &OrderSessionHandler{usecase: uc}
}

// CreateSession godoc
// @Summary      Open an order session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateSessionRequest  true  "Session settings"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *OrderSessionHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		logging.L().Warn("[order][handler] create failed", zap.String("context", payload.Context), zap.Error(err))
		abortWithError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// GetSession godoc
// @Summary      Session snapshot
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *OrderSessionHandler) GetSession(c *gin.Context) {
	h.respond(c, "get", func(id string) (usecase.SessionView, error) {
		return h.usecase.Get(c.Request.Context(), id)
	})
}

// DeleteSession godoc
// @Summary      Close a session and stop tracking its accounts
// @Tags         sessions
// @Param        id   path  string  true  "Session id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [delete]
func (h *OrderSessionHandler) DeleteSession(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateSettings godoc
// @Summary      Change mode, billing country, currency or tenant
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Session id"
// @Param        body  body      request.UpdateSettingsRequest  true  "Fields to change"
// @Success      200   {object}  response.SessionResponse
// @Router       /sessions/{id}/settings [patch]
func (h *OrderSessionHandler) UpdateSettings(c *gin.Context) {
	var payload request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	h.respond(c, "settings", func(id string) (usecase.SessionView, error) {
		return h.usecase.UpdateSettings(c.Request.Context(), id, payload.ToSettings())
	})
}

// AddProfile godoc
// @Summary      Append a service profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      201  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/profiles [post]
func (h *OrderSessionHandler) AddProfile(c *gin.Context) {
	view, err := h.usecase.AddProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionView(view))
}

// UpdateProfile godoc
// @Summary      Edit one service profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id          path      string                        true  "Session id"
// @Param        profile_id  path      string                        true  "Profile id"
// @Param        body        body      request.UpdateProfileRequest  true  "Fields to change"
// @Success      200         {object}  response.SessionResponse
// @Router       /sessions/{id}/profiles/{profile_id} [patch]
func (h *OrderSessionHandler) UpdateProfile(c *gin.Context) {
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	h.respond(c, "update-profile", func(id string) (usecase.SessionView, error) {
		return h.usecase.UpdateProfile(c.Request.Context(), id, c.Param("profile_id"), payload.ToPatch())
	})
}

// RemoveProfile godoc
// @Summary      Remove one service profile
// @Tags         profiles
// @Produce      json
// @Param        id          path      string  true  "Session id"
// @Param        profile_id  path      string  true  "Profile id"
// @Success      200         {object}  response.SessionResponse
// @Router       /sessions/{id}/profiles/{profile_id} [delete]
func (h *OrderSessionHandler) RemoveProfile(c *gin.Context) {
	h.respond(c, "remove-profile", func(id string) (usecase.SessionView, error) {
		return h.usecase.RemoveProfile(c.Request.Context(), id, c.Param("profile_id"))
	})
}

// Next godoc
// @Summary      Validate the current stage and advance
// @Description  Leaving services in standard mode submits the order. Leaving review in fast-track mode submits it with fast_track=true.
// @Tags         workflow
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /sessions/{id}/next [post]
func (h *OrderSessionHandler) Next(c *gin.Context) {
	h.respond(c, "next", func(id string) (usecase.SessionView, error) {
		return h.usecase.Next(c.Request.Context(), id)
	})
}

// Back godoc
// @Summary      Go one stage back
// @Tags         workflow
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{id}/back [post]
func (h *OrderSessionHandler) Back(c *gin.Context) {
	h.respond(c, "back", func(id string) (usecase.SessionView, error) {
		return h.usecase.Back(c.Request.Context(), id)
	})
}

// GoToStep godoc
// @Summary      Jump to an earlier stage
// @Tags         workflow
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Session id"
// @Param        body  body      request.GoToStepRequest  true  "Target step index"
// @Success      200   {object}  response.SessionResponse
// @Router       /sessions/{id}/goto [post]
func (h *OrderSessionHandler) GoToStep(c *gin.Context) {
	var payload request.GoToStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	h.respond(c, "goto", func(id string) (usecase.SessionView, error) {
		return h.usecase.GoToStep(c.Request.Context(), id, *payload.Step)
	})
}

// Reset godoc
// @Summary      Return to the first stage
// @Tags         workflow
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Router       /sessions/{id}/reset [post]
func (h *OrderSessionHandler) Reset(c *gin.Context) {
	h.respond(c, "reset", func(id string) (usecase.SessionView, error) {
		return h.usecase.Reset(c.Request.Context(), id)
	})
}

// SelectGateway godoc
// @Summary      Choose a payment gateway option
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Session id"
// @Param        body  body      request.SelectGatewayRequest  true  "Option reference"
// @Success      200   {object}  response.SessionResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /sessions/{id}/gateway [put]
func (h *OrderSessionHandler) SelectGateway(c *gin.Context) {
	var payload request.SelectGatewayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidRequest)
		return
	}
	h.respond(c, "select-gateway", func(id string) (usecase.SessionView, error) {
		return h.usecase.SelectGateway(c.Request.Context(), id, payload.Reference)
	})
}

// RefreshPayment godoc
// @Summary      Re-check the payment status at the selected gateway
// @Tags         payment
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/payment/refresh [post]
func (h *OrderSessionHandler) RefreshPayment(c *gin.Context) {
	h.respond(c, "refresh-payment", func(id string) (usecase.SessionView, error) {
		return h.usecase.RefreshPayment(c.Request.Context(), id)
	})
}

// RevealCredential godoc
// @Summary      Show the access credential of one profile, once
// @Tags         credentials
// @Produce      json
// @Param        id     path      string  true  "Session id"
// @Param        index  path      int     true  "Profile index"
// @Success      200    {object}  response.CredentialResponse
// @Failure      410    {object}  pkg.HTTPError
// @Failure      423    {object}  pkg.HTTPError
// @Router       /sessions/{id}/credentials/{index}/reveal [post]
func (h *OrderSessionHandler) RevealCredential(c *gin.Context) {
	index, ok := profileIndex(c)
	if !ok {
		return
	}
	cred, err := h.usecase.RevealCredential(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, response.FromCredential(index, cred))
}

// AcknowledgeCredential godoc
// @Summary      Confirm a shown credential was stored
// @Tags         credentials
// @Produce      json
// @Param        id     path      string  true  "Session id"
// @Param        index  path      int     true  "Profile index"
// @Success      200    {object}  response.SessionResponse
// @Router       /sessions/{id}/credentials/{index}/acknowledge [post]
func (h *OrderSessionHandler) AcknowledgeCredential(c *gin.Context) {
	index, ok := profileIndex(c)
	if !ok {
		return
	}
	h.respond(c, "acknowledge-credential", func(id string) (usecase.SessionView, error) {
		return h.usecase.AcknowledgeCredential(c.Request.Context(), id, index)
	})
}

// ListSummaries godoc
// @Summary      Orders created by a session
// @Tags         sessions
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {array}   response.SummaryResponse
// @Router       /sessions/{id}/summaries [get]
func (h *OrderSessionHandler) ListSummaries(c *gin.Context) {
	items, err := h.usecase.ListSummaries(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSummaries(items))
}

// ListRegions godoc
// @Summary      Regions available to an order context
// @Tags         catalog
// @Produce      json
// @Param        context  path      string  true  "admin, tenant or client"
// @Success      200      {array}   entities.Region
// @Router       /contexts/{context}/regions [get]
func (h *OrderSessionHandler) ListRegions(c *gin.Context) {
	regions, err := h.usecase.ListRegions(c.Request.Context(), orderContext(c))
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	if regions == nil {
		regions = []entities.Region{}
	}
	c.JSON(http.StatusOK, regions)
}

// ListCountries godoc
// @Summary      Billing countries available to an order context
// @Tags         catalog
// @Produce      json
// @Param        context  path      string  true  "admin, tenant or client"
// @Success      200      {array}   entities.Country
// @Router       /contexts/{context}/countries [get]
func (h *OrderSessionHandler) ListCountries(c *gin.Context) {
	countries, err := h.usecase.ListCountries(c.Request.Context(), orderContext(c))
	if err != nil {
		abortWithError(c, mapSessionError(err))
		return
	}
	if countries == nil {
		countries = []entities.Country{}
	}
	c.JSON(http.StatusOK, countries)
}

// respond runs a session operation and renders its snapshot. Only 5xx failures
// are logged.
func (h *OrderSessionHandler) respond(c *gin.Context, action string, op func(id string) (usecase.SessionView, error)) {
	id := c.Param("id")
	view, err := op(id)
	if err != nil {
		appErr := mapSessionError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logging.L().Error("[order][handler] "+action+" failed", zap.String("session_id", id), zap.Error(err))
		}
		abortWithError(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionView(view))
}

func profileIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		abortWithError(c, errInvalidRequest)
		return 0, false
	}
	return index, true
}

func orderContext(c *gin.Context) entities.OrderContext {
	return entities.OrderContext(strings.ToLower(strings.TrimSpace(c.Param("context"))))
}
