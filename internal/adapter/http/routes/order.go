package routes

import (
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions     = "/sessions"
	PathContexts     = "/contexts"
	PathProvisioning = "/provisioning"
)

func addOrderRoutes(rg *gin.RouterGroup, sessionHandler *handlers.OrderSessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.CreateSession)
		sessions.GET("/:id", sessionHandler.GetSession)
		sessions.DELETE("/:id", sessionHandler.DeleteSession)
		sessions.PATCH("/:id/settings", sessionHandler.UpdateSettings)

		sessions.POST("/:id/profiles", sessionHandler.AddProfile)
		sessions.PATCH("/:id/profiles/:profile_id", sessionHandler.UpdateProfile)
		sessions.DELETE("/:id/profiles/:profile_id", sessionHandler.RemoveProfile)

		sessions.POST("/:id/next", sessionHandler.Next)
		sessions.POST("/:id/back", sessionHandler.Back)
		sessions.POST("/:id/goto", sessionHandler.GoToStep)
		sessions.POST("/:id/reset", sessionHandler.Reset)

		sessions.PUT("/:id/gateway", sessionHandler.SelectGateway)
		sessions.POST("/:id/payment/refresh", sessionHandler.RefreshPayment)

		sessions.POST("/:id/credentials/:index/reveal", sessionHandler.RevealCredential)
		sessions.POST("/:id/credentials/:index/acknowledge", sessionHandler.AcknowledgeCredential)

		sessions.GET("/:id/summaries", sessionHandler.ListSummaries)
	}

	contexts := rg.Group(PathContexts)
	{
		contexts.GET("/:context/regions", sessionHandler.ListRegions)
		contexts.GET("/:context/countries", sessionHandler.ListCountries)
	}
}

func addProvisioningRoutes(rg *gin.RouterGroup, provisioningHandler *handlers.ProvisioningHandler) {
	provisioning := rg.Group(PathProvisioning)
	{
		provisioning.GET("/:kind/:id/steps", provisioningHandler.ListSteps)
		provisioning.POST("/:kind/:id/events", provisioningHandler.PublishEvent)
		provisioning.GET("/:kind/:id/stream", provisioningHandler.StreamSteps)
	}
}
