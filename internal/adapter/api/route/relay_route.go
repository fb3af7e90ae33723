package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/whop-relay/internal/adapter/api/controller"
	"github.com/hugohenrick/whop-relay/internal/domain/session"
	"github.com/hugohenrick/whop-relay/pkg/auth"
)

// SetupRelayRoutes configura as rotas do relay. Com jwtService nil, as rotas ficam abertas.
func SetupRelayRoutes(router *gin.RouterGroup, relayController *controller.RelayController, jwtService *auth.JWTService) {
	relayRouter := router.Group("")
	privileged := []gin.HandlerFunc{}

	if jwtService != nil {
		relayRouter.Use(auth.SessionMiddleware(jwtService))
		privileged = append(privileged, auth.RoleAuthMiddleware(string(session.RoleOwner), string(session.RoleAdmin)))
	}

	{
		relayRouter.POST("/send-message", relayController.SendMessage)
		relayRouter.GET("/list-messages", relayController.ListMessages)
		relayRouter.GET("/get-user", relayController.GetUser)

		// Notificação efêmera exige papel privilegiado quando há sessão
		relayRouter.POST("/send-websocket-message", append(privileged, relayController.SendWebsocketMessage)...)
	}
}
