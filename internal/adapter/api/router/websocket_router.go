package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
)

// SetupWebSocketRouter mounts the push socket. Auth happens inside the
// handler via the token query parameter.
func SetupWebSocketRouter(api *echo.Group, wsHandler *handler.WebSocketHandler) {
	api.GET("/messages/ws", wsHandler.HandleWebSocket)
}
