package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/middleware"
	ws "picklrzone/internal/infrastructure/websocket"
	"picklrzone/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	authMiddleware *middleware.AuthMiddleware
	upgrader       gorillaws.Upgrader
}

// NewWebSocketHandler accepts upgrades only from the configured browser
// origins. Requests without an Origin header (non-browser clients) pass.
func NewWebSocketHandler(wsManager *ws.Manager, authMiddleware *middleware.AuthMiddleware, allowedOrigins []string) *WebSocketHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &WebSocketHandler{
		wsManager:      wsManager,
		authMiddleware: authMiddleware,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins["*"] || origins[origin]
			},
		},
	}
}

// HandleWebSocket authenticates with the token query parameter, since
// browsers cannot set headers on a websocket handshake.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	identity, err := h.authMiddleware.VerifyToken(c.Request().Context(), c.QueryParam("token"))
	if err != nil {
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the handshake error.
		logger.Warn("Websocket upgrade failed for %s: %v", identity.UID, err)
		return nil
	}

	client := ws.NewClient(identity.UID, conn)
	if !h.wsManager.Add(client) {
		conn.Close()
		return nil
	}

	go client.WritePump()
	go client.ReadPump(h.wsManager)

	return nil
}
