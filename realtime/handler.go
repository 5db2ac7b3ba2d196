package realtime

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Upgrade rejects plain HTTP requests to the websocket endpoint.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler serves the ping demo: each received text message is broadcast to
// every connected client as "user sent: <message>".
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			hub.Broadcast(fmt.Sprintf("user sent: %s", msg))
		}
	})
}
