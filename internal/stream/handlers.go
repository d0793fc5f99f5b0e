package stream

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Get("/ws/:channel", websocket.New(func(c *websocket.Conn) {
		channel := c.Params("channel")
		client := hub.Register(channel)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}

		// Unregister closes Send, which releases the writer goroutine.
		hub.Unregister(client)
		<-done
	}))
}
