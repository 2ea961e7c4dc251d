package realtime

import "github.com/gofiber/websocket/v2"

// TicketsHub fans ticket events out to every connected admin
// dashboard. All writes to a connection go through Run, so no
// per-connection locking is needed.
type TicketsHub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	Clients    map[*websocket.Conn]bool
}

func NewTicketsHub() *TicketsHub {
	return &TicketsHub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		Clients:    make(map[*websocket.Conn]bool),
	}
}

func (h *TicketsHub) Run() {
	for {
		select {
		case c := <-h.Register:
			h.Clients[c] = true
		case c := <-h.Unregister:
			delete(h.Clients, c)
			c.Close()
		case msg := <-h.Broadcast:
			for c := range h.Clients {
				c.WriteMessage(websocket.TextMessage, msg)
			}
		}
	}
}
