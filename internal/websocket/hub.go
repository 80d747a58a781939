// Package websocket streams recorder activity to dashboard clients. Events
// travel through Redis pub/sub so the api-server and ws-server can run as
// separate processes.
package websocket

type Hub struct {
	Clients    map[string]*FeedClient
	Register   chan *FeedClient
	Unregister chan *FeedClient
	Broadcast  chan *FeedMessage
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[string]*FeedClient),
		Register:   make(chan *FeedClient),
		Unregister: make(chan *FeedClient),
		Broadcast:  make(chan *FeedMessage),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client.ID] = client
			incConnections()

		case client := <-h.Unregister:
			if _, ok := h.Clients[client.ID]; ok {
				delete(h.Clients, client.ID)
				close(client.Message)
				decConnections()
			}

		case message := <-h.Broadcast:
			delivered := 0
			for _, client := range h.Clients {
				select {
				case client.Message <- message:
					delivered++
				default:
					// Slow consumer; drop it rather than block the feed.
					close(client.Message)
					delete(h.Clients, client.ID)
					decConnections()
				}
			}
			if delivered > 0 {
				addDelivered(delivered)
			}
		}
	}
}
