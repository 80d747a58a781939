package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type FeedClient struct {
	Conn     *websocket.Conn
	Message  chan *FeedMessage
	ID       string
	done     chan struct{}
	mu       sync.Mutex
	isClosed bool
}

func (cl *FeedClient) keepAlive() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cl.done:
			return
		case <-ticker.C:
			cl.mu.Lock()
			if cl.isClosed {
				cl.mu.Unlock()
				return
			}
			err := cl.Conn.WriteMessage(websocket.PingMessage, nil)
			cl.mu.Unlock()

			if err != nil {
				log.Printf("ping error for feed client %s: %v", cl.ID, err)
				return
			}
		}
	}
}

func (cl *FeedClient) writeMessages() {
	defer func() {
		cl.mu.Lock()
		cl.isClosed = true
		cl.Conn.Close()
		cl.mu.Unlock()
	}()

	for {
		select {
		case <-cl.done:
			return
		case msg, ok := <-cl.Message:
			if !ok {
				return
			}

			cl.mu.Lock()
			if cl.isClosed {
				cl.mu.Unlock()
				return
			}
			err := cl.Conn.WriteJSON(msg)
			cl.mu.Unlock()

			if err != nil {
				log.Printf("error sending to feed client %s: %v", cl.ID, err)
				return
			}
		}
	}
}

// readLoop discards anything the client sends; the feed is one-way. Its job
// is to notice the close handshake and unregister.
func (cl *FeedClient) readLoop(hub *Hub) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("recovered from panic in feed readLoop: %v", r)
		}

		if cl.done != nil {
			close(cl.done)
		}

		hub.Unregister <- cl
		log.Printf("feed client %s disconnected", cl.ID)
	}()

	cl.Conn.SetReadLimit(4 * 1024)

	for {
		if _, _, err := cl.Conn.ReadMessage(); err != nil {
			if closeErr, ok := err.(*websocket.CloseError); ok {
				if closeErr.Code == websocket.CloseNormalClosure ||
					closeErr.Code == websocket.CloseGoingAway ||
					closeErr.Code == websocket.CloseNoStatusReceived {
					break
				}
			}
			log.Printf("error reading from feed client %s: %v", cl.ID, err)
			break
		}
	}
}
