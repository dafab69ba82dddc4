package websocket

import (
	"log"
	"sync"
	"sync/atomic"
)

// Hub tracks live dashboard subscribers. Each client subscribes to one
// tenant topic and receives that tenant's snapshot pushes.
type Hub struct {
	Clients map[*Client]bool

	// topic -> subscribed clients
	TopicClients map[string][]*Client

	Register   chan *Client
	Unregister chan *Client

	mu sync.RWMutex

	stats struct {
		totalConnections int64
		messageCount     int64
	}
}

func NewHub() *Hub {
	return &Hub{
		Register:     make(chan *Client),
		Unregister:   make(chan *Client),
		Clients:      make(map[*Client]bool),
		TopicClients: make(map[string][]*Client),
	}
}

// Run is the hub's event loop. Start it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.TopicClients[client.Topic] = append(h.TopicClients[client.Topic], client)
			subscribers := len(h.TopicClients[client.Topic])
			h.mu.Unlock()

			atomic.AddInt64(&h.stats.totalConnections, 1)
			log.Printf("dashboard feed subscriber joined: topic=%s, subscribers=%d", client.Topic, subscribers)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.removeFromTopicLocked(client)
			}
			h.mu.Unlock()
			log.Printf("dashboard feed subscriber left: topic=%s", client.Topic)
		}
	}
}

// BroadcastToTopic pushes a snapshot to every subscriber of a topic.
// Slow clients with full buffers are dropped rather than blocking the
// feed loop.
func (h *Hub) BroadcastToTopic(topic string, message []byte) int {
	h.mu.RLock()
	clients := make([]*Client, len(h.TopicClients[topic]))
	copy(clients, h.TopicClients[topic])
	h.mu.RUnlock()

	sent := 0
	for _, client := range clients {
		select {
		case client.Send <- message:
			sent++
		default:
			go h.dropSlowClient(client)
		}
	}

	atomic.AddInt64(&h.stats.messageCount, int64(sent))
	return sent
}

// Topics returns the topics with at least one subscriber.
func (h *Hub) Topics() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	topics := make([]string, 0, len(h.TopicClients))
	for topic, clients := range h.TopicClients {
		if len(clients) > 0 {
			topics = append(topics, topic)
		}
	}
	return topics
}

func (h *Hub) dropSlowClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.Clients[client]; !ok {
		return
	}
	log.Printf("dropping slow dashboard feed subscriber: topic=%s", client.Topic)
	delete(h.Clients, client)
	close(client.Send)
	h.removeFromTopicLocked(client)
}

func (h *Hub) removeFromTopicLocked(client *Client) {
	clients := h.TopicClients[client.Topic]
	for i, c := range clients {
		if c == client {
			h.TopicClients[client.Topic] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.TopicClients[client.Topic]) == 0 {
		delete(h.TopicClients, client.Topic)
	}
}

// GetStats feeds the health endpoint.
func (h *Hub) GetStats() map[string]interface{} {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return map[string]interface{}{
		"connections":       len(h.Clients),
		"topics":            len(h.TopicClients),
		"total_connections": atomic.LoadInt64(&h.stats.totalConnections),
		"messages_pushed":   atomic.LoadInt64(&h.stats.messageCount),
	}
}
