package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Hub fans feed events out to websocket subscribers. With Redis configured,
// events are also published across instances via pub/sub so every node's
// subscribers see posts published anywhere.
type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	Channel string
	Send    chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(channel string) *Client {
	client := &Client{
		Channel: channel,
		Send:    make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[channel] == nil {
		h.clients[channel] = map[*Client]struct{}{}
	}
	h.clients[channel][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if channelClients, ok := h.clients[client.Channel]; ok {
		delete(channelClients, client)
		if len(channelClients) == 0 {
			delete(h.clients, client.Channel)
		}
	}
	close(client.Send)
}

func (h *Hub) Broadcast(channel string, payload []byte) {
	h.mu.RLock()
	clients := h.clients[channel]
	h.mu.RUnlock()

	for client := range clients {
		select {
		case client.Send <- payload:
		default:
		}
	}

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(channel), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "feed:*:events")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		channel := channelFromRedis(msg.Channel)
		h.mu.RLock()
		clients := h.clients[channel]
		h.mu.RUnlock()
		for client := range clients {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
	}
}

func redisChannel(channel string) string {
	return "feed:" + channel + ":events"
}

func channelFromRedis(ch string) string {
	// feed:{channel}:events
	const prefix = "feed:"
	const suffix = ":events"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
