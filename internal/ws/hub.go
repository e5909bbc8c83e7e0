package ws

import (
	"sync"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
)

// Hub tracks connected clients by user id and which users follow which
// battle. One connection per user: a reconnect replaces the old one.
type Hub struct {
	mu sync.RWMutex
	// clients maps user id -> active connection.
	clients map[string]*Client
	// battles maps battle id -> set of subscribed user ids.
	battles map[string]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		battles: make(map[string]map[string]struct{}),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	if old, ok := h.clients[c.userID]; ok && old != c {
		old.closeSend()
	}
	h.clients[c.userID] = c
	h.mu.Unlock()
	logging.Info("client connected", logging.Fields{constants.LogFieldUserID: c.userID})
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if h.clients[c.userID] == c {
		delete(h.clients, c.userID)
		c.closeSend()
	}
	h.mu.Unlock()
	logging.Info("client disconnected", logging.Fields{constants.LogFieldUserID: c.userID})
}

// Subscribe adds the user to a battle's broadcast set.
func (h *Hub) Subscribe(battleID, userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.battles[battleID]
	if !ok {
		set = make(map[string]struct{})
		h.battles[battleID] = set
	}
	set[userID] = struct{}{}
}

// CleanupBattle drops a finished battle's broadcast set.
func (h *Hub) CleanupBattle(battleID string) {
	h.mu.Lock()
	delete(h.battles, battleID)
	h.mu.Unlock()
}

// SendToUser delivers an envelope to one user if connected. Slow
// clients get dropped rather than blocking the sender.
func (h *Hub) SendToUser(userID string, e Envelope) {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	c.enqueue(encode(e))
}

// BroadcastBattle delivers an envelope to every user following the
// battle.
func (h *Hub) BroadcastBattle(battleID string, e Envelope) {
	h.mu.RLock()
	var targets []*Client
	for userID := range h.battles[battleID] {
		if c, ok := h.clients[userID]; ok {
			targets = append(targets, c)
		}
	}
	h.mu.RUnlock()

	frame := encode(e)
	for _, c := range targets {
		c.enqueue(frame)
	}
}
