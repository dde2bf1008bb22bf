package ws_session

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/humanbelnik/moviepick/internal/model"
)

const (
	EventPreferencesSnapshot = "PREFERENCES_SNAPSHOT"
	EventPreferencesUpdated  = "PREFERENCES_UPDATED"
)

const sendBuffer = 16

type Event struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Payload   PreferencesDTO `json:"payload"`
	Timestamp int64          `json:"timestamp"`
}

type PreferencesDTO struct {
	Genres         []string `json:"genres"`
	DislikedMovies []string `json:"disliked_movies"`
}

type Client struct {
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID model.SessionID
}

func NewClient(hub *Hub, conn *websocket.Conn, session model.SessionID) *Client {
	return &Client{
		Hub:       hub,
		Conn:      conn,
		Send:      make(chan []byte, sendBuffer),
		SessionID: session,
	}
}

// Hub fans preference changes out to the websocket clients watching a session.
type Hub struct {
	mu sync.Mutex

	sessions map[model.SessionID]map[*Client]bool

	logger *slog.Logger
}

func New(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		sessions: make(map[model.SessionID]map[*Client]bool),
		logger:   logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[client.SessionID]; !ok {
		h.sessions[client.SessionID] = make(map[*Client]bool)
	}
	h.sessions[client.SessionID][client] = true

	h.logger.Info("client registered", "session_id", client.SessionID)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
	h.logger.Info("client unregistered", "session_id", client.SessionID)
}

// removeLocked closes client.Send exactly once: only the caller that
// takes the client out of the map closes it.
func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.sessions[client.SessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.sessions, client.SessionID)
	}
}

func (h *Hub) ClientsCount(session model.SessionID) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.sessions[session])
}

func (h *Hub) NotifyPreferencesChanged(session model.SessionID, p model.Preferences) {
	h.BroadcastToSession(session, NewEvent(EventPreferencesUpdated, session, p))
}

func (h *Hub) BroadcastToSession(session model.SessionID, event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", "error", err, "session_id", session)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.sessions[session] {
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("dropping slow client", "session_id", session)
			h.removeLocked(client)
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		_, _, err := client.Conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		err := client.Conn.WriteMessage(websocket.TextMessage, message)
		if err != nil {
			break
		}
	}
}

func NewEvent(eventType string, session model.SessionID, p model.Preferences) Event {
	p = p.Clone()
	return Event{
		Type:      eventType,
		SessionID: string(session),
		Payload: PreferencesDTO{
			Genres:         p.Genres,
			DislikedMovies: p.DislikedMovies,
		},
		Timestamp: time.Now().Unix(),
	}
}
