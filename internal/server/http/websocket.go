package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// WSMessage is a client request over /api/ws.
type WSMessage struct {
	Type    string          `json:"type"`    // "new_game", "state", "play", "ai_move", "ping"
	ID      string          `json:"id"`      // echoed back for correlation
	Payload json.RawMessage `json:"payload"` // the matching HTTP request body
}

// WSResponse answers one WSMessage.
type WSResponse struct {
	Type    string `json:"type"` // "result", "error", "pong"
	ID      string `json:"id,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

type wsClient struct {
	conn     *websocket.Conn
	h        *Handler
	sendChan chan WSResponse
}

// WebSocket upgrades the connection and serves the same operations as the
// JSON endpoints, one response per message, in order.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	c := &wsClient{conn: conn, h: h, sendChan: make(chan WSResponse, 64)}
	go c.writePump()
	c.readPump()
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *wsClient) readPump() {
	defer func() {
		close(c.sendChan)
		c.conn.Close()
	}()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.sendChan <- c.handleMessage(msg)
	}
}

func (c *wsClient) handleMessage(msg WSMessage) WSResponse {
	switch msg.Type {
	case "ping":
		return WSResponse{Type: "pong", ID: msg.ID}
	case "new_game":
		return dispatch(msg, c.h.newGame)
	case "state":
		return dispatch(msg, c.h.state)
	case "play":
		return dispatch(msg, c.h.play)
	case "ai_move":
		return dispatch(msg, c.h.aiMove)
	default:
		return WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type"}
	}
}

func dispatch[Req, Resp any](msg WSMessage, fn func(Req) (Resp, error)) WSResponse {
	var req Req
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		}
	}
	resp, err := fn(req)
	if err != nil {
		return WSResponse{Type: "error", ID: msg.ID, Error: err.Error()}
	}
	return WSResponse{Type: "result", ID: msg.ID, Payload: resp}
}
