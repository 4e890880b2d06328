package mockserver

import (
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rxtech-lab/argo-market-strategy/internal/types"
)

type streamRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type streamMessage struct {
	Stream string `json:"stream"`
	Data   any    `json:"data"`
}

// streamSession is the state of one trading stream connection.
type streamSession struct {
	conn *websocket.Conn

	mu            sync.Mutex
	authenticated bool
	listening     bool
}

func (s *streamSession) send(stream string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))

	return s.conn.WriteJSON(streamMessage{Stream: stream, Data: data})
}

func (s *streamSession) isListening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated && s.listening
}

// handleStream handles the trading stream WebSocket.
func (s *MockAlpacaServer) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	//nolint:exhaustruct
	session := &streamSession{conn: conn}

	s.wsMu.Lock()
	s.wsConnections[conn] = session
	s.wsMu.Unlock()

	defer func() {
		s.wsMu.Lock()
		delete(s.wsConnections, conn)
		s.wsMu.Unlock()
		conn.Close()
	}()

	for {
		var req streamRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		switch req.Action {
		case "authenticate":
			s.authenticate(session, req.Data)
		case "listen":
			s.listen(session, req.Data)
		default:
			_ = session.send("error", map[string]string{"message": "unknown action " + req.Action})
		}
	}
}

func (s *MockAlpacaServer) authenticate(session *streamSession, data json.RawMessage) {
	var credentials struct {
		KeyID     string `json:"key_id"`
		SecretKey string `json:"secret_key"`
	}

	_ = json.Unmarshal(data, &credentials)

	authorized := s.config.APIKeyID == "" ||
		(credentials.KeyID == s.config.APIKeyID && credentials.SecretKey == s.config.SecretKey)

	status := "unauthorized"
	if authorized {
		status = "authorized"
	}

	session.mu.Lock()
	session.authenticated = authorized
	session.mu.Unlock()

	_ = session.send("authorization", map[string]string{"status": status, "action": "authenticate"})
}

func (s *MockAlpacaServer) listen(session *streamSession, data json.RawMessage) {
	var subscription struct {
		Streams []string `json:"streams"`
	}

	_ = json.Unmarshal(data, &subscription)

	session.mu.Lock()
	if !session.authenticated {
		session.mu.Unlock()
		_ = session.send("authorization", map[string]string{"status": "unauthorized", "action": "listen"})

		return
	}

	session.listening = slices.Contains(subscription.Streams, types.TradeUpdatesStream)
	session.mu.Unlock()

	streams := []string{}
	if session.isListening() {
		streams = append(streams, types.TradeUpdatesStream)
	}

	_ = session.send("listening", map[string][]string{"streams": streams})
}

// PublishTradeUpdate pushes update to every session listening to trade updates.
func (s *MockAlpacaServer) PublishTradeUpdate(update types.TradeUpdate) {
	s.broadcastTradeUpdates(update)
}

// ListeningSessions returns the number of stream connections subscribed to trade updates.
func (s *MockAlpacaServer) ListeningSessions() int {
	s.wsMu.RLock()
	defer s.wsMu.RUnlock()

	listening := 0

	for _, session := range s.wsConnections {
		if session.isListening() {
			listening++
		}
	}

	return listening
}

func (s *MockAlpacaServer) broadcastTradeUpdates(updates ...types.TradeUpdate) {
	if len(updates) == 0 {
		return
	}

	s.wsMu.RLock()

	sessions := make([]*streamSession, 0, len(s.wsConnections))
	for _, session := range s.wsConnections {
		if session.isListening() {
			sessions = append(sessions, session)
		}
	}
	s.wsMu.RUnlock()

	for _, session := range sessions {
		for _, update := range updates {
			_ = session.send(types.TradeUpdatesStream, update)
		}
	}
}
