package tradingprovider

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rxtech-lab/argo-market-strategy/internal/logger"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

const (
	streamAuthorization = "authorization"
	streamListening     = "listening"

	authStatusAuthorized = "authorized"

	streamWriteTimeout = 10 * time.Second
)

type streamAction struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

type authData struct {
	KeyID     string `json:"key_id"`
	SecretKey string `json:"secret_key"`
}

type listenData struct {
	Streams []string `json:"streams"`
}

type streamEnvelope struct {
	Stream string          `json:"stream"`
	Data   json.RawMessage `json:"data"`
}

type authorizationData struct {
	Status string `json:"status"`
	Action string `json:"action"`
}

var _ trading.Stream = (*AlpacaStream)(nil)

// AlpacaStream implements trading.Stream over the Alpaca trading websocket.
type AlpacaStream struct {
	url       string
	keyID     string
	secretKey string
	dialer    *websocket.Dialer
	log       *logger.Logger

	mu         sync.Mutex
	conn       *websocket.Conn
	authWaiter chan error

	writeMu sync.Mutex

	callbacksMu sync.RWMutex
	callbacks   map[string]trading.StreamCallback

	closing atomic.Bool
	readers conc.WaitGroup
}

// NewAlpacaStream creates a stream for the paper or live environment. It connects lazily on Authenticate.
func NewAlpacaStream(config AlpacaProviderConfig, paper bool, log *logger.Logger) (*AlpacaStream, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := config.withDefaults(paper)

	return &AlpacaStream{
		url:         cfg.StreamURL,
		keyID:       cfg.ApiKeyID,
		secretKey:   cfg.SecretKey,
		dialer:      websocket.DefaultDialer,
		log:         log.Named("alpaca-stream"),
		mu:          sync.Mutex{},
		conn:        nil,
		authWaiter:  nil,
		writeMu:     sync.Mutex{},
		callbacksMu: sync.RWMutex{},
		callbacks:   make(map[string]trading.StreamCallback),
		closing:     atomic.Bool{},
		readers:     conc.WaitGroup{},
	}, nil
}

// Authenticate implements trading.Stream.
func (s *AlpacaStream) Authenticate(ctx context.Context) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return err
	}

	waiter := make(chan error, 1)

	s.mu.Lock()
	s.authWaiter = waiter
	s.mu.Unlock()

	msg := streamAction{
		Action: "authenticate",
		Data:   authData{KeyID: s.keyID, SecretKey: s.secretKey},
	}
	if err := s.write(conn, msg); err != nil {
		return err
	}

	select {
	case err := <-waiter:
		return err
	case <-ctx.Done():
		return errors.Wrap(errors.ErrCodeStreamAuthFailed, "timed out waiting for stream authorization", ctx.Err())
	}
}

// Subscribe implements trading.Stream.
func (s *AlpacaStream) Subscribe(_ context.Context, streams ...string) error {
	conn, err := s.current()
	if err != nil {
		return err
	}

	return s.write(conn, streamAction{Action: "listen", Data: listenData{Streams: streams}})
}

// Unsubscribe implements trading.Stream.
func (s *AlpacaStream) Unsubscribe(_ context.Context) error {
	conn, err := s.current()
	if err != nil {
		return err
	}

	return s.write(conn, streamAction{Action: "listen", Data: listenData{Streams: []string{}}})
}

// On implements trading.Stream.
func (s *AlpacaStream) On(stream string, callback trading.StreamCallback) {
	s.callbacksMu.Lock()
	defer s.callbacksMu.Unlock()

	s.callbacks[stream] = callback
}

// Off implements trading.Stream.
func (s *AlpacaStream) Off(stream string) {
	s.callbacksMu.Lock()
	defer s.callbacksMu.Unlock()

	delete(s.callbacks, stream)
}

// Close implements trading.Stream. It waits for the read loop to exit.
func (s *AlpacaStream) Close() error {
	s.closing.Store(true)

	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.mu.Unlock()

	if conn == nil {
		return nil
	}

	s.writeMu.Lock()
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(streamWriteTimeout))
	s.writeMu.Unlock()

	err := conn.Close()
	s.readers.Wait()

	if err != nil {
		return errors.Wrap(errors.ErrCodeStreamClosed, "failed to close stream", err)
	}

	return nil
}

func (s *AlpacaStream) connect(ctx context.Context) (*websocket.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn, nil
	}

	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeRemoteRequestFailed, err, "failed to connect to %s", s.url)
	}

	s.closing.Store(false)
	s.conn = conn
	s.readers.Go(func() { s.readLoop(conn) })

	return conn, nil
}

func (s *AlpacaStream) current() (*websocket.Conn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, errors.New(errors.ErrCodeStreamClosed, "stream is not connected")
	}

	return s.conn, nil
}

func (s *AlpacaStream) write(conn *websocket.Conn, msg streamAction) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	if err := conn.WriteJSON(msg); err != nil {
		return errors.Wrapf(errors.ErrCodeStreamClosed, err, "failed to send %s", msg.Action)
	}

	return nil
}

func (s *AlpacaStream) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.resolveAuth(errors.Wrap(errors.ErrCodeStreamClosed, "stream closed before authorization", err))

			if !s.closing.Load() {
				s.log.Warn("Trading stream disconnected", zap.Error(err))
			}

			s.mu.Lock()
			if s.conn == conn {
				s.conn = nil
			}
			s.mu.Unlock()

			return
		}

		s.dispatch(data)
	}
}

func (s *AlpacaStream) dispatch(data []byte) {
	var envelope streamEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.log.Warn("Dropping malformed stream message", zap.Error(err))

		return
	}

	switch envelope.Stream {
	case streamAuthorization:
		var auth authorizationData
		if err := json.Unmarshal(envelope.Data, &auth); err != nil {
			s.resolveAuth(errors.Wrap(errors.ErrCodeUnexpectedResponse, "malformed authorization message", err))

			return
		}

		if auth.Status != authStatusAuthorized {
			s.resolveAuth(errors.Newf(errors.ErrCodeStreamAuthFailed, "stream authorization %s", auth.Status))

			return
		}

		s.resolveAuth(nil)
	case streamListening:
		s.log.Debug("Stream subscriptions updated", zap.ByteString("data", envelope.Data))
	default:
		s.callbacksMu.RLock()
		callback, ok := s.callbacks[envelope.Stream]
		s.callbacksMu.RUnlock()

		if ok {
			callback(envelope.Data)
		}
	}
}

func (s *AlpacaStream) resolveAuth(err error) {
	s.mu.Lock()
	waiter := s.authWaiter
	s.authWaiter = nil
	s.mu.Unlock()

	if waiter != nil {
		waiter <- err
	}
}
