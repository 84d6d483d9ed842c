package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
)

// State is the connection lifecycle state. Transitions:
//
//	Disconnected -> Connecting -> Connected <-> Reconnecting -> Terminal
//
// Terminal is reached when reconnect attempts are exhausted or the
// connection is closed manually; no reconnect ever follows it.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Reconnecting
	Terminal
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	case Terminal:
		return "terminal"
	}
	return "unknown"
}

// ErrNotConnected is returned by Send when the socket is not open.
// The message is not queued; the user retries once reconnected.
var ErrNotConnected = errors.New("not connected")

// EventKind discriminates Event.
type EventKind int

const (
	// EventMessage carries an incoming chat message.
	EventMessage EventKind = iota
	// EventState signals a state transition.
	EventState
)

// Event is delivered on the Events channel for the UI to consume.
type Event struct {
	Kind    EventKind
	Message api.Message

	State   State
	Attempt int           // reconnect attempt number, when Reconnecting
	Delay   time.Duration // wait before that attempt
	Err     error         // cause, when present
}

// outFrame is the single-field frame the backend accepts.
type outFrame struct {
	Message string `json:"message"`
}

// socket is the minimal surface of *websocket.Conn the Conn needs,
// extracted so tests can drive the state machine without a network.
type socket interface {
	ReadMessage() (int, []byte, error)
	WriteJSON(v any) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// dialFunc opens a socket to url.
type dialFunc func(ctx context.Context, url string) (socket, error)

func gorillaDial(ctx context.Context, url string) (socket, error) {
	c, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Conn maintains one live chat connection with automatic reconnect.
// Incoming messages and state changes are published on Events; the
// owner must consume them until the channel closes.
type Conn struct {
	url     string
	dial    dialFunc
	backoff Backoff
	log     *logrus.Entry

	mu     sync.Mutex
	state  State
	sock   socket
	closed bool

	events chan Event
	done   chan struct{}
}

// New creates a Conn for the given socket URL (token already attached
// as a query parameter by api.Client.SocketURL).
func New(url string, log *logrus.Entry) *Conn {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Conn{
		url:     url,
		dial:    gorillaDial,
		backoff: DefaultBackoff(),
		log:     log,
		state:   Disconnected,
		events:  make(chan Event, 64),
		done:    make(chan struct{}),
	}
}

// Events returns the channel of incoming messages and state changes.
// It is closed when the connection reaches Terminal.
func (c *Conn) Events() <-chan Event {
	return c.events
}

// State returns the current connection state.
func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect starts the connection loop. It returns immediately; progress
// is reported via Events.
func (c *Conn) Connect(ctx context.Context) {
	go c.run(ctx)
}

// Send writes a message frame. It fails with ErrNotConnected unless
// the connection is in the open state; nothing is queued.
func (c *Conn) Send(text string) error {
	c.mu.Lock()
	sock, state := c.sock, c.state
	c.mu.Unlock()

	if state != Connected || sock == nil {
		return ErrNotConnected
	}
	if err := sock.WriteJSON(outFrame{Message: text}); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Close ends the connection deliberately: the normal closure code is
// sent so the peer (and the reconnect loop) treat this as intentional.
// Safe to call from any state, including before Connect.
func (c *Conn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	sock := c.sock
	c.mu.Unlock()

	if sock != nil {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = sock.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = sock.Close()
	}
	close(c.done)
}

// run is the connect/read/reconnect loop.
func (c *Conn) run(ctx context.Context) {
	defer close(c.events)

	attempt := 0
	for {
		if c.isClosed() {
			c.setState(Terminal, 0, 0, nil)
			return
		}

		c.setState(Connecting, 0, 0, nil)
		sock, err := c.dial(ctx, c.url)
		if err == nil {
			c.mu.Lock()
			if c.closed {
				c.mu.Unlock()
				_ = sock.Close()
				c.setState(Terminal, 0, 0, nil)
				return
			}
			c.sock = sock
			c.mu.Unlock()

			attempt = 0
			c.setState(Connected, 0, 0, nil)
			err = c.readLoop(sock)
		}

		c.mu.Lock()
		c.sock = nil
		closed := c.closed
		c.mu.Unlock()

		// Manual close or a normal close frame from the peer ends the
		// session; only abnormal closure triggers reconnection.
		if closed || websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			c.setState(Terminal, 0, 0, nil)
			return
		}
		if ctx.Err() != nil {
			c.setState(Terminal, 0, 0, ctx.Err())
			return
		}

		attempt++
		if c.backoff.Exhausted(attempt) {
			c.log.WithError(err).Warn("chat reconnect attempts exhausted")
			c.setState(Terminal, attempt, 0, err)
			return
		}

		delay := c.backoff.Delay(attempt)
		c.log.WithError(err).WithField("attempt", attempt).Debug("chat connection lost, reconnecting")
		c.setState(Reconnecting, attempt, delay, err)

		select {
		case <-time.After(delay):
		case <-c.done:
		case <-ctx.Done():
		}
	}
}

// readLoop reads frames until the socket errors. Each frame is one
// JSON-encoded message object.
func (c *Conn) readLoop(sock socket) error {
	for {
		_, data, err := sock.ReadMessage()
		if err != nil {
			return err
		}

		var msg api.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.log.WithError(err).Debug("dropping malformed chat frame")
			continue
		}

		select {
		case c.events <- Event{Kind: EventMessage, Message: msg}:
		case <-c.done:
			return errors.New("connection closed")
		}
	}
}

func (c *Conn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Conn) setState(s State, attempt int, delay time.Duration, err error) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()

	ev := Event{Kind: EventState, State: s, Attempt: attempt, Delay: delay, Err: err}
	select {
	case c.events <- ev:
	default:
		// The UI fell behind on state updates; the latest state is
		// still queryable via State().
	}
}
