package ws

import (
	"sync"
	"time"

	"screentrack/internal/domain/entity"

	"github.com/gorilla/websocket"
)

const maxMessageSize = 64 * 1024

// conn is one upgraded socket. Only writePump writes data frames; control frames and
// Close may be issued from any goroutine.
type conn struct {
	ws          *websocket.Conn
	deviceID    string // Empty for observers.
	materialID  string
	connectedAt time.Time
	generation  uint64 // Set under Gateway.mu when the device registers.

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	lastPong time.Time
}

func newConn(ws *websocket.Conn, deviceID, materialID string, now time.Time, buffer int) *conn {
	return &conn{
		ws:          ws,
		deviceID:    deviceID,
		materialID:  materialID,
		connectedAt: now,
		send:        make(chan []byte, buffer),
		done:        make(chan struct{}),
		lastPong:    now,
	}
}

// pingBudget counts consecutive failed pings; a successful ping clears it.
type pingBudget struct {
	limit    int
	failures int
}

// record accounts for one ping attempt and reports whether the budget is exhausted.
func (b *pingBudget) record(err error) bool {
	if err == nil {
		b.failures = 0

		return false
	}
	b.failures++

	return b.failures >= b.limit
}

func (c *conn) isObserver() bool {
	return c.deviceID == ""
}

func (c *conn) touch(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if now.After(c.lastPong) {
		c.lastPong = now
	}
}

func (c *conn) lastPongAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastPong
}

func (c *conn) snapshot() entity.DeviceConnection {
	return entity.DeviceConnection{
		DeviceID:    c.deviceID,
		MaterialID:  c.materialID,
		ConnectedAt: c.connectedAt,
		LastPong:    c.lastPongAt(),
	}
}

// enqueue hands payload to the writer. A full buffer means the peer stopped reading,
// so the connection is closed rather than blocking the caller.
func (c *conn) enqueue(payload []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- payload:
		return true
	case <-c.done:
		return false
	default:
		c.close(websocket.CloseTryAgainLater, "send buffer full")

		return false
	}
}

// close terminates the socket once. The read loop observes the error and exits.
func (c *conn) close(code int, reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		msg := websocket.FormatCloseMessage(code, reason)
		_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		_ = c.ws.Close()
	})
}

func (c *conn) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
