// Package gateway is the WebSocket surface of the real-time core: it
// authenticates connections, runs their read loops, and dispatches inbound
// events to the relay and the call coordinator.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"match-gateway/domain"
	"match-gateway/domain/event"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// ErrConnectionClosed is returned by Deliver once the connection is closed.
var ErrConnectionClosed = fmt.Errorf("connection closed")

// ErrDeliveryTimeout is returned when the outbound buffer stays full past
// the sink timeout. The event is dropped; live relay is best effort.
var ErrDeliveryTimeout = fmt.Errorf("delivery timeout")

// Connection pairs one authenticated identity with its transport handle.
// The identity is attached once at upgrade time and never mutated. Writes
// go through a buffered channel drained by a single writer goroutine, so
// fan-out callers never interleave frames.
type Connection struct {
	identity domain.Identity
	netConn  net.Conn
	log      *slog.Logger

	outgoing    chan event.Envelope
	sinkTimeout time.Duration

	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    chan struct{}
}

func NewConnection(log *slog.Logger, netConn net.Conn, identity domain.Identity, bufferSize int, sinkTimeout time.Duration) *Connection {
	return &Connection{
		identity:    identity,
		netConn:     netConn,
		log:         log,
		outgoing:    make(chan event.Envelope, bufferSize),
		sinkTimeout: sinkTimeout,
		closed:      make(chan struct{}),
	}
}

// Identity returns the authenticated identity attached at upgrade time.
func (c *Connection) Identity() domain.Identity {
	return c.identity
}

// UserID is a shorthand for the connection's authenticated user.
func (c *Connection) UserID() domain.UserID {
	return c.identity.UserID
}

// Deliver queues an envelope for the writer goroutine. It blocks at most
// sinkTimeout, so a stalled client cannot wedge another connection's loop.
func (c *Connection) Deliver(ctx context.Context, e event.Envelope) error {
	timer := time.NewTimer(c.sinkTimeout)
	defer timer.Stop()

	select {
	case <-c.closed:
		return ErrConnectionClosed
	default:
	}

	select {
	case c.outgoing <- e:
		return nil
	case <-c.closed:
		return ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrDeliveryTimeout
	}
}

// Close stops delivery synchronously and tears the transport down in the
// background, so callers holding locks never wait on the peer's socket.
// The write deadline unblocks any in-flight write to a client that stopped
// reading, then the close frame carrying the reason goes out under the
// write lock and the socket is closed. The connection's read loop then
// fails, which triggers the disconnect path. Close is idempotent; only the
// first reason is observed by the client.
func (c *Connection) Close(reason domain.CloseReason) {
	c.closeOnce.Do(func() {
		close(c.closed)

		go func() {
			_ = c.netConn.SetWriteDeadline(time.Now().Add(c.sinkTimeout))

			c.writeMu.Lock()
			defer c.writeMu.Unlock()

			status := ws.StatusNormalClosure
			if reason != "" {
				status = ws.StatusPolicyViolation
			}
			frame := ws.NewCloseFrame(ws.NewCloseFrameBody(status, string(reason)))
			if err := ws.WriteFrame(c.netConn, frame); err != nil {
				c.log.Debug(fmt.Sprintf("Close frame not sent to user %d", c.identity.UserID), "err", err)
			}
			_ = c.netConn.Close()
		}()
	})
}

// ReadFrame blocks on the next text frame from the client.
func (c *Connection) ReadFrame() ([]byte, error) {
	return wsutil.ReadClientText(c.netConn)
}

// WriteLoop drains the outbound channel onto the wire. It owns all data
// writes for the connection and exits when the connection closes.
func (c *Connection) WriteLoop() {
	for {
		select {
		case e := <-c.outgoing:
			data, err := json.Marshal(e)
			if err != nil {
				c.log.Error(fmt.Sprintf("Failed to encode %s event", e.Event), "err", err)
				continue
			}
			c.writeMu.Lock()
			err = wsutil.WriteServerText(c.netConn, data)
			c.writeMu.Unlock()
			if err != nil {
				c.log.Debug(fmt.Sprintf("Write failed for user %d", c.identity.UserID), "err", err)
				c.Close("")
				return
			}
		case <-c.closed:
			return
		}
	}
}
