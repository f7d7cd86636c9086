package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nhooyr.io/websocket"
)

// ErrSendBufferFull reports a peer whose outbound queue is full (slow or
// dead consumer). The relay treats it as a failed send and skips the peer.
var ErrSendBufferFull = errors.New("send buffer full")

// Conn adapts one websocket to the relay: inbound frames come from Read,
// outbound messages go through a buffered channel drained by WriteLoop.
type Conn struct {
	ws  *websocket.Conn
	out chan []byte
}

// Accept upgrades HTTP to websocket (allow all origins)
func Accept(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	return websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:  []string{"*"},
		CompressionMode: websocket.CompressionDisabled,
	})
}

// NewConn wraps wsc with an outbound buffer of buf messages.
func NewConn(wsc *websocket.Conn, buf int) *Conn {
	if buf <= 0 {
		buf = 256
	}
	return &Conn{ws: wsc, out: make(chan []byte, buf)}
}

// Send enqueues b without blocking.
func (c *Conn) Send(b []byte) error {
	select {
	case c.out <- b:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Read blocks until the next text/binary frame.
// Returns false once the connection is closed or errors.
func (c *Conn) Read(ctx context.Context) ([]byte, bool) {
	for {
		typ, data, err := c.ws.Read(ctx)
		if err != nil {
			return nil, false
		}
		if typ == websocket.MessageText || typ == websocket.MessageBinary {
			return data, true
		}
	}
}

// WriteLoop sends outbound messages + periodic pings
// Exits when ctx is cancelled
func (c *Conn) WriteLoop(ctx context.Context) {
	t := time.NewTicker(20 * time.Second)
	defer t.Stop()

	for {
		select {
		case b := <-c.out:
			_ = c.ws.Write(ctx, websocket.MessageText, b)
		case <-t.C:
			_ = c.ws.Ping(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Close closes the WS connection normally
func (c *Conn) Close() error { return c.ws.Close(websocket.StatusNormalClosure, "bye") }

// CloseReject closes with a policy violation status, used when the
// handshake carried no usable room id.
func (c *Conn) CloseReject(reason string) error {
	return c.ws.Close(websocket.StatusPolicyViolation, reason)
}
