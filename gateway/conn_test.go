package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"match-gateway/domain"
	"match-gateway/domain/event"
	"match-gateway/runtime"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/stretchr/testify/require"
)

func pipeConnection(t *testing.T, bufferSize int, sinkTimeout time.Duration) (*Connection, net.Conn) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() {
		_ = server.Close()
		_ = client.Close()
	})
	conn := NewConnection(slog.Default(), server, domain.Identity{UserID: 1, Verified: true}, bufferSize, sinkTimeout)
	return conn, client
}

func TestConnection_Deliver_Buffers_Envelope(t *testing.T) {
	req := require.New(t)
	conn, _ := pipeConnection(t, 4, time.Second)

	req.NoError(conn.Deliver(context.Background(), event.New(event.UserWentOnline, event.Presence{UserID: 2})))

	select {
	case e := <-conn.outgoing:
		req.Equal(event.UserWentOnline, e.Event)
	default:
		t.Fatal("envelope not buffered")
	}
}

func TestConnection_Deliver_Times_Out_On_Full_Buffer(t *testing.T) {
	req := require.New(t)
	conn, _ := pipeConnection(t, 1, 20*time.Millisecond)

	req.NoError(conn.Deliver(context.Background(), event.New(event.UserWentOnline, nil)))
	err := conn.Deliver(context.Background(), event.New(event.UserWentOffline, nil))
	req.ErrorIs(err, ErrDeliveryTimeout)
}

func TestConnection_Deliver_After_Close(t *testing.T) {
	req := require.New(t)
	conn, client := pipeConnection(t, 4, time.Second)
	go func() { _, _ = io.Copy(io.Discard, client) }()

	conn.Close(domain.CloseForbidden)
	conn.Close(domain.CloseNewSignIn) // idempotent

	err := conn.Deliver(context.Background(), event.New(event.UserWentOnline, nil))
	req.ErrorIs(err, ErrConnectionClosed)
}

func TestConnection_Deliver_Honors_Context(t *testing.T) {
	req := require.New(t)
	conn, _ := pipeConnection(t, 1, time.Minute)
	req.NoError(conn.Deliver(context.Background(), event.New(event.UserWentOnline, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := conn.Deliver(ctx, event.New(event.UserWentOffline, nil))
	req.ErrorIs(err, context.Canceled)
}

func TestConnection_Close_Does_Not_Block_On_Stalled_Client(t *testing.T) {
	req := require.New(t)
	conn, client := pipeConnection(t, 4, 50*time.Millisecond)
	go conn.WriteLoop()

	// The client stopped reading, so the write loop wedges mid-frame.
	req.NoError(conn.Deliver(context.Background(), event.New(event.AlertMessage, event.Alert{Message: "stall"})))

	done := make(chan struct{})
	go func() {
		conn.Close(domain.CloseNewSignIn)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close blocked on a client that stopped reading")
	}

	err := conn.Deliver(context.Background(), event.New(event.UserWentOnline, nil))
	req.ErrorIs(err, ErrConnectionClosed)

	// The write deadline unwedges the stalled write and the socket goes down.
	req.Eventually(func() bool {
		_ = client.SetReadDeadline(time.Now().Add(10 * time.Millisecond))
		_, err := client.Read(make([]byte, 64))
		return errors.Is(err, io.EOF)
	}, time.Second, 10*time.Millisecond)
}

func TestRegistry_Supersedes_Stalled_Connection_Promptly(t *testing.T) {
	req := require.New(t)
	registry := runtime.NewRegistry()

	stalled, _ := pipeConnection(t, 1, 50*time.Millisecond)
	go stalled.WriteLoop()
	req.NoError(stalled.Deliver(context.Background(), event.New(event.UserWentOnline, nil)))
	registry.Register(stalled.UserID(), stalled)

	replacement, client := pipeConnection(t, 1, 50*time.Millisecond)
	go func() { _, _ = io.Copy(io.Discard, client) }()

	done := make(chan struct{})
	go func() {
		registry.Register(replacement.UserID(), replacement)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Register blocked behind the evicted connection's socket")
	}

	// The directory stays responsive while the old transport unwinds.
	sink, ok := registry.Find(replacement.UserID())
	req.True(ok)
	req.Same(replacement, sink)

	err := stalled.Deliver(context.Background(), event.New(event.UserWentOffline, nil))
	req.ErrorIs(err, ErrConnectionClosed)
}

func TestConnection_Close_Frame_Stays_Intact_Under_Write_Load(t *testing.T) {
	req := require.New(t)
	conn, client := pipeConnection(t, 64, time.Second)
	go conn.WriteLoop()

	go func() {
		for {
			if conn.Deliver(context.Background(), event.New(event.AlertMessage, event.Alert{Message: "spam"})) != nil {
				return
			}
		}
	}()

	go func() {
		time.Sleep(5 * time.Millisecond)
		conn.Close(domain.CloseNewSignIn)
	}()

	// Every frame up to and including the close frame must parse cleanly.
	for {
		_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, err := wsutil.ReadServerText(client); err != nil {
			var closed wsutil.ClosedError
			req.ErrorAs(err, &closed)
			req.Equal(ws.StatusPolicyViolation, closed.Code)
			req.Equal(string(domain.CloseNewSignIn), closed.Reason)
			return
		}
	}
}

func TestConnection_WriteLoop_Encodes_Frames(t *testing.T) {
	req := require.New(t)
	conn, client := pipeConnection(t, 4, time.Second)
	go conn.WriteLoop()
	defer func() {
		go func() { _, _ = io.Copy(io.Discard, client) }()
		conn.Close("")
	}()

	req.NoError(conn.Deliver(context.Background(), event.New(event.AlertMessage, event.Alert{Message: "hi"})))

	_ = client.SetReadDeadline(time.Now().Add(time.Second))
	data, err := wsutil.ReadServerText(client)
	req.NoError(err)

	var frame struct {
		Event event.Name `json:"event"`
		Data  struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	req.NoError(json.Unmarshal(data, &frame))
	req.Equal(event.AlertMessage, frame.Event)
	req.Equal("hi", frame.Data.Message)
}
