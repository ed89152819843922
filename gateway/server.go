package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"match-gateway/contract"
	"match-gateway/domain"
	"match-gateway/domain/event"

	"github.com/gobwas/ws"
)

// Server owns the connection lifecycle: authenticate, register, broadcast
// presence, pump the read loop, and unwind everything on disconnect.
type Server struct {
	log         *slog.Logger
	address     string
	bufferSize  int
	sinkTimeout time.Duration

	validator   contract.ITokenValidator
	registry    contract.IRegistry
	presence    contract.IPresence
	chats       contract.IChatDirectory
	coordinator contract.ICallCoordinator
	dispatcher  *Dispatcher

	listener   net.Listener
	httpServer *http.Server
}

func NewServer(
	log *slog.Logger,
	address string,
	bufferSize int,
	sinkTimeout time.Duration,
	validator contract.ITokenValidator,
	registry contract.IRegistry,
	presence contract.IPresence,
	chats contract.IChatDirectory,
	coordinator contract.ICallCoordinator,
	dispatcher *Dispatcher,
) *Server {
	return &Server{
		log:         log,
		address:     address,
		bufferSize:  bufferSize,
		sinkTimeout: sinkTimeout,
		validator:   validator,
		registry:    registry,
		presence:    presence,
		chats:       chats,
		coordinator: coordinator,
		dispatcher:  dispatcher,
	}
}

// Start listens and serves until the context is cancelled or Serve fails.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleUpgrade)
	s.httpServer = &http.Server{Handler: mux}

	s.log.Info("Gateway listening", "address", listener.Addr().String())

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return fmt.Errorf("gateway server error: %w", err)
	}
}

// Shutdown stops accepting new connections and closes the listener.
// Established connections terminate through their own read loops.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the listening address, for tests that bind port 0.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// handleUpgrade performs the WebSocket handshake first, then authenticates,
// so rejected clients receive a close frame with a reason code instead of a
// bare HTTP error.
func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	cookie, cookieErr := r.Cookie("accessToken")

	netConn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		s.log.Warn("Failed to upgrade connection", "err", err)
		return
	}

	if cookieErr != nil || cookie.Value == "" {
		s.refuse(netConn, domain.CloseUnauthorized)
		return
	}

	identity, err := s.validator.Validate(cookie.Value)
	if err != nil || !identity.Verified || identity.Blocked {
		s.refuse(netConn, domain.CloseForbidden)
		return
	}

	conn := NewConnection(s.log, netConn, identity, s.bufferSize, s.sinkTimeout)
	go conn.WriteLoop()
	go s.serveConnection(conn)
}

// serveConnection runs one connection from registration to teardown.
// Inbound events are processed sequentially in arrival order; concurrency
// exists only across connections.
func (s *Server) serveConnection(conn *Connection) {
	ctx := context.Background()
	userID := conn.UserID()
	s.log.Info(fmt.Sprintf("Client %d connected", userID))

	s.registry.Register(userID, conn)

	peers, err := s.chats.PeersForUser(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to resolve peers of user %d", userID), "err", err)
	}
	s.presence.NotifyPeers(ctx, userID, peers, event.New(event.UserWentOnline, event.Presence{UserID: userID}))

	for {
		frame, err := conn.ReadFrame()
		if err != nil {
			break
		}
		s.dispatcher.Dispatch(ctx, conn, frame)
	}

	s.disconnect(ctx, conn)
}

// disconnect reverses the connect sequence: the session leaves the
// directory, peers learn the user went offline, and every call the user was
// a party to is force-ended. A stale callback from a superseded connection
// skips the registry removal but still unwinds its own state.
func (s *Server) disconnect(ctx context.Context, conn *Connection) {
	userID := conn.UserID()
	conn.Close("")
	s.registry.Unregister(userID, conn)

	peers, err := s.chats.PeersForUser(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to resolve peers of user %d", userID), "err", err)
	}
	s.presence.NotifyPeers(ctx, userID, peers, event.New(event.UserWentOffline, event.Presence{UserID: userID}))

	s.coordinator.DisconnectSweep(ctx, userID)
	s.log.Info(fmt.Sprintf("Client %d disconnected", userID))
}

// refuse closes a freshly upgraded connection with a policy close frame.
func (s *Server) refuse(netConn net.Conn, reason domain.CloseReason) {
	frame := ws.NewCloseFrame(ws.NewCloseFrameBody(ws.StatusPolicyViolation, string(reason)))
	_ = ws.WriteFrame(netConn, frame)
	_ = netConn.Close()
}
