package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/bnema/bridgecfg/internal/logging"
)

// ActionFunc handles one decoded request. raw is the complete CBOR request
// including the action field. A non-nil error becomes an error response.
type ActionFunc func(ctx context.Context, raw []byte) (any, error)

const (
	readTimeout    = 30 * time.Second
	writeTimeout   = 10 * time.Second
	maxRequestSize = 1024 * 1024
)

// SocketServer answers bridge requests on a unix socket.
type SocketServer struct {
	socketPath string
	handlers   map[string]ActionFunc

	activeConnections sync.WaitGroup
}

// NewSocketServer creates a server for socketPath. Handlers must be
// registered before Serve is called.
func NewSocketServer(socketPath string) *SocketServer {
	return &SocketServer{
		socketPath: socketPath,
		handlers:   make(map[string]ActionFunc),
	}
}

// Handle registers handler for action. It panics on duplicates.
func (s *SocketServer) Handle(action string, handler ActionFunc) {
	if _, exists := s.handlers[action]; exists {
		panic(fmt.Sprintf("bridge.SocketServer: duplicate handler for action %q", action))
	}
	s.handlers[action] = handler
}

// Serve accepts connections until ctx is cancelled, then waits for
// in-flight requests and removes the socket file.
func (s *SocketServer) Serve(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "bridge-server")
	log := logging.FromContext(ctx)

	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale socket %s: %w", s.socketPath, err)
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.socketPath, err)
	}
	defer func() {
		_ = listener.Close()
		_ = os.Remove(s.socketPath)
	}()

	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	log.Info().Str("path", s.socketPath).Msg("bridge socket listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			log.Error().Err(err).Msg("accept failed")
			continue
		}

		s.activeConnections.Add(1)
		go func() {
			defer s.activeConnections.Done()
			s.handleConnection(ctx, conn)
		}()
	}

	s.activeConnections.Wait()
	log.Info().Msg("bridge socket closed")
	return nil
}

func (s *SocketServer) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

	var raw RawMessage
	if err := newDecoder(io.LimitReader(conn, maxRequestSize)).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return
		}
		s.writeError(ctx, conn, fmt.Sprintf("invalid request: %v", err))
		return
	}

	var header struct {
		Action string `cbor:"action"`
	}
	if err := unmarshal(raw, &header); err != nil {
		s.writeError(ctx, conn, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if header.Action == "" {
		s.writeError(ctx, conn, "missing required field: action")
		return
	}

	handler, exists := s.handlers[header.Action]
	if !exists {
		s.writeError(ctx, conn, fmt.Sprintf("unknown action %q", header.Action))
		return
	}

	ctx = logging.With(ctx, map[string]any{"action": header.Action})
	result, err := handler(ctx, []byte(raw))
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("action failed")
		s.writeError(ctx, conn, err.Error())
		return
	}

	s.writeSuccess(ctx, conn, result)
}

func (s *SocketServer) writeError(ctx context.Context, conn net.Conn, message string) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := newEncoder(conn).Encode(Response{OK: false, Error: message}); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to write error response")
	}
}

func (s *SocketServer) writeSuccess(ctx context.Context, conn net.Conn, result any) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))

	response := Response{OK: true}
	if result != nil {
		data, err := marshal(result)
		if err != nil {
			s.writeError(ctx, conn, fmt.Sprintf("internal: marshaling response: %v", err))
			return
		}
		response.Data = data
	}

	if err := newEncoder(conn).Encode(response); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to write success response")
	}
}
