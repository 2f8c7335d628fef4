package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/logging"
)

const (
	// DefaultCallTimeout bounds a call whose context carries no deadline.
	DefaultCallTimeout = 5 * time.Second

	dialTimeout     = 2 * time.Second
	maxResponseSize = 1024 * 1024
)

// ServiceError is an error reported by the bridge itself, as opposed to a
// transport failure.
type ServiceError struct {
	Action  string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("bridge error on %q: %s", e.Action, e.Message)
}

// Client calls the bridge socket. It is safe for concurrent use; each call
// opens its own connection.
type Client struct {
	socketPath  string
	callTimeout time.Duration
}

var _ port.PluginDiscovery = (*Client)(nil)
var _ port.ParameterClientFactory = (*Client)(nil)

// NewClient creates a client for the bridge socket at socketPath. A
// non-positive callTimeout selects DefaultCallTimeout.
func NewClient(socketPath string, callTimeout time.Duration) *Client {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Client{socketPath: socketPath, callTimeout: callTimeout}
}

// SocketPath returns the socket the client dials.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Call sends one request and decodes the reply data into result, which
// may be nil when the caller only needs the status.
func (c *Client) Call(ctx context.Context, action string, fields map[string]any, result any) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	start := time.Now()
	response, err := c.send(ctx, buildRequest(action, fields))
	logging.FromContext(ctx).Debug().
		Str("action", action).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("bridge call")
	if err != nil {
		return fmt.Errorf("calling %q on %s: %w", action, c.socketPath, err)
	}

	if !response.OK {
		return &ServiceError{Action: action, Message: response.Error}
	}

	if result != nil && len(response.Data) > 0 {
		if err := unmarshal(response.Data, result); err != nil {
			return fmt.Errorf("decoding response data for %q: %w", action, err)
		}
	}
	return nil
}

func buildRequest(action string, fields map[string]any) map[string]any {
	request := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		request[key] = value
	}
	request["action"] = action
	return request
}

func (c *Client) send(ctx context.Context, request any) (*Response, error) {
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return nil, fmt.Errorf("connecting: %w", err)
	}
	defer conn.Close()

	// Unblocks the read below when the caller gives up.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if err := newEncoder(conn).Encode(request); err != nil {
		return nil, c.transportError(ctx, "writing request", err)
	}

	if unixConn, ok := conn.(*net.UnixConn); ok {
		_ = unixConn.CloseWrite()
	}

	var response Response
	if err := newDecoder(io.LimitReader(conn, maxResponseSize)).Decode(&response); err != nil {
		return nil, c.transportError(ctx, "reading response", err)
	}
	return &response, nil
}

// transportError prefers the context error so callers can match
// context.DeadlineExceeded and context.Canceled.
func (c *Client) transportError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s: %w", op, context.DeadlineExceeded)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// GetPluginInfo asks the bridge which plugin it hosts.
func (c *Client) GetPluginInfo(ctx context.Context) (*entity.PluginInfo, error) {
	var resp PluginInfoResponse
	if err := c.Call(ctx, ActionGetPluginInfo, nil, &resp); err != nil {
		return nil, err
	}
	if resp.PluginName == "" {
		return nil, fmt.Errorf("bridge reported an empty plugin name")
	}
	return &entity.PluginInfo{
		PluginName:  resp.PluginName,
		PackageName: resp.PackageName,
		NodeName:    resp.NodeName,
		ConfigFiles: resp.ConfigFiles,
	}, nil
}

// NewParameterClient returns a parameter client bound to node.
func (c *Client) NewParameterClient(node string) port.ParameterClient {
	return &parameterClient{client: c, node: node}
}
