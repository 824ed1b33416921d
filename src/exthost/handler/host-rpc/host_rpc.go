// Package hostrpc routes inbound JSON-RPC traffic from extension processes
// to the host-service controller.
package hostrpc

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"
	controller "github.com/nimbus-ide/exthost/src/exthost/controller/host-service"
	"github.com/nimbus-ide/exthost/src/exthost/entity"
	"github.com/nimbus-ide/exthost/src/exthost/internal/jsonrpcfx"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Handler accepts extension process connections and provides a per-connection Router.
type Handler = jsonrpcfx.ConnectionManager

// New constructs the connection manager and registers it with the JSON-RPC module.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, registry *proxy.Registry, logger *zap.SugaredLogger, stats tally.Scope) (Handler, error) {
	c := jsonRPCConnectionManager{
		ctrl:     ctrl,
		registry: registry,
		logger:   logger,
		stats:    stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

type jsonRPCConnectionManager struct {
	ctrl     controller.Controller
	registry *proxy.Registry
	logger   *zap.SugaredLogger
	stats    tally.Scope
}

// NewConnection will store a new connection and return a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.InitSession(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	r := jsonRPCRouter{
		exthost:  c.ctrl,
		uuid:     id,
		registry: c.registry,
		logger:   c.logger,
		stats:    c.stats,
	}

	return &r, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure session is removed even if no Exit call has been received.
	ctx = context.WithValue(ctx, entity.SessionContextKey, id)
	c.ctrl.EndSession(ctx, id)
}
