package extensionclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

const _errSendToExtension = "sending call/notification to extension process: %w"

// Gateway is used to send outbound notifications and calls to extension processes.
// All calls to the gateway should include a context with a session UUID, which will be used to route outbound calls and notifications to the correct extension process.
//
// Accept-prefixed methods are one-way notifications: the send is
// fire-and-forget, and a returned error only reports that the notification
// could not be handed to the transport. Callers log it and move on.
type Gateway interface {
	// Methods used to manage the client for each session.

	// RegisterClient registers a new client with the gateway. Should be called each time a new extension process connection is initialized.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a client from the gateway. Should be called each time an extension process connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error

	// One-way state pushes into the extension process's shadow model.
	AcceptDocumentsAndEditorsDelta(ctx context.Context, delta *model.DocumentsAndEditorsDelta) error
	AcceptModelChanged(ctx context.Context, event *model.ModelChangedEvent) error
	AcceptConfigurationChanged(ctx context.Context, delta *model.ConfigurationDelta) error
	AcceptFileEvents(ctx context.Context, events *model.FileEventsParams) error
	AcceptCollectedHandles(ctx context.Context, collected *model.CollectedParams) error

	// Request/response calls into the extension process.
	ActivateExtension(ctx context.Context, params *model.ActivateExtensionParams) error
	ExecuteContributedCommand(ctx context.Context, params *model.ExecuteCommandParams) (*model.ExecuteCommandResult, error)
	ProvideCompletionItems(ctx context.Context, params *model.CompletionRequestParams) (*model.CompletionList, error)
	ResolveCompletionItem(ctx context.Context, params *model.ResolveCompletionItemParams) (*model.CompletionItem, error)
}

type gateway struct {
	connections map[uuid.UUID]jsonrpc2.Conn
	clientsMu   sync.Mutex
	logger      *zap.Logger
}

// New returns a Gateway for sending notifications and calls to extension processes.
func New(logger *zap.Logger) Gateway {
	return &gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      logger,
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	g.connections[id] = *conn

	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	delete(g.connections, id)

	return nil
}

func (g *gateway) AcceptDocumentsAndEditorsDelta(ctx context.Context, delta *model.DocumentsAndEditorsDelta) error {
	return g.notify(ctx, proxy.MethodAcceptDocumentsAndEditorsDelta, delta)
}

func (g *gateway) AcceptModelChanged(ctx context.Context, event *model.ModelChangedEvent) error {
	return g.notify(ctx, proxy.MethodAcceptModelChanged, event)
}

func (g *gateway) AcceptConfigurationChanged(ctx context.Context, delta *model.ConfigurationDelta) error {
	return g.notify(ctx, proxy.MethodAcceptConfigurationChanged, delta)
}

func (g *gateway) AcceptFileEvents(ctx context.Context, events *model.FileEventsParams) error {
	return g.notify(ctx, proxy.MethodAcceptFileEvents, events)
}

func (g *gateway) AcceptCollectedHandles(ctx context.Context, collected *model.CollectedParams) error {
	return g.notify(ctx, proxy.MethodAcceptCollectedHandles, collected)
}

func (g *gateway) ActivateExtension(ctx context.Context, params *model.ActivateExtensionParams) error {
	conn, err := g.getConn(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToExtension, err)
	}
	if _, err := conn.Call(ctx, proxy.MethodActivateExtension, params, nil); err != nil {
		return fmt.Errorf(_errSendToExtension, err)
	}
	return nil
}

func (g *gateway) ExecuteContributedCommand(ctx context.Context, params *model.ExecuteCommandParams) (*model.ExecuteCommandResult, error) {
	conn, err := g.getConn(ctx)
	if err != nil {
		return nil, fmt.Errorf(_errSendToExtension, err)
	}
	result := model.ExecuteCommandResult{}
	if _, err := conn.Call(ctx, proxy.MethodExecuteContributedCommand, params, &result); err != nil {
		return nil, fmt.Errorf(_errSendToExtension, err)
	}
	return &result, nil
}

func (g *gateway) ProvideCompletionItems(ctx context.Context, params *model.CompletionRequestParams) (*model.CompletionList, error) {
	conn, err := g.getConn(ctx)
	if err != nil {
		return nil, fmt.Errorf(_errSendToExtension, err)
	}
	result := model.CompletionList{}
	if _, err := conn.Call(ctx, proxy.MethodProvideCompletionItems, params, &result); err != nil {
		return nil, fmt.Errorf(_errSendToExtension, err)
	}
	return &result, nil
}

func (g *gateway) ResolveCompletionItem(ctx context.Context, params *model.ResolveCompletionItemParams) (*model.CompletionItem, error) {
	conn, err := g.getConn(ctx)
	if err != nil {
		return nil, fmt.Errorf(_errSendToExtension, err)
	}
	result := model.CompletionItem{}
	if _, err := conn.Call(ctx, proxy.MethodResolveCompletionItem, params, &result); err != nil {
		return nil, fmt.Errorf(_errSendToExtension, err)
	}
	return &result, nil
}

func (g *gateway) notify(ctx context.Context, method string, params interface{}) error {
	conn, err := g.getConn(ctx)
	if err != nil {
		return fmt.Errorf(_errSendToExtension, err)
	}
	if err := conn.Notify(ctx, method, params); err != nil {
		return fmt.Errorf(_errSendToExtension, err)
	}
	return nil
}

// getConn returns the connection for the session UUID in the given context.
func (g *gateway) getConn(ctx context.Context) (jsonrpc2.Conn, error) {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	id, err := mapper.ContextToSessionUUID(ctx)
	if err != nil {
		return nil, err
	}

	conn, ok := g.connections[id]
	if !ok {
		return nil, fmt.Errorf("extension process with id %q not found", id)
	}
	return conn, nil
}
