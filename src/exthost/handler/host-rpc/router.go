package hostrpc

import (
	"context"

	"github.com/gofrs/uuid"
	controller "github.com/nimbus-ide/exthost/src/exthost/controller/host-service"
	"github.com/nimbus-ide/exthost/src/exthost/entity"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// MethodRequestFullShutdown directs the server to shut down on the next JSON-RPC 'exit' method call.
const MethodRequestFullShutdown = "exthost/requestFullShutdown"

type jsonRPCRouter struct {
	exthost  controller.Controller
	uuid     uuid.UUID
	registry *proxy.Registry
	logger   *zap.SugaredLogger
	stats    tally.Scope
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.SessionContextKey, r.uuid)

	// Notifications are one-way; a handler failure must not surface to the
	// sender as a call failure.
	if r.registry != nil && r.registry.MethodKind(req.Method()) == proxy.KindNotify {
		reply = r.notifyReplier(reply, req.Method())
	}

	// Routing to each of the host-addressable wire methods occurs here.
	// Results are passed back to reply to be returned to the extension process.
	switch req.Method() {
	// Lifecycle related methods.
	case proxy.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case proxy.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case proxy.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case proxy.MethodExit:
		return r.Exit(ctx, reply, req)

	case MethodRequestFullShutdown:
		return r.RequestFullShutdown(ctx, reply, req)

	// Command related methods.
	case proxy.MethodCommandsRegister:
		return r.RegisterCommand(ctx, reply, req)

	case proxy.MethodCommandsUnregister:
		return r.UnregisterCommand(ctx, reply, req)

	case proxy.MethodCommandsExecute:
		return r.ExecuteCommand(ctx, reply, req)

	// Output channel methods.
	case proxy.MethodOutputCreate:
		return r.CreateOutput(ctx, reply, req)

	case proxy.MethodOutputAppend:
		return r.AppendOutput(ctx, reply, req)

	case proxy.MethodOutputClear:
		return r.ClearOutput(ctx, reply, req)

	case proxy.MethodOutputDispose:
		return r.DisposeOutput(ctx, reply, req)

	// Window related methods.
	case proxy.MethodMessagesShow:
		return r.ShowMessage(ctx, reply, req)

	case proxy.MethodStatusBarSet:
		return r.SetStatusBarEntry(ctx, reply, req)

	case proxy.MethodStatusBarRemove:
		return r.RemoveStatusBarEntry(ctx, reply, req)

	case proxy.MethodTelemetryLog:
		return r.LogTelemetry(ctx, reply, req)

	// Diagnostics related methods.
	case proxy.MethodDiagnosticsChangeMany:
		return r.ChangeDiagnostics(ctx, reply, req)

	case proxy.MethodDiagnosticsClear:
		return r.ClearDiagnostics(ctx, reply, req)

	// Document related methods.
	case proxy.MethodDocumentsTryOpen:
		return r.TryOpenDocument(ctx, reply, req)

	case proxy.MethodDocumentsTrySave:
		return r.TrySaveDocument(ctx, reply, req)

	case proxy.MethodDocumentsTryClose:
		return r.TryCloseDocument(ctx, reply, req)

	case proxy.MethodEditorsTryShow:
		return r.TryShowEditor(ctx, reply, req)

	// Configuration methods.
	case proxy.MethodConfigurationUpdate:
		return r.UpdateConfiguration(ctx, reply, req)

	// Lifetime and language feature methods.
	case proxy.MethodLifetimeCollected:
		return r.NotifyCollected(ctx, reply, req)

	case proxy.MethodCompletionRequest:
		return r.Complete(ctx, reply, req)

	case proxy.MethodCompletionResolve:
		return r.ResolveCompletion(ctx, reply, req)

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// notifyReplier wraps a replier so that handler errors are logged and
// counted instead of being returned to the sender.
func (r *jsonRPCRouter) notifyReplier(reply jsonrpc2.Replier, method string) jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		if err != nil {
			r.logger.Errorw("notification handler failed", "method", method, "error", err)
			r.stats.SubScope("notify").Counter("errors").Inc(1)
			err = nil
		}
		return reply(ctx, result, err)
	}
}
