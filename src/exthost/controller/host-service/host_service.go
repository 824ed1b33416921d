// Package hostservice implements the host side of the extension-host
// protocol: session lifecycle, the host-addressable capabilities, and the
// language-feature round trips that exercise remote object identity.
package hostservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	configsync "github.com/nimbus-ide/exthost/src/exthost/controller/config-sync"
	docsync "github.com/nimbus-ide/exthost/src/exthost/controller/doc-sync"
	fileevents "github.com/nimbus-ide/exthost/src/exthost/controller/file-events"
	extclient "github.com/nimbus-ide/exthost/src/exthost/gateway/extension-client"
	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/internal/fs"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/internal/logfilewriter"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/internal/serverinfofile"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/nimbus-ide/exthost/src/exthost/repository/session"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	// Error templates
	_errSessionFromContext = "getting session from context: %w"

	// Configuration keys
	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
)

// BuiltinCommand is a host-implemented command available to every session.
type BuiltinCommand func(ctx context.Context, args []json.RawMessage) (json.RawMessage, error)

// Controller orchestrates the business logic for each request from an
// extension process.
type Controller interface {
	// Lifecycle methods defined per protocol.
	Initialize(ctx context.Context, params *model.InitData) error
	Initialized(ctx context.Context) error
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// Command related methods.
	RegisterCommand(ctx context.Context, params *model.RegisterCommandParams) error
	UnregisterCommand(ctx context.Context, params *model.RegisterCommandParams) error
	ExecuteCommand(ctx context.Context, params *model.ExecuteCommandParams) (*model.ExecuteCommandResult, error)
	RegisterBuiltinCommand(id string, fn BuiltinCommand) error

	// Output channel methods.
	CreateOutput(ctx context.Context, params *model.OutputCreateParams) (*model.OutputCreateResult, error)
	AppendOutput(ctx context.Context, params *model.OutputAppendParams) error
	ClearOutput(ctx context.Context, params *model.OutputHandleParams) error
	DisposeOutput(ctx context.Context, params *model.OutputHandleParams) error

	// Window related methods.
	ShowMessage(ctx context.Context, params *model.ShowMessageParams) (*model.ShowMessageResult, error)
	SetStatusBarEntry(ctx context.Context, params *model.StatusBarSetParams) error
	RemoveStatusBarEntry(ctx context.Context, params *model.StatusBarRemoveParams) error
	LogTelemetry(ctx context.Context, params *model.TelemetryLogParams) error

	// Diagnostics related methods.
	ChangeDiagnostics(ctx context.Context, params *model.ChangeDiagnosticsParams) error
	ClearDiagnostics(ctx context.Context, params *model.ClearDiagnosticsParams) error

	// Configuration related methods.
	UpdateConfiguration(ctx context.Context, params *model.UpdateConfigurationParams) error

	// Document related methods.
	TryOpenDocument(ctx context.Context, params *model.TryOpenDocumentParams) error
	TrySaveDocument(ctx context.Context, params *model.DocumentURIParams) error
	TryCloseDocument(ctx context.Context, params *model.DocumentURIParams) error
	TryShowEditor(ctx context.Context, params *model.TryShowEditorParams) (*model.TryShowEditorResult, error)

	// Lifetime and language feature methods.
	NotifyCollected(ctx context.Context, params *model.CollectedParams) error
	Complete(ctx context.Context, params *model.CompletionRequestParams) (*model.CompletionList, error)
	ResolveCompletion(ctx context.Context, params *model.ResolveCompletionItemParams) (*model.CompletionItem, error)

	// Extension activation.
	ActivateByEvent(ctx context.Context, event string) error

	// Custom methods for use within this service.
	RequestFullShutdown(ctx context.Context) error
	InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	EndSession(ctx context.Context, uuid uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Shutdowner fx.Shutdowner
	Sessions   session.Repository
	ExtGateway extclient.Gateway
	Registry   *proxy.Registry
	Allocator  *handles.Allocator
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Config     config.Provider

	DocSync    docsync.Controller
	ConfigSync configsync.Controller
	FileEvents fileevents.Controller

	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
	FS             fs.HostFS
}

// sessionState holds the host-side capability bindings for one connected
// extension process pair.
type sessionState struct {
	proxyCtx    *proxy.Context
	commands    *commandsCapability
	output      *outputCapability
	diagnostics *diagnosticsCapability
	statusBar   *statusBarCapability
	completions *completionsCapability

	mu        sync.Mutex
	activated map[string]bool

	// Cached completion parent handles in arrival order. Oldest sets are
	// evicted first once the cache is over capacity.
	completionParents []handles.Handle
}

type controller struct {
	sessions   session.Repository
	extGateway extclient.Gateway
	registry   *proxy.Registry
	allocator  *handles.Allocator
	logger     *zap.SugaredLogger
	stats      tally.Scope
	shutdowner fx.Shutdowner
	docSync    docsync.Controller
	configSync configsync.Controller
	fileEvents fileevents.Controller

	states   map[uuid.UUID]*sessionState
	statesMu sync.RWMutex

	builtins   map[string]BuiltinCommand
	builtinsMu sync.Mutex

	// fullShutdown and idleTimer are guarded by idleTimerMu.
	fullShutdown       bool
	idleTimer          *time.Timer
	idleTimerMu        sync.Mutex
	idleTimeoutMinutes time.Duration

	outputWriterParams logfilewriter.Params
	outputWriter       io.Writer
	outputWriterMu     sync.Mutex
}

// New constructs a new top-level controller for the service.
func New(p Params) (Controller, error) {
	ctx := context.Background()

	var timeoutMinutesRaw int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&timeoutMinutesRaw); err != nil || timeoutMinutesRaw == 0 {
		return nil, fmt.Errorf("unable to get idle timeout from config: %w", err)
	}

	c := &controller{
		sessions:   p.Sessions,
		extGateway: p.ExtGateway,
		registry:   p.Registry,
		allocator:  p.Allocator,
		logger:     p.Logger,
		stats:      p.Stats.SubScope("host_service"),
		shutdowner: p.Shutdowner,
		docSync:    p.DocSync,
		configSync: p.ConfigSync,
		fileEvents: p.FileEvents,

		states:   make(map[uuid.UUID]*sessionState),
		builtins: make(map[string]BuiltinCommand),

		idleTimeoutMinutes: time.Duration(timeoutMinutesRaw) * time.Minute,

		outputWriterParams: logfilewriter.Params{
			Lifecycle:      p.Lifecycle,
			ServerInfoFile: p.ServerInfoFile,
			FS:             p.FS,
		},
	}
	c.refreshIdleTimer(ctx)

	return c, nil
}

// getState returns the capability state for the session in the given context.
func (c *controller) getState(ctx context.Context) (*sessionState, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf(_errSessionFromContext, err)
	}

	c.statesMu.RLock()
	defer c.statesMu.RUnlock()
	state, ok := c.states[s.UUID]
	if !ok {
		return nil, &errors.UUIDNotFoundError{UUID: s.UUID}
	}
	return state, nil
}
