package hostservice

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/uuid"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/internal/lifetime"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/jsonrpc2"
)

// Initialize stores the bootstrap payload for a new connection, binds the
// session's capability instances, and seeds the configuration snapshot.
func (c *controller) Initialize(ctx context.Context, params *model.InitData) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf(_errSessionFromContext, err)
	}

	s.Init = params
	if params.Workspace != nil && len(params.Workspace.Folders) > 0 {
		s.WorkspaceRoot = params.Workspace.Folders[0].URI
	}
	if err := c.sessions.Set(ctx, s); err != nil {
		return fmt.Errorf("setting updated session state: %w", err)
	}

	if err := c.bindSessionCapabilities(ctx, s.UUID); err != nil {
		return fmt.Errorf("binding session capabilities: %w", err)
	}

	if err := c.docSync.InitSession(ctx); err != nil {
		return fmt.Errorf("initializing document sync: %w", err)
	}

	if len(params.Configuration) > 0 {
		if err := c.configSync.Replace(ctx, params.Configuration); err != nil {
			return fmt.Errorf("seeding configuration snapshot: %w", err)
		}
	}

	if err := c.fileEvents.WatchSession(ctx); err != nil {
		c.logger.Errorf("watching workspace for session %s: %v", s.UUID, err)
	}

	c.stats.Counter("sessions_initialized").Inc(1)
	return nil
}

// Initialized handles any actions that need to occur immediately after
// initialization: extensions with a wildcard activation event start now.
func (c *controller) Initialized(ctx context.Context) error {
	return c.ActivateByEvent(ctx, "*")
}

// Shutdown is sent just before Exit to indicate that the session will exit.
func (c *controller) Shutdown(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf(_errSessionFromContext, err)
	}

	c.statesMu.RLock()
	state, ok := c.states[s.UUID]
	c.statesMu.RUnlock()
	if !ok {
		return nil
	}

	if err := state.proxyCtx.Dispose(ctx); err != nil {
		c.logger.Errorf("disposing session capabilities: %v", err)
	}
	return nil
}

// Exit will be used to either clean up from an individual connection, or shutdown the whole server.
func (c *controller) Exit(ctx context.Context) error {
	c.idleTimerMu.Lock()
	if c.fullShutdown {
		// Zero out the timer to trigger immediate shutdown.
		c.idleTimer.Reset(0)
		c.idleTimerMu.Unlock()
		return nil
	}
	c.idleTimerMu.Unlock()

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("error during session exit: %w", err)
	}

	return c.EndSession(ctx, s.UUID)
}

// RequestFullShutdown will set the controller to treat subsequent Shutdown and Exit requests as requests to exit the entire process.
func (c *controller) RequestFullShutdown(ctx context.Context) error {
	c.idleTimerMu.Lock()
	c.fullShutdown = true
	c.idleTimerMu.Unlock()

	return nil
}

// InitSession creates a new empty session and returns its UUID.
func (c *controller) InitSession(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	session := mapper.UUIDToSession(id, conn)
	if err := c.extGateway.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}

	if err := c.sessions.Set(ctx, session); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// EndSession includes any cleanup at the end of the session, during or after the last JSON-RPC request.
// Capability disposal releases every handle the session issued or cached; the
// lifetime tracker flushes its final collection notice before the connection
// is deregistered.
func (c *controller) EndSession(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	c.statesMu.Lock()
	state, ok := c.states[id]
	delete(c.states, id)
	c.statesMu.Unlock()

	if ok {
		sessionCtx := mapper.ContextWithSessionUUID(ctx, id)
		if err := state.proxyCtx.Dispose(sessionCtx); err != nil {
			c.logger.Errorf("disposing session capabilities: %v", err)
		}
		if err := c.docSync.EndSession(sessionCtx, id); err != nil {
			c.logger.Errorf("ending document sync session: %v", err)
		}
		if err := c.fileEvents.UnwatchSession(sessionCtx, id); err != nil {
			c.logger.Errorf("unwatching workspace: %v", err)
		}
	}

	if err := c.extGateway.DeregisterClient(ctx, id); err != nil {
		c.logger.Error(err)
	}

	return c.sessions.Delete(ctx, id)
}

// bindSessionCapabilities installs the host-addressable capability instances
// for one session into a fresh binding table.
func (c *controller) bindSessionCapabilities(ctx context.Context, id uuid.UUID) error {
	proxyCtx := proxy.NewContext(c.registry)
	tracker := lifetime.NewTracker(func(ctx context.Context, dropped []handles.Handle) error {
		collected := make([]int64, len(dropped))
		for i, h := range dropped {
			collected[i] = int64(h)
		}
		return c.extGateway.AcceptCollectedHandles(ctx, &model.CollectedParams{Handles: collected})
	}, c.logger, c.stats.SubScope("tracker"))

	state := &sessionState{
		proxyCtx:    proxyCtx,
		commands:    newCommandsCapability(),
		output:      newOutputCapability(c.allocator, c.stats),
		diagnostics: newDiagnosticsCapability(),
		statusBar:   newStatusBarCapability(),
		completions: newCompletionsCapability(tracker),
		activated:   make(map[string]bool),
	}

	bindings := []struct {
		id       proxy.Identifier
		instance interface{}
	}{
		{proxy.HostCommands, state.commands},
		{proxy.HostOutput, state.output},
		{proxy.HostDiagnostics, state.diagnostics},
		{proxy.HostStatusBar, state.statusBar},
		{proxy.HostLanguageFeatures, state.completions},
	}
	for _, b := range bindings {
		if err := proxyCtx.Bind(b.id, b.instance); err != nil {
			return err
		}
	}

	c.statesMu.Lock()
	defer c.statesMu.Unlock()
	c.states[id] = state
	return nil
}

// refreshIdleTimer ensures that the service shuts down after a defined inactivity period with no connections.
func (c *controller) refreshIdleTimer(ctx context.Context) error {
	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	// First call initializes new timer and leaves it running prior to first connection.
	if c.idleTimer == nil {
		c.idleTimer = time.NewTimer(c.idleTimeoutMinutes)
		go func() {
			<-c.idleTimer.C
			c.logger.Info("Shutdown signal received.")
			if err := c.shutdowner.Shutdown(); err != nil {
				os.Exit(1)
			}
		}()
		return nil
	}

	// Subsequent calls stop the timer and reset it only if no connections are active.
	currentSessions, err := c.sessions.SessionCount(ctx)
	if err != nil {
		return fmt.Errorf("error resetting timeout: %w", err)
	}

	if !c.idleTimer.Stop() {
		select {
		case <-c.idleTimer.C:
		default:
		}
	}
	if currentSessions == 0 {
		c.idleTimer.Reset(c.idleTimeoutMinutes)
	}
	return nil
}
