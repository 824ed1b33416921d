// Package fileevents watches each session's workspace root and forwards
// batched file change notices to the extension process.
package fileevents

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/uuid"
	extclient "github.com/nimbus-ide/exthost/src/exthost/gateway/extension-client"
	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/nimbus-ide/exthost/src/exthost/repository/session"
	tally "github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "file-events"

// Controller manages workspace file watching for connected sessions.
type Controller interface {
	// WatchSession starts watching the workspace root of the session in the
	// given context. Sessions without a workspace root are skipped.
	WatchSession(ctx context.Context) error
	// UnwatchSession stops watching on behalf of one session.
	UnwatchSession(ctx context.Context, id uuid.UUID) error
}

type controller struct {
	logger     *zap.SugaredLogger
	sessions   session.Repository
	extGateway extclient.Gateway
	stats      tally.Scope

	watcher *fsnotify.Watcher
	mu      sync.RWMutex
	roots   map[uuid.UUID]string
	wg      sync.WaitGroup
}

// Params are the parameters to set up this controller.
type Params struct {
	fx.In

	Logger     *zap.SugaredLogger
	Sessions   session.Repository
	ExtGateway extclient.Gateway
	Stats      tally.Scope
}

// New creates a new file-events controller.
func New(p Params) Controller {
	return &controller{
		logger:     p.Logger,
		sessions:   p.Sessions,
		extGateway: p.ExtGateway,
		stats:      p.Stats.SubScope("file_events"),
		roots:      make(map[uuid.UUID]string),
	}
}

func (c *controller) WatchSession(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting session from context: %w", err)
	}
	if s.WorkspaceRoot == "" {
		return nil
	}
	root := uri.URI(s.WorkspaceRoot).Filename()

	if err := c.ensureWatcher(); err != nil {
		return err
	}
	if err := c.watcher.Add(root); err != nil {
		return fmt.Errorf("watching workspace root %q: %w", root, err)
	}

	c.mu.Lock()
	c.roots[s.UUID] = root
	c.mu.Unlock()
	return nil
}

func (c *controller) UnwatchSession(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	root, ok := c.roots[id]
	delete(c.roots, id)
	stillWatched := false
	for _, other := range c.roots {
		if other == root {
			stillWatched = true
			break
		}
	}
	c.mu.Unlock()

	if !ok || stillWatched || c.watcher == nil {
		return nil
	}
	if err := c.watcher.Remove(root); err != nil {
		c.logger.Warnf("removing watch on %q: %v", root, err)
	}
	return nil
}

// ensureWatcher lazily creates the watcher and starts its consuming goroutine
// on the first watched session.
func (c *controller) ensureWatcher() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file system watcher: %w", err)
	}
	c.watcher = watcher

	go c.watchWorkspaceChanges(context.Background())
	return nil
}

// watchWorkspaceChanges monitors file system events and forwards them to the
// sessions watching the affected workspace.
func (c *controller) watchWorkspaceChanges(ctx context.Context) {
	c.wg.Add(1)
	defer c.wg.Done()

	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			c.consumeWatcherEvents(ctx, c.drainPending(event))
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.logger.Errorf("workspace file watcher error: %v", err)
		case <-ctx.Done():
			return
		}
	}
}

// drainPending collects immediately available events into one batch so a
// burst of changes produces a single notice.
func (c *controller) drainPending(first fsnotify.Event) []fsnotify.Event {
	events := []fsnotify.Event{first}
	for {
		select {
		case event, ok := <-c.watcher.Events:
			if !ok {
				return events
			}
			events = append(events, event)
		default:
			return events
		}
	}
}

func (c *controller) consumeWatcherEvents(ctx context.Context, events []fsnotify.Event) {
	paths := make([]string, 0, len(events))
	changes := make([]protocol.FileEvent, 0, len(events))
	for _, event := range events {
		change, ok := fileChange(event)
		if !ok {
			continue
		}
		paths = append(paths, event.Name)
		changes = append(changes, change)
	}
	if len(changes) == 0 {
		return
	}

	c.mu.RLock()
	targets := make(map[uuid.UUID][]protocol.FileEvent)
	for id, root := range c.roots {
		var batch []protocol.FileEvent
		for i, p := range paths {
			if strings.HasPrefix(p, root) {
				batch = append(batch, changes[i])
			}
		}
		if len(batch) > 0 {
			targets[id] = batch
		}
	}
	c.mu.RUnlock()

	for id, batch := range targets {
		sessionCtx := mapper.ContextWithSessionUUID(ctx, id)
		if err := c.extGateway.AcceptFileEvents(sessionCtx, &model.FileEventsParams{Events: batch}); err != nil {
			c.logger.Errorf("pushing file events: %v", err)
		}
		c.stats.Counter("batches").Inc(1)
	}
}

func fileChange(event fsnotify.Event) (protocol.FileEvent, bool) {
	var changeType protocol.FileChangeType
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		changeType = protocol.FileChangeTypeCreated
	case event.Op&fsnotify.Write == fsnotify.Write:
		changeType = protocol.FileChangeTypeChanged
	case event.Op&fsnotify.Remove == fsnotify.Remove, event.Op&fsnotify.Rename == fsnotify.Rename:
		changeType = protocol.FileChangeTypeDeleted
	default:
		return protocol.FileEvent{}, false
	}
	return protocol.FileEvent{URI: uri.File(event.Name), Type: changeType}, true
}
