package configsync

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	extclient "github.com/nimbus-ide/exthost/src/exthost/gateway/extension-client"
	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/nimbus-ide/exthost/src/exthost/repository/session"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "config-sync"

// Controller holds the host's configuration snapshot and pushes deltas to
// connected extension processes whenever values change. ChangedKeys in each
// delta names only leaf paths whose values actually differ.
type Controller interface {
	// Snapshot returns the current configuration contents.
	Snapshot(ctx context.Context) json.RawMessage
	// Update writes one value by key path (for example "editor.fontSize") and
	// broadcasts the resulting delta. Scope optionally restricts the change
	// to a workspace folder.
	Update(ctx context.Context, key string, value json.RawMessage, scope *protocol.WorkspaceFolder) error
	// Replace swaps in a full new snapshot and broadcasts the set of leaf
	// keys whose values differ between the old and new contents.
	Replace(ctx context.Context, contents json.RawMessage) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Sessions   session.Repository
	ExtGateway extclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type controller struct {
	sessions   session.Repository
	extGateway extclient.Gateway
	logger     *zap.SugaredLogger
	stats      tally.Scope

	mu       sync.Mutex
	snapshot json.RawMessage
}

// New creates a new controller for configuration sync.
func New(p Params) Controller {
	return &controller{
		sessions:   p.Sessions,
		extGateway: p.ExtGateway,
		logger:     p.Logger.With("controller", _nameKey),
		stats:      p.Stats.SubScope("config_sync"),
		snapshot:   json.RawMessage(`{}`),
	}
}

func (c *controller) Snapshot(ctx context.Context) json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(json.RawMessage, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

func (c *controller) Update(ctx context.Context, key string, value json.RawMessage, scope *protocol.WorkspaceFolder) error {
	c.mu.Lock()
	prev := gjson.GetBytes(c.snapshot, key)
	if prev.Exists() && prev.Raw == string(value) {
		c.mu.Unlock()
		return nil
	}

	updated, err := sjson.SetRawBytes(c.snapshot, key, value)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("setting configuration key %q: %w", key, err)
	}
	c.snapshot = updated
	delta := &model.ConfigurationDelta{
		Contents:    c.snapshotLocked(),
		ChangedKeys: []string{key},
		Scope:       scope,
	}
	c.mu.Unlock()

	c.broadcast(ctx, delta)
	return nil
}

func (c *controller) Replace(ctx context.Context, contents json.RawMessage) error {
	if !gjson.ValidBytes(contents) {
		return fmt.Errorf("replacement configuration is not valid JSON")
	}

	c.mu.Lock()
	changed := changedLeaves(c.snapshot, contents)
	if len(changed) == 0 {
		c.mu.Unlock()
		return nil
	}
	c.snapshot = append(json.RawMessage(nil), contents...)
	delta := &model.ConfigurationDelta{
		Contents:    c.snapshotLocked(),
		ChangedKeys: changed,
	}
	c.mu.Unlock()

	c.broadcast(ctx, delta)
	return nil
}

// snapshotLocked copies the snapshot; the caller must hold c.mu.
func (c *controller) snapshotLocked() json.RawMessage {
	out := make(json.RawMessage, len(c.snapshot))
	copy(out, c.snapshot)
	return out
}

// broadcast delivers the delta to every connected session. Delivery is
// fire-and-forget per session; failures are logged and never surface to the
// caller that changed the configuration.
func (c *controller) broadcast(ctx context.Context, delta *model.ConfigurationDelta) {
	sessions, err := c.sessions.All(ctx)
	if err != nil {
		c.logger.Errorf("listing sessions for configuration broadcast: %v", err)
		return
	}

	for _, s := range sessions {
		sessionCtx := mapper.ContextWithSessionUUID(ctx, s.UUID)
		if err := c.extGateway.AcceptConfigurationChanged(sessionCtx, delta); err != nil {
			c.logger.Errorf("pushing configuration delta to session %q: %v", s.UUID, err)
		}
	}
	c.stats.Counter("deltas").Inc(1)
}

// changedLeaves returns the leaf key paths whose values differ between the
// two JSON documents, covering leaves present in either side.
func changedLeaves(before, after json.RawMessage) []string {
	seen := make(map[string]struct{})

	beforeLeaves := make(map[string]string)
	collectLeaves("", gjson.ParseBytes(before), beforeLeaves)
	afterLeaves := make(map[string]string)
	collectLeaves("", gjson.ParseBytes(after), afterLeaves)

	for path, raw := range afterLeaves {
		if prev, ok := beforeLeaves[path]; !ok || prev != raw {
			seen[path] = struct{}{}
		}
	}
	for path := range beforeLeaves {
		if _, ok := afterLeaves[path]; !ok {
			seen[path] = struct{}{}
		}
	}

	changed := make([]string, 0, len(seen))
	for path := range seen {
		changed = append(changed, path)
	}
	sort.Strings(changed)
	return changed
}

func collectLeaves(prefix string, value gjson.Result, out map[string]string) {
	if !value.IsObject() {
		out[prefix] = value.Raw
		return
	}
	value.ForEach(func(key, child gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}
		collectLeaves(path, child, out)
		return true
	})
}
