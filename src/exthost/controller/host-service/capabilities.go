package hostservice

import (
	"context"
	"strings"
	"sync"

	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/internal/lifetime"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// commandsCapability tracks contributed command registrations for one
// session. The zero id is reserved; duplicate registration fails so a command
// always has exactly one owner.
type commandsCapability struct {
	mu         sync.Mutex
	registered map[string]struct{}
	disposed   bool
}

func newCommandsCapability() *commandsCapability {
	return &commandsCapability{registered: make(map[string]struct{})}
}

func (c *commandsCapability) Register(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return &errors.CapabilityDisposedError{Name: "commands"}
	}
	if _, ok := c.registered[id]; ok {
		return &errors.DuplicateCapabilityError{Name: id}
	}
	c.registered[id] = struct{}{}
	return nil
}

func (c *commandsCapability) Unregister(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.registered, id)
}

func (c *commandsCapability) IsRegistered(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return false
	}
	_, ok := c.registered[id]
	return ok
}

func (c *commandsCapability) Dispose(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.registered = nil
	return nil
}

// outputChannel is the host-owned object behind one output handle.
type outputChannel struct {
	name string
	mu   sync.Mutex
	buf  strings.Builder
}

func (o *outputChannel) append(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf.WriteString(text)
}

func (o *outputChannel) clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf.Reset()
}

func (o *outputChannel) contents() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

// outputCapability issues output channel handles from the host's handle
// space. Released or collected handles stay invalid forever; the allocator
// never reissues them.
type outputCapability struct {
	allocator *handles.Allocator
	store     *lifetime.Store[*outputChannel]

	mu       sync.Mutex
	disposed bool
}

func newOutputCapability(allocator *handles.Allocator, stats tally.Scope) *outputCapability {
	return &outputCapability{
		allocator: allocator,
		store:     lifetime.NewStore[*outputChannel](handles.CategoryOutput, stats),
	}
}

func (c *outputCapability) Create(name string) (handles.Handle, error) {
	if err := c.check(); err != nil {
		return 0, err
	}
	h := c.allocator.Allocate(handles.CategoryOutput)
	if err := c.store.Put(h, &outputChannel{name: name}); err != nil {
		return 0, err
	}
	return h, nil
}

func (c *outputCapability) Append(h handles.Handle, text string) error {
	if err := c.check(); err != nil {
		return err
	}
	channel, err := c.store.Get(h)
	if err != nil {
		return err
	}
	channel.append(text)
	return nil
}

func (c *outputCapability) Clear(h handles.Handle) error {
	if err := c.check(); err != nil {
		return err
	}
	channel, err := c.store.Get(h)
	if err != nil {
		return err
	}
	channel.clear()
	return nil
}

// Release drops one channel. Releasing an already-released handle is a no-op.
func (c *outputCapability) Release(h handles.Handle) {
	c.store.Release(h)
}

func (c *outputCapability) check() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return &errors.CapabilityDisposedError{Name: "output"}
	}
	return nil
}

func (c *outputCapability) Dispose(ctx context.Context) error {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
	c.store.ReleaseAll()
	return nil
}

// diagnosticsCapability stores per-owner diagnostics for one session.
type diagnosticsCapability struct {
	mu       sync.Mutex
	byOwner  map[string]map[uri.URI][]protocol.Diagnostic
	disposed bool
}

func newDiagnosticsCapability() *diagnosticsCapability {
	return &diagnosticsCapability{byOwner: make(map[string]map[uri.URI][]protocol.Diagnostic)}
}

func (c *diagnosticsCapability) ChangeMany(owner string, entries []model.DiagnosticsEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return &errors.CapabilityDisposedError{Name: "diagnostics"}
	}
	docs, ok := c.byOwner[owner]
	if !ok {
		docs = make(map[uri.URI][]protocol.Diagnostic)
		c.byOwner[owner] = docs
	}
	for _, entry := range entries {
		if len(entry.Diagnostics) == 0 {
			delete(docs, entry.URI)
			continue
		}
		docs[entry.URI] = entry.Diagnostics
	}
	return nil
}

func (c *diagnosticsCapability) Clear(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byOwner, owner)
}

// Get returns the diagnostics currently recorded for a document across all owners.
func (c *diagnosticsCapability) Get(id uri.URI) []protocol.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []protocol.Diagnostic
	for _, docs := range c.byOwner {
		result = append(result, docs[id]...)
	}
	return result
}

func (c *diagnosticsCapability) Dispose(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.byOwner = nil
	return nil
}

// statusBarCapability stores status bar entries keyed by extension-supplied
// entry ids.
type statusBarCapability struct {
	mu       sync.Mutex
	entries  map[int64]model.StatusBarSetParams
	disposed bool
}

func newStatusBarCapability() *statusBarCapability {
	return &statusBarCapability{entries: make(map[int64]model.StatusBarSetParams)}
}

func (c *statusBarCapability) Set(params model.StatusBarSetParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return &errors.CapabilityDisposedError{Name: "statusBar"}
	}
	c.entries[params.EntryID] = params
	return nil
}

func (c *statusBarCapability) Remove(entryID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, entryID)
}

func (c *statusBarCapability) Entries() []model.StatusBarSetParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]model.StatusBarSetParams, 0, len(c.entries))
	for _, entry := range c.entries {
		result = append(result, entry)
	}
	return result
}

func (c *statusBarCapability) Dispose(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disposed = true
	c.entries = nil
	return nil
}

// completionsCapability caches extension-issued completion result sets by
// their parent handle. The host holds only weak references: a cached parent
// may be collected by the extension at any time, after which resolution fails
// with a stale handle error.
type completionsCapability struct {
	tracker *lifetime.Tracker

	mu       sync.Mutex
	sets     map[handles.Handle]map[handles.Handle]model.CompletionItem
	disposed bool
}

func newCompletionsCapability(tracker *lifetime.Tracker) *completionsCapability {
	return &completionsCapability{
		tracker: tracker,
		sets:    make(map[handles.Handle]map[handles.Handle]model.CompletionItem),
	}
}

func (c *completionsCapability) Cache(list *model.CompletionList) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return &errors.CapabilityDisposedError{Name: "languageFeatures"}
	}
	items := make(map[handles.Handle]model.CompletionItem, len(list.Items))
	for _, item := range list.Items {
		items[handles.Handle(item.ID)] = item.Item
	}
	c.sets[handles.Handle(list.ParentHandle)] = items
	return nil
}

func (c *completionsCapability) Lookup(parent, id handles.Handle) (model.CompletionItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return model.CompletionItem{}, &errors.CapabilityDisposedError{Name: "languageFeatures"}
	}
	items, ok := c.sets[parent]
	if !ok {
		return model.CompletionItem{}, &errors.StaleHandleError{Handle: int64(parent), Category: string(handles.CategoryCompletionSet)}
	}
	item, ok := items[id]
	if !ok {
		return model.CompletionItem{}, &errors.StaleHandleError{Handle: int64(id), Category: string(handles.CategoryCompletionSet)}
	}
	return item, nil
}

// Evict drops one cached result set, reporting the dropped parent handle to
// the lifetime tracker so the extension can reclaim the real objects.
func (c *completionsCapability) Evict(parent handles.Handle) {
	c.mu.Lock()
	_, ok := c.sets[parent]
	delete(c.sets, parent)
	c.mu.Unlock()

	if ok {
		c.tracker.Drop(parent)
	}
}

func (c *completionsCapability) Dispose(ctx context.Context) error {
	c.mu.Lock()
	parents := make([]handles.Handle, 0, len(c.sets))
	for parent := range c.sets {
		parents = append(parents, parent)
	}
	c.sets = nil
	c.disposed = true
	c.mu.Unlock()

	if len(parents) > 0 {
		c.tracker.Drop(parents...)
	}
	c.tracker.Flush(ctx)
	return nil
}
