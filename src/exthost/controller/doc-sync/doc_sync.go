package docsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	extclient "github.com/nimbus-ide/exthost/src/exthost/gateway/extension-client"
	exthosterrors "github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/nimbus-ide/exthost/src/exthost/repository/session"
	"github.com/uber-go/tally"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey        = "doc-sync"
	_maxFileSizeKey = "maxFileSizeBytes"
)

// Controller maintains the host-side view of open documents and editors for
// each session and keeps the connected extension process's shadow coherent by
// broadcasting minimal deltas and incremental content changes.
type Controller interface {
	// InitSession starts tracking documents and editors for the session in the given context.
	InitSession(ctx context.Context) error
	// EndSession drops all tracked state for the given session.
	EndSession(ctx context.Context, uuid uuid.UUID) error

	// OpenDocument adds a document to the session's view.
	OpenDocument(ctx context.Context, doc model.DocumentDescriptor) error
	// ChangeDocument replaces a document's text, bumping its version and
	// pushing the minimal content changes to the extension process.
	ChangeDocument(ctx context.Context, id uri.URI, newText string) error
	// SaveDocument marks a document clean, reconciling its text with the saved contents.
	SaveDocument(ctx context.Context, id uri.URI, text string) error
	// CloseDocument removes a document and any editors showing it.
	CloseDocument(ctx context.Context, id uri.URI) error

	// ShowEditor adds or replaces an editor in the session's view.
	ShowEditor(ctx context.Context, editor model.EditorDescriptor) error
	// CloseEditor removes an editor.
	CloseEditor(ctx context.Context, id string) error
	// SetActiveEditor points the active editor at the given id, or clears it when empty.
	SetActiveEditor(ctx context.Context, id string) error

	// GetDocument returns the current descriptor for a tracked document.
	GetDocument(ctx context.Context, id uri.URI) (model.DocumentDescriptor, error)
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Sessions   session.Repository
	ExtGateway extclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Config     config.Provider
}

type sessionView struct {
	state    view
	producer *Producer
	mu       sync.Mutex
}

type controller struct {
	sessions         session.Repository
	extGateway       extclient.Gateway
	logger           *zap.SugaredLogger
	views            map[uuid.UUID]*sessionView
	viewsMu          sync.RWMutex
	stats            tally.Scope
	maxFileSizeBytes int64
}

// New creates a new controller for document and editor sync.
func New(p Params) Controller {
	var maxFileSizeBytes int64
	if err := p.Config.Get(_maxFileSizeKey).Populate(&maxFileSizeBytes); err != nil {
		panic(fmt.Errorf("unable to get maximum file size from config: %w", err))
	}
	if maxFileSizeBytes == 0 {
		panic(fmt.Errorf("missing field %q in config", _maxFileSizeKey))
	}

	c := &controller{
		sessions:         p.Sessions,
		extGateway:       p.ExtGateway,
		logger:           p.Logger.With("controller", _nameKey),
		views:            make(map[uuid.UUID]*sessionView),
		stats:            p.Stats.SubScope("doc_sync"),
		maxFileSizeBytes: maxFileSizeBytes,
	}
	defer c.updateMetrics()
	return c
}

// InitSession adds an entry to keep track of this session's documents and editors.
func (c *controller) InitSession(ctx context.Context) error {
	defer c.updateMetrics()
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}

	c.viewsMu.Lock()
	defer c.viewsMu.Unlock()
	c.views[s.UUID] = &sessionView{
		state:    newView(),
		producer: NewProducer(),
	}
	return nil
}

// EndSession removes this session's documents and editors.
func (c *controller) EndSession(ctx context.Context, uuid uuid.UUID) error {
	defer c.updateMetrics()
	c.viewsMu.Lock()
	defer c.viewsMu.Unlock()
	delete(c.views, uuid)
	return nil
}

func (c *controller) OpenDocument(ctx context.Context, doc model.DocumentDescriptor) error {
	defer c.updateMetrics()

	if err := c.validateSize(doc.Text); err != nil {
		// Oversized documents are expected occasionally. Log a warning which can be used to monitor and adjust the threshold.
		c.logger.Warnf("unable to track open document %q: %v", doc.URI, err)
		return err
	}

	return c.mutate(ctx, func(v *view) error {
		v.documents[doc.URI] = doc
		return nil
	})
}

func (c *controller) ChangeDocument(ctx context.Context, id uri.URI, newText string) error {
	sv, err := c.getSessionView(ctx)
	if err != nil {
		return err
	}

	sv.mu.Lock()
	doc, ok := sv.state.documents[id]
	if !ok {
		sv.mu.Unlock()
		return &exthosterrors.DocumentNotFoundError{URI: id}
	}
	if doc.Text == newText {
		sv.mu.Unlock()
		return nil
	}

	changes := mapper.ContentChanges(doc.Text, newText)
	doc.Text = newText
	doc.Version++
	doc.Dirty = true
	sv.state.documents[id] = doc
	// The shadow receives this change as a model-changed event, so record the
	// updated descriptor as broadcast to keep later deltas from re-sending the
	// full text.
	sv.producer.lastBroadcast.documents[id] = doc
	event := &model.ModelChangedEvent{
		URI:     id,
		Version: doc.Version,
		Changes: changes,
		Dirty:   true,
	}
	sv.mu.Unlock()

	// Content changes ride their own notification rather than the delta
	// channel. Same-direction messages are delivered in order, so the shadow
	// sees the document before any of its changes.
	if err := c.extGateway.AcceptModelChanged(ctx, event); err != nil {
		c.logger.Errorf("pushing model change for %q: %v", id, err)
	}
	c.stats.Counter("model_changes").Inc(1)
	return nil
}

func (c *controller) SaveDocument(ctx context.Context, id uri.URI, text string) error {
	return c.mutate(ctx, func(v *view) error {
		doc, ok := v.documents[id]
		if !ok {
			return &exthosterrors.DocumentNotFoundError{URI: id}
		}
		// Text should already match from prior changes, but reconcile in case something got out of sync.
		doc.Text = text
		doc.Dirty = false
		v.documents[id] = doc
		return nil
	})
}

func (c *controller) CloseDocument(ctx context.Context, id uri.URI) error {
	defer c.updateMetrics()
	return c.mutate(ctx, func(v *view) error {
		if _, ok := v.documents[id]; !ok {
			return &exthosterrors.DocumentNotFoundError{URI: id}
		}
		delete(v.documents, id)
		for editorID, editor := range v.editors {
			if editor.DocumentURI != id {
				continue
			}
			delete(v.editors, editorID)
			if v.active != nil && *v.active == editorID {
				v.active = nil
			}
		}
		return nil
	})
}

func (c *controller) ShowEditor(ctx context.Context, editor model.EditorDescriptor) error {
	return c.mutate(ctx, func(v *view) error {
		if _, ok := v.documents[editor.DocumentURI]; !ok {
			return &exthosterrors.DocumentNotFoundError{URI: editor.DocumentURI}
		}
		v.editors[editor.ID] = editor
		return nil
	})
}

func (c *controller) CloseEditor(ctx context.Context, id string) error {
	return c.mutate(ctx, func(v *view) error {
		if _, ok := v.editors[id]; !ok {
			return &exthosterrors.EditorNotFoundError{ID: id}
		}
		delete(v.editors, id)
		if v.active != nil && *v.active == id {
			v.active = nil
		}
		return nil
	})
}

func (c *controller) SetActiveEditor(ctx context.Context, id string) error {
	return c.mutate(ctx, func(v *view) error {
		if id == "" {
			v.active = nil
			return nil
		}
		if _, ok := v.editors[id]; !ok {
			return &exthosterrors.EditorNotFoundError{ID: id}
		}
		v.active = &id
		return nil
	})
}

func (c *controller) GetDocument(ctx context.Context, id uri.URI) (model.DocumentDescriptor, error) {
	sv, err := c.getSessionView(ctx)
	if err != nil {
		return model.DocumentDescriptor{}, err
	}

	sv.mu.Lock()
	defer sv.mu.Unlock()
	doc, ok := sv.state.documents[id]
	if !ok {
		return model.DocumentDescriptor{}, &exthosterrors.DocumentNotFoundError{URI: id}
	}
	return doc, nil
}

// mutate applies fn to the session's view and broadcasts the resulting delta.
func (c *controller) mutate(ctx context.Context, fn func(v *view) error) error {
	sv, err := c.getSessionView(ctx)
	if err != nil {
		return err
	}

	sv.mu.Lock()
	if err := fn(&sv.state); err != nil {
		sv.mu.Unlock()
		return err
	}
	delta := sv.producer.Diff(sv.state)
	sv.mu.Unlock()

	if delta == nil {
		return nil
	}

	if err := c.extGateway.AcceptDocumentsAndEditorsDelta(ctx, delta); err != nil {
		c.logger.Errorf("pushing documents and editors delta: %v", err)
	}
	c.stats.Counter("deltas").Inc(1)
	return nil
}

func (c *controller) getSessionView(ctx context.Context) (*sessionView, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c.viewsMu.RLock()
	defer c.viewsMu.RUnlock()
	sv, ok := c.views[s.UUID]
	if !ok {
		return nil, &exthosterrors.UUIDNotFoundError{UUID: s.UUID}
	}
	return sv, nil
}

func (c *controller) updateMetrics() {
	c.viewsMu.RLock()
	defer c.viewsMu.RUnlock()

	openDocs := 0
	openBytes := 0
	for _, sv := range c.views {
		sv.mu.Lock()
		openDocs += len(sv.state.documents)
		for _, doc := range sv.state.documents {
			openBytes += len([]byte(doc.Text))
		}
		sv.mu.Unlock()
	}
	c.stats.Gauge("open_docs").Update(float64(openDocs))
	c.stats.Gauge("open_bytes").Update(float64(openBytes))
}

func (c *controller) validateSize(text string) error {
	if c.maxFileSizeBytes == 0 {
		return fmt.Errorf("max file size is not set")
	}

	size := int64(len([]byte(text)))
	if size > c.maxFileSizeBytes {
		return &exthosterrors.DocumentSizeLimitError{Size: size}
	}
	return nil
}
