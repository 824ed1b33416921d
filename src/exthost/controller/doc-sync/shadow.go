package docsync

import (
	"fmt"
	"sort"
	"sync"

	exthosterrors "github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/uri"
)

// Shadow mirrors the peer-owned documents and editors collections, kept
// current by applying deltas in the order they arrive. It starts empty and
// converges to the producer's view regardless of how the producer split its
// updates across deltas.
type Shadow struct {
	mu        sync.RWMutex
	documents map[uri.URI]model.DocumentDescriptor
	editors   map[string]model.EditorDescriptor
	active    *string
}

// NewShadow returns an empty Shadow.
func NewShadow() *Shadow {
	return &Shadow{
		documents: make(map[uri.URI]model.DocumentDescriptor),
		editors:   make(map[string]model.EditorDescriptor),
	}
}

// Apply transitions the shadow per the given delta.
// Removing an absent id is a no-op, and adding an existing id replaces it,
// so replaying the same delta leaves the shadow unchanged.
// An added editor whose document is neither already known nor added in the
// same delta is a protocol violation: the shadow may already be inconsistent,
// so the error is fatal to this synchronization session and must not be retried.
func (s *Shadow) Apply(delta *model.DocumentsAndEditorsDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Removals first so that a same-id remove+add lands as a replace.
	for _, id := range delta.RemovedEditors {
		delete(s.editors, id)
		if s.active != nil && *s.active == id {
			s.active = nil
		}
	}
	for _, id := range delta.RemovedDocuments {
		delete(s.documents, id)
	}

	// Documents before editors: an editor may reference a document added in
	// the same delta.
	for _, doc := range delta.AddedDocuments {
		s.documents[doc.URI] = doc
	}
	for _, editor := range delta.AddedEditors {
		if _, ok := s.documents[editor.DocumentURI]; !ok {
			return &exthosterrors.ProtocolViolationError{
				Reason: fmt.Sprintf("editor %q references unknown document %q", editor.ID, editor.DocumentURI),
			}
		}
		s.editors[editor.ID] = editor
	}

	if delta.NewActiveEditor != nil {
		if *delta.NewActiveEditor == "" {
			s.active = nil
		} else {
			if _, ok := s.editors[*delta.NewActiveEditor]; !ok {
				return &exthosterrors.ProtocolViolationError{
					Reason: fmt.Sprintf("active editor %q is not present", *delta.NewActiveEditor),
				}
			}
			id := *delta.NewActiveEditor
			s.active = &id
		}
	}

	return nil
}

// ApplyModelChanged applies incremental content changes to a tracked document.
// Unknown documents fail with DocumentNotFoundError so the caller can decide
// whether the event raced a removal delta or indicates a real fault.
func (s *Shadow) ApplyModelChanged(event *model.ModelChangedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[event.URI]
	if !ok {
		return &exthosterrors.DocumentNotFoundError{URI: event.URI}
	}

	doc.Text = mapper.ApplyContentChanges(doc.Text, event.Changes)
	doc.Version = event.Version
	doc.Dirty = event.Dirty
	s.documents[event.URI] = doc
	return nil
}

// Document returns the tracked descriptor for the given document id.
func (s *Shadow) Document(id uri.URI) (model.DocumentDescriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	return doc, ok
}

// Editor returns the tracked descriptor for the given editor id.
func (s *Shadow) Editor(id string) (model.EditorDescriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	editor, ok := s.editors[id]
	return editor, ok
}

// Documents returns all tracked documents ordered by id.
func (s *Shadow) Documents() []model.DocumentDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.DocumentDescriptor, 0, len(s.documents))
	for _, doc := range s.documents {
		result = append(result, doc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].URI < result[j].URI })
	return result
}

// Editors returns all tracked editors ordered by id.
func (s *Shadow) Editors() []model.EditorDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.EditorDescriptor, 0, len(s.editors))
	for _, editor := range s.editors {
		result = append(result, editor)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ActiveEditor returns the active editor id, or nil if no editor is active.
func (s *Shadow) ActiveEditor() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil
	}
	id := *s.active
	return &id
}
