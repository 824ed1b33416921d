package docsync

import (
	"sort"

	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/uri"
)

// view is one side's snapshot of the synchronized collections.
type view struct {
	documents map[uri.URI]model.DocumentDescriptor
	editors   map[string]model.EditorDescriptor
	active    *string
}

func newView() view {
	return view{
		documents: make(map[uri.URI]model.DocumentDescriptor),
		editors:   make(map[string]model.EditorDescriptor),
	}
}

func (v view) clone() view {
	c := newView()
	for id, doc := range v.documents {
		c.documents[id] = doc
	}
	for id, editor := range v.editors {
		c.editors[id] = editor
	}
	if v.active != nil {
		id := *v.active
		c.active = &id
	}
	return c
}

// Producer computes minimal deltas between the last broadcast view and the
// current view by set difference on ids. Consumers apply added documents
// before added editors, so the delta orders them the same way and never adds
// an editor whose document is neither retained nor added alongside it.
type Producer struct {
	lastBroadcast view
}

// NewProducer returns a Producer whose last broadcast view is empty, so the
// first delta it emits carries the full current state.
func NewProducer() *Producer {
	return &Producer{lastBroadcast: newView()}
}

// Diff returns the delta transforming the last broadcast view into the
// current one, or nil when the views already match. The current view is
// recorded as broadcast; the caller must deliver the delta or discard the
// session.
func (p *Producer) Diff(current view) *model.DocumentsAndEditorsDelta {
	delta := model.DocumentsAndEditorsDelta{}

	for id := range p.lastBroadcast.documents {
		if _, ok := current.documents[id]; !ok {
			delta.RemovedDocuments = append(delta.RemovedDocuments, id)
		}
	}
	for id, doc := range current.documents {
		if prev, ok := p.lastBroadcast.documents[id]; !ok || prev != doc {
			delta.AddedDocuments = append(delta.AddedDocuments, doc)
		}
	}

	for id := range p.lastBroadcast.editors {
		if _, ok := current.editors[id]; !ok {
			delta.RemovedEditors = append(delta.RemovedEditors, id)
		}
	}
	for id, editor := range current.editors {
		if prev, ok := p.lastBroadcast.editors[id]; !ok || !editorEqual(prev, editor) {
			delta.AddedEditors = append(delta.AddedEditors, editor)
		}
	}

	if !activeEqual(p.lastBroadcast.active, current.active) {
		if current.active == nil {
			cleared := ""
			delta.NewActiveEditor = &cleared
		} else {
			id := *current.active
			delta.NewActiveEditor = &id
		}
	}

	if delta.IsEmpty() {
		return nil
	}

	sortDelta(&delta)
	p.lastBroadcast = current.clone()
	return &delta
}

// sortDelta orders each delta slice by id. Map iteration order would
// otherwise leak into the wire payload and make broadcasts nondeterministic.
func sortDelta(delta *model.DocumentsAndEditorsDelta) {
	sort.Slice(delta.RemovedDocuments, func(i, j int) bool {
		return delta.RemovedDocuments[i] < delta.RemovedDocuments[j]
	})
	sort.Slice(delta.AddedDocuments, func(i, j int) bool {
		return delta.AddedDocuments[i].URI < delta.AddedDocuments[j].URI
	})
	sort.Strings(delta.RemovedEditors)
	sort.Slice(delta.AddedEditors, func(i, j int) bool {
		return delta.AddedEditors[i].ID < delta.AddedEditors[j].ID
	})
}

func editorEqual(a, b model.EditorDescriptor) bool {
	if a.ID != b.ID || a.DocumentURI != b.DocumentURI || len(a.Selections) != len(b.Selections) {
		return false
	}
	for i := range a.Selections {
		if a.Selections[i] != b.Selections[i] {
			return false
		}
	}
	return true
}

func activeEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
