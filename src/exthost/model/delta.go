package model

import (
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// DocumentDescriptor describes one open text document as transmitted across
// the process boundary.
type DocumentDescriptor struct {
	URI        uri.URI                     `json:"uri"`
	LanguageID protocol.LanguageIdentifier `json:"languageId"`
	Version    int32                       `json:"version"`
	Text       string                      `json:"text"`
	EOL        string                      `json:"eol"`
	Dirty      bool                        `json:"dirty"`
}

// EditorDescriptor describes one editor attached to an open document.
type EditorDescriptor struct {
	ID          string           `json:"id"`
	DocumentURI uri.URI          `json:"documentUri"`
	Selections  []protocol.Range `json:"selections,omitempty"`
}

// DocumentsAndEditorsDelta is the incremental synchronization payload for the
// open documents/editors view. An id appearing in both the removed and added
// halves of the same delta is a replace, not a conflict. Added documents are
// ordered before added editors that reference them.
type DocumentsAndEditorsDelta struct {
	RemovedDocuments []uri.URI            `json:"removedDocuments,omitempty"`
	AddedDocuments   []DocumentDescriptor `json:"addedDocuments,omitempty"`
	RemovedEditors   []string             `json:"removedEditors,omitempty"`
	AddedEditors     []EditorDescriptor   `json:"addedEditors,omitempty"`
	NewActiveEditor  *string              `json:"newActiveEditor,omitempty"`
}

// IsEmpty reports whether the delta carries no changes.
func (d *DocumentsAndEditorsDelta) IsEmpty() bool {
	return len(d.RemovedDocuments) == 0 &&
		len(d.AddedDocuments) == 0 &&
		len(d.RemovedEditors) == 0 &&
		len(d.AddedEditors) == 0 &&
		d.NewActiveEditor == nil
}

// ContentChange is one minimal edit within a document, expressed as a byte
// offset span replaced by new text. Range carries the same span in protocol
// positions for consumers that work line-wise.
type ContentChange struct {
	Range       protocol.Range `json:"range"`
	RangeOffset int            `json:"rangeOffset"`
	RangeLength int            `json:"rangeLength"`
	Text        string         `json:"text"`
}

// ModelChangedEvent carries incremental content changes for one document.
// Delivery is ordering-sensitive and relies on FIFO transport per direction.
type ModelChangedEvent struct {
	URI     uri.URI         `json:"uri"`
	Version int32           `json:"version"`
	Changes []ContentChange `json:"changes"`
	Dirty   bool            `json:"dirty"`
}
