package errors

import (
	"fmt"

	"go.lsp.dev/uri"
)

// DocumentNotFoundError indicates that a document is not found.
type DocumentNotFoundError struct {
	URI uri.URI
}

// Error is an implementation of the error interface.
func (n *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("Document %q not found", n.URI)
}

// EditorNotFoundError indicates that an editor is not found.
type EditorNotFoundError struct {
	ID string
}

// Error is an implementation of the error interface.
func (n *EditorNotFoundError) Error() string {
	return fmt.Sprintf("Editor %q not found", n.ID)
}

// DocumentSizeLimitError indicates that a document has exceeded the specified size limit.
type DocumentSizeLimitError struct {
	Size int64
}

// Error is an implementation of the error interface.
func (n *DocumentSizeLimitError) Error() string {
	return fmt.Sprintf("size of %d bytes exceeds permitted limit", n.Size)
}
