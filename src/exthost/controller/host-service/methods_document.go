package hostservice

import (
	"context"
	"fmt"

	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/model"
)

// TryOpenDocument opens a document in the host's tracked set. Extensions with
// a matching onLanguage activation event start before the delta goes out, so
// they observe the open as part of normal synchronization.
func (c *controller) TryOpenDocument(ctx context.Context, params *model.TryOpenDocumentParams) error {
	if err := c.ActivateByEvent(ctx, "onLanguage:"+string(params.LanguageID)); err != nil {
		c.logger.Errorf("activating extensions for language %q: %v", params.LanguageID, err)
	}

	doc := model.DocumentDescriptor{
		URI:        params.URI,
		LanguageID: params.LanguageID,
		Version:    1,
		Text:       params.Text,
		EOL:        "\n",
	}
	if err := c.docSync.OpenDocument(ctx, doc); err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	return nil
}

// TrySaveDocument marks a tracked document as saved with its current text.
func (c *controller) TrySaveDocument(ctx context.Context, params *model.DocumentURIParams) error {
	doc, err := c.docSync.GetDocument(ctx, params.URI)
	if err != nil {
		return err
	}
	return c.docSync.SaveDocument(ctx, params.URI, doc.Text)
}

// TryCloseDocument closes a tracked document along with any editors on it.
func (c *controller) TryCloseDocument(ctx context.Context, params *model.DocumentURIParams) error {
	return c.docSync.CloseDocument(ctx, params.URI)
}

// TryShowEditor opens an editor on an already tracked document and returns
// its host-allocated id. With TakeFocus set the editor also becomes active.
func (c *controller) TryShowEditor(ctx context.Context, params *model.TryShowEditorParams) (*model.TryShowEditorResult, error) {
	if _, err := c.docSync.GetDocument(ctx, params.URI); err != nil {
		return nil, err
	}

	editorID := fmt.Sprintf("editor-%d", c.allocator.Allocate(handles.CategoryEditor))
	editor := model.EditorDescriptor{
		ID:          editorID,
		DocumentURI: params.URI,
	}
	if err := c.docSync.ShowEditor(ctx, editor); err != nil {
		return nil, fmt.Errorf("showing editor: %w", err)
	}

	if params.TakeFocus {
		if err := c.docSync.SetActiveEditor(ctx, editorID); err != nil {
			return nil, fmt.Errorf("focusing editor: %w", err)
		}
	}
	return &model.TryShowEditorResult{EditorID: editorID}, nil
}
