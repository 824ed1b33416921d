package hostservice

import (
	"context"
	"testing"

	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
)

func TestTryOpenDocument(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	target := uri.File("/workspace/main.go")

	t.Run("success", func(t *testing.T) {
		m.docSync.EXPECT().OpenDocument(gomock.Eq(ctx), gomock.Eq(model.DocumentDescriptor{
			URI:        target,
			LanguageID: "go",
			Version:    1,
			Text:       "package main",
			EOL:        "\n",
		})).Return(nil)

		require.NoError(t, c.TryOpenDocument(ctx, &model.TryOpenDocumentParams{
			URI:        target,
			LanguageID: "go",
			Text:       "package main",
		}))
	})

	t.Run("activates language extensions first", func(t *testing.T) {
		m.session.Init = &model.InitData{
			Extensions: []model.ExtensionDescription{
				{ID: "ext.gopls", ActivationEvents: []string{"onLanguage:go"}},
			},
		}

		gomock.InOrder(
			m.gateway.EXPECT().ActivateExtension(gomock.Eq(ctx), gomock.Eq(&model.ActivateExtensionParams{
				ExtensionID: "ext.gopls",
				Reason:      "language",
			})).Return(nil),
			m.docSync.EXPECT().OpenDocument(gomock.Eq(ctx), gomock.Any()).Return(nil),
		)

		require.NoError(t, c.TryOpenDocument(ctx, &model.TryOpenDocumentParams{
			URI:        uri.File("/workspace/other.go"),
			LanguageID: "go",
		}))
	})

	t.Run("open failure surfaces", func(t *testing.T) {
		m.docSync.EXPECT().OpenDocument(gomock.Eq(ctx), gomock.Any()).Return(assert.AnError)
		err := c.TryOpenDocument(ctx, &model.TryOpenDocumentParams{URI: target, LanguageID: "go"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestTrySaveDocument(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	target := uri.File("/workspace/main.go")

	t.Run("success", func(t *testing.T) {
		m.docSync.EXPECT().GetDocument(gomock.Eq(ctx), gomock.Eq(target)).
			Return(model.DocumentDescriptor{URI: target, Text: "package main"}, nil)
		m.docSync.EXPECT().SaveDocument(gomock.Eq(ctx), gomock.Eq(target), gomock.Eq("package main")).Return(nil)

		require.NoError(t, c.TrySaveDocument(ctx, &model.DocumentURIParams{URI: target}))
	})

	t.Run("unknown document", func(t *testing.T) {
		m.docSync.EXPECT().GetDocument(gomock.Eq(ctx), gomock.Eq(target)).
			Return(model.DocumentDescriptor{}, assert.AnError)

		err := c.TrySaveDocument(ctx, &model.DocumentURIParams{URI: target})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestTryCloseDocument(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	target := uri.File("/workspace/main.go")
	m.docSync.EXPECT().CloseDocument(gomock.Eq(ctx), gomock.Eq(target)).Return(nil)

	require.NoError(t, c.TryCloseDocument(ctx, &model.DocumentURIParams{URI: target}))
}

func TestTryShowEditor(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	target := uri.File("/workspace/main.go")

	t.Run("without focus", func(t *testing.T) {
		m.docSync.EXPECT().GetDocument(gomock.Eq(ctx), gomock.Eq(target)).
			Return(model.DocumentDescriptor{URI: target}, nil)
		m.docSync.EXPECT().ShowEditor(gomock.Eq(ctx), gomock.Any()).Return(nil)

		result, err := c.TryShowEditor(ctx, &model.TryShowEditorParams{URI: target})
		require.NoError(t, err)
		assert.NotEmpty(t, result.EditorID)
	})

	t.Run("with focus", func(t *testing.T) {
		m.docSync.EXPECT().GetDocument(gomock.Eq(ctx), gomock.Eq(target)).
			Return(model.DocumentDescriptor{URI: target}, nil)

		var shownID string
		m.docSync.EXPECT().ShowEditor(gomock.Eq(ctx), gomock.Any()).DoAndReturn(
			func(_ context.Context, editor model.EditorDescriptor) error {
				shownID = editor.ID
				return nil
			})
		m.docSync.EXPECT().SetActiveEditor(gomock.Eq(ctx), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				assert.Equal(t, shownID, id)
				return nil
			})

		result, err := c.TryShowEditor(ctx, &model.TryShowEditorParams{URI: target, TakeFocus: true})
		require.NoError(t, err)
		assert.Equal(t, shownID, result.EditorID)
	})

	t.Run("editor ids are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 3; i++ {
			m.docSync.EXPECT().GetDocument(gomock.Eq(ctx), gomock.Eq(target)).
				Return(model.DocumentDescriptor{URI: target}, nil)
			m.docSync.EXPECT().ShowEditor(gomock.Eq(ctx), gomock.Any()).Return(nil)

			result, err := c.TryShowEditor(ctx, &model.TryShowEditorParams{URI: target})
			require.NoError(t, err)
			assert.False(t, seen[result.EditorID])
			seen[result.EditorID] = true
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		m.docSync.EXPECT().GetDocument(gomock.Eq(ctx), gomock.Eq(target)).
			Return(model.DocumentDescriptor{}, assert.AnError)

		_, err := c.TryShowEditor(ctx, &model.TryShowEditorParams{URI: target})
		assert.ErrorIs(t, err, assert.AnError)
	})
}
