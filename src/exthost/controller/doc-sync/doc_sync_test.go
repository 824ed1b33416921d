package docsync

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nimbus-ide/exthost/src/exthost/entity"
	"github.com/nimbus-ide/exthost/src/exthost/factory"
	"github.com/nimbus-ide/exthost/src/exthost/gateway/extension-client/extclientmock"
	"github.com/nimbus-ide/exthost/src/exthost/internal/core"
	exthosterrors "github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/nimbus-ide/exthost/src/exthost/repository/session/repositorymock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	mockConfig, _ := config.NewStaticProvider(map[string]interface{}{
		_maxFileSizeKey: 2000,
	})
	assert.NotPanics(t, func() {
		New(Params{
			Stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
			Config: mockConfig,
			Logger: zap.NewNop().Sugar(),
		})
	})
}

func TestNewMissingMaxFileSize(t *testing.T) {
	mockConfig, _ := config.NewStaticProvider(map[string]interface{}{})
	assert.PanicsWithError(t, fmt.Sprintf("missing field %q in config", _maxFileSizeKey), func() {
		New(Params{
			Stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
			Config: mockConfig,
			Logger: zap.NewNop().Sugar(),
		})
	})
}

func TestNewWithShippedConfig(t *testing.T) {
	t.Setenv("EXTHOST_CONFIG_DIR", "../../config")
	provider, err := core.NewConfig()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		New(Params{
			Stats:  tally.NewTestScope("testing", make(map[string]string, 0)),
			Config: provider,
			Logger: zap.NewNop().Sugar(),
		})
	})
}

func TestInitAndEndSession(t *testing.T) {
	c, _, s, ctx := getTestController(t)

	require.NoError(t, c.InitSession(ctx))
	assert.Len(t, c.views, 1)

	require.NoError(t, c.EndSession(ctx, s.UUID))
	assert.Len(t, c.views, 0)
}

func TestOpenDocument(t *testing.T) {
	c, gateway, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	doc := factory.DocumentDescriptor(1)

	t.Run("success", func(t *testing.T) {
		gateway.EXPECT().AcceptDocumentsAndEditorsDelta(gomock.Eq(ctx), gomock.Any()).DoAndReturn(
			func(_ context.Context, delta *model.DocumentsAndEditorsDelta) error {
				assert.Equal(t, []model.DocumentDescriptor{doc}, delta.AddedDocuments)
				return nil
			})
		require.NoError(t, c.OpenDocument(ctx, doc))
	})

	t.Run("reopening unchanged document produces no delta", func(t *testing.T) {
		require.NoError(t, c.OpenDocument(ctx, doc))
	})

	t.Run("oversized document is rejected", func(t *testing.T) {
		big := factory.DocumentDescriptor(2)
		big.Text = string(make([]byte, 5000))
		err := c.OpenDocument(ctx, big)
		var sizeErr *exthosterrors.DocumentSizeLimitError
		assert.ErrorAs(t, err, &sizeErr)
	})

	t.Run("no session", func(t *testing.T) {
		err := c.OpenDocument(context.Background(), factory.DocumentDescriptor(3))
		assert.Error(t, err)
	})
}

func TestChangeDocument(t *testing.T) {
	c, gateway, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	doc := factory.DocumentDescriptor(1)
	doc.Text = "abc"
	gateway.EXPECT().AcceptDocumentsAndEditorsDelta(gomock.Eq(ctx), gomock.Any()).Return(nil)
	require.NoError(t, c.OpenDocument(ctx, doc))

	t.Run("success", func(t *testing.T) {
		gateway.EXPECT().AcceptModelChanged(gomock.Eq(ctx), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *model.ModelChangedEvent) error {
				assert.Equal(t, doc.URI, event.URI)
				assert.Equal(t, int32(2), event.Version)
				assert.NotEmpty(t, event.Changes)
				assert.True(t, event.Dirty)
				return nil
			})
		require.NoError(t, c.ChangeDocument(ctx, doc.URI, "axc"))

		current, err := c.GetDocument(ctx, doc.URI)
		require.NoError(t, err)
		assert.Equal(t, "axc", current.Text)
		assert.Equal(t, int32(2), current.Version)
		assert.True(t, current.Dirty)
	})

	t.Run("no-op change produces no notification", func(t *testing.T) {
		require.NoError(t, c.ChangeDocument(ctx, doc.URI, "axc"))
	})

	t.Run("push failure does not fail the caller", func(t *testing.T) {
		gateway.EXPECT().AcceptModelChanged(gomock.Eq(ctx), gomock.Any()).Return(errors.New("error"))
		require.NoError(t, c.ChangeDocument(ctx, doc.URI, "axcd"))
	})

	t.Run("unknown document", func(t *testing.T) {
		err := c.ChangeDocument(ctx, factory.DocumentDescriptor(9).URI, "text")
		var notFound *exthosterrors.DocumentNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestSaveDocument(t *testing.T) {
	c, gateway, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	doc := factory.DocumentDescriptor(1)
	gateway.EXPECT().AcceptDocumentsAndEditorsDelta(gomock.Eq(ctx), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, c.OpenDocument(ctx, doc))
	require.NoError(t, c.ChangeDocument(ctx, doc.URI, "saved contents"))

	require.NoError(t, c.SaveDocument(ctx, doc.URI, "saved contents"))
	current, err := c.GetDocument(ctx, doc.URI)
	require.NoError(t, err)
	assert.False(t, current.Dirty)
	assert.Equal(t, "saved contents", current.Text)

	err = c.SaveDocument(ctx, factory.DocumentDescriptor(9).URI, "")
	assert.Error(t, err)
}

func TestCloseDocumentClosesEditors(t *testing.T) {
	c, gateway, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	doc := factory.DocumentDescriptor(1)
	editor := factory.EditorDescriptor(1)
	gateway.EXPECT().AcceptDocumentsAndEditorsDelta(gomock.Eq(ctx), gomock.Any()).Return(nil).Times(3)
	require.NoError(t, c.OpenDocument(ctx, doc))
	require.NoError(t, c.ShowEditor(ctx, editor))
	require.NoError(t, c.SetActiveEditor(ctx, editor.ID))

	gateway.EXPECT().AcceptDocumentsAndEditorsDelta(gomock.Eq(ctx), gomock.Any()).DoAndReturn(
		func(_ context.Context, delta *model.DocumentsAndEditorsDelta) error {
			assert.Equal(t, []string{editor.ID}, delta.RemovedEditors)
			assert.Len(t, delta.RemovedDocuments, 1)
			require.NotNil(t, delta.NewActiveEditor)
			assert.Equal(t, "", *delta.NewActiveEditor)
			return nil
		})
	require.NoError(t, c.CloseDocument(ctx, doc.URI))

	_, err := c.GetDocument(ctx, doc.URI)
	assert.Error(t, err)
}

func TestShowEditorUnknownDocument(t *testing.T) {
	c, _, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	err := c.ShowEditor(ctx, factory.EditorDescriptor(1))
	var notFound *exthosterrors.DocumentNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCloseEditor(t *testing.T) {
	c, gateway, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	doc := factory.DocumentDescriptor(1)
	editor := factory.EditorDescriptor(1)
	gateway.EXPECT().AcceptDocumentsAndEditorsDelta(gomock.Eq(ctx), gomock.Any()).Return(nil).Times(3)
	require.NoError(t, c.OpenDocument(ctx, doc))
	require.NoError(t, c.ShowEditor(ctx, editor))
	require.NoError(t, c.CloseEditor(ctx, editor.ID))

	err := c.CloseEditor(ctx, editor.ID)
	var notFound *exthosterrors.EditorNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestSetActiveEditorUnknown(t *testing.T) {
	c, _, _, ctx := getTestController(t)
	require.NoError(t, c.InitSession(ctx))

	err := c.SetActiveEditor(ctx, "editor-9")
	var notFound *exthosterrors.EditorNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func getTestController(t *testing.T) (*controller, *extclientmock.MockGateway, *entity.Session, context.Context) {
	ctrl := gomock.NewController(t)

	s := &entity.Session{UUID: factory.UUID()}
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, s.UUID)

	sessionRepository := repositorymock.NewMockRepository(ctrl)
	sessionRepository.EXPECT().GetFromContext(gomock.Eq(ctx)).Return(s, nil).AnyTimes()
	sessionRepository.EXPECT().GetFromContext(gomock.Not(gomock.Eq(ctx))).Return(nil, &exthosterrors.NoSessionFoundError{}).AnyTimes()

	gateway := extclientmock.NewMockGateway(ctrl)

	mockConfig, err := config.NewStaticProvider(map[string]interface{}{
		_maxFileSizeKey: 2000,
	})
	require.NoError(t, err)

	c := New(Params{
		Sessions:   sessionRepository,
		ExtGateway: gateway,
		Logger:     zap.NewNop().Sugar(),
		Stats:      tally.NewTestScope("testing", make(map[string]string, 0)),
		Config:     mockConfig,
	})
	return c.(*controller), gateway, s, ctx
}
