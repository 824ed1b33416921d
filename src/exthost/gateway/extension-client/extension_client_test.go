package extensionclient

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/nimbus-ide/exthost/idl/mock/jsonrpc2mock"
	"github.com/nimbus-ide/exthost/src/exthost/entity"
	"github.com/nimbus-ide/exthost/src/exthost/factory"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/uri"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRegisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	g := gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      zap.NewNop(),
	}

	for i := 0; i < 10; i++ {
		id := factory.UUID()
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		err := g.RegisterClient(ctx, id, &conn)
		assert.NoError(t, err)
	}

	assert.Len(t, g.connections, 10)
}

func TestDeregisterClient(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	g := gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      zap.NewNop(),
	}

	// Set up 10 sample connections.
	for i := 0; i < 10; i++ {
		mockConn := jsonrpc2mock.NewMockConn(ctrl)
		var conn jsonrpc2.Conn = mockConn
		err := g.RegisterClient(ctx, factory.UUID(), &conn)
		require.NoError(t, err)
	}

	for key := range g.connections {
		assert.NotNil(t, g.connections[key])
		err := g.DeregisterClient(ctx, key)
		assert.NoError(t, err)
		assert.Nil(t, g.connections[key])
	}
	assert.Len(t, g.connections, 0)
}

func TestAcceptDocumentsAndEditorsDelta(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	doc := factory.DocumentDescriptor(1)
	delta := &model.DocumentsAndEditorsDelta{
		AddedDocuments: []model.DocumentDescriptor{doc},
	}

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptDocumentsAndEditorsDelta), gomock.Eq(delta)).Return(nil)
		err := g.AcceptDocumentsAndEditorsDelta(ctx, delta)
		assert.NoError(t, err)
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptDocumentsAndEditorsDelta), gomock.Eq(delta)).Return(errors.New("error"))
		err := g.AcceptDocumentsAndEditorsDelta(ctx, delta)
		assert.Error(t, err)
	})
	t.Run("invalid context", func(t *testing.T) {
		ctx := context.Background()
		err := g.AcceptDocumentsAndEditorsDelta(ctx, delta)
		assert.Error(t, err)
	})
	t.Run("client not found", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, factory.UUID())
		err := g.AcceptDocumentsAndEditorsDelta(ctx, delta)
		assert.Error(t, err)
	})
}

func TestAcceptModelChanged(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	event := &model.ModelChangedEvent{
		URI:     uri.File("/workspace/sample-1.go"),
		Version: 2,
		Changes: []model.ContentChange{{RangeOffset: 0, RangeLength: 0, Text: "x"}},
	}

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptModelChanged), gomock.Eq(event)).Return(nil)
		err := g.AcceptModelChanged(ctx, event)
		assert.NoError(t, err)
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptModelChanged), gomock.Eq(event)).Return(errors.New("error"))
		err := g.AcceptModelChanged(ctx, event)
		assert.Error(t, err)
	})
}

func TestAcceptConfigurationChanged(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	delta := &model.ConfigurationDelta{
		Contents:    []byte(`{"editor":{"fontSize":14}}`),
		ChangedKeys: []string{"editor.fontSize"},
	}

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptConfigurationChanged), gomock.Eq(delta)).Return(nil)
		err := g.AcceptConfigurationChanged(ctx, delta)
		assert.NoError(t, err)
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptConfigurationChanged), gomock.Eq(delta)).Return(errors.New("error"))
		err := g.AcceptConfigurationChanged(ctx, delta)
		assert.Error(t, err)
	})
}

func TestAcceptFileEvents(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	events := &model.FileEventsParams{}

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptFileEvents), gomock.Eq(events)).Return(nil)
		err := g.AcceptFileEvents(ctx, events)
		assert.NoError(t, err)
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptFileEvents), gomock.Eq(events)).Return(errors.New("error"))
		err := g.AcceptFileEvents(ctx, events)
		assert.Error(t, err)
	})
}

func TestAcceptCollectedHandles(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	collected := &model.CollectedParams{Handles: []int64{1, 2, 3}}

	t.Run("notification success", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptCollectedHandles), gomock.Eq(collected)).Return(nil)
		err := g.AcceptCollectedHandles(ctx, collected)
		assert.NoError(t, err)
	})
	t.Run("notification failure", func(t *testing.T) {
		mockConn.EXPECT().Notify(gomock.Eq(ctx), gomock.Eq(proxy.MethodAcceptCollectedHandles), gomock.Eq(collected)).Return(errors.New("error"))
		err := g.AcceptCollectedHandles(ctx, collected)
		assert.Error(t, err)
	})
}

func TestActivateExtension(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	params := &model.ActivateExtensionParams{
		ExtensionID: "sample.extension",
		Reason:      string(entity.ActivationReasonStartup),
	}

	t.Run("call success", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodActivateExtension), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), nil)
		err := g.ActivateExtension(ctx, params)
		assert.NoError(t, err)
	})
	t.Run("call failure", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodActivateExtension), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), errors.New("error"))
		err := g.ActivateExtension(ctx, params)
		assert.Error(t, err)
	})
	t.Run("invalid context", func(t *testing.T) {
		ctx := context.Background()
		err := g.ActivateExtension(ctx, params)
		assert.Error(t, err)
	})
	t.Run("client not found", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, factory.UUID())
		err := g.ActivateExtension(ctx, params)
		assert.Error(t, err)
	})
}

func TestExecuteContributedCommand(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	params := &model.ExecuteCommandParams{
		ID: "sample.command",
	}

	t.Run("call success", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodExecuteContributedCommand), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), nil)
		result, err := g.ExecuteContributedCommand(ctx, params)
		assert.NoError(t, err)
		assert.NotNil(t, result)
	})
	t.Run("call failure", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodExecuteContributedCommand), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), errors.New("error"))
		result, err := g.ExecuteContributedCommand(ctx, params)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestProvideCompletionItems(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	params := &model.CompletionRequestParams{
		URI:      uri.File("/workspace/sample-1.go"),
		Position: factory.Range().Start,
	}

	t.Run("call success", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodProvideCompletionItems), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), nil)
		result, err := g.ProvideCompletionItems(ctx, params)
		assert.NoError(t, err)
		assert.NotNil(t, result)
	})
	t.Run("call failure", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodProvideCompletionItems), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), errors.New("error"))
		result, err := g.ProvideCompletionItems(ctx, params)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestResolveCompletionItem(t *testing.T) {
	g, mockConn, ctx := getTestGateway(t)

	params := &model.ResolveCompletionItemParams{
		ParentHandle: 1,
		ID:           2,
	}

	t.Run("call success", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodResolveCompletionItem), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), nil)
		result, err := g.ResolveCompletionItem(ctx, params)
		assert.NoError(t, err)
		assert.NotNil(t, result)
	})
	t.Run("call failure", func(t *testing.T) {
		mockConn.EXPECT().Call(gomock.Eq(ctx), gomock.Eq(proxy.MethodResolveCompletionItem), gomock.Eq(params), gomock.Any()).Return(jsonrpc2.NewNumberID(5), errors.New("error"))
		result, err := g.ResolveCompletionItem(ctx, params)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func getTestGateway(t *testing.T) (Gateway, *jsonrpc2mock.MockConn, context.Context) {
	id := factory.UUID()
	ctx := context.WithValue(context.Background(), entity.SessionContextKey, id)
	ctrl := gomock.NewController(t)

	mockConn := jsonrpc2mock.NewMockConn(ctrl)
	var conn jsonrpc2.Conn = mockConn
	g := New(zap.NewNop())
	g.RegisterClient(ctx, id, &conn)
	return g, mockConn, ctx
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
