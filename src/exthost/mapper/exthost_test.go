package mapper

import (
	"context"
	"testing"

	"github.com/nimbus-ide/exthost/src/exthost/entity"
	"github.com/nimbus-ide/exthost/src/exthost/factory"
	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
)

func TestSessionToModel(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	f := &entity.Session{
		UUID:          factory.UUID(),
		Conn:          &conn,
		WorkspaceRoot: "file:///workspace",
		Init:          &model.InitData{},
	}
	m := SessionToModel(f)
	assert.Equal(t, f.UUID, m.UUID)
	assert.Equal(t, f.Conn, m.Conn)
	assert.Equal(t, f.WorkspaceRoot, m.WorkspaceRoot)
	assert.Equal(t, f.Init, m.Init)
}

func TestModelToSession(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	m := &model.Session{
		UUID:          factory.UUID(),
		Conn:          &conn,
		WorkspaceRoot: "file:///workspace",
		Init:          &model.InitData{},
	}
	f, err := ModelToSession(m)
	assert.NoError(t, err)
	assert.Equal(t, m.UUID, f.UUID)
	assert.Equal(t, m.Conn, f.Conn)
	assert.Equal(t, m.WorkspaceRoot, f.WorkspaceRoot)
	assert.Equal(t, m.Init, f.Init)
}

func TestUUIDToSession(t *testing.T) {
	conn := jsonrpc2.NewConn(nil)
	u := factory.UUID()
	f := UUIDToSession(u, &conn)
	assert.Equal(t, u, f.UUID)
	assert.Equal(t, &conn, f.Conn)
}

func TestContextToSessionUUID(t *testing.T) {
	t.Run("uuid present", func(t *testing.T) {
		u := factory.UUID()
		ctx := context.WithValue(context.Background(), entity.SessionContextKey, u)
		result, err := ContextToSessionUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, u, result)
	})

	t.Run("uuid missing", func(t *testing.T) {
		_, err := ContextToSessionUUID(context.Background())
		var notFound *errors.NoSessionFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestContextWithSessionUUID(t *testing.T) {
	u := factory.UUID()
	ctx := ContextWithSessionUUID(context.Background(), u)
	result, err := ContextToSessionUUID(ctx)
	assert.NoError(t, err)
	assert.Equal(t, u, result)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
