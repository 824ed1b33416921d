package hostservice

import (
	"context"
	"encoding/json"
	"testing"

	exthosterrors "github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterCommand(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	t.Run("success", func(t *testing.T) {
		require.NoError(t, c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.format"}))
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.format"})
		var dup *exthosterrors.DuplicateCapabilityError
		assert.ErrorAs(t, err, &dup)
	})

	t.Run("shadows builtin", func(t *testing.T) {
		require.NoError(t, c.RegisterBuiltinCommand("host.reload", nil))
		err := c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "host.reload"})
		var dup *exthosterrors.DuplicateCapabilityError
		assert.ErrorAs(t, err, &dup)
	})

	t.Run("empty id", func(t *testing.T) {
		assert.Error(t, c.RegisterCommand(ctx, &model.RegisterCommandParams{}))
	})

	t.Run("no session", func(t *testing.T) {
		err := c.RegisterCommand(context.Background(), &model.RegisterCommandParams{ID: "other.command"})
		assert.Error(t, err)
	})
}

func TestUnregisterCommand(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	require.NoError(t, c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.format"}))
	require.NoError(t, c.UnregisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.format"}))

	// The id is free for registration again.
	require.NoError(t, c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.format"}))

	// Unknown ids are a no-op.
	require.NoError(t, c.UnregisterCommand(ctx, &model.RegisterCommandParams{ID: "never.registered"}))
}

func TestExecuteCommand(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	t.Run("builtin", func(t *testing.T) {
		require.NoError(t, c.RegisterBuiltinCommand("host.echo", func(_ context.Context, args []json.RawMessage) (json.RawMessage, error) {
			return args[0], nil
		}))

		result, err := c.ExecuteCommand(ctx, &model.ExecuteCommandParams{
			ID:   "host.echo",
			Args: []json.RawMessage{json.RawMessage(`"hello"`)},
		})
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`"hello"`), result.Value)
	})

	t.Run("builtin failure", func(t *testing.T) {
		require.NoError(t, c.RegisterBuiltinCommand("host.fail", func(_ context.Context, _ []json.RawMessage) (json.RawMessage, error) {
			return nil, assert.AnError
		}))

		_, err := c.ExecuteCommand(ctx, &model.ExecuteCommandParams{ID: "host.fail"})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("contributed", func(t *testing.T) {
		require.NoError(t, c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.run"}))

		params := &model.ExecuteCommandParams{ID: "sample.run"}
		m.gateway.EXPECT().ExecuteContributedCommand(gomock.Eq(ctx), gomock.Eq(params)).
			Return(&model.ExecuteCommandResult{Value: json.RawMessage(`42`)}, nil)

		result, err := c.ExecuteCommand(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`42`), result.Value)
	})

	t.Run("contributed command activates owner", func(t *testing.T) {
		m.session.Init = &model.InitData{
			Extensions: []model.ExtensionDescription{
				{ID: "ext.runner", ActivationEvents: []string{"onCommand:sample.build"}},
			},
		}
		require.NoError(t, c.RegisterCommand(ctx, &model.RegisterCommandParams{ID: "sample.build"}))

		m.gateway.EXPECT().ActivateExtension(gomock.Eq(ctx), gomock.Eq(&model.ActivateExtensionParams{
			ExtensionID: "ext.runner",
			Reason:      "command",
		})).Return(nil)
		m.gateway.EXPECT().ExecuteContributedCommand(gomock.Eq(ctx), gomock.Any()).
			Return(&model.ExecuteCommandResult{}, nil).Times(2)

		_, err := c.ExecuteCommand(ctx, &model.ExecuteCommandParams{ID: "sample.build"})
		require.NoError(t, err)

		// Activation happens at most once per session.
		_, err = c.ExecuteCommand(ctx, &model.ExecuteCommandParams{ID: "sample.build"})
		require.NoError(t, err)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := c.ExecuteCommand(ctx, &model.ExecuteCommandParams{ID: "no.such.command"})
		assert.Error(t, err)
	})
}
