package hostservice

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestShowMessage(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	t.Run("actions are never selected", func(t *testing.T) {
		result, err := c.ShowMessage(ctx, &model.ShowMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: "indexing complete",
			Actions: []string{"Show Log", "Dismiss"},
		})
		require.NoError(t, err)
		assert.Nil(t, result.Action)
	})

	t.Run("all message types accepted", func(t *testing.T) {
		for _, mt := range []protocol.MessageType{protocol.MessageTypeError, protocol.MessageTypeWarning, protocol.MessageTypeLog} {
			_, err := c.ShowMessage(ctx, &model.ShowMessageParams{Type: mt, Message: "sample"})
			require.NoError(t, err)
		}
	})

	t.Run("no session", func(t *testing.T) {
		_, err := c.ShowMessage(context.Background(), &model.ShowMessageParams{Message: "sample"})
		assert.Error(t, err)
	})
}

func TestStatusBarEntries(t *testing.T) {
	c, m, ctx := getTestController(t)
	state := bindTestSession(t, c, ctx, m.session)

	entry := &model.StatusBarSetParams{EntryID: 7, Text: "3 problems", Tooltip: "Open problems view"}
	require.NoError(t, c.SetStatusBarEntry(ctx, entry))

	// Upsert replaces the existing entry.
	entry.Text = "5 problems"
	require.NoError(t, c.SetStatusBarEntry(ctx, entry))

	entries := state.statusBar.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "5 problems", entries[0].Text)

	require.NoError(t, c.RemoveStatusBarEntry(ctx, &model.StatusBarRemoveParams{EntryID: 7}))
	assert.Len(t, state.statusBar.Entries(), 0)

	// Removing an unknown entry is a no-op.
	require.NoError(t, c.RemoveStatusBarEntry(ctx, &model.StatusBarRemoveParams{EntryID: 99}))
}

func TestLogTelemetry(t *testing.T) {
	c, m, ctx := getTestController(t)
	bindTestSession(t, c, ctx, m.session)

	require.NoError(t, c.LogTelemetry(ctx, &model.TelemetryLogParams{
		EventName: "extension.loaded",
		Data:      json.RawMessage(`{"durationMs":120}`),
	}))

	assert.Error(t, c.LogTelemetry(context.Background(), &model.TelemetryLogParams{EventName: "other"}))
}
