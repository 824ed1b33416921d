package hostservice

import (
	"testing"

	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

func TestChangeDiagnostics(t *testing.T) {
	c, m, ctx := getTestController(t)
	state := bindTestSession(t, c, ctx, m.session)

	target := uri.File("/workspace/main.go")
	warning := protocol.Diagnostic{Message: "unused variable", Severity: protocol.DiagnosticSeverityWarning}

	require.NoError(t, c.ChangeDiagnostics(ctx, &model.ChangeDiagnosticsParams{
		Owner: "linter",
		Entries: []model.DiagnosticsEntry{
			{URI: target, Diagnostics: []protocol.Diagnostic{warning}},
		},
	}))
	assert.Equal(t, []protocol.Diagnostic{warning}, state.diagnostics.Get(target))

	t.Run("owners are independent", func(t *testing.T) {
		parseError := protocol.Diagnostic{Message: "expected }", Severity: protocol.DiagnosticSeverityError}
		require.NoError(t, c.ChangeDiagnostics(ctx, &model.ChangeDiagnosticsParams{
			Owner: "compiler",
			Entries: []model.DiagnosticsEntry{
				{URI: target, Diagnostics: []protocol.Diagnostic{parseError}},
			},
		}))
		assert.Len(t, state.diagnostics.Get(target), 2)
	})

	t.Run("empty entry deletes the document record", func(t *testing.T) {
		require.NoError(t, c.ChangeDiagnostics(ctx, &model.ChangeDiagnosticsParams{
			Owner: "compiler",
			Entries: []model.DiagnosticsEntry{
				{URI: target},
			},
		}))
		assert.Equal(t, []protocol.Diagnostic{warning}, state.diagnostics.Get(target))
	})
}

func TestClearDiagnostics(t *testing.T) {
	c, m, ctx := getTestController(t)
	state := bindTestSession(t, c, ctx, m.session)

	target := uri.File("/workspace/main.go")
	require.NoError(t, c.ChangeDiagnostics(ctx, &model.ChangeDiagnosticsParams{
		Owner: "linter",
		Entries: []model.DiagnosticsEntry{
			{URI: target, Diagnostics: []protocol.Diagnostic{{Message: "sample"}}},
		},
	}))

	require.NoError(t, c.ClearDiagnostics(ctx, &model.ClearDiagnosticsParams{Owner: "linter"}))
	assert.Empty(t, state.diagnostics.Get(target))

	// Clearing an unknown owner is a no-op.
	require.NoError(t, c.ClearDiagnostics(ctx, &model.ClearDiagnosticsParams{Owner: "never-seen"}))
}
