package hostrpc

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ChangeDiagnostics replaces diagnostics for a set of documents under one owner.
func (r *jsonRPCRouter) ChangeDiagnostics(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToChangeDiagnosticsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.ChangeDiagnostics(ctx, params)
	return reply(ctx, nil, err)
}

// ClearDiagnostics drops all diagnostics owned by one collection.
func (r *jsonRPCRouter) ClearDiagnostics(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToClearDiagnosticsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.ClearDiagnostics(ctx, params)
	return reply(ctx, nil, err)
}
