package hostrpc

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"go.lsp.dev/jsonrpc2"
)

// TryOpenDocument opens a document on the host side on behalf of an extension.
func (r *jsonRPCRouter) TryOpenDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTryOpenDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.TryOpenDocument(ctx, params)
	return reply(ctx, nil, err)
}

// TrySaveDocument saves a tracked document.
func (r *jsonRPCRouter) TrySaveDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentURIParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.TrySaveDocument(ctx, params)
	return reply(ctx, nil, err)
}

// TryCloseDocument closes a tracked document.
func (r *jsonRPCRouter) TryCloseDocument(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDocumentURIParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.TryCloseDocument(ctx, params)
	return reply(ctx, nil, err)
}

// TryShowEditor opens an editor on a tracked document and returns the editor id.
func (r *jsonRPCRouter) TryShowEditor(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTryShowEditorParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.exthost.TryShowEditor(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}
