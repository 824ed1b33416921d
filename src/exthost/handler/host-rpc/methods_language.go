package hostrpc

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"go.lsp.dev/jsonrpc2"
)

// UpdateConfiguration applies a configuration write requested by an extension.
func (r *jsonRPCRouter) UpdateConfiguration(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToUpdateConfigurationParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.UpdateConfiguration(ctx, params)
	return reply(ctx, nil, err)
}

// NotifyCollected releases host-side state for handles collected on the extension side.
func (r *jsonRPCRouter) NotifyCollected(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCollectedParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.NotifyCollected(ctx, params)
	return reply(ctx, nil, err)
}

// Complete requests completion items from the owning extension and returns the identified set.
func (r *jsonRPCRouter) Complete(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToCompletionRequestParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.exthost.Complete(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// ResolveCompletion re-references a cached completion item by its parent handle and id.
func (r *jsonRPCRouter) ResolveCompletion(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToResolveCompletionItemParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.exthost.ResolveCompletion(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}
