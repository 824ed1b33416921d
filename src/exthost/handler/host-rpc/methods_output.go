package hostrpc

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"go.lsp.dev/jsonrpc2"
)

// CreateOutput allocates a named output channel and returns its handle.
func (r *jsonRPCRouter) CreateOutput(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOutputCreateParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.exthost.CreateOutput(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// AppendOutput appends text to an output channel.
func (r *jsonRPCRouter) AppendOutput(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOutputAppendParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.AppendOutput(ctx, params)
	return reply(ctx, nil, err)
}

// ClearOutput discards the buffered contents of an output channel.
func (r *jsonRPCRouter) ClearOutput(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOutputHandleParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.ClearOutput(ctx, params)
	return reply(ctx, nil, err)
}

// DisposeOutput releases an output channel handle.
func (r *jsonRPCRouter) DisposeOutput(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToOutputHandleParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.DisposeOutput(ctx, params)
	return reply(ctx, nil, err)
}
