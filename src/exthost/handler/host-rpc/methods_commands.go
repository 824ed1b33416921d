package hostrpc

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"go.lsp.dev/jsonrpc2"
)

// RegisterCommand records a contributed command against the calling session.
func (r *jsonRPCRouter) RegisterCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToRegisterCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.RegisterCommand(ctx, params)
	return reply(ctx, nil, err)
}

// UnregisterCommand removes a previously contributed command.
func (r *jsonRPCRouter) UnregisterCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToRegisterCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.UnregisterCommand(ctx, params)
	return reply(ctx, nil, err)
}

// ExecuteCommand runs a builtin or contributed command and returns its result.
func (r *jsonRPCRouter) ExecuteCommand(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToExecuteCommandParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.exthost.ExecuteCommand(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}
