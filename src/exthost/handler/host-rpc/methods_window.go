package hostrpc

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/mapper"
	"go.lsp.dev/jsonrpc2"
)

// ShowMessage surfaces an extension message and returns the selected action, if any.
func (r *jsonRPCRouter) ShowMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToShowMessageParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.exthost.ShowMessage(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// SetStatusBarEntry upserts a status bar entry keyed by its extension-supplied id.
func (r *jsonRPCRouter) SetStatusBarEntry(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToStatusBarSetParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.SetStatusBarEntry(ctx, params)
	return reply(ctx, nil, err)
}

// RemoveStatusBarEntry removes a status bar entry.
func (r *jsonRPCRouter) RemoveStatusBarEntry(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToStatusBarRemoveParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.RemoveStatusBarEntry(ctx, params)
	return reply(ctx, nil, err)
}

// LogTelemetry records a telemetry event from an extension.
func (r *jsonRPCRouter) LogTelemetry(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToTelemetryLogParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.exthost.LogTelemetry(ctx, params)
	return reply(ctx, nil, err)
}
