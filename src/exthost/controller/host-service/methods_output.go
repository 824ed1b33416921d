package hostservice

import (
	"context"
	"fmt"
	"io"

	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/internal/logfilewriter"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
)

const _outputLogKey = "extension-output"

// CreateOutput allocates a new output channel and returns the handle under
// which it was issued. The handle stays valid until the channel is disposed
// or the session's extension process reports it collected.
func (c *controller) CreateOutput(ctx context.Context, params *model.OutputCreateParams) (*model.OutputCreateResult, error) {
	output, err := c.resolveOutput(ctx)
	if err != nil {
		return nil, err
	}

	h, err := output.Create(params.Name)
	if err != nil {
		return nil, err
	}
	c.stats.Counter("output_channels_created").Inc(1)
	return &model.OutputCreateResult{Handle: int64(h)}, nil
}

// AppendOutput appends text to an output channel by handle.
func (c *controller) AppendOutput(ctx context.Context, params *model.OutputAppendParams) error {
	output, err := c.resolveOutput(ctx)
	if err != nil {
		return err
	}
	if err := output.Append(handles.Handle(params.Handle), params.Text); err != nil {
		return err
	}
	// Mirror appends to the shared output log file so the IDE can tail it.
	if w := c.extensionOutputWriter(); w != nil {
		fmt.Fprintf(w, "[%d] %s", params.Handle, params.Text)
	}
	return nil
}

// ClearOutput discards the accumulated contents of an output channel.
func (c *controller) ClearOutput(ctx context.Context, params *model.OutputHandleParams) error {
	output, err := c.resolveOutput(ctx)
	if err != nil {
		return err
	}
	return output.Clear(handles.Handle(params.Handle))
}

// DisposeOutput releases one output channel. Disposing a handle that is
// already released is a no-op, so both sides may race disposal safely.
func (c *controller) DisposeOutput(ctx context.Context, params *model.OutputHandleParams) error {
	output, err := c.resolveOutput(ctx)
	if err != nil {
		return err
	}
	output.Release(handles.Handle(params.Handle))
	return nil
}

// extensionOutputWriter lazily creates the shared extension output log file.
// Mirroring is skipped when no filesystem is wired in.
func (c *controller) extensionOutputWriter() io.Writer {
	c.outputWriterMu.Lock()
	defer c.outputWriterMu.Unlock()
	if c.outputWriter != nil {
		return c.outputWriter
	}
	if c.outputWriterParams.FS == nil {
		return nil
	}
	w, err := logfilewriter.SetupOutputWriter(c.outputWriterParams, _outputLogKey)
	if err != nil {
		c.logger.Errorf("setting up output log file: %v", err)
		return nil
	}
	c.outputWriter = w
	return w
}

func (c *controller) resolveOutput(ctx context.Context) (*outputCapability, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}
	instance, err := state.proxyCtx.Resolve(proxy.HostOutput)
	if err != nil {
		return nil, err
	}
	return instance.(*outputCapability), nil
}
