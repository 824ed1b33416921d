package hostservice

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/protocol"
)

// ShowMessage records a message from an extension. The host runs without an
// attached display surface, so no action item is ever selected; callers
// offering actions always receive a nil action back.
func (c *controller) ShowMessage(ctx context.Context, params *model.ShowMessageParams) (*model.ShowMessageResult, error) {
	if _, err := c.getState(ctx); err != nil {
		return nil, err
	}

	switch params.Type {
	case protocol.MessageTypeError:
		c.logger.Errorw("extension message", "message", params.Message)
	case protocol.MessageTypeWarning:
		c.logger.Warnw("extension message", "message", params.Message)
	default:
		c.logger.Infow("extension message", "message", params.Message)
	}
	c.stats.Counter("messages_shown").Inc(1)

	return &model.ShowMessageResult{Action: nil}, nil
}

// SetStatusBarEntry upserts one status bar entry for the calling session.
func (c *controller) SetStatusBarEntry(ctx context.Context, params *model.StatusBarSetParams) error {
	statusBar, err := c.resolveStatusBar(ctx)
	if err != nil {
		return err
	}
	return statusBar.Set(*params)
}

// RemoveStatusBarEntry removes one status bar entry. Unknown ids are a no-op.
func (c *controller) RemoveStatusBarEntry(ctx context.Context, params *model.StatusBarRemoveParams) error {
	statusBar, err := c.resolveStatusBar(ctx)
	if err != nil {
		return err
	}
	statusBar.Remove(params.EntryID)
	return nil
}

// LogTelemetry records one telemetry event from an extension.
func (c *controller) LogTelemetry(ctx context.Context, params *model.TelemetryLogParams) error {
	if _, err := c.getState(ctx); err != nil {
		return err
	}

	c.logger.Infow("telemetry event", "event", params.EventName, "data", string(params.Data))
	c.stats.SubScope("telemetry").Counter(params.EventName).Inc(1)
	return nil
}

func (c *controller) resolveStatusBar(ctx context.Context) (*statusBarCapability, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}
	instance, err := state.proxyCtx.Resolve(proxy.HostStatusBar)
	if err != nil {
		return nil, err
	}
	return instance.(*statusBarCapability), nil
}
