package hostservice

import (
	"context"

	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
)

// ChangeDiagnostics replaces diagnostics for several documents at once on
// behalf of one owner. An entry with no diagnostics deletes the owner's
// record for that document.
func (c *controller) ChangeDiagnostics(ctx context.Context, params *model.ChangeDiagnosticsParams) error {
	diagnostics, err := c.resolveDiagnostics(ctx)
	if err != nil {
		return err
	}
	if err := diagnostics.ChangeMany(params.Owner, params.Entries); err != nil {
		return err
	}
	c.stats.Counter("diagnostics_changed").Inc(1)
	return nil
}

// ClearDiagnostics removes all diagnostics recorded for an owner.
func (c *controller) ClearDiagnostics(ctx context.Context, params *model.ClearDiagnosticsParams) error {
	diagnostics, err := c.resolveDiagnostics(ctx)
	if err != nil {
		return err
	}
	diagnostics.Clear(params.Owner)
	return nil
}

func (c *controller) resolveDiagnostics(ctx context.Context) (*diagnosticsCapability, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}
	instance, err := state.proxyCtx.Resolve(proxy.HostDiagnostics)
	if err != nil {
		return nil, err
	}
	return instance.(*diagnosticsCapability), nil
}
