package gateway

import (
	extclient "github.com/nimbus-ide/exthost/src/exthost/gateway/extension-client"
	"go.uber.org/fx"
)

// Module provides the outbound gateways to connected extension processes.
var Module = fx.Options(
	fx.Provide(extclient.New),
)
