package app

import (
	"context"
	"time"

	"github.com/nimbus-ide/exthost/src/exthost/gateway"
	"github.com/nimbus-ide/exthost/src/exthost/handler"
	"github.com/nimbus-ide/exthost/src/exthost/internal/core"
	"github.com/nimbus-ide/exthost/src/exthost/internal/fs"
	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/internal/jsonrpcfx"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/internal/serverinfofile"
	tally "github.com/uber-go/tally"
	"go.uber.org/fx"
)

// Module defines the extension host application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	serverinfofile.Module,
	proxy.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(handles.NewAllocator),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "exthost",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
