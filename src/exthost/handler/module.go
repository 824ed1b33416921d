package handler

import (
	controller "github.com/nimbus-ide/exthost/src/exthost/controller"
	hostservice "github.com/nimbus-ide/exthost/src/exthost/controller/host-service"
	hostrpc "github.com/nimbus-ide/exthost/src/exthost/handler/host-rpc"
	"github.com/nimbus-ide/exthost/src/exthost/repository/session"
	"go.uber.org/fx"
)

// Module provides the extension host server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(session.New),
	fx.Provide(hostrpc.New),
	fx.Invoke(outputProcessInfo),
	fx.Invoke(func(m hostrpc.Handler) {}),
	fx.Invoke(func(m hostservice.Controller) {}),
)
