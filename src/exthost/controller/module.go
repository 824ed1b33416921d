package controller

import (
	configsync "github.com/nimbus-ide/exthost/src/exthost/controller/config-sync"
	docsync "github.com/nimbus-ide/exthost/src/exthost/controller/doc-sync"
	fileevents "github.com/nimbus-ide/exthost/src/exthost/controller/file-events"
	hostservice "github.com/nimbus-ide/exthost/src/exthost/controller/host-service"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(hostservice.New),
	fx.Provide(docsync.New),
	fx.Provide(configsync.New),
	fx.Provide(fileevents.New),
)
