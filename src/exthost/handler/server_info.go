package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nimbus-ide/exthost/src/exthost/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_configKeyServiceName = "serviceName"

	_infoFileKeyPID     = "exthost-pid"
	_infoFileKeyService = "exthost-service"
)

// Output process identity to the server info file so the client can confirm
// it is talking to the host it launched and reap it on abnormal exit.
// Connection methods (e.g. JSON-RPC) independently add their address fields.
func outputProcessInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var serviceName string
	if err := cfg.Get(_configKeyServiceName).Populate(&serviceName); err != nil {
		return fmt.Errorf("loading service name: %w", err)
	}
	if serviceName == "" {
		return fmt.Errorf("missing field %q in config", _configKeyServiceName)
	}

	if err := infofile.UpdateField(_infoFileKeyService, serviceName); err != nil {
		return fmt.Errorf("outputting service name to info file: %w", err)
	}
	if err := infofile.UpdateField(_infoFileKeyPID, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting pid to info file: %w", err)
	}
	return nil
}
