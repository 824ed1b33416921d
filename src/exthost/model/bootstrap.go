package model

import (
	"encoding/json"

	"go.lsp.dev/protocol"
)

// EnvironmentFlags carries the process environment portion of the bootstrap
// payload.
type EnvironmentFlags struct {
	ProposedAPI    bool     `json:"proposedApi"`
	Debug          bool     `json:"debug"`
	ExtensionPaths []string `json:"extensionPaths,omitempty"`
}

// WorkspaceData describes the workspace the extension process is attached to.
type WorkspaceData struct {
	ID      string                     `json:"id"`
	Name    string                     `json:"name"`
	Folders []protocol.WorkspaceFolder `json:"folders,omitempty"`
}

// ExtensionDescription identifies one extension and the events that activate it.
type ExtensionDescription struct {
	ID               string   `json:"id"`
	ActivationEvents []string `json:"activationEvents,omitempty"`
}

// TelemetryInfo carries opaque telemetry identity for the session.
type TelemetryInfo struct {
	SessionID string `json:"sessionId"`
	MachineID string `json:"machineId"`
}

// InitData is the bootstrap payload establishing the starting shadow state of
// a newly connected extension process. The proxy layer treats it as an opaque
// initialization record.
type InitData struct {
	ParentPID     int                    `json:"parentPid"`
	Environment   EnvironmentFlags       `json:"environment"`
	Workspace     *WorkspaceData         `json:"workspace,omitempty"`
	Extensions    []ExtensionDescription `json:"extensions,omitempty"`
	Configuration json.RawMessage        `json:"configuration,omitempty"`
	Telemetry     TelemetryInfo          `json:"telemetry"`
}

// ConfigurationDelta is a full updated configuration snapshot plus the subset
// of key paths that changed, optionally scoped to one workspace folder.
type ConfigurationDelta struct {
	Contents    json.RawMessage           `json:"contents"`
	ChangedKeys []string                  `json:"changedKeys"`
	Scope       *protocol.WorkspaceFolder `json:"scope,omitempty"`
}
