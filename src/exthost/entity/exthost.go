// Package entity contains the domain types for the extension host service.
package entity

import (
	"github.com/gofrs/uuid"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/jsonrpc2"
)

type keyType string

// SessionContextKey indicates the key to be used to identify the session UUID in the context.
const SessionContextKey keyType = "SessionUUID"

// Session represents a single connected extension process.
type Session struct {
	UUID          uuid.UUID       `json:"uuid" zap:"uuid"`
	Conn          *jsonrpc2.Conn  `json:"-" zap:"-"`
	WorkspaceRoot string          `json:"workspaceRoot" zap:"workspaceRoot"`
	Init          *model.InitData `json:"-" zap:"-"`
}

// ActivationReason describes why an extension is being activated.
type ActivationReason string

const (
	// ActivationReasonStartup activates extensions with a wildcard activation event.
	ActivationReasonStartup ActivationReason = "startup"
	// ActivationReasonCommand activates the extension owning an executed command.
	ActivationReasonCommand ActivationReason = "command"
	// ActivationReasonLanguage activates extensions interested in an opened language.
	ActivationReasonLanguage ActivationReason = "language"
)
