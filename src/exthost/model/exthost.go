// Package model holds the repository layer and wire-level types exchanged
// between the host and extension processes.
package model

import (
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

// Session is the repository layer model for one connected extension process.
type Session struct {
	UUID          uuid.UUID
	Conn          *jsonrpc2.Conn
	WorkspaceRoot string
	Init          *InitData
}
