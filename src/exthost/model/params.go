package model

import (
	"encoding/json"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

// RegisterCommandParams registers one contributed command for the calling
// extension process.
type RegisterCommandParams struct {
	ID string `json:"id"`
}

// ExecuteCommandParams runs a command by id with opaque arguments.
type ExecuteCommandParams struct {
	ID   string            `json:"id"`
	Args []json.RawMessage `json:"args,omitempty"`
}

// ExecuteCommandResult carries the opaque result of a command run.
type ExecuteCommandResult struct {
	Value json.RawMessage `json:"value,omitempty"`
}

// OutputCreateParams names a new output channel.
type OutputCreateParams struct {
	Name string `json:"name"`
}

// OutputCreateResult returns the handle under which the channel was issued.
type OutputCreateResult struct {
	Handle int64 `json:"handle"`
}

// OutputAppendParams appends text to an output channel by handle.
type OutputAppendParams struct {
	Handle int64  `json:"handle"`
	Text   string `json:"text"`
}

// OutputHandleParams addresses an output channel by handle.
type OutputHandleParams struct {
	Handle int64 `json:"handle"`
}

// ShowMessageParams surfaces a message with optional action items.
type ShowMessageParams struct {
	Type    protocol.MessageType `json:"type"`
	Message string               `json:"message"`
	Actions []string             `json:"actions,omitempty"`
}

// ShowMessageResult carries the action the user selected, if any.
type ShowMessageResult struct {
	Action *string `json:"action,omitempty"`
}

// DiagnosticsEntry is the diagnostics for one document.
type DiagnosticsEntry struct {
	URI         uri.URI               `json:"uri"`
	Diagnostics []protocol.Diagnostic `json:"diagnostics"`
}

// ChangeDiagnosticsParams replaces diagnostics for several documents at once
// on behalf of one owner.
type ChangeDiagnosticsParams struct {
	Owner   string             `json:"owner"`
	Entries []DiagnosticsEntry `json:"entries"`
}

// ClearDiagnosticsParams removes all diagnostics recorded for an owner.
type ClearDiagnosticsParams struct {
	Owner string `json:"owner"`
}

// StatusBarSetParams upserts one status bar entry. The entry id is allocated
// by the extension side, which owns the entry.
type StatusBarSetParams struct {
	EntryID int64  `json:"entryId"`
	Text    string `json:"text"`
	Tooltip string `json:"tooltip,omitempty"`
}

// StatusBarRemoveParams removes one status bar entry.
type StatusBarRemoveParams struct {
	EntryID int64 `json:"entryId"`
}

// TelemetryLogParams records one telemetry event.
type TelemetryLogParams struct {
	EventName string          `json:"eventName"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// CollectedParams reports handles the sending side has fully dropped.
type CollectedParams struct {
	Handles []int64 `json:"handles"`
}

// UpdateConfigurationParams writes one configuration value by key path.
type UpdateConfigurationParams struct {
	Key   string                    `json:"key"`
	Value json.RawMessage           `json:"value"`
	Scope *protocol.WorkspaceFolder `json:"scope,omitempty"`
}

// TryOpenDocumentParams asks the host to open a document.
type TryOpenDocumentParams struct {
	URI        uri.URI                     `json:"uri"`
	LanguageID protocol.LanguageIdentifier `json:"languageId"`
	Text       string                      `json:"text"`
}

// DocumentURIParams addresses a document by uri.
type DocumentURIParams struct {
	URI uri.URI `json:"uri"`
}

// TryShowEditorParams asks the host to show an editor on a document.
type TryShowEditorParams struct {
	URI       uri.URI `json:"uri"`
	TakeFocus bool    `json:"takeFocus"`
}

// TryShowEditorResult returns the id of the shown editor.
type TryShowEditorResult struct {
	EditorID string `json:"editorId"`
}

// ActivateExtensionParams asks the extension process to activate one extension.
type ActivateExtensionParams struct {
	ExtensionID string `json:"extensionId"`
	Reason      string `json:"reason"`
}

// CompletionRequestParams asks for completions at a document position.
type CompletionRequestParams struct {
	URI      uri.URI           `json:"uri"`
	Position protocol.Position `json:"position"`
}

// CompletionItem is one completion suggestion.
type CompletionItem struct {
	Label         string `json:"label"`
	Detail        string `json:"detail,omitempty"`
	Documentation string `json:"documentation,omitempty"`
	InsertText    string `json:"insertText,omitempty"`
}

// IdentifiedCompletionItem stamps a completion item with its nested identity
// within a result set.
type IdentifiedCompletionItem struct {
	ID   int64          `json:"id"`
	Item CompletionItem `json:"item"`
}

// CompletionList is one completion result set, addressed as a whole by its
// parent handle so it can be released in one collection notice.
type CompletionList struct {
	ParentHandle int64                      `json:"parentHandle"`
	Incomplete   bool                       `json:"incomplete"`
	Items        []IdentifiedCompletionItem `json:"items"`
}

// ResolveCompletionItemParams re-references one item of a prior result set.
type ResolveCompletionItemParams struct {
	ParentHandle int64 `json:"parentHandle"`
	ID           int64 `json:"id"`
}

// FileEventsParams carries batched workspace file events.
type FileEventsParams struct {
	Events []protocol.FileEvent `json:"events"`
}
