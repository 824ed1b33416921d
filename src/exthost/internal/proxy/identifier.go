// Package proxy holds the capability addressing layer between the host and
// extension processes: named side-scoped identifiers, the per-session
// instance bindings behind them, and the dispatch tables describing each
// capability's wire surface.
package proxy

// Side indicates which process implements a capability.
type Side int

const (
	// SideHost marks capabilities implemented by the host process.
	SideHost Side = iota
	// SideExtension marks capabilities implemented by the extension process.
	SideExtension
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideHost:
		return "host"
	case SideExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Identifier names one capability group on one side. Identifiers are
// immutable, created once at registration time, and live for the process
// lifetime.
type Identifier struct {
	name string
	side Side
}

// Name returns the capability name.
func (i Identifier) Name() string {
	return i.name
}

// Side returns the side implementing the capability.
func (i Identifier) Side() Side {
	return i.side
}

// String implements fmt.Stringer.
func (i Identifier) String() string {
	return i.side.String() + ":" + i.name
}

// Capabilities implemented by the host process, addressable by extensions.
var (
	HostCommands         = Identifier{name: "commands", side: SideHost}
	HostConfiguration    = Identifier{name: "configuration", side: SideHost}
	HostDiagnostics      = Identifier{name: "diagnostics", side: SideHost}
	HostDialogs          = Identifier{name: "dialogs", side: SideHost}
	HostDecorations      = Identifier{name: "decorations", side: SideHost}
	HostDocuments        = Identifier{name: "documents", side: SideHost}
	HostEditors          = Identifier{name: "editors", side: SideHost}
	HostErrors           = Identifier{name: "errors", side: SideHost}
	HostLanguageFeatures = Identifier{name: "languageFeatures", side: SideHost}
	HostLifetime         = Identifier{name: "lifetime", side: SideHost}
	HostMessages         = Identifier{name: "messages", side: SideHost}
	HostOutput           = Identifier{name: "output", side: SideHost}
	HostProgress         = Identifier{name: "progress", side: SideHost}
	HostQuickOpen        = Identifier{name: "quickOpen", side: SideHost}
	HostStatusBar        = Identifier{name: "statusBar", side: SideHost}
	HostStorage          = Identifier{name: "storage", side: SideHost}
	HostTelemetry        = Identifier{name: "telemetry", side: SideHost}
	HostTerminal         = Identifier{name: "terminal", side: SideHost}
	HostWorkspace        = Identifier{name: "workspace", side: SideHost}
	HostFileSystem       = Identifier{name: "fileSystem", side: SideHost}
	HostExtensionService = Identifier{name: "extensionService", side: SideHost}
	HostSourceControl    = Identifier{name: "sourceControl", side: SideHost}
	HostDebug            = Identifier{name: "debug", side: SideHost}
	HostWindow           = Identifier{name: "window", side: SideHost}
	HostTreeViews        = Identifier{name: "treeViews", side: SideHost}
)

// Capabilities implemented by the extension process, addressable by the host.
var (
	ExtCommands                = Identifier{name: "commands", side: SideExtension}
	ExtConfiguration           = Identifier{name: "configuration", side: SideExtension}
	ExtDocuments               = Identifier{name: "documents", side: SideExtension}
	ExtDocumentSaveParticipant = Identifier{name: "documentSaveParticipant", side: SideExtension}
	ExtEditors                 = Identifier{name: "editors", side: SideExtension}
	ExtDocumentsAndEditors     = Identifier{name: "documentsAndEditors", side: SideExtension}
	ExtTreeViews               = Identifier{name: "treeViews", side: SideExtension}
	ExtFileSystem              = Identifier{name: "fileSystem", side: SideExtension}
	ExtFileSystemEvents        = Identifier{name: "fileSystemEvents", side: SideExtension}
	ExtExtensionService        = Identifier{name: "extensionService", side: SideExtension}
	ExtLifetime                = Identifier{name: "lifetime", side: SideExtension}
	ExtLanguageFeatures        = Identifier{name: "languageFeatures", side: SideExtension}
	ExtQuickOpen               = Identifier{name: "quickOpen", side: SideExtension}
	ExtTerminal                = Identifier{name: "terminal", side: SideExtension}
	ExtSourceControl           = Identifier{name: "sourceControl", side: SideExtension}
	ExtTasks                   = Identifier{name: "tasks", side: SideExtension}
	ExtDebug                   = Identifier{name: "debug", side: SideExtension}
	ExtDecorations             = Identifier{name: "decorations", side: SideExtension}
	ExtWindow                  = Identifier{name: "window", side: SideExtension}
)
