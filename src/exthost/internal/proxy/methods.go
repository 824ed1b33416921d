package proxy

// Wire method names addressed to the host process.
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "initialized"
	MethodShutdown    = "shutdown"
	MethodExit        = "exit"

	MethodCommandsRegister   = "commands/register"
	MethodCommandsUnregister = "commands/unregister"
	MethodCommandsExecute    = "commands/execute"

	MethodOutputCreate  = "output/create"
	MethodOutputAppend  = "output/append"
	MethodOutputClear   = "output/clear"
	MethodOutputDispose = "output/dispose"

	MethodMessagesShow = "messages/show"

	MethodDiagnosticsChangeMany = "diagnostics/changeMany"
	MethodDiagnosticsClear      = "diagnostics/clear"

	MethodStatusBarSet    = "statusBar/set"
	MethodStatusBarRemove = "statusBar/remove"

	MethodTelemetryLog = "telemetry/log"

	MethodDocumentsTryOpen  = "documents/tryOpen"
	MethodDocumentsTrySave  = "documents/trySave"
	MethodDocumentsTryClose = "documents/tryClose"
	MethodEditorsTryShow    = "editors/tryShow"

	MethodConfigurationUpdate = "configuration/update"

	MethodLifetimeCollected = "lifetime/collected"

	MethodCompletionRequest = "completion/request"
	MethodCompletionResolve = "completion/resolve"
)

// Wire method names addressed to the extension process.
const (
	MethodAcceptDocumentsAndEditorsDelta = "documentsAndEditors/acceptDelta"
	MethodAcceptModelChanged             = "documents/acceptModelChanged"
	MethodAcceptConfigurationChanged     = "configuration/acceptChanged"
	MethodAcceptFileEvents               = "fileSystemEvents/accept"
	MethodAcceptCollectedHandles         = "lifetime/acceptCollected"

	MethodActivateExtension         = "extensionService/activate"
	MethodExecuteContributedCommand = "commands/executeContributed"
	MethodProvideCompletionItems    = "languageFeatures/provideCompletionItems"
	MethodResolveCompletionItem     = "languageFeatures/resolveCompletionItem"
)

// Kind describes the calling discipline of one wire method.
type Kind int

const (
	// KindRequest methods return a deferred result; failures surface to the
	// caller as typed failure results.
	KindRequest Kind = iota
	// KindNotify methods are one-way; they must never fail the caller, and
	// handler errors are logged rather than surfaced.
	KindNotify
)

// Descriptor is the versioned shape contract of one capability: its
// identifier and the calling discipline of each named operation.
type Descriptor struct {
	ID      Identifier
	Version int
	Methods map[string]Kind
}

func descriptors() []Descriptor {
	return []Descriptor{
		{ID: HostCommands, Version: 1, Methods: map[string]Kind{
			MethodCommandsRegister:   KindRequest,
			MethodCommandsUnregister: KindNotify,
			MethodCommandsExecute:    KindRequest,
		}},
		{ID: HostConfiguration, Version: 1, Methods: map[string]Kind{
			MethodConfigurationUpdate: KindRequest,
		}},
		{ID: HostDiagnostics, Version: 1, Methods: map[string]Kind{
			MethodDiagnosticsChangeMany: KindNotify,
			MethodDiagnosticsClear:      KindNotify,
		}},
		{ID: HostDocuments, Version: 1, Methods: map[string]Kind{
			MethodDocumentsTryOpen:  KindRequest,
			MethodDocumentsTrySave:  KindRequest,
			MethodDocumentsTryClose: KindRequest,
		}},
		{ID: HostEditors, Version: 1, Methods: map[string]Kind{
			MethodEditorsTryShow: KindRequest,
		}},
		{ID: HostLanguageFeatures, Version: 1, Methods: map[string]Kind{
			MethodCompletionRequest: KindRequest,
			MethodCompletionResolve: KindRequest,
		}},
		{ID: HostLifetime, Version: 1, Methods: map[string]Kind{
			MethodLifetimeCollected: KindNotify,
		}},
		{ID: HostMessages, Version: 1, Methods: map[string]Kind{
			MethodMessagesShow: KindRequest,
		}},
		{ID: HostOutput, Version: 1, Methods: map[string]Kind{
			MethodOutputCreate:  KindRequest,
			MethodOutputAppend:  KindNotify,
			MethodOutputClear:   KindNotify,
			MethodOutputDispose: KindNotify,
		}},
		{ID: HostStatusBar, Version: 1, Methods: map[string]Kind{
			MethodStatusBarSet:    KindNotify,
			MethodStatusBarRemove: KindNotify,
		}},
		{ID: HostTelemetry, Version: 1, Methods: map[string]Kind{
			MethodTelemetryLog: KindNotify,
		}},
		{ID: ExtDocumentsAndEditors, Version: 1, Methods: map[string]Kind{
			MethodAcceptDocumentsAndEditorsDelta: KindNotify,
		}},
		{ID: ExtDocuments, Version: 1, Methods: map[string]Kind{
			MethodAcceptModelChanged: KindNotify,
		}},
		{ID: ExtConfiguration, Version: 1, Methods: map[string]Kind{
			MethodAcceptConfigurationChanged: KindNotify,
		}},
		{ID: ExtFileSystemEvents, Version: 1, Methods: map[string]Kind{
			MethodAcceptFileEvents: KindNotify,
		}},
		{ID: ExtLifetime, Version: 1, Methods: map[string]Kind{
			MethodAcceptCollectedHandles: KindNotify,
		}},
		{ID: ExtExtensionService, Version: 1, Methods: map[string]Kind{
			MethodActivateExtension: KindRequest,
		}},
		{ID: ExtCommands, Version: 1, Methods: map[string]Kind{
			MethodExecuteContributedCommand: KindRequest,
		}},
		{ID: ExtLanguageFeatures, Version: 1, Methods: map[string]Kind{
			MethodProvideCompletionItems: KindRequest,
			MethodResolveCompletionItem:  KindRequest,
		}},
	}
}
