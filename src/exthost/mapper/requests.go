package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/nimbus-ide/exthost/src/exthost/model"
	"go.lsp.dev/jsonrpc2"
)

// RequestToInitData maps the parameters from a jsonrpc2.Request into model.InitData.
func RequestToInitData(req jsonrpc2.Request) (*model.InitData, error) {
	params := model.InitData{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToRegisterCommandParams maps the parameters from a jsonrpc2.Request into model.RegisterCommandParams.
func RequestToRegisterCommandParams(req jsonrpc2.Request) (*model.RegisterCommandParams, error) {
	params := model.RegisterCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToExecuteCommandParams maps the parameters from a jsonrpc2.Request into model.ExecuteCommandParams.
func RequestToExecuteCommandParams(req jsonrpc2.Request) (*model.ExecuteCommandParams, error) {
	params := model.ExecuteCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToOutputCreateParams maps the parameters from a jsonrpc2.Request into model.OutputCreateParams.
func RequestToOutputCreateParams(req jsonrpc2.Request) (*model.OutputCreateParams, error) {
	params := model.OutputCreateParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToOutputAppendParams maps the parameters from a jsonrpc2.Request into model.OutputAppendParams.
func RequestToOutputAppendParams(req jsonrpc2.Request) (*model.OutputAppendParams, error) {
	params := model.OutputAppendParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToOutputHandleParams maps the parameters from a jsonrpc2.Request into model.OutputHandleParams.
func RequestToOutputHandleParams(req jsonrpc2.Request) (*model.OutputHandleParams, error) {
	params := model.OutputHandleParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToShowMessageParams maps the parameters from a jsonrpc2.Request into model.ShowMessageParams.
func RequestToShowMessageParams(req jsonrpc2.Request) (*model.ShowMessageParams, error) {
	params := model.ShowMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToChangeDiagnosticsParams maps the parameters from a jsonrpc2.Request into model.ChangeDiagnosticsParams.
func RequestToChangeDiagnosticsParams(req jsonrpc2.Request) (*model.ChangeDiagnosticsParams, error) {
	params := model.ChangeDiagnosticsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToClearDiagnosticsParams maps the parameters from a jsonrpc2.Request into model.ClearDiagnosticsParams.
func RequestToClearDiagnosticsParams(req jsonrpc2.Request) (*model.ClearDiagnosticsParams, error) {
	params := model.ClearDiagnosticsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToStatusBarSetParams maps the parameters from a jsonrpc2.Request into model.StatusBarSetParams.
func RequestToStatusBarSetParams(req jsonrpc2.Request) (*model.StatusBarSetParams, error) {
	params := model.StatusBarSetParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToStatusBarRemoveParams maps the parameters from a jsonrpc2.Request into model.StatusBarRemoveParams.
func RequestToStatusBarRemoveParams(req jsonrpc2.Request) (*model.StatusBarRemoveParams, error) {
	params := model.StatusBarRemoveParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToTelemetryLogParams maps the parameters from a jsonrpc2.Request into model.TelemetryLogParams.
func RequestToTelemetryLogParams(req jsonrpc2.Request) (*model.TelemetryLogParams, error) {
	params := model.TelemetryLogParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToCollectedParams maps the parameters from a jsonrpc2.Request into model.CollectedParams.
func RequestToCollectedParams(req jsonrpc2.Request) (*model.CollectedParams, error) {
	params := model.CollectedParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToUpdateConfigurationParams maps the parameters from a jsonrpc2.Request into model.UpdateConfigurationParams.
func RequestToUpdateConfigurationParams(req jsonrpc2.Request) (*model.UpdateConfigurationParams, error) {
	params := model.UpdateConfigurationParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToTryOpenDocumentParams maps the parameters from a jsonrpc2.Request into model.TryOpenDocumentParams.
func RequestToTryOpenDocumentParams(req jsonrpc2.Request) (*model.TryOpenDocumentParams, error) {
	params := model.TryOpenDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToDocumentURIParams maps the parameters from a jsonrpc2.Request into model.DocumentURIParams.
func RequestToDocumentURIParams(req jsonrpc2.Request) (*model.DocumentURIParams, error) {
	params := model.DocumentURIParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToTryShowEditorParams maps the parameters from a jsonrpc2.Request into model.TryShowEditorParams.
func RequestToTryShowEditorParams(req jsonrpc2.Request) (*model.TryShowEditorParams, error) {
	params := model.TryShowEditorParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToCompletionRequestParams maps the parameters from a jsonrpc2.Request into model.CompletionRequestParams.
func RequestToCompletionRequestParams(req jsonrpc2.Request) (*model.CompletionRequestParams, error) {
	params := model.CompletionRequestParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToResolveCompletionItemParams maps the parameters from a jsonrpc2.Request into model.ResolveCompletionItemParams.
func RequestToResolveCompletionItemParams(req jsonrpc2.Request) (*model.ResolveCompletionItemParams, error) {
	params := model.ResolveCompletionItemParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
