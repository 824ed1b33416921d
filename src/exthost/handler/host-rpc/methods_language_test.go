package hostrpc

import (
	"context"
	"errors"
	"testing"

	"github.com/nimbus-ide/exthost/src/exthost/controller/host-service/hostservicemock"
	"github.com/nimbus-ide/exthost/src/exthost/factory"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
	"github.com/stretchr/testify/assert"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
)

func TestUpdateConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		controllerError error
		wantErr         bool
	}{
		{
			name:            "error from controller",
			controllerError: errors.New("controller error"),
			wantErr:         true,
		},
		{
			name:            "no error from controller",
			controllerError: nil,
			wantErr:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			replier := newMockReplier()

			c := hostservicemock.NewMockController(ctrl)
			c.EXPECT().UpdateConfiguration(gomock.Any(), gomock.Any()).Return(tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(proxy.MethodConfigurationUpdate, model.UpdateConfigurationParams{Key: "editor.tabSize"})
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotifyCollected(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := hostservicemock.NewMockController(ctrl)
	c.EXPECT().NotifyCollected(gomock.Any(), gomock.Any()).Return(nil)

	r := jsonRPCRouter{exthost: c}
	req := factory.JSONRPCNotification(proxy.MethodLifetimeCollected, model.CollectedParams{Handles: []int64{3, 4}})
	err := r.HandleReq(ctx, newMockReplier(), req)
	assert.NoError(t, err)
}

func TestComplete(t *testing.T) {
	tests := []struct {
		name             string
		controllerResult *model.CompletionList
		controllerError  error
		wantErr          bool
	}{
		{
			name:             "error from controller",
			controllerResult: nil,
			controllerError:  errors.New("controller error"),
			wantErr:          true,
		},
		{
			name:             "no error from controller",
			controllerResult: &model.CompletionList{ParentHandle: 9},
			controllerError:  nil,
			wantErr:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			replier := newMockReplier()

			c := hostservicemock.NewMockController(ctrl)
			c.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(tt.controllerResult, tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(proxy.MethodCompletionRequest, model.CompletionRequestParams{URI: uri.File("/sample/file.go")})
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveCompletion(t *testing.T) {
	tests := []struct {
		name             string
		controllerResult *model.CompletionItem
		controllerError  error
		wantErr          bool
	}{
		{
			name:             "error from controller",
			controllerResult: nil,
			controllerError:  errors.New("controller error"),
			wantErr:          true,
		},
		{
			name:             "no error from controller",
			controllerResult: &model.CompletionItem{Label: "sample"},
			controllerError:  nil,
			wantErr:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()
			replier := newMockReplier()

			c := hostservicemock.NewMockController(ctrl)
			c.EXPECT().ResolveCompletion(gomock.Any(), gomock.Any()).Return(tt.controllerResult, tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(proxy.MethodCompletionResolve, model.ResolveCompletionItemParams{ParentHandle: 9, ID: 1})
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
