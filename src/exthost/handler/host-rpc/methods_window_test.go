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
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
)

func TestShowMessage(t *testing.T) {
	tests := []struct {
		name             string
		controllerResult *model.ShowMessageResult
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
			controllerResult: &model.ShowMessageResult{},
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
			c.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).Return(tt.controllerResult, tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(proxy.MethodMessagesShow, model.ShowMessageParams{Type: protocol.MessageTypeInfo, Message: "sample"})
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetStatusBarEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := hostservicemock.NewMockController(ctrl)
	c.EXPECT().SetStatusBarEntry(gomock.Any(), gomock.Any()).Return(nil)

	r := jsonRPCRouter{exthost: c}
	req := factory.JSONRPCNotification(proxy.MethodStatusBarSet, model.StatusBarSetParams{EntryID: 1, Text: "sample"})
	err := r.HandleReq(ctx, newMockReplier(), req)
	assert.NoError(t, err)
}

func TestRemoveStatusBarEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := hostservicemock.NewMockController(ctrl)
	c.EXPECT().RemoveStatusBarEntry(gomock.Any(), gomock.Any()).Return(nil)

	r := jsonRPCRouter{exthost: c}
	req := factory.JSONRPCNotification(proxy.MethodStatusBarRemove, model.StatusBarRemoveParams{EntryID: 1})
	err := r.HandleReq(ctx, newMockReplier(), req)
	assert.NoError(t, err)
}

func TestLogTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := hostservicemock.NewMockController(ctrl)
	c.EXPECT().LogTelemetry(gomock.Any(), gomock.Any()).Return(nil)

	r := jsonRPCRouter{exthost: c}
	req := factory.JSONRPCNotification(proxy.MethodTelemetryLog, model.TelemetryLogParams{EventName: "sample"})
	err := r.HandleReq(ctx, newMockReplier(), req)
	assert.NoError(t, err)
}
