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
	"go.uber.org/mock/gomock"
)

func TestInitialize(t *testing.T) {
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
			c.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(proxy.MethodInitialize, model.InitData{})
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitializeInvalidParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	c := hostservicemock.NewMockController(ctrl)
	r := jsonRPCRouter{exthost: c}
	req := factory.JSONRPCRequest(proxy.MethodInitialize, "bogus")
	err := r.HandleReq(ctx, newMockReplier(), req)
	assert.Error(t, err)
}

func TestInitialized(t *testing.T) {
	tests := []struct {
		name            string
		controllerError error
		wantErr         bool
	}{
		{
			name:            "error from controller",
			controllerError: errors.New("initialized error"),
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
			c.EXPECT().Initialized(gomock.Any()).Return(tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCNotification(proxy.MethodInitialized, nil)
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShutdown(t *testing.T) {
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
			c.EXPECT().Shutdown(gomock.Any()).Return(tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(proxy.MethodShutdown, nil)
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	replied := false
	replier := func(ctx context.Context, result interface{}, err error) error {
		replied = true
		return err
	}

	c := hostservicemock.NewMockController(ctrl)
	c.EXPECT().Exit(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		// The reply must already have been sent when the controller runs.
		assert.True(t, replied)
		return nil
	})

	r := jsonRPCRouter{exthost: c}
	req := factory.JSONRPCNotification(proxy.MethodExit, nil)
	err := r.HandleReq(ctx, replier, req)
	assert.NoError(t, err)
}

func TestRequestFullShutdown(t *testing.T) {
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
			c.EXPECT().RequestFullShutdown(gomock.Any()).Return(tt.controllerError)

			r := jsonRPCRouter{exthost: c}
			req := factory.JSONRPCRequest(MethodRequestFullShutdown, nil)
			err := r.HandleReq(ctx, replier, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
