package hostservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/nimbus-ide/exthost/src/exthost/entity"
	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
)

// RegisterCommand records one contributed command for the calling session.
// Registering an id that is already registered, or that shadows a host
// builtin, fails.
func (c *controller) RegisterCommand(ctx context.Context, params *model.RegisterCommandParams) error {
	if params.ID == "" {
		return errors.New("command id must not be empty")
	}

	c.builtinsMu.Lock()
	_, isBuiltin := c.builtins[params.ID]
	c.builtinsMu.Unlock()
	if isBuiltin {
		return &errors.DuplicateCapabilityError{Name: params.ID}
	}

	commands, err := c.resolveCommands(ctx)
	if err != nil {
		return err
	}
	if err := commands.Register(params.ID); err != nil {
		return err
	}
	c.stats.Counter("commands_registered").Inc(1)
	return nil
}

// UnregisterCommand removes a contributed command. Unknown ids are a no-op.
func (c *controller) UnregisterCommand(ctx context.Context, params *model.RegisterCommandParams) error {
	commands, err := c.resolveCommands(ctx)
	if err != nil {
		return err
	}
	commands.Unregister(params.ID)
	return nil
}

// ExecuteCommand routes a command run to a host builtin or back to the
// session that contributed the command. Running a contributed command first
// activates any extension with a matching onCommand activation event.
func (c *controller) ExecuteCommand(ctx context.Context, params *model.ExecuteCommandParams) (*model.ExecuteCommandResult, error) {
	c.builtinsMu.Lock()
	builtin, isBuiltin := c.builtins[params.ID]
	c.builtinsMu.Unlock()
	if isBuiltin {
		value, err := builtin(ctx, params.Args)
		if err != nil {
			return nil, fmt.Errorf("running builtin command %q: %w", params.ID, err)
		}
		return &model.ExecuteCommandResult{Value: value}, nil
	}

	if err := c.ActivateByEvent(ctx, "onCommand:"+params.ID); err != nil {
		c.logger.Errorf("activating extensions for command %q: %v", params.ID, err)
	}

	commands, err := c.resolveCommands(ctx)
	if err != nil {
		return nil, err
	}
	if !commands.IsRegistered(params.ID) {
		return nil, fmt.Errorf("command %q not found", params.ID)
	}

	return c.extGateway.ExecuteContributedCommand(ctx, params)
}

// RegisterBuiltinCommand installs a host-implemented command shared by all
// sessions. Intended for wiring at startup; duplicate ids fail.
func (c *controller) RegisterBuiltinCommand(id string, fn BuiltinCommand) error {
	c.builtinsMu.Lock()
	defer c.builtinsMu.Unlock()
	if _, ok := c.builtins[id]; ok {
		return &errors.DuplicateCapabilityError{Name: id}
	}
	c.builtins[id] = fn
	return nil
}

// ActivateByEvent activates, at most once per session, every extension whose
// activation events match the given event.
func (c *controller) ActivateByEvent(ctx context.Context, event string) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf(_errSessionFromContext, err)
	}
	if s.Init == nil {
		return nil
	}

	state, err := c.getState(ctx)
	if err != nil {
		return err
	}

	for _, ext := range s.Init.Extensions {
		if !matchesActivationEvent(ext.ActivationEvents, event) {
			continue
		}

		state.mu.Lock()
		already := state.activated[ext.ID]
		state.activated[ext.ID] = true
		state.mu.Unlock()
		if already {
			continue
		}

		params := &model.ActivateExtensionParams{
			ExtensionID: ext.ID,
			Reason:      activationReason(event),
		}
		if err := c.extGateway.ActivateExtension(ctx, params); err != nil {
			return fmt.Errorf("activating extension %q: %w", ext.ID, err)
		}
		c.stats.Counter("extensions_activated").Inc(1)
	}
	return nil
}

func matchesActivationEvent(events []string, event string) bool {
	for _, candidate := range events {
		if candidate == event || (candidate == "*" && event == "*") {
			return true
		}
	}
	return false
}

func activationReason(event string) string {
	switch {
	case event == "*":
		return string(entity.ActivationReasonStartup)
	case strings.HasPrefix(event, "onCommand:"):
		return string(entity.ActivationReasonCommand)
	case strings.HasPrefix(event, "onLanguage:"):
		return string(entity.ActivationReasonLanguage)
	default:
		return event
	}
}

func (c *controller) resolveCommands(ctx context.Context) (*commandsCapability, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}
	instance, err := state.proxyCtx.Resolve(proxy.HostCommands)
	if err != nil {
		return nil, err
	}
	return instance.(*commandsCapability), nil
}
