package hostservice

import (
	"context"
	"fmt"

	"github.com/nimbus-ide/exthost/src/exthost/internal/handles"
	"github.com/nimbus-ide/exthost/src/exthost/internal/proxy"
	"github.com/nimbus-ide/exthost/src/exthost/model"
)

// _maxCachedCompletionSets bounds how many completion result sets the host
// retains per session. The oldest set is evicted once the bound is exceeded,
// which reports its parent handle back for collection.
const _maxCachedCompletionSets = 4

// NotifyCollected releases host-issued handles the extension process has
// fully dropped. Release is idempotent, so a handle collected after an
// explicit disposal is harmless.
func (c *controller) NotifyCollected(ctx context.Context, params *model.CollectedParams) error {
	output, err := c.resolveOutput(ctx)
	if err != nil {
		return err
	}

	for _, h := range params.Handles {
		output.Release(handles.Handle(h))
	}
	c.stats.Counter("handles_collected").Inc(int64(len(params.Handles)))
	return nil
}

// Complete requests completion items from the extension process at a document
// position and caches the returned result set under its parent handle so
// individual items can be resolved later.
func (c *controller) Complete(ctx context.Context, params *model.CompletionRequestParams) (*model.CompletionList, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}
	completions, err := c.resolveCompletions(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := c.docSync.GetDocument(ctx, params.URI); err != nil {
		return nil, err
	}

	list, err := c.extGateway.ProvideCompletionItems(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("requesting completion items: %w", err)
	}
	if err := completions.Cache(list); err != nil {
		return nil, err
	}
	c.stats.Counter("completion_sets_cached").Inc(1)

	state.mu.Lock()
	state.completionParents = append(state.completionParents, handles.Handle(list.ParentHandle))
	var evict []handles.Handle
	if len(state.completionParents) > _maxCachedCompletionSets {
		overflow := len(state.completionParents) - _maxCachedCompletionSets
		evict = append(evict, state.completionParents[:overflow]...)
		state.completionParents = state.completionParents[overflow:]
	}
	state.mu.Unlock()

	if len(evict) > 0 {
		for _, parent := range evict {
			completions.Evict(parent)
		}
		completions.tracker.Flush(ctx)
	}
	return list, nil
}

// ResolveCompletion resolves one item of a previously returned result set.
// The parent handle must still be cached; a collected or evicted set fails
// with a stale handle error rather than reaching the extension.
func (c *controller) ResolveCompletion(ctx context.Context, params *model.ResolveCompletionItemParams) (*model.CompletionItem, error) {
	completions, err := c.resolveCompletions(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := completions.Lookup(handles.Handle(params.ParentHandle), handles.Handle(params.ID)); err != nil {
		return nil, err
	}

	item, err := c.extGateway.ResolveCompletionItem(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("resolving completion item: %w", err)
	}
	return item, nil
}

// UpdateConfiguration writes one configuration value and broadcasts the
// resulting delta to every connected session.
func (c *controller) UpdateConfiguration(ctx context.Context, params *model.UpdateConfigurationParams) error {
	if _, err := c.getState(ctx); err != nil {
		return err
	}
	return c.configSync.Update(ctx, params.Key, params.Value, params.Scope)
}

func (c *controller) resolveCompletions(ctx context.Context) (*completionsCapability, error) {
	state, err := c.getState(ctx)
	if err != nil {
		return nil, err
	}
	instance, err := state.proxyCtx.Resolve(proxy.HostLanguageFeatures)
	if err != nil {
		return nil, err
	}
	return instance.(*completionsCapability), nil
}
