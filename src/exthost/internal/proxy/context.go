package proxy

import (
	"context"
	"sync"

	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"go.uber.org/multierr"
)

// Disposable is implemented by capability instances holding releasable
// resources. All handles a capability issued must be treated as invalid once
// its disposal is acknowledged.
type Disposable interface {
	Dispose(ctx context.Context) error
}

// Context holds the capability instances bound for one host/extension process
// pair. Bindings are installed at connection time and live until the pair is
// torn down; there is no runtime unbinding short of full disposal.
type Context struct {
	registry *Registry

	mu        sync.Mutex
	instances map[Identifier]interface{}
	disposed  bool
}

// NewContext returns an empty binding table backed by the given Registry.
func NewContext(registry *Registry) *Context {
	return &Context{
		registry:  registry,
		instances: make(map[Identifier]interface{}),
	}
}

// Bind installs a concrete instance for an identifier. Binding the same
// identifier twice fails, as does binding an identifier the Registry does not
// know.
func (c *Context) Bind(id Identifier, instance interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return &errors.CapabilityDisposedError{Name: id.String()}
	}
	if _, ok := c.registry.Descriptor(id); !ok {
		return &errors.UnboundCapabilityError{Name: id.String()}
	}
	if _, ok := c.instances[id]; ok {
		return &errors.DuplicateCapabilityError{Name: id.String()}
	}
	c.instances[id] = instance
	return nil
}

// Resolve returns the instance bound to an identifier.
func (c *Context) Resolve(id Identifier) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil, &errors.CapabilityDisposedError{Name: id.String()}
	}
	instance, ok := c.instances[id]
	if !ok {
		return nil, &errors.UnboundCapabilityError{Name: id.String()}
	}
	return instance, nil
}

// Dispose disposes every bound instance and invalidates the table. Errors
// from individual instances are aggregated; disposal always completes.
func (c *Context) Dispose(ctx context.Context) error {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.disposed = true
	instances := c.instances
	c.instances = nil
	c.mu.Unlock()

	var err error
	for _, instance := range instances {
		if d, ok := instance.(Disposable); ok {
			err = multierr.Append(err, d.Dispose(ctx))
		}
	}
	return err
}
