package proxy

import (
	"github.com/nimbus-ide/exthost/src/exthost/internal/errors"
	"go.uber.org/fx"
)

// Module provides the process-wide Registry.
var Module = fx.Provide(NewRegistry)

// Registry is the process-scoped table of capability identifiers and their
// shape descriptors. It is constructed once at startup and never modified
// afterwards; capabilities are discovered at process connection time, and no
// runtime unregistration is supported.
type Registry struct {
	byName      map[Side]map[string]Identifier
	descriptors map[Identifier]Descriptor
	methodKinds map[string]Kind
}

// NewRegistry builds the Registry from the full set of capability
// descriptors. A duplicate name on the same side fails construction.
func NewRegistry() (*Registry, error) {
	r := &Registry{
		byName: map[Side]map[string]Identifier{
			SideHost:      make(map[string]Identifier),
			SideExtension: make(map[string]Identifier),
		},
		descriptors: make(map[Identifier]Descriptor),
		methodKinds: make(map[string]Kind),
	}

	for _, d := range descriptors() {
		if _, ok := r.byName[d.ID.Side()][d.ID.Name()]; ok {
			return nil, &errors.DuplicateCapabilityError{Name: d.ID.String()}
		}
		r.byName[d.ID.Side()][d.ID.Name()] = d.ID
		r.descriptors[d.ID] = d
		for method, kind := range d.Methods {
			r.methodKinds[method] = kind
		}
	}

	return r, nil
}

// Lookup returns the identifier registered under the given name and side.
func (r *Registry) Lookup(name string, side Side) (Identifier, bool) {
	id, ok := r.byName[side][name]
	return id, ok
}

// Descriptor returns the shape descriptor for an identifier.
func (r *Registry) Descriptor(id Identifier) (Descriptor, bool) {
	d, ok := r.descriptors[id]
	return d, ok
}

// MethodKind returns the calling discipline of a wire method. Methods absent
// from every descriptor report as requests, so unknown methods still produce
// a caller-visible failure instead of being silently dropped.
func (r *Registry) MethodKind(method string) Kind {
	if kind, ok := r.methodKinds[method]; ok {
		return kind
	}
	return KindRequest
}
