// Package handles assigns integer identities to ephemeral objects crossing
// the process boundary, so that a follow-up call can reference them by number
// instead of by value.
package handles

import (
	"sync"

	tally "github.com/uber-go/tally"
)

// Handle is an opaque non-negative integer reference to an object owned by
// the issuing side. A handle is unique within its category for the process
// lifetime and is never reused, so a released handle can never alias a live
// one.
type Handle int64

// Category partitions the handle space by object kind.
type Category string

const (
	// CategoryDocument identifies handles for open text documents.
	CategoryDocument Category = "document"
	// CategoryEditor identifies handles for text editors.
	CategoryEditor Category = "editor"
	// CategoryOutput identifies handles for output channels.
	CategoryOutput Category = "output"
	// CategoryCompletionSet identifies parent handles for completion result sets.
	CategoryCompletionSet Category = "completion-set"
	// CategorySymbolSession identifies parent handles for symbol result sets.
	CategorySymbolSession Category = "symbol-session"
	// CategoryTreeItem identifies handles for tree view items.
	CategoryTreeItem Category = "tree-item"
	// CategoryDecoration identifies handles for decoration providers.
	CategoryDecoration Category = "decoration"
)

// Allocator issues handles per category. Allocation is strictly monotonic
// within a category and never reused within the process lifetime.
type Allocator struct {
	mu    sync.Mutex
	next  map[Category]Handle
	stats tally.Scope
}

// NewAllocator returns a handle Allocator.
func NewAllocator(stats tally.Scope) *Allocator {
	return &Allocator{
		next:  make(map[Category]Handle),
		stats: stats.SubScope("handles"),
	}
}

// Allocate returns the next unused handle for the given category.
func (a *Allocator) Allocate(c Category) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := a.next[c]
	a.next[c] = h + 1
	a.stats.Tagged(map[string]string{"category": string(c)}).Counter("allocated").Inc(1)
	return h
}

// Identified stamps a value with a handle without mutating the value itself.
type Identified[T any] struct {
	Value T
	ID    Handle
}
