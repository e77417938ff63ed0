// Package xnum implements extensible enumerations: named, ordered constant
// sets that downstream projects can extend with their own members at init
// time.
//
// Unlike a plain Go const block, an extensible enumeration is open: the
// defining package registers its base members, and consuming projects add
// theirs to the same namespace without modifying the base package. Members
// are explicit values in an explicit registry; there is no reflection and no
// global discovery.
//
//	var Formats = xnum.NewNamespace[Codec]("formats")
//
//	var (
//		PDF  = xnum.MustRegister(Formats, "pdf", pdfCodec{})
//		XPDF = xnum.MustRegister(Formats, "xpdf", xpdfCodec{})
//	)
//
// Members are looked up by name or ordinal; ordinals follow registration
// order and are stable for the life of the process.
package xnum

import (
	"sync"

	"github.com/pdfclown/go-common/apperror"
)

// Member is a named constant of a namespace, carrying its payload value.
// Members are immutable once registered.
type Member[T any] struct {
	name    string
	ordinal int
	value   T
}

// Name returns the unique member name within its namespace.
func (m *Member[T]) Name() string { return m.name }

// Ordinal returns the zero-based registration index of the member.
func (m *Member[T]) Ordinal() int { return m.ordinal }

// Value returns the payload carried by the member.
func (m *Member[T]) Value() T { return m.value }

// String returns the member name.
func (m *Member[T]) String() string { return m.name }

// Namespace is an open set of named members sharing a payload type.
// All methods are safe for concurrent use.
type Namespace[T any] struct {
	name    string
	mu      sync.RWMutex
	byName  map[string]*Member[T]
	ordered []*Member[T]
}

// NewNamespace creates an empty namespace. The name appears in error
// messages only.
func NewNamespace[T any](name string) *Namespace[T] {
	return &Namespace[T]{
		name:   name,
		byName: make(map[string]*Member[T]),
	}
}

// Name returns the namespace name.
func (n *Namespace[T]) Name() string { return n.name }

// Register adds a new member. Names are unique within the namespace;
// registering a taken name fails and leaves the namespace unchanged.
func (n *Namespace[T]) Register(name string, value T) (*Member[T], error) {
	if name == "" {
		return nil, apperror.NewErrorf("namespace %s: member name must not be empty", n.name)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if _, taken := n.byName[name]; taken {
		return nil, apperror.NewErrorf("namespace %s: member %s already registered", n.name, name)
	}

	m := &Member[T]{name: name, ordinal: len(n.ordered), value: value}
	n.byName[name] = m
	n.ordered = append(n.ordered, m)
	return m, nil
}

// MustRegister is Register for init-time constant definitions; it panics on
// error.
func MustRegister[T any](n *Namespace[T], name string, value T) *Member[T] {
	m, err := n.Register(name, value)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Lookup returns the member with the given name.
func (n *Namespace[T]) Lookup(name string) (*Member[T], bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	m, ok := n.byName[name]
	return m, ok
}

// ByOrdinal returns the member at the given registration index.
func (n *Namespace[T]) ByOrdinal(ordinal int) (*Member[T], bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if ordinal < 0 || ordinal >= len(n.ordered) {
		return nil, false
	}
	return n.ordered[ordinal], true
}

// Members returns all members in registration order.
func (n *Namespace[T]) Members() []*Member[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Member[T], len(n.ordered))
	copy(out, n.ordered)
	return out
}

// Names returns all member names in registration order.
func (n *Namespace[T]) Names() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]string, len(n.ordered))
	for i, m := range n.ordered {
		out[i] = m.name
	}
	return out
}

// Len returns the number of registered members.
func (n *Namespace[T]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.ordered)
}
