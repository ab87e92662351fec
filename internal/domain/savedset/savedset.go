// Package savedset tracks the items a user has bookmarked.
package savedset

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/huntersfinds/internal/domain/model"
)

// Set is the saved item collection. An item is identified by (id, kind), so
// a dish and a restaurant may share an id without colliding.
type Set interface {
	// Toggle adds the item if absent and removes it if present.
	// It returns the membership after the call.
	Toggle(ctx context.Context, id string, kind model.ItemKind, name string) bool

	IsSaved(ctx context.Context, id string, kind model.ItemKind) bool

	// List returns saved entries in the order they were saved.
	List(ctx context.Context) []model.SavedEntry

	Size() int64
}

type key struct {
	id   string
	kind model.ItemKind
}

// node is one entry of the insertion-ordered list.
type node struct {
	entry      model.SavedEntry
	prev, next *node
}

func (n *node) reset() {
	n.entry = model.SavedEntry{}
	n.prev = nil
	n.next = nil
}

// MemorySet implements Set with a map for lookup and a doubly linked list
// for save order. Removal is O(1).
type MemorySet struct {
	mu       sync.RWMutex
	index    map[key]*node
	head     *node // oldest
	tail     *node // newest
	size     atomic.Int64
	now      func() time.Time
	nodePool sync.Pool
}

var _ Set = (*MemorySet)(nil)

// New creates an empty saved set.
func New(opts ...Option) *MemorySet {
	s := &MemorySet{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.index = make(map[key]*node)
	s.nodePool = sync.Pool{
		New: func() any {
			return &node{}
		},
	}
	return s
}

// Toggle flips membership of (id, kind). A newly saved entry records name
// and the current time.
func (s *MemorySet) Toggle(_ context.Context, id string, kind model.ItemKind, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{id: id, kind: kind}
	if n, ok := s.index[k]; ok {
		s.removeLocked(k, n)
		return false
	}

	n := s.nodePool.Get().(*node)
	n.entry = model.SavedEntry{ID: id, Kind: kind, Name: name, SavedAt: s.now()}
	n.prev = s.tail
	if s.tail != nil {
		s.tail.next = n
	} else {
		s.head = n
	}
	s.tail = n
	s.index[k] = n
	s.size.Add(1)
	return true
}

// IsSaved reports whether (id, kind) is saved.
func (s *MemorySet) IsSaved(_ context.Context, id string, kind model.ItemKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[key{id: id, kind: kind}]
	return ok
}

// List returns a snapshot of saved entries, oldest first.
func (s *MemorySet) List(_ context.Context) []model.SavedEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.SavedEntry, 0, len(s.index))
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.entry)
	}
	return out
}

// Size returns the number of saved entries.
func (s *MemorySet) Size() int64 {
	return s.size.Load()
}

// removeLocked unlinks n. Must be called with s.mu held.
func (s *MemorySet) removeLocked(k key, n *node) {
	delete(s.index, k)
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	n.reset()
	s.nodePool.Put(n)
	s.size.Add(-1)
}
