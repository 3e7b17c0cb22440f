package ringlist

import (
	"fmt"
	"strings"
)

// node is a single link in the ring. Every node, including the sentinel,
// always has non-nil `next` and `prev` pointers while it belongs to a list;
// in a single-node ring both may point back at the node itself.
type node[T comparable] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// List is a doubly-linked list closed into a ring by a sentinel node. The
// sentinel's successor is the front (most recently added) element and its
// predecessor is the back; for an empty list both point at the sentinel
// itself. The sentinel holds the zero value of T and is never list content.
type List[T comparable] struct {
	size     int
	sentinel *node[T]
}

// New constructs an empty list. The sentinel is allocated with nil links and
// then patched to reference itself; a node can't name itself before it
// exists.
func New[T comparable]() *List[T] {
	sentinel := &node[T]{}
	sentinel.next = sentinel
	sentinel.prev = sentinel
	return &List[T]{sentinel: sentinel}
}

// Len returns the number of real (non-sentinel) nodes.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no real nodes.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Add inserts value at the front of the list, immediately after the
// sentinel. The previous front node (when there is one) gets its `prev`
// repointed at the new node so the inverse-link invariant survives the
// splice.
func (l *List[T]) Add(value T) {
	n := &node[T]{
		value: value,
		prev:  l.sentinel,
		next:  l.sentinel.next,
	}

	if l.sentinel.next != l.sentinel {
		l.sentinel.next.prev = n
	} else {
		// empty ring: the sentinel is its own neighbor in both
		// directions, so the new node is also the new back
		l.sentinel.prev = n
	}

	l.sentinel.next = n
	l.size++
}

// RemoveIndex unlinks the node at the given front-relative index and returns
// its value. Index 0 is the most recently added element. The list is left
// unchanged on any error.
func (l *List[T]) RemoveIndex(index int) (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, EmptyListErr
	}
	if index < 0 || index >= l.size {
		return zero, fmt.Errorf(
			"removing index `%d` from list of size `%d`: %w",
			index,
			l.size,
			IndexOutOfBoundsErr,
		)
	}

	current := l.sentinel.next
	for i := 0; i < l.size; i++ {
		if i == index {
			current.prev.next = current.next
			current.next.prev = current.prev

			// drop the node's own links so it holds nothing alive
			value := current.value
			current.next = nil
			current.prev = nil

			l.size--
			return value, nil
		}
		current = current.next
	}

	// unreachable while the ring invariants hold: the loop above visits
	// every real node and index was already bounds-checked
	return zero, fmt.Errorf(
		"removing index `%d` from list of size `%d`: %w",
		index,
		l.size,
		NotFoundErr,
	)
}

// IndexOf returns the front-relative index of the first node whose value
// equals value, or false if no node matches. The walk is bounded by the
// list's size rather than by a sentinel identity check.
func (l *List[T]) IndexOf(value T) (int, bool) {
	current := l.sentinel.next
	for i := 0; i < l.size; i++ {
		if current.value == value {
			return i, true
		}
		current = current.next
	}
	return 0, false
}

// String renders the list front to back, each value followed by an arrow,
// closed by the sentinel marker:
//
//	c -> b -> a -> (sentinel)
//
// An empty list renders as just the marker. The walk is size-bounded, so a
// corrupted ring renders partially instead of looping forever.
func (l *List[T]) String() string {
	var sb strings.Builder
	current := l.sentinel.next
	for i := 0; i < l.size; i++ {
		fmt.Fprintf(&sb, "%v -> ", current.value)
		current = current.next
	}
	sb.WriteString("(sentinel)\n")
	return sb.String()
}
