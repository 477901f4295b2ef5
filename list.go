// A generic singly-linked list.
//
// A List is not safe for concurrent use. Callers that share one across
// goroutines must provide their own synchronization.
package slist

import (
	"github.com/pkg/errors"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List owns its nodes through head. tail is only a shortcut to the last
// node so that PushBack and Back don't have to walk the chain.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Returns the first element, or ErrEmptyContainer.
func (l *List[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, emptyError("front")
	}
	return l.head.value, nil
}

// Returns the last element, or ErrEmptyContainer.
func (l *List[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, emptyError("back")
	}
	return l.tail.value, nil
}

func (l *List[T]) PopFront() error {
	if l.size == 0 {
		return emptyError("pop front")
	}
	l.unlink(nil, l.head)
	return nil
}

// Removes the last element. There are no back links, so this walks the
// whole chain to find the new tail.
func (l *List[T]) PopBack() error {
	if l.size == 0 {
		return emptyError("pop back")
	}
	var prev *node[T]
	if l.size > 1 {
		prev = l.nodeAt(l.size - 2)
	}
	l.unlink(prev, l.tail)
	return nil
}

// Inserts value so that it ends up at position. position may equal Size(),
// which appends. An empty list is rejected, even for position 0; use
// PushFront or PushBack to seed it.
func (l *List[T]) Insert(position int, value T) error {
	if l.size == 0 {
		return emptyError("insert")
	}
	if position < 0 || position > l.size {
		return rangeError("insert", position, l.size)
	}

	switch position {
	case 0:
		l.PushFront(value)
	case l.size:
		l.PushBack(value)
	default:
		prev := l.nodeAt(position - 1)
		prev.next = &node[T]{value: value, next: prev.next}
		l.size++
	}
	return nil
}

func (l *List[T]) Erase(position int) error {
	if l.size == 0 {
		return emptyError("erase")
	}
	if position < 0 || position >= l.size {
		return rangeError("erase", position, l.size)
	}

	switch position {
	case 0:
		return l.PopFront()
	case l.size - 1:
		return l.PopBack()
	}
	prev := l.nodeAt(position - 1)
	l.unlink(prev, prev.next)
	return nil
}

func (l *List[T]) Clear() {
	for l.head != nil {
		l.unlink(nil, l.head)
	}
}

// Returns a pointer to the element at position. Writing through the pointer
// updates the list in place. The pointer is only meaningful while the
// element remains in the list.
func (l *List[T]) At(position int) (*T, error) {
	if l.size == 0 {
		return nil, emptyError("at")
	}
	if position < 0 || position >= l.size {
		return nil, rangeError("at", position, l.size)
	}
	return &l.nodeAt(position).value, nil
}

// Removes every element for which match returns true, in a single pass
// from front to back. Consecutive matches are all removed.
func (l *List[T]) RemoveFunc(match func(T) bool) error {
	if l.size == 0 {
		return emptyError("remove")
	}

	var prev *node[T]
	for n := l.head; n != nil; {
		next := n.next
		if match(n.value) {
			l.unlink(prev, n)
		} else {
			prev = n
		}
		n = next
	}
	return nil
}

// position must be within [0, size)
func (l *List[T]) nodeAt(position int) *node[T] {
	n := l.head
	for i := 0; i < position; i++ {
		n = n.next
	}
	return n
}

// Detaches n, whose predecessor is prev (nil when n is the head).
func (l *List[T]) unlink(prev *node[T], n *node[T]) {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if l.tail == n {
		l.tail = prev
	}
	n.next = nil
	l.size--
}

func emptyError(op string) error {
	return errors.Wrap(ErrEmptyContainer, op)
}

func rangeError(op string, position int, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s at %d with size %d", op, position, size)
}
