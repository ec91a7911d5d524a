package list

import "github.com/AnatoleLucet/list/internal"

// List is the capability shared by index-addressed sequences.
// Failing operations return an error wrapping ErrIndexOutOfBounds and leave the sequence untouched.
type List[T any] interface {
	// Size returns the number of elements.
	Size() int

	// Get returns the element at index, valid in [0, Size()).
	Get(index int) (T, error)

	// Set replaces the element at index, valid in [0, Size()), and returns the previous one.
	Set(index int, value T) (T, error)

	// Add inserts value so that it ends up at index, shifting later elements back.
	// Valid in [0, Size()], where Size() appends.
	Add(index int, value T) (List[T], error)

	// Remove deletes the element at index, valid in [0, Size()), shifting later elements forward.
	Remove(index int) (T, error)
}

// LinkedList is a singly-linked List. The zero value is an empty list ready to use.
//
// Size is not cached: Size, and every index lookup, walks the chain from the head.
type LinkedList[T any] struct {
	chain internal.Chain[T]
}

var _ List[int] = (*LinkedList[int])(nil)

// New creates an empty linked list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Size() int {
	return l.chain.Len()
}

func (l *LinkedList[T]) Get(index int) (T, error) {
	node := l.chain.At(index)
	if node == nil {
		var zero T
		return zero, outOfBounds("get", index)
	}

	return node.Value, nil
}

func (l *LinkedList[T]) Set(index int, value T) (T, error) {
	node := l.chain.At(index)
	if node == nil {
		var zero T
		return zero, outOfBounds("set", index)
	}

	old := node.Value
	node.Value = value

	return old, nil
}

// Add returns the list itself on success so calls can be chained.
func (l *LinkedList[T]) Add(index int, value T) (List[T], error) {
	if index == 0 {
		l.chain.PushFront(value)
		return l, nil
	}

	// the predecessor has to exist, which bounds index to Size()
	prev := l.chain.At(index - 1)
	if prev == nil {
		return nil, outOfBounds("add", index)
	}

	l.chain.InsertAfter(prev, value)
	return l, nil
}

func (l *LinkedList[T]) Remove(index int) (T, error) {
	var zero T

	if index == 0 {
		node := l.chain.PopFront()
		if node == nil {
			return zero, outOfBounds("remove", index)
		}

		return node.Value, nil
	}

	prev := l.chain.At(index - 1)
	if prev == nil {
		return zero, outOfBounds("remove", index)
	}

	node := l.chain.UnlinkAfter(prev)
	if node == nil {
		return zero, outOfBounds("remove", index)
	}

	return node.Value, nil
}
