package list

import (
	"fmt"
	"iter"
)

// All yields each index and value from head to tail.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for node := range l.chain.Nodes() {
			if !yield(i, node.Value) {
				return
			}
			i++
		}
	}
}

// Values yields each value from head to tail.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range l.chain.Nodes() {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Slice copies the values into a new slice, never nil.
func (l *LinkedList[T]) Slice() []T {
	out := make([]T, 0)
	for v := range l.Values() {
		out = append(out, v)
	}

	return out
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.Slice())
}
