package internal

import "iter"

type Node[T any] struct {
	Value T

	// the only reference to the following node, nil at the tail
	next *Node[T]
}

// Chain is a singly-linked sequence of nodes.
// Nodes are only ever relinked through Chain methods, so every node has exactly one owner:
// either the chain's head or its predecessor.
type Chain[T any] struct {
	head *Node[T]
}

func (c *Chain[T]) Head() *Node[T] {
	return c.head
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Len walks the whole chain.
func (c *Chain[T]) Len() int {
	count := 0
	for node := c.head; node != nil; node = node.next {
		count++
	}

	return count
}

// At returns the node reached after following `index` links from the head,
// or nil if the chain ends before that.
func (c *Chain[T]) At(index int) *Node[T] {
	if index < 0 {
		return nil
	}

	node := c.head
	for range index {
		if node == nil {
			return nil
		}

		node = node.next
	}

	return node
}

func (c *Chain[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{Value: value, next: c.head}
	c.head = node

	return node
}

// InsertAfter links a new node between prev and its current successor (which may be nil).
func (c *Chain[T]) InsertAfter(prev *Node[T], value T) *Node[T] {
	node := &Node[T]{Value: value, next: prev.next}
	prev.next = node

	return node
}

// PopFront detaches the head, returning nil on an empty chain.
func (c *Chain[T]) PopFront() *Node[T] {
	node := c.head
	if node == nil {
		return nil
	}

	c.head = node.next
	node.next = nil

	return node
}

// UnlinkAfter detaches prev's successor and links prev to the node after it.
// Returns nil, leaving the chain untouched, when prev is the tail.
func (c *Chain[T]) UnlinkAfter(prev *Node[T]) *Node[T] {
	node := prev.next
	if node == nil {
		return nil
	}

	prev.next = node.next
	node.next = nil

	return node
}

func (c *Chain[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		node := c.head

		for node != nil {
			if !yield(node) {
				return
			}

			node = node.next
		}
	}
}
