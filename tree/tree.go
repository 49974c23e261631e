// Package tree is a minimal generic tree used by puzzles with nested input.
package tree

import (
	"fmt"

	lgtree "github.com/charmbracelet/lipgloss/tree"
)

// Node holds one value and any number of children.
type Node[T any] struct {
	Data     T
	Children []*Node[T]
}

// New returns a leaf node.
func New[T any](data T) *Node[T] {
	return &Node[T]{Data: data}
}

// WithChildren returns a node with the given children.
func WithChildren[T any](data T, children ...*Node[T]) *Node[T] {
	return &Node[T]{Data: data, Children: children}
}

// Add appends children to n and returns n.
func (n *Node[T]) Add(children ...*Node[T]) *Node[T] {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node[T]) HasChildren() bool {
	return len(n.Children) > 0
}

// Len is the number of direct children.
func (n *Node[T]) Len() int {
	return len(n.Children)
}

// Walk visits n and its descendants depth-first, pre-order. Returning false
// from fn stops the walk.
func (n *Node[T]) Walk(fn func(*Node[T]) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Contains reports whether v is held by n or any descendant.
func Contains[T comparable](n *Node[T], v T) bool {
	found := false
	n.Walk(func(m *Node[T]) bool {
		if m.Data == v {
			found = true
		}
		return !found
	})
	return found
}

// Render draws the tree using each node's fmt representation.
func (n *Node[T]) Render() string {
	return n.lipglossTree().String()
}

func (n *Node[T]) lipglossTree() *lgtree.Tree {
	t := lgtree.Root(fmt.Sprint(n.Data))
	for _, c := range n.Children {
		if c.HasChildren() {
			t.Child(c.lipglossTree())
		} else {
			t.Child(fmt.Sprint(c.Data))
		}
	}
	return t
}
