package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() *Node[string] {
	return WithChildren("/",
		WithChildren("a", New("e")),
		New("b.txt"),
		WithChildren("d", New("j"), New("k")),
	)
}

func TestChildren(t *testing.T) {
	root := sample()
	assert.True(t, root.HasChildren())
	assert.Equal(t, 3, root.Len())
	assert.False(t, root.Children[1].HasChildren())
	assert.Equal(t, 0, root.Children[1].Len())
}

func TestContains(t *testing.T) {
	root := sample()
	assert.True(t, Contains(root, "/"))
	assert.True(t, Contains(root, "k"))
	assert.False(t, Contains(root, "z"))
}

func TestWalk_PreOrderAndStop(t *testing.T) {
	var seen []string
	sample().Walk(func(n *Node[string]) bool {
		seen = append(seen, n.Data)
		return n.Data != "b.txt"
	})
	assert.Equal(t, []string{"/", "a", "e", "b.txt"}, seen)
}

func TestRender_ContainsEveryNode(t *testing.T) {
	out := New(1).Add(New(2).Add(New(3)), New(4)).Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, want := range []string{"1", "2", "3", "4"} {
		assert.Contains(t, out, want)
	}
}
