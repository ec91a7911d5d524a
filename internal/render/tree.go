package render

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/AnatoleLucet/list"
)

type treeNode struct {
	Label    string     `asciitree:"label"`
	Props    []string   `asciitree:"properties"`
	Children []treeNode `asciitree:"children"`
}

// Tree draws the list as a root node with one child per element, in order.
func Tree[T any](l *list.LinkedList[T]) string {
	root := treeNode{
		Label: "list",
		Props: []string{fmt.Sprintf("size: %d", l.Size())},
	}

	for i, v := range l.All() {
		root.Children = append(root.Children, treeNode{
			Label: fmt.Sprintf("[%d] %v", i, v),
		})
	}

	return asciitree.RenderFancy(root)
}
