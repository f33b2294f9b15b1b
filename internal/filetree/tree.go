// Package filetree reconstructs a directory tree from transcript statements
// and answers size queries over it.
package filetree

import "strings"

// NodeID addresses a node inside its Tree.
type NodeID int

// NoParent is the parent handle of the root node.
const NoParent NodeID = -1

// NodeKind distinguishes directories from files.
type NodeKind int

const (
	// KindDirectory nodes have no declared size and may have children.
	KindDirectory NodeKind = iota
	// KindFile nodes have a declared size and never have children.
	KindFile
)

const (
	// RootName is the name of every tree root.
	RootName = "/"

	pathSeparator = "/"
)

// Node is a single directory or file. Children are owned by the node;
// Parent is a lookup key only.
type Node struct {
	Name     string
	Kind     NodeKind
	Size     int64
	Parent   NodeID
	Children []NodeID
}

// IsDirectory reports whether the node is a directory.
func (node Node) IsDirectory() bool {
	return node.Kind == KindDirectory
}

// DeclaredSize returns the size of a file node and false for directories.
func (node Node) DeclaredSize() (int64, bool) {
	if node.Kind != KindFile {
		return 0, false
	}
	return node.Size, true
}

// Tree is an arena of nodes. The zero-th node is always the root.
// A Tree is never modified after Build returns it.
type Tree struct {
	nodes []Node
}

func newTree() *Tree {
	return &Tree{nodes: []Node{{Name: RootName, Kind: KindDirectory, Parent: NoParent}}}
}

// appendNode creates a node under parent and returns its handle.
func (tree *Tree) appendNode(parent NodeID, name string, kind NodeKind, size int64) NodeID {
	identifier := NodeID(len(tree.nodes))
	tree.nodes = append(tree.nodes, Node{Name: name, Kind: kind, Size: size, Parent: parent})
	tree.nodes[parent].Children = append(tree.nodes[parent].Children, identifier)
	return identifier
}

// Root returns the root handle.
func (tree *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes including the root.
func (tree *Tree) Len() int {
	return len(tree.nodes)
}

// Node returns a copy of the node. The Children slice is shared and must not be modified.
func (tree *Tree) Node(identifier NodeID) Node {
	return tree.nodes[identifier]
}

// Children returns the ordered child handles of a node.
func (tree *Tree) Children(identifier NodeID) []NodeID {
	return tree.nodes[identifier].Children
}

// Parent returns the parent handle and false for the root.
func (tree *Tree) Parent(identifier NodeID) (NodeID, bool) {
	parent := tree.nodes[identifier].Parent
	return parent, parent != NoParent
}

// ChildNamed returns the first directory child of parent with the given name.
func (tree *Tree) ChildNamed(parent NodeID, name string) (NodeID, bool) {
	for _, child := range tree.nodes[parent].Children {
		if tree.nodes[child].Name == name && tree.nodes[child].IsDirectory() {
			return child, true
		}
	}
	return NoParent, false
}

// Path returns the slash separated location of a node, "/" for the root.
func (tree *Tree) Path(identifier NodeID) string {
	var segments []string
	for current := identifier; current != tree.Root(); current = tree.nodes[current].Parent {
		segments = append(segments, tree.nodes[current].Name)
	}
	if len(segments) == 0 {
		return RootName
	}
	var builder strings.Builder
	for index := len(segments) - 1; index >= 0; index-- {
		builder.WriteString(pathSeparator)
		builder.WriteString(segments[index])
	}
	return builder.String()
}
