package filetree

import "github.com/temirov/shelltree/internal/transcript"

// Build replays statements against a cursor that starts at a fresh root.
// Directories must be listed before they can be entered; listing the same
// name twice creates two sibling nodes.
func Build(statements []transcript.Statement) (*Tree, error) {
	tree := newTree()
	cursor := tree.Root()

	for _, statement := range statements {
		switch statement.Kind {
		case transcript.StatementChangeDirectory:
			next, navigationError := tree.changeDirectory(cursor, statement)
			if navigationError != nil {
				return nil, navigationError
			}
			cursor = next
		case transcript.StatementListContents:
		case transcript.StatementDirectoryEntry:
			tree.appendNode(cursor, statement.Name, KindDirectory, 0)
		case transcript.StatementFileEntry:
			tree.appendNode(cursor, statement.Name, KindFile, statement.Size)
		}
	}

	return tree, nil
}

func (tree *Tree) changeDirectory(cursor NodeID, statement transcript.Statement) (NodeID, error) {
	switch statement.Name {
	case transcript.ParentDirectoryTarget:
		parent, hasParent := tree.Parent(cursor)
		if !hasParent {
			return cursor, tree.navigationError(cursor, statement, reasonAboveRoot)
		}
		return parent, nil
	case transcript.RootDirectoryTarget:
		return tree.Root(), nil
	default:
		child, found := tree.ChildNamed(cursor, statement.Name)
		if found {
			return child, nil
		}
		for _, sibling := range tree.Children(cursor) {
			if tree.nodes[sibling].Name == statement.Name {
				return cursor, tree.navigationError(cursor, statement, reasonNotDirectory)
			}
		}
		return cursor, tree.navigationError(cursor, statement, reasonUnknownTarget)
	}
}

func (tree *Tree) navigationError(cursor NodeID, statement transcript.Statement, reason string) *NavigationError {
	return &NavigationError{
		Line:   statement.Line,
		Target: statement.Name,
		From:   tree.Path(cursor),
		Reason: reason,
	}
}
