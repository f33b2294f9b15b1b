package commands

import (
	"github.com/edwingeng/deque"

	"github.com/temirov/shelltree/internal/filetree"
	"github.com/temirov/shelltree/internal/types"
	"github.com/temirov/shelltree/internal/utils"
)

// TreeBuilder converts reconstructed trees into output nodes using configured options.
type TreeBuilder struct {
	IncludeSummary bool
}

// pendingNode pairs an arena handle with the output node it fills.
type pendingNode struct {
	identifier filetree.NodeID
	node       *types.TreeOutputNode
}

// GetTreeData replays a transcript and returns its root as an output node.
// Every directory carries its recursive total size.
func (treeBuilder *TreeBuilder) GetTreeData(source Source) (*types.TreeOutputNode, error) {
	tree, buildError := BuildTree(source)
	if buildError != nil {
		return nil, buildError
	}
	analyzer := filetree.NewAnalyzer(tree)

	rootNode := treeBuilder.newOutputNode(analyzer, tree.Root())
	rootNode.Source = source.Name

	worklist := deque.NewDeque()
	worklist.PushBack(pendingNode{identifier: tree.Root(), node: rootNode})
	for !worklist.Empty() {
		current := worklist.PopFront().(pendingNode)
		for _, child := range tree.Children(current.identifier) {
			childNode := treeBuilder.newOutputNode(analyzer, child)
			current.node.Children = append(current.node.Children, childNode)
			if tree.Node(child).IsDirectory() {
				worklist.PushBack(pendingNode{identifier: child, node: childNode})
			}
		}
	}

	if treeBuilder.IncludeSummary {
		files, directories := collectSummary(tree)
		applySummary(rootNode, files, directories)
	}
	return rootNode, nil
}

func (treeBuilder *TreeBuilder) newOutputNode(analyzer *filetree.Analyzer, identifier filetree.NodeID) *types.TreeOutputNode {
	tree := analyzer.Tree()
	node := tree.Node(identifier)
	nodeType := types.NodeTypeFile
	if node.IsDirectory() {
		nodeType = types.NodeTypeDirectory
	}
	total := analyzer.TotalSize(identifier)
	return &types.TreeOutputNode{
		Path:      tree.Path(identifier),
		Name:      node.Name,
		Type:      nodeType,
		Size:      total,
		HumanSize: utils.FormatFileSize(total),
	}
}

// collectSummary counts files and directories below the root.
func collectSummary(tree *filetree.Tree) (int, int) {
	var totalFiles, totalDirectories int
	for _, identifier := range filetree.Flatten(tree, tree.Root())[1:] {
		if tree.Node(identifier).IsDirectory() {
			totalDirectories++
		} else {
			totalFiles++
		}
	}
	return totalFiles, totalDirectories
}

// applySummary stores aggregate counts on the node.
func applySummary(node *types.TreeOutputNode, totalFiles int, totalDirectories int) {
	node.TotalFiles = totalFiles
	node.TotalDirectories = totalDirectories
}
