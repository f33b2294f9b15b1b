package filetree

import (
	"fmt"
	"slices"

	"github.com/edwingeng/deque"
)

const errorNoSufficientDirectoryFormat = "%w: need %d more, largest directory holds %d"

// TotalSize returns the declared size of a file, or the sum of every file
// below a directory. It walks an explicit worklist so deep trees are safe.
func TotalSize(tree *Tree, identifier NodeID) int64 {
	var total int64
	for _, descendant := range Flatten(tree, identifier) {
		if size, isFile := tree.nodes[descendant].DeclaredSize(); isFile {
			total += size
		}
	}
	return total
}

// Flatten lists identifier and all of its descendants in pre-order.
func Flatten(tree *Tree, identifier NodeID) []NodeID {
	var ordered []NodeID
	worklist := deque.NewDeque()
	worklist.PushBack(identifier)
	for !worklist.Empty() {
		current := worklist.PopBack().(NodeID)
		ordered = append(ordered, current)
		children := tree.nodes[current].Children
		for index := len(children) - 1; index >= 0; index-- {
			worklist.PushBack(children[index])
		}
	}
	return ordered
}

// SpaceRequirement captures the figures behind a smallest-sufficient query.
type SpaceRequirement struct {
	Capacity     int64
	RequiredFree int64
	Used         int64
	Unused       int64
	Required     int64
}

// Analyzer answers size queries over a finished tree. Totals are computed
// once because the tree never changes after Build.
type Analyzer struct {
	tree   *Tree
	totals []int64
}

// NewAnalyzer memoises the total size of every node in tree.
func NewAnalyzer(tree *Tree) *Analyzer {
	totals := make([]int64, tree.Len())
	// Children always have larger handles than their parent, so a reverse
	// sweep sees every child before its parent.
	for index := tree.Len() - 1; index >= 0; index-- {
		node := tree.nodes[index]
		if size, isFile := node.DeclaredSize(); isFile {
			totals[index] += size
		}
		if node.Parent != NoParent {
			totals[node.Parent] += totals[index]
		}
	}
	return &Analyzer{tree: tree, totals: totals}
}

// Tree returns the analysed tree.
func (analyzer *Analyzer) Tree() *Tree {
	return analyzer.tree
}

// TotalSize returns the memoised total of a node.
func (analyzer *Analyzer) TotalSize(identifier NodeID) int64 {
	return analyzer.totals[identifier]
}

// Directories lists every directory, root included, in pre-order.
func (analyzer *Analyzer) Directories() []NodeID {
	var directories []NodeID
	for _, identifier := range Flatten(analyzer.tree, analyzer.tree.Root()) {
		if analyzer.tree.nodes[identifier].IsDirectory() {
			directories = append(directories, identifier)
		}
	}
	return directories
}

// DeletableDirectories returns every directory whose total is below threshold.
// Nested matches are reported independently of their ancestors.
func (analyzer *Analyzer) DeletableDirectories(threshold int64) []NodeID {
	var deletable []NodeID
	for _, identifier := range analyzer.Directories() {
		if analyzer.totals[identifier] < threshold {
			deletable = append(deletable, identifier)
		}
	}
	return deletable
}

// DeletableTotal sums the totals of DeletableDirectories(threshold).
func (analyzer *Analyzer) DeletableTotal(threshold int64) int64 {
	var sum int64
	for _, identifier := range analyzer.DeletableDirectories(threshold) {
		sum += analyzer.totals[identifier]
	}
	return sum
}

// Requirement computes how much must be freed on a disk of the given capacity
// to reach requiredFree unused space.
func (analyzer *Analyzer) Requirement(capacity, requiredFree int64) SpaceRequirement {
	used := analyzer.totals[analyzer.tree.Root()]
	unused := capacity - used
	return SpaceRequirement{
		Capacity:     capacity,
		RequiredFree: requiredFree,
		Used:         used,
		Unused:       unused,
		Required:     requiredFree - unused,
	}
}

// SmallestSufficient picks the smallest directory whose deletion frees enough
// space. Ties keep pre-order, the first directory encountered wins.
func (analyzer *Analyzer) SmallestSufficient(capacity, requiredFree int64) (NodeID, SpaceRequirement, error) {
	requirement := analyzer.Requirement(capacity, requiredFree)
	var candidates []NodeID
	for _, identifier := range analyzer.Directories() {
		if analyzer.totals[identifier] >= requirement.Required {
			candidates = append(candidates, identifier)
		}
	}
	if len(candidates) == 0 {
		return NoParent, requirement, fmt.Errorf(errorNoSufficientDirectoryFormat, ErrNoSufficientDirectory, requirement.Required, requirement.Used)
	}
	slices.SortStableFunc(candidates, func(left, right NodeID) int {
		switch {
		case analyzer.totals[left] < analyzer.totals[right]:
			return -1
		case analyzer.totals[left] > analyzer.totals[right]:
			return 1
		default:
			return 0
		}
	})
	return candidates[0], requirement, nil
}
