package commands

import (
	"errors"
	"fmt"

	"github.com/temirov/shelltree/internal/filetree"
	"github.com/temirov/shelltree/internal/transcript"
	"github.com/temirov/shelltree/internal/types"
)

const (
	// DefaultThreshold is the deletable-total cut-off.
	DefaultThreshold int64 = 100000
	// DefaultCapacity is the disk size used by smallest-sufficient.
	DefaultCapacity int64 = 70000000
	// DefaultRequiredFree is the unused space smallest-sufficient must reach.
	DefaultRequiredFree int64 = 30000000

	errorParseSourceFormat   = "parsing %s: %w"
	errorBuildSourceFormat   = "replaying %s: %w"
)

// AnalysisOptions configures the two size queries.
type AnalysisOptions struct {
	Threshold    int64
	Capacity     int64
	RequiredFree int64
}

// DefaultAnalysisOptions returns the thresholds used when nothing is configured.
func DefaultAnalysisOptions() AnalysisOptions {
	return AnalysisOptions{
		Threshold:    DefaultThreshold,
		Capacity:     DefaultCapacity,
		RequiredFree: DefaultRequiredFree,
	}
}

// BuildTree parses a transcript and replays it into a directory tree.
func BuildTree(source Source) (*filetree.Tree, error) {
	statements, parseError := transcript.ParseText(source.Text)
	if parseError != nil {
		return nil, fmt.Errorf(errorParseSourceFormat, source.Name, parseError)
	}
	tree, buildError := filetree.Build(statements)
	if buildError != nil {
		return nil, fmt.Errorf(errorBuildSourceFormat, source.Name, buildError)
	}
	return tree, nil
}

// AnalyzeTranscript answers the deletable-total and smallest-sufficient
// queries for a single transcript. When no directory frees enough space the
// deletable total is still reported and Unavailable describes the shortfall.
func AnalyzeTranscript(source Source, options AnalysisOptions) (*types.AnalysisOutput, error) {
	tree, buildError := BuildTree(source)
	if buildError != nil {
		return nil, buildError
	}
	analyzer := filetree.NewAnalyzer(tree)

	deletable := analyzer.DeletableDirectories(options.Threshold)
	deletableSizes := make([]types.DirectorySize, 0, len(deletable))
	var deletableTotal int64
	for _, identifier := range deletable {
		total := analyzer.TotalSize(identifier)
		deletableTotal += total
		deletableSizes = append(deletableSizes, types.DirectorySize{Path: tree.Path(identifier), Size: total})
	}

	selected, requirement, selectError := analyzer.SmallestSufficient(options.Capacity, options.RequiredFree)
	analysis := &types.AnalysisOutput{
		Source:               source.Name,
		Threshold:            options.Threshold,
		DeletableTotal:       deletableTotal,
		DeletableDirectories: deletableSizes,
		Capacity:             requirement.Capacity,
		RequiredFree:         requirement.RequiredFree,
		Used:                 requirement.Used,
		Unused:               requirement.Unused,
		Required:             requirement.Required,
	}
	if selectError != nil {
		if !errors.Is(selectError, filetree.ErrNoSufficientDirectory) {
			return nil, selectError
		}
		analysis.Unavailable = selectError.Error()
		return analysis, nil
	}
	analysis.SmallestSufficient = &types.DirectorySize{
		Path: tree.Path(selected),
		Size: analyzer.TotalSize(selected),
	}
	return analysis, nil
}

// ParseTranscript lists the statements recognized in a transcript.
func ParseTranscript(source Source) (*types.ParseOutput, error) {
	statements, parseError := transcript.ParseText(source.Text)
	if parseError != nil {
		return nil, fmt.Errorf(errorParseSourceFormat, source.Name, parseError)
	}
	parsed := &types.ParseOutput{Source: source.Name, Statements: make([]types.StatementOutput, 0, len(statements))}
	for _, statement := range statements {
		parsed.Statements = append(parsed.Statements, types.StatementOutput{
			Line: statement.Line,
			Kind: statement.Kind.String(),
			Name: statement.Name,
			Size: statement.Size,
			Text: statement.String(),
		})
	}
	return parsed, nil
}
