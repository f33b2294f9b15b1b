// Package output renders command results as raw text, JSON, or XML.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/temirov/shelltree/internal/types"
	"github.com/temirov/shelltree/internal/utils"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	separatorLine  = "----------------------------------------"
	xmlHeader      = xml.Header
	xmlRootElement = "results"

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	treeDirectoryFormat   = "%s%s (%d, %s)\n"
	treeFileFormat        = "%s[File] %s (%d, %s)\n"
	treeSourceFormat      = "--- Directory Tree: %s ---\n"
	summaryLineFormat     = "Summary: %d %s, %d %s, %s"
	analysisSourceFormat  = "Transcript: %s\n"
	deletableHeaderFormat = "Deletable total (directories under %d): %d\n"
	deletableEntryFormat  = "  %s %d\n"
	usageLineFormat       = "Used: %d of %d (unused %d)\n"
	requiredLineFormat    = "Required: %d to reach %d free\n"
	smallestLineFormat    = "Smallest sufficient: %s %d (%s)\n"
	unavailableLineFormat = "Smallest sufficient: none (%s)\n"
	statementLineFormat   = "%s:%d: %s\n"

	errorUnsupportedFormat = "unsupported output format %q"
)

// RawOptions controls raw text rendering.
type RawOptions struct {
	IncludeSummary bool
	Highlight      bool
}

// Render formats collected results in the requested format.
func Render(writer io.Writer, format string, commandName string, collected []interface{}, options RawOptions) error {
	switch format {
	case types.FormatJSON:
		rendered, renderError := RenderJSON(collected)
		if renderError != nil {
			return renderError
		}
		_, writeError := fmt.Fprintln(writer, rendered)
		return writeError
	case types.FormatXML:
		rendered, renderError := RenderXML(collected)
		if renderError != nil {
			return renderError
		}
		_, writeError := fmt.Fprintln(writer, rendered)
		return writeError
	case types.FormatRaw:
		return RenderRaw(writer, commandName, collected, options)
	default:
		return fmt.Errorf(errorUnsupportedFormat, format)
	}
}

// RenderJSON marshals results to JSON. A single result is written as an object.
func RenderJSON(collected []interface{}) (string, error) {
	if len(collected) == 0 {
		return "[]", nil
	}
	if len(collected) == 1 {
		encoded, jsonEncodeError := json.MarshalIndent(collected[0], indentPrefix, indentSpacer)
		return string(encoded), jsonEncodeError
	}
	encoded, jsonEncodeError := json.MarshalIndent(collected, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderXML marshals results to an XML document. Multiple results share a
// results root element.
func RenderXML(collected []interface{}) (string, error) {
	if len(collected) == 1 {
		encoded, xmlMarshalError := xml.MarshalIndent(collected[0], indentPrefix, indentSpacer)
		if xmlMarshalError != nil {
			return "", xmlMarshalError
		}
		return xmlHeader + string(encoded), nil
	}
	wrapper := struct {
		XMLName xml.Name      `xml:""`
		Items   []interface{} `xml:"item"`
	}{
		XMLName: xml.Name{Local: xmlRootElement},
		Items:   collected,
	}
	encoded, xmlMarshalError := xml.MarshalIndent(wrapper, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded), nil
}

// RenderRaw prints results in raw text format, separating transcripts.
func RenderRaw(writer io.Writer, commandName string, collected []interface{}, options RawOptions) error {
	for index, item := range collected {
		if index > 0 {
			fmt.Fprintln(writer, separatorLine)
		}
		switch outputItem := item.(type) {
		case *types.TreeOutputNode:
			if commandName == types.CommandTree {
				if len(collected) > 1 {
					fmt.Fprintf(writer, treeSourceFormat, outputItem.Source)
				}
				WriteTreeRaw(writer, outputItem, options)
			}
		case *types.AnalysisOutput:
			if commandName == types.CommandAnalyze {
				WriteAnalysisRaw(writer, outputItem)
			}
		case *types.ParseOutput:
			if commandName == types.CommandParse {
				WriteStatementsRaw(writer, outputItem)
			}
		}
	}
	return nil
}

// WriteTreeRaw renders a directory tree with box-drawing connectors.
func WriteTreeRaw(writer io.Writer, node *types.TreeOutputNode, options RawOptions) {
	if node == nil {
		return
	}
	directoryPaint := color.New(color.FgBlue, color.Bold)
	if options.Highlight {
		directoryPaint.EnableColor()
	} else {
		directoryPaint.DisableColor()
	}
	renderTreeNode(writer, node, "", true, true, directoryPaint)
	if options.IncludeSummary {
		fmt.Fprintln(writer, FormatSummaryLine(node))
	}
}

// WriteAnalysisRaw prints both query answers for one transcript.
func WriteAnalysisRaw(writer io.Writer, analysis *types.AnalysisOutput) {
	if analysis == nil {
		return
	}
	fmt.Fprintf(writer, analysisSourceFormat, analysis.Source)
	fmt.Fprintf(writer, deletableHeaderFormat, analysis.Threshold, analysis.DeletableTotal)
	for _, directory := range analysis.DeletableDirectories {
		fmt.Fprintf(writer, deletableEntryFormat, directory.Path, directory.Size)
	}
	fmt.Fprintf(writer, usageLineFormat, analysis.Used, analysis.Capacity, analysis.Unused)
	fmt.Fprintf(writer, requiredLineFormat, analysis.Required, analysis.RequiredFree)
	if analysis.SmallestSufficient == nil {
		fmt.Fprintf(writer, unavailableLineFormat, analysis.Unavailable)
		return
	}
	fmt.Fprintf(writer, smallestLineFormat, analysis.SmallestSufficient.Path, analysis.SmallestSufficient.Size, utils.FormatFileSize(analysis.SmallestSufficient.Size))
}

// WriteStatementsRaw prints every recognized statement prefixed with its location.
func WriteStatementsRaw(writer io.Writer, parsed *types.ParseOutput) {
	if parsed == nil {
		return
	}
	for _, statement := range parsed.Statements {
		fmt.Fprintf(writer, statementLineFormat, parsed.Source, statement.Line, statement.Text)
	}
}

// FormatSummaryLine formats the file and directory counts of a tree root.
func FormatSummaryLine(node *types.TreeOutputNode) string {
	if node == nil {
		node = &types.TreeOutputNode{}
	}
	return fmt.Sprintf(summaryLineFormat,
		node.TotalFiles, pluralize(node.TotalFiles, "file", "files"),
		node.TotalDirectories, pluralize(node.TotalDirectories, "directory", "directories"),
		utils.FormatFileSize(node.Size))
}

func pluralize(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

func treeNodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := treeBranchConnector
	childPrefix := prefix + treeBranchPadding
	if isLast {
		connector = treeLastConnector
		childPrefix = prefix + treeLastPadding
	}
	return prefix + connector, childPrefix
}

func renderTreeNode(writer io.Writer, node *types.TreeOutputNode, prefix string, isRoot bool, isLast bool, directoryPaint *color.Color) {
	linePrefix, childPrefix := treeNodeLinePrefix(prefix, isRoot, isLast)
	if node.Type == types.NodeTypeFile {
		fmt.Fprintf(writer, treeFileFormat, linePrefix, node.Name, node.Size, humanSize(node))
		return
	}
	fmt.Fprintf(writer, treeDirectoryFormat, linePrefix, directoryPaint.Sprint(node.Name), node.Size, humanSize(node))
	for index, child := range node.Children {
		if child == nil {
			continue
		}
		renderTreeNode(writer, child, childPrefix, false, index == len(node.Children)-1, directoryPaint)
	}
}

func humanSize(node *types.TreeOutputNode) string {
	if strings.TrimSpace(node.HumanSize) != "" {
		return node.HumanSize
	}
	return utils.FormatFileSize(node.Size)
}
