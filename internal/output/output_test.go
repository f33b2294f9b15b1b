package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/temirov/shelltree/internal/output"
	"github.com/temirov/shelltree/internal/types"
)

const treeRawExpected = "/ (1300, 1.3kb)\n" +
	"├── a (1200, 1.2kb)\n" +
	"│   └── [File] b.txt (1200, 1.2kb)\n" +
	"└── [File] c (100, 100b)\n" +
	"Summary: 2 files, 1 directory, 1.3kb\n"

const analysisRawExpected = "Transcript: session.txt\n" +
	"Deletable total (directories under 100000): 95437\n" +
	"  /a 94853\n" +
	"  /a/e 584\n" +
	"Used: 48381165 of 70000000 (unused 21618835)\n" +
	"Required: 8381165 to reach 30000000 free\n" +
	"Smallest sufficient: /d 24933642 (24mb)\n"

func sampleTree() *types.TreeOutputNode {
	return &types.TreeOutputNode{
		Source: "session.txt",
		Path:   "/",
		Name:   "/",
		Type:   types.NodeTypeDirectory,
		Size:   1300,
		Children: []*types.TreeOutputNode{
			{
				Path: "/a",
				Name: "a",
				Type: types.NodeTypeDirectory,
				Size: 1200,
				Children: []*types.TreeOutputNode{
					{Path: "/a/b.txt", Name: "b.txt", Type: types.NodeTypeFile, Size: 1200},
				},
			},
			{Path: "/c", Name: "c", Type: types.NodeTypeFile, Size: 100},
		},
		TotalFiles:       2,
		TotalDirectories: 1,
	}
}

func sampleAnalysis() *types.AnalysisOutput {
	return &types.AnalysisOutput{
		Source:         "session.txt",
		Threshold:      100000,
		DeletableTotal: 95437,
		DeletableDirectories: []types.DirectorySize{
			{Path: "/a", Size: 94853},
			{Path: "/a/e", Size: 584},
		},
		Capacity:           70000000,
		RequiredFree:       30000000,
		Used:               48381165,
		Unused:             21618835,
		Required:           8381165,
		SmallestSufficient: &types.DirectorySize{Path: "/d", Size: 24933642},
	}
}

// TestWriteTreeRaw verifies connectors, sizes and the summary line.
func TestWriteTreeRaw(testingInstance *testing.T) {
	var buffer bytes.Buffer
	output.WriteTreeRaw(&buffer, sampleTree(), output.RawOptions{IncludeSummary: true})
	if buffer.String() != treeRawExpected {
		testingInstance.Errorf("unexpected tree output:\n%s", buffer.String())
	}
}

// TestWriteTreeRawHighlight verifies directories are colored only when requested.
func TestWriteTreeRawHighlight(testingInstance *testing.T) {
	var plain, highlighted bytes.Buffer
	output.WriteTreeRaw(&plain, sampleTree(), output.RawOptions{})
	output.WriteTreeRaw(&highlighted, sampleTree(), output.RawOptions{Highlight: true})
	if strings.Contains(plain.String(), "\x1b[") {
		testingInstance.Errorf("plain output contains escape codes: %q", plain.String())
	}
	if !strings.Contains(highlighted.String(), "\x1b[") {
		testingInstance.Errorf("highlighted output has no escape codes: %q", highlighted.String())
	}
	if strings.Contains(highlighted.String(), "\x1b[34;1mb.txt") {
		testingInstance.Errorf("files must not be highlighted: %q", highlighted.String())
	}
}

// TestWriteAnalysisRaw verifies the analysis report layout.
func TestWriteAnalysisRaw(testingInstance *testing.T) {
	var buffer bytes.Buffer
	output.WriteAnalysisRaw(&buffer, sampleAnalysis())
	if buffer.String() != analysisRawExpected {
		testingInstance.Errorf("unexpected analysis output:\n%s", buffer.String())
	}
}

// TestWriteAnalysisRawWithoutSufficientDirectory verifies the deletable total
// is still reported when no directory frees enough space.
func TestWriteAnalysisRawWithoutSufficientDirectory(testingInstance *testing.T) {
	analysis := sampleAnalysis()
	analysis.SmallestSufficient = nil
	analysis.Unavailable = "no directory is large enough: need 8381165 more, largest directory holds 48381165"
	var buffer bytes.Buffer
	output.WriteAnalysisRaw(&buffer, analysis)
	expected := strings.TrimSuffix(analysisRawExpected, "Smallest sufficient: /d 24933642 (24mb)\n") +
		"Smallest sufficient: none (no directory is large enough: need 8381165 more, largest directory holds 48381165)\n"
	if buffer.String() != expected {
		testingInstance.Errorf("unexpected analysis output:\n%s", buffer.String())
	}
}

// TestRenderRawSeparatesSources verifies that multiple results are separated.
func TestRenderRawSeparatesSources(testingInstance *testing.T) {
	parsed := &types.ParseOutput{
		Source: "one.txt",
		Statements: []types.StatementOutput{
			{Line: 1, Kind: "cd", Name: "/", Text: "$ cd /"},
			{Line: 2, Kind: "ls", Text: "$ ls"},
		},
	}
	other := &types.ParseOutput{Source: "two.txt", Statements: []types.StatementOutput{{Line: 1, Kind: "ls", Text: "$ ls"}}}
	var buffer bytes.Buffer
	if renderError := output.RenderRaw(&buffer, types.CommandParse, []interface{}{parsed, other}, output.RawOptions{}); renderError != nil {
		testingInstance.Fatalf("RenderRaw error: %v", renderError)
	}
	expected := "one.txt:1: $ cd /\none.txt:2: $ ls\n----------------------------------------\ntwo.txt:1: $ ls\n"
	if buffer.String() != expected {
		testingInstance.Errorf("unexpected parse output: %q", buffer.String())
	}
}

// TestRenderJSON verifies single results render as objects and multiple as arrays.
func TestRenderJSON(testingInstance *testing.T) {
	single, singleError := output.RenderJSON([]interface{}{sampleAnalysis()})
	if singleError != nil {
		testingInstance.Fatalf("RenderJSON error: %v", singleError)
	}
	var decoded map[string]interface{}
	if decodeError := json.Unmarshal([]byte(single), &decoded); decodeError != nil {
		testingInstance.Fatalf("decode: %v", decodeError)
	}
	if decoded["deletableTotal"] != float64(95437) {
		testingInstance.Errorf("unexpected deletableTotal: %v", decoded["deletableTotal"])
	}

	multiple, multipleError := output.RenderJSON([]interface{}{sampleAnalysis(), sampleAnalysis()})
	if multipleError != nil {
		testingInstance.Fatalf("RenderJSON error: %v", multipleError)
	}
	if !strings.HasPrefix(multiple, "[") {
		testingInstance.Errorf("expected JSON array, got %q", multiple)
	}

	empty, _ := output.RenderJSON(nil)
	if empty != "[]" {
		testingInstance.Errorf("expected empty array, got %q", empty)
	}
}

// TestRenderXML verifies document headers and element names.
func TestRenderXML(testingInstance *testing.T) {
	single, singleError := output.RenderXML([]interface{}{sampleTree()})
	if singleError != nil {
		testingInstance.Fatalf("RenderXML error: %v", singleError)
	}
	if !strings.HasPrefix(single, "<?xml") || !strings.Contains(single, `<node source="session.txt">`) {
		testingInstance.Errorf("unexpected XML: %s", single)
	}

	multiple, multipleError := output.RenderXML([]interface{}{sampleAnalysis(), sampleAnalysis()})
	if multipleError != nil {
		testingInstance.Fatalf("RenderXML error: %v", multipleError)
	}
	if !strings.Contains(multiple, "<results>") || strings.Count(multiple, `<analysis source="session.txt">`) != 2 {
		testingInstance.Errorf("unexpected XML: %s", multiple)
	}
	if !strings.Contains(multiple, `<directory path="/a" size="94853"></directory>`) {
		testingInstance.Errorf("missing deletable directory element: %s", multiple)
	}
}

// TestRenderRejectsUnknownFormat verifies format validation.
func TestRenderRejectsUnknownFormat(testingInstance *testing.T) {
	var buffer bytes.Buffer
	if renderError := output.Render(&buffer, "yaml", types.CommandTree, nil, output.RawOptions{}); renderError == nil {
		testingInstance.Fatalf("expected error for unknown format")
	}
}
