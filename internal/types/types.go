// Package types defines every cross‑package data structure used by the shelltree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	CommandAnalyze = "analyze"
	CommandTree    = "tree"
	CommandParse   = "parse"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// TreeOutputNode is one node of a reconstructed directory tree.
// Size is the declared size for files and the recursive total for directories.
type TreeOutputNode struct {
	XMLName          xml.Name          `json:"-" xml:"node"`
	Source           string            `json:"source,omitempty" xml:"source,attr,omitempty"`
	Path             string            `json:"path" xml:"path"`
	Name             string            `json:"name" xml:"name"`
	Type             string            `json:"type" xml:"type"`
	Size             int64             `json:"size" xml:"size"`
	HumanSize        string            `json:"humanSize,omitempty" xml:"humanSize,omitempty"`
	Children         []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
	TotalFiles       int               `json:"totalFiles,omitempty" xml:"totalFiles,omitempty"`
	TotalDirectories int               `json:"totalDirectories,omitempty" xml:"totalDirectories,omitempty"`
}

// DirectorySize names a directory together with its recursive total.
type DirectorySize struct {
	Path string `json:"path" xml:"path,attr"`
	Size int64  `json:"size" xml:"size,attr"`
}

// AnalysisOutput is the result of the analyze command for one transcript.
// SmallestSufficient is nil when no directory is large enough.
type AnalysisOutput struct {
	XMLName              xml.Name        `json:"-" xml:"analysis"`
	Source               string          `json:"source" xml:"source,attr"`
	Threshold            int64           `json:"threshold" xml:"threshold"`
	DeletableTotal       int64           `json:"deletableTotal" xml:"deletableTotal"`
	DeletableDirectories []DirectorySize `json:"deletableDirectories,omitempty" xml:"deletableDirectories>directory,omitempty"`
	Capacity             int64           `json:"capacity" xml:"capacity"`
	RequiredFree         int64           `json:"requiredFree" xml:"requiredFree"`
	Used                 int64           `json:"used" xml:"used"`
	Unused               int64           `json:"unused" xml:"unused"`
	Required             int64           `json:"required" xml:"required"`
	SmallestSufficient   *DirectorySize  `json:"smallestSufficient,omitempty" xml:"smallestSufficient,omitempty"`
	// Unavailable explains why no directory frees enough space.
	Unavailable string `json:"smallestSufficientUnavailable,omitempty" xml:"smallestSufficientUnavailable,omitempty"`
}

// StatementOutput is one recognized transcript line.
type StatementOutput struct {
	XMLName xml.Name `json:"-" xml:"statement"`
	Line    int      `json:"line" xml:"line,attr"`
	Kind    string   `json:"kind" xml:"kind,attr"`
	Name    string   `json:"name,omitempty" xml:"name,attr,omitempty"`
	Size    int64    `json:"size,omitempty" xml:"size,attr,omitempty"`
	Text    string   `json:"text" xml:",chardata"`
}

// ParseOutput is the result of the parse command for one transcript.
type ParseOutput struct {
	XMLName    xml.Name          `json:"-" xml:"transcript"`
	Source     string            `json:"source" xml:"source,attr"`
	Statements []StatementOutput `json:"statements" xml:"statement"`
}
