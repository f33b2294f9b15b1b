package transcript

import "fmt"

// StatementKind identifies a parsed transcript line.
type StatementKind int

const (
	// StatementChangeDirectory is "$ cd <target>".
	StatementChangeDirectory StatementKind = iota
	// StatementListContents is "$ ls".
	StatementListContents
	// StatementDirectoryEntry is "dir <name>" in a listing.
	StatementDirectoryEntry
	// StatementFileEntry is "<size> <name>" in a listing.
	StatementFileEntry
)

const (
	// ParentDirectoryTarget moves the cursor one level up.
	ParentDirectoryTarget = ".."
	// RootDirectoryTarget moves the cursor to the root.
	RootDirectoryTarget = "/"

	changeDirectoryCommand = "cd"
	listContentsCommand    = "ls"
	directoryKeyword       = "dir"

	changeDirectoryFormat = "$ cd %s"
	listContentsText      = "$ ls"
	directoryEntryFormat  = "dir %s"
	fileEntryFormat       = "%d %s"
	unknownStatementText  = "<unknown>"
)

var statementKindNames = map[StatementKind]string{
	StatementChangeDirectory: "cd",
	StatementListContents:    "ls",
	StatementDirectoryEntry:  "dir",
	StatementFileEntry:       "file",
}

func (kind StatementKind) String() string {
	if name, known := statementKindNames[kind]; known {
		return name
	}
	return unknownStatementText
}

// Statement is one parsed transcript line.
// Name holds the cd target or the entry name; Size is set for file entries only.
type Statement struct {
	Kind StatementKind
	Name string
	Size int64
	Line int
}

// String renders the statement back into transcript form.
func (statement Statement) String() string {
	switch statement.Kind {
	case StatementChangeDirectory:
		return fmt.Sprintf(changeDirectoryFormat, statement.Name)
	case StatementListContents:
		return listContentsText
	case StatementDirectoryEntry:
		return fmt.Sprintf(directoryEntryFormat, statement.Name)
	case StatementFileEntry:
		return fmt.Sprintf(fileEntryFormat, statement.Size, statement.Name)
	default:
		return unknownStatementText
	}
}
