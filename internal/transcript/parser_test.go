package transcript

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTextRecognizesStatements(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []Statement
	}{
		{
			name:     "cd_root",
			input:    "$ cd /",
			expected: []Statement{{Kind: StatementChangeDirectory, Name: "/", Line: 1}},
		},
		{
			name:     "cd_parent",
			input:    "$ cd ..",
			expected: []Statement{{Kind: StatementChangeDirectory, Name: "..", Line: 1}},
		},
		{
			name:     "ls",
			input:    "$ ls",
			expected: []Statement{{Kind: StatementListContents, Line: 1}},
		},
		{
			name:     "directory",
			input:    "dir test",
			expected: []Statement{{Kind: StatementDirectoryEntry, Name: "test", Line: 1}},
		},
		{
			name:     "file",
			input:    "1024 test.txt",
			expected: []Statement{{Kind: StatementFileEntry, Name: "test.txt", Size: 1024, Line: 1}},
		},
		{
			name:  "stray_newlines_skipped",
			input: "\n\n$ ls\r\n\r\ndir a\n",
			expected: []Statement{
				{Kind: StatementListContents, Line: 3},
				{Kind: StatementDirectoryEntry, Name: "a", Line: 5},
			},
		},
		{
			name:  "session",
			input: "$ cd /\n$ ls\ndir d\n100 a\n$ cd d\n$ ls\n50 b\n",
			expected: []Statement{
				{Kind: StatementChangeDirectory, Name: "/", Line: 1},
				{Kind: StatementListContents, Line: 2},
				{Kind: StatementDirectoryEntry, Name: "d", Line: 3},
				{Kind: StatementFileEntry, Name: "a", Size: 100, Line: 4},
				{Kind: StatementChangeDirectory, Name: "d", Line: 5},
				{Kind: StatementListContents, Line: 6},
				{Kind: StatementFileEntry, Name: "b", Size: 50, Line: 7},
			},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			statements, err := ParseText(testCase.input)
			if err != nil {
				t.Fatalf("ParseText(%q) error: %v", testCase.input, err)
			}
			if !reflect.DeepEqual(statements, testCase.expected) {
				t.Fatalf("ParseText(%q)\n got: %v\nwant: %v", testCase.input, statements, testCase.expected)
			}
		})
	}
}

func TestParseTextFailsFast(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		expectedLine  int
		expectedFound TokenKind
	}{
		{name: "unknown_command", input: "$ pwd", expectedLine: 1, expectedFound: TokenString},
		{name: "unknown_command_later_line", input: "$ cd /\n$ ls\n$ rm x", expectedLine: 3, expectedFound: TokenString},
		{name: "unknown_command_after_blank_line", input: "$ ls\n\n$ pwd\n", expectedLine: 3, expectedFound: TokenString},
		{name: "unknown_command_after_blank_crlf_line", input: "$ ls\r\n\r\n$ pwd", expectedLine: 3, expectedFound: TokenString},
		{name: "missing_command", input: "$\n", expectedLine: 1, expectedFound: TokenNewLine},
		{name: "cd_without_target", input: "$ cd", expectedLine: 1, expectedFound: TokenEndOfStream},
		{name: "cd_numeric_target", input: "$ cd 12", expectedLine: 1, expectedFound: TokenNumber},
		{name: "cd_extra_argument", input: "$ cd a b", expectedLine: 1, expectedFound: TokenString},
		{name: "ls_with_argument", input: "$ ls a", expectedLine: 1, expectedFound: TokenString},
		{name: "directory_without_name", input: "dir\n", expectedLine: 1, expectedFound: TokenNewLine},
		{name: "directory_bad_keyword", input: "folder a", expectedLine: 1, expectedFound: TokenString},
		{name: "file_without_name", input: "100", expectedLine: 1, expectedFound: TokenEndOfStream},
		{name: "file_extra_token", input: "100 a 5", expectedLine: 1, expectedFound: TokenNumber},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			statements, err := ParseText(testCase.input)
			if err == nil {
				t.Fatalf("ParseText(%q) expected error, got %v", testCase.input, statements)
			}
			if statements != nil {
				t.Fatalf("expected no partial statements, got %v", statements)
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("expected ErrParse, got %v", err)
			}
			var parseError *ParseError
			if !errors.As(err, &parseError) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseError.Line != testCase.expectedLine {
				t.Errorf("line = %d, want %d", parseError.Line, testCase.expectedLine)
			}
			if parseError.Found.Kind != testCase.expectedFound {
				t.Errorf("found = %v, want kind %d", parseError.Found, testCase.expectedFound)
			}
		})
	}
}

func TestParseReportsExhaustedTokens(t *testing.T) {
	t.Parallel()

	tokens := []Token{
		{Kind: TokenPrefix, Line: 4},
		{Kind: TokenString, Text: "cd", Line: 4},
	}
	statements, err := Parse(tokens)
	if err == nil {
		t.Fatalf("expected missing target error, got %v", statements)
	}
	var parseError *ParseError
	if !errors.As(err, &parseError) || parseError.Found.Kind != TokenEndOfStream || parseError.Line != 4 {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStatementStringRoundTrips(t *testing.T) {
	t.Parallel()

	input := "$ cd /\n$ ls\ndir a\n100 b.txt\n$ cd a\n$ cd ..\n"
	statements, err := ParseText(input)
	if err != nil {
		t.Fatalf("ParseText error: %v", err)
	}
	var rendered string
	for _, statement := range statements {
		rendered += statement.String() + "\n"
	}
	if rendered != input {
		t.Fatalf("rendered transcript = %q, want %q", rendered, input)
	}
}
