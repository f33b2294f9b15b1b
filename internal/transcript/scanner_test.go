package transcript

import (
	"reflect"
	"testing"
)

func TestScanProducesTokens(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "single_line",
			input: "$ cd /",
			expected: []Token{
				{Kind: TokenPrefix, Line: 1},
				{Kind: TokenString, Text: "cd", Line: 1},
				{Kind: TokenString, Text: "/", Line: 1},
				{Kind: TokenEndOfStream, Line: 1},
			},
		},
		{
			name:  "parent_target",
			input: "$ cd ..",
			expected: []Token{
				{Kind: TokenPrefix, Line: 1},
				{Kind: TokenString, Text: "cd", Line: 1},
				{Kind: TokenString, Text: "..", Line: 1},
				{Kind: TokenEndOfStream, Line: 1},
			},
		},
		{
			name:  "multiline_with_indentation",
			input: "$ cd /\n        dir test\n    ",
			expected: []Token{
				{Kind: TokenPrefix, Line: 1},
				{Kind: TokenString, Text: "cd", Line: 1},
				{Kind: TokenString, Text: "/", Line: 1},
				{Kind: TokenNewLine, Line: 1},
				{Kind: TokenString, Text: "dir", Line: 2},
				{Kind: TokenString, Text: "test", Line: 2},
				{Kind: TokenNewLine, Line: 2},
				{Kind: TokenEndOfStream, Line: 3},
			},
		},
		{
			name:  "file_name_with_dots",
			input: "test.txt",
			expected: []Token{
				{Kind: TokenString, Text: "test.txt", Line: 1},
				{Kind: TokenEndOfStream, Line: 1},
			},
		},
		{
			name:  "file_entry",
			input: "14848514 b.txt",
			expected: []Token{
				{Kind: TokenNumber, Number: 14848514, Line: 1},
				{Kind: TokenString, Text: "b.txt", Line: 1},
				{Kind: TokenEndOfStream, Line: 1},
			},
		},
		{
			name:  "crlf_folds_into_one_newline",
			input: "a\r\nb",
			expected: []Token{
				{Kind: TokenString, Text: "a", Line: 1},
				{Kind: TokenNewLine, Line: 1},
				{Kind: TokenString, Text: "b", Line: 2},
				{Kind: TokenEndOfStream, Line: 2},
			},
		},
		{
			name:  "lone_carriage_return_is_newline",
			input: "a\rb",
			expected: []Token{
				{Kind: TokenString, Text: "a", Line: 1},
				{Kind: TokenNewLine, Line: 1},
				{Kind: TokenString, Text: "b", Line: 2},
				{Kind: TokenEndOfStream, Line: 2},
			},
		},
		{
			name:  "blank_line_joins_single_token",
			input: "\n\n",
			expected: []Token{
				{Kind: TokenNewLine, Line: 1},
				{Kind: TokenEndOfStream, Line: 3},
			},
		},
		{
			name:  "line_breaks_advance_physical_lines",
			input: "a\r\nb\rc\n\n\nd",
			expected: []Token{
				{Kind: TokenString, Text: "a", Line: 1},
				{Kind: TokenNewLine, Line: 1},
				{Kind: TokenString, Text: "b", Line: 2},
				{Kind: TokenNewLine, Line: 2},
				{Kind: TokenString, Text: "c", Line: 3},
				{Kind: TokenNewLine, Line: 3},
				{Kind: TokenNewLine, Line: 5},
				{Kind: TokenString, Text: "d", Line: 6},
				{Kind: TokenEndOfStream, Line: 6},
			},
		},
		{
			name:  "unrecognized_characters_are_dropped",
			input: "ABC 12\tX!",
			expected: []Token{
				{Kind: TokenNumber, Number: 12, Line: 1},
				{Kind: TokenEndOfStream, Line: 1},
			},
		},
		{
			name:  "digits_then_letters_split",
			input: "100abc",
			expected: []Token{
				{Kind: TokenNumber, Number: 100, Line: 1},
				{Kind: TokenString, Text: "abc", Line: 1},
				{Kind: TokenEndOfStream, Line: 1},
			},
		},
		{
			name:     "empty_input",
			input:    "",
			expected: []Token{{Kind: TokenEndOfStream, Line: 1}},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			tokens := Scan(testCase.input)
			if !reflect.DeepEqual(tokens, testCase.expected) {
				t.Fatalf("Scan(%q)\n got: %v\nwant: %v", testCase.input, tokens, testCase.expected)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	testCases := map[string]Token{
		"[prefix]":        {Kind: TokenPrefix},
		"[string(cd)]":    {Kind: TokenString, Text: "cd"},
		"[number(1024)]":  {Kind: TokenNumber, Number: 1024},
		"[newline]":       {Kind: TokenNewLine},
		"[end-of-stream]": {Kind: TokenEndOfStream},
	}
	for expected, token := range testCases {
		if rendered := token.String(); rendered != expected {
			t.Errorf("Token.String() = %q, want %q", rendered, expected)
		}
	}
}
