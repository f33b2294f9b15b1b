// Package transcript turns shell session transcripts into parsed statements.
package transcript

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	// TokenPrefix marks the start of a command line ("$").
	TokenPrefix TokenKind = iota
	// TokenString is a run of lowercase letters, dots, dashes, underscores and slashes.
	TokenString
	// TokenNumber is a run of decimal digits.
	TokenNumber
	// TokenNewLine terminates a line. CRLF is folded into a single token.
	TokenNewLine
	// TokenEndOfStream is always the last token produced by Scan.
	TokenEndOfStream
)

const (
	prefixTokenText      = "[prefix]"
	stringTokenFormat    = "[string(%s)]"
	numberTokenFormat    = "[number(%d)]"
	newLineTokenText     = "[newline]"
	endOfStreamTokenText = "[end-of-stream]"
	unknownTokenFormat   = "[unknown(%d)]"
)

// Token is a single lexical unit together with the line it starts on.
type Token struct {
	Kind   TokenKind
	Text   string
	Number int64
	Line   int
}

// IsTerminator reports whether the token ends a statement.
func (token Token) IsTerminator() bool {
	return token.Kind == TokenNewLine || token.Kind == TokenEndOfStream
}

func (token Token) String() string {
	switch token.Kind {
	case TokenPrefix:
		return prefixTokenText
	case TokenString:
		return fmt.Sprintf(stringTokenFormat, token.Text)
	case TokenNumber:
		return fmt.Sprintf(numberTokenFormat, token.Number)
	case TokenNewLine:
		return newLineTokenText
	case TokenEndOfStream:
		return endOfStreamTokenText
	default:
		return fmt.Sprintf(unknownTokenFormat, int(token.Kind))
	}
}
