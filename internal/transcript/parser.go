package transcript

const (
	expectedCommandName     = "command name"
	expectedKnownCommand    = "cd or ls"
	expectedDirectoryTarget = "directory target"
	expectedDirectoryWord   = "dir keyword"
	expectedDirectoryName   = "directory name"
	expectedFileName        = "file name"
	expectedLineTerminator  = "end of line"
)

// parser walks a token slice with one token of lookahead.
type parser struct {
	tokens   []Token
	position int
}

// ParseText scans and parses a transcript.
func ParseText(text string) ([]Statement, error) {
	return Parse(Scan(text))
}

// Parse converts tokens into statements. It stops at the first structural
// violation and returns no statements in that case.
func Parse(tokens []Token) ([]Statement, error) {
	state := &parser{tokens: tokens}
	var statements []Statement

	for state.position < len(state.tokens) {
		var statement Statement
		var parseError error
		switch state.peek().Kind {
		case TokenPrefix:
			statement, parseError = state.parseCommand()
		case TokenString:
			statement, parseError = state.parseDirectoryEntry()
		case TokenNumber:
			statement, parseError = state.parseFileEntry()
		default:
			state.position++
			continue
		}
		if parseError != nil {
			return nil, parseError
		}
		statements = append(statements, statement)
	}

	return statements, nil
}

// peek returns the next unconsumed token, or a synthetic end of stream
// positioned on the last seen line when the slice is exhausted.
func (state *parser) peek() Token {
	if state.position < len(state.tokens) {
		return state.tokens[state.position]
	}
	lastLine := firstLineNumber
	if len(state.tokens) > 0 {
		lastLine = state.tokens[len(state.tokens)-1].Line
	}
	return Token{Kind: TokenEndOfStream, Line: lastLine}
}

func (state *parser) next() Token {
	token := state.peek()
	if state.position < len(state.tokens) {
		state.position++
	}
	return token
}

func (state *parser) expectString(expected string) (Token, error) {
	token := state.next()
	if token.Kind != TokenString {
		return Token{}, newParseError(expected, token)
	}
	return token, nil
}

func (state *parser) expectTerminator() error {
	token := state.next()
	if !token.IsTerminator() {
		return newParseError(expectedLineTerminator, token)
	}
	return nil
}

func (state *parser) parseCommand() (Statement, error) {
	prefixToken := state.next()
	nameToken, nameError := state.expectString(expectedCommandName)
	if nameError != nil {
		return Statement{}, nameError
	}

	switch nameToken.Text {
	case changeDirectoryCommand:
		targetToken, targetError := state.expectString(expectedDirectoryTarget)
		if targetError != nil {
			return Statement{}, targetError
		}
		if terminatorError := state.expectTerminator(); terminatorError != nil {
			return Statement{}, terminatorError
		}
		return Statement{Kind: StatementChangeDirectory, Name: targetToken.Text, Line: prefixToken.Line}, nil
	case listContentsCommand:
		if terminatorError := state.expectTerminator(); terminatorError != nil {
			return Statement{}, terminatorError
		}
		return Statement{Kind: StatementListContents, Line: prefixToken.Line}, nil
	default:
		return Statement{}, newParseError(expectedKnownCommand, nameToken)
	}
}

func (state *parser) parseDirectoryEntry() (Statement, error) {
	keywordToken := state.next()
	if keywordToken.Text != directoryKeyword {
		return Statement{}, newParseError(expectedDirectoryWord, keywordToken)
	}
	nameToken, nameError := state.expectString(expectedDirectoryName)
	if nameError != nil {
		return Statement{}, nameError
	}
	if terminatorError := state.expectTerminator(); terminatorError != nil {
		return Statement{}, terminatorError
	}
	return Statement{Kind: StatementDirectoryEntry, Name: nameToken.Text, Line: keywordToken.Line}, nil
}

func (state *parser) parseFileEntry() (Statement, error) {
	sizeToken := state.next()
	nameToken, nameError := state.expectString(expectedFileName)
	if nameError != nil {
		return Statement{}, nameError
	}
	if terminatorError := state.expectTerminator(); terminatorError != nil {
		return Statement{}, terminatorError
	}
	return Statement{Kind: StatementFileEntry, Name: nameToken.Text, Size: sizeToken.Number, Line: sizeToken.Line}, nil
}
