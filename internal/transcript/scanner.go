package transcript

const (
	prefixCharacter         = '$'
	lineFeedCharacter       = '\n'
	carriageReturnCharacter = '\r'
	firstLineNumber         = 1
)

// Scan splits the transcript text into tokens in a single pass.
// Characters outside the recognized classes are dropped without an error,
// and the result always ends with a TokenEndOfStream.
func Scan(text string) []Token {
	var tokens []Token
	characters := []rune(text)
	position := 0
	lineNumber := firstLineNumber

	for position < len(characters) {
		currentCharacter := characters[position]
		switch {
		case isDigit(currentCharacter):
			var value int64
			for position < len(characters) && isDigit(characters[position]) {
				value = value*10 + int64(characters[position]-'0')
				position++
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Number: value, Line: lineNumber})
		case currentCharacter == prefixCharacter:
			position++
			tokens = append(tokens, Token{Kind: TokenPrefix, Line: lineNumber})
		case isWordCharacter(currentCharacter):
			start := position
			for position < len(characters) && isWordCharacter(characters[position]) {
				position++
			}
			tokens = append(tokens, Token{Kind: TokenString, Text: string(characters[start:position]), Line: lineNumber})
		case currentCharacter == lineFeedCharacter || currentCharacter == carriageReturnCharacter:
			// A following line feed joins the same token; it ends a second
			// physical line unless it completes a carriage return pair.
			consumedLines := 1
			position++
			if position < len(characters) && characters[position] == lineFeedCharacter {
				if currentCharacter == lineFeedCharacter {
					consumedLines++
				}
				position++
			}
			tokens = append(tokens, Token{Kind: TokenNewLine, Line: lineNumber})
			lineNumber += consumedLines
		default:
			position++
		}
	}

	return append(tokens, Token{Kind: TokenEndOfStream, Line: lineNumber})
}

func isDigit(character rune) bool {
	return character >= '0' && character <= '9'
}

// isWordCharacter covers command names, directory names, paths and file names.
func isWordCharacter(character rune) bool {
	switch {
	case character >= 'a' && character <= 'z':
		return true
	case character == '.', character == '-', character == '_', character == '/':
		return true
	default:
		return false
	}
}
