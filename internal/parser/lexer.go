package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// Lexer tokenizes move script input.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool

	// Position of the symbol currently being gathered.
	startLine int
	startCol  int
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab[';'] = LineComment
	chTab['#'] = LineComment
	chTab['%'] = LineComment
	chTab['*'] = Star

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['_'] = Alpha
}

// isDelimiter reports whether c ends a move or number.
func isDelimiter(c byte) bool {
	switch chTab[c] {
	case Whitespace, TagStart, TagEnd, DoubleQuote, CommentStart:
		return true
	}
	return c == ';'
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if len(line) == 0 {
			return false
		}
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.startLine
			token.Column = l.startCol
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			l.startLine, l.startCol = l.lineNum, 0
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.startLine, l.startCol = l.lineNum, symbolStart+1
	l.advance()

	switch chTab[ch] {
	case Whitespace, TagEnd:
		return &Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case LineComment:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, TokenString: text}

	case Star:
		return &Token{Type: TerminatingResult, TokenString: "*"}

	case Digit:
		return l.gatherNumeric(symbolStart)

	case Alpha:
		return l.gatherMove(symbolStart)

	default:
		return &Token{Type: ErrorToken, TokenString: string(ch)}
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
		l.advance()
	}

	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if unicode.IsLetter(rune(ch)) || unicode.IsDigit(rune(ch)) || ch == '_' {
			l.advance()
		} else {
			break
		}
	}

	if l.pos > start {
		return &Token{Type: TagToken, TokenString: l.line[start:l.pos]}
	}
	return &Token{Type: ErrorToken, TokenString: "["}
}

// gatherString gathers a quoted string. An unterminated string is an
// error token.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == '"' {
			return &Token{Type: StringToken, TokenString: sb.String()}
		}
		if ch == '\n' || ch == '\r' {
			break
		}
		sb.WriteByte(ch)
	}

	return &Token{Type: ErrorToken, TokenString: `"` + sb.String()}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			return &Token{Type: ErrorToken, TokenString: "{" + strings.TrimSpace(sb.String())}
		}
	}
}

// gatherNumeric gathers a move number ("12." or "12...") or a result.
func (l *Lexer) gatherNumeric(symbolStart int) *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Digit {
		l.advance()
	}
	if l.currentChar() == '.' {
		digits := l.line[symbolStart:l.pos]
		for l.currentChar() == '.' {
			l.advance()
		}
		return &Token{Type: MoveNumber, TokenString: digits}
	}

	for l.pos < len(l.line) && !isDelimiter(l.currentChar()) {
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	switch text {
	case "1-0", "0-1", "1/2-1/2":
		return &Token{Type: TerminatingResult, TokenString: text}
	}
	return &Token{Type: ErrorToken, TokenString: text}
}

// gatherMove gathers a move. Check marks and annotation glyphs attached to
// the move are kept and removed by ParseMove.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	for l.pos < len(l.line) && !isDelimiter(l.currentChar()) {
		l.advance()
	}
	return &Token{Type: MoveToken, TokenString: l.line[symbolStart:l.pos]}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
