package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Lexer tokenizes move script input one line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	eof     bool
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// readLine loads the next line of input. It returns false at end of input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.eof = true
		if line == "" {
			return false
		}
	}
	l.line = strings.TrimRight(line, "\r\n")
	l.pos = 0
	l.lineNum++
	return true
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				tok := NewToken(EOFToken)
				tok.Line = l.lineNum
				return tok
			}
			continue
		}

		c := l.line[l.pos]
		switch {
		case unicode.IsSpace(rune(c)):
			l.pos++
		case c == ';':
			tok := l.token(CommentToken)
			tok.TokenString = strings.TrimSpace(l.line[l.pos+1:])
			l.pos = len(l.line)
			return tok
		case c == '{':
			return l.braceComment()
		case c == '[':
			return l.tag()
		default:
			return l.word()
		}
	}
}

// token creates a token positioned at the current character.
func (l *Lexer) token(t TokenType) *Token {
	tok := NewToken(t)
	tok.Line = l.lineNum
	tok.Column = uint(l.pos + 1)
	return tok
}

// braceComment reads a {comment}, which may span lines.
func (l *Lexer) braceComment() *Token {
	tok := l.token(CommentToken)
	l.pos++

	var sb strings.Builder
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			tok.TokenString = strings.TrimSpace(sb.String())
			return tok
		}
		sb.WriteString(l.line[l.pos:])
		sb.WriteByte(' ')
		if !l.readLine() {
			tok.Type = ErrorToken
			tok.TokenString = "unterminated comment"
			return tok
		}
	}
}

// tag reads a [Name "value"] pair. The pair must sit on one line.
func (l *Lexer) tag() *Token {
	tok := l.token(TagToken)
	rest := l.line[l.pos+1:]

	end := strings.IndexByte(rest, ']')
	if end < 0 {
		tok.Type = ErrorToken
		tok.TokenString = "unterminated tag"
		l.pos = len(l.line)
		return tok
	}
	l.pos += end + 2

	body := strings.TrimSpace(rest[:end])
	name, value, ok := strings.Cut(body, " ")
	value = strings.TrimSpace(value)
	if !ok || name == "" || len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		tok.Type = ErrorToken
		tok.TokenString = "[" + body + "]"
		return tok
	}

	tok.TokenString = name
	tok.TagValue = value[1 : len(value)-1]
	return tok
}

// word reads a run of non-space characters and classifies it as a move
// number, a result or a move. A move number glued to its move ("1.e4")
// is returned alone and the move is read next.
func (l *Lexer) word() *Token {
	tok := l.token(MoveToken)

	start := l.pos
	for l.pos < len(l.line) && !isDelimiter(l.line[l.pos]) {
		l.pos++
	}
	word := l.line[start:l.pos]

	if terminatingResults[word] {
		tok.Type = TerminatingResult
		tok.TokenString = word
		return tok
	}

	digits := 0
	for digits < len(word) && word[digits] >= '0' && word[digits] <= '9' {
		digits++
	}
	dots := digits
	for dots < len(word) && word[dots] == '.' {
		dots++
	}
	if digits > 0 && dots > digits {
		n, _ := strconv.ParseUint(word[:digits], 10, 32)
		tok.Type = MoveNumber
		tok.MoveNum = uint(n)
		tok.TokenString = word[:dots]
		l.pos = start + dots
		return tok
	}

	tok.TokenString = word
	return tok
}

// isDelimiter reports whether c ends a word.
func isDelimiter(c byte) bool {
	return unicode.IsSpace(rune(c)) || c == '{' || c == ';' || c == '['
}
