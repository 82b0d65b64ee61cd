// Package parser reads move scripts: whitespace separated moves with
// optional move numbers, comments, tag pairs and a closing result.
//
//	[FEN "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"]
//	; a comment to the end of the line
//	1. e4 {a brace comment} e5 2. Nf3 Nc6 *
//
// Several scripts may share one stream; a result or the start of a new tag
// section ends the current script.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	CommentToken
	MoveNumber
	MoveToken
	TerminatingResult
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	CommentToken:      "COMMENT",
	MoveNumber:        "MOVE_NUMBER",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// TokenString is the move text, tag name, comment, result or the
	// offending text of an error token
	TokenString string

	// TagValue holds the value of a tag pair
	TagValue string

	// MoveNum holds move numbers
	MoveNum uint

	// Line and column for error reporting
	Line   uint
	Column uint
}

// NewToken creates a new token of the given type.
func NewToken(tokenType TokenType) *Token {
	return &Token{Type: tokenType}
}

// Results that end a script.
var terminatingResults = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}
